package indicator

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/rxtech-lab/argo-indexes/internal/types"
	"github.com/rxtech-lab/argo-indexes/pkg/errors"
)

// DefaultVolatilityWindow is the number of observations in each rolling window.
const DefaultVolatilityWindow = 30

// ValidateWindow rejects windows too short for a sample standard deviation.
func ValidateWindow(window int) error {
	if window < 2 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "volatility window must be at least 2, got %d", window)
	}

	return nil
}

// RollingVolatility computes the sample standard deviation (n-1 denominator) of the
// adjusted close over each trailing window of `window` bars. One point is produced per
// bar starting at bar window-1, dated at the last bar of its window, so a series of
// length L yields L-window+1 points, or none when L < window.
func RollingVolatility(prices []types.MarketData, window int) ([]types.VolatilityPoint, error) {
	if err := ValidateWindow(window); err != nil {
		return nil, err
	}

	if len(prices) < window {
		return []types.VolatilityPoint{}, nil
	}

	closes := types.AdjustedCloses(prices)

	points := make([]types.VolatilityPoint, 0, len(prices)-window+1)

	for end := window; end <= len(closes); end++ {
		value := stat.StdDev(closes[end-window:end], nil)
		if math.IsNaN(value) {
			continue
		}

		points = append(points, types.VolatilityPoint{
			Date:  prices[end-1].Date,
			Value: value,
		})
	}

	return points, nil
}
