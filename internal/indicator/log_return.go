package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-indexes/internal/types"
)

// DailyLogReturn computes ln(adj[i] / adj[i-1]) for every bar after the first.
// The first bar has no predecessor and is dropped, as is any row whose value is not
// finite (a zero or negative adjusted close on either side).
func DailyLogReturn(prices []types.MarketData) []types.LogReturn {
	if len(prices) < 2 {
		return []types.LogReturn{}
	}

	returns := make([]types.LogReturn, 0, len(prices)-1)

	for i := 1; i < len(prices); i++ {
		value := math.Log(prices[i].AdjustedClose / prices[i-1].AdjustedClose)
		if math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}

		returns = append(returns, types.LogReturn{
			Date:  prices[i].Date,
			Value: value,
		})
	}

	return returns
}
