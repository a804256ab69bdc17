package provider

import (
	"context"
	"time"

	"github.com/rxtech-lab/argo-indexes/internal/types"
	"github.com/rxtech-lab/argo-indexes/pkg/errors"
)

// ProviderType defines the type of market data provider.
type ProviderType string

const (
	ProviderYahoo   ProviderType = "yahoo"
	ProviderPolygon ProviderType = "polygon"
	ProviderBinance ProviderType = "binance"
)

type Provider interface {
	// Download fetches the daily bars for ticker from startDate up to endDate.
	// Bars are returned in ascending date order. Implementations may return bars
	// outside the range when the upstream API treats endDate as inclusive;
	// Normalize trims them.
	// example:
	// Download(ctx, "^GSPC", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	Download(ctx context.Context, ticker string, startDate time.Time, endDate time.Time) ([]types.MarketData, error)
}

// NewMarketDataProvider creates a new market data provider based on the provider type.
// apiKey is only used by providers that require authentication.
func NewMarketDataProvider(providerType ProviderType, apiKey string) (Provider, error) {
	switch providerType {
	case ProviderYahoo:
		return NewYahooClient(), nil
	case ProviderBinance:
		return NewBinanceClient(), nil
	case ProviderPolygon:
		return NewPolygonClient(apiKey)
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported market data provider: %s", providerType)
	}
}

// Normalize reduces every bar to its calendar date and keeps only the bars inside window.
// The input order is preserved.
func Normalize(bars []types.MarketData, window types.DateWindow) []types.MarketData {
	normalized := make([]types.MarketData, 0, len(bars))

	for _, bar := range bars {
		bar.Date = calendarDate(bar.Date)
		if !window.Contains(bar.Date) {
			continue
		}

		normalized = append(normalized, bar)
	}

	return normalized
}

func calendarDate(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
