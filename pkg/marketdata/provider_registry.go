package marketdata

import (
	"sort"

	"github.com/rxtech-lab/argo-indexes/pkg/errors"
	"github.com/rxtech-lab/argo-indexes/pkg/marketdata/provider"
)

// ProviderInfo contains metadata about a market data provider.
type ProviderInfo struct {
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	Description  string `json:"description"`
	RequiresAuth bool   `json:"requiresAuth"`
	// TickerExample shows the symbol convention the provider expects for an index.
	TickerExample string `json:"tickerExample"`
}

// providerRegistry holds metadata about all supported providers.
var providerRegistry = map[provider.ProviderType]ProviderInfo{
	provider.ProviderYahoo: {
		Name:          string(provider.ProviderYahoo),
		DisplayName:   "Yahoo Finance",
		Description:   "Daily OHLCV with split and dividend adjusted close for global indexes",
		RequiresAuth:  false,
		TickerExample: "^GSPC",
	},
	provider.ProviderPolygon: {
		Name:          string(provider.ProviderPolygon),
		DisplayName:   "Polygon.io",
		Description:   "US market aggregates, split adjusted",
		RequiresAuth:  true,
		TickerExample: "I:SPX",
	},
	provider.ProviderBinance: {
		Name:          string(provider.ProviderBinance),
		DisplayName:   "Binance",
		Description:   "Cryptocurrency daily klines",
		RequiresAuth:  false,
		TickerExample: "BTCUSDT",
	},
}

// GetSupportedProviders returns the names of all supported providers, sorted.
func GetSupportedProviders() []string {
	providers := make([]string, 0, len(providerRegistry))
	for providerType := range providerRegistry {
		providers = append(providers, string(providerType))
	}

	sort.Strings(providers)

	return providers
}

// GetProviderInfo returns metadata for a specific provider.
func GetProviderInfo(providerName string) (ProviderInfo, error) {
	info, exists := providerRegistry[provider.ProviderType(providerName)]
	if !exists {
		return ProviderInfo{}, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported provider: %s", providerName)
	}

	return info, nil
}
