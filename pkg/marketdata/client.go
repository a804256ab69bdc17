package marketdata

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rxtech-lab/argo-indexes/internal/types"
	"github.com/rxtech-lab/argo-indexes/pkg/errors"
	"github.com/rxtech-lab/argo-indexes/pkg/marketdata/provider"
)

// ClientConfig holds the configuration for the market data client.
type ClientConfig struct {
	ProviderType  provider.ProviderType `validate:"required,oneof=yahoo polygon binance"`
	PolygonApiKey string                `validate:"required_if=ProviderType polygon"`
}

// DownloadParams holds the parameters for a daily history request over [StartDate, EndDate).
type DownloadParams struct {
	Ticker    string    `validate:"required"`
	StartDate time.Time `validate:"required"`
	EndDate   time.Time `validate:"required,gtfield=StartDate"`
}

// Client downloads daily history from a provider and reshapes it into a price table.
type Client struct {
	provider provider.Provider
	validate *validator.Validate
}

// NewClient creates a new market data client with the given configuration.
func NewClient(config ClientConfig) (*Client, error) {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProvider, "invalid client configuration", err)
	}

	marketProvider, err := provider.NewMarketDataProvider(config.ProviderType, config.PolygonApiKey)
	if err != nil {
		return nil, err
	}

	return &Client{
		provider: marketProvider,
		validate: validate,
	}, nil
}

// NewClientWithProvider creates a client around an existing provider.
func NewClientWithProvider(marketProvider provider.Provider) *Client {
	return &Client{
		provider: marketProvider,
		validate: validator.New(),
	}
}

// Download fetches the ticker's daily bars and normalizes them to calendar dates
// inside [StartDate, EndDate). An empty result is an error.
func (c *Client) Download(ctx context.Context, params DownloadParams) ([]types.MarketData, error) {
	if err := c.validate.Struct(params); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid download parameters", err)
	}

	bars, err := c.provider.Download(ctx, params.Ticker, params.StartDate, params.EndDate)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, err, "failed to download %s", params.Ticker)
	}

	//nolint:exhaustruct // rendered text is not needed for trimming
	prices := provider.Normalize(bars, types.DateWindow{Start: params.StartDate, End: params.EndDate})
	if len(prices) == 0 {
		return nil, errors.Newf(errors.ErrCodeNoDataFound, "no data returned for %s between %s and %s",
			params.Ticker, params.StartDate.Format(time.DateOnly), params.EndDate.Format(time.DateOnly))
	}

	return prices, nil
}
