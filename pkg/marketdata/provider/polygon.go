package provider

import (
	"context"
	"fmt"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"

	"github.com/rxtech-lab/argo-indexes/internal/types"
	"github.com/rxtech-lab/argo-indexes/pkg/errors"
)

// polygonAggsLimit is the maximum page size accepted by the aggregates endpoint.
const polygonAggsLimit = 50000

// PolygonAggsIterator is the aggregate iterator returned by ListAggs.
type PolygonAggsIterator interface {
	Next() bool
	Item() models.Agg
	Err() error
}

// PolygonAPIClient is the subset of the Polygon REST client used for downloads.
type PolygonAPIClient interface {
	ListAggs(ctx context.Context, params *models.ListAggsParams, options ...models.RequestOption) PolygonAggsIterator
}

type PolygonClient struct {
	apiClient PolygonAPIClient
}

func NewPolygonClient(apiKey string) (Provider, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeInvalidProvider, "polygon provider requires an API key")
	}

	return NewPolygonClientWithAPI(&polygonAPIAdapter{client: polygon.New(apiKey)}), nil
}

// NewPolygonClientWithAPI creates a PolygonClient backed by the given API client.
func NewPolygonClientWithAPI(apiClient PolygonAPIClient) *PolygonClient {
	return &PolygonClient{apiClient: apiClient}
}

// Download lists split-adjusted daily aggregates. Polygon only serves adjusted
// closes, so Close doubles as AdjustedClose.
func (c *PolygonClient) Download(ctx context.Context, ticker string, startDate time.Time, endDate time.Time) ([]types.MarketData, error) {
	//nolint:exhaustruct // third-party struct with many optional fields
	params := models.ListAggsParams{
		Ticker:     ticker,
		Multiplier: 1,
		Timespan:   models.Day,
		From:       models.Millis(startDate),
		To:         models.Millis(endDate),
	}.WithAdjusted(true).WithLimit(polygonAggsLimit)

	iter := c.apiClient.ListAggs(ctx, params)
	bars := make([]types.MarketData, 0)

	for iter.Next() {
		bars = append(bars, polygonAggToMarketData(ticker, iter.Item()))
	}

	if iter.Err() != nil {
		return nil, fmt.Errorf("error iterating polygon aggregates: %w", iter.Err())
	}

	return bars, nil
}

func polygonAggToMarketData(ticker string, agg models.Agg) types.MarketData {
	return types.MarketData{
		Symbol:        ticker,
		Date:          time.Time(agg.Timestamp).UTC(),
		Open:          agg.Open,
		High:          agg.High,
		Low:           agg.Low,
		Close:         agg.Close,
		AdjustedClose: agg.Close,
		Volume:        agg.Volume,
	}
}

type polygonAPIAdapter struct {
	client *polygon.Client
}

func (a *polygonAPIAdapter) ListAggs(ctx context.Context, params *models.ListAggsParams, options ...models.RequestOption) PolygonAggsIterator {
	return a.client.ListAggs(ctx, params, options...)
}
