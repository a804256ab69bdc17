package provider

import (
	"context"
	"fmt"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"github.com/rxtech-lab/argo-indexes/internal/types"
)

// YahooChartIterator is the bar iterator returned by the chart endpoint.
type YahooChartIterator interface {
	Next() bool
	Bar() *finance.ChartBar
	Meta() finance.ChartMeta
	Err() error
}

// YahooChartFunc opens a chart request.
type YahooChartFunc func(params *chart.Params) YahooChartIterator

// YahooClient downloads daily bars from the Yahoo Finance chart API.
type YahooClient struct {
	getChart YahooChartFunc
}

func NewYahooClient() Provider {
	return NewYahooClientWithAPI(func(params *chart.Params) YahooChartIterator {
		return chart.Get(params)
	})
}

// NewYahooClientWithAPI creates a YahooClient backed by the given chart function.
func NewYahooClientWithAPI(getChart YahooChartFunc) *YahooClient {
	return &YahooClient{getChart: getChart}
}

// Download iterates the daily chart for ticker. Bars without a positive adjusted
// close (holidays reported with empty quotes) are skipped. Timestamps are shifted
// by the exchange GMT offset so each bar keeps its local trading date.
func (c *YahooClient) Download(ctx context.Context, ticker string, startDate time.Time, endDate time.Time) ([]types.MarketData, error) {
	//nolint:exhaustruct // third-party struct with many optional fields
	params := &chart.Params{
		Symbol:   ticker,
		Interval: datetime.OneDay,
		Start:    toDatetime(startDate),
		End:      toDatetime(endDate),
	}

	iter := c.getChart(params)
	bars := make([]types.MarketData, 0)

	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		bar, ok := yahooBarToMarketData(ticker, iter.Bar(), iter.Meta().Gmtoffset)
		if !ok {
			continue
		}

		bars = append(bars, bar)
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("error iterating yahoo chart for %s: %w", ticker, err)
	}

	return bars, nil
}

func toDatetime(t time.Time) *datetime.Datetime {
	//nolint:exhaustruct // only the calendar date is sent
	return &datetime.Datetime{
		Year:  t.Year(),
		Month: int(t.Month()),
		Day:   t.Day(),
	}
}

func yahooBarToMarketData(ticker string, bar *finance.ChartBar, gmtOffset int) (types.MarketData, bool) {
	if bar == nil || !bar.AdjClose.IsPositive() {
		return types.MarketData{}, false
	}

	return types.MarketData{
		Symbol:        ticker,
		Date:          time.Unix(int64(bar.Timestamp+gmtOffset), 0).UTC(),
		Open:          bar.Open.InexactFloat64(),
		High:          bar.High.InexactFloat64(),
		Low:           bar.Low.InexactFloat64(),
		Close:         bar.Close.InexactFloat64(),
		AdjustedClose: bar.AdjClose.InexactFloat64(),
		Volume:        float64(bar.Volume),
	}, true
}
