package provider

import (
	"context"
	"fmt"
	"strconv"
	"time"

	binance "github.com/adshao/go-binance/v2"

	"github.com/rxtech-lab/argo-indexes/internal/types"
	"github.com/rxtech-lab/argo-indexes/pkg/errors"
)

const (
	binanceDailyInterval = "1d"
	// binanceKlinesLimit is the largest page the klines endpoint returns.
	binanceKlinesLimit = 1000
)

// BinanceAPIClient is the subset of the Binance REST client used for downloads.
type BinanceAPIClient interface {
	NewKlinesService() BinanceKlinesService
}

// BinanceKlinesService is the fluent klines request builder.
type BinanceKlinesService interface {
	Symbol(symbol string) BinanceKlinesService
	Interval(interval string) BinanceKlinesService
	StartTime(startTime int64) BinanceKlinesService
	EndTime(endTime int64) BinanceKlinesService
	Limit(limit int) BinanceKlinesService
	Do(ctx context.Context) ([]*binance.Kline, error)
}

type BinanceClient struct {
	apiClient BinanceAPIClient
}

// NewBinanceClient uses the public market data API, which needs no credentials.
func NewBinanceClient() Provider {
	return NewBinanceClientWithAPI(&binanceAPIAdapter{client: binance.NewClient("", "")})
}

// NewBinanceClientWithAPI creates a BinanceClient backed by the given API client.
func NewBinanceClientWithAPI(apiClient BinanceAPIClient) *BinanceClient {
	return &BinanceClient{apiClient: apiClient}
}

// Download pages through daily klines. Crypto pairs have no distributions, so
// Close doubles as AdjustedClose.
func (c *BinanceClient) Download(ctx context.Context, ticker string, startDate time.Time, endDate time.Time) ([]types.MarketData, error) {
	endTimeMillis := endDate.UnixMilli()
	currentStartTime := startDate.UnixMilli()
	bars := make([]types.MarketData, 0)

	for currentStartTime < endTimeMillis {
		klines, err := c.apiClient.NewKlinesService().
			Symbol(ticker).
			Interval(binanceDailyInterval).
			StartTime(currentStartTime).
			EndTime(endTimeMillis).
			Limit(binanceKlinesLimit).
			Do(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch klines from Binance: %w", err)
		}

		for _, k := range klines {
			bar, err := klineToMarketData(ticker, k)
			if err != nil {
				return nil, err
			}

			bars = append(bars, bar)
		}

		if len(klines) < binanceKlinesLimit {
			break
		}

		// Continue after the close of the last kline to avoid duplicates.
		currentStartTime = klines[len(klines)-1].CloseTime + 1
	}

	return bars, nil
}

func klineToMarketData(ticker string, k *binance.Kline) (types.MarketData, error) {
	fields := [5]string{k.Open, k.High, k.Low, k.Close, k.Volume}
	values := [5]float64{}

	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return types.MarketData{}, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "invalid kline value %q for %s", field, ticker)
		}

		values[i] = value
	}

	return types.MarketData{
		Symbol:        ticker,
		Date:          time.UnixMilli(k.OpenTime).UTC(),
		Open:          values[0],
		High:          values[1],
		Low:           values[2],
		Close:         values[3],
		AdjustedClose: values[3],
		Volume:        values[4],
	}, nil
}

type binanceAPIAdapter struct {
	client *binance.Client
}

func (a *binanceAPIAdapter) NewKlinesService() BinanceKlinesService {
	return &binanceKlinesAdapter{service: a.client.NewKlinesService()}
}

type binanceKlinesAdapter struct {
	service *binance.KlinesService
}

func (a *binanceKlinesAdapter) Symbol(symbol string) BinanceKlinesService {
	a.service.Symbol(symbol)
	return a
}

func (a *binanceKlinesAdapter) Interval(interval string) BinanceKlinesService {
	a.service.Interval(interval)
	return a
}

func (a *binanceKlinesAdapter) StartTime(startTime int64) BinanceKlinesService {
	a.service.StartTime(startTime)
	return a
}

func (a *binanceKlinesAdapter) EndTime(endTime int64) BinanceKlinesService {
	a.service.EndTime(endTime)
	return a
}

func (a *binanceKlinesAdapter) Limit(limit int) BinanceKlinesService {
	a.service.Limit(limit)
	return a
}

func (a *binanceKlinesAdapter) Do(ctx context.Context) ([]*binance.Kline, error) {
	return a.service.Do(ctx)
}
