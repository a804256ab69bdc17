package mocks

import (
	"math"
	"math/rand"
	"time"

	"github.com/rxtech-lab/argo-indexes/internal/types"
)

// DataGenerator generates daily index bars for tests.
type DataGenerator struct {
	rng *rand.Rand
}

// NewDataGenerator creates a new DataGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures how daily bars are generated.
type GeneratorConfig struct {
	// Symbol is the index ticker (e.g., "^GSPC")
	Symbol string
	// StartDate is the first trading date; weekends are skipped
	StartDate time.Time
	// Count is the number of trading days to generate
	Count int
	// InitialPrice is the starting price
	InitialPrice float64
	// Volatility controls daily price movement (0.01 = 1% typical daily move)
	Volatility float64
	// AdjustmentFactor scales Close into AdjustedClose (1.0 = no distributions)
	AdjustmentFactor float64
	// VolumeBase is the average volume per day
	VolumeBase float64
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Symbol:           "^TEST",
		StartDate:        time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Count:            250,
		InitialPrice:     4700.0,
		Volatility:       0.01,
		AdjustmentFactor: 1.0,
		VolumeBase:       3_000_000_000,
	}
}

// Generate creates daily bars following a geometric Brownian motion.
func (g *DataGenerator) Generate(config GeneratorConfig) []types.MarketData {
	data := make([]types.MarketData, config.Count)
	currentPrice := config.InitialPrice
	currentDate := nextTradingDay(config.StartDate)

	for i := 0; i < config.Count; i++ {
		open := currentPrice

		// Box-Muller transform for a standard normal draw
		u1 := g.rng.Float64()
		u2 := g.rng.Float64()
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

		closePrice := open * (1 + config.Volatility*z)
		if closePrice <= 0 {
			closePrice = open * 0.99
		}

		high := math.Max(open, closePrice) * (1 + g.rng.Float64()*config.Volatility*0.5)
		low := math.Min(open, closePrice) * (1 - g.rng.Float64()*config.Volatility*0.5)
		volume := config.VolumeBase * (0.7 + g.rng.Float64()*0.6)

		data[i] = types.MarketData{
			Symbol:        config.Symbol,
			Date:          currentDate,
			Open:          roundToDecimals(open, 4),
			High:          roundToDecimals(high, 4),
			Low:           roundToDecimals(low, 4),
			Close:         roundToDecimals(closePrice, 4),
			AdjustedClose: roundToDecimals(closePrice*config.AdjustmentFactor, 4),
			Volume:        math.Round(volume),
		}

		currentPrice = closePrice
		currentDate = nextTradingDay(currentDate.AddDate(0, 0, 1))
	}

	return data
}

// FromCloses builds bars dated on consecutive trading days with the given adjusted closes.
func FromCloses(symbol string, start time.Time, closes ...float64) []types.MarketData {
	data := make([]types.MarketData, len(closes))
	date := nextTradingDay(start)

	for i, c := range closes {
		data[i] = types.MarketData{
			Symbol:        symbol,
			Date:          date,
			Open:          c,
			High:          c,
			Low:           c,
			Close:         c,
			AdjustedClose: c,
		}
		date = nextTradingDay(date.AddDate(0, 0, 1))
	}

	return data
}

func nextTradingDay(t time.Time) time.Time {
	for t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		t = t.AddDate(0, 0, 1)
	}

	return t
}

func roundToDecimals(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}
