package types

import (
	"fmt"
	"time"
)

// LogReturn is the natural log of an adjusted close over the previous one.
type LogReturn struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"daily_log_return"`
}

// VolatilityPoint is the rolling standard deviation ending at Date.
type VolatilityPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"volatility"`
}

// Index holds one configured market index: its raw price table and the series derived from it.
type Index struct {
	// Name is the display name, equal to the configuration key.
	Name string `json:"name"`
	// Ticker is the symbol sent to the market data provider.
	Ticker string `json:"ticker"`
	// Prices is ordered by Date ascending.
	Prices []MarketData `json:"prices"`

	DailyLogReturn []LogReturn       `json:"daily_log_return"`
	Volatility     []VolatilityPoint `json:"volatility"`
}

func (i *Index) String() string {
	return i.Describe(func(t time.Time) string { return t.Format(time.DateOnly) })
}

// Describe renders "Name (Ticker): N rows [first .. last]" with dates rendered by formatDate.
func (i *Index) Describe(formatDate func(time.Time) string) string {
	if len(i.Prices) == 0 {
		return fmt.Sprintf("%s (%s): 0 rows", i.Name, i.Ticker)
	}

	first := formatDate(i.Prices[0].Date)
	last := formatDate(i.Prices[len(i.Prices)-1].Date)

	return fmt.Sprintf("%s (%s): %d rows [%s .. %s]", i.Name, i.Ticker, len(i.Prices), first, last)
}
