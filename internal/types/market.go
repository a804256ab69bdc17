package types

import "time"

// MarketData is one daily bar of an index price table.
type MarketData struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	// Date is the trading date truncated to midnight UTC.
	Date  time.Time `json:"date" yaml:"date"`
	Open  float64   `json:"open" yaml:"open"`
	High  float64   `json:"high" yaml:"high"`
	Low   float64   `json:"low" yaml:"low"`
	Close float64   `json:"close" yaml:"close"`
	// AdjustedClose is the close adjusted for splits and distributions.
	// Providers that only serve adjusted aggregates copy Close into it.
	AdjustedClose float64 `json:"adjusted_close" yaml:"adjusted_close"`
	Volume        float64 `json:"volume" yaml:"volume"`
}

// AdjustedCloses returns the adjusted close column of a price table.
func AdjustedCloses(prices []MarketData) []float64 {
	closes := make([]float64, len(prices))
	for i, bar := range prices {
		closes[i] = bar.AdjustedClose
	}

	return closes
}

// DateWindow is the half-open range [Start, End) requested from a provider,
// together with both bounds rendered in the configured date format.
type DateWindow struct {
	Start     time.Time
	End       time.Time
	StartText string
	EndText   string
}

// Contains reports whether t falls inside [Start, End).
func (w DateWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
