package config

import (
	"time"

	"github.com/rxtech-lab/argo-indexes/internal/indicator"
)

const (
	DefaultLookupDays = 365
	// DefaultDateFormat renders dates as YYYY-MM-DD.
	DefaultDateFormat = "%Y-%m-%d"
	DefaultProvider   = "yahoo"
)

// Defaults holds the values used for every setting a config file leaves out.
// It is passed by value so tests can pin EndDate instead of depending on the clock.
type Defaults struct {
	LookupDays int
	EndDate    time.Time
	DateFormat string
	Window     int
	Provider   string
}

// NewDefaults returns the standard defaults with EndDate set to now.
func NewDefaults(now time.Time) Defaults {
	return Defaults{
		LookupDays: DefaultLookupDays,
		EndDate:    now,
		DateFormat: DefaultDateFormat,
		Window:     indicator.DefaultVolatilityWindow,
		Provider:   DefaultProvider,
	}
}
