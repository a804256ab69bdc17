package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/moznion/go-optional"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-indexes/internal/types"
	"github.com/rxtech-lab/argo-indexes/pkg/errors"
)

// Config mirrors the configuration file. Every field except Indexes is optional
// and falls back to Defaults during Resolve.
type Config struct {
	LookupDays *int    `json:"lookup_days,omitempty" yaml:"lookup_days,omitempty" jsonschema:"title=Lookup Days,description=Calendar days to look back from end_date,minimum=1,default=365" validate:"omitempty,min=1"`
	EndDate    *string `json:"end_date,omitempty" yaml:"end_date,omitempty" jsonschema:"title=End Date,description=Exclusive end of the download range; defaults to today"`
	DateFormat *string `json:"date_format,omitempty" yaml:"date_format,omitempty" jsonschema:"title=Date Format,description=strftime pattern used to render dates,default=%Y-%m-%d"`
	Provider   *string `json:"provider,omitempty" yaml:"provider,omitempty" jsonschema:"title=Provider,description=Market data provider,enum=yahoo,enum=polygon,enum=binance,default=yahoo" validate:"omitempty,oneof=yahoo polygon binance"`
	Window     *int    `json:"window,omitempty" yaml:"window,omitempty" jsonschema:"title=Volatility Window,description=Observations per rolling volatility window,minimum=2,default=30" validate:"omitempty,min=2"`
	// Indexes maps a display name to a provider ticker, in document order.
	Indexes *orderedmap.OrderedMap[string, string] `json:"indexes" yaml:"indexes" jsonschema:"title=Indexes,description=Display name to ticker symbol,required"`
}

// JSONSchemaExtend describes Indexes as a string map; the reflector cannot see through the ordered map.
func (Config) JSONSchemaExtend(schema *jsonschema.Schema) {
	indexes, ok := schema.Properties.Get("indexes")
	if !ok {
		return
	}

	indexes.Type = "object"
	indexes.Properties = nil
	indexes.AdditionalProperties = &jsonschema.Schema{Type: "string"}
}

// IndexEntry is one configured index in document order.
type IndexEntry struct {
	Name   string
	Ticker string
}

// Resolved is a Config with every default applied and every value parsed.
type Resolved struct {
	LookupDays int
	DateFormat string
	// Format is DateFormat compiled for rendering and parsing dates.
	Format   DateFormat
	Provider string
	Window   int
	Indexes  []IndexEntry
	// Range is [EndDate - LookupDays, EndDate) at calendar-date granularity.
	Range types.DateWindow
}

// Load reads and decodes the configuration file at path.
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeConfigNotFound, err, "file %s not found", path)
	}

	return Parse(raw, isYAML(path))
}

// Parse decodes a configuration document.
func Parse(raw []byte, asYAML bool) (*Config, error) {
	var cfg Config

	var err error
	if asYAML {
		err = yaml.Unmarshal(raw, &cfg)
	} else {
		err = json.Unmarshal(raw, &cfg)
	}

	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigMalformed, "error in decoding config", err)
	}

	return &cfg, nil
}

// Resolve validates cfg and applies defaults.
func Resolve(cfg *Config, defaults Defaults) (*Resolved, error) {
	if cfg.Indexes == nil {
		return nil, errors.New(errors.ErrCodeConfigIncomplete, "indexes is required")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid configuration", err)
	}

	entries := make([]IndexEntry, 0, cfg.Indexes.Len())
	for pair := cfg.Indexes.Oldest(); pair != nil; pair = pair.Next() {
		if strings.TrimSpace(pair.Key) == "" || strings.TrimSpace(pair.Value) == "" {
			return nil, errors.Newf(errors.ErrCodeConfigIncomplete, "index %q needs both a name and a ticker", pair.Key)
		}

		entries = append(entries, IndexEntry{Name: pair.Key, Ticker: pair.Value})
	}

	dateFormat := optional.FromNillable(cfg.DateFormat).TakeOr(defaults.DateFormat)

	format, err := ParseDateFormat(dateFormat)
	if err != nil {
		return nil, err
	}

	end := defaults.EndDate
	if cfg.EndDate != nil {
		end, err = parseDate(*cfg.EndDate, format)
		if err != nil {
			return nil, err
		}
	}

	end = truncateToDate(end)
	lookupDays := optional.FromNillable(cfg.LookupDays).TakeOr(defaults.LookupDays)
	start := end.AddDate(0, 0, -lookupDays)

	return &Resolved{
		LookupDays: lookupDays,
		DateFormat: dateFormat,
		Format:     format,
		Provider:   optional.FromNillable(cfg.Provider).TakeOr(defaults.Provider),
		Window:     optional.FromNillable(cfg.Window).TakeOr(defaults.Window),
		Indexes:    entries,
		Range: types.DateWindow{
			Start:     start,
			End:       end,
			StartText: format.Format(start),
			EndText:   format.Format(end),
		},
	}, nil
}

func parseDate(value string, format DateFormat) (time.Time, error) {
	if t, err := format.Parse(value); err == nil {
		return t, nil
	}

	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Newf(errors.ErrCodeInvalidConfiguration, "end_date %q does not match the date format", value)
}

// truncateToDate keeps the calendar date of t in its own location and moves it to midnight UTC.
func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
