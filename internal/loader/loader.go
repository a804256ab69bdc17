// Package loader builds the collection of market indexes described by a
// configuration file and derives their daily log returns and rolling volatility.
package loader

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-indexes/internal/config"
	"github.com/rxtech-lab/argo-indexes/internal/indicator"
	"github.com/rxtech-lab/argo-indexes/internal/logger"
	"github.com/rxtech-lab/argo-indexes/internal/types"
	"github.com/rxtech-lab/argo-indexes/pkg/marketdata"
	"github.com/rxtech-lab/argo-indexes/pkg/marketdata/provider"
)

const bannerWidth = 59

// Options controls how a Loader is built.
type Options struct {
	// Provider overrides the provider named in the configuration file.
	Provider provider.Provider
	// Defaults fill every setting the configuration file leaves out.
	Defaults config.Defaults
	Logger   *logger.Logger
	// ProgressWriter receives the fetch progress bar. Nil disables it.
	ProgressWriter io.Writer
	PolygonApiKey  string
	// Window overrides the configured volatility window when non-zero.
	Window int
}

// Loader owns the indexes fetched for one configuration.
type Loader struct {
	runID    string
	config   *config.Resolved
	indexes  []*types.Index
	logger   *logger.Logger
	progress io.Writer
}

// New reads the configuration at configPath, downloads every configured index in
// configuration order and computes the derived series. No loader is returned on error.
func New(ctx context.Context, configPath string, opts Options) (*Loader, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNopLogger()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	resolved, err := config.Resolve(cfg, opts.Defaults)
	if err != nil {
		return nil, err
	}

	if opts.Window != 0 {
		if err := indicator.ValidateWindow(opts.Window); err != nil {
			return nil, err
		}

		resolved.Window = opts.Window
	}

	client, err := newClient(resolved, opts)
	if err != nil {
		return nil, err
	}

	progress := opts.ProgressWriter
	if progress == nil {
		progress = io.Discard
	}

	l := &Loader{
		runID:    uuid.New().String(),
		config:   resolved,
		indexes:  make([]*types.Index, 0, len(resolved.Indexes)),
		logger:   log,
		progress: progress,
	}

	if err := l.fetch(ctx, client); err != nil {
		return nil, err
	}

	l.SetupDailyLogReturn()

	if err := l.SetupVolatility(resolved.Window); err != nil {
		return nil, err
	}

	return l, nil
}

func newClient(resolved *config.Resolved, opts Options) (*marketdata.Client, error) {
	if opts.Provider != nil {
		return marketdata.NewClientWithProvider(opts.Provider), nil
	}

	return marketdata.NewClient(marketdata.ClientConfig{
		ProviderType:  provider.ProviderType(resolved.Provider),
		PolygonApiKey: opts.PolygonApiKey,
	})
}

func (l *Loader) fetch(ctx context.Context, client *marketdata.Client) error {
	window := l.config.Range

	l.logger.Info("Loading indexes",
		zap.String("run_id", l.runID),
		zap.Int("count", len(l.config.Indexes)),
		zap.String("start", window.StartText),
		zap.String("end", window.EndText),
		zap.String("provider", l.config.Provider),
	)

	if len(l.config.Indexes) == 0 {
		return nil
	}

	bar := progressbar.NewOptions(len(l.config.Indexes),
		progressbar.OptionSetWriter(l.progress),
		progressbar.OptionSetDescription("Downloading indexes"),
		progressbar.OptionShowCount(),
	)
	defer func() { _ = bar.Finish() }()

	for _, entry := range l.config.Indexes {
		bar.Describe(fmt.Sprintf("Downloading %s", entry.Name))

		prices, err := client.Download(ctx, marketdata.DownloadParams{
			Ticker:    entry.Ticker,
			StartDate: window.Start,
			EndDate:   window.End,
		})
		if err != nil {
			return err
		}

		l.indexes = append(l.indexes, &types.Index{
			Name:   entry.Name,
			Ticker: entry.Ticker,
			Prices: prices,
		})

		l.logger.Info("Downloaded index",
			zap.String("run_id", l.runID),
			zap.String("name", entry.Name),
			zap.String("ticker", entry.Ticker),
			zap.Int("rows", len(prices)),
		)

		_ = bar.Add(1)
	}

	return nil
}

// Indexes returns the loaded indexes in configuration order.
func (l *Loader) Indexes() []*types.Index {
	return l.indexes
}

// Window returns the download range with both ends rendered in the configured date format.
func (l *Loader) Window() types.DateWindow {
	return l.config.Range
}

// VolatilityWindow returns the number of observations per rolling volatility window.
func (l *Loader) VolatilityWindow() int {
	return l.config.Window
}

// SetupDailyLogReturn replaces every index's DailyLogReturn with the log return of its adjusted close.
func (l *Loader) SetupDailyLogReturn() {
	for _, index := range l.indexes {
		index.DailyLogReturn = indicator.DailyLogReturn(index.Prices)
	}
}

// SetupVolatility replaces every index's Volatility with the rolling standard
// deviation of its adjusted close over window observations.
func (l *Loader) SetupVolatility(window int) error {
	if err := indicator.ValidateWindow(window); err != nil {
		return err
	}

	for _, index := range l.indexes {
		points, err := indicator.RollingVolatility(index.Prices, window)
		if err != nil {
			return err
		}

		index.Volatility = points
	}

	return nil
}

// PrintIndexes writes the list of loaded indexes framed by dashed banners.
// Dates are rendered with the configured date format.
func (l *Loader) PrintIndexes(w io.Writer) error {
	banner := strings.Repeat("-", bannerWidth)

	var b strings.Builder

	b.WriteString(banner + "\n")
	b.WriteString("Analyzing this index list: {\n")

	for _, index := range l.indexes {
		b.WriteString("\t" + index.Describe(l.formatDate) + "\n")
	}

	b.WriteString("}\n")
	b.WriteString(banner + "\n")

	_, err := io.WriteString(w, b.String())

	return err
}

func (l *Loader) formatDate(t time.Time) string {
	if l.config == nil {
		return t.Format(time.DateOnly)
	}

	return l.config.Format.Format(t)
}
