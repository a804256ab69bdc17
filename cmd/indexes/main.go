package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap/zapcore"

	"github.com/rxtech-lab/argo-indexes/internal/config"
	"github.com/rxtech-lab/argo-indexes/internal/loader"
	"github.com/rxtech-lab/argo-indexes/internal/logger"
	"github.com/rxtech-lab/argo-indexes/internal/version"
	"github.com/rxtech-lab/argo-indexes/pkg/marketdata"
	"github.com/rxtech-lab/argo-indexes/pkg/marketdata/provider"
	"github.com/rxtech-lab/argo-indexes/pkg/schema"
)

// exitFailure is returned for every load error.
const exitFailure = -1

type app struct {
	stdout io.Writer
	stderr io.Writer
	// provider replaces the configured provider when set.
	provider provider.Provider
	now      func() time.Time
}

func newApp() *app {
	return &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		now:    time.Now,
	}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "indexes",
		Usage:     "Load market indexes and derive daily log returns and rolling volatility",
		Version:   version.GetVersion(),
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Commands: []*cli.Command{
			{
				Name:  "load",
				Usage: "Download the configured indexes and print a summary",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "config",
						Aliases:  []string{"c"},
						Usage:    "Path to the JSON or YAML index configuration",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "window",
						Aliases: []string{"w"},
						Usage:   "Rolling volatility window, overrides the configuration",
					},
					&cli.StringFlag{
						Name:    "polygon-api-key",
						Usage:   "API key for the polygon provider",
						Sources: cli.EnvVars("POLYGON_API_KEY"),
					},
					&cli.StringFlag{
						Name:  "log-level",
						Usage: "Log level (debug, info, warn, error)",
						Value: "info",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "Disable logging and the progress bar",
					},
				},
				Action: a.loadAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of the index configuration",
				Action: a.schemaAction,
			},
			{
				Name:   "providers",
				Usage:  "List the supported market data providers",
				Action: a.providersAction,
			},
		},
	}
}

func (a *app) loadAction(ctx context.Context, cmd *cli.Command) error {
	log, err := a.newLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts := loader.Options{
		Provider:      a.provider,
		Defaults:      config.NewDefaults(a.now()),
		Logger:        log,
		PolygonApiKey: cmd.String("polygon-api-key"),
		Window:        int(cmd.Int("window")),
	}

	if !cmd.Bool("quiet") {
		opts.ProgressWriter = a.stderr
	}

	l, err := loader.New(ctx, cmd.String("config"), opts)
	if err != nil {
		return err
	}

	if err := l.PrintIndexes(a.stdout); err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.stdout, summaryTable(l))

	return err
}

func (a *app) newLogger(cmd *cli.Command) (*logger.Logger, error) {
	if cmd.Bool("quiet") {
		return logger.NewNopLogger(), nil
	}

	level, err := zapcore.ParseLevel(cmd.String("log-level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	return logger.NewLogger(level)
}

func (a *app) schemaAction(_ context.Context, _ *cli.Command) error {
	jsonSchema, err := schema.ToJSONSchema(config.Config{})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.stdout, jsonSchema)

	return err
}

func (a *app) providersAction(_ context.Context, _ *cli.Command) error {
	infos := make([]marketdata.ProviderInfo, 0)

	for _, name := range marketdata.GetSupportedProviders() {
		info, err := marketdata.GetProviderInfo(name)
		if err != nil {
			return err
		}

		infos = append(infos, info)
	}

	_, err := fmt.Fprintln(a.stdout, providersTable(infos))

	return err
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, a *app, args []string) int {
	if err := a.command().Run(ctx, args); err != nil {
		fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: "+err.Error()))

		return exitFailure
	}

	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, newApp(), os.Args)

	stop()
	os.Exit(code)
}
