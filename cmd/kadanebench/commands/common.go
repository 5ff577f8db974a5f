package commands

import (
	"context"
	stdErrors "errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/kadanebench/internal/config"
	"git.home.luguber.info/inful/kadanebench/internal/errors"
	"git.home.luguber.info/inful/kadanebench/internal/harness"
	"git.home.luguber.info/inful/kadanebench/internal/logfields"
	"git.home.luguber.info/inful/kadanebench/internal/metrics"
	"git.home.luguber.info/inful/kadanebench/internal/store"
	"git.home.luguber.info/inful/kadanebench/internal/tracker"
)

// Global carries process-level I/O into every subcommand.
type Global struct {
	Ctx context.Context
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"kadanebench.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Interactive InteractiveCmd `cmd:"" default:"1" help:"Start the interactive benchmark menu (default)"`
	Run         RunCmd         `cmd:"" help:"Find the maximum subarray of the given integers"`
	EdgeCases   EdgeCasesCmd   `cmd:"" name:"edge-cases" help:"Run the edge case suite"`
	Compare     CompareCmd     `cmd:"" help:"Compare Standard and Optimized on random arrays"`
	Sweep       SweepCmd       `cmd:"" help:"Run the comprehensive benchmark over all sizes and ranges"`
	History     HistoryCmd     `cmd:"" help:"Show recent runs from the history database"`
	Init        InitCmd        `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing and installs a bootstrap logger until
// the configuration is loaded.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// App is the wired harness for one process run.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Tracker  *tracker.Tracker
	History  *store.SQLiteStore
	Registry *prom.Registry
	Runner   *harness.Runner
}

// NewApp loads configuration and wires logging, metrics, history and the
// runner. Callers must Close the returned App.
func NewApp(g *Global, root *CLI) (*App, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logging.NewLogger(g.Err, root.Verbose)
	slog.SetDefault(logger)

	app := &App{
		Config:   cfg,
		Logger:   logger,
		Registry: prom.NewRegistry(),
	}

	trOpts := []tracker.Option{
		tracker.WithRecorder(metrics.NewPrometheusRecorder(app.Registry)),
		tracker.WithLogger(logger),
	}
	runOpts := []harness.Option{harness.WithLogger(logger)}

	if cfg.History.Path != "" {
		st, err := openHistory(cfg.History.Path)
		if err != nil {
			return nil, err
		}
		app.History = st
		trOpts = append(trOpts, tracker.WithSink(st))
		runOpts = append(runOpts, harness.WithHistory(st))
	}

	app.Tracker = tracker.New(trOpts...)
	app.Runner = harness.NewRunner(g.In, g.Out, cfg, app.Tracker, runOpts...)

	logger.Debug("Session started",
		logfields.SessionID(app.Tracker.SessionID()),
		logfields.Path(root.Config))
	return app, nil
}

func openHistory(path string) (*store.SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.FileSystemError("create history directory", dir, err)
		}
	}
	st, err := store.NewSQLiteStore(path)
	if err != nil {
		return nil, errors.StoreError("open", err).WithContext("path", path)
	}
	return st, nil
}

// Close dumps the metrics textfile when configured and closes the history
// database.
func (a *App) Close() error {
	var errs []error
	if path := a.Config.Metrics.Textfile; path != "" {
		if err := metrics.WriteTextfile(a.Registry, path); err != nil {
			errs = append(errs, errors.FileSystemError("write metrics textfile", path, err))
		} else {
			a.Logger.Debug("Wrote metrics textfile", logfields.Path(path))
		}
	}
	if a.History != nil {
		if err := a.History.Close(); err != nil {
			errs = append(errs, errors.StoreError("close", err))
		}
	}
	return stdErrors.Join(errs...)
}

// withApp runs fn against a freshly wired App and closes it afterwards.
func withApp(g *Global, root *CLI, fn func(*App) error) (err error) {
	app, err := NewApp(g, root)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(app)
}
