package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"nsqtop/internal/display"
	internalhttp "nsqtop/internal/http"
	"nsqtop/internal/lookup"
	"nsqtop/internal/poller"
	"nsqtop/internal/shared/configs"
	"nsqtop/internal/shared/loggers"
	"nsqtop/internal/stats"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	logFile   *os.File
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	var logWriter io.Writer = io.Discard
	var logFile *os.File
	if config.Log.File != "" {
		f, err := os.OpenFile(config.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logWriter = f
		logFile = f
	}

	appLogger, err := loggers.New(logWriter, config.Log.Level)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "nsqtop").
		Logger()

	return &App{
		config:    config,
		appLogger: appLogger,
		logFile:   logFile,
	}, nil
}

// Run takes over the terminal and drives the poll loop until ctx is
// cancelled (signal) or the user quits from the keyboard. The screen is
// restored on every exit path, including panics unwinding through here.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen, err := display.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Close()

	go screen.WatchInput(ctx, cancel)

	if app.config.Debug.Addr != "" {
		app.startDebugServer(ctx)
	}

	lookupTimeout := time.Duration(app.config.Lookup.TimeoutSeconds) * time.Second
	monitor := poller.New(poller.Options{
		Resolver:        lookup.NewResolver(app.config.Lookup.Addresses, lookupTimeout),
		Fetcher:         stats.NewFetcher(lookupTimeout),
		Renderer:        screen,
		LookupAddresses: app.config.Lookup.Addresses,
		Interval:        time.Duration(app.config.Poll.IntervalSeconds) * time.Second,
		Thresholds: display.Thresholds{
			Warn: app.config.Display.DepthWarnThreshold,
			Crit: app.config.Display.DepthCritThreshold,
		},
		HistoryLength: app.config.Display.HistoryLength,
		Logger:        app.appLogger.With().Str(loggers.FieldComponent, "poller").Logger(),
	})

	app.appLogger.Info().
		Msgf("starting nsqtop (lookupd=%v, interval=%ds)",
			app.config.Lookup.Addresses, app.config.Poll.IntervalSeconds)

	err = monitor.Run(ctx)

	app.appLogger.Info().Msg("stopped")
	if app.logFile != nil {
		app.logFile.Close()
	}
	return err
}

// startDebugServer serves /healthz and /metrics on the configured address
// until ctx is cancelled. Failures are logged, never fatal: the dashboard
// must keep running without its debug listener.
func (app *App) startDebugServer(ctx context.Context) {
	httpLogger := app.appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	server := &http.Server{
		Addr:              app.config.Debug.Addr,
		Handler:           internalhttp.NewRouter(httpLogger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		httpLogger.Info().Msgf("debug server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			httpLogger.Error().Err(err).Msg("debug server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()
}
