package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"scan-analytics/internal/eventlog"
	internalhttp "scan-analytics/internal/http"
	"scan-analytics/internal/report"
	"scan-analytics/internal/scans"
	"scan-analytics/internal/shared/configs"
	"scan-analytics/internal/shared/loggers"
	"scan-analytics/internal/shared/ulid"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger

	analysisService scans.AnalysisService

	server *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "scan-analytics").
		Logger()

	// Initialize analysis pipeline
	reader := eventlog.NewReader()
	aggregator := scans.NewAggregator()
	analysisService := scans.NewAnalysisService(reader, aggregator)

	return &App{
		config:          config,
		appLogger:       appLogger,
		analysisService: analysisService,
	}, nil
}

// Run performs one synchronous analysis of the events file and writes the
// rendered report to out. This is the CLI path: it either completes and
// returns nil, or returns the first fatal error.
func (app *App) Run(ctx context.Context, eventsPath string, out io.Writer) error {
	runLogger := app.appLogger.With().
		Str(loggers.FieldComponent, "cli").
		Str(loggers.FieldRunID, ulid.NewULID()).
		Logger()
	ctx = runLogger.WithContext(ctx)

	scanReport, err := app.analysisService.Analyze(ctx, eventsPath)
	if err != nil {
		return err
	}

	return report.NewReporter(out).Render(scanReport)
}

// Serve starts the HTTP report server in a blocking manner.
func (app *App) Serve(eventsPath string) error {
	httpLogger := app.appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(app.analysisService, eventsPath, httpLogger)

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(app.config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(app.config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(app.config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(app.config.Server.IdleTimeout) * time.Second,
	}

	app.appLogger.Info().
		Str(loggers.FieldEventsFile, eventsPath).
		Msgf("Starting scan-analytics report server on port %d (log_level=%s)",
			app.config.Server.Port,
			app.config.Log.Level)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the report server.
func (app *App) Shutdown(ctx context.Context) error {
	if app.server == nil {
		return nil
	}

	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
