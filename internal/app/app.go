package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"pbshist/internal/aggregators"
	internalhttp "pbshist/internal/http"
	"pbshist/internal/ingestors"
	"pbshist/internal/reports"
	"pbshist/internal/shared/configs"
	"pbshist/internal/shared/filestorages"
	"pbshist/internal/shared/loggers"
	"pbshist/internal/shared/metrics"
	"pbshist/internal/stores"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger

	ingestionService ingestors.IngestionService
	renderer         reports.TextRenderer
	server           *http.Server
}

// New creates and initializes a new App instance. Logs go to stderr.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return NewWithLogger(config, appLogger)
}

// NewWithLogger is New with a caller supplied logger.
func NewWithLogger(config *configs.Config, appLogger loggers.Logger) (*App, error) {
	appLogger = appLogger.With().
		Str(loggers.FieldApp, "pbshist").
		Logger()

	// Report export is optional
	var reportStore stores.ReportStore
	if config.Export.RootDir != "" {
		fileStorage, err := filestorages.NewFileStorage(config.Export.RootDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		reportStore = stores.NewReportStore(fileStorage)
	}

	// Initialize ingestionService
	ingestionService := ingestors.NewIngestionService(ingestors.Options{
		MalformedLines: ingestors.MalformedLinePolicy(config.Parse.MalformedLines),
		UnknownCodes:   aggregators.UnknownCodePolicy(config.Parse.UnknownCodes),
		Queue:          config.Parse.Queue,
	}, aggregators.NewKeyValueExtractor(), reportStore)

	renderer := reports.NewTextRenderer(reports.Options{
		ShowRatios: config.Report.ShowRatios,
		ShowLegend: config.Report.ShowLegend,
	})

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, httpLogger, config.Server.MaxBodyBytes)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:           config,
		appLogger:        appLogger,
		ingestionService: ingestionService,
		renderer:         renderer,
		server:           server,
	}, nil
}

// Run builds the histogram of the accounting log at logPath and writes the text
// report to stdout. It is the one-shot report mode.
func (app *App) Run(ctx context.Context, logPath string, stdout io.Writer) error {
	ctx = app.appLogger.WithContext(ctx)
	defer app.writeMetricsTextfile()

	report, err := app.ingestionService.IngestFile(ctx, logPath)
	if err != nil {
		return err
	}

	if err := app.renderer.Render(stdout, report); err != nil {
		return errInternalRenderFailed(err)
	}
	return nil
}

func (app *App) writeMetricsTextfile() {
	path := app.config.Metrics.TextfilePath
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		app.appLogger.Warn().Err(err).Str("textfile_path", path).Msg("failed to write metrics textfile")
	}
}

// Serve runs the HTTP server until ctx is done, then shuts it down gracefully.
func (app *App) Serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := app.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting pbshist service on port %d (log_level=%s, queue=%s, export_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Parse.Queue,
			app.config.Export.RootDir)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
