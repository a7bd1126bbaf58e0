package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/teamdir/internal/directory/http"
	"github.com/aussiebroadwan/teamdir/internal/directory/render"
	"github.com/aussiebroadwan/teamdir/internal/directory/service"
	"github.com/aussiebroadwan/teamdir/internal/directory/source"
	"github.com/aussiebroadwan/teamdir/internal/directory/store"
	"github.com/aussiebroadwan/teamdir/internal/directory/store/drivers/memory"
	"github.com/aussiebroadwan/teamdir/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config, out io.Writer) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "teamdir",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  out,
	})
}

// Application is the local preview server with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	store    store.Store
	loader   *source.Client
	renderer *render.Renderer

	// Services
	refreshService *service.RefreshService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config, logger *slog.Logger) (*Application, error) {
	renderer, err := render.New(render.Options{
		SiteName: cfg.SiteName,
		Links:    render.LinkQuery,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize templates: %w", err)
	}

	app := &Application{
		cfg:      cfg,
		logger:   logger,
		store:    memory.NewStore(),
		loader:   source.NewClient(cfg.Candidates(), cfg.FetchTimeout),
		renderer: renderer,
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the preview HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start loading data; the server answers 503 until the first load lands
	app.refreshService.Start()

	app.logger.Info("preview server starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"candidates", app.loader.Candidates,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		app.refreshService.Stop()
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down preview server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop reloading data
	app.refreshService.Stop()

	if err := app.store.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("preview server stopped")
	return nil
}

// initServices initializes the data refresher
func (app *Application) initServices() {
	app.refreshService = service.NewRefreshService(
		app.loader,
		app.store,
		app.logger,
		app.cfg.RefreshInterval,
	)
	app.refreshService.WatchPaths = source.LocalPaths(app.loader.Candidates)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.store,
		app.renderer,
		app.logger,
	)
	router.ImageDir = app.cfg.ImageDir
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
