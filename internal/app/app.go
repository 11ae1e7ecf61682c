package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/DanishShaikh18/ShopFusion/internal/client"
	"github.com/DanishShaikh18/ShopFusion/internal/config"
	handler "github.com/DanishShaikh18/ShopFusion/internal/handler/http"
	"github.com/DanishShaikh18/ShopFusion/internal/view"
	"github.com/DanishShaikh18/ShopFusion/pkg/health"
)

// App wires together all dependencies and runs the search UI server.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// API client. The base URL is injected here; nothing downstream reads
	// the environment.
	searchClient, err := client.New(client.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.RequestTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("init search client: %w", err)
	}
	logger.Info("search client initialized",
		slog.String("base_url", cfg.APIBaseURL),
		slog.Bool("mock_default", cfg.UseMock),
	)

	// The page view. One instance for the process lifetime.
	searchView := view.New(searchClient, logger, view.WithMock(cfg.UseMock))

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("search-api", searchClient.Ping)

	// HTTP router.
	router, err := handler.NewRouter(searchView, healthHandler, handler.RouterConfig{
		Environment: cfg.Environment,
		SearchRPS:   cfg.SearchRPS,
		SearchBurst: cfg.SearchBurst,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("init router: %w", err)
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server, blocking until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		return err
	}

	a.logger.Info("application shutdown complete")
	return nil
}
