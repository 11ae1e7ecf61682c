package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanishShaikh18/ShopFusion/internal/stubapi"
	pkgconfig "github.com/DanishShaikh18/ShopFusion/pkg/config"
	"github.com/DanishShaikh18/ShopFusion/pkg/logger"
)

type stubConfig struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPPort int    `env:"STUB_HTTP_PORT" envDefault:"8000"`
	APIKey   string `env:"SERPAPI_KEY"`
}

func main() {
	var cfg stubConfig
	if err := pkgconfig.Load(&cfg); err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.New("shopfusion-stubapi", cfg.LogLevel)
	log.Info("starting stub search API",
		slog.Int("http_port", cfg.HTTPPort),
		slog.Bool("live_path_enabled", cfg.APIKey != ""),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      stubapi.NewRouter(stubapi.Config{APIKey: cfg.APIKey}, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		log.Error("http server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("stub search API stopped")
}
