package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DanishShaikh18/ShopFusion/internal/view"
	"github.com/DanishShaikh18/ShopFusion/pkg/health"
	"github.com/DanishShaikh18/ShopFusion/pkg/middleware"
)

// RouterConfig carries the knobs the router needs beyond its dependencies.
type RouterConfig struct {
	Environment string
	SearchRPS   int
	SearchBurst int
}

// NewRouter creates a chi router with the page routes, health checks, and
// metrics registered.
func NewRouter(
	v *view.Search,
	healthHandler *health.Handler,
	cfg RouterConfig,
	logger *slog.Logger,
) (http.Handler, error) {
	page, err := NewPageHandler(v, logger)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Global middleware
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.Environment = cfg.Environment
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("shopfusion-ui"))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Page routes. Submits are rate limited so a held-down enter key can't
	// hammer the scraper backend.
	r.Get("/", page.Index)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.SearchRPS, cfg.SearchBurst, logger))
		r.Post("/search", page.Search)
	})
	r.Post("/clear", page.Clear)

	return r, nil
}
