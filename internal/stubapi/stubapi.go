// Package stubapi serves the product search API contract from fixtures so
// the UI can be developed and tested without scraper credentials. It mirrors
// the real backend's surface: POST /products/ and /products/mock sharing one
// request shape, errors as {"detail": "..."} bodies.
package stubapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/DanishShaikh18/ShopFusion/internal/domain"
	apperrors "github.com/DanishShaikh18/ShopFusion/pkg/errors"
	"github.com/DanishShaikh18/ShopFusion/pkg/httputil"
	"github.com/DanishShaikh18/ShopFusion/pkg/middleware"
	"github.com/DanishShaikh18/ShopFusion/pkg/validator"
)

// errNoAPIKey marks a live search attempted without scraper credentials.
var errNoAPIKey = errors.New("scraper API key not configured")

// Config holds stub server configuration.
type Config struct {
	// APIKey mimics the real backend's scraper credential. When empty, the
	// live path fails the way the real backend does without a key; the mock
	// path always works.
	APIKey string
}

// Handler serves the stubbed search endpoints.
type Handler struct {
	cfg    Config
	logger *slog.Logger
}

// NewHandler creates a stub API handler.
func NewHandler(cfg Config, logger *slog.Logger) *Handler {
	return &Handler{cfg: cfg, logger: logger}
}

// NewRouter returns the stub API router.
func NewRouter(cfg Config, logger *slog.Logger) http.Handler {
	h := NewHandler(cfg, logger)

	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))

	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.SearchProducts)
		r.Post("/mock", h.MockSearch)
	})

	return r
}

// SearchProducts handles POST /products/. Without an API key it reports the
// same opaque failure the real backend returns when its scraper blows up.
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeRequest(w, r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	if h.cfg.APIKey == "" {
		h.logger.WarnContext(r.Context(), "live search requested without API key",
			slog.String("query", req.Query),
		)
		httputil.WriteError(w, r,
			apperrors.Internal("Search failed due to an internal error.", errNoAPIKey), h.logger)
		return
	}

	h.respond(w, req)
}

// MockSearch handles POST /products/mock and always serves fixtures.
func (h *Handler) MockSearch(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeRequest(w, r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	h.respond(w, req)
}

// decodeRequest parses and validates the shared request body. Malformed JSON
// and validation failures both surface as 422 details, like the real backend.
func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request) (domain.SearchRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req domain.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return domain.SearchRequest{}, apperrors.Unprocessable("invalid request body: " + err.Error())
	}

	if req.MaxResults == 0 {
		req.MaxResults = domain.DefaultMaxResults
	}

	if err := validator.Validate(req); err != nil {
		return domain.SearchRequest{}, err
	}

	return req, nil
}

func (h *Handler) respond(w http.ResponseWriter, req domain.SearchRequest) {
	products := Fixtures()
	if len(products) > req.MaxResults {
		products = products[:req.MaxResults]
	}

	httputil.WriteJSON(w, http.StatusOK, domain.SearchResponse{
		Query:        req.Query,
		TotalResults: len(products),
		Products:     products,
	})
}
