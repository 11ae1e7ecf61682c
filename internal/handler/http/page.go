package http

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DanishShaikh18/ShopFusion/internal/view"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// PageHandler serves the search page and handles form submits against the
// process-wide search view.
type PageHandler struct {
	view   *view.Search
	tmpl   *template.Template
	logger *slog.Logger
}

// pageData is the template payload for the search page.
type pageData struct {
	State view.State
}

// NewPageHandler creates the page handler, parsing the embedded templates.
func NewPageHandler(v *view.Search, logger *slog.Logger) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &PageHandler{
		view:   v,
		tmpl:   tmpl,
		logger: logger,
	}, nil
}

// Index handles GET / and renders the page from the current view state.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.view.Snapshot())
}

// Search handles POST /search: it reads the form, submits the query, and
// re-renders the page with the outcome.
func (h *PageHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	query := r.PostFormValue("query")

	// A non-numeric or missing limit falls back to the default, matching
	// the number input's behavior in the page.
	maxResults, err := strconv.Atoi(r.PostFormValue("max_results"))
	if err != nil {
		maxResults = 0
	}

	h.view.SetUseMock(r.PostFormValue("use_mock") != "")

	st := h.view.Submit(r.Context(), query, maxResults)
	h.render(w, r, st)
}

// Clear handles POST /clear.
func (h *PageHandler) Clear(w http.ResponseWriter, r *http.Request) {
	st := h.view.Clear()
	h.render(w, r, st)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, st view.State) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "index.html.tmpl", pageData{State: st}); err != nil {
		h.logger.ErrorContext(r.Context(), "render page",
			slog.String("error", err.Error()),
		)
	}
}
