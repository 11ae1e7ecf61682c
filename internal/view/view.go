// Package view holds the state of the search page and the submit/clear
// operations against it. State lives for the lifetime of the process, the
// Go analogue of component-local state in the original single-page form.
package view

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/DanishShaikh18/ShopFusion/internal/client"
	"github.com/DanishShaikh18/ShopFusion/internal/domain"
)

// ErrEmptyQuery is the message shown when a submit carries no query text.
const ErrEmptyQuery = "Please enter a search query."

// Searcher is the slice of the API client the view needs.
type Searcher interface {
	Search(ctx context.Context, req domain.SearchRequest, mode client.Mode) (*domain.SearchResponse, error)
}

// State is a snapshot of everything the page renders from.
// Products and Err are mutually exclusive: a successful submit clears the
// error, a failed one clears the products.
type State struct {
	Query      string
	MaxResults int
	Loading    bool
	Products   []domain.Product
	Err        string
	UseMock    bool
}

// Search owns the page state and performs the one side-effecting operation:
// submitting the current query to the search API.
//
// Submits are not cancelled when a new one starts; instead every submit is
// stamped with a monotonically increasing sequence number and a resolution
// only applies if its sequence is still the latest, so a slow stale response
// can never overwrite a newer result.
type Search struct {
	mu       sync.Mutex
	state    State
	seq      uint64
	searcher Searcher
	logger   *slog.Logger
}

// Option configures a Search view at construction.
type Option func(*Search)

// WithMaxResults sets the initial result limit.
func WithMaxResults(n int) Option {
	return func(s *Search) { s.state.MaxResults = domain.ClampMaxResults(n) }
}

// WithMock enables mock mode at construction.
func WithMock(on bool) Option {
	return func(s *Search) { s.state.UseMock = on }
}

// New creates a view with default state: empty query, default result limit,
// no results, no error.
func New(searcher Searcher, logger *slog.Logger, opts ...Option) *Search {
	s := &Search{
		searcher: searcher,
		logger:   logger,
		state: State{
			MaxResults: domain.DefaultMaxResults,
			Products:   []domain.Product{},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Search) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Search) snapshotLocked() State {
	st := s.state
	st.Products = make([]domain.Product, len(s.state.Products))
	copy(st.Products, s.state.Products)
	return st
}

// SetUseMock toggles which endpoint subsequent submits hit. It changes
// nothing about the request body or the rest of the state.
func (s *Search) SetUseMock(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.UseMock = on
}

// Submit validates the query, issues one search request, and replaces the
// state with the outcome. It returns the resulting state snapshot. If a
// newer submit resolved while this one was in flight, the stale outcome is
// discarded and the newer state is returned untouched.
func (s *Search) Submit(ctx context.Context, query string, maxResults int) State {
	trimmed := strings.TrimSpace(query)

	s.mu.Lock()
	s.state.Query = query
	s.state.MaxResults = domain.ClampMaxResults(maxResults)

	if trimmed == "" {
		s.state.Err = ErrEmptyQuery
		s.state.Products = []domain.Product{}
		s.state.Loading = false
		st := s.snapshotLocked()
		s.mu.Unlock()
		return st
	}

	s.seq++
	seq := s.seq
	mode := client.ModeLive
	if s.state.UseMock {
		mode = client.ModeMock
	}
	req := domain.SearchRequest{Query: trimmed, MaxResults: s.state.MaxResults}

	s.state.Loading = true
	s.state.Err = ""
	s.state.Products = []domain.Product{}
	s.mu.Unlock()

	resp, err := s.searcher.Search(ctx, req, mode)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		// A newer submit superseded this one while it was in flight.
		s.logger.DebugContext(ctx, "discarding stale search response",
			slog.String("query", trimmed),
			slog.Uint64("seq", seq),
			slog.Uint64("latest", s.seq),
		)
		return s.snapshotLocked()
	}

	s.state.Loading = false
	if err != nil {
		s.state.Err = errMessage(err)
		s.state.Products = []domain.Product{}
		s.logger.WarnContext(ctx, "search failed",
			slog.String("query", trimmed),
			slog.String("error", err.Error()),
		)
		return s.snapshotLocked()
	}

	s.state.Err = ""
	s.state.Products = resp.Products
	return s.snapshotLocked()
}

// Clear resets query, products, and error to their defaults. The mock
// toggle survives, and an in-flight submit is left to resolve on its own.
func (s *Search) Clear() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Query = ""
	s.state.Err = ""
	s.state.Products = []domain.Product{}
	return s.snapshotLocked()
}

// errMessage extracts a user-facing message from a submit error.
func errMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Something went wrong."
}
