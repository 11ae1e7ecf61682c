// Package client implements the HTTP client for the product search API.
//
// The API exposes two POST endpoints sharing one request and response shape:
// /products/ performs a live search, /products/mock serves fixtures so the
// UI can be exercised without scraper credentials. Non-2xx responses carry a
// JSON body with a single "detail" string.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DanishShaikh18/ShopFusion/internal/domain"
	"github.com/DanishShaikh18/ShopFusion/pkg/httpclient"
	"github.com/DanishShaikh18/ShopFusion/pkg/validator"
)

// Mode selects which search endpoint a submit is routed to.
type Mode int

const (
	// ModeLive routes to /products/, the real scraper-backed search.
	ModeLive Mode = iota
	// ModeMock routes to /products/mock, the fixture endpoint.
	ModeMock
)

func (m Mode) path() string {
	if m == ModeMock {
		return "/products/mock"
	}
	return "/products/"
}

// Config holds client construction parameters. The base URL is explicit:
// the client never reads ambient environment state.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is a typed client for the product search API. A submit issues
// exactly one HTTP request; failures are reported, never retried. A circuit
// breaker sits in front of the upstream so a dead backend fails fast
// instead of tying up the UI for the full timeout on every submit.
type Client struct {
	base   *url.URL
	http   *httpclient.CircuitBreakerClient
	logger *slog.Logger
}

// New creates a client for the search API at cfg.BaseURL.
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 35 * time.Second
	}

	inner := httpclient.New(httpclient.SingleShotConfig(timeout))
	cb := httpclient.NewCircuitBreakerClient(inner, httpclient.DefaultCircuitBreakerConfig("search-api"), logger)

	return &Client{
		base:   base,
		http:   cb,
		logger: logger,
	}, nil
}

// searchResponseWire defers products decoding so that a missing or
// non-array "products" field degrades to an empty list instead of failing
// the whole response.
type searchResponseWire struct {
	Query        string          `json:"query"`
	TotalResults int             `json:"total_results"`
	Products     json.RawMessage `json:"products"`
}

// Search submits the query to the endpoint selected by mode and returns the
// decoded result list.
//
// The query must be non-empty after trimming; the caller (the view) is
// expected to have validated that already, so a violation here is an error,
// not a user message. MaxResults is defaulted and clamped per the API
// contract before sending.
func (c *Client) Search(ctx context.Context, req domain.SearchRequest, mode Mode) (*domain.SearchResponse, error) {
	req.Query = strings.TrimSpace(req.Query)
	req.MaxResults = domain.ClampMaxResults(req.MaxResults)

	if err := validator.Validate(req); err != nil {
		return nil, fmt.Errorf("invalid search request: %w", err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	// JoinPath keeps the trailing slash the live endpoint routes on.
	endpoint := c.base.JoinPath(mode.path()).String()

	httpReq, err := newJSONRequest(ctx, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(ctx, httpReq)
	if err != nil {
		// Breaker failures for 5xx already carry the upstream detail as a
		// *httpclient.ResponseError; transport errors get wrapped here.
		var respErr *httpclient.ResponseError
		if errors.As(err, &respErr) {
			return nil, respErr
		}
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, httpclient.ParseResponseError(resp)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	var wire searchResponseWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	products := decodeProducts(wire.Products)
	for i, p := range products {
		if err := validator.Validate(p); err != nil {
			return nil, fmt.Errorf("invalid product at index %d: %w", i, err)
		}
	}

	c.logger.DebugContext(ctx, "search completed",
		slog.String("query", req.Query),
		slog.Int("results", len(products)),
		slog.Duration("duration", time.Since(start)),
	)

	return &domain.SearchResponse{
		Query:        wire.Query,
		TotalResults: wire.TotalResults,
		Products:     products,
	}, nil
}

// Ping reports whether the API base is reachable. Used as a readiness check.
func (c *Client) Ping(ctx context.Context) error {
	req, err := newJSONRequest(ctx, c.base.JoinPath("/products/mock").String(),
		strings.NewReader(`{"query":"ping","max_results":1}`))
	if err != nil {
		return err
	}
	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	return nil
}

// newJSONRequest builds a POST request declaring and accepting JSON.
func newJSONRequest(ctx context.Context, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// decodeProducts returns an empty slice when the products field is absent
// or not a JSON array.
func decodeProducts(raw json.RawMessage) []domain.Product {
	if len(raw) == 0 {
		return []domain.Product{}
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return []domain.Product{}
	}
	if products == nil {
		return []domain.Product{}
	}
	return products
}
