package domain

import (
	"strconv"
)

// Result limit bounds enforced by the search API and mirrored in the UI.
const (
	DefaultMaxResults = 6
	MinMaxResults     = 1
	MaxMaxResults     = 50
)

// Placeholder shown for absent price or rating values.
const Placeholder = "N/A"

// Product is one entry from the product search API. Every field except the
// title is optional; the backend aggregates several shopping sources and not
// all of them report prices, images, or ratings.
type Product struct {
	Title         string   `json:"title" validate:"required"`
	PriceRaw      *string  `json:"price_raw,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Link          *string  `json:"link,omitempty" validate:"omitempty,url"`
	Image         *string  `json:"image,omitempty" validate:"omitempty,url"`
	Rating        *float64 `json:"rating,omitempty"`
	Source        string   `json:"source,omitempty"`
	IsRecommended bool     `json:"is_recommended,omitempty"`
}

// DisplayPrice returns the price string for rendering: the raw price string
// when the source supplied one, otherwise the numeric price with a rupee
// prefix, otherwise a placeholder.
func (p Product) DisplayPrice() string {
	if p.PriceRaw != nil && *p.PriceRaw != "" {
		return *p.PriceRaw
	}
	if p.Price != nil {
		return "₹" + strconv.FormatFloat(*p.Price, 'f', -1, 64)
	}
	return Placeholder
}

// DisplayRating returns the rating with one decimal place, or a placeholder.
func (p Product) DisplayRating() string {
	if p.Rating != nil {
		return strconv.FormatFloat(*p.Rating, 'f', 1, 64)
	}
	return Placeholder
}

// SearchRequest is the JSON request body for the product search endpoints.
type SearchRequest struct {
	Query      string `json:"query" validate:"required,min=1"`
	MaxResults int    `json:"max_results" validate:"gte=1,lte=50"`
}

// SearchResponse is the JSON response body from the product search endpoints.
type SearchResponse struct {
	Query        string    `json:"query"`
	TotalResults int       `json:"total_results"`
	Products     []Product `json:"products"`
}

// ClampMaxResults applies the API's defaulting and bounds to a requested
// result limit: non-positive values fall back to the default, everything
// else is clamped into [MinMaxResults, MaxMaxResults].
func ClampMaxResults(n int) int {
	if n <= 0 {
		return DefaultMaxResults
	}
	if n < MinMaxResults {
		return MinMaxResults
	}
	if n > MaxMaxResults {
		return MaxMaxResults
	}
	return n
}
