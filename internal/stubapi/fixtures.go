package stubapi

import "github.com/DanishShaikh18/ShopFusion/internal/domain"

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

// Fixtures returns the deterministic product list served by the stub. The
// first entry carries the recommended flag so the badge path is exercised.
func Fixtures() []domain.Product {
	return []domain.Product{
		{
			Title:         "Mock Phone A",
			PriceRaw:      strPtr("₹12,999"),
			Price:         f64Ptr(12999),
			Link:          strPtr("https://example.com/a"),
			Rating:        f64Ptr(4.3),
			Source:        "Mock",
			IsRecommended: true,
		},
		{
			Title:    "Mock Phone B",
			PriceRaw: strPtr("₹9,999"),
			Price:    f64Ptr(9999),
			Link:     strPtr("https://example.com/b"),
			Rating:   f64Ptr(4.0),
			Source:   "Mock",
		},
		{
			Title:  "Mock Earbuds",
			Price:  f64Ptr(1999),
			Image:  strPtr("https://example.com/img/earbuds.jpg"),
			Rating: f64Ptr(4.1),
			Source: "Mock",
		},
		{
			Title:  "Mock Smartwatch",
			Price:  f64Ptr(4499),
			Source: "Mock",
		},
		{
			Title:    "Mock Tablet",
			PriceRaw: strPtr("₹21,490"),
			Link:     strPtr("https://example.com/tablet"),
			Source:   "Mock",
		},
		{
			Title:  "Mock Laptop Stand",
			Price:  f64Ptr(899),
			Rating: f64Ptr(3.9),
			Source: "Mock",
		},
		{
			Title:  "Mock Charger 65W",
			Price:  f64Ptr(1299),
			Source: "Mock",
		},
		{
			Title:  "Mock Power Bank",
			Price:  f64Ptr(1599),
			Rating: f64Ptr(4.4),
			Source: "Mock",
		},
	}
}
