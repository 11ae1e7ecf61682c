package config

import (
	"fmt"
	"net/url"
	"time"

	pkgconfig "github.com/DanishShaikh18/ShopFusion/pkg/config"
)

// Config holds all configuration for the search UI server.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"3000"`

	// Product search API. The base URL is read once here and injected into
	// the client at construction; nothing else consults the environment.
	APIBaseURL     string        `env:"API_BASE_URL" envDefault:"http://127.0.0.1:8000"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"35s"`

	// UseMock routes submits to the fixture endpoint by default. The page
	// checkbox can still flip it per submit.
	UseMock bool `env:"USE_MOCK" envDefault:"false"`

	// Rate limit applied to the search submit route.
	SearchRPS   int `env:"SEARCH_RPS" envDefault:"5"`
	SearchBurst int `env:"SEARCH_BURST" envDefault:"10"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid API base URL: %q", c.APIBaseURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive: %s", c.RequestTimeout)
	}
	if c.SearchRPS < 1 || c.SearchBurst < 1 {
		return fmt.Errorf("search rate limit must be positive: rps=%d burst=%d", c.SearchRPS, c.SearchBurst)
	}
	return nil
}
