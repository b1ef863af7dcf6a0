package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig holds the service configuration read from environment
// variables. `.env` is loaded by main before Load runs.
type AppConfig struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`
	Port   string `envconfig:"PORT" default:"8080"`

	// CatalogSource selects where the products table lives:
	// "postgres" reads it directly, "rest" goes through the hosted
	// backend's REST interface.
	CatalogSource string `envconfig:"CATALOG_SOURCE" default:"postgres"`

	// FacetMode is the facet selection policy: "multi" or "hierarchical".
	FacetMode string `envconfig:"CATALOG_FACET_MODE" default:"multi"`

	RestBaseURL string `envconfig:"CATALOG_REST_URL"`
	RestAPIKey  string `envconfig:"CATALOG_REST_API_KEY"`

	CartTTL time.Duration `envconfig:"CART_TTL" default:"72h"`

	RateLimitPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"300"`
}

var App AppConfig

// Load populates App from the environment.
func Load() error {
	if err := envconfig.Process("", &App); err != nil {
		return fmt.Errorf("failed to process configuration: %w", err)
	}
	if App.CatalogSource == "rest" && App.RestBaseURL == "" {
		return fmt.Errorf("CATALOG_REST_URL is required when CATALOG_SOURCE=rest")
	}
	return nil
}
