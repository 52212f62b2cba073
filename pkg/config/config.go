// Package config holds the tunable constants of the market client. The
// pagination thresholds and the confirmation resubmit delay are observed
// marketplace behavior, not documented contract, so they are configuration
// rather than hard-coded invariants.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Defaults matching observed marketplace behavior.
const (
	DefaultCommunityURL       = "https://steamcommunity.com"
	DefaultCountry            = "PL"
	DefaultBulkFetchThreshold = 1000
	DefaultPageSize           = 100
	DefaultConfirmationDelay  = time.Second
	DefaultHTTPTimeout        = 30 * time.Second
)

// Config carries the client tunables.
type Config struct {
	// CommunityURL roots every request; tests point it at a local server.
	CommunityURL string `yaml:"community_url"`
	// Country is the country code sent with price reads.
	Country string `yaml:"country"`

	// BulkFetchThreshold is the listing total below which the remainder is
	// fetched with a single count=all request instead of fixed-size pages.
	BulkFetchThreshold int `yaml:"bulk_fetch_threshold"`
	// PageSize is the fixed page size of the sequential listing fetches.
	PageSize int `yaml:"page_size"`

	// ConfirmationDelay is the wait between accepting a purchase
	// confirmation and resubmitting the purchase, covering marketplace-side
	// state propagation.
	ConfirmationDelay Duration `yaml:"confirmation_delay"`

	HTTPTimeout Duration `yaml:"http_timeout"`

	// PriceCacheTTL enables the price-overview cache when positive.
	PriceCacheTTL Duration `yaml:"price_cache_ttl"`
	// EnforceReadQuota makes read calls wait on the shared 20/60s window
	// instead of only surfacing the marketplace's rate-limit signal.
	EnforceReadQuota bool `yaml:"enforce_read_quota"`
}

// Default returns a config with every field at its default.
func Default() Config {
	var c Config
	c.Normalize()
	return c
}

// Normalize fills zero-valued fields with defaults.
func (c *Config) Normalize() {
	if c.CommunityURL == "" {
		c.CommunityURL = DefaultCommunityURL
	}
	if c.Country == "" {
		c.Country = DefaultCountry
	}
	if c.BulkFetchThreshold <= 0 {
		c.BulkFetchThreshold = DefaultBulkFetchThreshold
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.ConfirmationDelay.Duration <= 0 {
		c.ConfirmationDelay.Duration = DefaultConfirmationDelay
	}
	if c.HTTPTimeout.Duration <= 0 {
		c.HTTPTimeout.Duration = DefaultHTTPTimeout
	}
}

// Load reads a YAML config file and normalizes it.
func Load(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "parse config %s", path)
	}
	c.Normalize()
	return c, nil
}
