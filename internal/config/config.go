package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/tgardener/metro-gigs/internal/event"
)

// Config is the resolved per-run configuration. Immutable once loaded;
// defaults cover the Indianapolis metro market.
type Config struct {
	APIKey      string  `envconfig:"TICKETMASTER_API_KEY"`
	Lat         float64 `envconfig:"MARKET_LAT" default:"39.7684"`
	Lon         float64 `envconfig:"MARKET_LON" default:"-86.1581"`
	RadiusMiles int     `envconfig:"MARKET_RADIUS_MILES" default:"35"`
	DaysAhead   int     `envconfig:"MARKET_DAYS_AHEAD" default:"180"`
	Label       string  `envconfig:"MARKET_LABEL" default:"Indianapolis, IN metro"`
}

// ConfigError reports a fatal configuration problem. It is surfaced
// before any network activity.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "config: " + e.Reason
}

// Load resolves configuration from the environment. The API key is
// required; geographic and time parameters fall back to defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &ConfigError{Reason: "TICKETMASTER_API_KEY is required"}
	}

	return &cfg, nil
}

// MarketFile is the YAML shape of an optional market definition file.
type MarketFile struct {
	Label       string  `yaml:"label"`
	Lat         float64 `yaml:"lat"`
	Lon         float64 `yaml:"lon"`
	RadiusMiles int     `yaml:"radius_miles"`
	DaysAhead   int     `yaml:"days_ahead"`
}

// ApplyMarketFile overlays a YAML market definition onto the config.
// Zero-valued fields in the file leave the corresponding value in place.
// Unlike the allowlist, a market file is only read when explicitly
// requested, so failures here are fatal.
func (c *Config) ApplyMarketFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading market file: %w", err)
	}

	var m MarketFile
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parsing market file: %w", err)
	}

	if m.Label != "" {
		c.Label = m.Label
	}
	if m.Lat != 0 {
		c.Lat = m.Lat
	}
	if m.Lon != 0 {
		c.Lon = m.Lon
	}
	if m.RadiusMiles != 0 {
		c.RadiusMiles = m.RadiusMiles
	}
	if m.DaysAhead != 0 {
		c.DaysAhead = m.DaysAhead
	}

	return nil
}

// Market returns the output-document market block for this config.
func (c *Config) Market() event.Market {
	return event.Market{
		Label:       c.Label,
		Lat:         c.Lat,
		Lon:         c.Lon,
		RadiusMiles: c.RadiusMiles,
		DaysAhead:   c.DaysAhead,
	}
}
