// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load() layers defaults, an optional YAML file, and env vars.
// - External errors must be wrapped via this package's sentinels.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Timezone anchors the stat day, e.g. "Europe/London".
	Timezone string `koanf:"timezone"`

	// ConsentTTLSeconds bounds how long a consent request stays pending.
	ConsentTTLSeconds int `koanf:"consent_ttl_seconds"`

	// AspectRetentionDays controls how long old daily title records and
	// consent grants are kept before lazy pruning.
	AspectRetentionDays int `koanf:"aspect_retention_days"`

	// MaxTopLimit caps the number of rows a top query may return.
	MaxTopLimit int `koanf:"max_top_limit"`

	// JokesDefault toggles joke suffixes when the request does not say.
	JokesDefault bool `koanf:"jokes_default"`

	// CatalogPath points at an optional YAML catalog overlay.
	CatalogPath string `koanf:"catalog_path"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":8080",
		Timezone:            "Europe/London",
		ConsentTTLSeconds:   60,
		AspectRetentionDays: 7,
		MaxTopLimit:         10,
		JokesDefault:        true,
	}
}
