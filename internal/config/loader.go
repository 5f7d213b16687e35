package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if DAILYSTAT_CONFIG is set
//  3. env (prefix DAILYSTAT_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("DAILYSTAT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	// Environment variables: DAILYSTAT_ADDR, DAILYSTAT_MAX_TOP_LIMIT, ...
	// Map env keys like DAILYSTAT_MAX_TOP_LIMIT -> max_top_limit (flat keys).
	envProvider := env.Provider("DAILYSTAT_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "dailystat_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	if c.ConsentTTLSeconds <= 0 {
		return fmt.Errorf("%w: consent_ttl_seconds must be positive", ErrInvalidConfig)
	}
	if c.AspectRetentionDays < 1 {
		return fmt.Errorf("%w: aspect_retention_days must be at least 1", ErrInvalidConfig)
	}
	if c.MaxTopLimit < 1 {
		return fmt.Errorf("%w: max_top_limit must be at least 1", ErrInvalidConfig)
	}
	return nil
}
