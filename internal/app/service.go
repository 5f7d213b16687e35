// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/roake/dailystat/internal/domain/aspect"
	"github.com/roake/dailystat/internal/domain/catalog"
	"github.com/roake/dailystat/internal/domain/consent"
	"github.com/roake/dailystat/internal/domain/gate"
	"github.com/roake/dailystat/internal/domain/ledger"
	"github.com/roake/dailystat/internal/domain/seed"
	"github.com/roake/dailystat/pkg/logger"
)

const (
	defaultMaxTopLimit = 10
)

// Service wires the daily-stat engine together: catalog, value generator,
// title registry, consent protocol and usage ledger.
type Service struct {
	mu sync.RWMutex

	// Core components
	catalog *catalog.Catalog
	gen     *seed.Generator
	aspects *aspect.Registry
	gate    *gate.Gate
	consent *consent.Protocol
	usage   *ledger.Ledger

	// Configuration
	timezone      *time.Location
	clock         func() time.Time
	consentTTL    time.Duration
	scheduler     consent.Scheduler
	retentionDays int
	maxTopLimit   int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCatalog replaces the built-in command catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithTimezone anchors the stat day to a location.
func WithTimezone(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.timezone = loc
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.clock = now
		}
	}
}

// WithConsentTTL bounds how long a consent request stays pending.
func WithConsentTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.consentTTL = ttl
		}
	}
}

// WithScheduler overrides the consent expiry scheduler, for tests.
func WithScheduler(sched consent.Scheduler) Option {
	return func(s *Service) {
		if sched != nil {
			s.scheduler = sched
		}
	}
}

// WithRetentionDays controls pruning of day-keyed records.
func WithRetentionDays(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.retentionDays = days
		}
	}
}

// WithMaxTopLimit caps leaderboard query sizes.
func WithMaxTopLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxTopLimit = limit
		}
	}
}

// New creates a Service with the given options applied.
func New(opts ...Option) *Service {
	s := &Service{
		catalog:     catalog.Default(),
		consentTTL:  60 * time.Second,
		maxTopLimit: defaultMaxTopLimit,
		logger:      logger.Get(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start validates the catalog and builds the engine components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if err := s.catalog.Validate(); err != nil {
		return fmt.Errorf("catalog validation: %w", err)
	}

	genOpts := []seed.Option{}
	if s.timezone != nil {
		genOpts = append(genOpts, seed.WithTimezone(s.timezone))
	}
	if s.clock != nil {
		genOpts = append(genOpts, seed.WithClock(s.clock))
	}
	s.gen = seed.New(genOpts...)

	aspectOpts := []aspect.Option{}
	if s.retentionDays > 0 {
		aspectOpts = append(aspectOpts, aspect.WithRetentionDays(s.retentionDays))
	}
	s.aspects = aspect.New(aspectOpts...)

	s.gate = gate.New()

	consentOpts := []consent.Option{consent.WithTTL(s.consentTTL)}
	if s.scheduler != nil {
		consentOpts = append(consentOpts, consent.WithScheduler(s.scheduler))
	}
	if s.clock != nil {
		consentOpts = append(consentOpts, consent.WithClock(s.clock))
	}
	if s.retentionDays > 0 {
		consentOpts = append(consentOpts, consent.WithRetentionDays(s.retentionDays))
	}
	s.consent = consent.New(consentOpts...)

	s.usage = ledger.New()

	s.started = true
	s.logger.Info(ctx, "service started",
		logger.Int("max_top_limit", s.maxTopLimit),
		logger.Duration("consent_ttl", s.consentTTL),
	)
	return nil
}

// Stop releases the consent protocol's timers. Idempotent.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.consent.Close()
	s.started = false
}

// GetStats reports basic runtime counters for diagnostics.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
	}
	if s.started {
		stats["users"] = s.usage.UserCount()
		stats["commands"] = s.usage.CommandCount()
		stats["pending_consents"] = s.consent.PendingCount()
	}
	return stats
}
