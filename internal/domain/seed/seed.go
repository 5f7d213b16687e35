// Package seed implements the deterministic daily value generator.
//
// Values are derived from an MD5 hash of a seed string combining the
// calendar day, the acting user and the optional target, offset by the
// command name. The same inputs produce the same value for the whole
// day, across processes and restarts; no runtime random source is used.
package seed

import (
	"crypto/md5" //nolint:gosec // not used for security, only for stable value derivation
	"encoding/binary"
	"time"
)

// DayFormat is the calendar-day layout embedded in seeds.
const DayFormat = "2006-01-02"

// Seed carries the identity components of a daily value.
type Seed struct {
	Day    string
	Sender string
	Target string
}

// String renders the seed in its canonical "<day>-<sender>-<target>" layout.
func (s Seed) String() string {
	return s.Day + "-" + s.Sender + "-" + s.Target
}

// Generator derives deterministic values anchored to a fixed timezone.
type Generator struct {
	loc *time.Location
	now func() time.Time
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithTimezone sets the timezone the calendar day is anchored to.
func WithTimezone(loc *time.Location) Option {
	return func(g *Generator) {
		if loc != nil {
			g.loc = loc
		}
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// New constructs a Generator anchored to Europe/London by default.
func New(opts ...Option) *Generator {
	g := &Generator{
		now: time.Now,
	}
	if loc, err := time.LoadLocation("Europe/London"); err == nil {
		g.loc = loc
	} else {
		g.loc = time.UTC
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Day returns today's calendar date in the anchored timezone.
func (g *Generator) Day() string {
	return g.now().In(g.loc).Format(DayFormat)
}

// Value returns a deterministic integer in [min, max] for the seed and
// command offset. min is returned as-is when the range is degenerate.
func (g *Generator) Value(s Seed, command string, min, max int) int {
	if max <= min {
		return min
	}
	sum := md5.Sum([]byte(s.String() + command)) //nolint:gosec // stable derivation, not security
	n := binary.BigEndian.Uint32(sum[:4])
	return int(n%uint32(max-min+1)) + min
}

// Index returns a deterministic index into [0, n-1] for list selection.
func (g *Generator) Index(s Seed, command string, n int) int {
	if n <= 1 {
		return 0
	}
	return g.Value(s, command, 0, n-1)
}
