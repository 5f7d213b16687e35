// Package aspect tracks daily titles: the first user whose generated
// value satisfies a command's trigger claims the title for that calendar
// day. Records are never overwritten within a day and are pruned after a
// configurable retention window.
package aspect

import (
	"sync"
	"time"

	"github.com/roake/dailystat/pkg/metrics"
)

const defaultRetentionDays = 7

// Winner records the holder of a daily title.
type Winner struct {
	Day     string
	Command string
	Holder  string
	Value   string // winning value or list choice, rendered
	Title   string
}

// Registry stores at most one Winner per (day, command) pair.
type Registry struct {
	mu sync.Mutex
	// day -> command -> winner
	records       map[string]map[string]Winner
	retentionDays int
}

// Option applies a configuration option to the Registry.
type Option func(*Registry)

// WithRetentionDays sets how many days of records are kept.
func WithRetentionDays(days int) Option {
	return func(r *Registry) {
		if days > 0 {
			r.retentionDays = days
		}
	}
}

// New constructs an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		records:       make(map[string]map[string]Winner),
		retentionDays: defaultRetentionDays,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TryClaim records holder as the day's title holder for command if no
// winner exists yet. Returns the effective winner and whether this call
// claimed it. Callers must hold the command's gate flag.
func (r *Registry) TryClaim(day, command, holder, value, title string) (Winner, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prune(day)

	byCommand, ok := r.records[day]
	if !ok {
		byCommand = make(map[string]Winner)
		r.records[day] = byCommand
	}
	if existing, ok := byCommand[command]; ok {
		return existing, false
	}
	w := Winner{Day: day, Command: command, Holder: holder, Value: value, Title: title}
	byCommand[command] = w
	metrics.RecordTitleClaimed()
	return w, true
}

// Query returns the day's winner for command, if any. Never mutates.
func (r *Registry) Query(day, command string) (Winner, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byCommand, ok := r.records[day]
	if !ok {
		return Winner{}, false
	}
	w, ok := byCommand[command]
	return w, ok
}

// prune drops records older than the retention window relative to day.
// Must be called with r.mu held.
func (r *Registry) prune(day string) {
	ref, err := time.Parse("2006-01-02", day)
	if err != nil {
		return
	}
	cutoff := ref.AddDate(0, 0, -r.retentionDays)
	for recorded := range r.records {
		d, err := time.Parse("2006-01-02", recorded)
		if err != nil || d.Before(cutoff) {
			delete(r.records, recorded)
		}
	}
}

// Nudge steps a value one unit away from an exact trigger hit so a
// post-winner arrival does not echo the winning sentinel. Values at the
// range floor step up instead of down.
func Nudge(v, min, max int) int {
	if max <= min {
		return v
	}
	if v-1 >= min {
		return v - 1
	}
	return v + 1
}

// NudgeIndex is Nudge for list indexes over [0, n-1].
func NudgeIndex(i, n int) int {
	if n <= 1 {
		return i
	}
	return Nudge(i, 0, n-1)
}
