// Package consent implements the two-party handshake for interaction
// commands: pending requests keyed by target with a bounded lifetime,
// and a per-day memory of granted consent.
//
// Each pending request terminates exactly once, by accept, deny or
// expiry. The existence check and removal of a pending entry happen as
// one atomic step under the protocol lock, so an accept racing an
// in-flight expiry cannot double-resolve.
package consent

import (
	"sync"
	"time"

	"github.com/roake/dailystat/pkg/metrics"
)

const (
	defaultTTL           = 60 * time.Second
	defaultRetentionDays = 7
)

// Request describes a consent-requiring interaction attempt.
type Request struct {
	Requester string
	Target    string
	Command   string
	Day       string
	CreatedAt time.Time
}

// Outcome reports what a Request call did.
type Outcome int

// Outcomes of Request.
const (
	OutcomePending Outcome = iota
	OutcomeAlreadyGranted
)

type pendingEntry struct {
	req    Request
	cancel CancelFunc
}

// Protocol tracks pending consent requests and daily grants.
type Protocol struct {
	mu      sync.Mutex
	ttl     time.Duration
	sched   Scheduler
	now     func() time.Time
	pending map[string]*pendingEntry // keyed by target
	// day -> target -> requester set
	grants        map[string]map[string]map[string]bool
	retentionDays int
	closed        bool
}

// Option applies a configuration option to the Protocol.
type Option func(*Protocol)

// WithTTL sets the pending-request lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(p *Protocol) {
		if ttl > 0 {
			p.ttl = ttl
		}
	}
}

// WithScheduler overrides the expiry scheduler. Intended for tests.
func WithScheduler(s Scheduler) Option {
	return func(p *Protocol) {
		if s != nil {
			p.sched = s
		}
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Protocol) {
		if now != nil {
			p.now = now
		}
	}
}

// WithRetentionDays sets how many days of grant memory are kept.
func WithRetentionDays(days int) Option {
	return func(p *Protocol) {
		if days > 0 {
			p.retentionDays = days
		}
	}
}

// New constructs a Protocol with the wall-clock scheduler.
func New(opts ...Option) *Protocol {
	p := &Protocol{
		ttl:           defaultTTL,
		sched:         NewTimerScheduler(),
		now:           time.Now,
		pending:       make(map[string]*pendingEntry),
		grants:        make(map[string]map[string]map[string]bool),
		retentionDays: defaultRetentionDays,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Request starts a handshake from requester to target for command on day.
//
// Self or absent targets short-circuit with ErrSelfTarget before any state
// transition. A target with a pending request stays untouched and the
// caller gets ErrTargetBusy. A requester already granted by target today
// resolves immediately with OutcomeAlreadyGranted and no pending entry.
func (p *Protocol) Request(requester, target, command, day string) (Outcome, error) {
	if target == "" || requester == target {
		return 0, ErrSelfTarget
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.pending[target]; ok {
		return 0, ErrTargetBusy
	}
	if p.grantedLocked(day, target, requester) {
		return OutcomeAlreadyGranted, nil
	}

	entry := &pendingEntry{
		req: Request{
			Requester: requester,
			Target:    target,
			Command:   command,
			Day:       day,
			CreatedAt: p.now(),
		},
	}
	p.pending[target] = entry
	// The expiry callback takes the same lock, so it cannot run until this
	// call returns and entry.cancel is set.
	entry.cancel = p.sched.Schedule(p.ttl, func() { p.expire(target, entry) })

	metrics.RecordConsentRequested()
	metrics.UpdateConsentPending(len(p.pending))
	return OutcomePending, nil
}

// Accept resolves the pending request addressed to target: it cancels the
// expiry, removes the entry, records today's grant and returns the
// original request so the caller can execute the interaction.
func (p *Protocol) Accept(target, day string) (Request, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.pending[target]
	if !ok {
		return Request{}, ErrNothingPending
	}
	delete(p.pending, target)
	entry.cancel()

	p.pruneGrantsLocked(day)
	byTarget, ok := p.grants[day]
	if !ok {
		byTarget = make(map[string]map[string]bool)
		p.grants[day] = byTarget
	}
	if byTarget[target] == nil {
		byTarget[target] = make(map[string]bool)
	}
	byTarget[target][entry.req.Requester] = true

	metrics.RecordConsentAccepted()
	metrics.UpdateConsentPending(len(p.pending))
	return entry.req, nil
}

// Deny resolves the pending request addressed to target without recording
// a grant.
func (p *Protocol) Deny(target string) (Request, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.pending[target]
	if !ok {
		return Request{}, ErrNothingPending
	}
	delete(p.pending, target)
	entry.cancel()

	metrics.RecordConsentDenied()
	metrics.UpdateConsentPending(len(p.pending))
	return entry.req, nil
}

// Granted reports whether target has already approved requester today.
func (p *Protocol) Granted(day, target, requester string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.grantedLocked(day, target, requester)
}

// PendingFor returns the pending request addressed to target, if any.
func (p *Protocol) PendingFor(target string) (Request, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	entry, ok := p.pending[target]
	if !ok {
		return Request{}, false
	}
	return entry.req, true
}

// PendingCount returns the number of outstanding requests.
func (p *Protocol) PendingCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// Close cancels all outstanding expiry timers. Pending requests are
// dropped; the protocol must not be used afterwards.
func (p *Protocol) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for target, entry := range p.pending {
		entry.cancel()
		delete(p.pending, target)
	}
	metrics.UpdateConsentPending(0)
}

// expire is the scheduled callback. It deletes the entry only if it is
// still the live one for target; an entry already resolved by accept or
// deny is left alone.
func (p *Protocol) expire(target string, entry *pendingEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()

	current, ok := p.pending[target]
	if !ok || current != entry {
		return
	}
	delete(p.pending, target)
	metrics.RecordConsentExpired()
	metrics.UpdateConsentPending(len(p.pending))
}

func (p *Protocol) grantedLocked(day, target, requester string) bool {
	byTarget, ok := p.grants[day]
	if !ok {
		return false
	}
	return byTarget[target][requester]
}

// pruneGrantsLocked drops grant days older than the retention window.
// Must be called with p.mu held.
func (p *Protocol) pruneGrantsLocked(day string) {
	ref, err := time.Parse("2006-01-02", day)
	if err != nil {
		return
	}
	cutoff := ref.AddDate(0, 0, -p.retentionDays)
	for recorded := range p.grants {
		d, err := time.Parse("2006-01-02", recorded)
		if err != nil || d.Before(cutoff) {
			delete(p.grants, recorded)
		}
	}
}
