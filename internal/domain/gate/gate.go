// Package gate implements the per-command single-flight flag that keeps
// two near-simultaneous title evaluations from both believing they are
// first. It is an advisory busy flag, not a blocking mutex: a second
// caller is turned away instead of queued.
package gate

import "sync"

// Gate tracks a held/free flag per command name.
type Gate struct {
	mu   sync.Mutex
	held map[string]bool
}

// New constructs an empty gate.
func New() *Gate {
	return &Gate{held: make(map[string]bool)}
}

// TryAcquire marks command as held. Returns false if it was already held.
func (g *Gate) TryAcquire(command string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held[command] {
		return false
	}
	g.held[command] = true
	return true
}

// Release frees the command's flag. Safe to call on a free flag.
func (g *Gate) Release(command string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, command)
}

// Do runs fn while holding the command's flag, releasing it on every exit
// path. Returns ErrBusy without invoking fn when the flag is already held.
func (g *Gate) Do(command string, fn func() error) error {
	if !g.TryAcquire(command) {
		return ErrBusy
	}
	defer g.Release(command)
	return fn()
}

// Held reports whether the command's flag is currently held.
func (g *Gate) Held(command string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.held[command]
}
