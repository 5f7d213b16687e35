// Package ledger accumulates per-user and per-command usage counters for
// leaderboard queries. Counters are monotonic and live for the process
// lifetime; there is no decay or reset.
package ledger

import (
	"sort"
	"sync"

	"github.com/roake/dailystat/pkg/metrics"
)

// Row is one leaderboard entry.
type Row struct {
	Name  string
	Count int
}

type userEntry struct {
	total      int
	perCommand map[string]int
	seq        int // first-seen order, tie-breaker
}

type commandEntry struct {
	total int
	seq   int
}

// ranked pairs a row with its first-seen sequence for sorting.
type ranked struct {
	row Row
	seq int
}

// Ledger tracks usage counts. Safe for concurrent use.
type Ledger struct {
	mu       sync.RWMutex
	users    map[string]*userEntry
	commands map[string]*commandEntry
	userSeq  int
	cmdSeq   int
}

// New constructs an empty ledger.
func New() *Ledger {
	return &Ledger{
		users:    make(map[string]*userEntry),
		commands: make(map[string]*commandEntry),
	}
}

// Record counts one served command for user.
func (l *Ledger) Record(user, command string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	u, ok := l.users[user]
	if !ok {
		u = &userEntry{perCommand: make(map[string]int), seq: l.userSeq}
		l.userSeq++
		l.users[user] = u
	}
	u.total++
	u.perCommand[command]++

	c, ok := l.commands[command]
	if !ok {
		c = &commandEntry{seq: l.cmdSeq}
		l.cmdSeq++
		l.commands[command] = c
	}
	c.total++

	metrics.UpdateLedgerUsers(len(l.users))
	metrics.UpdateLedgerCommands(len(l.commands))
}

// TopUsers returns up to limit users ranked by total count, ties broken
// by first-seen order.
func (l *Ledger) TopUsers(limit int) []Row {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rows := make([]ranked, 0, len(l.users))
	for name, u := range l.users {
		rows = append(rows, ranked{row: Row{Name: name, Count: u.total}, seq: u.seq})
	}
	return cut(rows, limit)
}

// TopCommands returns up to limit commands ranked by total count, ties
// broken by first-seen order.
func (l *Ledger) TopCommands(limit int) []Row {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rows := make([]ranked, 0, len(l.commands))
	for name, c := range l.commands {
		rows = append(rows, ranked{row: Row{Name: name, Count: c.total}, seq: c.seq})
	}
	return cut(rows, limit)
}

// TopUsersFor returns up to limit users ranked by their count for one
// command.
func (l *Ledger) TopUsersFor(command string, limit int) []Row {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rows := make([]ranked, 0, len(l.users))
	for name, u := range l.users {
		if n := u.perCommand[command]; n > 0 {
			rows = append(rows, ranked{row: Row{Name: name, Count: n}, seq: u.seq})
		}
	}
	return cut(rows, limit)
}

// Users returns all seen users in first-seen order.
func (l *Ledger) Users() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	all := make([]ranked, 0, len(l.users))
	for name, u := range l.users {
		all = append(all, ranked{row: Row{Name: name}, seq: u.seq})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seq < all[j].seq })
	names := make([]string, len(all))
	for i, r := range all {
		names[i] = r.row.Name
	}
	return names
}

// UserCount returns the number of distinct users seen.
func (l *Ledger) UserCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.users)
}

// CommandCount returns the number of distinct commands seen.
func (l *Ledger) CommandCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.commands)
}

// cut sorts rows by count desc, first-seen asc, and truncates to limit.
func cut(rows []ranked, limit int) []Row {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].row.Count != rows[j].row.Count {
			return rows[i].row.Count > rows[j].row.Count
		}
		return rows[i].seq < rows[j].seq
	})
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = r.row
	}
	return out
}
