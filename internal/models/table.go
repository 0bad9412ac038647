package models

import (
	"sync"
	"time"
)

// Table is one browser session's game. It owns the current GameState
// snapshot and swaps it wholesale on every update.
type Table struct {
	ID         string
	CreatedAt  time.Time
	state      GameState
	lastActive time.Time
	clock      func() time.Time
	mu         sync.RWMutex
}

// NewTable creates a table seeded with the given state. clock stamps
// creation and activity; nil means time.Now.
func NewTable(id string, initial GameState, clock func() time.Time) *Table {
	if clock == nil {
		clock = time.Now
	}
	now := clock()
	return &Table{
		ID:         id,
		CreatedAt:  now,
		state:      initial,
		lastActive: now,
		clock:      clock,
	}
}

// State returns the current snapshot. Callers must treat it as read-only.
func (t *Table) State() GameState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Update replaces the snapshot with fn's result. fn runs under the table's
// write lock so updates on one table never interleave.
func (t *Table) Update(fn func(GameState) GameState) GameState {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = fn(t.state)
	t.lastActive = t.clock()
	return t.state
}

// Touch marks the table as used without changing its state
func (t *Table) Touch() {
	now := t.clock()
	t.mu.Lock()
	t.lastActive = now
	t.mu.Unlock()
}

// LastActive returns when the table was last read or updated through the store
func (t *Table) LastActive() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lastActive
}
