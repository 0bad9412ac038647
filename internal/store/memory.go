package store

import (
	"sync"
	"time"

	"github.com/aaronzipp/life-total/internal/models"
	"github.com/google/uuid"
)

// TableStore keeps one table per browser session in memory
type TableStore struct {
	tables map[string]*models.Table
	mu     sync.RWMutex
	now    func() time.Time
}

// NewTableStore creates an empty table store
func NewTableStore() *TableStore {
	return &TableStore{
		tables: make(map[string]*models.Table),
		now:    time.Now,
	}
}

func (s *TableStore) clock() time.Time {
	return s.now()
}

// Create stores a new table seeded with initial and returns it
func (s *TableStore) Create(initial models.GameState) *models.Table {
	id := uuid.New().String()
	table := models.NewTable(id, initial, s.clock)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[id] = table
	return table
}

// Get retrieves a table by session id and marks it active
func (s *TableStore) Get(id string) (*models.Table, bool) {
	s.mu.RLock()
	table, exists := s.tables[id]
	s.mu.RUnlock()
	if exists {
		table.Touch()
	}
	return table, exists
}

// Delete removes a table
func (s *TableStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tables, id)
}

// Len returns the number of live tables
func (s *TableStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables)
}

// Sweep drops tables idle for longer than maxIdle and returns how many went
func (s *TableStore) Sweep(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, table := range s.tables {
		if table.LastActive().Before(cutoff) {
			delete(s.tables, id)
			removed++
		}
	}
	return removed
}
