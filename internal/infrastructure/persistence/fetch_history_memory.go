package persistence

import (
	"context"
	"sync"

	"repodash/internal/domain/repo"
)

// DefaultHistoryCapacity bounds the in-memory fetch history
const DefaultHistoryCapacity = 500

// MemoryFetchHistoryRepo keeps the most recent fetch records in a ring buffer
type MemoryFetchHistoryRepo struct {
	mu      sync.RWMutex
	records []*repo.FetchRecord
	next    int
	full    bool
}

// NewMemoryFetchHistoryRepository creates an in-memory fetch history
func NewMemoryFetchHistoryRepository(capacity int) *MemoryFetchHistoryRepo {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &MemoryFetchHistoryRepo{
		records: make([]*repo.FetchRecord, capacity),
	}
}

// Save appends a record, overwriting the oldest once capacity is reached
func (m *MemoryFetchHistoryRepo) Save(ctx context.Context, record *repo.FetchRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec := *record
	m.records[m.next] = &rec
	m.next = (m.next + 1) % len(m.records)
	if m.next == 0 {
		m.full = true
	}
	return nil
}

// ListRecent returns up to limit records, newest first
func (m *MemoryFetchHistoryRepo) ListRecent(ctx context.Context, limit int) ([]*repo.FetchRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	size := m.next
	if m.full {
		size = len(m.records)
	}
	if limit <= 0 || limit > size {
		limit = size
	}

	out := make([]*repo.FetchRecord, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (m.next - i + len(m.records)) % len(m.records)
		rec := *m.records[idx]
		out = append(out, &rec)
	}
	return out, nil
}
