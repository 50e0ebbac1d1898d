package historyrepo

import (
	"context"
	"sync"

	"github.com/yanqian/outfit-genie/internal/domain/recommendation"
)

const defaultCapacity = 500

// MemoryRepository keeps the most recent entries in a ring buffer for tests/dev.
type MemoryRepository struct {
	mu       sync.RWMutex
	entries  []recommendation.HistoryEntry
	next     int
	full     bool
	capacity int
}

// NewMemoryRepository constructs a repo keeping at most capacity entries.
func NewMemoryRepository(capacity int) *MemoryRepository {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &MemoryRepository{
		entries:  make([]recommendation.HistoryEntry, capacity),
		capacity: capacity,
	}
}

// Append implements recommendation.HistoryRepository.
func (r *MemoryRepository) Append(_ context.Context, entry recommendation.HistoryEntry) error {
	entry.OutfitIDs = append([]string(nil), entry.OutfitIDs...)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[r.next] = entry
	r.next = (r.next + 1) % r.capacity
	if r.next == 0 {
		r.full = true
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (r *MemoryRepository) Recent(_ context.Context, limit int) ([]recommendation.HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	size := r.next
	if r.full {
		size = r.capacity
	}
	if limit <= 0 || limit > size {
		limit = size
	}
	out := make([]recommendation.HistoryEntry, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (r.next - i + r.capacity) % r.capacity
		out = append(out, r.entries[idx])
	}
	return out, nil
}

// Ping implements recommendation.HistoryRepository.
func (r *MemoryRepository) Ping(context.Context) error {
	return nil
}

var _ recommendation.HistoryRepository = (*MemoryRepository)(nil)
