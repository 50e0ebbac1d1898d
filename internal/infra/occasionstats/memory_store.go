package occasionstats

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/yanqian/outfit-genie/internal/domain/recommendation"
)

// MemoryStore counts occasions in process memory for tests/dev.
type MemoryStore struct {
	mu     sync.RWMutex
	counts map[string]int64
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]int64)}
}

// Increment bumps the counter for occasion.
func (s *MemoryStore) Increment(_ context.Context, occasion string) error {
	key := canonical(occasion)
	if key == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key]++
	return nil
}

// Top returns the most requested occasions; ties are ordered by name.
func (s *MemoryStore) Top(_ context.Context, limit int) ([]recommendation.TrendingOccasion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.counts)
	}
	items := make([]recommendation.TrendingOccasion, 0, len(s.counts))
	for occasion, count := range s.counts {
		items = append(items, recommendation.TrendingOccasion{Occasion: occasion, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Occasion < items[j].Occasion
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// Ping implements recommendation.OccasionStats.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func canonical(occasion string) string {
	return strings.ToLower(strings.TrimSpace(occasion))
}

var _ recommendation.OccasionStats = (*MemoryStore)(nil)
