package recommendation

import "context"

// HistoryRepository persists the log of served recommendations.
type HistoryRepository interface {
	Append(ctx context.Context, entry HistoryEntry) error
	Recent(ctx context.Context, limit int) ([]HistoryEntry, error)
	Ping(ctx context.Context) error
}

// OccasionStats counts how often each occasion is requested.
type OccasionStats interface {
	Increment(ctx context.Context, occasion string) error
	Top(ctx context.Context, limit int) ([]TrendingOccasion, error)
	Ping(ctx context.Context) error
}
