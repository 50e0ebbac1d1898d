package occasionstats

import (
	"context"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/yanqian/outfit-genie/internal/domain/recommendation"
)

// BreakerConfig tunes the circuit breaker in front of a remote store.
type BreakerConfig struct {
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

// GuardedStore fronts a remote store with a circuit breaker. Every increment
// is mirrored locally so Top keeps answering while the remote is unhealthy.
type GuardedStore struct {
	remote  recommendation.OccasionStats
	mirror  *MemoryStore
	breaker *gobreaker.CircuitBreaker[[]recommendation.TrendingOccasion]
	logger  *slog.Logger
}

// NewGuardedStore wraps remote.
func NewGuardedStore(remote recommendation.OccasionStats, cfg BreakerConfig, logger *slog.Logger) *GuardedStore {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	logger = logger.With("component", "occasionstats.guarded")
	settings := gobreaker.Settings{
		Name:        "occasion-stats",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	}
	return &GuardedStore{
		remote:  remote,
		mirror:  NewMemoryStore(),
		breaker: gobreaker.NewCircuitBreaker[[]recommendation.TrendingOccasion](settings),
		logger:  logger,
	}
}

func (s *GuardedStore) Increment(ctx context.Context, occasion string) error {
	_ = s.mirror.Increment(ctx, occasion)
	_, err := s.breaker.Execute(func() ([]recommendation.TrendingOccasion, error) {
		return nil, s.remote.Increment(ctx, occasion)
	})
	return err
}

// Top reads the remote ranking, answering from the local mirror when the
// remote fails or the breaker is open.
func (s *GuardedStore) Top(ctx context.Context, limit int) ([]recommendation.TrendingOccasion, error) {
	items, err := s.breaker.Execute(func() ([]recommendation.TrendingOccasion, error) {
		return s.remote.Top(ctx, limit)
	})
	if err == nil {
		return items, nil
	}
	s.logger.Warn("trending lookup served from local mirror", "error", err)
	return s.mirror.Top(ctx, limit)
}

// Ping checks the remote directly so readiness reflects its real state.
func (s *GuardedStore) Ping(ctx context.Context) error {
	return s.remote.Ping(ctx)
}

// Close releases the remote when it holds a connection.
func (s *GuardedStore) Close() {
	if c, ok := s.remote.(interface{ Close() }); ok {
		c.Close()
	}
}

// State reports the breaker state.
func (s *GuardedStore) State() gobreaker.State {
	return s.breaker.State()
}

var _ recommendation.OccasionStats = (*GuardedStore)(nil)
