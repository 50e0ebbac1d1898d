package occasionstats

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/outfit-genie/internal/domain/recommendation"
)

const defaultTopLimit = 10

// ValkeyStore keeps occasion counters in a Valkey sorted set.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "outfit"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Increment(ctx context.Context, occasion string) error {
	key := canonical(occasion)
	if key == "" {
		return nil
	}
	return s.client.Do(ctx, s.client.B().Zincrby().Key(s.trendingKey()).Increment(1).Member(key).Build()).Error()
}

func (s *ValkeyStore) Top(ctx context.Context, limit int) ([]recommendation.TrendingOccasion, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.trendingKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	return parseScored(arr)
}

func (s *ValkeyStore) Ping(ctx context.Context) error {
	return s.client.Do(ctx, s.client.B().Ping().Build()).Error()
}

// Close releases the client.
func (s *ValkeyStore) Close() {
	s.client.Close()
}

// parseScored accepts both reply shapes: RESP3 nests [member, score]
// pairs, RESP2 returns a flat alternating array.
func parseScored(arr []valkey.ValkeyMessage) ([]recommendation.TrendingOccasion, error) {
	out := make([]recommendation.TrendingOccasion, 0, len(arr))
	for i := 0; i < len(arr); {
		var (
			member string
			score  float64
			err    error
		)
		if tuple, tupleErr := arr[i].ToArray(); tupleErr == nil && len(tuple) == 2 {
			if member, err = tuple[0].ToString(); err != nil {
				return nil, err
			}
			if score, err = tuple[1].AsFloat64(); err != nil {
				return nil, err
			}
			i++
		} else {
			if i+1 >= len(arr) {
				break
			}
			if member, err = arr[i].ToString(); err != nil {
				return nil, err
			}
			if score, err = arr[i+1].AsFloat64(); err != nil {
				return nil, err
			}
			i += 2
		}
		out = append(out, recommendation.TrendingOccasion{Occasion: member, Count: int64(score)})
	}
	return out, nil
}

func (s *ValkeyStore) trendingKey() string {
	return fmt.Sprintf("%s:occasions:trending", s.prefix)
}

var _ recommendation.OccasionStats = (*ValkeyStore)(nil)
