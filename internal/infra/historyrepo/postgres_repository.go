package historyrepo

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/outfit-genie/internal/domain/recommendation"
)

const schema = `
CREATE TABLE IF NOT EXISTS recommendation_history (
	id UUID PRIMARY KEY,
	path TEXT NOT NULL,
	occasion TEXT NOT NULL,
	weather_band TEXT NOT NULL DEFAULT '',
	outfit_ids JSONB NOT NULL,
	top_score DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS recommendation_history_created_at_idx
	ON recommendation_history (created_at DESC);
`

// PostgresRepository implements recommendation.HistoryRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the history table when missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create history schema: %w", err)
	}
	return nil
}

// Append inserts one entry.
func (r *PostgresRepository) Append(ctx context.Context, entry recommendation.HistoryEntry) error {
	id, err := uuid.Parse(entry.ID)
	if err != nil {
		return fmt.Errorf("history entry id: %w", err)
	}
	outfitIDs, err := encodeOutfitIDs(entry.OutfitIDs)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO recommendation_history (id, path, occasion, weather_band, outfit_ids, top_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id.String(), string(entry.Path), entry.Occasion, entry.WeatherBand, outfitIDs, entry.TopScore, entry.CreatedAt)
	return err
}

// Recent returns up to limit entries, newest first.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]recommendation.HistoryEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, path, occasion, weather_band, outfit_ids, top_score, created_at
		FROM recommendation_history
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []recommendation.HistoryEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// Ping checks the pool.
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close releases the pool.
func (r *PostgresRepository) Close() {
	r.pool.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (recommendation.HistoryEntry, error) {
	var (
		id        string
		path      string
		entry     recommendation.HistoryEntry
		outfitIDs []byte
		createdAt time.Time
	)
	if err := row.Scan(&id, &path, &entry.Occasion, &entry.WeatherBand, &outfitIDs, &entry.TopScore, &createdAt); err != nil {
		return recommendation.HistoryEntry{}, err
	}
	ids, err := decodeOutfitIDs(outfitIDs)
	if err != nil {
		return recommendation.HistoryEntry{}, err
	}
	entry.ID = id
	entry.Path = recommendation.Path(path)
	entry.OutfitIDs = ids
	entry.CreatedAt = createdAt.UTC()
	return entry, nil
}

func encodeOutfitIDs(ids []string) ([]byte, error) {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("encode outfit ids: %w", err)
	}
	return data, nil
}

func decodeOutfitIDs(data []byte) ([]string, error) {
	ids := []string{}
	if len(data) == 0 {
		return ids, nil
	}
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decode outfit ids: %w", err)
	}
	return ids, nil
}

var _ recommendation.HistoryRepository = (*PostgresRepository)(nil)
