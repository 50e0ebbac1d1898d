package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/outfit-genie/internal/domain/outfit"
	"github.com/yanqian/outfit-genie/internal/domain/recommendation"
	"github.com/yanqian/outfit-genie/internal/infra/catalogsource"
	"github.com/yanqian/outfit-genie/internal/infra/config"
	"github.com/yanqian/outfit-genie/internal/infra/historyrepo"
	"github.com/yanqian/outfit-genie/internal/infra/occasionstats"
)

func provideEngineConfig(cfg *config.Config) outfit.Config {
	return outfit.Config{TopK: cfg.Recommend.TopK}
}

func provideRecommendationConfig(cfg *config.Config) recommendation.Config {
	return recommendation.Config{
		TrendingLimit: cfg.Recommend.TrendingLimit,
		HistoryLimit:  cfg.Recommend.HistoryLimit,
	}
}

func provideCatalog(cfg *config.Config, logger *slog.Logger) (*outfit.Catalog, error) {
	src, err := catalogsource.Open(cfg.Catalog, logger)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	catalog, err := catalogsource.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	logger.Info("outfit catalog loaded", "source", src.Name(), "occasions", len(catalog.Occasions()), "outfits", catalog.Size())
	return catalog, nil
}

func provideHistoryRepository(cfg *config.Config, logger *slog.Logger) recommendation.HistoryRepository {
	fallback := historyrepo.NewMemoryRepository(cfg.History.MemoryCapacity)
	dsn := strings.TrimSpace(cfg.History.Postgres.DSN)
	if dsn == "" {
		logger.Info("history postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.History.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.History.Postgres.MaxConns
	}
	if cfg.History.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.History.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	repo := historyrepo.NewPostgresRepository(pool)
	if cfg.History.Postgres.AutoMigrate {
		if err := repo.EnsureSchema(ctx); err != nil {
			logger.Error("history schema migration failed, using memory repository", "error", err)
			pool.Close()
			return fallback
		}
	}
	logger.Info("history postgres repository enabled")
	return repo
}

func provideOccasionStats(cfg *config.Config, logger *slog.Logger) recommendation.OccasionStats {
	if cfg.Stats.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return occasionstats.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return occasionstats.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("occasion valkey store enabled", "addr", cfg.Stats.Valkey.Addr)
			store := occasionstats.NewValkeyStore(client, cfg.Stats.Valkey.Prefix)
			return occasionstats.NewGuardedStore(store, occasionstats.BreakerConfig{}, logger)
		}
	}
	return occasionstats.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Stats.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Stats.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Stats.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
