package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/yanqian/outfit-genie/internal/domain/recommendation"
	"github.com/yanqian/outfit-genie/internal/infra/config"
)

// closer is implemented by stores holding a connection pool.
type closer interface {
	Close()
}

// App owns the HTTP server and the stores behind the recommendation service.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	server  *http.Server
	history recommendation.HistoryRepository
	stats   recommendation.OccasionStats
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, history recommendation.HistoryRepository, stats recommendation.OccasionStats) *App {
	return &App{
		cfg:     cfg,
		logger:  logger.With("component", "bootstrap"),
		server:  server,
		history: history,
		stats:   stats,
	}
}

// Run serves until ctx is cancelled or the listener fails, then drains
// in-flight requests and releases the store connections.
func (a *App) Run(ctx context.Context) error {
	defer a.release()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("outfit api listening", "address", a.server.Addr, "environment", a.cfg.App.Environment, "apiVersion", a.cfg.App.APIVersion)
		errCh <- a.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received", "timeout", a.cfg.HTTP.ShutdownTimeout.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("drain http server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}

func (a *App) release() {
	for name, store := range map[string]any{"history": a.history, "stats": a.stats} {
		if c, ok := store.(closer); ok {
			c.Close()
			a.logger.Info("store closed", "store", name)
		}
	}
}
