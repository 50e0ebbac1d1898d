package catalogsource

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/yanqian/outfit-genie/internal/infra/config"
)

// Open returns the Source selected by cfg.Source.
func Open(cfg config.CatalogConfig, logger *slog.Logger) (Source, error) {
	switch cfg.Source {
	case "", config.CatalogEmbedded:
		return EmbeddedSource{}, nil
	case config.CatalogFile:
		path := strings.TrimSpace(cfg.Path)
		if path == "" {
			return nil, fmt.Errorf("catalog source %q requires a path", cfg.Source)
		}
		return FileSource{Path: path}, nil
	case config.CatalogObject:
		src, err := NewObjectSource(ObjectConfig{
			Endpoint:  cfg.Object.Endpoint,
			AccessKey: cfg.Object.AccessKey,
			SecretKey: cfg.Object.SecretKey,
			Bucket:    cfg.Object.Bucket,
			Region:    cfg.Object.Region,
			Key:       cfg.Object.Key,
		}, logger)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}
