//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/outfit-genie/internal/bootstrap"
	"github.com/yanqian/outfit-genie/internal/domain/outfit"
	"github.com/yanqian/outfit-genie/internal/domain/recommendation"
	"github.com/yanqian/outfit-genie/internal/infra/config"
	httpiface "github.com/yanqian/outfit-genie/internal/interface/http"
	"github.com/yanqian/outfit-genie/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideEngineConfig,
		provideRecommendationConfig,
		provideCatalog,
		provideHistoryRepository,
		provideOccasionStats,
		outfit.NewEngine,
		recommendation.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
