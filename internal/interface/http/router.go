package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yanqian/outfit-genie/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	httpLogger := logger.With("component", "http")
	router := gin.New()
	router.Use(
		requestID(),
		recoveryMiddleware(httpLogger, cfg.IsDevelopment()),
		requestLogger(httpLogger),
		corsMiddleware(cfg.HTTP.CORS.AllowedOrigins),
		errorHandlingMiddleware(httpLogger, cfg.IsDevelopment()),
		rateLimitMiddleware(cfg.HTTP.RateLimit, httpLogger),
	)

	router.GET("/", handler.Root)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		api.GET("/health", handler.Health)
		api.GET("/health/ready", handler.Ready)
		api.POST("/recommendations", handler.Recommend)
		api.POST("/recommendations/occasion", handler.RecommendByOccasion)
		api.GET("/recommendations/trending", handler.Trending)
		api.GET("/recommendations/history", handler.History)
		api.POST("/colors/features", handler.ColorFeatures)
		api.GET("/model", handler.ModelInfo)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, httpLogger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
