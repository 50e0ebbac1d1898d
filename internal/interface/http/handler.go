package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/yanqian/outfit-genie/internal/domain/recommendation"
	"github.com/yanqian/outfit-genie/internal/infra/config"
	apperrors "github.com/yanqian/outfit-genie/pkg/errors"
)

const readinessTimeout = 2 * time.Second

// Handler wires the HTTP transport to the recommendation service.
type Handler struct {
	svc        recommendation.Service
	apiVersion string
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc recommendation.Service, cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		svc:        svc,
		apiVersion: cfg.App.APIVersion,
		logger:     logger.With("component", "http.handler"),
	}
}

// Root serves the service banner.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to OutfitGenie API",
		"version": h.apiVersion,
		"status":  "running",
	})
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "API is running successfully",
	})
}

// Ready reports whether the catalog and the stores are usable.
func (h *Handler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		h.logger.Warn("readiness check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "not_ready",
			"message": apperrors.MessageOf(err),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"message": "API is ready to accept requests",
	})
}

// Recommend runs the scored recommendation pipeline.
func (h *Handler) Recommend(c *gin.Context) {
	var req recommendation.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "invalid request body", err))
		return
	}

	resp, err := h.svc.Recommend(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecommendByOccasion serves the unscored occasion lookup. Parameters may
// come from the query string, a form body or a JSON body.
func (h *Handler) RecommendByOccasion(c *gin.Context) {
	var req recommendation.OccasionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "invalid query parameters", err))
		return
	}
	if c.Request.ContentLength != 0 {
		var err error
		switch c.ContentType() {
		case binding.MIMEJSON:
			err = c.ShouldBindJSON(&req)
		case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
			err = c.ShouldBindWith(&req, binding.Form)
		}
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "invalid request body", err))
			return
		}
	}

	resp, err := h.svc.RecommendByOccasion(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Trending lists the most requested occasions.
func (h *Handler) Trending(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	items, err := h.svc.Trending(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "occasions": items})
}

// History lists recently served recommendations.
func (h *Handler) History(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	entries, err := h.svc.History(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entries": entries})
}

// ColorFeatures reports warm/cool/neutral families for a color list.
func (h *Handler) ColorFeatures(c *gin.Context) {
	var req recommendation.ColorFeaturesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "invalid request body", err))
		return
	}
	resp, err := h.svc.ColorFeatures(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "colors": resp.Colors, "features": resp.Features})
}

// ModelInfo describes the rule engine.
func (h *Handler) ModelInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ModelInfo())
}

func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "limit must be a positive integer", err))
		return 0, false
	}
	return limit, true
}

// domainError maps service failures: validation problems keep their
// message, everything else is reported as an internal error.
func domainError(err error) *HTTPError {
	if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		return NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidInput, apperrors.MessageOf(err), err)
	}
	return NewHTTPError(http.StatusInternalServerError, apperrors.CodeInternal, internalErrorMessage, err)
}
