package recommendation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/yanqian/outfit-genie/internal/domain/outfit"
	apperrors "github.com/yanqian/outfit-genie/pkg/errors"
	"github.com/yanqian/outfit-genie/pkg/metrics"
)

const (
	defaultTrendingLimit = 10
	defaultHistoryLimit  = 20
	maxListLimit         = 100

	messageGenerated = "Recommendations generated successfully"
)

// Service exposes the outfit recommendation use cases.
type Service interface {
	Recommend(ctx context.Context, req Request) (Response, error)
	RecommendByOccasion(ctx context.Context, req OccasionRequest) (OccasionResponse, error)
	Trending(ctx context.Context, limit int) ([]TrendingOccasion, error)
	History(ctx context.Context, limit int) ([]HistoryEntry, error)
	ColorFeatures(ctx context.Context, req ColorFeaturesRequest) (ColorFeaturesResponse, error)
	ModelInfo() outfit.ModelInfo
	Ready(ctx context.Context) error
}

type service struct {
	cfg      Config
	engine   *outfit.Engine
	catalog  *outfit.Catalog
	history  HistoryRepository
	stats    OccasionStats
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// NewService wires up the recommendation domain.
func NewService(cfg Config, engine *outfit.Engine, catalog *outfit.Catalog, history HistoryRepository, stats OccasionStats, logger *slog.Logger) Service {
	if cfg.TrendingLimit <= 0 {
		cfg.TrendingLimit = defaultTrendingLimit
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	return &service{
		cfg:      cfg,
		engine:   engine,
		catalog:  catalog,
		history:  history,
		stats:    stats,
		validate: newValidator(),
		logger:   logger.With("component", "recommendation.service"),
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
}

func (s *service) Recommend(ctx context.Context, req Request) (Response, error) {
	if err := outfit.Validate(req.UserPreferences, req.Weather, req.Occasion); err != nil {
		metrics.RecordOutcome(string(PathScored), "invalid")
		return Response{}, err
	}
	if err := s.checkStruct(req); err != nil {
		metrics.RecordOutcome(string(PathScored), "invalid")
		return Response{}, err
	}

	bucket, candidates := s.catalog.Bucket(outfit.NormalizeOccasion(req.Occasion))
	result, err := s.engine.Recommend(req.UserPreferences, req.Weather, req.Occasion, candidates)
	if err != nil {
		metrics.RecordOutcome(string(PathScored), outcomeOf(err))
		return Response{}, err
	}

	metrics.WeatherBands.WithLabelValues(result.Band.String()).Inc()
	if !result.WeatherMatched {
		metrics.FilterFallbacks.WithLabelValues("weather").Inc()
	}
	if len(result.Outfits) > 0 {
		metrics.TopScore.Observe(result.Outfits[0].ConfidenceScore)
	}
	metrics.RecordOutcome(string(PathScored), "ok")

	s.logger.Debug("recommendations scored",
		"occasion", result.Occasion,
		"bucket", bucket,
		"band", result.Band.String(),
		"weatherMatched", result.WeatherMatched,
		"candidates", len(candidates),
		"returned", len(result.Outfits),
	)
	s.record(ctx, PathScored, result.Occasion, result.Band.String(), result.Outfits)

	return Response{
		Success:         true,
		Recommendations: result.Outfits,
		Message:         messageGenerated,
		TotalCount:      len(result.Outfits),
		Occasion:        result.Occasion,
		WeatherBand:     result.Band,
	}, nil
}

func (s *service) RecommendByOccasion(ctx context.Context, req OccasionRequest) (OccasionResponse, error) {
	occasion := strings.TrimSpace(req.Occasion)
	if occasion == "" {
		metrics.RecordOutcome(string(PathOccasion), "invalid")
		return OccasionResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, outfit.MsgOccasionRequired, nil)
	}
	if err := s.checkStruct(req); err != nil {
		metrics.RecordOutcome(string(PathOccasion), "invalid")
		return OccasionResponse{}, err
	}

	match := s.catalog.LookupByOccasion(occasion, req.Style, req.Colors)
	if len(req.Colors) > 0 && !match.ColorMatched {
		metrics.FilterFallbacks.WithLabelValues("color").Inc()
	}
	metrics.RecordOutcome(string(PathOccasion), "ok")
	s.record(ctx, PathOccasion, outfit.NormalizeOccasion(occasion), "", match.Outfits)

	var style *string
	if trimmed := strings.TrimSpace(req.Style); trimmed != "" {
		style = &trimmed
	}
	return OccasionResponse{
		Success:         true,
		Occasion:        occasion,
		Style:           style,
		Colors:          req.Colors,
		Recommendations: match.Outfits,
		Message:         fmt.Sprintf("Found %d recommendations for %s", len(match.Outfits), occasion),
	}, nil
}

func (s *service) Trending(ctx context.Context, limit int) ([]TrendingOccasion, error) {
	items, err := s.stats.Top(ctx, clampLimit(limit, s.cfg.TrendingLimit))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "trending lookup failed", err)
	}
	if items == nil {
		items = []TrendingOccasion{}
	}
	return items, nil
}

func (s *service) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	entries, err := s.history.Recent(ctx, clampLimit(limit, s.cfg.HistoryLimit))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "history lookup failed", err)
	}
	if entries == nil {
		entries = []HistoryEntry{}
	}
	return entries, nil
}

func (s *service) ColorFeatures(_ context.Context, req ColorFeaturesRequest) (ColorFeaturesResponse, error) {
	if len(req.Colors) == 0 {
		return ColorFeaturesResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, outfit.MsgColorRequired, nil)
	}
	if err := s.checkStruct(req); err != nil {
		return ColorFeaturesResponse{}, err
	}
	colors, features := outfit.DescribeColors(req.Colors)
	return ColorFeaturesResponse{
		Colors:   colors,
		Features: features,
	}, nil
}

func (s *service) ModelInfo() outfit.ModelInfo {
	return s.engine.Info()
}

// Ready reports whether the catalog is loaded and the backing stores answer.
func (s *service) Ready(ctx context.Context) error {
	if s.catalog == nil || s.catalog.Size() == 0 {
		return apperrors.Wrap(apperrors.CodeInternal, "catalog not loaded", nil)
	}
	if err := s.history.Ping(ctx); err != nil {
		return apperrors.Wrap(apperrors.CodeInternal, "history store unavailable", err)
	}
	if err := s.stats.Ping(ctx); err != nil {
		return apperrors.Wrap(apperrors.CodeInternal, "stats store unavailable", err)
	}
	return nil
}

// record writes history and popularity counters. Failures are logged and
// never surface to the caller.
func (s *service) record(ctx context.Context, path Path, occasion, band string, outfits []outfit.OutfitCandidate) {
	entry := HistoryEntry{
		ID:          s.newID(),
		Path:        path,
		Occasion:    occasion,
		WeatherBand: band,
		OutfitIDs:   make([]string, 0, len(outfits)),
		CreatedAt:   s.now().UTC(),
	}
	for _, o := range outfits {
		entry.OutfitIDs = append(entry.OutfitIDs, o.ID)
	}
	if len(outfits) > 0 {
		entry.TopScore = outfits[0].ConfidenceScore
	}
	if err := s.history.Append(ctx, entry); err != nil {
		s.logger.Warn("failed to record history", "error", err, "path", path)
	}
	if err := s.stats.Increment(ctx, occasion); err != nil {
		s.logger.Warn("failed to count occasion", "error", err, "occasion", occasion)
	}
}

func (s *service) checkStruct(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperrors.Wrap(apperrors.CodeInvalidInput, describe(fieldErrs[0]), nil)
	}
	return apperrors.Wrap(apperrors.CodeInvalidInput, "invalid request", err)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s accepts at most %s entries", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func outcomeOf(err error) string {
	if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		return "invalid"
	}
	return "error"
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		limit = fallback
	}
	return min(limit, maxListLimit)
}
