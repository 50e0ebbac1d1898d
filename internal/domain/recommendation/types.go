package recommendation

import (
	"time"

	"github.com/yanqian/outfit-genie/internal/domain/outfit"
)

// Path labels which lookup produced a history entry.
type Path string

const (
	// PathScored is the weather-filtered, preference-scored pipeline.
	PathScored Path = "scored"
	// PathOccasion is the unscored occasion bucket lookup.
	PathOccasion Path = "occasion"
)

// Request is the primary recommendation payload.
type Request struct {
	UserPreferences *outfit.UserPreferences `json:"userPreferences"`
	Weather         *outfit.WeatherInput    `json:"weather"`
	Occasion        string                  `json:"occasion"`
	AdditionalNotes string                  `json:"additionalNotes,omitempty" validate:"max=500"`
}

// Response is returned by Recommend.
type Response struct {
	Success         bool                     `json:"success"`
	Recommendations []outfit.OutfitCandidate `json:"recommendations"`
	Message         string                   `json:"message"`
	TotalCount      int                      `json:"totalCount"`
	Occasion        string                   `json:"occasion"`
	WeatherBand     outfit.Band              `json:"weatherBand"`
}

// OccasionRequest drives the occasion lookup. It binds from JSON as well as
// from query or form values.
type OccasionRequest struct {
	Occasion string   `json:"occasion" form:"occasion" validate:"max=64"`
	Style    string   `json:"style" form:"style" validate:"max=64"`
	Colors   []string `json:"colors" form:"colors" validate:"max=32,dive,max=64"`
}

// OccasionResponse is returned by RecommendByOccasion. Style and Colors echo
// the request and are null when absent.
type OccasionResponse struct {
	Success         bool                     `json:"success"`
	Occasion        string                   `json:"occasion"`
	Style           *string                  `json:"style"`
	Colors          []string                 `json:"colors"`
	Recommendations []outfit.OutfitCandidate `json:"recommendations"`
	Message         string                   `json:"message"`
}

// ColorFeaturesRequest carries the colors to analyze.
type ColorFeaturesRequest struct {
	Colors []string `json:"colors" validate:"max=32,dive,max=64"`
}

// ColorFeaturesResponse reports color families over the normalized colors.
type ColorFeaturesResponse struct {
	Colors   []string             `json:"colors"`
	Features outfit.ColorFeatures `json:"features"`
}

// HistoryEntry records one served recommendation.
type HistoryEntry struct {
	ID          string    `json:"id"`
	Path        Path      `json:"path"`
	Occasion    string    `json:"occasion"`
	WeatherBand string    `json:"weatherBand,omitempty"`
	OutfitIDs   []string  `json:"outfitIds"`
	TopScore    float64   `json:"topScore"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TrendingOccasion is an occasion with its request count.
type TrendingOccasion struct {
	Occasion string `json:"occasion"`
	Count    int64  `json:"count"`
}

// Config holds runtime knobs for the recommendation service.
type Config struct {
	TrendingLimit int
	HistoryLimit  int
}
