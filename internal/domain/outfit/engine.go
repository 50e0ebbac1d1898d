package outfit

import (
	"errors"
	"fmt"
	"math"
	"strings"

	apperrors "github.com/yanqian/outfit-genie/pkg/errors"
)

// DefaultTopK is the number of outfits returned when Config.TopK is unset.
const DefaultTopK = 5

// Config tunes the engine.
type Config struct {
	TopK int
}

// Result is the outcome of a scored recommendation.
type Result struct {
	Occasion    string            `json:"occasion"`
	Band        Band              `json:"weatherBand"`
	Weather     WeatherReading    `json:"weather"`
	Preferences UserPreferences   `json:"preferences"`
	Outfits     []OutfitCandidate `json:"recommendations"`
	// WeatherMatched is false when the weather filter matched nothing and the
	// unfiltered candidates were scored instead.
	WeatherMatched bool `json:"weatherMatched"`
}

// Engine runs the rule based pipeline. It holds only static tables and is
// safe for concurrent use.
type Engine struct {
	topK int
}

// NewEngine builds the engine.
func NewEngine(cfg Config) *Engine {
	topK := cfg.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Engine{topK: topK}
}

// TopK reports the truncation size.
func (e *Engine) TopK() int {
	return e.topK
}

// Recommend validates and normalizes the request, filters catalog by the
// weather band, scores what is left and keeps the best TopK outfits.
func (e *Engine) Recommend(prefs *UserPreferences, weather *WeatherInput, occasion string, catalog []OutfitCandidate) (Result, error) {
	if err := Validate(prefs, weather, occasion); err != nil {
		return Result{}, err
	}
	if err := checkCatalog(catalog); err != nil {
		return Result{}, apperrors.Wrap(apperrors.CodeInternal, "malformed catalog record", err)
	}

	normalizedPrefs := NormalizePreferences(*prefs)
	reading := NormalizeWeather(*weather)
	band := Classify(reading.Temperature)

	candidates, matched := filterByWeather(catalog, band)
	ranked := Score(candidates, normalizedPrefs.Styles, normalizedPrefs.Colors, normalizedPrefs.AvoidColors)
	if len(ranked) > e.topK {
		ranked = ranked[:e.topK]
	}

	return Result{
		Occasion:       NormalizeOccasion(occasion),
		Band:           band,
		Weather:        reading,
		Preferences:    normalizedPrefs,
		Outfits:        ranked,
		WeatherMatched: matched,
	}, nil
}

func checkCatalog(catalog []OutfitCandidate) error {
	for i, candidate := range catalog {
		if err := checkCandidate(candidate); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

func checkCandidate(candidate OutfitCandidate) error {
	if strings.TrimSpace(candidate.ID) == "" {
		return errors.New("missing id")
	}
	score := candidate.ConfidenceScore
	if math.IsNaN(score) || score < minConfidence || score > maxConfidence {
		return fmt.Errorf("outfit %q: confidence score %v outside [0,1]", candidate.ID, score)
	}
	return nil
}
