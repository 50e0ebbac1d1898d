package outfit

import "strings"

var (
	warmColors    = []string{"red", "orange", "yellow", "pink", "burgundy"}
	coolColors    = []string{"blue", "green", "purple", "navy", "teal"}
	neutralColors = []string{"black", "white", "gray", "beige", "brown"}
)

// ColorFeatures summarizes a color preference list.
type ColorFeatures struct {
	HasWarm    bool `json:"hasWarm"`
	HasCool    bool `json:"hasCool"`
	HasNeutral bool `json:"hasNeutral"`
	ColorCount int  `json:"colorCount"`
	Diversity  int  `json:"diversity"`
}

// ExtractColorFeatures reports which temperature families appear in colors.
// Family membership is an exact, case-insensitive name match. Diversity
// counts distinct entries exactly as given.
func ExtractColorFeatures(colors []string) ColorFeatures {
	set := lowerSet(colors)
	return ColorFeatures{
		HasWarm:    countMembers(warmColors, set) > 0,
		HasCool:    countMembers(coolColors, set) > 0,
		HasNeutral: countMembers(neutralColors, set) > 0,
		ColorCount: len(colors),
		Diversity:  distinct(colors),
	}
}

// DescribeColors normalizes raw color input and reports its features.
// Families are read from the normalized names while Diversity counts the
// distinct raw entries, so "blu" and "Blue" are two inputs.
func DescribeColors(raw []string) ([]string, ColorFeatures) {
	normalized := NormalizeColors(raw)
	features := ExtractColorFeatures(normalized)
	features.Diversity = distinct(raw)
	return normalized, features
}

func distinct(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// PredictStyleMatch rates how well outfitStyle fits the preferred styles:
// 0.5 plus 0.3 per preference contained in the style, capped at 1.
func PredictStyleMatch(outfitStyle string, preferences []string) float64 {
	style := strings.ToLower(outfitStyle)
	matches := 0
	for _, pref := range preferences {
		if strings.Contains(style, strings.ToLower(pref)) {
			matches++
		}
	}
	return min(1.0, float64(matches)*0.3+0.5)
}

// ModelInfo describes the rule engine.
type ModelInfo struct {
	ModelType  string              `json:"modelType"`
	Version    string              `json:"version"`
	Loaded     bool                `json:"loaded"`
	Status     string              `json:"status"`
	TopK       int                 `json:"topK"`
	Thresholds map[string]float64  `json:"thresholds"`
	BandStyles map[string][]string `json:"bandStyles"`
}

// EngineVersion is reported by Info.
const EngineVersion = "1.0.0"

// Info returns a description of the thresholds and tables in use.
func (e *Engine) Info() ModelInfo {
	styles := make(map[string][]string, len(bandStyles))
	for band := range bandStyles {
		styles[band.String()] = band.AppropriateStyles()
	}
	return ModelInfo{
		ModelType: "RuleBased",
		Version:   EngineVersion,
		Loaded:    true,
		Status:    "Using rule-based scoring over a static catalog",
		TopK:      e.topK,
		Thresholds: map[string]float64{
			BandVeryCold.String(): veryColdBelow,
			BandCold.String():     coldBelow,
			BandMild.String():     mildBelow,
			BandWarm.String():     warmBelow,
		},
		BandStyles: styles,
	}
}
