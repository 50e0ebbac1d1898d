package outfit

import "strings"

// Band is a temperature category that gates which styles are appropriate.
type Band int

const (
	BandVeryCold Band = iota
	BandCold
	BandMild
	BandWarm
	BandHot
)

// Upper bounds (exclusive) of every band but the last, in degrees Celsius.
const (
	veryColdBelow = 5.0
	coldBelow     = 15.0
	mildBelow     = 20.0
	warmBelow     = 25.0
)

var bandStyles = map[Band][]string{
	BandVeryCold: {"layered", "formal", "business"},
	BandCold:     {"business", "formal", "casual"},
	BandMild:     {"casual", "business", "smart casual"},
	BandWarm:     {"casual", "smart casual", "party"},
	BandHot:      {"casual", "sporty", "outdoor"},
}

// Classify maps a temperature onto its band using strict less-than cutoffs.
func Classify(temperature float64) Band {
	switch {
	case temperature < veryColdBelow:
		return BandVeryCold
	case temperature < coldBelow:
		return BandCold
	case temperature < mildBelow:
		return BandMild
	case temperature < warmBelow:
		return BandWarm
	default:
		return BandHot
	}
}

func (b Band) String() string {
	switch b {
	case BandVeryCold:
		return "very_cold"
	case BandCold:
		return "cold"
	case BandMild:
		return "mild"
	case BandWarm:
		return "warm"
	case BandHot:
		return "hot"
	default:
		return "unknown"
	}
}

// MarshalText lets bands serialize by name.
func (b Band) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// AppropriateStyles returns a copy of the band's style keywords.
func (b Band) AppropriateStyles() []string {
	return append([]string(nil), bandStyles[b]...)
}

// FilterByWeather keeps outfits whose style contains one of the band's
// keywords. When nothing matches the input slice is returned as is.
func FilterByWeather(outfits []OutfitCandidate, band Band) []OutfitCandidate {
	filtered, _ := filterByWeather(outfits, band)
	return filtered
}

func filterByWeather(outfits []OutfitCandidate, band Band) ([]OutfitCandidate, bool) {
	keywords := bandStyles[band]
	if len(keywords) == 0 {
		return outfits, false
	}
	filtered := make([]OutfitCandidate, 0, len(outfits))
	for _, candidate := range outfits {
		style := strings.ToLower(candidate.Style)
		if containsAny(style, keywords) {
			filtered = append(filtered, candidate)
		}
	}
	if len(filtered) == 0 {
		return outfits, false
	}
	return filtered, true
}

// containsAny reports whether lowered contains any needle, case-insensitively.
func containsAny(lowered string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(lowered, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}
