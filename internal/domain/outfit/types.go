package outfit

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// UserPreferences holds the caller's style and color taste.
type UserPreferences struct {
	Styles      []string `json:"styles"`
	Colors      []string `json:"colors"`
	AvoidColors []string `json:"avoidColors,omitempty"`
}

// WeatherInput is the weather block as received from the caller. Numeric
// fields stay loosely typed until NormalizeWeather coerces them.
type WeatherInput struct {
	Temperature Number  `json:"temperature"`
	Condition   *string `json:"condition"`
	Humidity    Number  `json:"humidity"`
	WindSpeed   Number  `json:"windSpeed"`
}

// WeatherReading is the normalized weather used by the engine.
type WeatherReading struct {
	Temperature float64  `json:"temperature"`
	Condition   string   `json:"condition"`
	Humidity    *float64 `json:"humidity,omitempty"`
	WindSpeed   *float64 `json:"windSpeed,omitempty"`
}

// OutfitCandidate is a catalog record. Records are treated as immutable:
// every stage that changes a field works on a copy.
type OutfitCandidate struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	Items           []string `json:"items" yaml:"items"`
	Colors          []string `json:"colors" yaml:"colors"`
	Style           string   `json:"style" yaml:"style"`
	Occasion        string   `json:"occasion" yaml:"occasion,omitempty"`
	ConfidenceScore float64  `json:"confidenceScore" yaml:"confidenceScore"`
	ImageURL        string   `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}

// Number is a leniently decoded JSON number. It records whether the key was
// supplied at all (Present) and whether the value could be read as a finite
// number (Valid). Numeric strings such as "21.5" are accepted.
type Number struct {
	Value   float64
	Valid   bool
	Present bool
}

// Num builds a present, valid Number.
func Num(v float64) Number {
	return Number{Value: v, Valid: true, Present: true}
}

// Float returns the value, or fallback when it could not be coerced.
func (n Number) Float(fallback float64) float64 {
	if !n.Valid {
		return fallback
	}
	return n.Value
}

// UnmarshalJSON never fails: undecodable values are kept as present but invalid.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{Present: true}
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && isFinite(v) {
			n.Value, n.Valid = v, true
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err == nil && isFinite(v) {
		n.Value, n.Valid = v, true
	}
	return nil
}

// MarshalJSON writes null for values that never parsed.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
