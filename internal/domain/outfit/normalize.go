package outfit

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type replacement struct {
	from string
	to   string
}

// Order matters: rules run one after another on the same string.
var colorReplacements = []replacement{
	{from: "grey", to: "gray"},
	{from: "lite", to: "light"},
	{from: "dk", to: "dark"},
	{from: "blu", to: "blue"},
	{from: "grn", to: "green"},
	{from: "org", to: "orange"},
	{from: "purp", to: "purple"},
	{from: "pnk", to: "pink"},
	{from: "brwn", to: "brown"},
	{from: "blk", to: "black"},
	{from: "wht", to: "white"},
}

var styleAliases = map[string]string{
	"smart-casual": "smart casual",
	"smart_casual": "smart casual",
	"biz":          "business",
	"biz-casual":   "business casual",
	"athletic":     "sporty",
	"active":       "sporty",
	"professional": "business",
}

var occasionAliases = map[string]string{
	"work":       "business",
	"office":     "business",
	"meeting":    "business",
	"interview":  "formal",
	"wedding":    "formal",
	"night out":  "party",
	"clubbing":   "party",
	"gym":        "sports",
	"workout":    "sports",
	"exercise":   "sports",
	"hiking":     "outdoor",
	"camping":    "outdoor",
	"beach":      "casual",
	"everyday":   "casual",
	"date night": "date",
	"romantic":   "date",
}

var conditionAliases = map[string]string{
	"clear sky":        "sunny",
	"few clouds":       "partly cloudy",
	"scattered clouds": "cloudy",
	"broken clouds":    "cloudy",
	"overcast clouds":  "cloudy",
	"light rain":       "rainy",
	"moderate rain":    "rainy",
	"heavy rain":       "rainy",
	"thunderstorm":     "stormy",
	"snow":             "snowy",
	"mist":             "foggy",
	"fog":              "foggy",
}

const (
	defaultTemperature = 20.0
	defaultHumidity    = 50.0
	defaultWindSpeed   = 0.0
)

// NormalizeColors expands color abbreviations and title-cases the result.
func NormalizeColors(colors []string) []string {
	out := make([]string, 0, len(colors))
	for _, color := range colors {
		value := strings.ToLower(strings.TrimSpace(color))
		for _, rule := range colorReplacements {
			value = expand(value, rule)
		}
		out = append(out, titleCase(value))
	}
	return out
}

// expand replaces rule.from with rule.to, skipping positions that already
// read rule.to so that "blue" is not turned into "bluee".
func expand(s string, rule replacement) string {
	if !strings.Contains(s, rule.from) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(rule.to))
	for i := 0; i < len(s); {
		rest := s[i:]
		switch {
		case strings.HasPrefix(rest, rule.to):
			b.WriteString(rule.to)
			i += len(rule.to)
		case strings.HasPrefix(rest, rule.from):
			b.WriteString(rule.to)
			i += len(rule.from)
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

// NormalizeStyles maps style aliases onto canonical names and title-cases them.
func NormalizeStyles(styles []string) []string {
	out := make([]string, 0, len(styles))
	for _, style := range styles {
		value := strings.ToLower(strings.TrimSpace(style))
		if mapped, ok := styleAliases[value]; ok {
			value = mapped
		}
		out = append(out, titleCase(value))
	}
	return out
}

// NormalizeOccasion returns the lowercase occasion key, resolving aliases.
func NormalizeOccasion(occasion string) string {
	value := strings.ToLower(strings.TrimSpace(occasion))
	if mapped, ok := occasionAliases[value]; ok {
		return mapped
	}
	return value
}

// NormalizeWeather coerces and clamps the loosely typed weather input.
func NormalizeWeather(in WeatherInput) WeatherReading {
	out := WeatherReading{
		Temperature: in.Temperature.Float(defaultTemperature),
	}
	if in.Condition != nil {
		condition := strings.ToLower(strings.TrimSpace(*in.Condition))
		if mapped, ok := conditionAliases[condition]; ok {
			condition = mapped
		}
		out.Condition = condition
	}
	if in.Humidity.Present {
		humidity := clampRange(in.Humidity.Float(defaultHumidity), 0, 100)
		out.Humidity = &humidity
	}
	if in.WindSpeed.Present {
		wind := max(in.WindSpeed.Float(defaultWindSpeed), 0)
		out.WindSpeed = &wind
	}
	return out
}

// NormalizePreferences runs the style and color normalizers over a preference set.
func NormalizePreferences(prefs UserPreferences) UserPreferences {
	out := UserPreferences{
		Styles: NormalizeStyles(prefs.Styles),
		Colors: NormalizeColors(prefs.Colors),
	}
	if len(prefs.AvoidColors) > 0 {
		out.AvoidColors = NormalizeColors(prefs.AvoidColors)
	}
	return out
}

// titleCase builds a fresh Caser per call; Casers are stateful.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func clampRange(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
