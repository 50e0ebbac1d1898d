package outfit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeColors(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "british spelling", in: []string{" Grey "}, want: []string{"Gray"}},
		{name: "dark abbreviation", in: []string{"dk blu"}, want: []string{"Dark Blue"}},
		{name: "lite", in: []string{"LITE grn"}, want: []string{"Light Green"}},
		{name: "full words untouched", in: []string{"blue", "purple", "navy"}, want: []string{"Blue", "Purple", "Navy"}},
		{name: "abbreviations", in: []string{"org", "purp", "pnk", "brwn", "blk", "wht"}, want: []string{"Orange", "Purple", "Pink", "Brown", "Black", "White"}},
		{name: "embedded abbreviation", in: []string{"bluish"}, want: []string{"Blueish"}},
		{name: "empty list", in: nil, want: []string{}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, NormalizeColors(tc.in))
		})
	}
}

func TestNormalizeColorsIdempotent(t *testing.T) {
	inputs := [][]string{
		{"grey", "dk blu", "lite purp"},
		{"Blue", "Light Blue", "bluish"},
		{"blublu", "purpurple", "  WHT  ", "brwn-org"},
		{"Navy", "Charcoal", "Burgundy", ""},
	}
	for _, in := range inputs {
		once := NormalizeColors(in)
		require.Equal(t, once, NormalizeColors(once), "input %v", in)
	}
}

func TestNormalizeStyles(t *testing.T) {
	got := NormalizeStyles([]string{"smart-casual", " BIZ ", "athletic", "professional", "biz-casual", "Bohemian"})
	require.Equal(t, []string{"Smart Casual", "Business", "Sporty", "Business", "Business Casual", "Bohemian"}, got)
}

func TestNormalizeOccasion(t *testing.T) {
	cases := map[string]string{
		"Work":        "business",
		" interview ": "formal",
		"gym":         "sports",
		"Beach":       "casual",
		"date night":  "date",
		"Brunch":      "brunch",
	}
	for in, want := range cases {
		require.Equal(t, want, NormalizeOccasion(in), "occasion %q", in)
	}
}

func TestNormalizeWeather(t *testing.T) {
	condition := " Light Rain "
	got := NormalizeWeather(WeatherInput{
		Temperature: Num(12.5),
		Condition:   &condition,
		Humidity:    Num(140),
		WindSpeed:   Num(-3),
	})
	require.Equal(t, 12.5, got.Temperature)
	require.Equal(t, "rainy", got.Condition)
	require.NotNil(t, got.Humidity)
	require.Equal(t, 100.0, *got.Humidity)
	require.NotNil(t, got.WindSpeed)
	require.Equal(t, 0.0, *got.WindSpeed)
}

func TestNormalizeWeatherCoercionDefaults(t *testing.T) {
	var in WeatherInput
	require.NoError(t, json.Unmarshal([]byte(`{"temperature":"warm","condition":"drizzle","humidity":"n/a","windSpeed":null}`), &in))

	got := NormalizeWeather(in)
	require.Equal(t, 20.0, got.Temperature)
	require.Equal(t, "drizzle", got.Condition)
	require.Equal(t, 50.0, *got.Humidity)
	require.Equal(t, 0.0, *got.WindSpeed)
}

func TestNormalizeWeatherOptionalFieldsStayAbsent(t *testing.T) {
	var in WeatherInput
	require.NoError(t, json.Unmarshal([]byte(`{"temperature":"18.5","condition":"clear sky"}`), &in))

	got := NormalizeWeather(in)
	require.Equal(t, 18.5, got.Temperature)
	require.Equal(t, "sunny", got.Condition)
	require.Nil(t, got.Humidity)
	require.Nil(t, got.WindSpeed)
}

func TestNumberJSON(t *testing.T) {
	var n Number
	require.NoError(t, json.Unmarshal([]byte(`true`), &n))
	require.True(t, n.Present)
	require.False(t, n.Valid)

	data, err := json.Marshal(struct {
		A Number `json:"a"`
		B Number `json:"b"`
	}{A: Num(1.5)})
	require.NoError(t, err)
	require.JSONEq(t, `{"a":1.5,"b":null}`, string(data))
}

func TestNormalizePreferencesAvoidColors(t *testing.T) {
	got := NormalizePreferences(UserPreferences{
		Styles:      []string{"biz"},
		Colors:      []string{"grey"},
		AvoidColors: []string{"pnk"},
	})
	require.Equal(t, []string{"Business"}, got.Styles)
	require.Equal(t, []string{"Gray"}, got.Colors)
	require.Equal(t, []string{"Pink"}, got.AvoidColors)

	require.Nil(t, NormalizePreferences(UserPreferences{Styles: []string{"x"}, Colors: []string{"y"}}).AvoidColors)
}
