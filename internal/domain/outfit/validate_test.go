package outfit

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/outfit-genie/pkg/errors"
)

func TestValidateOrdering(t *testing.T) {
	sunny := "sunny"
	validPrefs := &UserPreferences{Styles: []string{"Casual"}, Colors: []string{"Blue"}}
	validWeather := &WeatherInput{Temperature: Num(21), Condition: &sunny}

	cases := []struct {
		name     string
		prefs    *UserPreferences
		weather  *WeatherInput
		occasion string
		want     string
	}{
		{name: "everything missing", want: MsgPreferencesRequired},
		{name: "no styles", prefs: &UserPreferences{Colors: []string{"Blue"}}, want: MsgStyleRequired},
		{name: "no styles or colors", prefs: &UserPreferences{}, want: MsgStyleRequired},
		{name: "no colors", prefs: &UserPreferences{Styles: []string{"Casual"}, Colors: []string{}}, want: MsgColorRequired},
		{name: "no weather", prefs: validPrefs, occasion: "work", want: MsgWeatherRequired},
		{name: "no temperature", prefs: validPrefs, weather: &WeatherInput{Condition: &sunny}, want: MsgTemperatureRequired},
		{name: "no condition", prefs: validPrefs, weather: &WeatherInput{Temperature: Num(3)}, want: MsgConditionRequired},
		{name: "blank occasion", prefs: validPrefs, weather: validWeather, occasion: "  \t", want: MsgOccasionRequired},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tc.prefs, tc.weather, tc.occasion)
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
			require.Equal(t, tc.want, err.Error())
		})
	}
}

func TestValidateAcceptsCompleteRequest(t *testing.T) {
	condition := ""
	err := Validate(
		&UserPreferences{Styles: []string{"Casual"}, Colors: []string{"Blue"}},
		&WeatherInput{Temperature: Number{Present: true}, Condition: &condition},
		"beach",
	)
	require.NoError(t, err)
}
