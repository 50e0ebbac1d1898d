package outfit

import (
	"strings"

	apperrors "github.com/yanqian/outfit-genie/pkg/errors"
)

// Validation messages are part of the public contract and are returned verbatim.
const (
	MsgPreferencesRequired = "User preferences are required"
	MsgStyleRequired       = "At least one style preference is required"
	MsgColorRequired       = "At least one color preference is required"
	MsgWeatherRequired     = "Weather data is required"
	MsgTemperatureRequired = "Temperature is required in weather data"
	MsgConditionRequired   = "Weather condition is required"
	MsgOccasionRequired    = "Occasion is required"
)

// Validate checks the minimum request fields. The first failing check wins,
// in the order the messages are declared above.
func Validate(prefs *UserPreferences, weather *WeatherInput, occasion string) error {
	switch {
	case prefs == nil:
		return invalid(MsgPreferencesRequired)
	case len(prefs.Styles) == 0:
		return invalid(MsgStyleRequired)
	case len(prefs.Colors) == 0:
		return invalid(MsgColorRequired)
	case weather == nil:
		return invalid(MsgWeatherRequired)
	case !weather.Temperature.Present:
		return invalid(MsgTemperatureRequired)
	case weather.Condition == nil:
		return invalid(MsgConditionRequired)
	case strings.TrimSpace(occasion) == "":
		return invalid(MsgOccasionRequired)
	}
	return nil
}

func invalid(msg string) error {
	return apperrors.Wrap(apperrors.CodeInvalidInput, msg, nil)
}
