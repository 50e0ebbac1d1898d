package cli

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/outfit-genie/internal/domain/outfit"
)

func recommendCmd(opts *options) *cobra.Command {
	var (
		styles      []string
		colors      []string
		avoid       []string
		temperature string
		condition   string
		humidity    string
		windSpeed   string
		occasion    string
		topK        int
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Score catalog outfits for preferences, weather and occasion",
		Example: `  outfitctl recommend --style Casual --color Blue --temperature 28 --condition sunny --occasion beach`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			prefs := &outfit.UserPreferences{Styles: styles, Colors: colors, AvoidColors: avoid}
			weather := &outfit.WeatherInput{
				Temperature: flagNumber(cmd, "temperature", temperature),
				Humidity:    flagNumber(cmd, "humidity", humidity),
				WindSpeed:   flagNumber(cmd, "wind-speed", windSpeed),
			}
			if cmd.Flags().Changed("condition") {
				weather.Condition = &condition
			}

			_, candidates := catalog.Bucket(outfit.NormalizeOccasion(occasion))
			result, err := outfit.NewEngine(outfit.Config{TopK: topK}).Recommend(prefs, weather, occasion, candidates)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&styles, "style", nil, "preferred style (repeatable)")
	flags.StringSliceVar(&colors, "color", nil, "preferred color (repeatable)")
	flags.StringSliceVar(&avoid, "avoid", nil, "color to avoid (repeatable)")
	flags.StringVar(&temperature, "temperature", "", "temperature in Celsius")
	flags.StringVar(&condition, "condition", "", "weather condition, e.g. sunny or light rain")
	flags.StringVar(&humidity, "humidity", "", "relative humidity in percent")
	flags.StringVar(&windSpeed, "wind-speed", "", "wind speed")
	flags.StringVar(&occasion, "occasion", "", "occasion, e.g. work or wedding")
	flags.IntVar(&topK, "top-k", outfit.DefaultTopK, "number of outfits to return")
	return cmd
}

// flagNumber mirrors the lenient JSON decoding: an unset flag is absent and
// an unparsable or non-finite one is present but invalid.
func flagNumber(cmd *cobra.Command, name, raw string) outfit.Number {
	if !cmd.Flags().Changed(name) {
		return outfit.Number{}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return outfit.Number{Present: true}
	}
	return outfit.Num(v)
}
