package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/outfit-genie/internal/domain/outfit"
)

const beachCatalog = `
occasions:
  casual:
    - id: A
      name: Linen Set
      colors: [Blue]
      style: Casual
      confidenceScore: 0.7
    - id: B
      name: Blazer
      colors: [Red]
      style: Formal
      confidenceScore: 0.9
`

func TestRecommendCommand(t *testing.T) {
	path := writeCatalog(t, beachCatalog)

	out, err := run(t, "--catalog", path, "recommend",
		"--style", "Casual", "--color", "Blue,White",
		"--temperature", "28", "--condition", "sunny", "--occasion", "beach")
	require.NoError(t, err)

	var result struct {
		Occasion        string                   `json:"occasion"`
		WeatherBand     string                   `json:"weatherBand"`
		Recommendations []outfit.OutfitCandidate `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	require.Equal(t, "casual", result.Occasion)
	require.Equal(t, "hot", result.WeatherBand)
	require.Len(t, result.Recommendations, 1)
	require.Equal(t, "A", result.Recommendations[0].ID)
	require.InDelta(t, 0.85, result.Recommendations[0].ConfidenceScore, 1e-9)
}

func TestRecommendCommandValidation(t *testing.T) {
	path := writeCatalog(t, beachCatalog)

	_, err := run(t, "--catalog", path, "recommend", "--style", "Casual", "--color", "Blue", "--condition", "sunny", "--occasion", "beach")
	require.EqualError(t, err, outfit.MsgTemperatureRequired)

	_, err = run(t, "--catalog", path, "recommend", "--style", "Casual", "--color", "Blue", "--temperature", "28", "--occasion", "beach")
	require.EqualError(t, err, outfit.MsgConditionRequired)
}

func TestRecommendCommandNonFiniteTemperature(t *testing.T) {
	path := writeCatalog(t, beachCatalog)

	for _, raw := range []string{"NaN", "+Inf", "-inf"} {
		out, err := run(t, "--catalog", path, "recommend",
			"--style", "Casual", "--color", "Blue",
			"--temperature", raw, "--condition", "sunny", "--occasion", "beach")
		require.NoError(t, err, raw)

		var result struct {
			WeatherBand string                `json:"weatherBand"`
			Weather     outfit.WeatherReading `json:"weather"`
		}
		require.NoError(t, json.Unmarshal(out.Bytes(), &result), raw)
		require.Equal(t, "warm", result.WeatherBand, raw)
		require.Equal(t, 20.0, result.Weather.Temperature, raw)
	}
}

func TestOccasionCommand(t *testing.T) {
	out, err := run(t, "occasion", "wedding", "--color", "Charcoal")
	require.NoError(t, err)

	var result struct {
		Bucket          string                   `json:"bucket"`
		ColorMatched    bool                     `json:"colorMatched"`
		Recommendations []outfit.OutfitCandidate `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	require.Equal(t, "wedding", result.Bucket)
	require.True(t, result.ColorMatched)
	require.Len(t, result.Recommendations, 1)
	require.Equal(t, "wedding_1", result.Recommendations[0].ID)

	_, err = run(t, "occasion")
	require.Error(t, err)
}

func TestCatalogValidateAndExport(t *testing.T) {
	out, err := run(t, "catalog", "validate")
	require.NoError(t, err)
	require.Equal(t, "embedded: 8 occasions, 17 outfits\n", out.String())

	path := writeCatalog(t, beachCatalog)
	out, err = run(t, "--catalog", path, "catalog", "export")
	require.NoError(t, err)
	require.Contains(t, out.String(), "id: A")
	require.NotContains(t, out.String(), "occasion: casual")

	bad := writeCatalog(t, "occasions:\n  formal:\n    - id: f1\n      confidenceScore: 0.5\n")
	_, err = run(t, "--catalog", bad, "catalog", "validate")
	require.Error(t, err)
}

func run(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := NewRootCommand(out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	return out, cmd.Execute()
}

func writeCatalog(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}
