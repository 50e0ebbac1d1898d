package outfit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractColorFeatures(t *testing.T) {
	got := ExtractColorFeatures([]string{"Red", "Navy", "Navy", "Olive"})
	require.Equal(t, ColorFeatures{
		HasWarm:    true,
		HasCool:    true,
		HasNeutral: false,
		ColorCount: 4,
		Diversity:  3,
	}, got)

	require.Equal(t, ColorFeatures{}, ExtractColorFeatures(nil))
	require.True(t, ExtractColorFeatures([]string{"BEIGE"}).HasNeutral)
}

func TestDescribeColorsCountsRawDiversity(t *testing.T) {
	colors, got := DescribeColors([]string{"blu", "Blue"})
	require.Equal(t, []string{"Blue", "Blue"}, colors)
	require.Equal(t, ColorFeatures{HasCool: true, ColorCount: 2, Diversity: 2}, got)

	_, got = DescribeColors([]string{"navy", "org", "navy"})
	require.Equal(t, ColorFeatures{HasWarm: true, HasCool: true, ColorCount: 3, Diversity: 2}, got)
}

func TestPredictStyleMatch(t *testing.T) {
	require.InDelta(t, 0.5, PredictStyleMatch("Formal", []string{"casual"}), 1e-9)
	require.InDelta(t, 0.8, PredictStyleMatch("Smart Casual", []string{"Casual"}), 1e-9)
	require.Equal(t, 1.0, PredictStyleMatch("Business Casual", []string{"business", "casual"}))
}

func TestEngineInfo(t *testing.T) {
	info := NewEngine(Config{TopK: 3}).Info()
	require.Equal(t, "RuleBased", info.ModelType)
	require.Equal(t, EngineVersion, info.Version)
	require.True(t, info.Loaded)
	require.Equal(t, 3, info.TopK)
	require.Equal(t, 25.0, info.Thresholds["warm"])
	require.Equal(t, []string{"casual", "sporty", "outdoor"}, info.BandStyles["hot"])
	require.Len(t, info.BandStyles, 5)
}
