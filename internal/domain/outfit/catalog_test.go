package outfit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := NewCatalog(map[string][]OutfitCandidate{
		"Casual": {
			{ID: "casual_1", Style: "Casual", Colors: []string{"Blue", "White"}, ConfidenceScore: 0.8},
			{ID: "casual_2", Style: "Smart Casual", Colors: []string{"Khaki"}, ConfidenceScore: 0.7},
		},
		"wedding": {
			{ID: "wedding_1", Style: "Formal", Colors: []string{"Charcoal", "White"}, ConfidenceScore: 0.9},
			{ID: "wedding_2", Style: "Formal", Colors: []string{"Light Gray"}, ConfidenceScore: 0.85},
		},
		"formal": {
			{ID: "formal_1", Style: "Formal", Colors: []string{"Black"}, ConfidenceScore: 0.9, Occasion: "black tie"},
		},
		"sports": {
			{ID: "sports_1", Style: "Sporty", Colors: []string{"Gray"}, ConfidenceScore: 0.75},
		},
	})
	require.NoError(t, err)
	return catalog
}

func TestCatalogLookupWeddingColors(t *testing.T) {
	match := testCatalog(t).LookupByOccasion("wedding", "", []string{"Charcoal"})

	require.Equal(t, "wedding", match.Bucket)
	require.True(t, match.ColorMatched)
	require.Equal(t, []string{"wedding_1"}, ids(match.Outfits))
	require.Equal(t, "wedding", match.Outfits[0].Occasion)
	require.Equal(t, "Formal", match.Outfits[0].Style)
}

func TestCatalogLookupColorFailsOpen(t *testing.T) {
	match := testCatalog(t).LookupByOccasion("Wedding", "", []string{"Neon"})

	require.False(t, match.ColorMatched)
	require.Equal(t, []string{"wedding_1", "wedding_2"}, ids(match.Outfits))
	require.Equal(t, "Wedding", match.Outfits[1].Occasion)
}

func TestCatalogLookupFallbacks(t *testing.T) {
	catalog := testCatalog(t)

	match := catalog.LookupByOccasion("space walk", "", nil)
	require.Equal(t, DefaultOccasion, match.Bucket)
	require.Equal(t, []string{"casual_1", "casual_2"}, ids(match.Outfits))
	require.Equal(t, "space walk", match.Outfits[0].Occasion)

	match = catalog.LookupByOccasion("gym", "", nil)
	require.Equal(t, "sports", match.Bucket)
	require.Equal(t, []string{"sports_1"}, ids(match.Outfits))

	require.Equal(t, "formal", catalog.ResolveOccasion(" Interview "))
	require.Equal(t, "wedding", catalog.ResolveOccasion("WEDDING"))
	require.Equal(t, DefaultOccasion, catalog.ResolveOccasion("work"))
}

func TestCatalogLookupStyleOverride(t *testing.T) {
	catalog := testCatalog(t)
	match := catalog.LookupByOccasion("casual", " Streetwear ", nil)
	for _, o := range match.Outfits {
		require.Equal(t, "Streetwear", o.Style)
	}

	_, stored := catalog.Bucket("casual")
	require.Equal(t, "Casual", stored[0].Style)
	require.Equal(t, "casual", stored[0].Occasion)
}

func TestCatalogBucket(t *testing.T) {
	catalog := testCatalog(t)

	name, outfits := catalog.Bucket("FORMAL")
	require.Equal(t, "formal", name)
	require.Equal(t, "black tie", outfits[0].Occasion)

	name, _ = catalog.Bucket("unknown")
	require.Equal(t, DefaultOccasion, name)

	require.Equal(t, []string{"casual", "formal", "sports", "wedding"}, catalog.Occasions())
	require.Equal(t, 6, catalog.Size())
}

func TestNewCatalogRejectsBadInput(t *testing.T) {
	good := OutfitCandidate{ID: "c1", Style: "Casual", ConfidenceScore: 0.5}

	cases := map[string]map[string][]OutfitCandidate{
		"missing casual": {"formal": {good}},
		"empty casual":   {"casual": {}},
		"empty key":      {"casual": {good}, " ": {{ID: "x", ConfidenceScore: 0.1}}},
		"duplicate key":  {"casual": {good}, "CASUAL": {{ID: "c2", ConfidenceScore: 0.1}}},
		"duplicate id":   {"casual": {good}, "formal": {good}},
		"bad score":      {"casual": {{ID: "c1", ConfidenceScore: 1.2}}},
		"missing id":     {"casual": {{ConfidenceScore: 0.2}}},
	}
	for name, buckets := range cases {
		_, err := NewCatalog(buckets)
		require.Error(t, err, name)
	}
}

func TestFilterByColors(t *testing.T) {
	outfits := []OutfitCandidate{
		{ID: "a", Colors: []string{"Navy", "White"}},
		{ID: "b", Colors: []string{"Red"}},
	}
	require.Equal(t, []string{"a"}, ids(FilterByColors(outfits, []string{"navy"})))
	require.Equal(t, []string{"a", "b"}, ids(FilterByColors(outfits, []string{"teal"})))
}
