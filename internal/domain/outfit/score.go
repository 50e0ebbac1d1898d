package outfit

import (
	"math"
	"sort"
	"strings"
)

const (
	styleMatchBonus  = 0.10
	colorMatchBonus  = 0.05
	avoidColorMalus  = 0.15
	minConfidence    = 0.0
	maxConfidence    = 1.0
	scoreRoundFactor = 100
)

// Score rates every outfit against the preferences and returns new records
// sorted by descending confidence. Ties keep their input order.
//
// The raw score is clamped to [0,1] first and rounded to two decimals after.
func Score(outfits []OutfitCandidate, styles, colors, avoidColors []string) []OutfitCandidate {
	scored := make([]OutfitCandidate, 0, len(outfits))
	for _, candidate := range outfits {
		score := candidate.ConfidenceScore

		if containsAny(strings.ToLower(candidate.Style), styles) {
			score += styleMatchBonus
		}

		palette := lowerSet(candidate.Colors)
		score += float64(countMembers(colors, palette)) * colorMatchBonus
		score -= float64(countMembers(avoidColors, palette)) * avoidColorMalus

		candidate.ConfidenceScore = roundScore(clampRange(score, minConfidence, maxConfidence))
		scored = append(scored, candidate)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].ConfidenceScore > scored[j].ConfidenceScore
	})
	return scored
}

func roundScore(v float64) float64 {
	return math.Round(v*scoreRoundFactor) / scoreRoundFactor
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = struct{}{}
	}
	return set
}

// countMembers counts entries of values (duplicates included) found in set.
func countMembers(values []string, set map[string]struct{}) int {
	n := 0
	for _, v := range values {
		if _, ok := set[strings.ToLower(v)]; ok {
			n++
		}
	}
	return n
}
