package outfit

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DefaultOccasion is the bucket used for occasions the catalog does not know.
const DefaultOccasion = "casual"

// Catalog holds pre-authored outfits grouped by occasion. It is built once
// at start-up and only read afterwards.
type Catalog struct {
	buckets map[string][]OutfitCandidate
}

// OccasionMatch is the result of the occasion keyed lookup.
type OccasionMatch struct {
	Bucket  string
	Outfits []OutfitCandidate
	// ColorMatched is false when a color filter was requested but matched
	// nothing, so the whole bucket was returned.
	ColorMatched bool
}

// NewCatalog validates the buckets and builds a catalog. Keys are folded to
// lowercase and a non-empty casual bucket is required.
func NewCatalog(buckets map[string][]OutfitCandidate) (*Catalog, error) {
	folded := make(map[string][]OutfitCandidate, len(buckets))
	seen := make(map[string]string)
	for key, outfits := range buckets {
		name := strings.ToLower(strings.TrimSpace(key))
		if name == "" {
			return nil, errors.New("catalog bucket with empty occasion key")
		}
		if _, dup := folded[name]; dup {
			return nil, fmt.Errorf("catalog bucket %q declared twice", name)
		}
		for _, candidate := range outfits {
			if err := checkCandidate(candidate); err != nil {
				return nil, fmt.Errorf("catalog bucket %q: %w", name, err)
			}
			if other, dup := seen[candidate.ID]; dup {
				return nil, fmt.Errorf("catalog outfit id %q used in %q and %q", candidate.ID, other, name)
			}
			seen[candidate.ID] = name
		}
		folded[name] = append([]OutfitCandidate(nil), outfits...)
	}
	if len(folded[DefaultOccasion]) == 0 {
		return nil, fmt.Errorf("catalog must define a non-empty %q bucket", DefaultOccasion)
	}
	return &Catalog{buckets: folded}, nil
}

// Occasions lists bucket keys in lexical order.
func (c *Catalog) Occasions() []string {
	keys := make([]string, 0, len(c.buckets))
	for key := range c.buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Size is the total number of outfits across buckets.
func (c *Catalog) Size() int {
	n := 0
	for _, outfits := range c.buckets {
		n += len(outfits)
	}
	return n
}

// Bucket returns copies of the outfits stored under key, falling back to
// the casual bucket. Records without an occasion get the bucket name.
func (c *Catalog) Bucket(key string) (string, []OutfitCandidate) {
	name := strings.ToLower(strings.TrimSpace(key))
	outfits, ok := c.buckets[name]
	if !ok {
		name = DefaultOccasion
		outfits = c.buckets[DefaultOccasion]
	}
	out := make([]OutfitCandidate, len(outfits))
	for i, candidate := range outfits {
		if candidate.Occasion == "" {
			candidate.Occasion = name
		}
		out[i] = candidate
	}
	return name, out
}

// ResolveOccasion picks the bucket for a free-form occasion: the literal
// key first, then its alias, then casual.
func (c *Catalog) ResolveOccasion(occasion string) string {
	literal := strings.ToLower(strings.TrimSpace(occasion))
	if _, ok := c.buckets[literal]; ok {
		return literal
	}
	if alias := NormalizeOccasion(occasion); alias != literal {
		if _, ok := c.buckets[alias]; ok {
			return alias
		}
	}
	return DefaultOccasion
}

// LookupByOccasion is the unscored lookup path. It returns the occasion's
// bucket, narrowed to outfits sharing a color with colors when that leaves
// anything. A non-blank style replaces the style of every returned record
// and each record is tagged with the requested occasion.
func (c *Catalog) LookupByOccasion(occasion, style string, colors []string) OccasionMatch {
	name, outfits := c.Bucket(c.ResolveOccasion(occasion))

	matched := true
	if len(colors) > 0 {
		outfits, matched = filterByColors(outfits, colors)
	}

	requested := strings.TrimSpace(occasion)
	style = strings.TrimSpace(style)
	for i := range outfits {
		if requested != "" {
			outfits[i].Occasion = requested
		}
		if style != "" {
			outfits[i].Style = style
		}
	}
	return OccasionMatch{Bucket: name, Outfits: outfits, ColorMatched: matched}
}

// FilterByColors keeps outfits with at least one color in colors,
// case-insensitively. When nothing matches the input is returned unchanged.
func FilterByColors(outfits []OutfitCandidate, colors []string) []OutfitCandidate {
	filtered, _ := filterByColors(outfits, colors)
	return filtered
}

func filterByColors(outfits []OutfitCandidate, colors []string) ([]OutfitCandidate, bool) {
	wanted := lowerSet(colors)
	filtered := make([]OutfitCandidate, 0, len(outfits))
	for _, candidate := range outfits {
		if countMembers(candidate.Colors, wanted) > 0 {
			filtered = append(filtered, candidate)
		}
	}
	if len(filtered) == 0 {
		return outfits, false
	}
	return filtered, true
}
