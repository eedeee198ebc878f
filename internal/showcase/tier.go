// Package showcase scores products against a shopper's selected attributes and
// builds the filterable product gallery.
package showcase

import (
	"sort"
	"strings"
)

// Tier is how well a product matches the current selection.
type Tier string

const (
	TierRecommend Tier = "Recommend"
	TierGoodMatch Tier = "Good Match"
	TierMaybe     Tier = "Maybe"
)

// SkinTypeOptions are the skin types offered by the gallery filter.
var SkinTypeOptions = []string{
	"all skin",
	"dry skin",
	"oily skin",
	"sensitive skin",
	"normal skin",
	"combination skin",
}

// Selection merges the selected skin and hair types into one set of trimmed,
// non-empty tokens, sorted.
func Selection(skin, hair []string) []string {
	seen := make(map[string]struct{})
	for _, group := range [][]string{skin, hair} {
		for _, tok := range group {
			if tok = strings.TrimSpace(tok); tok != "" {
				seen[tok] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for tok := range seen {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// Classify places a product in exactly one tier. Matching is exact and
// case-sensitive on trimmed tokens; an empty selection is always Maybe.
func Classify(attributes, selected []string) Tier {
	have := make(map[string]struct{}, len(attributes))
	for _, a := range attributes {
		have[strings.TrimSpace(a)] = struct{}{}
	}
	wanted, hits := 0, 0
	for _, s := range selected {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		wanted++
		if _, ok := have[s]; ok {
			hits++
		}
	}
	switch {
	case wanted == 0 || hits == 0:
		return TierMaybe
	case hits == wanted:
		return TierRecommend
	default:
		return TierGoodMatch
	}
}
