package showcase

import (
	"sort"

	"catalogcmp/internal/model"
)

// Query is one gallery request. Price bounds are inclusive; nil means unbounded.
type Query struct {
	Source    model.Source
	SkinTypes []string
	HairTypes []string
	MinPrice  *float64
	MaxPrice  *float64
}

// Card is a product plus its tier under the current selection.
type Card struct {
	model.ProductRecord
	Tier Tier `json:"tier"`
}

type Gallery struct {
	Source     model.Source `json:"source"`
	Selected   []string     `json:"selected"`
	Vocabulary []string     `json:"vocabulary"`
	Found      int          `json:"found"`
	Products   []Card       `json:"products"`
}

// Build filters one source's products by price and tiers each of them, keeping
// table order. A missing review count stays null.
func Build(t model.Table, q Query) Gallery {
	src := q.Source
	if src == "" {
		src = model.SourceA
	}
	part := t.BySource(src)
	selected := Selection(q.SkinTypes, q.HairTypes)

	cards := []Card{}
	for _, r := range part.Records {
		if !inRange(r.Price, q.MinPrice, q.MaxPrice) {
			continue
		}
		cards = append(cards, Card{ProductRecord: r, Tier: Classify(r.SuitableType, selected)})
	}
	return Gallery{
		Source:     src,
		Selected:   selected,
		Vocabulary: Vocabulary(part),
		Found:      len(cards),
		Products:   cards,
	}
}

func inRange(price, lo, hi *float64) bool {
	if price == nil {
		return false
	}
	if lo != nil && *price < *lo {
		return false
	}
	if hi != nil && *price > *hi {
		return false
	}
	return true
}

// Vocabulary returns the distinct suitable-type tokens in t, sorted, for
// building filter widgets.
func Vocabulary(t model.Table) []string {
	seen := make(map[string]struct{})
	for _, r := range t.Records {
		for _, tok := range r.SuitableType {
			seen[tok] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for tok := range seen {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}
