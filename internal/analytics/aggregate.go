package analytics

import (
	"fmt"
	"sort"

	"catalogcmp/internal/model"
)

// Stats is the summary of one group. Pointer fields are nil when the group has no
// non-null value for that metric.
type Stats struct {
	Products     int      `json:"products"`
	Brands       int      `json:"brands"`
	AvgPrice     *float64 `json:"avg_price"`
	MedianPrice  *float64 `json:"median_price"`
	MinPrice     *float64 `json:"min_price"`
	MaxPrice     *float64 `json:"max_price"`
	AvgRating    *float64 `json:"avg_rating"`
	MedianRating *float64 `json:"median_rating"`
	AvgReviews   *float64 `json:"avg_reviews"`
}

// Summarize computes Stats over the whole table.
func Summarize(t model.Table) Stats {
	ps := prices(t)
	rs := ratings(t)
	return Stats{
		Products:     distinct(t, func(r model.ProductRecord) string { return r.ProductID }),
		Brands:       distinct(t, func(r model.ProductRecord) string { return r.BrandName }),
		AvgPrice:     Mean(ps),
		MedianPrice:  Median(ps),
		MinPrice:     Min(ps),
		MaxPrice:     Max(ps),
		AvgRating:    Mean(rs),
		MedianRating: Median(rs),
		AvgReviews:   Mean(reviews(t)),
	}
}

// GroupBy selects the grouping key for Aggregate.
type GroupBy string

const (
	GroupNone   GroupBy = "none"
	GroupSource GroupBy = "source"
	GroupBrand  GroupBy = "brand" // source + brand_name
)

// ParseGroupBy accepts the query-string spelling of a grouping; empty means none.
func ParseGroupBy(s string) (GroupBy, error) {
	switch GroupBy(s) {
	case "", GroupNone:
		return GroupNone, nil
	case GroupSource, GroupBrand:
		return GroupBy(s), nil
	}
	return "", fmt.Errorf("unknown grouping %q (want none, source or brand)", s)
}

// GroupSummary is one row of a grouped aggregate.
type GroupSummary struct {
	Source model.Source `json:"source,omitempty"`
	Brand  string       `json:"brand,omitempty"`
	Stats
}

// Aggregate computes Stats per group. Sources come out in A, B order and brands
// lexicographically within a source. Grouping by source always yields one row per
// source, even an empty one.
func Aggregate(t model.Table, g GroupBy) ([]GroupSummary, error) {
	switch g {
	case GroupNone:
		return []GroupSummary{{Stats: Summarize(t)}}, nil
	case GroupSource:
		out := make([]GroupSummary, 0, len(model.Sources))
		for _, s := range model.Sources {
			out = append(out, GroupSummary{Source: s, Stats: Summarize(t.BySource(s))})
		}
		return out, nil
	case GroupBrand:
		var out []GroupSummary
		for _, s := range model.Sources {
			part := t.BySource(s)
			for _, b := range brandNames(part) {
				out = append(out, GroupSummary{Source: s, Brand: b, Stats: Summarize(part.ByBrand(b))})
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown grouping %q", g)
}

// Overview is the headline bundle: one Stats per source plus the combined table.
type Overview struct {
	Sources  []GroupSummary `json:"sources"`
	Combined Stats          `json:"combined"`
}

func BuildOverview(t model.Table) Overview {
	bySource, _ := Aggregate(t, GroupSource)
	return Overview{Sources: bySource, Combined: Summarize(t)}
}

// For returns the summary of source s, or false when absent.
func (o Overview) For(s model.Source) (Stats, bool) {
	for _, g := range o.Sources {
		if g.Source == s {
			return g.Stats, true
		}
	}
	return Stats{}, false
}

// brandNames returns the sorted distinct non-empty brand names of t.
func brandNames(t model.Table) []string {
	seen := make(map[string]struct{})
	for _, r := range t.Records {
		if r.BrandName != "" {
			seen[r.BrandName] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for b := range seen {
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}
