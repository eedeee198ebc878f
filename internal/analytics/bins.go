package analytics

import (
	"math"

	"catalogcmp/internal/model"
)

// Bin is a right-closed interval (Lower, Upper]; the first bin of a Binning also
// includes its Lower edge.
type Bin struct {
	Label string  `json:"label"`
	Range string  `json:"range"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Binning is an ordered set of contiguous bins.
type Binning struct {
	Bins []Bin `json:"bins"`
}

// Assign returns the index of the bin holding v, or false when v is outside
// every bin.
func (b Binning) Assign(v float64) (int, bool) {
	if math.IsNaN(v) {
		return 0, false
	}
	for i, bin := range b.Bins {
		if v > bin.Upper {
			continue
		}
		if v > bin.Lower || (i == 0 && v == bin.Lower) {
			return i, true
		}
		return 0, false
	}
	return 0, false
}

// Labels returns the bin labels in edge order.
func (b Binning) Labels() []string {
	out := make([]string, len(b.Bins))
	for i, bin := range b.Bins {
		out[i] = bin.Label
	}
	return out
}

const luxuryFloor = 200

// PriceBinning builds the price bins for a table whose highest price is maxPrice.
// The Luxury ceiling is maxPrice itself; when maxPrice does not exceed 200 the
// ceiling stays at 200 and Luxury is empty.
func PriceBinning(maxPrice float64) Binning {
	top := math.Max(maxPrice, luxuryFloor)
	return Binning{Bins: []Bin{
		{Label: "Budget", Range: "$0-25", Lower: 0, Upper: 25},
		{Label: "Low Price", Range: "$25-50", Lower: 25, Upper: 50},
		{Label: "Mid Price", Range: "$50-100", Lower: 50, Upper: 100},
		{Label: "High Price", Range: "$100-200", Lower: 100, Upper: 200},
		{Label: "Luxury", Range: "$200+", Lower: luxuryFloor, Upper: top},
	}}
}

// PriceBinningFor derives the price bins from the maximum price in t.
func PriceBinningFor(t model.Table) Binning {
	top := 0.0
	if m := Max(prices(t)); m != nil {
		top = *m
	}
	return PriceBinning(top)
}

// RatingBinning returns the fixed rating bins.
func RatingBinning() Binning {
	return Binning{Bins: []Bin{
		{Label: "0-2", Range: "0-2", Lower: 0, Upper: 2},
		{Label: "2-3", Range: "2-3", Lower: 2, Upper: 3},
		{Label: "3-4", Range: "3-4", Lower: 3, Upper: 4},
		{Label: "4-5", Range: "4-5", Lower: 4, Upper: 5},
	}}
}

// DistributionRow is the share of one source's binned rows that fall in one bin.
type DistributionRow struct {
	Source  model.Source `json:"source"`
	Bin     string       `json:"bin"`
	Range   string       `json:"range"`
	Count   int          `json:"count"`
	Percent *float64     `json:"percent"`
}

// Distribution bins value(r) for every record and reports, per source, each bin's
// count and its percentage of that source's binned rows. Every (source, bin) pair
// is present, sources in A, B order and bins in edge order. Percent is nil for a
// source with no binned rows.
func Distribution(t model.Table, b Binning, value func(model.ProductRecord) *float64) []DistributionRow {
	out := make([]DistributionRow, 0, len(model.Sources)*len(b.Bins))
	for _, s := range model.Sources {
		counts := make([]int, len(b.Bins))
		total := 0
		for _, r := range t.Records {
			if r.Source != s {
				continue
			}
			v := value(r)
			if v == nil {
				continue
			}
			if i, ok := b.Assign(*v); ok {
				counts[i]++
				total++
			}
		}
		for i, bin := range b.Bins {
			row := DistributionRow{Source: s, Bin: bin.Label, Range: bin.Range, Count: counts[i]}
			if total > 0 {
				row.Percent = model.Float(float64(counts[i]) / float64(total) * 100)
			}
			out = append(out, row)
		}
	}
	return out
}

func priceOf(r model.ProductRecord) *float64  { return r.Price }
func ratingOf(r model.ProductRecord) *float64 { return r.Rating }

// PriceDistribution bins prices with edges derived from t's own maximum price.
func PriceDistribution(t model.Table) []DistributionRow {
	return Distribution(t, PriceBinningFor(t), priceOf)
}

func RatingDistribution(t model.Table) []DistributionRow {
	return Distribution(t, RatingBinning(), ratingOf)
}
