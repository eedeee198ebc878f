package analytics

import (
	"errors"
	"fmt"

	"catalogcmp/internal/model"
)

// ErrBrandNotCommon is returned when a brand is not carried by both sources.
var ErrBrandNotCommon = errors.New("brand is not carried by both sources")

// CommonBrands returns the brand names present in both sources, matched exactly
// and case-sensitively, sorted.
func CommonBrands(t model.Table) []string {
	inB := make(map[string]struct{})
	for _, b := range brandNames(t.BySource(model.SourceB)) {
		inB[b] = struct{}{}
	}
	out := []string{}
	for _, b := range brandNames(t.BySource(model.SourceA)) {
		if _, ok := inB[b]; ok {
			out = append(out, b)
		}
	}
	return out
}

// BrandList is the brand-comparison picker. NoCommonBrands is set when the
// intersection is empty.
type BrandList struct {
	Brands         []string `json:"brands"`
	NoCommonBrands bool     `json:"no_common_brands"`
}

func ListBrands(t model.Table) BrandList {
	b := CommonBrands(t)
	return BrandList{Brands: b, NoCommonBrands: len(b) == 0}
}

// SourceMeans holds one source's averages for a single brand.
type SourceMeans struct {
	Source    model.Source `json:"source"`
	Products  int          `json:"products"`
	AvgPrice  *float64     `json:"avg_price"`
	AvgRating *float64     `json:"avg_rating"`
}

// BrandComparison is the side-by-side view of one common brand. The price
// distribution is binned over the brand's own rows, so its Luxury ceiling is the
// brand's maximum price.
type BrandComparison struct {
	Brand             string            `json:"brand"`
	Sources           []SourceMeans     `json:"sources"`
	PriceBins         Binning           `json:"price_bins"`
	PriceDistribution []DistributionRow `json:"price_distribution"`
}

func CompareBrand(t model.Table, brand string) (BrandComparison, error) {
	common := false
	for _, b := range CommonBrands(t) {
		if b == brand {
			common = true
			break
		}
	}
	if !common {
		return BrandComparison{}, fmt.Errorf("%q: %w", brand, ErrBrandNotCommon)
	}

	sub := t.ByBrand(brand)
	cmp := BrandComparison{
		Brand:             brand,
		PriceBins:         PriceBinningFor(sub),
		PriceDistribution: PriceDistribution(sub),
	}
	for _, s := range model.Sources {
		part := sub.BySource(s)
		cmp.Sources = append(cmp.Sources, SourceMeans{
			Source:    s,
			Products:  distinct(part, func(r model.ProductRecord) string { return r.ProductID }),
			AvgPrice:  Mean(prices(part)),
			AvgRating: Mean(ratings(part)),
		})
	}
	return cmp, nil
}
