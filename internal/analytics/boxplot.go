package analytics

import "catalogcmp/internal/model"

// RatingSpread is the five-number summary of ratings for one source within one
// price bin.
type RatingSpread struct {
	Source model.Source `json:"source"`
	Bin    string       `json:"bin"`
	Range  string       `json:"range"`
	Count  int          `json:"count"`
	Min    *float64     `json:"min"`
	Q1     *float64     `json:"q1"`
	Median *float64     `json:"median"`
	Q3     *float64     `json:"q3"`
	Max    *float64     `json:"max"`
}

// RatingByPrice summarizes the rating spread of every (source, price bin) pair.
// Records with a null rating are ignored; empty cells carry nil statistics.
func RatingByPrice(t model.Table) []RatingSpread {
	b := PriceBinningFor(t)
	out := make([]RatingSpread, 0, len(model.Sources)*len(b.Bins))
	for _, s := range model.Sources {
		cells := make([][]float64, len(b.Bins))
		for _, r := range t.Records {
			if r.Source != s || r.Price == nil || r.Rating == nil {
				continue
			}
			if i, ok := b.Assign(*r.Price); ok {
				cells[i] = append(cells[i], *r.Rating)
			}
		}
		for i, bin := range b.Bins {
			xs := cells[i]
			out = append(out, RatingSpread{
				Source: s,
				Bin:    bin.Label,
				Range:  bin.Range,
				Count:  len(xs),
				Min:    Min(xs),
				Q1:     Quantile(xs, 0.25),
				Median: Median(xs),
				Q3:     Quantile(xs, 0.75),
				Max:    Max(xs),
			})
		}
	}
	return out
}
