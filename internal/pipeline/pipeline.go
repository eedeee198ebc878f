// Package pipeline turns raw catalog tables into the merged working table:
// price parsing, schema normalization, type coercion and concatenation.
package pipeline

import (
	"catalogcmp/internal/catalog"
	"catalogcmp/internal/model"
)

// LoadReport summarizes what happened to one source on its way into the working
// table.
type LoadReport struct {
	Source         model.Source `json:"source"`
	Label          string       `json:"label,omitempty"`
	RowsRead       int          `json:"rows_read"`
	RowsKept       int          `json:"rows_kept"`
	RowsDropped    int          `json:"rows_dropped"`
	NullRatings    int          `json:"null_ratings"`
	NullReviews    int          `json:"null_reviews"`
	MissingColumns []string     `json:"missing_columns,omitempty"`
}

// Input pairs a raw table with the mapping that normalizes it.
type Input struct {
	Raw     catalog.RawTable
	Mapping Mapping
}

// Process normalizes and coerces one source. Rows whose price cannot be parsed
// are dropped before rating and review coercion.
func Process(in Input) ([]model.ProductRecord, LoadReport) {
	rows, missing := Normalize(in.Raw, in.Mapping)
	report := LoadReport{
		Source:         in.Mapping.Source,
		RowsRead:       len(rows),
		MissingColumns: missing,
	}

	priced := make([]map[string]string, 0, len(rows))
	prices := make([]float64, 0, len(rows))
	for _, row := range rows {
		p := ParsePrice(row[model.ColPrice])
		if p == nil {
			report.RowsDropped++
			continue
		}
		priced = append(priced, row)
		prices = append(prices, *p)
	}

	out := make([]model.ProductRecord, 0, len(priced))
	for i, row := range priced {
		rec := toRecord(row, in.Mapping.Source)
		rec.Price = model.Float(prices[i])
		rec.Rating = ParseRating(row[model.ColRating])
		rec.Reviews = ParseReviews(row[model.ColReviews])
		if rec.Rating == nil {
			report.NullRatings++
		}
		if rec.Reviews == nil {
			report.NullReviews++
		}
		out = append(out, rec)
	}
	report.RowsKept = len(out)
	return out, report
}

func toRecord(row map[string]string, src model.Source) model.ProductRecord {
	rec := model.ProductRecord{
		ProductID:     row[model.ColProductID],
		ProductName:   CleanText(row[model.ColProductName]),
		BrandName:     row[model.ColBrandName],
		Source:        src,
		SuitableType:  UnwrapList(row[model.ColSuitableType]),
		Ingredients:   UnwrapList(row[model.ColIngredients]),
		Sentiment:     row[model.ColSentiment],
		FirstSentence: CleanText(row[model.ColFirstSentence]),
		ImageURL:      row[model.ColImageURL],
	}
	extra := make(map[string]string)
	for col, v := range row {
		switch col {
		case model.ColProductID, model.ColProductName, model.ColBrandName,
			model.ColPrice, model.ColRating, model.ColReviews:
			continue
		}
		extra[col] = v
	}
	if len(extra) > 0 {
		rec.Extra = extra
	}
	return rec
}

// Merge concatenates per-source records in argument order without deduplication.
func Merge(parts ...[]model.ProductRecord) model.Table {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]model.ProductRecord, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return model.Table{Records: out}
}

// NormalizeAndMerge runs every input through Process and merges the results in
// input order.
func NormalizeAndMerge(inputs ...Input) (model.Table, []LoadReport) {
	parts := make([][]model.ProductRecord, 0, len(inputs))
	reports := make([]LoadReport, 0, len(inputs))
	for _, in := range inputs {
		recs, rep := Process(in)
		parts = append(parts, recs)
		reports = append(reports, rep)
	}
	return Merge(parts...), reports
}
