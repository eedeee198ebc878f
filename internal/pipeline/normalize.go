package pipeline

import (
	"sort"

	"catalogcmp/internal/catalog"
	"catalogcmp/internal/model"
)

// Mapping is the fixed column table for one source: source column -> canonical.
type Mapping struct {
	Source  model.Source
	Columns map[string]string
}

var requiredColumns = []string{
	model.ColProductID,
	model.ColProductName,
	model.ColBrandName,
	model.ColPrice,
	model.ColRating,
	model.ColReviews,
}

// Normalize renames mapped columns to their canonical names and passes every
// other column through. It returns the renamed rows and the canonical columns the
// source did not provide.
func Normalize(raw catalog.RawTable, m Mapping) ([]map[string]string, []string) {
	present := make(map[string]bool, len(requiredColumns))
	for _, h := range raw.Headers {
		if canon, ok := m.Columns[h]; ok {
			present[canon] = true
		}
	}
	var missing []string
	for _, c := range requiredColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	sort.Strings(missing)

	rows := make([]map[string]string, 0, len(raw.Rows))
	for _, src := range raw.Rows {
		row := make(map[string]string, len(src))
		for col, v := range src {
			if _, mapped := m.Columns[col]; mapped {
				continue
			}
			row[col] = v
		}
		// mapped columns win over a pass-through column of the same name
		for col, canon := range m.Columns {
			if v, ok := src[col]; ok {
				row[canon] = v
			}
		}
		rows = append(rows, row)
	}
	return rows, missing
}
