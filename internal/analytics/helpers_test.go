package analytics

import "catalogcmp/internal/model"

func rec(src model.Source, id, brand string, price float64, rating *float64) model.ProductRecord {
	return model.ProductRecord{
		ProductID: id,
		BrandName: brand,
		Price:     model.Float(price),
		Rating:    rating,
		Source:    src,
	}
}

func table(recs ...model.ProductRecord) model.Table {
	return model.Table{Records: recs}
}

func sumPercent(rows []DistributionRow, s model.Source) float64 {
	total := 0.0
	for _, r := range rows {
		if r.Source == s && r.Percent != nil {
			total += *r.Percent
		}
	}
	return total
}
