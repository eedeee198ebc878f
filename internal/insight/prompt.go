package insight

import (
	"fmt"
	"strings"

	"catalogcmp/internal/analytics"
	"catalogcmp/internal/model"
)

func SystemPrompt() string {
	return `
You are a retail analyst comparing two beauty product catalogs.
Write a short comparison (at most 5 sentences) for a merchandising team.

RULES:
1. Use ONLY the figures in the METRICS section. Do not invent numbers or products.
2. Mention price level, rating level and assortment size for both retailers.
3. When a figure is "n/a", say the data is missing instead of guessing.
4. Refer to each retailer by its label, never by its letter.
5. Plain text, no markdown tables.
`
}

// MetricsContext renders the overview as the plain-text block sent to the model.
// Nulls are written as n/a.
func MetricsContext(o analytics.Overview, labels map[model.Source]string) string {
	var sb strings.Builder
	sb.WriteString("METRICS:\n")
	for _, g := range o.Sources {
		label := labels[g.Source]
		if label == "" {
			label = string(g.Source)
		}
		fmt.Fprintf(&sb, "[%s]\n", label)
		writeStats(&sb, g.Stats)
	}
	sb.WriteString("[Combined]\n")
	writeStats(&sb, o.Combined)
	return sb.String()
}

func writeStats(sb *strings.Builder, s analytics.Stats) {
	fmt.Fprintf(sb, "products: %d\n", s.Products)
	fmt.Fprintf(sb, "brands: %d\n", s.Brands)
	fmt.Fprintf(sb, "average price (USD): %s\n", num(s.AvgPrice))
	fmt.Fprintf(sb, "median price (USD): %s\n", num(s.MedianPrice))
	fmt.Fprintf(sb, "price range (USD): %s - %s\n", num(s.MinPrice), num(s.MaxPrice))
	fmt.Fprintf(sb, "average rating: %s\n", num(s.AvgRating))
	fmt.Fprintf(sb, "median rating: %s\n", num(s.MedianRating))
	fmt.Fprintf(sb, "average reviews: %s\n", num(s.AvgReviews))
}

func num(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}
