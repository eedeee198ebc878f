package pipeline

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CleanText drops HTML markup and decodes entities left in scraped text, then
// collapses whitespace. Plain text is returned trimmed but otherwise unchanged.
func CleanText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
