package pipeline

import (
	"math"
	"strconv"
	"strings"

	"catalogcmp/internal/catalog"
)

// ParseRating converts a rating cell to a number. Unparseable or non-finite
// values become nil; the range is not validated.
func ParseRating(raw string) *float64 {
	return parseNumber(raw)
}

// ParseReviews converts a review-count cell to a non-negative integer. Values that
// are not numbers, negative, or fractional become nil.
func ParseReviews(raw string) *int64 {
	v := parseNumber(raw)
	if v == nil || *v < 0 || *v != math.Trunc(*v) || *v >= 1<<63 {
		return nil
	}
	n := int64(*v)
	return &n
}

func parseNumber(raw string) *float64 {
	if catalog.IsNull(raw) {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
