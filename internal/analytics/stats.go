// Package analytics computes summary statistics, price and rating bins, and
// brand comparisons over the working table. Every function is pure and leaves
// the table untouched.
package analytics

import (
	"math"
	"sort"

	"catalogcmp/internal/model"
)

// Mean returns nil for an empty slice.
func Mean(xs []float64) *float64 {
	if len(xs) == 0 {
		return nil
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	v := sum / float64(len(xs))
	return &v
}

// Median returns nil for an empty slice.
func Median(xs []float64) *float64 {
	return Quantile(xs, 0.5)
}

// Quantile uses linear interpolation between closest ranks.
func Quantile(xs []float64, q float64) *float64 {
	if len(xs) == 0 {
		return nil
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	pos := q * float64(len(s)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	v := s[lo] + (s[hi]-s[lo])*(pos-float64(lo))
	return &v
}

func Min(xs []float64) *float64 {
	if len(xs) == 0 {
		return nil
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return &m
}

func Max(xs []float64) *float64 {
	if len(xs) == 0 {
		return nil
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return &m
}

func prices(t model.Table) []float64 {
	return collect(t, func(r model.ProductRecord) *float64 { return r.Price })
}

func ratings(t model.Table) []float64 {
	return collect(t, func(r model.ProductRecord) *float64 { return r.Rating })
}

func reviews(t model.Table) []float64 {
	out := make([]float64, 0, t.Len())
	for _, r := range t.Records {
		if r.Reviews != nil {
			out = append(out, float64(*r.Reviews))
		}
	}
	return out
}

// collect returns the non-null values of a nullable column.
func collect(t model.Table, get func(model.ProductRecord) *float64) []float64 {
	out := make([]float64, 0, t.Len())
	for _, r := range t.Records {
		if v := get(r); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// distinct counts the distinct non-empty values of a text column.
func distinct(t model.Table, get func(model.ProductRecord) string) int {
	seen := make(map[string]struct{})
	for _, r := range t.Records {
		if v := get(r); v != "" {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}
