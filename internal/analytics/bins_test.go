package analytics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogcmp/internal/model"
)

func TestPriceBinning_Edges(t *testing.T) {
	b := PriceBinning(480)
	tests := []struct {
		price float64
		label string
	}{
		{0, "Budget"},
		{25, "Budget"},
		{25.01, "Low Price"},
		{50, "Low Price"},
		{100, "Mid Price"},
		{150, "High Price"},
		{200, "High Price"},
		{200.5, "Luxury"},
		{480, "Luxury"},
	}
	for _, tc := range tests {
		i, ok := b.Assign(tc.price)
		require.True(t, ok, "price %v", tc.price)
		assert.Equal(t, tc.label, b.Bins[i].Label, "price %v", tc.price)
	}
	_, ok := b.Assign(480.01)
	assert.False(t, ok)
}

func TestPriceBinning_LowMaxKeepsEdgesIncreasing(t *testing.T) {
	b := PriceBinning(40)
	assert.Equal(t, []string{"Budget", "Low Price", "Mid Price", "High Price", "Luxury"}, b.Labels())
	assert.Equal(t, 200.0, b.Bins[4].Upper)
	i, ok := b.Assign(40)
	require.True(t, ok)
	assert.Equal(t, "Low Price", b.Bins[i].Label)
}

func TestRatingBinning(t *testing.T) {
	b := RatingBinning()
	for v, want := range map[float64]string{0: "0-2", 2: "0-2", 2.1: "2-3", 3: "2-3", 4: "3-4", 4.2: "4-5", 5: "4-5"} {
		i, ok := b.Assign(v)
		require.True(t, ok, "rating %v", v)
		assert.Equal(t, want, b.Bins[i].Label, "rating %v", v)
	}
	for _, v := range []float64{-0.1, 5.01} {
		_, ok := b.Assign(v)
		assert.False(t, ok, "rating %v", v)
	}
}

func TestBinning_ExhaustiveAndExclusive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := PriceBinning(900)
	for n := 0; n < 2000; n++ {
		v := rng.Float64() * 900
		hits := 0
		for i, bin := range b.Bins {
			if v <= bin.Upper && (v > bin.Lower || (i == 0 && v == bin.Lower)) {
				hits++
			}
		}
		assert.Equal(t, 1, hits, "price %v", v)
		_, ok := b.Assign(v)
		assert.True(t, ok)
	}
}

func TestPriceDistribution_PercentPerSource(t *testing.T) {
	tb := table(
		rec(model.SourceA, "a1", "X", 10, nil),
		rec(model.SourceA, "a2", "X", 30, nil),
		rec(model.SourceA, "a3", "X", 35, nil),
		rec(model.SourceB, "b1", "X", 300, nil),
	)
	rows := PriceDistribution(tb)
	require.Len(t, rows, 10)

	assert.Equal(t, model.SourceA, rows[0].Source)
	assert.Equal(t, "Budget", rows[0].Bin)
	assert.Equal(t, 1, rows[0].Count)
	assert.InDelta(t, 100.0/3, *rows[0].Percent, 1e-9)
	assert.Equal(t, 2, rows[1].Count)
	assert.InDelta(t, 0.0, *rows[4].Percent, 1e-12, "zero-count bins are kept")

	assert.Equal(t, model.SourceB, rows[9].Source)
	assert.Equal(t, "Luxury", rows[9].Bin)
	assert.InDelta(t, 100.0, *rows[9].Percent, 1e-12)

	assert.InDelta(t, 100.0, sumPercent(rows, model.SourceA), 1e-6)
	assert.InDelta(t, 100.0, sumPercent(rows, model.SourceB), 1e-6)
}

func TestRatingDistribution_NullsAndEmptySource(t *testing.T) {
	tb := table(
		rec(model.SourceA, "a1", "X", 10, model.Float(4.5)),
		rec(model.SourceA, "a2", "X", 10, nil),
		rec(model.SourceA, "a3", "X", 10, model.Float(1)),
		rec(model.SourceB, "b1", "X", 10, nil),
	)
	rows := RatingDistribution(tb)
	require.Len(t, rows, 8)
	assert.InDelta(t, 50.0, *rows[0].Percent, 1e-12)
	assert.InDelta(t, 50.0, *rows[3].Percent, 1e-12)
	for _, r := range rows[4:] {
		assert.Equal(t, 0, r.Count)
		assert.Nil(t, r.Percent, "source without binned rows has undefined percent")
	}
}

func TestPriceDistribution_PercentsSumToHundred(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var recs []model.ProductRecord
	for n := 0; n < 97; n++ {
		recs = append(recs, rec(model.SourceA, "a", "X", rng.Float64()*400, nil))
		recs = append(recs, rec(model.SourceB, "b", "X", rng.Float64()*120, nil))
	}
	rows := PriceDistribution(table(recs...))
	for _, s := range model.Sources {
		assert.InDelta(t, 100.0, sumPercent(rows, s), 1e-6)
	}
}
