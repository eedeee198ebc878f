package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanMedian(t *testing.T) {
	xs := []float64{4, 1, 3, 2}
	require.NotNil(t, Mean(xs))
	assert.InDelta(t, 2.5, *Mean(xs), 1e-12)
	assert.InDelta(t, 2.5, *Median(xs), 1e-12)
	assert.InDelta(t, 3.0, *Median([]float64{5, 3, 1}), 1e-12)
	assert.Equal(t, []float64{4, 1, 3, 2}, xs, "input must not be reordered")
}

func TestEmptyStatsAreNil(t *testing.T) {
	assert.Nil(t, Mean(nil))
	assert.Nil(t, Median(nil))
	assert.Nil(t, Min(nil))
	assert.Nil(t, Max(nil))
	assert.Nil(t, Quantile([]float64{}, 0.25))
}

func TestQuantileInterpolates(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	assert.InDelta(t, 2.0, *Quantile(xs, 0.25), 1e-12)
	assert.InDelta(t, 4.0, *Quantile(xs, 0.75), 1e-12)
	assert.InDelta(t, 1.75, *Quantile([]float64{1, 2, 3, 4}, 0.25), 1e-12)
	assert.InDelta(t, 7.0, *Quantile([]float64{7}, 0.75), 1e-12)
}

func TestMinMax(t *testing.T) {
	xs := []float64{3, -1, 9}
	assert.Equal(t, -1.0, *Min(xs))
	assert.Equal(t, 9.0, *Max(xs))
}
