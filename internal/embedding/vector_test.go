package embedding

import (
	"math"
	"testing"

	"github.com/lexihq/lexi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

func TestNormalize_UnitNorm(t *testing.T) {
	v := Normalize([]float32{3, 4})

	assert.InDelta(t, 1.0, norm(v), 1e-6)
	assert.InDelta(t, 0.6, float64(v[0]), 1e-6)
	assert.InDelta(t, 0.8, float64(v[1]), 1e-6)
}

func TestNormalize_ZeroVectorUnchanged(t *testing.T) {
	v := []float32{0, 0, 0}

	out := Normalize(v)

	assert.Equal(t, v, out)
}

func TestNormalize_AlreadyUnit(t *testing.T) {
	v := Normalize([]float32{1, 0, 0})

	assert.InDelta(t, 1.0, norm(v), 1e-6)
}

func TestSimilarity_SelfIsOne(t *testing.T) {
	v := Normalize([]float32{0.2, 0.5, 0.9})

	sim, err := Similarity(v, v)

	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-6)
}

func TestSimilarity_Orthogonal(t *testing.T) {
	sim, err := Similarity([]float32{1, 0}, []float32{0, 1})

	require.NoError(t, err)
	assert.InDelta(t, 0.0, sim, 1e-6)
}

func TestSimilarity_DimensionMismatch(t *testing.T) {
	_, err := Similarity([]float32{1, 0, 0}, []float32{1, 0})

	require.Error(t, err)
	assert.True(t, domain.IsDimensionMismatch(err))
	assert.Contains(t, err.Error(), "(3,) vs (2,)")
}

func TestStats(t *testing.T) {
	stats := Stats([]float32{1, 2, 3, 4})

	assert.InDelta(t, 2.5, stats.Mean, 1e-6)
	assert.InDelta(t, 1.0, stats.Min, 1e-6)
	assert.InDelta(t, 4.0, stats.Max, 1e-6)
	assert.InDelta(t, math.Sqrt(30), stats.Norm, 1e-6)
}

func TestStats_Empty(t *testing.T) {
	assert.Equal(t, VectorStats{}, Stats(nil))
}
