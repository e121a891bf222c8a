package embedding

import (
	"math"

	"github.com/lexihq/lexi/internal/domain"
)

// Normalize scales v to unit L2 norm. The zero vector is returned unchanged to
// avoid division by zero.
func Normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return v
	}

	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

// Similarity computes the dot product of a and b. Both inputs are expected to
// be unit-normalized, so the dot product equals cosine similarity; no
// renormalization happens here.
func Similarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, domain.NewDimensionMismatchError(len(a), len(b))
	}

	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot, nil
}

// VectorStats summarizes an embedding vector.
type VectorStats struct {
	Mean float64
	Std  float64
	Min  float64
	Max  float64
	Norm float64
}

// Stats computes summary statistics for v.
func Stats(v []float32) VectorStats {
	if len(v) == 0 {
		return VectorStats{}
	}

	var sum, sumSq float64
	min := float64(v[0])
	max := float64(v[0])
	for _, x := range v {
		f := float64(x)
		sum += f
		sumSq += f * f
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}

	n := float64(len(v))
	mean := sum / n
	variance := sumSq/n - mean*mean
	if variance < 0 {
		variance = 0
	}

	return VectorStats{
		Mean: mean,
		Std:  math.Sqrt(variance),
		Min:  min,
		Max:  max,
		Norm: math.Sqrt(sumSq),
	}
}
