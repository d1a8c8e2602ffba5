package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity_IdenticalVectors(t *testing.T) {
	v := []float64{0.3, -0.7, 0.2}
	assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-12)
}

func TestCosineSimilarity_OrthogonalVectors(t *testing.T) {
	a := []float64{1, 0}
	b := []float64{0, 1}
	assert.InDelta(t, 0.0, CosineSimilarity(a, b), 1e-12)
}

func TestCosineSimilarity_OppositeVectors(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{-1, -2, -3}
	assert.InDelta(t, -1.0, CosineSimilarity(a, b), 1e-12)
}

func TestCosineSimilarity_ScaleInvariant(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{10, 20, 30}
	assert.InDelta(t, 1.0, CosineSimilarity(a, b), 1e-12)
}

func TestCosineSimilarity_ZeroVector(t *testing.T) {
	a := []float64{0, 0, 0}
	b := []float64{1, 2, 3}
	assert.Equal(t, 0.0, CosineSimilarity(a, b))
	assert.Equal(t, 0.0, CosineSimilarity(b, a))
}

func TestCosineSimilarity_EmptyAndMismatched(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, CosineSimilarity([]float64{1}, nil))
	assert.Equal(t, 0.0, CosineSimilarity([]float64{1, 2}, []float64{1, 2, 3}))
}

func TestCosineSimilarity_BoundedRange(t *testing.T) {
	a := []float64{0.12, -9.4, 3.3, 0.004}
	b := []float64{-4.2, 1.9, -0.3, 8.8}
	score := CosineSimilarity(a, b)
	assert.False(t, math.IsNaN(score))
	assert.GreaterOrEqual(t, score, -1.0-1e-12)
	assert.LessOrEqual(t, score, 1.0+1e-12)
}
