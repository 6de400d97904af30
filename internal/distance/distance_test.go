package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	assert.Equal(t, 11.0, Dot([]float64{1, 2, 3}, []float64{3, 1, 2}))
	assert.Equal(t, 0.0, Dot(nil, []float64{1, 2}))
}

func TestNorm(t *testing.T) {
	assert.Equal(t, 5.0, Norm([]float64{3, 4}))
	assert.Equal(t, 0.0, Norm([]float64{0, 0}))
}

func TestSquaredL2(t *testing.T) {
	assert.Equal(t, 0.0, SquaredL2([]float64{1, 2}, []float64{1, 2}))
	assert.Equal(t, 25.0, SquaredL2([]float64{0, 0}, []float64{3, 4}))
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float64{2, 0}, []float64{5, 0}), 1e-12)
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-12)
	assert.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 1}), "zero vector has no direction")
}
