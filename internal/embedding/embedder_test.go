package embedding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// euclideanNorm computes the vector's Euclidean length in float64.
func euclideanNorm(vec []float32) float64 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

func TestNormalize_UnitNorm(t *testing.T) {
	tests := []struct {
		name string
		vec  []float32
	}{
		{"already normalized", []float32{1, 0, 0}},
		{"needs scaling", []float32{3, 4}},
		{"small values", []float32{0.001, 0.002, 0.003}},
		{"large values", []float32{1000, 2000, 3000}},
		{"negative components", []float32{-1, 2, -3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize(tt.vec)
			assert.InDelta(t, 1.0, euclideanNorm(got), 1e-5,
				"normalized vector should have unit Euclidean norm")
		})
	}
}

func TestNormalize_PreservesDirection(t *testing.T) {
	got := normalize([]float32{3, 4})

	require.Len(t, got, 2)
	assert.InDelta(t, 0.6, got[0], 1e-6)
	assert.InDelta(t, 0.8, got[1], 1e-6)
}

func TestNormalize_ZeroVector(t *testing.T) {
	got := normalize([]float32{0, 0, 0})

	// A zero vector has no direction to preserve; it must come back
	// untouched rather than become NaN.
	for i, v := range got {
		assert.Zerof(t, v, "component %d", i)
		assert.False(t, math.IsNaN(float64(v)))
	}
}

func TestToFloat32(t *testing.T) {
	got := toFloat32([]float64{0.5, -0.25, 1.0})

	require.Len(t, got, 3)
	assert.Equal(t, float32(0.5), got[0])
	assert.Equal(t, float32(-0.25), got[1])
	assert.Equal(t, float32(1.0), got[2])
}

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient("")
	require.Error(t, err)
}

func TestNewEmbedder_DefaultBatchSize(t *testing.T) {
	e := NewEmbedder(&Client{}, 0)
	assert.Equal(t, DefaultBatchSize, e.batchSize)

	e = NewEmbedder(&Client{}, 32)
	assert.Equal(t, 32, e.batchSize)
}
