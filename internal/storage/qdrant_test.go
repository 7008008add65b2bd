//go:build integration

package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorkit/askdocs/internal/config"
)

// setupTestStorage creates a test storage instance and ensures the
// collection exists. Skips the test if Qdrant is not running.
func setupTestStorage(t *testing.T) *QdrantStorage {
	storage, err := NewQdrantStorage(Config{Host: "localhost", Port: 6334})
	if err != nil {
		t.Skipf("Qdrant not available: %v", err)
	}

	err = storage.EnsureCollection(context.Background())
	require.NoError(t, err, "Failed to ensure collection")

	return storage
}

// unitVector builds a normalized test vector with most of its weight on
// the given axis, so different axes are far apart under cosine distance.
func unitVector(axis int) []float32 {
	vec := make([]float32, config.VectorDimension)
	vec[axis] = 1.0
	return vec
}

func TestPointSearchRoundTrip(t *testing.T) {
	storage := setupTestStorage(t)
	defer storage.Close()

	ctx := context.Background()

	points := []*Point{
		{ID: uuid.New().String(), Vector: unitVector(0), Text: "Paris is the capital of France."},
		{ID: uuid.New().String(), Vector: unitVector(1), Text: "Tokyo is the capital of Japan."},
	}

	err := storage.UpsertPoints(ctx, points)
	require.NoError(t, err, "Failed to upsert points")

	results, err := storage.SearchPoints(ctx, unitVector(0), 3)
	require.NoError(t, err, "Failed to search points")
	require.NotEmpty(t, results)

	// Nearest hit must be the point on the queried axis.
	assert.Equal(t, points[0].ID, results[0].ID)
	assert.Equal(t, "Paris is the capital of France.", results[0].Text)
	assert.Greater(t, results[0].Score, 0.9)

	// Scores are ordered descending.
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestUpsertPoints_DimensionValidation(t *testing.T) {
	storage := setupTestStorage(t)
	defer storage.Close()

	err := storage.UpsertPoints(context.Background(), []*Point{
		{ID: uuid.New().String(), Vector: []float32{0.1, 0.2}, Text: "bad"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestSearchPoints_DimensionValidation(t *testing.T) {
	storage := setupTestStorage(t)
	defer storage.Close()

	_, err := storage.SearchPoints(context.Background(), []float32{0.1, 0.2}, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestUpsertPoints_EmptyBatch(t *testing.T) {
	storage := setupTestStorage(t)
	defer storage.Close()

	err := storage.UpsertPoints(context.Background(), nil)
	assert.NoError(t, err)
}

func TestCollectionInfo(t *testing.T) {
	storage := setupTestStorage(t)
	defer storage.Close()

	info, err := storage.GetCollectionInfo(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, info)
}
