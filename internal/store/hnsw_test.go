package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorStore_AddAndSearch(t *testing.T) {
	s, err := NewVectorStore(DefaultConfig(3))
	require.NoError(t, err)

	err = s.Add([][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count())

	results, err := s.Search([]float32{0.9, 0.1, 0}, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 0, results[0].Index, "nearest neighbor first")
	assert.Greater(t, results[0].Score, results[1].Score)
	assert.InDelta(t, 1.0, results[0].Score, 0.05)
}

func TestVectorStore_DimensionMismatch(t *testing.T) {
	s, err := NewVectorStore(DefaultConfig(4))
	require.NoError(t, err)

	err = s.Add([][]float32{{1, 2}})
	assert.Error(t, err)

	_, err = s.Search([]float32{1, 2}, 1)
	assert.Error(t, err)
}

func TestVectorStore_EmptySearch(t *testing.T) {
	s, err := NewVectorStore(DefaultConfig(3))
	require.NoError(t, err)

	results, err := s.Search([]float32{1, 0, 0}, 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestVectorStore_InvalidConfig(t *testing.T) {
	_, err := NewVectorStore(Config{Dimensions: 0})
	assert.Error(t, err)
}

func TestVectorStore_NormalizesVectors(t *testing.T) {
	s, err := NewVectorStore(DefaultConfig(2))
	require.NoError(t, err)

	// Same direction, different magnitudes: cosine similarity is 1 for both.
	require.NoError(t, s.Add([][]float32{{2, 0}, {100, 0}}))

	results, err := s.Search([]float32{1, 0}, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.InDelta(t, 1.0, r.Score, 1e-5)
	}
}
