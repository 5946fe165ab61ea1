package embed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingEmbedder tracks upstream calls so tests can assert cache hits.
type countingEmbedder struct {
	calls int
	dims  int
}

func (f *countingEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.calls++
	vec := make([]float32, f.dims)
	vec[0] = float32(len(text))
	return vec, nil
}

func (f *countingEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, _ := f.Embed(ctx, text)
		out[i] = vec
	}
	return out, nil
}

func (f *countingEmbedder) Dimensions() int   { return f.dims }
func (f *countingEmbedder) ModelName() string { return "counting" }
func (f *countingEmbedder) Close() error      { return nil }

func TestCachedEmbedder_ReusesResults(t *testing.T) {
	inner := &countingEmbedder{dims: 4}
	cached := NewCachedEmbedder(inner, 10)

	ctx := context.Background()
	first, err := cached.Embed(ctx, "hola")
	require.NoError(t, err)

	second, err := cached.Embed(ctx, "hola")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedEmbedder_BatchPartialHits(t *testing.T) {
	inner := &countingEmbedder{dims: 4}
	cached := NewCachedEmbedder(inner, 10)

	ctx := context.Background()
	_, err := cached.Embed(ctx, "uno")
	require.NoError(t, err)
	require.Equal(t, 1, inner.calls)

	vecs, err := cached.EmbedBatch(ctx, []string{"uno", "dos", "tres"})
	require.NoError(t, err)
	require.Len(t, vecs, 3)

	// Only the two misses reached the inner embedder.
	assert.Equal(t, 3, inner.calls)
	assert.Equal(t, float32(3), vecs[0][0])
	assert.Equal(t, float32(4), vecs[2][0])
}

func TestCachedEmbedder_Eviction(t *testing.T) {
	inner := &countingEmbedder{dims: 2}
	cached := NewCachedEmbedder(inner, 1)

	ctx := context.Background()
	_, _ = cached.Embed(ctx, "a")
	_, _ = cached.Embed(ctx, "b") // evicts "a"
	_, _ = cached.Embed(ctx, "a")

	assert.Equal(t, 3, inner.calls)
}
