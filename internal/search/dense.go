package search

import (
	"context"

	"github.com/retriva/retriva/internal/corpus"
	"github.com/retriva/retriva/internal/embed"
	rerrors "github.com/retriva/retriva/internal/errors"
	"github.com/retriva/retriva/internal/store"
)

// DenseSearcher performs embedding-based nearest-neighbor lookup. The
// pipeline treats failures as empty results at the signal boundary.
type DenseSearcher interface {
	Search(ctx context.Context, query string, k int) ([]DenseResult, error)
}

// NoOpDenseSearcher returns no results. Used when no embedding backend
// is available; the pipeline then runs on the lexical signal alone.
type NoOpDenseSearcher struct{}

// NewNoOpDenseSearcher creates a dense searcher that finds nothing.
func NewNoOpDenseSearcher() *NoOpDenseSearcher {
	return &NoOpDenseSearcher{}
}

// Search returns an empty result set.
func (s *NoOpDenseSearcher) Search(_ context.Context, _ string, _ int) ([]DenseResult, error) {
	return nil, nil
}

// VectorSearcher is the production DenseSearcher: it embeds the query
// and searches a prebuilt HNSW index over the corpus embeddings.
type VectorSearcher struct {
	embedder embed.Embedder
	vectors  *store.VectorStore
	corpus   *corpus.Corpus
}

// NewVectorSearcher builds the dense index by embedding every corpus
// chunk once. The returned searcher is safe for concurrent use.
func NewVectorSearcher(ctx context.Context, embedder embed.Embedder, c *corpus.Corpus) (*VectorSearcher, error) {
	vectors, err := store.NewVectorStore(store.DefaultConfig(embedder.Dimensions()))
	if err != nil {
		return nil, err
	}

	embeddings, err := embedder.EmbedBatch(ctx, c.Texts())
	if err != nil {
		return nil, rerrors.Wrap(err, rerrors.CodeIndexFailed, "failed to embed corpus")
	}
	if err := vectors.Add(embeddings); err != nil {
		return nil, err
	}

	return &VectorSearcher{embedder: embedder, vectors: vectors, corpus: c}, nil
}

// Search embeds the query and returns the k nearest chunks with their
// cosine similarity scores.
func (s *VectorSearcher) Search(ctx context.Context, query string, k int) ([]DenseResult, error) {
	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, rerrors.Wrap(err, rerrors.CodeSearchFailed, "failed to embed query")
	}

	hits, err := s.vectors.Search(vec, k)
	if err != nil {
		return nil, err
	}

	results := make([]DenseResult, len(hits))
	for i, hit := range hits {
		results[i] = DenseResult{
			Text:  s.corpus.Text(hit.Index),
			Score: hit.Score,
		}
	}
	return results, nil
}
