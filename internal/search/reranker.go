package search

import (
	"context"
)

// Reranker scores (query, candidate) pairs with a cross-encoder. Scores
// are aligned by position with the input candidates. Unlike the retrieval
// signals, reranker errors propagate: the caller decides how to degrade.
type Reranker interface {
	Score(ctx context.Context, query string, candidates []string) ([]float64, error)
}

// NoOpReranker returns a zero score for every candidate, leaving the
// final ordering to the pre-rerank fused scores. Used when no reranker
// endpoint is configured.
type NoOpReranker struct{}

// NewNoOpReranker creates a pass-through reranker.
func NewNoOpReranker() *NoOpReranker {
	return &NoOpReranker{}
}

// Score returns zeros aligned with the candidates.
func (r *NoOpReranker) Score(_ context.Context, _ string, candidates []string) ([]float64, error) {
	return make([]float64, len(candidates)), nil
}
