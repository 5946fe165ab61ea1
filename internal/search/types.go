// Package search implements the hybrid retrieval pipeline: lexical and
// dense signals fused with a sparse boost, reranked by a cross-encoder,
// with a keyword fallback as the terminal degraded mode.
package search

// Fusion weights and candidate bounds. These are fixed by design and
// not configurable per query.
const (
	// WeightDense scales dense similarity scores during fusion.
	WeightDense = 0.6

	// WeightLexical scales lexical retrieval scores during fusion.
	WeightLexical = 0.3

	// WeightSparse scales the TF-IDF boost applied to already-surfaced
	// candidates during fusion.
	WeightSparse = 0.1

	// SignalPoolSize bounds each individual signal's candidate list.
	SignalPoolSize = 10

	// FusedPoolSize bounds the fused candidate set passed to the reranker.
	FusedPoolSize = 10

	// ContextSize bounds the final reranked output.
	ContextSize = 5

	// RerankWeight and PreRankWeight blend the reranker score with the
	// pre-rerank fused score for the final ordering.
	RerankWeight  = 0.7
	PreRankWeight = 0.3
)

// Role identifies the speaker of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Turn is a single conversation message. An ordered slice of turns forms
// the history; only a bounded trailing window participates in ranking.
type Turn struct {
	Role    Role
	Content string
}

// DenseResult is one hit from the dense similarity searcher.
type DenseResult struct {
	Text  string
	Score float64
}

// FusedCandidate pairs a candidate text with its pre-rerank fused score.
type FusedCandidate struct {
	Text  string
	Score float64
}
