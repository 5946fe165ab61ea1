// Package store provides the in-process vector store backing dense
// similarity search. Vectors are keyed by chunk index and live for the
// process lifetime; the corpus is immutable after load, so there is no
// persistence and no deletion path.
package store

import (
	"fmt"
	"math"
	"sync"

	"github.com/coder/hnsw"
)

// VectorResult is a single nearest-neighbor hit.
type VectorResult struct {
	Index    int     // chunk index
	Distance float32 // cosine distance, 0 (identical) to 2 (opposite)
	Score    float64 // normalized similarity, 0-1
}

// Config configures the vector store.
type Config struct {
	// Dimensions is the embedding dimension.
	Dimensions int
	// M is the HNSW max connections per layer.
	M int
	// EfSearch is the HNSW query-time search width.
	EfSearch int
}

// DefaultConfig returns sensible HNSW defaults for the given dimension.
func DefaultConfig(dimensions int) Config {
	return Config{
		Dimensions: dimensions,
		M:          16,
		EfSearch:   20,
	}
}

// VectorStore is an HNSW-backed nearest-neighbor index over chunk vectors.
// Add is only called during initialization; Search is safe for concurrent
// use afterwards.
type VectorStore struct {
	mu     sync.RWMutex
	graph  *hnsw.Graph[uint64]
	config Config
	count  int
}

// NewVectorStore creates an empty HNSW vector store.
func NewVectorStore(cfg Config) (*VectorStore, error) {
	if cfg.Dimensions <= 0 {
		return nil, fmt.Errorf("dimensions must be positive, got %d", cfg.Dimensions)
	}
	if cfg.M == 0 {
		cfg.M = 16
	}
	if cfg.EfSearch == 0 {
		cfg.EfSearch = 20
	}

	graph := hnsw.NewGraph[uint64]()
	graph.Distance = hnsw.CosineDistance
	graph.M = cfg.M
	graph.EfSearch = cfg.EfSearch
	graph.Ml = 0.25

	return &VectorStore{graph: graph, config: cfg}, nil
}

// Add inserts vectors for consecutive chunk indices starting at the current
// count. Vectors are normalized for cosine similarity before insertion.
func (s *VectorStore) Add(vectors [][]float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range vectors {
		if len(v) != s.config.Dimensions {
			return fmt.Errorf("dimension mismatch: expected %d, got %d", s.config.Dimensions, len(v))
		}
	}

	for _, v := range vectors {
		vec := make([]float32, len(v))
		copy(vec, v)
		normalizeInPlace(vec)

		s.graph.Add(hnsw.MakeNode(uint64(s.count), vec))
		s.count++
	}

	return nil
}

// Search finds the k nearest chunks to the query vector.
func (s *VectorStore) Search(query []float32, k int) ([]VectorResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(query) != s.config.Dimensions {
		return nil, fmt.Errorf("dimension mismatch: expected %d, got %d", s.config.Dimensions, len(query))
	}
	if s.graph.Len() == 0 {
		return []VectorResult{}, nil
	}

	normalized := make([]float32, len(query))
	copy(normalized, query)
	normalizeInPlace(normalized)

	nodes := s.graph.Search(normalized, k)

	results := make([]VectorResult, 0, len(nodes))
	for _, node := range nodes {
		distance := s.graph.Distance(normalized, node.Value)
		results = append(results, VectorResult{
			Index:    int(node.Key),
			Distance: distance,
			// Cosine distance ranges 0-2; fold into a 0-1 similarity.
			Score: 1.0 - float64(distance)/2.0,
		})
	}

	return results, nil
}

// Count returns the number of stored vectors.
func (s *VectorStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

// normalizeInPlace scales a vector to unit length.
func normalizeInPlace(v []float32) {
	var sumSquares float64
	for _, val := range v {
		sumSquares += float64(val) * float64(val)
	}
	if sumSquares == 0 {
		return
	}
	inv := float32(1.0 / math.Sqrt(sumSquares))
	for i := range v {
		v[i] *= inv
	}
}
