package index

// Hit is a scored chunk reference produced by an index lookup.
type Hit struct {
	Index int
	Score float64
}

// TopK is a bounded max-selection collector: it keeps the k highest-scoring
// hits out of an arbitrary stream without sorting the full input.
// Ties keep the earlier insertion, so feeding hits in chunk order yields the
// lower-index-first tie break required for deterministic retrieval.
type TopK struct {
	k    int
	hits []Hit // sorted descending by score
}

// NewTopK creates a collector for the k best hits. k must be positive.
func NewTopK(k int) *TopK {
	if k < 1 {
		k = 1
	}
	return &TopK{k: k, hits: make([]Hit, 0, k)}
}

// Push offers a hit to the collector.
// A hit displaces the current worst only when strictly better, which keeps
// the first-inserted hit on ties.
func (t *TopK) Push(h Hit) {
	if len(t.hits) == t.k && h.Score <= t.hits[len(t.hits)-1].Score {
		return
	}

	// Find insertion point: after all hits with score >= h.Score.
	pos := len(t.hits)
	for pos > 0 && t.hits[pos-1].Score < h.Score {
		pos--
	}

	if len(t.hits) < t.k {
		t.hits = append(t.hits, Hit{})
	}
	copy(t.hits[pos+1:], t.hits[pos:len(t.hits)-1])
	t.hits[pos] = h
}

// Hits returns the collected hits sorted descending by score.
func (t *TopK) Hits() []Hit {
	out := make([]Hit, len(t.hits))
	copy(out, t.hits)
	return out
}
