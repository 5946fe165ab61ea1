// Package index provides the lexical scoring indices for retrieval: a BM25L
// index and a TF-IDF sparse vector model. Both are built exactly once over
// the full corpus and are read-only afterwards, so concurrent per-query use
// needs no locking.
package index

import (
	"math"
)

// BM25L scoring defaults.
const (
	DefaultK1    = 1.2
	DefaultB     = 0.75
	DefaultDelta = 0.5
)

// BM25Params configures BM25L scoring at construction time.
type BM25Params struct {
	// K1 is the term frequency saturation parameter.
	K1 float64
	// B is the length normalization parameter.
	B float64
	// Delta is the lower-bound bonus added per matching query term.
	Delta float64
}

// DefaultBM25Params returns the default BM25L parameters.
func DefaultBM25Params() BM25Params {
	return BM25Params{K1: DefaultK1, B: DefaultB, Delta: DefaultDelta}
}

// BM25L is a lexical index implementing the BM25L scoring variant:
// classic BM25 with a per-matching-term delta bonus that counteracts the
// penalty on long documents.
//
// Corpus statistics (term frequencies, document frequencies, IDF, document
// lengths) are computed once at construction. IDF uses
// log((N - df + 0.5)/(df + 0.5)) with no smoothing floor, so terms appearing
// in more than half the corpus score negative. That is standard BM25
// behavior and is kept as-is.
type BM25L struct {
	params     BM25Params
	corpusSize int
	avgDocLen  float64
	docLen     []int
	docFreqs   []map[string]int
	idf        map[string]float64
}

// NewBM25L builds a BM25L index over the given chunk texts.
func NewBM25L(docs []string, params BM25Params) *BM25L {
	b := &BM25L{
		params:     params,
		corpusSize: len(docs),
		docLen:     make([]int, 0, len(docs)),
		docFreqs:   make([]map[string]int, 0, len(docs)),
		idf:        make(map[string]float64),
	}

	var totalLen int
	for _, doc := range docs {
		words := Tokenize(doc)
		b.docLen = append(b.docLen, len(words))
		totalLen += len(words)

		freqs := make(map[string]int, len(words))
		for _, w := range words {
			freqs[w]++
		}
		b.docFreqs = append(b.docFreqs, freqs)
		for w := range freqs {
			b.idf[w]++
		}
	}

	if len(docs) > 0 {
		b.avgDocLen = float64(totalLen) / float64(len(docs))
	}

	n := float64(b.corpusSize)
	for w, df := range b.idf {
		b.idf[w] = math.Log((n - df + 0.5) / (df + 0.5))
	}

	return b
}

// IDF returns the inverse document frequency of term, 0 for unseen terms.
func (b *BM25L) IDF(term string) float64 {
	return b.idf[term]
}

// Scores computes the BM25L score of every document against query.
// The returned slice is indexed by chunk index; documents sharing no term
// with the query score 0.
func (b *BM25L) Scores(query string) []float64 {
	queryWords := Tokenize(query)
	scores := make([]float64, b.corpusSize)
	for i := range scores {
		scores[i], _ = b.scoreDoc(i, queryWords)
	}
	return scores
}

// scoreDoc scores one document against the tokenized query and reports
// whether any query term occurs in the document.
func (b *BM25L) scoreDoc(i int, queryWords []string) (float64, bool) {
	if b.avgDocLen == 0 {
		return 0, false
	}
	norm := b.params.K1 * (1 - b.params.B + b.params.B*float64(b.docLen[i])/b.avgDocLen)

	var score float64
	matched := false
	for _, w := range queryWords {
		freq, ok := b.docFreqs[i][w]
		if !ok {
			continue
		}
		matched = true
		tf := float64(freq)
		score += b.idf[w]*tf*(b.params.K1+1)/(tf+norm) + b.params.Delta
	}
	return score, matched
}

// Retrieve returns the topK highest-scoring (chunk index, score) pairs for
// query, sorted descending by score. Only documents containing at least one
// query term are candidates; ties keep the lower chunk index.
func (b *BM25L) Retrieve(query string, topK int) []Hit {
	if b.corpusSize == 0 || topK <= 0 {
		return []Hit{}
	}

	queryWords := Tokenize(query)
	collector := NewTopK(topK)
	for i := 0; i < b.corpusSize; i++ {
		score, matched := b.scoreDoc(i, queryWords)
		if !matched {
			continue
		}
		collector.Push(Hit{Index: i, Score: score})
	}
	return collector.Hits()
}
