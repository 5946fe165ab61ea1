package index

import (
	"math"
)

// TFIDF is a term-weighting model fit once over all chunk texts.
// Documents and queries are mapped into a shared sparse feature space where
// each dimension is a vocabulary term weighted by tf*idf and L2-normalized,
// so the dot product of two vectors is their cosine similarity.
//
// IDF here uses the smoothed form ln((1+N)/(1+df)) + 1, which never goes
// negative; this signal is a similarity measure, not a BM25-style ranker.
type TFIDF struct {
	vocab      map[string]int
	idf        []float64
	docVectors []map[int]float64
}

// NewTFIDF fits a TF-IDF model over the given chunk texts.
func NewTFIDF(docs []string) *TFIDF {
	m := &TFIDF{
		vocab:      make(map[string]int),
		docVectors: make([]map[int]float64, 0, len(docs)),
	}

	// Pass 1: vocabulary and document frequencies.
	docTokens := make([][]string, len(docs))
	dfCounts := make(map[string]int)
	for i, doc := range docs {
		tokens := Tokenize(doc)
		docTokens[i] = tokens

		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			dfCounts[tok]++
			if _, ok := m.vocab[tok]; !ok {
				m.vocab[tok] = len(m.vocab)
			}
		}
	}

	m.idf = make([]float64, len(m.vocab))
	n := float64(len(docs))
	for tok, col := range m.vocab {
		m.idf[col] = math.Log((1+n)/(1+float64(dfCounts[tok]))) + 1
	}

	// Pass 2: weighted, normalized document vectors.
	for _, tokens := range docTokens {
		m.docVectors = append(m.docVectors, m.vectorize(tokens))
	}

	return m
}

// Transform maps text into the fitted feature space.
// Terms outside the fitted vocabulary are ignored.
func (m *TFIDF) Transform(text string) map[int]float64 {
	return m.vectorize(Tokenize(text))
}

// Score returns the cosine similarity between the query vector and the
// precomputed vector of document docIdx.
func (m *TFIDF) Score(queryVec map[int]float64, docIdx int) float64 {
	docVec := m.docVectors[docIdx]
	// Iterate over the smaller map.
	a, b := queryVec, docVec
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for col, w := range a {
		dot += w * b[col]
	}
	return dot
}

// VocabSize returns the number of fitted vocabulary terms.
func (m *TFIDF) VocabSize() int {
	return len(m.vocab)
}

// vectorize builds an L2-normalized tf*idf vector from tokens.
func (m *TFIDF) vectorize(tokens []string) map[int]float64 {
	vec := make(map[int]float64)
	for _, tok := range tokens {
		col, ok := m.vocab[tok]
		if !ok {
			continue
		}
		vec[col]++
	}

	var sumSquares float64
	for col, tf := range vec {
		w := tf * m.idf[col]
		vec[col] = w
		sumSquares += w * w
	}
	if sumSquares > 0 {
		inv := 1 / math.Sqrt(sumSquares)
		for col := range vec {
			vec[col] *= inv
		}
	}
	return vec
}
