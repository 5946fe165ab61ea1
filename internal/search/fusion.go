package search

import (
	"github.com/retriva/retriva/internal/corpus"
	"github.com/retriva/retriva/internal/index"
)

// fusionEntry is one weighted contribution to a candidate's standing.
// A text can carry several entries (one per signal that surfaced it);
// entries are ranked individually, not merged per text.
type fusionEntry struct {
	text  string
	score float64
}

// fuse combines dense and lexical hits into a bounded candidate set.
// Dense scores carry weight 0.6, lexical 0.3. The TF-IDF signal (weight
// 0.1) only boosts texts already surfaced by the other two signals; it
// never introduces new candidates on its own. The top entries are
// selected by weighted score with ties broken by insertion order.
func fuse(dense []DenseResult, lexical []index.Hit, c *corpus.Corpus, tfidf *index.TFIDF, query string) []FusedCandidate {
	entries := make([]fusionEntry, 0, len(dense)+len(lexical)+c.Len())

	surfaced := make(map[string]bool, len(dense)+len(lexical))
	for _, d := range dense {
		entries = append(entries, fusionEntry{text: d.Text, score: WeightDense * d.Score})
		surfaced[d.Text] = true
	}
	for _, h := range lexical {
		text := c.Text(h.Index)
		entries = append(entries, fusionEntry{text: text, score: WeightLexical * h.Score})
		surfaced[text] = true
	}

	queryVec := tfidf.Transform(query)
	for i := 0; i < c.Len(); i++ {
		text := c.Text(i)
		if surfaced[text] {
			entries = append(entries, fusionEntry{text: text, score: WeightSparse * tfidf.Score(queryVec, i)})
		}
	}

	top := index.NewTopK(FusedPoolSize)
	for i, e := range entries {
		top.Push(index.Hit{Index: i, Score: e.score})
	}

	hits := top.Hits()
	fused := make([]FusedCandidate, len(hits))
	for i, h := range hits {
		fused[i] = FusedCandidate{Text: entries[h.Index].text, Score: h.Score}
	}
	return fused
}
