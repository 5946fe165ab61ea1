package search

import (
	"strings"

	"github.com/retriva/retriva/internal/corpus"
)

// FallbackMessage is returned when keyword search finds nothing. The
// retrieval API contract guarantees a non-empty string under every
// failure mode, so this is the terminal answer.
const FallbackMessage = "No relevant information found. Could you rephrase your question?"

// fallbackLimit caps the number of matched chunks in the degraded path.
const fallbackLimit = 3

// KeywordFallback is the dependency-free degraded retrieval path: pure
// substring containment over lowercased chunk text. It never fails.
type KeywordFallback struct {
	corpus *corpus.Corpus
}

// NewKeywordFallback creates a fallback searcher over the given corpus.
func NewKeywordFallback(c *corpus.Corpus) *KeywordFallback {
	return &KeywordFallback{corpus: c}
}

// Search returns up to three chunks containing at least one query token,
// joined by newlines, or FallbackMessage when nothing matches.
func (f *KeywordFallback) Search(query string) string {
	keywords := strings.Fields(strings.ToLower(query))

	var matches []string
	for i := 0; i < f.corpus.Len(); i++ {
		text := f.corpus.Text(i)
		lowered := strings.ToLower(text)
		for _, kw := range keywords {
			if strings.Contains(lowered, kw) {
				matches = append(matches, text)
				break
			}
		}
		if len(matches) == fallbackLimit {
			break
		}
	}

	if len(matches) == 0 {
		return FallbackMessage
	}
	return strings.Join(matches, "\n")
}
