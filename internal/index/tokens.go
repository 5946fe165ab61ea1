package index

import (
	"strings"
	"unicode"
)

// Tokenize splits text on whitespace and normalizes each token by
// lowercasing and trimming surrounding punctuation, so "becas." and "Becas"
// both index as "becas". Tokens that are pure punctuation are dropped.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.TrimFunc(strings.ToLower(f), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
