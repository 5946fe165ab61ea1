// Package corpus holds the immutable document corpus the retrieval engine
// runs against. The corpus is built exactly once at service initialization
// and never mutated afterward, so all per-query reads are lock-free.
package corpus

// Chunk is the atomic retrievable unit of corpus text.
// Index is the chunk's stable position in the corpus ordering and is the
// join key across all scoring signals.
type Chunk struct {
	Index int
	Text  string
}

// Corpus is an ordered, fixed-length sequence of chunks.
type Corpus struct {
	chunks []Chunk
}

// New builds a corpus from an ordered sequence of chunk texts.
// Chunk indices are assigned by position.
func New(texts []string) *Corpus {
	chunks := make([]Chunk, len(texts))
	for i, t := range texts {
		chunks[i] = Chunk{Index: i, Text: t}
	}
	return &Corpus{chunks: chunks}
}

// Len returns the number of chunks.
func (c *Corpus) Len() int {
	return len(c.chunks)
}

// Chunk returns the chunk at index i.
func (c *Corpus) Chunk(i int) Chunk {
	return c.chunks[i]
}

// Text returns the text of the chunk at index i.
func (c *Corpus) Text(i int) string {
	return c.chunks[i].Text
}

// Texts returns the ordered chunk texts.
// The returned slice is freshly allocated; callers may not mutate corpus state.
func (c *Corpus) Texts() []string {
	texts := make([]string, len(c.chunks))
	for i, ch := range c.chunks {
		texts[i] = ch.Text
	}
	return texts
}
