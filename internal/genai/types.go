// Package genai wraps the answer-generation model behind a narrow
// interface. The retrieval engine grounds prompts; this package turns
// them into generated text.
package genai

import (
	"context"

	"github.com/retriva/retriva/internal/search"
)

// ChunkKind tags the payload shape of one streamed generation chunk.
// Payload interpretation is resolved once at this boundary; consumers
// switch on the tag instead of probing the content.
type ChunkKind int

const (
	// ChunkDelta carries a fragment of generated text.
	ChunkDelta ChunkKind = iota

	// ChunkDone marks the end of the stream; Content is empty.
	ChunkDone
)

// Chunk is one unit of streamed generation output.
type Chunk struct {
	Kind    ChunkKind
	Content string
}

// StreamFunc receives chunks as they arrive. Returning an error aborts
// the stream.
type StreamFunc func(Chunk) error

// Request is one generation call: a system prompt carrying the
// retrieved context, the recent conversation, and the user's question.
type Request struct {
	System  string
	History []search.Turn
	Prompt  string
}

// Generator produces an answer for a grounded request.
type Generator interface {
	// Generate returns the complete answer.
	Generate(ctx context.Context, req Request) (string, error)

	// Stream delivers the answer incrementally through fn and returns
	// the assembled text.
	Stream(ctx context.Context, req Request, fn StreamFunc) (string, error)
}
