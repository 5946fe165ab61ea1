package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/retriva/retriva/internal/errors"
	"github.com/retriva/retriva/internal/genai"
	"github.com/retriva/retriva/internal/search"
)

type fakeRetriever struct {
	context   string
	lastQuery string
}

func (f *fakeRetriever) GetRelevantContext(_ context.Context, query string, _ []search.Turn) string {
	f.lastQuery = query
	return f.context
}

type fakeGenerator struct {
	answer  string
	err     error
	lastReq genai.Request
}

func (f *fakeGenerator) Generate(_ context.Context, req genai.Request) (string, error) {
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func (f *fakeGenerator) Stream(ctx context.Context, req genai.Request, fn genai.StreamFunc) (string, error) {
	answer, err := f.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	for _, word := range strings.SplitAfter(answer, " ") {
		if err := fn(genai.Chunk{Kind: genai.ChunkDelta, Content: word}); err != nil {
			return "", err
		}
	}
	if err := fn(genai.Chunk{Kind: genai.ChunkDone}); err != nil {
		return "", err
	}
	return answer, nil
}

func TestAsk_GroundsPromptInContext(t *testing.T) {
	retriever := &fakeRetriever{context: "La universidad ofrece becas."}
	generator := &fakeGenerator{answer: "Hay becas disponibles."}
	svc := NewService(retriever, generator, Config{}, nil)

	answer := svc.Ask(context.Background(), "¿qué becas hay?")

	assert.Equal(t, "Hay becas disponibles.", answer)
	assert.Contains(t, generator.lastReq.System, "La universidad ofrece becas.")
	assert.Equal(t, "¿qué becas hay?", generator.lastReq.Prompt)
	assert.Equal(t, "¿qué becas hay?", retriever.lastQuery)
}

func TestAsk_RecordsHistory(t *testing.T) {
	svc := NewService(&fakeRetriever{context: "ctx"}, &fakeGenerator{answer: "ok"}, Config{}, nil)

	svc.Ask(context.Background(), "primera")
	history := svc.History()

	require.Len(t, history, 2)
	assert.Equal(t, search.RoleUser, history[0].Role)
	assert.Equal(t, "primera", history[0].Content)
	assert.Equal(t, search.RoleAssistant, history[1].Role)
}

func TestAsk_GenerationFailureDegradesToContext(t *testing.T) {
	retriever := &fakeRetriever{context: "La universidad ofrece becas."}
	generator := &fakeGenerator{err: rerrors.New(rerrors.CodeGenerationFailed, "model down")}
	svc := NewService(retriever, generator, Config{}, nil)

	answer := svc.Ask(context.Background(), "¿qué becas hay?")
	assert.Equal(t, "La universidad ofrece becas.", answer)
}

func TestAsk_HistoryBounded(t *testing.T) {
	svc := NewService(&fakeRetriever{context: "ctx"}, &fakeGenerator{answer: "ok"}, Config{MaxHistory: 4}, nil)

	for i := 0; i < 5; i++ {
		svc.Ask(context.Background(), "pregunta")
	}
	assert.Len(t, svc.History(), 4)
}

func TestAskStream_DeliversChunks(t *testing.T) {
	svc := NewService(&fakeRetriever{context: "ctx"}, &fakeGenerator{answer: "hola mundo"}, Config{}, nil)

	var got strings.Builder
	var done bool
	answer := svc.AskStream(context.Background(), "saluda", func(c genai.Chunk) error {
		switch c.Kind {
		case genai.ChunkDelta:
			got.WriteString(c.Content)
		case genai.ChunkDone:
			done = true
		}
		return nil
	})

	assert.Equal(t, "hola mundo", answer)
	assert.Equal(t, "hola mundo", got.String())
	assert.True(t, done)
}

func TestReset(t *testing.T) {
	svc := NewService(&fakeRetriever{context: "ctx"}, &fakeGenerator{answer: "ok"}, Config{}, nil)
	svc.Ask(context.Background(), "pregunta")
	svc.Reset()
	assert.Empty(t, svc.History())
}
