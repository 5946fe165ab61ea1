// Package chat orchestrates one conversation: retrieve grounding
// context for each question, generate an answer, and keep a bounded
// in-memory history window.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/retriva/retriva/internal/genai"
	"github.com/retriva/retriva/internal/search"
)

// DefaultMaxHistory bounds the retained conversation window.
const DefaultMaxHistory = 10

// defaultSystemPrompt grounds the model in retrieved passages.
const defaultSystemPrompt = `You are a helpful assistant. Answer using only the context below. If the context does not contain the answer, say so.

Context:
%s`

// ContextProvider selects grounding passages for a question. The
// retrieval service satisfies this.
type ContextProvider interface {
	GetRelevantContext(ctx context.Context, query string, history []search.Turn) string
}

// Config holds conversation settings.
type Config struct {
	// SystemPromptFormat is a format string receiving the retrieved
	// context. Empty means the default prompt.
	SystemPromptFormat string

	// MaxHistory bounds the retained turn window. Zero means the default.
	MaxHistory int
}

// Service runs one conversation. Safe for concurrent use, though turns
// interleave in arrival order.
type Service struct {
	retriever ContextProvider
	generator genai.Generator
	config    Config
	logger    *slog.Logger

	mu      sync.Mutex
	history []search.Turn
}

// NewService wires a conversation over the given retriever and generator.
func NewService(retriever ContextProvider, generator genai.Generator, cfg Config, logger *slog.Logger) *Service {
	if cfg.SystemPromptFormat == "" {
		cfg.SystemPromptFormat = defaultSystemPrompt
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultMaxHistory
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		retriever: retriever,
		generator: generator,
		config:    cfg,
		logger:    logger,
	}
}

// Ask answers a question grounded in retrieved context and records the
// exchange. Generation failures degrade to returning the retrieved
// context itself, so the caller always gets usable text.
func (s *Service) Ask(ctx context.Context, question string) string {
	return s.ask(ctx, question, nil)
}

// AskStream behaves like Ask but delivers the answer incrementally
// through fn as it is generated.
func (s *Service) AskStream(ctx context.Context, question string, fn genai.StreamFunc) string {
	return s.ask(ctx, question, fn)
}

func (s *Service) ask(ctx context.Context, question string, fn genai.StreamFunc) string {
	history := s.snapshot()
	retrieved := s.retriever.GetRelevantContext(ctx, question, history)

	req := genai.Request{
		System:  fmt.Sprintf(s.config.SystemPromptFormat, retrieved),
		History: history,
		Prompt:  question,
	}

	var answer string
	var err error
	if fn != nil {
		answer, err = s.generator.Stream(ctx, req, fn)
	} else {
		answer, err = s.generator.Generate(ctx, req)
	}
	if err != nil {
		s.logger.Error("generation failed, returning retrieved context",
			slog.String("error", err.Error()))
		answer = retrieved
	}

	s.record(question, answer)
	return answer
}

// History returns a copy of the retained conversation window.
func (s *Service) History() []search.Turn {
	return s.snapshot()
}

// Reset clears the conversation history.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

func (s *Service) snapshot() []search.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]search.Turn, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Service) record(question, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history,
		search.Turn{Role: search.RoleUser, Content: question},
		search.Turn{Role: search.RoleAssistant, Content: answer},
	)
	if len(s.history) > s.config.MaxHistory {
		s.history = s.history[len(s.history)-s.config.MaxHistory:]
	}
}
