package genai

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	rerrors "github.com/retriva/retriva/internal/errors"
	"github.com/retriva/retriva/internal/search"
)

// OpenAIConfig configures the OpenAI-compatible generation client.
// Local servers (Ollama, vLLM, LM Studio) work with Token "none".
type OpenAIConfig struct {
	BaseURL     string
	Token       string
	Model       string
	Temperature float64
}

// DefaultOpenAIConfig returns defaults targeting a local Ollama server.
func DefaultOpenAIConfig() OpenAIConfig {
	return OpenAIConfig{
		BaseURL:     "http://localhost:11434/v1",
		Token:       "none",
		Model:       "llama3.2",
		Temperature: 0.2,
	}
}

// OpenAIGenerator implements Generator over an OpenAI-compatible chat API.
type OpenAIGenerator struct {
	client llms.Model
	config OpenAIConfig
	logger *slog.Logger
}

var _ Generator = (*OpenAIGenerator)(nil)

// NewOpenAIGenerator creates a generation client.
func NewOpenAIGenerator(cfg OpenAIConfig, logger *slog.Logger) (*OpenAIGenerator, error) {
	if cfg.BaseURL == "" {
		return nil, rerrors.New(rerrors.CodeInvalidConfig, "generation base URL is required")
	}
	if cfg.Model == "" {
		return nil, rerrors.New(rerrors.CodeInvalidConfig, "generation model is required")
	}
	if cfg.Token == "" {
		cfg.Token = "none"
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(cfg.Token),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, rerrors.Wrap(err, rerrors.CodeInvalidConfig, "failed to create generation client")
	}

	return &OpenAIGenerator{client: client, config: cfg, logger: logger}, nil
}

// Generate returns the complete answer for the request.
func (g *OpenAIGenerator) Generate(ctx context.Context, req Request) (string, error) {
	response, err := g.client.GenerateContent(ctx, buildMessages(req),
		llms.WithTemperature(g.config.Temperature))
	if err != nil {
		return "", rerrors.Wrap(err, rerrors.CodeGenerationFailed, "generation request failed")
	}
	if len(response.Choices) == 0 {
		return "", rerrors.New(rerrors.CodeGenerationFailed, "model returned no choices")
	}
	return response.Choices[0].Content, nil
}

// Stream delivers the answer incrementally and returns the full text.
// Raw byte payloads from the model client are converted to tagged
// chunks here, at the collaborator boundary.
func (g *OpenAIGenerator) Stream(ctx context.Context, req Request, fn StreamFunc) (string, error) {
	var sb strings.Builder

	_, err := g.client.GenerateContent(ctx, buildMessages(req),
		llms.WithTemperature(g.config.Temperature),
		llms.WithStreamingFunc(func(_ context.Context, payload []byte) error {
			sb.Write(payload)
			return fn(Chunk{Kind: ChunkDelta, Content: string(payload)})
		}))
	if err != nil {
		return "", rerrors.Wrap(err, rerrors.CodeGenerationFailed, "streaming generation failed")
	}

	if err := fn(Chunk{Kind: ChunkDone}); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// buildMessages assembles the chat transcript: system prompt first,
// then history in order, then the user's question.
func buildMessages(req Request) []llms.MessageContent {
	messages := make([]llms.MessageContent, 0, len(req.History)+2)

	if req.System != "" {
		messages = append(messages, llms.MessageContent{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(req.System)},
		})
	}
	for _, turn := range req.History {
		messages = append(messages, llms.MessageContent{
			Role:  roleToMessageType(turn.Role),
			Parts: []llms.ContentPart{llms.TextPart(turn.Content)},
		})
	}
	messages = append(messages, llms.MessageContent{
		Role:  llms.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{llms.TextPart(req.Prompt)},
	})
	return messages
}

func roleToMessageType(role search.Role) llms.ChatMessageType {
	switch role {
	case RoleAssistant:
		return llms.ChatMessageTypeAI
	case RoleSystem:
		return llms.ChatMessageTypeSystem
	default:
		return llms.ChatMessageTypeHuman
	}
}

// Role aliases so callers building requests need only this package.
const (
	RoleUser      = search.RoleUser
	RoleAssistant = search.RoleAssistant
	RoleSystem    = search.RoleSystem
)
