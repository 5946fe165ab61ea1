package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retriva/retriva/internal/chat"
	"github.com/retriva/retriva/internal/config"
	"github.com/retriva/retriva/internal/genai"
	"github.com/retriva/retriva/internal/output"
)

func newAskCmd() *cobra.Command {
	var stream bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a single question grounded in the corpus",
		Long: `Ask one question. The answer is generated from retrieved corpus
passages; if generation is unavailable, the passages themselves are
returned.

Examples:
  retriva ask "¿qué becas ofrece la universidad?"
  retriva ask --stream "¿cuáles son los plazos?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			return runAsk(cmd.Context(), cmd, question, stream)
		},
	}

	cmd.Flags().BoolVar(&stream, "stream", false, "Stream the answer as it is generated")

	return cmd
}

func runAsk(ctx context.Context, cmd *cobra.Command, question string, stream bool) error {
	out := output.New(cmd.OutOrStdout())

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	retriever, _, err := buildRetrieval(ctx, cfg)
	if err != nil {
		return err
	}
	generator, err := buildGenerator(cfg)
	if err != nil {
		return err
	}

	session := chat.NewService(retriever, generator, chat.Config{}, nil)

	if stream {
		session.AskStream(ctx, question, func(c genai.Chunk) error {
			if c.Kind == genai.ChunkDelta {
				out.Printf("%s", c.Content)
			} else {
				out.Newline()
			}
			return nil
		})
		return nil
	}

	out.Println(session.Ask(ctx, question))
	return nil
}
