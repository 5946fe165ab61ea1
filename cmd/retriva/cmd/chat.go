package cmd

import (
	"bufio"
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retriva/retriva/internal/chat"
	"github.com/retriva/retriva/internal/config"
	"github.com/retriva/retriva/internal/genai"
	"github.com/retriva/retriva/internal/output"
)

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive conversation grounded in the corpus",
		Long: `Start an interactive session. Each question is answered using
retrieved corpus passages, with recent turns weighted into retrieval.

Commands inside the session: /reset clears history, /quit exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd.Context(), cmd)
		},
	}
	return cmd
}

func runChat(ctx context.Context, cmd *cobra.Command) error {
	out := output.New(cmd.OutOrStdout())

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	retriever, docs, err := buildRetrieval(ctx, cfg)
	if err != nil {
		return err
	}
	generator, err := buildGenerator(cfg)
	if err != nil {
		return err
	}

	session := chat.NewService(retriever, generator, chat.Config{}, nil)
	out.Successf("corpus ready (%d chunks), type your question", docs.Len())

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		out.Printf("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "/quit", line == "/exit":
			return nil
		case line == "/reset":
			session.Reset()
			out.Println("history cleared")
			continue
		}

		session.AskStream(ctx, line, func(c genai.Chunk) error {
			if c.Kind == genai.ChunkDelta {
				out.Printf("%s", c.Content)
			} else {
				out.Newline()
			}
			return nil
		})
	}
	return scanner.Err()
}
