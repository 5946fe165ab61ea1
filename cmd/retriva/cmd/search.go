package cmd

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retriva/retriva/internal/config"
	"github.com/retriva/retriva/internal/output"
)

// searchOptions holds CLI flags for search.
type searchOptions struct {
	format string // "text", "json"
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Retrieve the most relevant corpus passages for a query",
		Long: `Retrieve context passages using hybrid search.

Combines BM25L lexical scoring and dense vector similarity with a
TF-IDF boost, then reranks the fused candidates.

Examples:
  retriva search "plazos de matrícula"
  retriva search "becas" --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return runSearch(cmd.Context(), cmd, query, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")

	return cmd
}

func runSearch(ctx context.Context, cmd *cobra.Command, query string, opts searchOptions) error {
	slog.Info("search started", slog.String("query", query))
	out := output.New(cmd.OutOrStdout())

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	svc, docs, err := buildRetrieval(ctx, cfg)
	if err != nil {
		return err
	}
	slog.Info("corpus loaded", slog.Int("chunks", docs.Len()))

	result := svc.GetRelevantContext(ctx, query, nil)

	if opts.format == "json" {
		payload, err := json.MarshalIndent(map[string]any{
			"query":    query,
			"passages": strings.Split(result, "\n"),
		}, "", "  ")
		if err != nil {
			return err
		}
		out.Println(string(payload))
		return nil
	}

	out.Context(result)
	return nil
}
