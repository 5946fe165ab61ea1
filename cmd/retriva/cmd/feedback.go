package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/retriva/retriva/internal/config"
	rerrors "github.com/retriva/retriva/internal/errors"
	"github.com/retriva/retriva/internal/feedback"
	"github.com/retriva/retriva/internal/output"
)

func newFeedbackCmd() *cobra.Command {
	var rating int
	var comment string

	cmd := &cobra.Command{
		Use:   "feedback <query>",
		Short: "Record relevance feedback for a query",
		Long: `Append a feedback entry to the feedback log. Entries are recorded
for offline analysis only; they never alter ranking.

Examples:
  retriva feedback "becas" --rating 1
  retriva feedback "plazos" --rating -1 --comment "respuesta incompleta"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rating < -1 || rating > 1 {
				return rerrors.New(rerrors.CodeInvalidInput, "rating must be -1, 0, or 1")
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err := feedback.NewLogger(cfg.Feedback.Path)
			if err != nil {
				return err
			}

			err = logger.Record(cmd.Context(), feedback.Entry{
				Query:   strings.Join(args, " "),
				Rating:  feedback.Rating(rating),
				Comment: comment,
			})
			if err != nil {
				return err
			}

			output.New(cmd.OutOrStdout()).Successf("feedback recorded in %s", logger.Path())
			return nil
		},
	}

	cmd.Flags().IntVarP(&rating, "rating", "r", 0, "Rating: -1 (bad), 0 (neutral), 1 (good)")
	cmd.Flags().StringVarP(&comment, "comment", "m", "", "Optional comment")

	return cmd
}
