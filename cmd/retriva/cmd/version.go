package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/retriva/retriva/internal/output"
	"github.com/retriva/retriva/pkg/version"
)

func newVersionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := output.New(cmd.OutOrStdout())

			info := version.Get()
			if format == "json" {
				payload, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				out.Println(string(payload))
				return nil
			}

			out.Println(info.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json")

	return cmd
}
