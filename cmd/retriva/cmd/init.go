package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/retriva/retriva/configs"
	rerrors "github.com/retriva/retriva/internal/errors"
	"github.com/retriva/retriva/internal/output"
)

func newInitCmd() *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Write an annotated configuration template to disk.

The template documents every setting with its default value. Point the
corpus path at your document file, then check the setup with
'retriva doctor'.`,
		Example: `  # Write retriva.yaml in the current directory
  retriva init

  # Write to a custom location
  retriva init --path config/retriva.yaml

  # Overwrite an existing file
  retriva init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, path, force)
		},
	}

	cmd.Flags().StringVar(&path, "path", "retriva.yaml", "Where to write the config file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func runInit(cmd *cobra.Command, path string, force bool) error {
	out := output.New(cmd.OutOrStdout())

	if _, err := os.Stat(path); err == nil && !force {
		return rerrors.New(rerrors.CodeInvalidInput, path+" already exists (use --force to overwrite)")
	}

	if err := os.WriteFile(path, []byte(configs.ConfigTemplate), 0o644); err != nil {
		return rerrors.Wrap(err, rerrors.CodeInternal, "failed to write config file")
	}

	out.Successf("wrote %s", path)
	out.Printf("Edit corpus.path, then run 'retriva doctor' to verify the setup.\n")
	return nil
}
