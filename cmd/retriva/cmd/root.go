// Package cmd provides the CLI commands for Retriva.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	rerrors "github.com/retriva/retriva/internal/errors"
	"github.com/retriva/retriva/internal/logging"
	"github.com/retriva/retriva/internal/profiling"
	"github.com/retriva/retriva/pkg/version"
)

var (
	configPath     string
	debugMode      bool
	loggingCleanup func()

	profileCPU string
	profileMem string
	profiler   = profiling.NewProfiler()
	cpuCleanup func()
)

// NewRootCmd creates the root command for the retriva CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retriva",
		Short: "Hybrid retrieval engine over a document corpus",
		Long: `Retriva grounds answers in a fixed corpus of document chunks using
hybrid retrieval: BM25L lexical scoring and dense vector search fused
with a TF-IDF boost, reranked by a cross-encoder, with a keyword
fallback when signals are unavailable.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("retriva version {{.Version}}\n")

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.retriva/logs/")
	cmd.PersistentFlags().StringVar(&profileCPU, "profile-cpu", "", "Write CPU profile to file")
	cmd.PersistentFlags().StringVar(&profileMem, "profile-mem", "", "Write memory profile to file")

	cmd.PersistentPreRunE = startProfilingAndLogging
	cmd.PersistentPostRunE = stopProfilingAndLogging

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newAskCmd())
	cmd.AddCommand(newChatCmd())
	cmd.AddCommand(newFeedbackCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, rerrors.FormatForCLI(err))
		return err
	}
	return nil
}

func startProfilingAndLogging(_ *cobra.Command, _ []string) error {
	cfg := logging.DefaultConfig()
	cfg.WriteToStderr = false
	if debugMode {
		cfg.Level = "debug"
	}

	if cleanup, err := logging.SetupDefault(cfg); err == nil {
		loggingCleanup = cleanup
	}
	// Logging must never block the CLI; on error keep stderr defaults.

	if profileCPU != "" {
		cleanup, err := profiler.StartCPU(profileCPU)
		if err != nil {
			return err
		}
		cpuCleanup = cleanup
	}
	return nil
}

func stopProfilingAndLogging(_ *cobra.Command, _ []string) error {
	if cpuCleanup != nil {
		cpuCleanup()
		cpuCleanup = nil
	}

	if profileMem != "" {
		if err := profiler.WriteHeap(profileMem); err != nil {
			return err
		}
	}

	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
	return nil
}
