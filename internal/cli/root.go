// Package cli provides the Cobra command structure for mdsplit.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdsplit/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdsplit command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdsplit",
		Short: "Split Markdown documents into per-section files",
		Long: `mdsplit splits Markdown documents at top-level heading boundaries,
producing one file per section with zero-copy fidelity: concatenating
the output reproduces the input byte for byte.

It understands CommonMark and GitHub Flavored Markdown (GFM), keeps
YAML front matter attached to the first section, and ships companion
commands for document outlines and section statistics.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newSplitCommand())
	rootCmd.AddCommand(newTocCommand())
	rootCmd.AddCommand(newStatsCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
