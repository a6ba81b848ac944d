// Package main provides the entry point for the dwscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for dwscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dwscan <path> [<path>...]",
		Short: "Detect double-word typos in documentation and source comments",
		Long: `dwscan locates double-word typos in documentation and source-comment text.

It reports two patterns:
- the same word twice in a row on one line ("it it")
- a line ending with the word the next line starts with

Lines beginning with comment-block markers ("*" or "//") are handled, and a
small set of tokens that repeat benignly (braces, pipes, a few C++ type
names) is skipped.

Examples:
  # Scan a single file, GCC-style output
  dwscan include/tria.h

  # Scan several files
  dwscan doc/intro.dox doc/usage.dox

  # Structured output to a file
  dwscan --json --output report.json include/tria.h`,
		Args:          cobra.MinimumNArgs(1),
		RunE:          runScanCmd,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown and --yaml)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json and --yaml)")
	cmd.Flags().BoolP("yaml", "y", false,
		"Output YAML report (mutually exclusive with --json and --markdown)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Add subcommands
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
