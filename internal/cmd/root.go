package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docsight/docsight/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "docsight",
	Short: "Documentation coverage scanner for source trees",
	Long: `Docsight walks a project tree, detects function and type declarations
across 20+ languages with heuristic patterns, and checks each declaration
for a nearby documentation breadcrumb comment.

The result is a coverage report: totals, a per-language breakdown and a
per-directory ranking of undocumented hotspots.`,
	Version: version.Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
