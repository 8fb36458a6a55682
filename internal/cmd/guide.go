package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/docsight/docsight/internal/analyzer"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show how to write documentation breadcrumbs",
	Run:   runGuide,
}

func init() {
	rootCmd.AddCommand(guideCmd)
}

type guideExample struct {
	language string
	snippet  string
}

var guideExamples = []guideExample{
	{"Python", "# @codebase-summary: parses raw requests into Request values\ndef parse_request(raw):"},
	{"Go", "// @codebase-summary: drains the queue and flushes pending writes\nfunc drain(q *Queue) error {"},
	{"JavaScript", "// @codebase-summary: renders the dashboard header\nexport function renderHeader(props) {"},
	{"SQL", "-- @codebase-summary: recomputes the daily rollup table\nCREATE FUNCTION refresh_rollups()"},
	{"Rust", "/// @codebase-summary: decodes a frame header from the wire\npub fn read_header(buf: &[u8]) -> Header {"},
}

func runGuide(cmd *cobra.Command, args []string) {
	styled := isatty.IsTerminal(os.Stdout.Fd())

	title := func(s string) string { return s }
	marker := func(s string) string { return s }
	dim := func(s string) string { return s }
	if styled {
		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
		markerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
		dimStyle := lipgloss.NewStyle().Faint(true)
		// Render is variadic, so it cannot be assigned directly
		title = func(s string) string { return titleStyle.Render(s) }
		marker = func(s string) string { return markerStyle.Render(s) }
		dim = func(s string) string { return dimStyle.Render(s) }
	}

	fmt.Println(title("Documentation breadcrumbs"))
	fmt.Println()
	fmt.Printf("A declaration counts as documented when the marker %s\n", marker(analyzer.Marker))
	fmt.Println("appears in a comment within a few lines of its signature. The comment")
	fmt.Println("syntax does not matter; only the marker substring is checked.")
	fmt.Println()

	for _, example := range guideExamples {
		fmt.Println(title(example.language))
		fmt.Println(dim("  " + example.snippet))
		fmt.Println()
	}

	fmt.Println(dim("Run 'docsight scan .' to measure coverage."))
}
