package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"log/slog"

	"github.com/spf13/cobra"

	"github.com/docsight/docsight/internal/codestats"
	"github.com/docsight/docsight/internal/config"
	"github.com/docsight/docsight/internal/git"
	"github.com/docsight/docsight/internal/license"
	"github.com/docsight/docsight/internal/metadata"
	"github.com/docsight/docsight/internal/progress"
	"github.com/docsight/docsight/internal/project"
	"github.com/docsight/docsight/internal/provider"
	"github.com/docsight/docsight/internal/scanner"
)

var settings *config.Settings

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a project tree for documentation coverage",
	Long: `Scan walks a directory tree, detects declarations per language and
reports how many carry a documentation breadcrumb.

Examples:
  docsight scan /path/to/project
  docsight scan --exclude generated --exclude "*.gen.go" .
  docsight scan --format yaml -o - /path/to/project
  docsight scan --no-code-stats --verbose .`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// Defaults come from environment variables via LoadSettings
	settings = config.LoadSettings()

	scanCmd.Flags().StringVarP(&settings.OutputFile, "output", "o", settings.OutputFile, "Output file path, - for stdout")
	scanCmd.Flags().StringVarP(&settings.Format, "format", "f", settings.Format, "Output format: json or yaml")
	scanCmd.Flags().BoolVar(&settings.PrettyPrint, "pretty", settings.PrettyPrint, "Pretty print JSON output")
	scanCmd.Flags().StringSliceVar(&settings.ExcludePatterns, "exclude", settings.ExcludePatterns, "Patterns to exclude (supports glob patterns, can be specified multiple times)")
	scanCmd.Flags().StringVar(&settings.IgnoreFile, "ignore-file", settings.IgnoreFile, "Ignore file with one pattern per line")
	scanCmd.Flags().BoolVarP(&settings.Verbose, "verbose", "v", settings.Verbose, "Show per-file progress")
	scanCmd.Flags().BoolVar(&settings.NoCodeStats, "no-code-stats", settings.NoCodeStats, "Disable code statistics (lines of code, comments, blanks, complexity)")
	scanCmd.Flags().IntVar(&settings.Workers, "workers", settings.Workers, "Analysis worker count (0 = one per CPU)")

	scanCmd.Flags().String("log-level", settings.LogLevel.String(), "Log level: debug, info, warn, error")
	scanCmd.Flags().String("log-format", settings.LogFormat, "Log format: text or json")
	scanCmd.Flags().String("log-file", settings.LogFile, "Log file path (default: stderr)")

	scanCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		settings.Format = normalizeFormat(settings.Format)
		return validateOutputFormat(settings.Format)
	}
}

// configureLogging sets up logging based on command flags.
func configureLogging(cmd *cobra.Command) *slog.Logger {
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFormat, _ := cmd.Flags().GetString("log-format")
	logFile, _ := cmd.Flags().GetString("log-file")

	if err := settings.SetLogLevel(logLevel); err != nil {
		settings.LogLevel = slog.LevelError
	}
	settings.LogFormat = logFormat
	settings.LogFile = logFile

	return settings.ConfigureLogger()
}

// resolveScanPath resolves and validates the scan root from args.
func resolveScanPath(args []string, logger *slog.Logger) string {
	path := "."
	if len(args) > 0 {
		path = strings.TrimSpace(args[0])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		logger.Error("Invalid path", "error", err)
		os.Exit(1)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		logger.Error("Path does not exist", "path", absPath)
		os.Exit(1)
	}
	if !info.IsDir() {
		logger.Error("Scan path must be a directory", "path", absPath)
		os.Exit(1)
	}
	return absPath
}

func runScan(cmd *cobra.Command, args []string) {
	logger := configureLogging(cmd)
	absPath := resolveScanPath(args, logger)

	// Per-project config file; CLI flags already in settings win
	projectCfg, err := config.LoadProjectConfig(absPath)
	if err != nil {
		logger.Error("Invalid project config", "error", err)
		os.Exit(1)
	}
	if projectCfg != nil {
		mergeProjectConfig(cmd, projectCfg)
	}

	meta := metadata.New(absPath)
	meta.Project = project.Resolve(absPath)
	meta.Git = git.GetInfo(absPath)
	meta.Licenses = license.Detect(absPath)
	if projectCfg != nil {
		for key, value := range projectCfg.Scan.Properties {
			meta.AddProperty(key, value)
		}
	}

	var handler progress.Handler
	if settings.Verbose {
		handler = progress.NewSimpleHandler(os.Stderr)
	}

	s := scanner.New(provider.NewFSProvider(absPath), scanner.Options{
		ExcludePatterns: settings.ExcludePatterns,
		IgnoreFile:      settings.IgnoreFile,
		Progress:        handler,
		Logger:          logger,
		CodeStats:       codestats.NewAnalyzer(!settings.NoCodeStats),
		Workers:         settings.Workers,
		Metadata:        meta,
	})

	result, err := s.Scan(cmd.Context())
	if err != nil {
		logger.Error("Scan failed", "error", err)
		os.Exit(1)
	}

	data, err := marshalResult(result, settings.Format, settings.PrettyPrint)
	if err != nil {
		logger.Error("Failed to serialize result", "error", err)
		os.Exit(1)
	}
	if err := writeResult(data, settings.OutputFile); err != nil {
		logger.Error("Failed to write result", "error", err)
		os.Exit(1)
	}
}

// mergeProjectConfig folds config file values under the CLI flags: only
// settings the user did not set on the command line are overridden. The
// command is passed in rather than read from the package variable so the
// scanCmd initializer stays free of reference cycles.
func mergeProjectConfig(cmd *cobra.Command, cfg *config.ScanConfigFile) {
	settings.ExcludePatterns = append(settings.ExcludePatterns, cfg.Scan.Exclude...)
	if cfg.Scan.IgnoreFile != "" && !cmd.Flags().Changed("ignore-file") {
		settings.IgnoreFile = cfg.Scan.IgnoreFile
	}
	if cfg.Scan.Output != "" && !cmd.Flags().Changed("output") {
		settings.OutputFile = cfg.Scan.Output
	}
}
