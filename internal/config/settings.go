package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"log/slog"
)

// Settings holds all scanner configuration.
type Settings struct {
	// Output settings
	OutputFile  string
	Format      string // "json" or "yaml"
	PrettyPrint bool

	// Scan behavior
	ExcludePatterns []string
	IgnoreFile      string
	Verbose         bool
	NoCodeStats     bool
	Workers         int

	// Logging
	LogLevel  slog.Level
	LogFormat string // "text" or "json"
	LogFile   string // Optional: write logs to file instead of stderr
}

// DefaultSettings returns default configuration.
func DefaultSettings() *Settings {
	return &Settings{
		OutputFile:      "doc-coverage.json",
		Format:          "json",
		PrettyPrint:     true,
		ExcludePatterns: []string{},
		Verbose:         false,
		NoCodeStats:     false,
		Workers:         0, // 0 = one per CPU
		LogLevel:        slog.LevelError,
		LogFormat:       "text",
		LogFile:         "",
	}
}

// LoadSettings creates settings from defaults and applies environment
// variable overrides.
func LoadSettings() *Settings {
	settings := DefaultSettings()

	if outputFile := os.Getenv("DOCSIGHT_OUTPUT"); outputFile != "" {
		settings.OutputFile = outputFile
	}

	if format := os.Getenv("DOCSIGHT_FORMAT"); format != "" {
		settings.Format = strings.ToLower(format)
	}

	if exclude := os.Getenv("DOCSIGHT_EXCLUDE"); exclude != "" {
		settings.ExcludePatterns = splitList(exclude)
	}

	if ignoreFile := os.Getenv("DOCSIGHT_IGNORE_FILE"); ignoreFile != "" {
		settings.IgnoreFile = ignoreFile
	}

	if pretty := os.Getenv("DOCSIGHT_PRETTY"); pretty != "" {
		settings.PrettyPrint = strings.ToLower(pretty) == "true"
	}

	if verbose := os.Getenv("DOCSIGHT_VERBOSE"); verbose != "" {
		settings.Verbose = strings.ToLower(verbose) == "true"
	}

	if noStats := os.Getenv("DOCSIGHT_NO_CODE_STATS"); noStats != "" {
		settings.NoCodeStats = strings.ToLower(noStats) == "true"
	}

	if workers := os.Getenv("DOCSIGHT_WORKERS"); workers != "" {
		if n, err := strconv.Atoi(workers); err == nil && n > 0 {
			settings.Workers = n
		}
	}

	if logLevel := os.Getenv("DOCSIGHT_LOG_LEVEL"); logLevel != "" {
		if level, err := parseLogLevel(logLevel); err == nil {
			settings.LogLevel = level
		}
	}

	if logFormat := os.Getenv("DOCSIGHT_LOG_FORMAT"); logFormat != "" {
		settings.LogFormat = logFormat
	}

	if logFile := os.Getenv("DOCSIGHT_LOG_FILE"); logFile != "" {
		settings.LogFile = logFile
	}

	return settings
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// parseLogLevel converts a string log level to slog.Level.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// SetLogLevel parses and applies a log level string.
func (s *Settings) SetLogLevel(level string) error {
	parsed, err := parseLogLevel(level)
	if err != nil {
		return err
	}
	s.LogLevel = parsed
	return nil
}

// ConfigureLogger sets up a logger based on settings.
func (s *Settings) ConfigureLogger() *slog.Logger {
	var output io.Writer = os.Stderr
	if s.LogFile != "" {
		file, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Cannot open log file %s: %v\n", s.LogFile, err)
		} else {
			output = file
		}
	}

	opts := &slog.HandlerOptions{Level: s.LogLevel}

	var handler slog.Handler
	if s.LogFormat == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}
