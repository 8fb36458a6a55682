// Package analyzer extracts declarations from a single source file and
// checks each one for a nearby documentation marker. It never fails a
// scan: unreadable, binary or oversized files produce an empty analysis.
package analyzer

import (
	"log/slog"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/docsight/docsight/internal/language"
	"github.com/docsight/docsight/internal/types"
)

// MaxFileSize is the per-file analysis cutoff. Larger files are counted
// in the tree statistics but not scanned for declarations.
const MaxFileSize = 5 * 1024 * 1024

// Analyzer runs the declaration scan for single files.
type Analyzer struct {
	provider types.Provider
	logger   *slog.Logger
}

// New creates an analyzer reading file content through the given provider.
func New(provider types.Provider, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{provider: provider, logger: logger}
}

// Analyze reads one file through the provider and scans it. The path is
// relative to the scan root; size is the provider's reported file size,
// used for the oversize guard before reading.
func (a *Analyzer) Analyze(relPath string, size int64) types.FileAnalysis {
	if size > MaxFileSize {
		a.logger.Debug("Skipping oversized file", "path", relPath, "size", size)
		return emptyAnalysis(relPath)
	}

	raw, err := a.provider.ReadFile(relPath)
	if err != nil {
		a.logger.Debug("Skipping unreadable file", "path", relPath, "error", err)
		return emptyAnalysis(relPath)
	}
	return a.AnalyzeContent(relPath, raw)
}

// AnalyzeContent scans already-read file content, so callers that need the
// raw bytes for other consumers avoid a second read.
func (a *Analyzer) AnalyzeContent(relPath string, raw []byte) types.FileAnalysis {
	analysis := emptyAnalysis(relPath)
	if len(raw) == 0 || enry.IsBinary(raw) {
		return analysis
	}

	// Lenient decode: invalid byte sequences are replaced so one bad
	// byte does not discard the whole file.
	content := strings.ToValidUTF8(string(raw), "�")
	lines := strings.Split(content, "\n")
	analysis.LineCount = len(lines)

	patterns := language.PatternsFor(language.Language(analysis.Language))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		for _, re := range patterns {
			for _, m := range re.FindAllStringSubmatch(line, -1) {
				name := m[1]
				if strings.HasPrefix(name, "_") {
					continue
				}
				analysis.Declarations = append(analysis.Declarations, name)
				if hasMarkerNear(lines, i) {
					analysis.DocumentedCount++
				} else {
					analysis.Missing = append(analysis.Missing, name)
				}
			}
		}
	}

	return analysis
}

func emptyAnalysis(relPath string) types.FileAnalysis {
	return types.FileAnalysis{
		Path:     relPath,
		Language: string(language.Classify(relPath)),
	}
}
