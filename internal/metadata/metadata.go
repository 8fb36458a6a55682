// Package metadata assembles the provenance block attached to scan output:
// who generated it, for which project, when, and in what repository state.
package metadata

import (
	"time"

	"github.com/docsight/docsight/internal/git"
	"github.com/docsight/docsight/internal/license"
	"github.com/docsight/docsight/internal/version"
)

// ScanMetadata describes one scan run.
type ScanMetadata struct {
	Generator     string            `json:"generator"`
	Version       string            `json:"version"`
	Project       string            `json:"project,omitempty"`
	Timestamp     string            `json:"timestamp"`
	ScanPath      string            `json:"scan_path"`
	DurationMs    int64             `json:"duration_ms"`
	FileCount     int               `json:"file_count"`
	LanguageCount int               `json:"language_count"`
	Git           *git.Info         `json:"git,omitempty"`
	Licenses      []license.Match   `json:"licenses,omitempty"`
	Properties    map[string]string `json:"properties,omitempty"`
}

// New creates metadata for a scan of scanPath, stamped with the current
// time in RFC 3339.
func New(scanPath string) *ScanMetadata {
	return &ScanMetadata{
		Generator: "docsight",
		Version:   version.Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		ScanPath:  scanPath,
	}
}

// SetDuration records the wall-clock scan duration.
func (m *ScanMetadata) SetDuration(d time.Duration) {
	m.DurationMs = d.Milliseconds()
}

// SetCounts records how many files were seen and languages analyzed.
func (m *ScanMetadata) SetCounts(files, languages int) {
	m.FileCount = files
	m.LanguageCount = languages
}

// AddProperty attaches a user-defined key/value pair from configuration.
func (m *ScanMetadata) AddProperty(key, value string) {
	if m.Properties == nil {
		m.Properties = make(map[string]string)
	}
	m.Properties[key] = value
}
