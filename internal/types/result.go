package types

import (
	"bytes"
	"encoding/json"
)

// ProjectStructure holds the structural counters collected during the walk,
// before coverage aggregation.
type ProjectStructure struct {
	TotalFiles  int
	Directories []string
	FileTypes   map[string]int
	// Indicators maps a technology category (frontend, backend,
	// ai_integration, database, rust_integration, deployment, testing,
	// documentation) to the relative paths that matched it.
	Indicators map[string][]string
	KeyFiles   []string
}

// LanguageStats is the per-language slice of the coverage breakdown.
type LanguageStats struct {
	Files     int `json:"files"`
	Functions int `json:"functions"`
}

// FileRecord is the serialized form of a FileAnalysis. Identifier lists are
// capped at MaxListedIdentifiers entries to keep reports readable; the
// counts always reflect the full totals.
type FileRecord struct {
	File               string   `json:"file"`
	Language           string   `json:"language"`
	FunctionCount      int      `json:"function_count"`
	DocumentedCount    int      `json:"documented_count"`
	Functions          []string `json:"functions"`
	MissingBreadcrumbs []string `json:"missing_breadcrumbs"`
	LinesOfCode        int      `json:"lines_of_code"`
}

// MaxListedIdentifiers caps the identifier lists in a FileRecord.
const MaxListedIdentifiers = 15

// DirectoryCount is one entry of the missing-breadcrumb ranking.
type DirectoryCount struct {
	Directory string
	Count     int
}

// DirectoryCounts is an ordered directory->count mapping. It marshals as a
// JSON object whose keys appear in slice order, so the descending ranking
// survives serialization (Go maps marshal key-sorted).
type DirectoryCounts []DirectoryCount

// MarshalJSON emits the entries as an object in slice order.
func (dc DirectoryCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range dc {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Directory)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(entry.Count)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the count for a directory, or 0 if it is not ranked.
func (dc DirectoryCounts) Get(dir string) int {
	for _, entry := range dc {
		if entry.Directory == dir {
			return entry.Count
		}
	}
	return 0
}

// MissingSummary groups the missing-breadcrumb hotspots.
type MissingSummary struct {
	ByDirectory DirectoryCounts `json:"by_directory"`
}

// ScanResult is the aggregate root written to the report. Downstream
// renderers depend on these field names and types exactly.
type ScanResult struct {
	TotalFiles           int                      `json:"total_files"`
	Directories          []string                 `json:"directories"`
	FileTypes            map[string]int           `json:"file_types"`
	TechnologyIndicators map[string][]string      `json:"technology_indicators"`
	KeyFiles             []string                 `json:"key_files,omitempty"`
	TotalFunctions       int                      `json:"total_functions"`
	DocumentedFunctions  int                      `json:"documented_functions"`
	MissingCount         int                      `json:"missing_count"`
	LanguageBreakdown    map[string]LanguageStats `json:"language_breakdown"`
	CoveragePercentage   float64                  `json:"coverage_percentage"`
	MissingSummary       MissingSummary           `json:"missing_breadcrumbs_summary"`
	ComplexityScore      string                   `json:"complexity_score"`
	FileAnalysis         []FileRecord             `json:"file_analysis"`
	Metadata             interface{}              `json:"metadata,omitempty"`
	CodeStats            interface{}              `json:"code_stats,omitempty"`
}
