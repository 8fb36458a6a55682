// Package codestats collects line, comment and complexity statistics per
// language using scc's processor. It is optional; a disabled analyzer is a
// no-op and the scan output simply omits the code_stats block.
package codestats

import (
	"sort"
	"sync"

	"github.com/boyter/scc/v3/processor"
)

var initOnce sync.Once

// Stats holds counts for one language or the grand total.
type Stats struct {
	Lines      int64 `json:"lines"`
	Code       int64 `json:"code"`
	Comments   int64 `json:"comments"`
	Blanks     int64 `json:"blanks"`
	Complexity int64 `json:"complexity"`
	Files      int   `json:"files"`
}

// LanguageStats is Stats plus the scc language name, for sorted output.
type LanguageStats struct {
	Language   string `json:"language"`
	Lines      int64  `json:"lines"`
	Code       int64  `json:"code"`
	Comments   int64  `json:"comments"`
	Blanks     int64  `json:"blanks"`
	Complexity int64  `json:"complexity"`
	Files      int    `json:"files"`
}

// CodeStats is the aggregated result attached to the scan output.
type CodeStats struct {
	Total      Stats           `json:"total"`
	ByLanguage []LanguageStats `json:"by_language"`
}

// Analyzer accumulates per-file statistics. Implementations are safe for
// concurrent ProcessFile calls.
type Analyzer interface {
	ProcessFile(path string, content []byte)
	Stats() *CodeStats
	Enabled() bool
}

// NewAnalyzer returns an scc-backed analyzer, or a no-op when disabled.
func NewAnalyzer(enabled bool) Analyzer {
	if enabled {
		return &sccAnalyzer{byLanguage: make(map[string]*Stats)}
	}
	return noopAnalyzer{}
}

type noopAnalyzer struct{}

func (noopAnalyzer) ProcessFile(string, []byte) {}
func (noopAnalyzer) Stats() *CodeStats          { return nil }
func (noopAnalyzer) Enabled() bool              { return false }

type sccAnalyzer struct {
	mu         sync.Mutex
	total      Stats
	byLanguage map[string]*Stats
}

func (a *sccAnalyzer) Enabled() bool { return true }

// ProcessFile counts one file. Files scc cannot classify are skipped; they
// still show up in the scan's own line counts.
func (a *sccAnalyzer) ProcessFile(path string, content []byte) {
	if len(content) == 0 {
		return
	}

	initOnce.Do(processor.ProcessConstants)

	langs, _ := processor.DetectLanguage(path)
	if len(langs) == 0 {
		return
	}

	job := &processor.FileJob{
		Filename: path,
		Language: langs[0],
		Content:  content,
		Bytes:    int64(len(content)),
	}
	processor.CountStats(job)

	a.mu.Lock()
	defer a.mu.Unlock()

	stats, ok := a.byLanguage[job.Language]
	if !ok {
		stats = &Stats{}
		a.byLanguage[job.Language] = stats
	}
	for _, s := range []*Stats{&a.total, stats} {
		s.Lines += job.Lines
		s.Code += job.Code
		s.Comments += job.Comment
		s.Blanks += job.Blank
		s.Complexity += job.Complexity
		s.Files++
	}
}

// Stats returns the aggregate, languages sorted by lines descending with
// name ascending as the tiebreak.
func (a *sccAnalyzer) Stats() *CodeStats {
	a.mu.Lock()
	defer a.mu.Unlock()

	byLanguage := make([]LanguageStats, 0, len(a.byLanguage))
	for lang, stats := range a.byLanguage {
		byLanguage = append(byLanguage, LanguageStats{
			Language: lang, Lines: stats.Lines, Code: stats.Code,
			Comments: stats.Comments, Blanks: stats.Blanks,
			Complexity: stats.Complexity, Files: stats.Files,
		})
	}
	sort.Slice(byLanguage, func(i, j int) bool {
		if byLanguage[i].Lines != byLanguage[j].Lines {
			return byLanguage[i].Lines > byLanguage[j].Lines
		}
		return byLanguage[i].Language < byLanguage[j].Language
	})

	return &CodeStats{Total: a.total, ByLanguage: byLanguage}
}
