// Package scanner drives the directory walk: it prunes ignored subtrees
// before descending, collects the structural counters, queues source files
// for analysis and hands everything to the aggregator. A scan over an
// arbitrary tree always completes; per-file failures degrade to empty
// analyses instead of errors.
package scanner

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/docsight/docsight/internal/aggregator"
	"github.com/docsight/docsight/internal/analyzer"
	"github.com/docsight/docsight/internal/codestats"
	"github.com/docsight/docsight/internal/ignore"
	"github.com/docsight/docsight/internal/language"
	"github.com/docsight/docsight/internal/metadata"
	"github.com/docsight/docsight/internal/progress"
	"github.com/docsight/docsight/internal/types"
)

// lockFileSizeCutoff skips oversized lock files from the counters.
const lockFileSizeCutoff = 1024 * 1024

// Options configure a scan. The zero value is usable.
type Options struct {
	// ExcludePatterns are unioned with the built-in ignore defaults
	ExcludePatterns []string
	// IgnoreFile is an optional pattern file; unreadable files warn and
	// the defaults stay active
	IgnoreFile string
	Progress   progress.Handler
	Logger     *slog.Logger
	CodeStats  codestats.Analyzer
	// Workers bounds the analysis pool; <= 0 means GOMAXPROCS
	Workers int
	// Metadata, when set, is completed with duration and counts and
	// attached to the result
	Metadata *metadata.ScanMetadata
}

// Scanner walks one tree. Create a fresh one per scan.
type Scanner struct {
	provider  types.Provider
	filter    *ignore.RuleSet
	analyzer  *analyzer.Analyzer
	progress  progress.Handler
	logger    *slog.Logger
	codeStats codestats.Analyzer
	workers   int
	meta      *metadata.ScanMetadata
}

type fileJob struct {
	path string
	size int64
}

// New creates a scanner over the given provider.
func New(p types.Provider, opts Options) *Scanner {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	handler := opts.Progress
	if handler == nil {
		handler = progress.Null()
	}
	stats := opts.CodeStats
	if stats == nil {
		stats = codestats.NewAnalyzer(false)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	filter := ignore.NewRuleSet(opts.ExcludePatterns...)
	filter.LoadFileOrWarn(opts.IgnoreFile, logger)

	return &Scanner{
		provider:  p,
		filter:    filter,
		analyzer:  analyzer.New(p, logger),
		progress:  handler,
		logger:    logger,
		codeStats: stats,
		workers:   workers,
		meta:      opts.Metadata,
	}
}

// Scan traverses the tree and returns the aggregated result. The only
// error paths are context cancellation and an unlistable root; everything
// below the root degrades locally.
func (s *Scanner) Scan(ctx context.Context) (*types.ScanResult, error) {
	started := time.Now()
	s.progress.Handle(progress.Event{Type: progress.ScanStart, Path: s.provider.GetBasePath()})

	structure := types.ProjectStructure{
		// Directories must marshal as [] on a flat tree, never null
		Directories: []string{},
		FileTypes:   make(map[string]int),
		Indicators:  emptyIndicators(),
	}

	var jobs []fileJob
	if err := s.walk(ctx, ".", &structure, &jobs); err != nil {
		return nil, err
	}
	sort.Strings(structure.Directories)

	analyses, err := s.analyzeAll(ctx, jobs)
	if err != nil {
		return nil, err
	}

	result := aggregator.Aggregate(structure, analyses)

	if s.meta != nil {
		s.meta.SetDuration(time.Since(started))
		s.meta.SetCounts(structure.TotalFiles, len(result.LanguageBreakdown))
		result.Metadata = s.meta
	}
	if s.codeStats.Enabled() {
		result.CodeStats = s.codeStats.Stats()
	}

	s.progress.Handle(progress.Event{
		Type:          progress.ScanComplete,
		FilesSeen:     structure.TotalFiles,
		FilesAnalyzed: len(analyses),
	})
	return result, nil
}

// walk descends depth-first. Pruning happens before ListDir on a child
// directory, so ignored subtrees are never stat'd or opened.
func (s *Scanner) walk(ctx context.Context, dir string, structure *types.ProjectStructure, jobs *[]fileJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := s.provider.ListDir(dir)
	if err != nil {
		if dir == "." {
			return err
		}
		s.logger.Warn("Skipping unlistable directory", "path", dir, "error", err)
		return nil
	}

	for _, entry := range entries {
		rel := filepath.ToSlash(entry.Path)
		if s.filter.ShouldIgnore(rel) {
			s.progress.Handle(progress.Event{Type: progress.FileSkipped, Path: rel, Message: "ignored"})
			continue
		}

		if entry.Type == "dir" {
			structure.Directories = append(structure.Directories, rel)
			s.progress.Handle(progress.Event{Type: progress.EnterDirectory, Path: rel})
			if err := s.walk(ctx, entry.Path, structure, jobs); err != nil {
				return err
			}
			s.progress.Handle(progress.Event{Type: progress.LeaveDirectory, Path: rel})
			continue
		}

		s.collectFile(entry, rel, structure, jobs)
	}
	return nil
}

// collectFile updates the structural counters for one file and queues it
// for analysis when its extension is in the source set.
func (s *Scanner) collectFile(entry types.File, rel string, structure *types.ProjectStructure, jobs *[]fileJob) {
	if strings.HasPrefix(entry.Name, ".") && !hiddenAllowlist[entry.Name] {
		return
	}

	ext := strings.ToLower(filepath.Ext(entry.Name))
	if binaryExtensions[ext] {
		s.progress.Handle(progress.Event{Type: progress.FileSkipped, Path: rel, Message: "binary extension"})
		return
	}
	if lockFiles[entry.Name] && entry.Size > lockFileSizeCutoff {
		s.progress.Handle(progress.Event{Type: progress.FileSkipped, Path: rel, Message: "oversized lock file"})
		return
	}

	structure.TotalFiles++
	structure.FileTypes[ext]++
	if keyFiles[entry.Name] {
		structure.KeyFiles = append(structure.KeyFiles, rel)
	}
	tagIndicators(structure.Indicators, rel, entry.Name)

	if language.IsSourceExtension(ext) {
		*jobs = append(*jobs, fileJob{path: entry.Path, size: entry.Size})
		return
	}

	// Non-source files (markdown, json, yaml) still count toward code
	// statistics even though they carry no declarations
	if s.codeStats.Enabled() && entry.Size <= analyzer.MaxFileSize {
		if raw, err := s.provider.ReadFile(entry.Path); err == nil {
			s.codeStats.ProcessFile(rel, raw)
		}
	}
}

// analyzeAll runs the per-file analysis over a bounded worker pool. Results
// land in an index-addressed slice, then sort by path so the output is
// independent of completion order.
func (s *Scanner) analyzeAll(ctx context.Context, jobs []fileJob) ([]types.FileAnalysis, error) {
	analyses := make([]types.FileAnalysis, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			analyses[i] = s.analyzeFile(job)
			s.progress.Handle(progress.Event{Type: progress.FileAnalyzed, Path: job.path})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(analyses, func(i, j int) bool { return analyses[i].Path < analyses[j].Path })
	return analyses, nil
}

// analyzeFile reads once and feeds both the declaration analysis and the
// code statistics from the same bytes.
func (s *Scanner) analyzeFile(job fileJob) types.FileAnalysis {
	rel := filepath.ToSlash(job.path)
	if job.size > analyzer.MaxFileSize {
		return s.analyzer.Analyze(rel, job.size)
	}

	raw, err := s.provider.ReadFile(job.path)
	if err != nil {
		s.logger.Debug("Skipping unreadable file", "path", rel, "error", err)
		return s.analyzer.AnalyzeContent(rel, nil)
	}

	s.codeStats.ProcessFile(rel, raw)
	return s.analyzer.AnalyzeContent(rel, raw)
}

func emptyIndicators() map[string][]string {
	indicators := make(map[string][]string, len(techIndicators))
	for category := range techIndicators {
		indicators[category] = []string{}
	}
	return indicators
}

// tagIndicators buckets a file into every technology category whose
// markers hit its path or name. Paths stay unique per bucket.
func tagIndicators(indicators map[string][]string, rel, name string) {
	for category, markers := range techIndicators {
		for _, marker := range markers {
			if strings.Contains(rel, marker) || strings.Contains(name, marker) {
				if !slices.Contains(indicators[category], rel) {
					indicators[category] = append(indicators[category], rel)
				}
				break
			}
		}
	}
}
