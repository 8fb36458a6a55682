// Package aggregator folds per-file analyses and walk counters into the
// final scan result.
package aggregator

import (
	"math"
	"path/filepath"
	"sort"

	"github.com/docsight/docsight/internal/types"
)

// Complexity score thresholds. High wins over low when both match.
const (
	highFileCount     = 100
	highFunctionCount = 500
	lowFileCount      = 20
	lowFunctionCount  = 50
)

// Aggregate combines the tree structure with the file analyses. The
// analyses slice is expected to be sorted by path; output ordering
// follows it.
func Aggregate(structure types.ProjectStructure, analyses []types.FileAnalysis) *types.ScanResult {
	result := &types.ScanResult{
		TotalFiles:           structure.TotalFiles,
		Directories:          structure.Directories,
		FileTypes:            structure.FileTypes,
		TechnologyIndicators: structure.Indicators,
		KeyFiles:             structure.KeyFiles,
		LanguageBreakdown:    make(map[string]types.LanguageStats),
		FileAnalysis:         []types.FileRecord{},
	}

	missingByDir := make(map[string]int)

	for _, analysis := range analyses {
		// Unreadable, binary and oversized files produce empty analyses
		// and stay out of the report; files that simply declare nothing
		// are still counted per language.
		if analysis.Empty() {
			continue
		}

		result.TotalFunctions += len(analysis.Declarations)
		result.DocumentedFunctions += analysis.DocumentedCount

		stats := result.LanguageBreakdown[analysis.Language]
		stats.Files++
		stats.Functions += len(analysis.Declarations)
		result.LanguageBreakdown[analysis.Language] = stats

		if len(analysis.Missing) > 0 {
			missingByDir[filepath.Dir(analysis.Path)] += len(analysis.Missing)
		}

		result.FileAnalysis = append(result.FileAnalysis, types.FileRecord{
			File:               analysis.Path,
			Language:           analysis.Language,
			FunctionCount:      len(analysis.Declarations),
			DocumentedCount:    analysis.DocumentedCount,
			Functions:          cap15(analysis.Declarations),
			MissingBreadcrumbs: cap15(analysis.Missing),
			LinesOfCode:        analysis.LineCount,
		})
	}

	result.MissingCount = result.TotalFunctions - result.DocumentedFunctions
	if result.TotalFunctions > 0 {
		result.CoveragePercentage = round2(float64(result.DocumentedFunctions) / float64(result.TotalFunctions) * 100)
	}
	result.MissingSummary.ByDirectory = rankDirectories(missingByDir)
	result.ComplexityScore = complexityScore(structure.TotalFiles, result.TotalFunctions)

	return result
}

// rankDirectories returns the top 10 directories by missing count, count
// descending with directory name ascending as the tiebreak.
func rankDirectories(missingByDir map[string]int) types.DirectoryCounts {
	ranking := make(types.DirectoryCounts, 0, len(missingByDir))
	for dir, count := range missingByDir {
		ranking = append(ranking, types.DirectoryCount{Directory: dir, Count: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].Directory < ranking[j].Directory
	})
	if len(ranking) > 10 {
		ranking = ranking[:10]
	}
	return ranking
}

func complexityScore(files, functions int) string {
	switch {
	case files > highFileCount || functions > highFunctionCount:
		return "high"
	case files < lowFileCount || functions < lowFunctionCount:
		return "low"
	default:
		return "medium"
	}
}

func cap15(names []string) []string {
	if names == nil {
		return []string{}
	}
	if len(names) > types.MaxListedIdentifiers {
		return names[:types.MaxListedIdentifiers]
	}
	return names
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
