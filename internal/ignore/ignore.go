// Package ignore implements the path exclusion rules applied during a scan:
// a built-in default set, an optional user ignore file, and extra patterns
// from configuration. Rules are a strict union with no negation or override
// mechanism; once a pattern matches, the path is excluded.
package ignore

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultDirs are always excluded: version-control, dependency, build,
// cache and editor directories. Matching any path segment prunes the
// whole subtree.
var DefaultDirs = []string{
	".git",
	".svn",
	".hg",
	"node_modules",
	"vendor",
	"__pycache__",
	".venv",
	"venv",
	".pythonlibs",
	"dist",
	"build",
	"target",
	"coverage",
	".next",
	".nuxt",
	".cache",
	".local",
	".vscode",
	".idea",
}

// RuleSet holds compiled ignore rules and answers ShouldIgnore for paths
// relative to the scan root.
type RuleSet struct {
	// literals match any single path segment exactly
	literals map[string]bool
	// globs contain * or ? and match via doublestar against the
	// relative path or the basename
	globs []string
	// substrings are non-glob multi-segment rules matched as plain
	// substrings of the relative path
	substrings []string
}

// NewRuleSet builds a rule set from the built-in defaults plus any extra
// patterns (CLI or config excludes).
func NewRuleSet(extra ...string) *RuleSet {
	rs := &RuleSet{literals: make(map[string]bool)}
	for _, dir := range DefaultDirs {
		rs.Add(dir)
	}
	for _, pattern := range extra {
		rs.Add(pattern)
	}
	return rs
}

// Add compiles a single pattern into the set. Empty patterns are dropped.
func (rs *RuleSet) Add(pattern string) {
	pattern = strings.TrimSuffix(strings.TrimSpace(pattern), "/")
	if pattern == "" {
		return
	}

	switch {
	case strings.ContainsAny(pattern, "*?"):
		rs.globs = append(rs.globs, pattern)
	case strings.Contains(pattern, "/"):
		rs.substrings = append(rs.substrings, pattern)
	default:
		rs.literals[pattern] = true
	}
}

// LoadFile unions patterns from an ignore file into the set: one pattern
// per line, blank lines and # comments skipped, trailing slashes trimmed.
// Negation lines (leading !) are skipped; there is no override mechanism.
func (rs *RuleSet) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read ignore file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		rs.Add(line)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading ignore file: %w", err)
	}
	return nil
}

// LoadFileOrWarn loads an ignore file, logging a warning instead of failing
// when it is missing or unreadable. The defaults always stay active.
func (rs *RuleSet) LoadFileOrWarn(path string, logger *slog.Logger) {
	if path == "" {
		return
	}
	if err := rs.LoadFile(path); err != nil {
		if logger != nil {
			logger.Warn("Ignoring unreadable ignore file", "path", path, "error", err)
		}
	}
}

// ShouldIgnore reports whether a path (relative to the scan root) is
// excluded. A match at any directory level excludes the entire subtree.
func (rs *RuleSet) ShouldIgnore(relPath string) bool {
	relPath = strings.TrimPrefix(relPath, "./")
	if relPath == "" || relPath == "." {
		return false
	}

	for _, segment := range strings.Split(relPath, "/") {
		if rs.literals[segment] {
			return true
		}
	}

	name := relPath
	if idx := strings.LastIndex(relPath, "/"); idx >= 0 {
		name = relPath[idx+1:]
	}
	for _, pattern := range rs.globs {
		if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return true
		}
	}

	for _, pattern := range rs.substrings {
		if strings.Contains(relPath, pattern) {
			return true
		}
	}

	return false
}
