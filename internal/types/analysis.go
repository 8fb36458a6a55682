package types

// FileAnalysis is the result of scanning a single source file for
// declarations and documentation breadcrumbs. It is created once per file,
// never mutated afterwards, and owned by the aggregator once produced.
type FileAnalysis struct {
	// Path is relative to the scan root
	Path     string
	Language string

	// Declarations holds every captured identifier, in match order.
	// Identifiers starting with "_" are never recorded.
	Declarations []string

	// Missing holds the declarations without a breadcrumb nearby.
	// Invariant: Missing is a subset of Declarations and
	// DocumentedCount + len(Missing) == len(Declarations).
	Missing []string

	DocumentedCount int
	LineCount       int
}

// Empty reports whether the analysis recorded nothing (unreadable, binary
// or oversized files produce empty analyses instead of errors).
func (fa FileAnalysis) Empty() bool {
	return len(fa.Declarations) == 0 && fa.LineCount == 0
}
