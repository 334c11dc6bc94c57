// Package matcher defines the Matcher contract (spec.md §6) the
// traverser drives over every emitted cargo, plus one concrete
// reference implementation. The approximate-match algorithms named in
// spec.md (pigeonhole, Horspool, shift-or) stay out of this package by
// design — only callers that need them supply their own Matcher.
package matcher

// Matcher scans a segment for occurrences of a fixed-size pattern.
type Matcher interface {
	// WindowSize is the fixed context length this matcher needs; the
	// tree adaptor pipeline is built with k = WindowSize().
	WindowSize() int
	// Scan reports every match found in segment via report, in the
	// order they occur.
	Scan(segment string, report func(Finder))
}

// Finder is the result of a single match, carrying enough information
// to resolve the match's position inside the segment that was scanned.
type Finder interface {
	// Position is the 0-based offset of the match's start within the
	// segment passed to Scan.
	Position() int
}
