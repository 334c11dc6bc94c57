package variant

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jjtimmons/jst/internal/jsterr"
)

// Store is the shared, sorted set of variants over a single source.
// Insert keeps the canonical total order from spec.md §3:
// (lo, breakendRank, span, alt), where breakendRank places insertions
// (which have no real high breakend) before substitutions and
// deletions sharing the same low breakend. This makes the tree
// deterministic (spec.md §4.4) without needing a separate event queue.
type Store struct {
	domain   int
	variants []Variant
}

// NewStore returns an empty Store over domain sequences.
func NewStore(domain int) *Store {
	return &Store{domain: domain}
}

// DomainSize is the number of sequences variants in this store are
// covered against.
func (s *Store) DomainSize() int { return s.domain }

// Len is the number of variants currently held.
func (s *Store) Len() int { return len(s.variants) }

// All returns the variants in canonical order. The returned slice must
// not be mutated by the caller.
func (s *Store) All() []Variant { return s.variants }

func breakendRank(v Variant) int {
	if v.BP.Span() == 0 {
		return 0
	}
	return 1
}

func compareVariants(a, b Variant) int {
	if a.BP.Lo != b.BP.Lo {
		return cmp(a.BP.Lo, b.BP.Lo)
	}
	if ar, br := breakendRank(a), breakendRank(b); ar != br {
		return cmp(ar, br)
	}
	if a.BP.Span() != b.BP.Span() {
		return cmp(a.BP.Span(), b.BP.Span())
	}
	return strings.Compare(a.Alt, b.Alt)
}

func cmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Insert adds v in canonical order, rejecting a variant whose domain
// doesn't match the store's or whose (breakpoint, alt, coverage)
// duplicates an existing record. Variants sharing breakpoint and alt
// but differing in coverage are kept side by side.
func (s *Store) Insert(v Variant) error {
	if v.Cov.Domain() != s.domain {
		return fmt.Errorf("%w: variant coverage domain %d, store domain %d", jsterr.ErrDomainMismatch, v.Cov.Domain(), s.domain)
	}
	idx := sort.Search(len(s.variants), func(i int) bool {
		return compareVariants(s.variants[i], v) >= 0
	})
	for i := idx; i < len(s.variants) && compareVariants(s.variants[i], v) == 0; i++ {
		if s.variants[i].Cov.Equal(v.Cov) {
			return fmt.Errorf("%w: duplicate variant at [%d,%d) alt=%q", jsterr.ErrInvalidCoordinate, v.BP.Lo, v.BP.Hi, v.Alt)
		}
	}
	s.variants = append(s.variants, Variant{})
	copy(s.variants[idx+1:], s.variants[idx:])
	s.variants[idx] = v
	return nil
}

// Range returns the variants (in canonical order) whose low breakend
// falls in [lo, hi).
func (s *Store) Range(lo, hi int) []Variant {
	start := sort.Search(len(s.variants), func(i int) bool { return s.variants[i].BP.Lo >= lo })
	end := sort.Search(len(s.variants), func(i int) bool { return s.variants[i].BP.Lo >= hi })
	return s.variants[start:end]
}

// VariantsAt returns the variants (in canonical order) whose low
// breakend is exactly pos — the set of alternate choices available at
// a breakpoint sequence tree node sitting at pos.
func (s *Store) VariantsAt(pos int) []Variant {
	return s.Range(pos, pos+1)
}

// NextLowBreakend returns the smallest low breakend strictly greater
// than pos, or fallback if none exists. It is used by the raw tree
// cursor to size the reference edge leaving a node.
func (s *Store) NextLowBreakend(pos, fallback int) int {
	idx := sort.Search(len(s.variants), func(i int) bool { return s.variants[i].BP.Lo > pos })
	if idx == len(s.variants) {
		return fallback
	}
	return s.variants[idx].BP.Lo
}
