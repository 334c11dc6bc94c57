// Package variant holds the shared, sorted set of edits (the "variant
// store" of spec.md §3/§4.4) that every breakpoint sequence tree node
// consults to find the next branch point.
package variant

import (
	"fmt"

	"github.com/jjtimmons/jst/internal/breakpoint"
	"github.com/jjtimmons/jst/internal/jsterr"
)

// Kind classifies a Variant by the shape of its edit.
type Kind int

const (
	// Substitution replaces a non-empty span with a non-empty alt of
	// possibly different length.
	Substitution Kind = iota
	// Insertion has a zero-length breakpoint (Lo == Hi) and a
	// non-empty alt.
	Insertion
	// Deletion has a non-empty span and an empty alt.
	Deletion
)

func (k Kind) String() string {
	switch k {
	case Insertion:
		return "insertion"
	case Deletion:
		return "deletion"
	default:
		return "substitution"
	}
}

// Variant is a single edit against the shared source: where (BP), what
// (Alt), and which derived sequences carry it (Cov).
type Variant struct {
	BP  breakpoint.Breakpoint
	Alt string
	Cov breakpoint.Coverage
}

// New builds a Variant, rejecting a no-op edit (zero span, empty alt).
func New(bp breakpoint.Breakpoint, alt string, cov breakpoint.Coverage) (Variant, error) {
	if bp.Span() == 0 && alt == "" {
		return Variant{}, fmt.Errorf("%w: breakpoint [%d,%d) with empty alt", jsterr.ErrEmptyEdit, bp.Lo, bp.Hi)
	}
	return Variant{BP: bp, Alt: alt, Cov: cov}, nil
}

// Kind classifies the variant from its breakpoint span and alt length.
func (v Variant) Kind() Kind {
	switch {
	case v.BP.Span() == 0 && len(v.Alt) > 0:
		return Insertion
	case v.BP.Span() > 0 && len(v.Alt) == 0:
		return Deletion
	default:
		return Substitution
	}
}
