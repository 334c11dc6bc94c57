// Package breakpoint provides the half-open interval and coverage bitmap
// primitives everything else in jst is built on: a Breakpoint locates an
// edit on a source sequence, and a Coverage records which of the
// sequences derived from that source carry it.
package breakpoint

import (
	"fmt"

	"github.com/jjtimmons/jst/internal/jsterr"
)

// Breakpoint is a half-open, 0-based interval [Lo, Hi) on a source
// sequence. Lo is the low breakend, Hi the high breakend; Hi == Lo
// describes a pure insertion point.
type Breakpoint struct {
	Lo, Hi int
}

// New builds a Breakpoint, rejecting an inverted or negative interval.
func New(lo, hi int) (Breakpoint, error) {
	if lo < 0 || hi < lo {
		return Breakpoint{}, fmt.Errorf("%w: breakpoint [%d,%d)", jsterr.ErrInvalidCoordinate, lo, hi)
	}
	return Breakpoint{Lo: lo, Hi: hi}, nil
}

// Span is the number of source symbols the breakpoint covers (Hi - Lo).
func (bp Breakpoint) Span() int { return bp.Hi - bp.Lo }

// Validate checks the breakpoint against a source of the given length.
func (bp Breakpoint) Validate(sourceLen int) error {
	if bp.Lo < 0 || bp.Hi < bp.Lo || bp.Hi > sourceLen {
		return fmt.Errorf("%w: breakpoint [%d,%d) outside [0,%d]", jsterr.ErrInvalidCoordinate, bp.Lo, bp.Hi, sourceLen)
	}
	return nil
}

// Slice returns the zero-copy view of s described by bp. Go string
// slicing never copies the backing array, so this already satisfies the
// "zero-copy view" requirement without any extra machinery.
func Slice(s string, bp Breakpoint) string {
	return s[bp.Lo:bp.Hi]
}

// Overlaps reports whether the two breakpoints' spans intersect.
func (bp Breakpoint) Overlaps(other Breakpoint) bool {
	return bp.Lo < other.Hi && other.Lo < bp.Hi
}
