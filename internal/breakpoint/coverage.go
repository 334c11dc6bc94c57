package breakpoint

import (
	"fmt"
	"math/bits"

	"github.com/jjtimmons/jst/internal/jsterr"
)

// Coverage is a per-sequence membership bitmap: bit i set means sequence
// i in the domain carries whatever this coverage is attached to (a
// variant, an edge, a path). It is stored word-parallel so that the set
// operations below cost O(domain/64), not O(domain).
//
// No bitset library turned up anywhere in the retrieved examples, so
// this stays on the standard library (math/bits for popcount).
type Coverage struct {
	domain int
	words  []uint64
}

func wordCount(domain int) int {
	if domain <= 0 {
		return 0
	}
	return (domain + 63) / 64
}

// NewCoverage returns a Coverage over domain sequences with every bit
// clear.
func NewCoverage(domain int) Coverage {
	return Coverage{domain: domain, words: make([]uint64, wordCount(domain))}
}

// NewCoverageAll returns a Coverage over domain sequences with every bit
// set (the root path's initial coverage).
func NewCoverageAll(domain int) Coverage {
	c := NewCoverage(domain)
	for i := range c.words {
		c.words[i] = ^uint64(0)
	}
	c.maskTail()
	return c
}

// NewCoverageFromBits builds a Coverage from an explicit 0/1-per-index
// list, mainly useful for test fixtures mirroring the spec's coverage
// vectors (e.g. [1,1,0,0]).
func NewCoverageFromBits(bits01 ...int) Coverage {
	c := NewCoverage(len(bits01))
	for i, b := range bits01 {
		if b != 0 {
			c.Set(i)
		}
	}
	return c
}

// maskTail clears any bits beyond domain in the final word, so PopCount
// and Any never see stray high bits from a domain that isn't a multiple
// of 64.
func (c *Coverage) maskTail() {
	if c.domain == 0 || len(c.words) == 0 {
		return
	}
	rem := c.domain % 64
	if rem == 0 {
		return
	}
	last := len(c.words) - 1
	c.words[last] &= (uint64(1) << rem) - 1
}

// Domain is the number of sequences this coverage is defined over.
func (c Coverage) Domain() int { return c.domain }

// Test reports whether sequence i is a member.
func (c Coverage) Test(i int) bool {
	if i < 0 || i >= c.domain {
		return false
	}
	return c.words[i/64]&(uint64(1)<<(uint(i)%64)) != 0
}

// Set marks sequence i as a member.
func (c Coverage) Set(i int) {
	if i < 0 || i >= c.domain {
		return
	}
	c.words[i/64] |= uint64(1) << (uint(i) % 64)
}

// Clone returns an independent copy.
func (c Coverage) Clone() Coverage {
	out := Coverage{domain: c.domain, words: make([]uint64, len(c.words))}
	copy(out.words, c.words)
	return out
}

// Any reports whether at least one sequence is a member.
func (c Coverage) Any() bool {
	for _, w := range c.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// PopCount returns the number of member sequences.
func (c Coverage) PopCount() int {
	n := 0
	for _, w := range c.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Equal reports whether two coverages over the same domain have
// identical membership.
func (c Coverage) Equal(other Coverage) bool {
	if c.domain != other.domain {
		return false
	}
	for i := range c.words {
		if c.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

func checkDomain(a, b Coverage) error {
	if a.domain != b.domain {
		return fmt.Errorf("%w: %d vs %d", jsterr.ErrDomainMismatch, a.domain, b.domain)
	}
	return nil
}

// Intersect returns a ∩ b. Both must share a domain.
func Intersect(a, b Coverage) (Coverage, error) {
	if err := checkDomain(a, b); err != nil {
		return Coverage{}, err
	}
	out := NewCoverage(a.domain)
	for i := range out.words {
		out.words[i] = a.words[i] & b.words[i]
	}
	return out, nil
}

// Difference returns a \ b (members of a that are not members of b).
func Difference(a, b Coverage) (Coverage, error) {
	if err := checkDomain(a, b); err != nil {
		return Coverage{}, err
	}
	out := NewCoverage(a.domain)
	for i := range out.words {
		out.words[i] = a.words[i] &^ b.words[i]
	}
	return out, nil
}

// Union returns a ∪ b.
func Union(a, b Coverage) (Coverage, error) {
	if err := checkDomain(a, b); err != nil {
		return Coverage{}, err
	}
	out := NewCoverage(a.domain)
	for i := range out.words {
		out.words[i] = a.words[i] | b.words[i]
	}
	return out, nil
}

// Bytes packs the coverage into a little-endian byte slice, one bit per
// sequence, for the binary container format.
func (c Coverage) Bytes() []byte {
	buf := make([]byte, len(c.words)*8)
	for i, w := range c.words {
		for b := 0; b < 8; b++ {
			buf[i*8+b] = byte(w >> (8 * b))
		}
	}
	return buf
}

// CoverageFromBytes reconstructs a Coverage of the given domain from the
// packed form produced by Bytes.
func CoverageFromBytes(domain int, data []byte) (Coverage, error) {
	c := NewCoverage(domain)
	want := len(c.words) * 8
	if len(data) < want {
		return Coverage{}, fmt.Errorf("%w: coverage payload too short (%d < %d)", jsterr.ErrMalformedContainer, len(data), want)
	}
	for i := range c.words {
		var w uint64
		for b := 0; b < 8; b++ {
			w |= uint64(data[i*8+b]) << (8 * b)
		}
		c.words[i] = w
	}
	c.maskTail()
	return c, nil
}
