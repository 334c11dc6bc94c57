// Package journal implements the inline sequence journal (spec.md §4.2):
// an ordered, gap-free list of segments that together spell a single
// derived sequence, with an edit operation that installs a
// substitution/insertion/deletion by splitting the affected records and
// splicing in the new content. Each edit rebuilds the record list and
// shifts every later position, so it costs O(n) in the number of
// records.
//
// Record is a direct port of libjst's inline_sequence_journal::record,
// see _examples/original_source/libjst/libjst/journal/inline_sequence_journal.hpp.
package journal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jjtimmons/jst/internal/breakpoint"
	"github.com/jjtimmons/jst/internal/jsterr"
)

// Record is one entry of the journal: Seg, spelled starting at Pos in
// the derived sequence's own coordinate space. Seg is either a slice of
// the original source (a "reference run") or a literal alt string
// installed by an earlier edit.
type Record struct {
	Pos int
	Seg string
}

// Journal holds the evolving spelling of one sequence derived from a
// shared source by a series of edits. The final entry is always an
// empty sentinel marking the end of the derived sequence; Size and the
// iteration helpers below exclude it, matching the original's
// `_journal.end() - 1`.
type Journal struct {
	source  string
	records []Record
}

// New builds a journal over source with no edits applied yet.
func New(source string) *Journal {
	j := &Journal{source: source}
	if len(source) > 0 {
		j.records = append(j.records, Record{Pos: 0, Seg: source})
	}
	j.records = append(j.records, Record{Pos: len(source), Seg: ""})
	j.checkInvariants()
	return j
}

// Source returns the original, unedited source sequence.
func (j *Journal) Source() string { return j.source }

// Size is the number of real (non-sentinel) records.
func (j *Journal) Size() int { return len(j.records) - 1 }

// Empty reports whether the journal has no real records.
func (j *Journal) Empty() bool { return j.Size() == 0 }

// Len is the length of the derived sequence spelled by this journal.
func (j *Journal) Len() int { return j.records[len(j.records)-1].Pos }

// Sequence materializes the full derived sequence. O(n) in its length.
func (j *Journal) Sequence() string {
	var b strings.Builder
	for _, r := range j.records[:j.Size()] {
		b.WriteString(r.Seg)
	}
	return b.String()
}

// LowerBound returns the index of the first non-sentinel record whose
// Pos is >= key, or Size() if none qualifies.
func (j *Journal) LowerBound(key int) int {
	n := j.Size()
	return sort.Search(n, func(i int) bool { return j.records[i].Pos >= key })
}

// UpperBound returns the index of the first non-sentinel record whose
// Pos is > key, or Size() if none qualifies.
func (j *Journal) UpperBound(key int) int {
	n := j.Size()
	return sort.Search(n, func(i int) bool { return j.records[i].Pos > key })
}

// Find returns the index of the record containing key: the last
// non-sentinel record with Pos <= key. Callers must not call Find on an
// empty journal.
func (j *Journal) Find(key int) int {
	return j.UpperBound(key) - 1
}

// locate finds the record (including the sentinel) whose span contains
// pos, returning its index and the offset of pos within that record's
// segment. Unlike the exported LowerBound/UpperBound/Find family this
// considers the sentinel too, since Record needs to be able to target
// the very end of the derived sequence.
func (j *Journal) locate(pos int) (idx, offset int) {
	idx = sort.Search(len(j.records), func(i int) bool { return j.records[i].Pos > pos }) - 1
	if idx < 0 {
		idx = 0
	}
	offset = pos - j.records[idx].Pos
	return idx, offset
}

func splitRecord(rec Record, offset int) (prefix, suffix Record) {
	prefix = Record{Pos: rec.Pos, Seg: rec.Seg[:offset]}
	suffix = Record{Pos: rec.Pos + offset, Seg: rec.Seg[offset:]}
	return prefix, suffix
}

// Record installs the edit described by bp (a half-open range in the
// journal's CURRENT derived-sequence coordinates) and alt (the
// replacement content; empty for a pure deletion). It returns the index
// of the first record not before the edited region: the freshly
// inserted alt record when alt is non-empty, or the record that now
// picks up immediately after the deletion otherwise.
//
// The algorithm mirrors inline_sequence_journal::record_inline exactly:
// split the records straddling the low and high breakends, keep the
// live prefix/suffix fragments, splice the new content in between, and
// shift every later record's Pos by (len(alt) - span).
func (j *Journal) Record(bp breakpoint.Breakpoint, alt string) (int, error) {
	lo, hi := bp.Lo, bp.Hi
	n := j.Len()
	if lo < 0 || hi < lo || hi > n {
		return 0, fmt.Errorf("%w: breakpoint [%d,%d) outside [0,%d]", jsterr.ErrInvalidCoordinate, lo, hi, n)
	}
	deletionSize := hi - lo
	insertionSize := len(alt)
	if deletionSize == 0 && insertionSize == 0 {
		return 0, jsterr.ErrEmptyEdit
	}

	loRec, loOff := j.locate(lo)
	hiRec, hiOff := j.locate(hi)

	lowPrefix, lowSuffix := splitRecord(j.records[loRec], loOff)
	_, highSuffix := splitRecord(j.records[hiRec], hiOff)

	var middle []Record
	if lowPrefix.Seg != "" {
		middle = append(middle, lowPrefix)
	}
	if insertionSize > 0 {
		middle = append(middle, Record{Pos: lowSuffix.Pos, Seg: alt})
	}

	rebuilt := make([]Record, 0, len(j.records)+len(middle))
	rebuilt = append(rebuilt, j.records[:loRec]...)
	rebuilt = append(rebuilt, middle...)
	highSuffixIdx := len(rebuilt)
	rebuilt = append(rebuilt, highSuffix)
	rebuilt = append(rebuilt, j.records[hiRec+1:]...)

	j.records = rebuilt
	j.shiftFrom(highSuffixIdx, insertionSize-deletionSize)
	j.normalize()
	j.checkInvariants()

	target, _ := j.locate(lo)
	return target, nil
}

// shiftFrom adds delta to the Pos of every record from idx onward
// (inclusive), including the sentinel.
func (j *Journal) shiftFrom(idx, delta int) {
	if delta == 0 {
		return
	}
	for i := idx; i < len(j.records); i++ {
		j.records[i].Pos += delta
	}
}

// normalize drops interior records left empty by an edit. The trailing
// sentinel is always kept even though it is itself empty.
func (j *Journal) normalize() {
	last := len(j.records) - 1
	filtered := j.records[:0:0]
	for i, r := range j.records {
		if i != last && r.Seg == "" {
			continue
		}
		filtered = append(filtered, r)
	}
	j.records = filtered
}

// checkInvariants panics if the journal's gap-free, sentinel-terminated
// structure has been violated. Per spec.md §7 this is a fatal,
// non-recoverable bug class, not a reportable error.
func (j *Journal) checkInvariants() {
	if len(j.records) == 0 || j.records[0].Pos != 0 {
		panic(fmt.Errorf("%w: journal does not start at position 0", jsterr.ErrInvariantViolated))
	}
	for i := 0; i < len(j.records)-1; i++ {
		if j.records[i].Pos+len(j.records[i].Seg) != j.records[i+1].Pos {
			panic(fmt.Errorf("%w: records %d and %d are not adjacent", jsterr.ErrInvariantViolated, i, i+1))
		}
	}
}
