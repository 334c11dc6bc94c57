package journal

// Breakend is a handle to a position inside a Journal: the record it
// falls in, plus the offset within that record's segment. It is the Go
// analogue of libjst's breakend iterator pair (record, symbol offset),
// convertible to a linear offset and cheap to copy.
type Breakend struct {
	journal *Journal
	idx     int
	offset  int
}

// BreakendAt resolves an absolute derived-sequence position to a
// Breakend handle.
func (j *Journal) BreakendAt(pos int) Breakend {
	idx, offset := j.locate(pos)
	return Breakend{journal: j, idx: idx, offset: offset}
}

// Position returns the breakend's absolute offset in the derived
// sequence.
func (b Breakend) Position() int {
	return b.journal.records[b.idx].Pos + b.offset
}

// Sub returns a.Position() - b.Position().
func (a Breakend) Sub(b Breakend) int {
	return a.Position() - b.Position()
}

// Compare returns -1, 0, or 1 as a's position is less than, equal to,
// or greater than b's.
func (a Breakend) Compare(b Breakend) int {
	switch d := a.Sub(b); {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}
