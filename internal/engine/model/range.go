package model

import "fmt"

// Range is a normalized pair of caret offsets. The atoms whose offset falls
// in (Start, End] are covered; Start == End is a collapsed (empty) range.
type Range struct {
	Start Offset
	End   Offset
}

// NewRange returns a normalized range regardless of argument order.
func NewRange(a, b Offset) Range {
	if a <= b {
		return Range{Start: a, End: b}
	}
	return Range{Start: b, End: a}
}

// IsCollapsed reports whether the range covers no atoms.
func (r Range) IsCollapsed() bool {
	return r.Start == r.End
}

// Len returns the number of covered offsets.
func (r Range) Len() int {
	return int(r.End - r.Start)
}

// Contains reports whether the atom at offset o is covered.
func (r Range) Contains(o Offset) bool {
	return o > r.Start && o <= r.End
}

// String returns a human-readable representation.
func (r Range) String() string {
	return fmt.Sprintf("(%d..%d]", r.Start, r.End)
}
