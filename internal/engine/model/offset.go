package model

import (
	"fmt"
	"iter"

	"github.com/dshills/mathcaret/internal/engine/atom"
)

// ensure rebuilds the flattening if the tree shape changed since the last
// query, clamping the cursor back into the valid range.
func (m *Model) ensure() {
	if !m.dirty {
		return
	}
	m.flat = m.flat[:0]
	m.index = make(map[*atom.Atom]Offset)
	m.flatten(m.root)
	for i, a := range m.flat {
		m.index[a] = Offset(i)
	}
	m.dirty = false

	last := m.lastOffset()
	if m.position > last {
		m.position = last
	}
	if m.anchor > last {
		m.anchor = last
	}
}

// flatten appends the contents of every branch of a in canonical order,
// each child's subtree before the child itself. The argument atom is not
// appended; the root therefore owns offset space without occupying it.
func (m *Model) flatten(a *atom.Atom) {
	for _, b := range a.Branches() {
		for _, child := range a.Branch(b) {
			m.flatten(child)
			m.flat = append(m.flat, child)
		}
	}
}

func (m *Model) lastOffset() Offset {
	return Offset(len(m.flat) - 1)
}

// LastOffset returns the offset of the final atom in the flattening.
func (m *Model) LastOffset() Offset {
	m.ensure()
	return m.lastOffset()
}

// At returns the atom at the given offset, or nil when the offset is
// outside [0, LastOffset]. Out-of-range is a signal, not an error.
func (m *Model) At(o Offset) *atom.Atom {
	m.ensure()
	if o < 0 || o > m.lastOffset() {
		return nil
	}
	return m.flat[o]
}

// OffsetOf returns the offset of an atom currently in the tree. Asking for
// a detached atom or the root is a contract violation and panics.
func (m *Model) OffsetOf(a *atom.Atom) Offset {
	m.ensure()
	o, ok := m.index[a]
	if !ok {
		panic(fmt.Sprintf("model: %s atom is not in the tree", a.Type))
	}
	return o
}

// SiblingsRange returns the full sibling span containing the given offset:
// the offsets of the branch's sentinel and of its last atom. As a Range it
// covers every real sibling in the branch.
func (m *Model) SiblingsRange(o Offset) (Offset, Offset) {
	a := m.At(o)
	if a == nil {
		panic(fmt.Sprintf("model: offset %d outside [0, %d]", o, m.lastOffset()))
	}
	first := a.FirstSibling()
	last := a.LastSibling()
	if first == nil || last == nil {
		return 0, m.lastOffset()
	}
	return m.OffsetOf(first), m.OffsetOf(last)
}

// BranchRange returns the span of a named branch under the atom at the
// given offset, or (-1, -1) when the branch does not exist.
func (m *Model) BranchRange(o Offset, b atom.Branch) (Offset, Offset) {
	a := m.At(o)
	if a == nil {
		panic(fmt.Sprintf("model: offset %d outside [0, %d]", o, m.lastOffset()))
	}
	branch := a.Branch(b)
	if len(branch) == 0 {
		return -1, -1
	}
	return m.OffsetOf(branch[0]), m.OffsetOf(branch[len(branch)-1])
}

// CoveringRange returns the range that covers the given atom together with
// all of its branch contents. Because children precede their parent in the
// flattening, the subtree occupies the contiguous block ending at the
// atom's own offset.
func (m *Model) CoveringRange(a *atom.Atom) Range {
	end := m.OffsetOf(a)
	return Range{Start: end - Offset(subtreeSize(a)), End: end}
}

// subtreeSize counts the flattening slots occupied by a and its branches.
func subtreeSize(a *atom.Atom) int {
	n := 1
	for _, b := range a.Branches() {
		for _, child := range a.Branch(b) {
			n += subtreeSize(child)
		}
	}
	return n
}

// AllAtoms returns a lazy traversal of atoms from the given offset to the
// end of the document in flattening order. Callers wanting the reverse
// order collect and reverse the sequence.
func (m *Model) AllAtoms(from Offset) iter.Seq[*atom.Atom] {
	m.ensure()
	return func(yield func(*atom.Atom) bool) {
		if from < 0 {
			from = 0
		}
		for o := from; o <= m.lastOffset(); o++ {
			if !yield(m.flat[o]) {
				return
			}
		}
	}
}
