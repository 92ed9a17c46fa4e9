package navigate

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/mathcaret/internal/engine/atom"
	"github.com/dshills/mathcaret/internal/engine/model"
	"github.com/dshills/mathcaret/internal/event"
)

// Skip moves the caret to the next word or structural boundary in the
// given direction, or extends the selection to it. A live command
// suggestion to the right of the caret is accepted whole instead. Reports
// false with a plonk when there is nothing to skip to.
func (e *Engine) Skip(d model.Direction, extend bool) bool {
	m := e.model
	prev := m.Position()
	if !extend && !m.SelectionIsCollapsed() {
		m.CollapseSelection(d)
	}
	pos := m.Position()

	target := pos
	if d == model.Forward {
		if cur := m.At(pos); cur != nil {
			if adj := cur.RightSibling(); adj != nil && adj.Type == atom.Command && adj.Suggestion {
				target = acceptSuggestion(m, adj)
			}
		}
	}
	if target == pos {
		target = SkipOffset(m, d)
	}

	if target < 0 {
		target = 0
	}
	if last := m.LastOffset(); target > last {
		target = last
	}
	if target == pos {
		return e.plonk()
	}

	if extend {
		m.SetSelection(m.Anchor(), target)
		e.announce(event.TopicSelection, prev)
	} else {
		m.SetPosition(target)
		e.announce(event.TopicMoved, prev)
	}
	return true
}

// acceptSuggestion clears the suggestion flags of the contiguous run
// starting at first and returns the offset of its last atom.
func acceptSuggestion(m *model.Model, first *atom.Atom) model.Offset {
	last := first
	for a := first; a != nil && a.Type == atom.Command && a.Suggestion; a = a.RightSibling() {
		a.Suggestion = false
		last = a
	}
	return m.OffsetOf(last)
}

// SkipOffset computes the boundary-skip target for the model's current
// position without mutating any state. It returns the current position
// when no skip is possible. Deletion reuses this to derive word ranges.
func SkipOffset(m *model.Model, d model.Direction) model.Offset {
	pos := m.Position()
	cur := m.At(pos)
	if cur == nil {
		return pos
	}

	if d == model.Forward {
		adj := cur.RightSibling()
		if adj == nil {
			return pos
		}
		switch {
		case adj.Mode == atom.TextMode:
			return WordBoundaryOffset(m, d, pos)
		case adj.Type == atom.Command:
			return skipCommandRun(m, d, pos)
		case adj.Type == atom.OpenFence:
			return skipFenceForward(m, adj)
		default:
			return skipMathRunForward(m, adj)
		}
	}

	switch {
	case cur.Type == atom.First:
		return skipSentinelRun(m, pos)
	case cur.Mode == atom.TextMode:
		return WordBoundaryOffset(m, d, pos)
	case cur.Type == atom.Command:
		return skipCommandRun(m, d, pos)
	case cur.Type == atom.CloseFence:
		return skipFenceBackward(m, cur)
	default:
		return skipMathRunBackward(m, cur)
	}
}

// skipSentinelRun walks backward through consecutive First sentinels to
// the true start of the enclosing run of empty branches.
func skipSentinelRun(m *model.Model, pos model.Offset) model.Offset {
	o := pos
	for o > 0 {
		a := m.At(o)
		if a == nil || a.Type != atom.First {
			break
		}
		o--
	}
	return o
}

// isCommandChar reports whether a command-token value continues a command
// name run: a single alphabetic rune or "*".
func isCommandChar(value string) bool {
	r, size := utf8.DecodeRuneInString(value)
	if size == 0 || size != len(value) {
		return false
	}
	return unicode.IsLetter(r) || r == '*'
}

// skipCommandRun walks contiguous alphabetic/star command-token atoms in
// the given direction.
func skipCommandRun(m *model.Model, d model.Direction, pos model.Offset) model.Offset {
	if d == model.Forward {
		var last *atom.Atom
		for a := m.At(pos).RightSibling(); a != nil && a.Type == atom.Command && isCommandChar(a.Value); a = a.RightSibling() {
			last = a
		}
		if last == nil {
			return pos
		}
		return m.OffsetOf(last)
	}

	var first *atom.Atom
	for a := m.At(pos); a != nil && a.Type == atom.Command && isCommandChar(a.Value); a = a.LeftSibling() {
		first = a
	}
	if first == nil {
		return pos
	}
	return m.OffsetOf(first) - 1
}

// skipFenceForward balance-skips from an open fence: walk siblings keeping
// a nesting counter until it returns to zero, landing just before the
// matching close fence. Hitting the branch edge lands on its last atom.
func skipFenceForward(m *model.Model, open *atom.Atom) model.Offset {
	depth := 0
	cur := open
	for {
		switch cur.Type {
		case atom.OpenFence:
			depth++
		case atom.CloseFence:
			depth--
		}
		if depth == 0 {
			return m.OffsetOf(cur) - 1
		}
		next := cur.RightSibling()
		if next == nil {
			return m.OffsetOf(cur)
		}
		cur = next
	}
}

// skipFenceBackward balance-skips from a close fence, landing just before
// the matching open fence. Hitting the branch edge lands at its start.
func skipFenceBackward(m *model.Model, close *atom.Atom) model.Offset {
	depth := 0
	cur := close
	for {
		switch cur.Type {
		case atom.CloseFence:
			depth++
		case atom.OpenFence:
			depth--
		}
		if depth == 0 {
			return m.CoveringRange(cur).Start
		}
		prev := cur.LeftSibling()
		if prev == nil || prev.Type == atom.First {
			return m.OffsetOf(cur.FirstSibling())
		}
		cur = prev
	}
}

// boundaryClass returns the classification skip uses to decide where a
// run of atoms ends. A script container is classified by its base: the
// nearest non-script left sibling.
func boundaryClass(a *atom.Atom) atom.Type {
	if a.Type != atom.Script {
		return a.Type
	}
	base := a.LeftSibling()
	for base != nil && base.Type == atom.Script {
		base = base.LeftSibling()
	}
	if base == nil || base.Type == atom.First {
		return atom.Script
	}
	return base.Type
}

// skipMathRunForward walks right siblings while their boundary class
// matches the starting atom's, treating script containers as transparent.
func skipMathRunForward(m *model.Model, start *atom.Atom) model.Offset {
	class := boundaryClass(start)
	cur := start
	for {
		next := cur.RightSibling()
		if next == nil {
			break
		}
		if next.Type == atom.Script {
			cur = next
			continue
		}
		if boundaryClass(next) != class {
			break
		}
		cur = next
	}
	return m.OffsetOf(cur)
}

// skipMathRunBackward is the mirror walk, landing just before the first
// atom of the run.
func skipMathRunBackward(m *model.Model, start *atom.Atom) model.Offset {
	class := boundaryClass(start)
	cur := start
	for {
		prev := cur.LeftSibling()
		if prev == nil || prev.Type == atom.First {
			break
		}
		if prev.Type == atom.Script {
			cur = prev
			continue
		}
		if boundaryClass(prev) != class {
			break
		}
		cur = prev
	}
	return m.CoveringRange(cur).Start
}
