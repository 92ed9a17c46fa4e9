package navigate

import (
	"github.com/dshills/mathcaret/internal/engine/atom"
	"github.com/dshills/mathcaret/internal/engine/model"
	"github.com/dshills/mathcaret/internal/event"
)

// Leap jumps to the nearest placeholder or empty branch in the given
// direction. With no in-document candidate, the exit is offered to the
// TabOut hook and then to the host focus provider, cycling through its
// tabbable elements. Reports false with a plonk when nothing happened.
func (e *Engine) Leap(d model.Direction) bool {
	m := e.model

	// A selected placeholder means leap starts beyond it.
	if m.SelectionIsPlaceholder() {
		e.Move(d, false)
	}

	prev := m.Position()
	target, targetOffset := e.leapTarget(d)
	if target != nil {
		if target.Type == atom.Placeholder {
			m.SetSelection(targetOffset-1, targetOffset)
		} else {
			m.SetPosition(targetOffset)
		}
		e.announce(event.TopicMoved, prev)
		return true
	}

	if m.NotificationsSuppressed() {
		return false
	}
	if !e.hooks.TabOut(d) {
		return true
	}
	return e.leapFocus(d)
}

// leapTarget scans from one offset beyond the caret for the nearest
// placeholder or empty non-root branch.
func (e *Engine) leapTarget(d model.Direction) (*atom.Atom, model.Offset) {
	m := e.model
	pos := m.Position()
	if d == model.Forward {
		for o := pos + 1; o <= m.LastOffset(); o++ {
			if a := m.At(o); isLeapCandidate(a) {
				return a, o
			}
		}
		return nil, 0
	}
	for o := pos - 1; o >= 0; o-- {
		if a := m.At(o); isLeapCandidate(a) {
			return a, o
		}
	}
	return nil, 0
}

// isLeapCandidate reports whether a is a placeholder or the sentinel of an
// empty branch below the root.
func isLeapCandidate(a *atom.Atom) bool {
	if a.Type == atom.Placeholder {
		return true
	}
	if a.Type != atom.First {
		return false
	}
	p := a.Parent()
	if p == nil || p.Parent() == nil {
		return false
	}
	return p.BranchIsEmpty(a.ParentBranch())
}

// leapFocus moves host focus to the next or previous tabbable element,
// wrapping cyclically. Landing back on the first element is a no-op
// soft-fail so tabbing cannot cycle forever into the same document.
func (e *Engine) leapFocus(d model.Direction) bool {
	targets := e.focus.Tabbables()
	if len(targets) == 0 {
		return e.plonk()
	}

	idx := -1
	if cur := e.focus.Current(); cur != nil {
		for i, t := range targets {
			if t.FocusID() == cur.FocusID() {
				idx = i
				break
			}
		}
	}

	next := idx + 1
	if d == model.Backward {
		next = idx - 1
	}
	if next >= len(targets) || next < 0 {
		if !e.nav.TabWrap {
			return e.plonk()
		}
		next = (next + len(targets)) % len(targets)
	}
	if next == 0 {
		return e.plonk()
	}
	e.focus.Focus(targets[next])
	return true
}
