package navigate

import (
	"github.com/dshills/mathcaret/internal/engine/atom"
	"github.com/dshills/mathcaret/internal/engine/model"
	"github.com/dshills/mathcaret/internal/event"
)

// Move moves the caret one step in the given direction, or extends the
// selection by one step when extend is set. Reports false exactly when
// nothing changed and the soft-fail signal was announced.
func (e *Engine) Move(d model.Direction, extend bool) bool {
	m := e.model
	m.RemoveSuggestion()

	if d.IsVertical() {
		return e.moveVertical(d, extend)
	}

	if extend {
		prev := m.Position()
		if !m.ExtendSelection(d) {
			return e.plonk()
		}
		e.announce(event.TopicSelection, prev)
		return true
	}

	// A selected placeholder plus an arrow means "move past it": collapse
	// toward the direction, then move again.
	if m.SelectionIsPlaceholder() {
		m.CollapseSelection(d)
		return e.Move(d, false)
	}

	// Collapsing a selection counts as the move.
	if !m.SelectionIsCollapsed() {
		prev := m.Position()
		m.CollapseSelection(d)
		e.announce(event.TopicMoved, prev)
		return true
	}

	prev := m.Position()
	pos := prev + 1
	if d == model.Backward {
		pos = prev - 1
	}

	if d == model.Forward {
		if a := m.At(pos); a != nil {
			if owner := a.CaptureOwner(); owner != nil {
				// Jump past the whole capturing construct.
				pos = m.CoveringRange(owner).End
			} else if a.SkipBoundary {
				pos++
			}
		}
	} else {
		if leaving := m.At(prev); leaving != nil && leaving.Type == atom.First {
			if p := leaving.Parent(); p != nil && p.SkipBoundary {
				pos--
			}
		}
		if a := m.At(pos); a != nil {
			if owner := a.CaptureOwner(); owner != nil {
				// Jump to just before the capturing construct.
				pos = m.CoveringRange(owner).Start
			}
		}
	}

	if pos < 0 || pos > m.LastOffset() {
		return e.moveOut(d)
	}

	// Placeholders are atomic selection targets, never just passed over.
	if d == model.Forward {
		if a := m.At(pos); a != nil && a.Type == atom.Placeholder {
			m.SetSelection(pos-1, pos)
			e.announce(event.TopicMoved, prev)
			return true
		}
	} else {
		if a := m.At(pos + 1); a != nil && a.Type == atom.Placeholder {
			m.SetSelection(pos+1, pos)
			e.announce(event.TopicMoved, prev)
			return true
		}
	}

	m.SetPosition(pos)
	e.announce(event.TopicMoved, prev)
	return true
}

// moveOut resolves a move that would leave the document. The host decides:
// a hook returning true lets the default soft-fail handling proceed, false
// means the host fully handled the exit.
func (e *Engine) moveOut(d model.Direction) bool {
	if e.model.NotificationsSuppressed() {
		return false
	}
	if e.hooks.MoveOut(d) {
		return e.plonk()
	}
	return true
}
