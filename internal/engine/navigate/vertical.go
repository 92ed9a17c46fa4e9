package navigate

import (
	"github.com/dshills/mathcaret/internal/engine/atom"
	"github.com/dshills/mathcaret/internal/engine/model"
	"github.com/dshills/mathcaret/internal/event"
)

// moveVertical moves into the Above branch (upward) or Below branch
// (downward) of the nearest qualifying ancestor, creating the target
// branch on demand. At the document top the exit is delegated to the
// MoveOut hook.
func (e *Engine) moveVertical(d model.Direction, extend bool) bool {
	m := e.model
	prev := m.Position()

	collapse := model.Backward
	if d == model.Downward {
		collapse = model.Forward
	}
	m.CollapseSelection(collapse)

	// Moving up from inside anything nested under a Below branch should
	// land in the owner's Above branch, so search the ancestor chain for
	// the complementary membership rather than only the immediate branch.
	search := atom.Below
	target := atom.Above
	if d == model.Downward {
		search = atom.Above
		target = atom.Below
	}

	cur := m.At(m.Position())
	var found *atom.Atom
	for a := cur; a != nil && a.Parent() != nil; a = a.Parent() {
		if a.ParentBranch() == search {
			found = a
			break
		}
	}

	if found != nil {
		owner := found.Parent()
		if extend {
			// Deliberately asymmetric with the collapse case: the span
			// runs from the owner's left sibling through the owner.
			r := m.CoveringRange(owner)
			m.SetSelection(r.Start, r.End)
			e.announce(event.TopicSelection, prev)
			return true
		}
		branch := owner.CreateBranch(target)
		m.ContentDidChange()
		m.SetPosition(m.OffsetOf(branch[len(branch)-1]))
		e.announce(event.TopicLine, prev)
		return true
	}

	// No vertical counterpart above us. Only a top-level atom may leave
	// the document.
	atTop := cur == nil || cur.Parent() == nil || cur.Parent().Parent() == nil
	if !atTop {
		return e.plonk()
	}
	if m.NotificationsSuppressed() {
		return false
	}
	if e.hooks.MoveOut(d) {
		return e.plonk()
	}
	e.announce(event.TopicLine, prev)
	return true
}
