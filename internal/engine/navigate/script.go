package navigate

import (
	"github.com/dshills/mathcaret/internal/engine/atom"
	"github.com/dshills/mathcaret/internal/event"
)

// MoveToSuperscript enters the superscript branch of the atom left of the
// caret, creating the branch on demand.
func (e *Engine) MoveToSuperscript() bool {
	return e.moveToScript(atom.Superscript)
}

// MoveToSubscript enters the subscript branch of the atom left of the
// caret, creating the branch on demand.
func (e *Engine) MoveToSubscript() bool {
	return e.moveToScript(atom.Subscript)
}

func (e *Engine) moveToScript(b atom.Branch) bool {
	m := e.model
	prev := m.Position()
	base := m.At(m.Position())
	if base == nil || base.Type == atom.First {
		return e.plonk()
	}
	branch := base.CreateBranch(b)
	m.ContentDidChange()
	m.SetPosition(m.OffsetOf(branch[len(branch)-1]))
	e.announce(event.TopicMoved, prev)
	return true
}

// MoveToOpposite jumps between paired branches: from a superscript to the
// owner's subscript, numerator to denominator, and vice versa, creating
// the opposite branch on demand.
func (e *Engine) MoveToOpposite() bool {
	m := e.model
	prev := m.Position()

	cur := m.At(m.Position())
	var member *atom.Atom
	for a := cur; a != nil && a.Parent() != nil; a = a.Parent() {
		switch a.ParentBranch() {
		case atom.Superscript, atom.Subscript, atom.Above, atom.Below:
			member = a
		}
		if member != nil {
			break
		}
	}
	if member == nil {
		return e.plonk()
	}

	owner := member.Parent()
	branch := owner.CreateBranch(member.ParentBranch().Opposite())
	m.ContentDidChange()
	m.SetPosition(m.OffsetOf(branch[len(branch)-1]))
	e.announce(event.TopicMoved, prev)
	return true
}
