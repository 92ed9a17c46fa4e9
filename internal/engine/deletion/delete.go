// Package deletion excises atom ranges from the document. Every operation
// reduces to one primitive: derive a normalized offset range from the
// navigation engine's boundary computations, remove the covered atoms, and
// clean up structural wrappers the removal emptied.
package deletion

import (
	"github.com/dshills/mathcaret/internal/engine/atom"
	"github.com/dshills/mathcaret/internal/engine/model"
	"github.com/dshills/mathcaret/internal/engine/navigate"
	"github.com/dshills/mathcaret/internal/event"
)

// Engine executes deletion operations against one model.
type Engine struct {
	model     *model.Model
	announcer event.Announcer
}

// New creates a deletion engine over m. A nil announcer is replaced with a
// no-op sink.
func New(m *model.Model, announcer event.Announcer) *Engine {
	if announcer == nil {
		announcer = event.Nop{}
	}
	return &Engine{model: m, announcer: announcer}
}

func (e *Engine) announce(topic event.Topic, previous model.Offset) {
	if e.model.NotificationsSuppressed() {
		return
	}
	sel := e.model.Selection()
	e.announcer.Announce(event.Announcement{
		Topic:          topic,
		FieldID:        e.model.ID(),
		Previous:       int(previous),
		Position:       int(e.model.Position()),
		SelectionStart: int(sel.Start),
		SelectionEnd:   int(sel.End),
	})
}

func (e *Engine) plonk() bool {
	e.announce(event.TopicPlonk, -1)
	return false
}

// DeleteRange excises every atom covered by r and collapses the caret to
// its start. Deleting a collapsed range is a no-op that still succeeds.
// Branch sentinels are never excised directly; they disappear only with
// their owner.
func (e *Engine) DeleteRange(r model.Range) bool {
	m := e.model
	prev := m.Position()
	if r.IsCollapsed() {
		m.SetPosition(r.Start)
		return true
	}

	// Collect first: offsets are invalid once the tree changes. An atom
	// whose owner is itself covered goes with the owner.
	var doomed []*atom.Atom
	for o := r.Start + 1; o <= r.End; o++ {
		a := m.At(o)
		if a.Type == atom.First {
			continue
		}
		if ownerCovered(m, a, r) {
			continue
		}
		doomed = append(doomed, a)
	}

	owners := make(map[*atom.Atom]bool)
	for _, a := range doomed {
		owner := a.Parent()
		owner.Remove(a)
		owners[owner] = true
	}

	// A script container with nothing left in any branch is an empty
	// wrapper; drop it too.
	for owner := range owners {
		if owner.Type != atom.Script || owner.Parent() == nil {
			continue
		}
		empty := true
		for _, b := range owner.Branches() {
			if !owner.BranchIsEmpty(b) {
				empty = false
				break
			}
		}
		if empty {
			owner.Parent().Remove(owner)
		}
	}

	m.ContentDidChange()
	pos := r.Start
	if last := m.LastOffset(); pos > last {
		pos = last
	}
	m.SetPosition(pos)
	e.announce(event.TopicDeleted, prev)
	return true
}

// ownerCovered reports whether any ancestor of a falls inside r.
func ownerCovered(m *model.Model, a *atom.Atom, r model.Range) bool {
	for p := a.Parent(); p != nil && p.Parent() != nil; p = p.Parent() {
		if r.Contains(m.OffsetOf(p)) {
			return true
		}
	}
	return false
}

// Delete removes the selection, or a single unit next to the collapsed
// caret: the whole subtree of the adjacent atom. Reports false with a
// plonk at a document or branch edge.
func (e *Engine) Delete(d model.Direction) bool {
	m := e.model
	if !m.SelectionIsCollapsed() {
		return e.DeleteRange(m.Selection())
	}

	pos := m.Position()
	var target *atom.Atom
	if d == model.Forward {
		target = m.At(pos).RightSibling()
	} else {
		target = m.At(pos)
		if target != nil && target.Type == atom.First {
			target = nil
		}
	}
	if target == nil {
		return e.plonk()
	}
	return e.DeleteRange(m.CoveringRange(target))
}

// DeleteWord removes from the caret to the next word or structural
// boundary in the given direction.
func (e *Engine) DeleteWord(d model.Direction) bool {
	m := e.model
	if !m.SelectionIsCollapsed() {
		return e.DeleteRange(m.Selection())
	}
	pos := m.Position()
	boundary := navigate.SkipOffset(m, d)
	if boundary == pos {
		return e.plonk()
	}
	return e.DeleteRange(model.NewRange(pos, boundary))
}

// DeleteToGroupStart removes from the anchor back to the start of the
// sibling span containing the caret.
func (e *Engine) DeleteToGroupStart() bool {
	m := e.model
	start, _ := m.SiblingsRange(m.Position())
	if m.Anchor() == start {
		return e.plonk()
	}
	return e.DeleteRange(model.NewRange(m.Anchor(), start))
}

// DeleteToGroupEnd removes from the anchor to the end of the sibling span
// containing the caret.
func (e *Engine) DeleteToGroupEnd() bool {
	m := e.model
	_, end := m.SiblingsRange(m.Position())
	if m.Anchor() == end {
		return e.plonk()
	}
	return e.DeleteRange(model.NewRange(m.Anchor(), end))
}

// DeleteToDocumentStart removes everything from the document start to the
// anchor.
func (e *Engine) DeleteToDocumentStart() bool {
	m := e.model
	if m.Anchor() == 0 {
		return e.plonk()
	}
	return e.DeleteRange(model.NewRange(0, m.Anchor()))
}

// DeleteToDocumentEnd removes everything from the anchor to the document
// end.
func (e *Engine) DeleteToDocumentEnd() bool {
	m := e.model
	if m.Anchor() == m.LastOffset() {
		return e.plonk()
	}
	return e.DeleteRange(model.NewRange(m.Anchor(), m.LastOffset()))
}

// DeleteAll removes every atom in the document.
func (e *Engine) DeleteAll() bool {
	return e.DeleteRange(model.Range{Start: 0, End: e.model.LastOffset()})
}
