// Package selection builds group and jump selection on top of the offset
// model: numeric and word group selection, sibling-span selection, and
// select/extend to group or document boundaries.
package selection

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/mathcaret/internal/engine/atom"
	"github.com/dshills/mathcaret/internal/engine/model"
	"github.com/dshills/mathcaret/internal/event"
)

// Engine executes selection operations against one model.
type Engine struct {
	model     *model.Model
	announcer event.Announcer
}

// New creates a selection engine over m. A nil announcer is replaced with
// a no-op sink.
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

// SelectGroup selects the unit around the caret: the alphanumeric word in
// text mode, the contiguous numeric run when the caret touches a number,
// and otherwise the full sibling span of the focused atom.
func (e *Engine) SelectGroup() bool {
	m := e.model
	prev := m.Position()
	pos := m.Position()
	focused := m.At(pos)
	if focused == nil {
		return e.plonk()
	}

	if focused.Mode == atom.TextMode {
		start, end := pos, pos
		for isWordAtom(m.At(start)) {
			start--
		}
		for isWordAtom(m.At(end + 1)) {
			end++
		}
		if start >= end {
			// No word here: fall back to one character.
			switch {
			case pos < m.LastOffset():
				m.SetSelection(pos, pos+1)
			case pos > 0:
				m.SetSelection(pos-1, pos)
			default:
				return e.plonk()
			}
			e.announce(event.TopicSelection, prev)
			return true
		}
		m.SetSelection(start, end)
		e.announce(event.TopicSelection, prev)
		return true
	}

	if isNumericAtom(focused) {
		start, end := pos, pos
		for isNumericAtom(m.At(start)) {
			start--
		}
		for isNumericAtom(m.At(end + 1)) {
			end++
		}
		m.SetSelection(start, end)
		e.announce(event.TopicSelection, prev)
		return true
	}

	start, end := m.SiblingsRange(pos)
	if start == end {
		return e.plonk()
	}
	m.SetSelection(start, end)
	e.announce(event.TopicSelection, prev)
	return true
}

// SelectAll selects the whole document.
func (e *Engine) SelectAll() bool {
	m := e.model
	prev := m.Position()
	if m.LastOffset() == 0 {
		return e.plonk()
	}
	m.SetSelection(0, m.LastOffset())
	e.announce(event.TopicSelection, prev)
	return true
}

// MoveToGroupStart places the caret at the start of the sibling span
// containing it, or extends the selection there.
func (e *Engine) MoveToGroupStart(extend bool) bool {
	start, _ := e.model.SiblingsRange(e.model.Position())
	return e.jump(start, extend)
}

// MoveToGroupEnd places the caret at the end of the sibling span
// containing it, or extends the selection there.
func (e *Engine) MoveToGroupEnd(extend bool) bool {
	_, end := e.model.SiblingsRange(e.model.Position())
	return e.jump(end, extend)
}

// MoveToDocumentStart places the caret at offset zero, or extends the
// selection there.
func (e *Engine) MoveToDocumentStart(extend bool) bool {
	return e.jump(0, extend)
}

// MoveToDocumentEnd places the caret at the last offset, or extends the
// selection there.
func (e *Engine) MoveToDocumentEnd(extend bool) bool {
	return e.jump(e.model.LastOffset(), extend)
}

// jump moves or extends to the given offset, reporting false with a plonk
// when the cursor state would not change.
func (e *Engine) jump(target model.Offset, extend bool) bool {
	m := e.model
	prev := m.Position()
	if extend {
		if m.Position() == target {
			return e.plonk()
		}
		m.SetSelection(m.Anchor(), target)
		e.announce(event.TopicSelection, prev)
		return true
	}
	if m.SelectionIsCollapsed() && m.Position() == target {
		return e.plonk()
	}
	m.SetPosition(target)
	e.announce(event.TopicMoved, prev)
	return true
}

// isWordAtom reports whether a is an alphanumeric text atom.
func isWordAtom(a *atom.Atom) bool {
	if a == nil || a.Mode != atom.TextMode || a.Type == atom.First {
		return false
	}
	r, size := utf8.DecodeRuneInString(a.Value)
	if size == 0 {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isNumericAtom reports whether a continues a numeric run: a digit, a
// thousands comma, or a decimal point.
func isNumericAtom(a *atom.Atom) bool {
	if a == nil || a.Mode == atom.TextMode || a.Type == atom.First {
		return false
	}
	r, size := utf8.DecodeRuneInString(a.Value)
	if size == 0 {
		return false
	}
	return unicode.IsDigit(r) || r == ',' || r == '.'
}
