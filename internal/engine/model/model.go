package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/mathcaret/internal/engine/atom"
)

// Offset is an integer address of a tree position under the depth-first
// flattening of the document.
type Offset int

// Direction names the four caret movement directions.
type Direction uint8

const (
	// Forward moves toward the end of the document.
	Forward Direction = iota
	// Backward moves toward the start of the document.
	Backward
	// Upward moves into an Above branch.
	Upward
	// Downward moves into a Below branch.
	Downward
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Upward:
		return "upward"
	case Downward:
		return "downward"
	default:
		return "unknown"
	}
}

// IsVertical reports whether the direction is upward or downward.
func (d Direction) IsVertical() bool {
	return d == Upward || d == Downward
}

// Model holds one document tree snapshot plus the linear cursor state over
// it: Position is the moving end of the selection, Anchor the fixed end.
// Both are always within [0, LastOffset].
type Model struct {
	id   string
	root *atom.Atom

	position Offset
	anchor   Offset

	flat  []*atom.Atom
	index map[*atom.Atom]Offset
	dirty bool

	suppressed bool
}

// New creates a model over the given root. A nil root gets a fresh empty
// document. The model is assigned a unique identifier carried on every
// announcement it causes.
func New(root *atom.Atom) *Model {
	if root == nil {
		root = atom.NewRoot()
	}
	return &Model{
		id:    uuid.NewString(),
		root:  root,
		dirty: true,
	}
}

// ID returns the model's unique identifier.
func (m *Model) ID() string {
	return m.id
}

// Root returns the document root.
func (m *Model) Root() *atom.Atom {
	return m.root
}

// Position returns the current caret offset.
func (m *Model) Position() Offset {
	m.ensure()
	return m.position
}

// Anchor returns the non-moving end of the selection.
func (m *Model) Anchor() Offset {
	m.ensure()
	return m.anchor
}

// SetPosition collapses the selection onto the given offset.
// Out-of-range offsets are a contract violation and panic.
func (m *Model) SetPosition(p Offset) {
	m.ensure()
	m.check(p)
	m.position = p
	m.anchor = p
}

// SetSelection sets the anchor and position independently.
// Out-of-range offsets are a contract violation and panic.
func (m *Model) SetSelection(anchor, position Offset) {
	m.ensure()
	m.check(anchor)
	m.check(position)
	m.anchor = anchor
	m.position = position
}

// check panics when an offset is outside the valid range. Engine code must
// reject invalid targets before mutating cursor state.
func (m *Model) check(o Offset) {
	if o < 0 || o > m.lastOffset() {
		panic(fmt.Sprintf("model: offset %d outside [0, %d]", o, m.lastOffset()))
	}
}

// Selection returns the normalized selected range. Atoms whose offset falls
// in (Start, End] are selected; the range is collapsed when Start == End.
func (m *Model) Selection() Range {
	m.ensure()
	if m.anchor <= m.position {
		return Range{Start: m.anchor, End: m.position}
	}
	return Range{Start: m.position, End: m.anchor}
}

// SelectionIsCollapsed reports whether anchor and position coincide.
func (m *Model) SelectionIsCollapsed() bool {
	m.ensure()
	return m.anchor == m.position
}

// SelectionIsPlaceholder reports whether the selection covers exactly one
// atom and that atom is a placeholder.
func (m *Model) SelectionIsPlaceholder() bool {
	sel := m.Selection()
	if sel.End != sel.Start+1 {
		return false
	}
	a := m.At(sel.End)
	return a != nil && a.Type == atom.Placeholder
}

// CollapseSelection collapses a non-empty selection toward the given
// direction and reports whether anything changed. Vertical directions
// collapse backward for upward, forward for downward.
func (m *Model) CollapseSelection(d Direction) bool {
	sel := m.Selection()
	if sel.IsCollapsed() {
		return false
	}
	switch d {
	case Forward, Downward:
		m.SetPosition(sel.End)
	default:
		m.SetPosition(sel.Start)
	}
	return true
}

// ContentDidChange invalidates the offset flattening. It must be called
// after any structural mutation of the tree; offsets captured before the
// change are invalid afterward.
func (m *Model) ContentDidChange() {
	m.dirty = true
}

// SuppressNotifications runs fn with edge-of-document hook invocation and
// announcements disabled. Bulk or programmatic edits opt into this to avoid
// spurious focus changes. The previous state is restored even if fn panics.
func (m *Model) SuppressNotifications(fn func()) {
	prev := m.suppressed
	m.suppressed = true
	defer func() { m.suppressed = prev }()
	fn()
}

// NotificationsSuppressed reports whether a suppression scope is active.
func (m *Model) NotificationsSuppressed() bool {
	return m.suppressed
}

// RemoveSuggestion deletes any pending command-suggestion atoms. Directional
// movement calls this first: moving commits or abandons in-progress token
// suggestions. Reports whether anything was removed.
func (m *Model) RemoveSuggestion() bool {
	m.ensure()
	var first Offset = -1
	var doomed []*atom.Atom
	for o, a := range m.flat {
		if a.Type == atom.Command && a.Suggestion {
			if first < 0 {
				first = Offset(o)
			}
			doomed = append(doomed, a)
		}
	}
	if len(doomed) == 0 {
		return false
	}
	for _, a := range doomed {
		a.Parent().Remove(a)
	}
	m.ContentDidChange()
	m.ensure()
	pos := first - 1
	if pos < 0 {
		pos = 0
	}
	if pos > m.lastOffset() {
		pos = m.lastOffset()
	}
	m.SetPosition(pos)
	return true
}
