package atom

import "fmt"

// Type classifies an atom. The set is closed: navigation and deletion
// decide behavior by switching on it, so exhaustiveness is checkable.
type Type uint8

const (
	// First is the synthetic sentinel occupying slot 0 of every branch.
	// It represents "before the first real atom" and is never deletable.
	First Type = iota
	// Ordinary is a plain symbol (letter, digit, decimal point).
	Ordinary
	// Operator is a binary or relational operator.
	Operator
	// OpenFence is an opening delimiter such as "(".
	OpenFence
	// CloseFence is a closing delimiter such as ")".
	CloseFence
	// Punctuation is a separator such as "," or ";".
	Punctuation
	// Placeholder is an empty slot intended to be selected and replaced.
	Placeholder
	// Script is a standalone super/subscript container whose base is its
	// left sibling.
	Script
	// Fraction holds a numerator (Above) and denominator (Below).
	Fraction
	// Radical holds its radicand in the Body branch.
	Radical
	// Group is a generic wrapper around a Body branch.
	Group
	// Text is a single character of a text run.
	Text
	// Command is one character of an in-progress textual command name.
	Command
)

// String returns the lowercase name of the type.
func (t Type) String() string {
	switch t {
	case First:
		return "first"
	case Ordinary:
		return "ordinary"
	case Operator:
		return "operator"
	case OpenFence:
		return "open-fence"
	case CloseFence:
		return "close-fence"
	case Punctuation:
		return "punctuation"
	case Placeholder:
		return "placeholder"
	case Script:
		return "script"
	case Fraction:
		return "fraction"
	case Radical:
		return "radical"
	case Group:
		return "group"
	case Text:
		return "text"
	case Command:
		return "command"
	default:
		return "unknown"
	}
}

// Mode distinguishes math content from text runs.
type Mode uint8

const (
	// Math is the default rendering mode.
	Math Mode = iota
	// TextMode marks atoms belonging to a text run.
	TextMode
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	if m == TextMode {
		return "text"
	}
	return "math"
}

// Atom is one node of the document tree. Ownership is strictly top-down:
// a parent owns the contents of its branches. The parent link is a
// non-owning back-reference used only for traversal.
type Atom struct {
	// Type is the structural class of the atom.
	Type Type
	// Mode is math or text.
	Mode Mode
	// Value is the rendered content, usually a single character.
	Value string

	// CaptureSelection makes directional movement jump over this atom's
	// branches as one unit instead of stepping through them.
	CaptureSelection bool
	// SkipBoundary makes directional movement advance one extra offset
	// when crossing into or out of this atom's branches.
	SkipBoundary bool
	// Suggestion marks a Command atom that is part of a live, not yet
	// accepted command suggestion.
	Suggestion bool

	parent       *Atom
	parentBranch Branch
	branches     map[Branch][]*Atom
}

// New creates an atom of the given type, mode and value.
func New(t Type, m Mode, value string) *Atom {
	return &Atom{Type: t, Mode: m, Value: value}
}

// NewRoot creates a document root: a Group atom with an empty Body branch.
func NewRoot() *Atom {
	root := New(Group, Math, "")
	root.CreateBranch(Body)
	return root
}

// newFirst creates the sentinel placed at slot 0 of a branch.
func newFirst(m Mode) *Atom {
	return New(First, m, "")
}

// Parent returns the owning atom, or nil for the root.
func (a *Atom) Parent() *Atom {
	return a.parent
}

// ParentBranch returns the branch of the parent that holds this atom.
// Meaningless for the root.
func (a *Atom) ParentBranch() Branch {
	return a.parentBranch
}

// IsRoot reports whether the atom has no parent.
func (a *Atom) IsRoot() bool {
	return a.parent == nil
}

// HasBranch reports whether the named branch exists, without creating it.
func (a *Atom) HasBranch(b Branch) bool {
	_, ok := a.branches[b]
	return ok
}

// Branch returns the named branch's atoms, or nil if it was never created.
// The returned slice is owned by the atom and must not be mutated directly.
func (a *Atom) Branch(b Branch) []*Atom {
	return a.branches[b]
}

// BranchIsEmpty reports whether the named branch holds no real atoms.
// A missing branch and a branch containing only its sentinel are both empty.
func (a *Atom) BranchIsEmpty(b Branch) bool {
	return len(a.branches[b]) <= 1
}

// CreateBranch returns the named branch, creating it with its sentinel if
// needed. Creating an existing branch is a no-op returning the existing one.
func (a *Atom) CreateBranch(b Branch) []*Atom {
	if existing, ok := a.branches[b]; ok {
		return existing
	}
	if a.branches == nil {
		a.branches = make(map[Branch][]*Atom, 1)
	}
	sentinel := newFirst(a.Mode)
	sentinel.parent = a
	sentinel.parentBranch = b
	a.branches[b] = []*Atom{sentinel}
	return a.branches[b]
}

// Append adds child to the end of the named branch, creating the branch if
// needed, and takes ownership of it.
func (a *Atom) Append(b Branch, child *Atom) {
	a.CreateBranch(b)
	child.parent = a
	child.parentBranch = b
	a.branches[b] = append(a.branches[b], child)
}

// AppendAll adds each child to the end of the named branch.
func (a *Atom) AppendAll(b Branch, children ...*Atom) {
	for _, c := range children {
		a.Append(b, c)
	}
}

// Remove detaches child from the branch that holds it. Removing the First
// sentinel is a contract violation and panics.
func (a *Atom) Remove(child *Atom) {
	if child.Type == First {
		panic("atom: cannot remove a branch sentinel")
	}
	list := a.branches[child.parentBranch]
	for i, c := range list {
		if c == child {
			a.branches[child.parentBranch] = append(list[:i], list[i+1:]...)
			child.parent = nil
			return
		}
	}
	panic(fmt.Sprintf("atom: %s atom is not a child of its recorded parent", child.Type))
}

// Branches returns the branches that exist on this atom, in canonical order.
func (a *Atom) Branches() []Branch {
	if len(a.branches) == 0 {
		return nil
	}
	out := make([]Branch, 0, len(a.branches))
	for _, b := range branchOrder {
		if _, ok := a.branches[b]; ok {
			out = append(out, b)
		}
	}
	return out
}

// siblings returns the branch list this atom lives in, or nil for the root.
func (a *Atom) siblings() []*Atom {
	if a.parent == nil {
		return nil
	}
	return a.parent.branches[a.parentBranch]
}

// siblingIndex returns the atom's index within its branch, or -1 for the root.
func (a *Atom) siblingIndex() int {
	for i, c := range a.siblings() {
		if c == a {
			return i
		}
	}
	return -1
}

// FirstSibling returns the first atom of the owning branch (the sentinel).
func (a *Atom) FirstSibling() *Atom {
	sibs := a.siblings()
	if len(sibs) == 0 {
		return nil
	}
	return sibs[0]
}

// LastSibling returns the last atom of the owning branch.
func (a *Atom) LastSibling() *Atom {
	sibs := a.siblings()
	if len(sibs) == 0 {
		return nil
	}
	return sibs[len(sibs)-1]
}

// LeftSibling returns the atom before this one in its branch, or nil.
func (a *Atom) LeftSibling() *Atom {
	i := a.siblingIndex()
	if i <= 0 {
		return nil
	}
	return a.siblings()[i-1]
}

// RightSibling returns the atom after this one in its branch, or nil.
func (a *Atom) RightSibling() *Atom {
	i := a.siblingIndex()
	sibs := a.siblings()
	if i < 0 || i+1 >= len(sibs) {
		return nil
	}
	return sibs[i+1]
}

// IsFirstSibling reports whether this atom is its branch's sentinel.
func (a *Atom) IsFirstSibling() bool {
	return a.siblingIndex() == 0
}

// IsLastSibling reports whether this atom is the last of its branch.
func (a *Atom) IsLastSibling() bool {
	sibs := a.siblings()
	return len(sibs) > 0 && sibs[len(sibs)-1] == a
}

// CaptureOwner returns the nearest strict ancestor that declares
// CaptureSelection, or nil if the atom is not inside a capturing branch.
func (a *Atom) CaptureOwner() *Atom {
	for p := a.parent; p != nil; p = p.parent {
		if p.CaptureSelection {
			return p
		}
	}
	return nil
}

// String returns a short debug representation.
func (a *Atom) String() string {
	if a.Value == "" {
		return a.Type.String()
	}
	return fmt.Sprintf("%s(%q)", a.Type, a.Value)
}
