package atom

// Branch names an ordered child list owned by an atom. Branches are created
// lazily; the set is a closed enum so flattening order is deterministic.
type Branch uint8

const (
	// Above is the branch rendered above the atom (fraction numerator).
	Above Branch = iota
	// Body is the main branch (root contents, radicand, group contents).
	Body
	// Below is the branch rendered below the atom (fraction denominator).
	Below
	// Superscript is the raised script branch.
	Superscript
	// Subscript is the lowered script branch.
	Subscript
)

// branchOrder fixes the canonical traversal order used by the offset model.
var branchOrder = [...]Branch{Above, Body, Below, Superscript, Subscript}

// String returns the lowercase name of the branch.
func (b Branch) String() string {
	switch b {
	case Above:
		return "above"
	case Body:
		return "body"
	case Below:
		return "below"
	case Superscript:
		return "superscript"
	case Subscript:
		return "subscript"
	default:
		return "unknown"
	}
}

// Opposite returns the vertically or script-wise paired branch.
// Body has no pair and returns itself.
func (b Branch) Opposite() Branch {
	switch b {
	case Above:
		return Below
	case Below:
		return Above
	case Superscript:
		return Subscript
	case Subscript:
		return Superscript
	default:
		return b
	}
}
