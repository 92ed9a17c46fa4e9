package navigate

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/mathcaret/internal/engine/atom"
	"github.com/dshills/mathcaret/internal/engine/model"
)

// firstRune returns the first rune of an atom's value, or utf8.RuneError
// for an empty value.
func firstRune(a *atom.Atom) rune {
	r, size := utf8.DecodeRuneInString(a.Value)
	if size == 0 {
		return utf8.RuneError
	}
	return r
}

// isTextAtom reports whether a is a text-run atom.
func isTextAtom(a *atom.Atom) bool {
	return a != nil && a.Mode == atom.TextMode && a.Type != atom.First
}

// isWordAtom reports whether a is an alphanumeric text atom. Unicode
// letter and digit classes keep mixed-script words whole.
func isWordAtom(a *atom.Atom) bool {
	if !isTextAtom(a) {
		return false
	}
	r := firstRune(a)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isSpaceAtom reports whether a is a whitespace text atom.
func isSpaceAtom(a *atom.Atom) bool {
	return isTextAtom(a) && unicode.IsSpace(firstRune(a))
}

// isInkAtom reports whether a is a non-whitespace text atom.
func isInkAtom(a *atom.Atom) bool {
	return isTextAtom(a) && !unicode.IsSpace(firstRune(a))
}

// WordBoundaryOffset computes the caret offset of the next word boundary
// in a text run, starting from pos. The starting atom is the one the caret
// is about to cross: the atom at pos+1 moving forward, at pos moving
// backward. The result is normalized to a caret offset, which costs one
// extra step when moving backward.
func WordBoundaryOffset(m *model.Model, d model.Direction, pos model.Offset) model.Offset {
	delta := model.Offset(1)
	i := pos + 1
	if d == model.Backward {
		delta = -1
		i = pos
	}

	switch start := m.At(i); {
	case isWordAtom(start):
		// Inside a word: run to its end.
		for isWordAtom(m.At(i)) {
			i += delta
		}
		if d == model.Forward {
			return i - 1
		}
		return i

	case isSpaceAtom(start):
		// In whitespace: skip it, then run through the next word.
		for isSpaceAtom(m.At(i)) {
			i += delta
		}
		if !isTextAtom(m.At(i)) {
			// Whitespace ran into the edge of the text run.
			if d == model.Forward {
				return i - 1
			}
			return i
		}
		for isInkAtom(m.At(i)) {
			i += delta
		}
		if d == model.Forward {
			return i - 1
		}
		return i

	default:
		// Punctuation: run to the end of the non-whitespace run. Any
		// whitespace beyond it does not move the boundary.
		for isInkAtom(m.At(i)) {
			i += delta
		}
		if d == model.Forward {
			return i - 1
		}
		return i
	}
}
