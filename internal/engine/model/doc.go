// Package model maps the atom tree onto a dense linear offset space and
// holds the cursor state over it.
//
// Offsets:
//
// The tree is flattened depth-first in canonical branch order, with every
// branch's contents preceding the branch's owner. Each atom, including the
// First sentinel of every branch, occupies exactly one offset slot, so
// At and OffsetOf are mutual inverses for any atom currently in the tree.
// A caret at offset p sits immediately after the atom at p.
//
// Cursor state:
//
// Position is the moving end of the selection and Anchor the fixed end;
// both always lie in [0, LastOffset] and the derived Selection is the
// normalized range between them. Operations that would leave the range are
// rejected before any state changes.
//
// Lifecycle:
//
// The flattening is cached and rebuilt lazily after ContentDidChange.
// Offsets captured before a structural change are invalid after it; the
// rebuild clamps the cursor back into range but cannot repair stale
// offsets held by callers.
package model
