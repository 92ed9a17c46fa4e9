// Package atom defines the typed node structure of a structured document.
//
// A document is a tree of atoms. Each atom has a structural Type, a Mode
// (math or text), a rendered Value, and zero or more named branches holding
// ordered child atoms. Every branch starts with a synthetic First sentinel
// that is never deletable; it gives "before the first real atom" a stable
// slot in the offset flattening.
//
// Ownership is strictly top-down: a parent owns its branch contents. The
// Parent back-reference exists only for traversal and never implies
// ownership, so detaching a subtree is a single Remove call on its parent.
//
// Atoms are plain mutable nodes; the offset addressing over them lives in
// the model package.
package atom
