// Package navigate implements caret movement over the offset model:
// character-level moves, word and structural boundary skips, vertical
// moves across Above/Below branches, placeholder leaps, and script-branch
// entry.
//
// Every operation returns a boolean success flag and never fails for
// expected boundary conditions: a move with no effect reports false after
// announcing the soft-fail "plonk". Moves that would leave the document
// are offered to the host's hooks first; the hook's verdict becomes the
// operation's result. Contract violations (offsets outside the model's
// range reaching mutation) panic.
//
// The engine is synchronous and single-threaded. Hooks and announcement
// handlers run on the caller's goroutine and may re-enter the engine; no
// operation holds internal state across the callback.
package navigate
