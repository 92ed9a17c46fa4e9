// Package event carries the side-channel announcements the engines emit:
// caret moves, selection changes, deletions, and the soft-fail "plonk".
// Announcements are feedback for accessibility and host UX; control flow
// never depends on them. Delivery is synchronous and single-threaded, and
// handlers may re-enter the engines.
package event
