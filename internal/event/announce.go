package event

// Topic identifies a kind of caret announcement.
type Topic string

// Announcement topics.
const (
	// TopicMoved is announced after the caret position changes.
	TopicMoved Topic = "caret.moved"

	// TopicSelection is announced after the selection is extended or replaced.
	TopicSelection Topic = "caret.selection"

	// TopicPlonk is the soft-fail signal: a requested navigation had no
	// effect. It is feedback, never control flow.
	TopicPlonk Topic = "caret.plonk"

	// TopicLine is announced for vertical moves and handled line exits.
	TopicLine Topic = "caret.line"

	// TopicDeleted is announced after atoms are excised.
	TopicDeleted Topic = "caret.deleted"
)

// Announcement is a fire-and-forget notification emitted by the engines.
// Offsets are snapshots taken at emission time.
type Announcement struct {
	// Topic is the kind of announcement.
	Topic Topic

	// FieldID identifies the model that emitted the announcement.
	FieldID string

	// Previous is the caret offset before the operation, -1 when the
	// topic carries no previous position.
	Previous int

	// Position is the caret offset after the operation.
	Position int

	// SelectionStart and SelectionEnd are the normalized selection range
	// after the operation.
	SelectionStart int
	SelectionEnd   int
}

// Announcer consumes announcements for accessibility or host feedback.
type Announcer interface {
	Announce(a Announcement)
}

// Nop is an Announcer that discards everything.
type Nop struct{}

// Announce implements Announcer.
func (Nop) Announce(Announcement) {}

// Func adapts a plain function to the Announcer interface.
type Func func(Announcement)

// Announce implements Announcer.
func (f Func) Announce(a Announcement) {
	f(a)
}
