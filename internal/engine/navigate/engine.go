package navigate

import (
	"github.com/dshills/mathcaret/internal/config"
	"github.com/dshills/mathcaret/internal/engine/model"
	"github.com/dshills/mathcaret/internal/event"
	"github.com/dshills/mathcaret/internal/host"
)

// Engine executes caret navigation against one model. Collaborators are
// injected at construction so tests wire fakes directly; defaults are
// inert (no announcements, hooks that let default handling proceed, no
// focus targets).
type Engine struct {
	model     *model.Model
	announcer event.Announcer
	hooks     host.Hooks
	focus     host.FocusProvider
	nav       config.Navigation
}

// Option configures an Engine.
type Option func(*Engine)

// WithAnnouncer sets the announcement sink.
func WithAnnouncer(a event.Announcer) Option {
	return func(e *Engine) { e.announcer = a }
}

// WithHooks sets the document-exit hooks.
func WithHooks(h host.Hooks) Option {
	return func(e *Engine) { e.hooks = h }
}

// WithFocusProvider sets the host focus provider used by Leap.
func WithFocusProvider(p host.FocusProvider) Option {
	return func(e *Engine) { e.focus = p }
}

// WithNavigation sets the navigation configuration.
func WithNavigation(nav config.Navigation) Option {
	return func(e *Engine) { e.nav = nav }
}

// New creates a navigation engine over m.
func New(m *model.Model, opts ...Option) *Engine {
	e := &Engine{
		model:     m,
		announcer: event.Nop{},
		hooks:     host.DefaultHooks{},
		focus:     host.NoFocus{},
		nav:       config.Default().Navigation,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Model returns the model this engine operates on.
func (e *Engine) Model() *model.Model {
	return e.model
}

// SetNavigation replaces the navigation configuration, for live reload.
func (e *Engine) SetNavigation(nav config.Navigation) {
	e.nav = nav
}

// announce emits an announcement unless a suppression scope is active.
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

// plonk emits the soft-fail signal and reports failure.
func (e *Engine) plonk() bool {
	e.announce(event.TopicPlonk, -1)
	return false
}
