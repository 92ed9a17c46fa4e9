// Package command exposes the engines as named actions. It is the dispatch
// target a key-binding layer would call; the binding mechanism itself
// lives with the host.
package command

import (
	"fmt"
	"strings"

	"github.com/dshills/mathcaret/internal/engine/deletion"
	"github.com/dshills/mathcaret/internal/engine/model"
	"github.com/dshills/mathcaret/internal/engine/navigate"
	"github.com/dshills/mathcaret/internal/engine/selection"
)

// Caret action names.
const (
	ActionMoveForward    = "caret.moveForward"
	ActionMoveBackward   = "caret.moveBackward"
	ActionMoveUp         = "caret.moveUp"
	ActionMoveDown       = "caret.moveDown"
	ActionSkipForward    = "caret.skipForward"
	ActionSkipBackward   = "caret.skipBackward"
	ActionLeapForward    = "caret.leapForward"
	ActionLeapBackward   = "caret.leapBackward"
	ActionSuperscript    = "caret.superscript"
	ActionSubscript      = "caret.subscript"
	ActionOppositeScript = "caret.oppositeScript"
	ActionGroupStart     = "caret.groupStart"
	ActionGroupEnd       = "caret.groupEnd"
	ActionDocumentStart  = "caret.documentStart"
	ActionDocumentEnd    = "caret.documentEnd"
)

// Selection action names.
const (
	ActionExtendForward      = "select.extendForward"
	ActionExtendBackward     = "select.extendBackward"
	ActionExtendUp           = "select.extendUp"
	ActionExtendDown         = "select.extendDown"
	ActionExtendSkipForward  = "select.skipForward"
	ActionExtendSkipBackward = "select.skipBackward"
	ActionSelectGroup        = "select.group"
	ActionSelectAll          = "select.all"
	ActionExtendGroupStart   = "select.groupStart"
	ActionExtendGroupEnd     = "select.groupEnd"
	ActionExtendDocStart     = "select.documentStart"
	ActionExtendDocEnd       = "select.documentEnd"
)

// Deletion action names.
const (
	ActionDeleteForward      = "delete.forward"
	ActionDeleteBackward     = "delete.backward"
	ActionDeleteWordForward  = "delete.wordForward"
	ActionDeleteWordBackward = "delete.wordBackward"
	ActionDeleteGroupStart   = "delete.toGroupStart"
	ActionDeleteGroupEnd     = "delete.toGroupEnd"
	ActionDeleteDocStart     = "delete.toDocumentStart"
	ActionDeleteDocEnd       = "delete.toDocumentEnd"
	ActionDeleteAll          = "delete.all"
)

// Context carries the engines an action runs against.
type Context struct {
	Model *model.Model
	Nav   *navigate.Engine
	Sel   *selection.Engine
	Del   *deletion.Engine
}

// Status classifies an action's outcome.
type Status uint8

const (
	// StatusOK indicates the action changed cursor or document state.
	StatusOK Status = iota
	// StatusNoOp indicates the action had no effect (soft-fail).
	StatusNoOp
	// StatusError indicates the action could not be dispatched.
	StatusError
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of handling an action.
type Result struct {
	Status Status
	Err    error
}

// Success returns an OK result.
func Success() Result {
	return Result{Status: StatusOK}
}

// NoOp returns a soft-fail result.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// Errorf returns an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Result{Status: StatusError, Err: fmt.Errorf(format, args...)}
}

// fromBool converts an engine's boolean success flag to a Result.
func fromBool(ok bool) Result {
	if ok {
		return Success()
	}
	return NoOp()
}

// Handler processes the actions of one namespace: the prefix before the
// first dot in the action name.
type Handler interface {
	// Namespace returns the namespace prefix.
	Namespace() string

	// CanHandle returns true if this handler can process the action.
	CanHandle(name string) bool

	// HandleAction executes the action against the context's engines.
	HandleAction(name string, ctx *Context) Result
}

// Dispatcher routes action names to registered handlers by namespace.
type Dispatcher struct {
	handlers map[string]Handler
}

// NewDispatcher creates a dispatcher with the three engine handlers
// registered.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{handlers: make(map[string]Handler)}
	d.Register(&CaretHandler{})
	d.Register(&SelectHandler{})
	d.Register(&DeleteHandler{})
	return d
}

// Register adds a handler for its namespace, replacing any previous one.
func (d *Dispatcher) Register(h Handler) {
	d.handlers[h.Namespace()] = h
}

// Dispatch routes an action to its namespace handler.
func (d *Dispatcher) Dispatch(name string, ctx *Context) Result {
	ns, _, ok := strings.Cut(name, ".")
	if !ok {
		return Errorf("malformed action name: %s", name)
	}
	h := d.handlers[ns]
	if h == nil || !h.CanHandle(name) {
		return Errorf("unknown action: %s", name)
	}
	return h.HandleAction(name, ctx)
}
