package host

import "github.com/dshills/mathcaret/internal/engine/model"

// Hooks lets the host decide what happens when navigation would leave the
// document. Both callbacks return true to let the default soft-fail
// handling proceed, false when the host fully handled the exit. Hooks run
// synchronously and may themselves call back into the engines.
type Hooks interface {
	// MoveOut is called when a directional move would leave the document.
	MoveOut(d model.Direction) bool

	// TabOut is called when a placeholder leap finds no in-document target.
	TabOut(d model.Direction) bool
}

// DefaultHooks lets default handling proceed for every exit.
type DefaultHooks struct{}

// MoveOut implements Hooks.
func (DefaultHooks) MoveOut(model.Direction) bool { return true }

// TabOut implements Hooks.
func (DefaultHooks) TabOut(model.Direction) bool { return true }

// HookFuncs adapts plain functions to the Hooks interface. A nil function
// behaves like DefaultHooks.
type HookFuncs struct {
	MoveOutFunc func(d model.Direction) bool
	TabOutFunc  func(d model.Direction) bool
}

// MoveOut implements Hooks.
func (h HookFuncs) MoveOut(d model.Direction) bool {
	if h.MoveOutFunc == nil {
		return true
	}
	return h.MoveOutFunc(d)
}

// TabOut implements Hooks.
func (h HookFuncs) TabOut(d model.Direction) bool {
	if h.TabOutFunc == nil {
		return true
	}
	return h.TabOutFunc(d)
}
