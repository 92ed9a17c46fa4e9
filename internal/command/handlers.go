package command

import "github.com/dshills/mathcaret/internal/engine/model"

// CaretHandler executes caret movement actions.
type CaretHandler struct{}

// Namespace returns the caret namespace.
func (*CaretHandler) Namespace() string { return "caret" }

// CanHandle returns true if this handler can process the action.
func (*CaretHandler) CanHandle(name string) bool {
	switch name {
	case ActionMoveForward, ActionMoveBackward, ActionMoveUp, ActionMoveDown,
		ActionSkipForward, ActionSkipBackward, ActionLeapForward, ActionLeapBackward,
		ActionSuperscript, ActionSubscript, ActionOppositeScript,
		ActionGroupStart, ActionGroupEnd, ActionDocumentStart, ActionDocumentEnd:
		return true
	}
	return false
}

// HandleAction processes a caret action.
func (*CaretHandler) HandleAction(name string, ctx *Context) Result {
	if ctx.Nav == nil || ctx.Sel == nil {
		return Errorf("caret action %s: missing engines", name)
	}
	switch name {
	case ActionMoveForward:
		return fromBool(ctx.Nav.Move(model.Forward, false))
	case ActionMoveBackward:
		return fromBool(ctx.Nav.Move(model.Backward, false))
	case ActionMoveUp:
		return fromBool(ctx.Nav.Move(model.Upward, false))
	case ActionMoveDown:
		return fromBool(ctx.Nav.Move(model.Downward, false))
	case ActionSkipForward:
		return fromBool(ctx.Nav.Skip(model.Forward, false))
	case ActionSkipBackward:
		return fromBool(ctx.Nav.Skip(model.Backward, false))
	case ActionLeapForward:
		return fromBool(ctx.Nav.Leap(model.Forward))
	case ActionLeapBackward:
		return fromBool(ctx.Nav.Leap(model.Backward))
	case ActionSuperscript:
		return fromBool(ctx.Nav.MoveToSuperscript())
	case ActionSubscript:
		return fromBool(ctx.Nav.MoveToSubscript())
	case ActionOppositeScript:
		return fromBool(ctx.Nav.MoveToOpposite())
	case ActionGroupStart:
		return fromBool(ctx.Sel.MoveToGroupStart(false))
	case ActionGroupEnd:
		return fromBool(ctx.Sel.MoveToGroupEnd(false))
	case ActionDocumentStart:
		return fromBool(ctx.Sel.MoveToDocumentStart(false))
	case ActionDocumentEnd:
		return fromBool(ctx.Sel.MoveToDocumentEnd(false))
	default:
		return Errorf("unknown caret action: %s", name)
	}
}

// SelectHandler executes selection actions.
type SelectHandler struct{}

// Namespace returns the select namespace.
func (*SelectHandler) Namespace() string { return "select" }

// CanHandle returns true if this handler can process the action.
func (*SelectHandler) CanHandle(name string) bool {
	switch name {
	case ActionExtendForward, ActionExtendBackward, ActionExtendUp, ActionExtendDown,
		ActionExtendSkipForward, ActionExtendSkipBackward, ActionSelectGroup,
		ActionSelectAll, ActionExtendGroupStart, ActionExtendGroupEnd,
		ActionExtendDocStart, ActionExtendDocEnd:
		return true
	}
	return false
}

// HandleAction processes a selection action.
func (*SelectHandler) HandleAction(name string, ctx *Context) Result {
	if ctx.Nav == nil || ctx.Sel == nil {
		return Errorf("select action %s: missing engines", name)
	}
	switch name {
	case ActionExtendForward:
		return fromBool(ctx.Nav.Move(model.Forward, true))
	case ActionExtendBackward:
		return fromBool(ctx.Nav.Move(model.Backward, true))
	case ActionExtendUp:
		return fromBool(ctx.Nav.Move(model.Upward, true))
	case ActionExtendDown:
		return fromBool(ctx.Nav.Move(model.Downward, true))
	case ActionExtendSkipForward:
		return fromBool(ctx.Nav.Skip(model.Forward, true))
	case ActionExtendSkipBackward:
		return fromBool(ctx.Nav.Skip(model.Backward, true))
	case ActionSelectGroup:
		return fromBool(ctx.Sel.SelectGroup())
	case ActionSelectAll:
		return fromBool(ctx.Sel.SelectAll())
	case ActionExtendGroupStart:
		return fromBool(ctx.Sel.MoveToGroupStart(true))
	case ActionExtendGroupEnd:
		return fromBool(ctx.Sel.MoveToGroupEnd(true))
	case ActionExtendDocStart:
		return fromBool(ctx.Sel.MoveToDocumentStart(true))
	case ActionExtendDocEnd:
		return fromBool(ctx.Sel.MoveToDocumentEnd(true))
	default:
		return Errorf("unknown select action: %s", name)
	}
}

// DeleteHandler executes deletion actions.
type DeleteHandler struct{}

// Namespace returns the delete namespace.
func (*DeleteHandler) Namespace() string { return "delete" }

// CanHandle returns true if this handler can process the action.
func (*DeleteHandler) CanHandle(name string) bool {
	switch name {
	case ActionDeleteForward, ActionDeleteBackward, ActionDeleteWordForward,
		ActionDeleteWordBackward, ActionDeleteGroupStart, ActionDeleteGroupEnd,
		ActionDeleteDocStart, ActionDeleteDocEnd, ActionDeleteAll:
		return true
	}
	return false
}

// HandleAction processes a deletion action.
func (*DeleteHandler) HandleAction(name string, ctx *Context) Result {
	if ctx.Del == nil {
		return Errorf("delete action %s: missing engine", name)
	}
	switch name {
	case ActionDeleteForward:
		return fromBool(ctx.Del.Delete(model.Forward))
	case ActionDeleteBackward:
		return fromBool(ctx.Del.Delete(model.Backward))
	case ActionDeleteWordForward:
		return fromBool(ctx.Del.DeleteWord(model.Forward))
	case ActionDeleteWordBackward:
		return fromBool(ctx.Del.DeleteWord(model.Backward))
	case ActionDeleteGroupStart:
		return fromBool(ctx.Del.DeleteToGroupStart())
	case ActionDeleteGroupEnd:
		return fromBool(ctx.Del.DeleteToGroupEnd())
	case ActionDeleteDocStart:
		return fromBool(ctx.Del.DeleteToDocumentStart())
	case ActionDeleteDocEnd:
		return fromBool(ctx.Del.DeleteToDocumentEnd())
	case ActionDeleteAll:
		return fromBool(ctx.Del.DeleteAll())
	default:
		return Errorf("unknown delete action: %s", name)
	}
}
