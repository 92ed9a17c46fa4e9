package navigate

import (
	"testing"

	"github.com/dshills/mathcaret/internal/engine/atom"
	"github.com/dshills/mathcaret/internal/engine/model"
	"github.com/dshills/mathcaret/internal/event"
	"github.com/dshills/mathcaret/internal/host"
)

func TestMoveUpCreatesAboveBranch(t *testing.T) {
	root := atom.NewRoot()
	frac := atom.New(atom.Fraction, atom.Math, "")
	frac.Append(atom.Below, atom.New(atom.Ordinary, atom.Math, "b"))
	root.Append(atom.Body, frac)
	m := model.New(root)
	rec := &recorder{}
	e := New(m, WithAnnouncer(rec))

	// 0 sentinel, 1 below sentinel, 2 b, 3 frac.
	m.SetPosition(2)
	if !e.Move(model.Upward, false) {
		t.Fatal("moving up from the denominator should succeed")
	}
	if !frac.HasBranch(atom.Above) {
		t.Fatal("moving up should create the missing numerator")
	}
	if m.Position() != 1 {
		t.Errorf("position = %d, want 1 (inside the new numerator)", m.Position())
	}
	if rec.last().Topic != event.TopicLine {
		t.Errorf("announced %s, want %s", rec.last().Topic, event.TopicLine)
	}
}

func TestMoveDownFromNumerator(t *testing.T) {
	m, _ := fracDoc()
	e := New(m)

	m.SetPosition(4)
	if !e.Move(model.Downward, false) {
		t.Fatal("moving down from the numerator should succeed")
	}
	if m.Position() != 6 {
		t.Errorf("position = %d, want 6 (end of the denominator)", m.Position())
	}
}

func TestMoveUpSearchesAncestorChain(t *testing.T) {
	root := atom.NewRoot()
	frac := atom.New(atom.Fraction, atom.Math, "")
	frac.Append(atom.Above, atom.New(atom.Ordinary, atom.Math, "a"))
	rad := atom.New(atom.Radical, atom.Math, "")
	rad.Append(atom.Body, atom.New(atom.Ordinary, atom.Math, "n"))
	frac.Append(atom.Below, rad)
	root.Append(atom.Body, frac)
	m := model.New(root)
	e := New(m)

	// 0 sentinel, 1 above sentinel, 2 a, 3 below sentinel,
	// 4 radical sentinel, 5 n, 6 radical, 7 frac.
	m.SetPosition(5)
	if !e.Move(model.Upward, false) {
		t.Fatal("moving up from inside the nested radical should succeed")
	}
	if m.Position() != 2 {
		t.Errorf("position = %d, want 2 (end of the numerator)", m.Position())
	}
}

func TestMoveUpExtendSelectsOwnerSpan(t *testing.T) {
	m, _ := fracDoc()
	rec := &recorder{}
	e := New(m, WithAnnouncer(rec))

	m.SetPosition(6)
	if !e.Move(model.Upward, true) {
		t.Fatal("extending up from the denominator should succeed")
	}
	if sel := m.Selection(); sel.Start != 2 || sel.End != 7 {
		t.Errorf("selection = %s, want (2..7] covering the fraction", sel)
	}
	if rec.last().Topic != event.TopicSelection {
		t.Errorf("announced %s, want %s", rec.last().Topic, event.TopicSelection)
	}
}

func TestMoveUpAtTop(t *testing.T) {
	m := mathRow("x")
	rec := &recorder{}
	hookDirs := []model.Direction{}
	e := New(m, WithAnnouncer(rec), WithHooks(host.HookFuncs{
		MoveOutFunc: func(d model.Direction) bool {
			hookDirs = append(hookDirs, d)
			return true
		},
	}))
	m.SetPosition(1)

	if e.Move(model.Upward, false) {
		t.Error("moving up at the top level should fail")
	}
	if len(hookDirs) != 1 || hookDirs[0] != model.Upward {
		t.Errorf("MoveOut hook calls = %v, want one upward call", hookDirs)
	}
	if rec.count(event.TopicPlonk) != 1 {
		t.Error("unhandled top exit should plonk")
	}
}

func TestMoveUpAtTopHookHandlesExit(t *testing.T) {
	m := mathRow("x")
	rec := &recorder{}
	e := New(m, WithAnnouncer(rec), WithHooks(host.HookFuncs{
		MoveOutFunc: func(model.Direction) bool { return false },
	}))
	m.SetPosition(1)

	if !e.Move(model.Upward, false) {
		t.Error("a hook-handled top exit should report success")
	}
	if rec.last().Topic != event.TopicLine {
		t.Errorf("announced %s, want %s", rec.last().Topic, event.TopicLine)
	}
}

func TestMoveUpInsideScriptPlonks(t *testing.T) {
	m := scriptRunDoc()
	hookCalls := 0
	e := New(m, WithHooks(host.HookFuncs{
		MoveOutFunc: func(model.Direction) bool { hookCalls++; return true },
	}))

	// Position inside the superscript; there is no Above counterpart and
	// the caret is not at the top level, so the hook must not fire.
	m.SetPosition(3)
	if e.Move(model.Upward, false) {
		t.Error("moving up inside a superscript should fail")
	}
	if hookCalls != 0 {
		t.Error("a nested vertical dead end must not invoke MoveOut")
	}
}

func TestMoveVerticalCollapsesSelectionFirst(t *testing.T) {
	m, _ := fracDoc()
	e := New(m)

	// Upward collapses the selection backward first, so the move resolves
	// from inside the denominator.
	m.SetSelection(6, 5)
	if !e.Move(model.Upward, false) {
		t.Fatal("vertical move with a selection should succeed")
	}
	if m.Position() != 4 || !m.SelectionIsCollapsed() {
		t.Errorf("position = %d, want 4 collapsed (end of the numerator)", m.Position())
	}
}
