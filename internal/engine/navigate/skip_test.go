package navigate

import (
	"testing"

	"github.com/dshills/mathcaret/internal/engine/atom"
	"github.com/dshills/mathcaret/internal/engine/model"
	"github.com/dshills/mathcaret/internal/event"
)

func TestSkipWordForward(t *testing.T) {
	m := textRow("blue yellow")
	e := New(m)

	// 0 sentinel, 1-4 "blue", 5 space, 6-11 "yellow".
	if !e.Skip(model.Forward, false) {
		t.Fatal("skip from the start should succeed")
	}
	if m.Position() != 4 {
		t.Errorf("position = %d, want 4 (end of blue)", m.Position())
	}

	if !e.Skip(model.Forward, false) {
		t.Fatal("skip across the space should succeed")
	}
	if m.Position() != 11 {
		t.Errorf("position = %d, want 11 (end of yellow)", m.Position())
	}

	if e.Skip(model.Forward, false) {
		t.Error("skip at the end should fail")
	}
}

func TestSkipWordBackward(t *testing.T) {
	m := textRow("blue yellow")
	e := New(m)
	m.SetPosition(11)

	e.Skip(model.Backward, false)
	if m.Position() != 5 {
		t.Errorf("position = %d, want 5 (start of yellow)", m.Position())
	}

	e.Skip(model.Backward, false)
	if m.Position() != 0 {
		t.Errorf("position = %d, want 0 (start of blue)", m.Position())
	}

	if e.Skip(model.Backward, false) {
		t.Error("skip at the start should fail")
	}
}

func TestSkipFenceForward(t *testing.T) {
	m := mathRow("(a(b)c)")
	e := New(m)

	// 0 sentinel, 1 (, 2 a, 3 (, 4 b, 5 ), 6 c, 7 ).
	if !e.Skip(model.Forward, false) {
		t.Fatal("fence skip should succeed")
	}
	if m.Position() != 6 {
		t.Errorf("position = %d, want 6 (just inside the matching close)", m.Position())
	}
}

func TestSkipFenceBackward(t *testing.T) {
	m := mathRow("(a(b)c)")
	e := New(m)
	m.SetPosition(7)

	if !e.Skip(model.Backward, false) {
		t.Fatal("fence skip should succeed")
	}
	if m.Position() != 0 {
		t.Errorf("position = %d, want 0 (before the matching open)", m.Position())
	}
}

func TestSkipUnbalancedFence(t *testing.T) {
	m := mathRow("(a")
	e := New(m)

	e.Skip(model.Forward, false)
	if m.Position() != 2 {
		t.Errorf("unbalanced fence skip landed at %d, want 2 (branch end)", m.Position())
	}
}

func TestSkipMathRun(t *testing.T) {
	m := mathRow("12+3")
	e := New(m)

	e.Skip(model.Forward, false)
	if m.Position() != 2 {
		t.Errorf("position = %d, want 2 (end of the digit run)", m.Position())
	}

	e.Skip(model.Forward, false)
	if m.Position() != 3 {
		t.Errorf("position = %d, want 3 (end of the operator run)", m.Position())
	}

	m.SetPosition(2)
	e.Skip(model.Backward, false)
	if m.Position() != 0 {
		t.Errorf("position = %d, want 0 (start of the digit run)", m.Position())
	}
}

// scriptRunDoc builds "x^2 y": an ordinary x, a script container holding
// the superscript, then an ordinary y. Offsets: 0 sentinel, 1 x,
// 2 superscript sentinel, 3 "2", 4 script, 5 y.
func scriptRunDoc() *model.Model {
	root := atom.NewRoot()
	root.Append(atom.Body, atom.New(atom.Ordinary, atom.Math, "x"))
	script := atom.New(atom.Script, atom.Math, "")
	script.Append(atom.Superscript, atom.New(atom.Ordinary, atom.Math, "2"))
	root.Append(atom.Body, script)
	root.Append(atom.Body, atom.New(atom.Ordinary, atom.Math, "y"))
	return model.New(root)
}

func TestSkipTreatsScriptAsTransparent(t *testing.T) {
	m := scriptRunDoc()
	e := New(m)

	e.Skip(model.Forward, false)
	if m.Position() != 5 {
		t.Errorf("forward skip landed at %d, want 5 (whole run incl. script)", m.Position())
	}

	e.Skip(model.Backward, false)
	if m.Position() != 0 {
		t.Errorf("backward skip landed at %d, want 0", m.Position())
	}
}

func TestSkipCommandRun(t *testing.T) {
	root := atom.NewRoot()
	for _, v := range []string{"s", "u", "m"} {
		root.Append(atom.Body, atom.New(atom.Command, atom.Math, v))
	}
	m := model.New(root)
	e := New(m)

	e.Skip(model.Forward, false)
	if m.Position() != 3 {
		t.Errorf("forward command skip landed at %d, want 3", m.Position())
	}

	e.Skip(model.Backward, false)
	if m.Position() != 0 {
		t.Errorf("backward command skip landed at %d, want 0", m.Position())
	}
}

func TestSkipBackwardThroughSentinels(t *testing.T) {
	root := atom.NewRoot()
	frac := atom.New(atom.Fraction, atom.Math, "")
	frac.CreateBranch(atom.Above)
	frac.CreateBranch(atom.Below)
	root.Append(atom.Body, frac)
	m := model.New(root)
	e := New(m)

	// 0 body sentinel, 1 above sentinel, 2 below sentinel, 3 frac.
	m.SetPosition(2)
	e.Skip(model.Backward, false)
	if m.Position() != 0 {
		t.Errorf("sentinel-run skip landed at %d, want 0", m.Position())
	}
}

func TestSkipAcceptsSuggestion(t *testing.T) {
	root := atom.NewRoot()
	root.Append(atom.Body, atom.New(atom.Ordinary, atom.Math, "a"))
	var tokens []*atom.Atom
	for _, v := range []string{"s", "u", "m"} {
		c := atom.New(atom.Command, atom.Math, v)
		c.Suggestion = true
		tokens = append(tokens, c)
		root.Append(atom.Body, c)
	}
	m := model.New(root)
	e := New(m)
	m.SetPosition(1)

	if !e.Skip(model.Forward, false) {
		t.Fatal("accepting a suggestion should succeed")
	}
	if m.Position() != 4 {
		t.Errorf("position = %d, want 4 (end of the accepted run)", m.Position())
	}
	for _, c := range tokens {
		if c.Suggestion {
			t.Error("accepted tokens should no longer be suggestions")
		}
	}
}

func TestSkipExtend(t *testing.T) {
	m := mathRow("12+3")
	rec := &recorder{}
	e := New(m, WithAnnouncer(rec))

	if !e.Skip(model.Forward, true) {
		t.Fatal("extending skip should succeed")
	}
	if sel := m.Selection(); sel.Start != 0 || sel.End != 2 {
		t.Errorf("selection = %s, want (0..2]", sel)
	}
	if rec.last().Topic != event.TopicSelection {
		t.Errorf("announced %s, want %s", rec.last().Topic, event.TopicSelection)
	}
}

func TestSkipEmptyDocumentPlonks(t *testing.T) {
	m := model.New(nil)
	rec := &recorder{}
	e := New(m, WithAnnouncer(rec))

	if e.Skip(model.Forward, false) {
		t.Error("skip in an empty document should fail")
	}
	if rec.count(event.TopicPlonk) != 1 {
		t.Error("failed skip should plonk")
	}
}
