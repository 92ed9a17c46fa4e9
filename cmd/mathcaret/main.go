// Command mathcaret is an interactive walker over a sample structured
// document. It renders the offset flattening as one row of glyphs, drives
// every engine operation from the keyboard, and shows announcements in a
// status line. It exists to exercise the engines end to end, not to
// typeset anything.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/mathcaret/internal/command"
	"github.com/dshills/mathcaret/internal/config"
	"github.com/dshills/mathcaret/internal/engine/atom"
	"github.com/dshills/mathcaret/internal/engine/deletion"
	"github.com/dshills/mathcaret/internal/engine/model"
	"github.com/dshills/mathcaret/internal/engine/navigate"
	"github.com/dshills/mathcaret/internal/engine/selection"
	"github.com/dshills/mathcaret/internal/event"
	"github.com/dshills/mathcaret/internal/host"
)

const configPath = "mathcaret.toml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "mathcaret:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	m := model.New(sampleDocument())
	bus := event.NewBus()

	var announcer event.Announcer = bus
	if !cfg.Announce.Enabled {
		announcer = event.Nop{}
	}

	focus := &host.StaticProvider{
		Items: []host.Target{
			host.StaticTarget("field"),
			host.StaticTarget("toolbar"),
			host.StaticTarget("sidebar"),
		},
	}

	nav := navigate.New(m,
		navigate.WithAnnouncer(announcer),
		navigate.WithHooks(host.DefaultHooks{}),
		navigate.WithFocusProvider(focus),
		navigate.WithNavigation(cfg.Navigation),
	)
	ctx := &command.Context{
		Model: m,
		Nav:   nav,
		Sel:   selection.New(m, announcer),
		Del:   deletion.New(m, announcer),
	}
	dispatcher := command.NewDispatcher()

	watcher, err := config.Watch(configPath, func(c config.Config) {
		nav.SetNavigation(c.Navigation)
	}, nil)
	if err == nil {
		defer watcher.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	status := "ready"
	bus.Subscribe(func(a event.Announcement) {
		status = fmt.Sprintf("%s  prev=%d pos=%d sel=(%d..%d]",
			a.Topic, a.Previous, a.Position, a.SelectionStart, a.SelectionEnd)
	})

	for {
		draw(screen, m, focus, status)
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			action, quit := actionFor(ev)
			if quit {
				return nil
			}
			if action == "" {
				continue
			}
			if res := dispatcher.Dispatch(action, ctx); res.Status == command.StatusError {
				status = res.Err.Error()
			}
		}
	}
}

// actionFor maps a key event to an action name. The second return value
// reports a quit request.
func actionFor(ev *tcell.EventKey) (string, bool) {
	shift := ev.Modifiers()&tcell.ModShift != 0
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "", true
	case tcell.KeyLeft:
		switch {
		case ctrl:
			if shift {
				return command.ActionExtendSkipBackward, false
			}
			return command.ActionSkipBackward, false
		case shift:
			return command.ActionExtendBackward, false
		default:
			return command.ActionMoveBackward, false
		}
	case tcell.KeyRight:
		switch {
		case ctrl:
			if shift {
				return command.ActionExtendSkipForward, false
			}
			return command.ActionSkipForward, false
		case shift:
			return command.ActionExtendForward, false
		default:
			return command.ActionMoveForward, false
		}
	case tcell.KeyUp:
		if shift {
			return command.ActionExtendUp, false
		}
		return command.ActionMoveUp, false
	case tcell.KeyDown:
		if shift {
			return command.ActionExtendDown, false
		}
		return command.ActionMoveDown, false
	case tcell.KeyTab:
		return command.ActionLeapForward, false
	case tcell.KeyBacktab:
		return command.ActionLeapBackward, false
	case tcell.KeyHome:
		if shift {
			return command.ActionExtendDocStart, false
		}
		return command.ActionDocumentStart, false
	case tcell.KeyEnd:
		if shift {
			return command.ActionExtendDocEnd, false
		}
		return command.ActionDocumentEnd, false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if ctrl {
			return command.ActionDeleteWordBackward, false
		}
		return command.ActionDeleteBackward, false
	case tcell.KeyDelete:
		return command.ActionDeleteForward, false
	}

	switch ev.Rune() {
	case 'q':
		return "", true
	case 'g':
		return command.ActionSelectGroup, false
	case 'a':
		return command.ActionSelectAll, false
	case '^':
		return command.ActionSuperscript, false
	case '_':
		return command.ActionSubscript, false
	case 'o':
		return command.ActionOppositeScript, false
	case '[':
		return command.ActionGroupStart, false
	case ']':
		return command.ActionGroupEnd, false
	case 'w':
		return command.ActionDeleteWordForward, false
	}
	return "", false
}

// draw renders the flattening one glyph per offset, with the selection
// reversed and the caret after the atom at the current position.
func draw(screen tcell.Screen, m *model.Model, focus *host.StaticProvider, status string) {
	screen.Clear()
	plain := tcell.StyleDefault
	dim := plain.Dim(true)
	selected := plain.Reverse(true)

	sel := m.Selection()
	col := 0
	for o := model.Offset(0); o <= m.LastOffset(); o++ {
		a := m.At(o)
		style := plain
		if sel.Contains(o) {
			style = selected
		} else if a.Type == atom.First {
			style = dim
		}
		screen.SetContent(col, 1, glyph(a), nil, style)
		col++
	}
	screen.ShowCursor(int(m.Position())+1, 1)

	drawText(screen, 0, 3, dim, fmt.Sprintf("pos=%d anchor=%d last=%d focus=%s",
		m.Position(), m.Anchor(), m.LastOffset(), focus.Current().FocusID()))
	drawText(screen, 0, 4, dim, status)
	drawText(screen, 0, 6, dim, "arrows move | shift extends | ctrl skips | tab leaps | g group | a all | q quits")
	screen.Show()
}

// glyph picks a single display rune for an atom.
func glyph(a *atom.Atom) rune {
	switch a.Type {
	case atom.First:
		return '·'
	case atom.Placeholder:
		return '□'
	case atom.Fraction:
		return '⁄'
	case atom.Radical:
		return '√'
	case atom.Script:
		return '^'
	case atom.Group:
		return '⊔'
	default:
		for _, r := range a.Value {
			return r
		}
		return '?'
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// sampleDocument builds x² + (1+2) = 12,354.568 − a⁄b □, followed by the
// text run " blue yellow".
func sampleDocument() *atom.Atom {
	root := atom.NewRoot()

	x := atom.New(atom.Ordinary, atom.Math, "x")
	x.CreateBranch(atom.Superscript)
	x.Append(atom.Superscript, atom.New(atom.Ordinary, atom.Math, "2"))
	root.Append(atom.Body, x)

	root.Append(atom.Body, atom.New(atom.Operator, atom.Math, "+"))
	for _, tok := range []struct {
		t atom.Type
		v string
	}{
		{atom.OpenFence, "("}, {atom.Ordinary, "1"}, {atom.Operator, "+"},
		{atom.Ordinary, "2"}, {atom.CloseFence, ")"}, {atom.Operator, "="},
	} {
		root.Append(atom.Body, atom.New(tok.t, atom.Math, tok.v))
	}
	for _, digit := range "12,354.568" {
		t := atom.Ordinary
		if digit == ',' {
			t = atom.Punctuation
		}
		root.Append(atom.Body, atom.New(t, atom.Math, string(digit)))
	}
	root.Append(atom.Body, atom.New(atom.Operator, atom.Math, "−"))

	frac := atom.New(atom.Fraction, atom.Math, "")
	frac.CreateBranch(atom.Above)
	frac.Append(atom.Above, atom.New(atom.Ordinary, atom.Math, "a"))
	frac.CreateBranch(atom.Below)
	frac.Append(atom.Below, atom.New(atom.Ordinary, atom.Math, "b"))
	root.Append(atom.Body, frac)

	root.Append(atom.Body, atom.New(atom.Placeholder, atom.Math, "□"))
	for _, r := range " blue yellow" {
		root.Append(atom.Body, atom.New(atom.Text, atom.TextMode, string(r)))
	}
	return root
}
