package glimmer_test

import (
	"testing"

	"github.com/glimmerui/glimmer"
)

func TestEditBoxTyping(t *testing.T) {
	box := glimmer.NewEditBox()

	var changes []string
	box.OnTextChange.Connect(func(s string) { changes = append(changes, s) })

	box.TextEntered('h')
	box.TextEntered('i')
	if box.Text() != "hi" {
		t.Errorf("Text = %q, want hi", box.Text())
	}
	if len(changes) != 2 || changes[1] != "hi" {
		t.Errorf("change signals = %v", changes)
	}

	// Control runes are ignored.
	box.TextEntered('\n')
	if box.Text() != "hi" {
		t.Error("control runes must not be inserted")
	}
}

func TestEditBoxCaretEditing(t *testing.T) {
	box := glimmer.NewEditBox()
	box.SetText("hello")

	box.KeyPressed(glimmer.KeyPressEvent{Key: glimmer.KeyHome})
	box.KeyPressed(glimmer.KeyPressEvent{Key: glimmer.KeyDelete})
	if box.Text() != "ello" {
		t.Errorf("delete at home should drop the first rune, got %q", box.Text())
	}

	box.KeyPressed(glimmer.KeyPressEvent{Key: glimmer.KeyEnd})
	box.KeyPressed(glimmer.KeyPressEvent{Key: glimmer.KeyBackspace})
	if box.Text() != "ell" {
		t.Errorf("backspace at end should drop the last rune, got %q", box.Text())
	}

	box.KeyPressed(glimmer.KeyPressEvent{Key: glimmer.KeyLeft})
	box.TextEntered('x')
	if box.Text() != "elxl" {
		t.Errorf("insertion should happen at the caret, got %q", box.Text())
	}
}

func TestEditBoxReturnSignals(t *testing.T) {
	box := glimmer.NewEditBox()
	box.SetText("done")

	var returns []string
	box.OnReturnKeyPress.Connect(func(s string) { returns = append(returns, s) })

	box.KeyPressed(glimmer.KeyPressEvent{Key: glimmer.KeyEnter})
	if len(returns) != 1 || returns[0] != "done" {
		t.Errorf("return signal = %v", returns)
	}
}

func TestEditBoxReadOnly(t *testing.T) {
	box := glimmer.NewEditBox()
	box.SetText("fixed")
	box.SetReadOnly(true)

	box.TextEntered('x')
	box.KeyPressed(glimmer.KeyPressEvent{Key: glimmer.KeyBackspace})
	if box.Text() != "fixed" {
		t.Errorf("read-only box must reject edits, got %q", box.Text())
	}
}

func TestSignalConnectDisconnect(t *testing.T) {
	var sig glimmer.Signal[int]
	_ = sig

	box := glimmer.NewEditBox()
	calls := 0
	id := box.OnTextChange.Connect(func(string) { calls++ })
	other := box.OnTextChange.Connect(func(string) { calls++ })

	box.SetText("a")
	if calls != 2 {
		t.Fatalf("both handlers should fire, calls = %d", calls)
	}

	if !box.OnTextChange.Disconnect(id) {
		t.Error("disconnecting a live handler should succeed")
	}
	if box.OnTextChange.Disconnect(id) {
		t.Error("double disconnect should fail")
	}

	box.SetText("b")
	if calls != 3 {
		t.Errorf("only the remaining handler should fire, calls = %d", calls)
	}
	_ = other

	box.OnTextChange.DisconnectAll()
	if box.OnTextChange.HandlerCount() != 0 {
		t.Error("DisconnectAll should drop every handler")
	}
	box.SetText("c")
	if calls != 3 {
		t.Error("no handler should fire after DisconnectAll")
	}
}
