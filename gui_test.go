package glimmer_test

import (
	"testing"

	"github.com/glimmerui/glimmer"
)

// mockRenderer is a test renderer that records render calls.
type mockRenderer struct {
	renderCalls int
	lastCmds    int
	lastVtx     int
}

func (m *mockRenderer) Render(dl *glimmer.DrawList) error {
	m.renderCalls++
	m.lastCmds = len(dl.CmdBuffer)
	m.lastVtx = len(dl.VtxBuffer)
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

func TestGuiBasicUsage(t *testing.T) {
	backend := glimmer.NewBackend(newFakePlatform())
	gui := glimmer.NewGui(backend)
	defer gui.Close()
	gui.SetView(glimmer.Vec2{X: 800, Y: 600})

	combo := glimmer.NewComboBox()
	combo.AddItem("Apple", "a")
	gui.Add(combo)

	renderer := &mockRenderer{}
	if err := gui.Draw(renderer); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
	if renderer.lastVtx == 0 {
		t.Error("drawing a widget tree should produce vertices")
	}
}

func TestGuiEventRouting(t *testing.T) {
	backend := glimmer.NewBackend(newFakePlatform())
	gui := glimmer.NewGui(backend)
	defer gui.Close()
	gui.SetView(glimmer.Vec2{X: 800, Y: 600})

	box := glimmer.NewEditBox()
	box.SetPosition(glimmer.Vec2{X: 10, Y: 10})
	box.SetSize(glimmer.Vec2{X: 100, Y: 30})
	gui.Add(box)

	gui.HandleEvent(glimmer.MousePressEvent{
		Button: glimmer.MouseButtonLeft,
		Pos:    glimmer.Vec2{X: 50, Y: 20},
	})
	if !box.Focused() {
		t.Fatal("press event should reach the widget tree")
	}

	gui.HandleEvent(glimmer.TextEvent{Rune: 'z'})
	if box.Text() != "z" {
		t.Errorf("text event should reach the focused widget, got %q", box.Text())
	}

	gui.HandleEvent(glimmer.KeyPressEvent{Key: glimmer.KeyBackspace})
	if box.Text() != "" {
		t.Errorf("key event should reach the focused widget, got %q", box.Text())
	}

	// Window focus loss clears widget focus.
	gui.HandleEvent(glimmer.FocusLossEvent{})
	if box.Focused() {
		t.Error("focus loss event should unfocus")
	}

	gui.HandleEvent(glimmer.ResizeEvent{Size: glimmer.Vec2{X: 1024, Y: 768}})
	if gui.View() != (glimmer.Vec2{X: 1024, Y: 768}) {
		t.Errorf("resize event should update the view, got %+v", gui.View())
	}
}

func TestGuiScrollConsumption(t *testing.T) {
	backend := glimmer.NewBackend(newFakePlatform())
	gui := glimmer.NewGui(backend)
	defer gui.Close()
	gui.SetView(glimmer.Vec2{X: 800, Y: 600})

	combo := glimmer.NewComboBox()
	combo.SetPosition(glimmer.Vec2{X: 10, Y: 10})
	combo.SetSize(glimmer.Vec2{X: 150, Y: 22})
	combo.AddItem("a", "")
	combo.AddItem("b", "")
	combo.SetChangeItemOnScroll(true)
	gui.Add(combo)

	over := glimmer.Vec2{X: 20, Y: 20}
	if !gui.HandleEvent(glimmer.MouseWheelEvent{Delta: -1, Pos: over}) {
		t.Error("consumed scrolls report true")
	}
	if gui.HandleEvent(glimmer.MouseWheelEvent{Delta: -1, Pos: glimmer.Vec2{X: 700, Y: 500}}) {
		t.Error("scrolls over empty space report false")
	}
}

func TestGuiMultipleInstancesShareBackend(t *testing.T) {
	backend := glimmer.NewBackend(newFakePlatform())

	gui1 := glimmer.NewGui(backend)
	gui2 := glimmer.NewGui(backend)
	if backend.GuiCount() != 2 {
		t.Fatalf("GuiCount = %d, want 2", backend.GuiCount())
	}

	// Trees are independent.
	gui1.Add(glimmer.NewEditBox())
	if len(gui2.Root().Children()) != 0 {
		t.Error("GUIs must not share widget trees")
	}

	gui1.Close()
	if backend.HasGui(gui1) || !backend.HasGui(gui2) {
		t.Error("closing one GUI must not detach the other")
	}
	gui2.Close()
}
