package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glimmerui/glimmer"
)

// InputAdapter translates GLFW window callbacks into glimmer events.
// Events accumulate between frames; drain them once per frame with Flush.
//
// Usage:
//
//	adapter := glfw.NewInputAdapter(window)
//	for !window.ShouldClose() {
//		glfw.PollEvents()
//		for _, ev := range adapter.Flush() {
//			gui.HandleEvent(ev)
//		}
//	}
type InputAdapter struct {
	window *glfw.Window
	events []glimmer.Event
}

// NewInputAdapter installs callbacks on the window.
func NewInputAdapter(window *glfw.Window) *InputAdapter {
	a := &InputAdapter{window: window}

	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetFocusCallback(a.focusCallback)
	window.SetSizeCallback(a.sizeCallback)

	return a
}

// Flush returns the events accumulated since the last call and clears the
// queue.
func (a *InputAdapter) Flush() []glimmer.Event {
	events := a.events
	a.events = nil
	return events
}

// cursorPos returns the pointer position in view coordinates.
func (a *InputAdapter) cursorPos() glimmer.Vec2 {
	x, y := a.window.GetCursorPos()
	return glimmer.Vec2{X: float32(x), Y: float32(y)}
}

func (a *InputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	mapped := mapKey(key)
	if mapped == glimmer.KeyNone {
		return
	}
	a.events = append(a.events, glimmer.KeyPressEvent{
		Key:     mapped,
		Control: mods&glfw.ModControl != 0,
		Shift:   mods&glfw.ModShift != 0,
		Alt:     mods&glfw.ModAlt != 0,
		System:  mods&glfw.ModSuper != 0,
	})
}

func (a *InputAdapter) charCallback(w *glfw.Window, char rune) {
	a.events = append(a.events, glimmer.TextEvent{Rune: char})
}

func (a *InputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	mapped, ok := mapMouseButton(button)
	if !ok {
		return
	}
	pos := a.cursorPos()
	switch action {
	case glfw.Press:
		a.events = append(a.events, glimmer.MousePressEvent{Button: mapped, Pos: pos})
	case glfw.Release:
		a.events = append(a.events, glimmer.MouseReleaseEvent{Button: mapped, Pos: pos})
	}
}

func (a *InputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.events = append(a.events, glimmer.MouseWheelEvent{
		Delta: float32(yoff),
		Pos:   a.cursorPos(),
	})
}

func (a *InputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.events = append(a.events, glimmer.MouseMoveEvent{
		Pos: glimmer.Vec2{X: float32(xpos), Y: float32(ypos)},
	})
}

func (a *InputAdapter) focusCallback(w *glfw.Window, focused bool) {
	if !focused {
		a.events = append(a.events, glimmer.FocusLossEvent{})
	}
}

func (a *InputAdapter) sizeCallback(w *glfw.Window, width, height int) {
	a.events = append(a.events, glimmer.ResizeEvent{
		Size: glimmer.Vec2{X: float32(width), Y: float32(height)},
	})
}

// mapKey maps GLFW keys to glimmer keys.
func mapKey(key glfw.Key) glimmer.Key {
	switch key {
	case glfw.KeyTab:
		return glimmer.KeyTab
	case glfw.KeyLeft:
		return glimmer.KeyLeft
	case glfw.KeyRight:
		return glimmer.KeyRight
	case glfw.KeyUp:
		return glimmer.KeyUp
	case glfw.KeyDown:
		return glimmer.KeyDown
	case glfw.KeyPageUp:
		return glimmer.KeyPageUp
	case glfw.KeyPageDown:
		return glimmer.KeyPageDown
	case glfw.KeyHome:
		return glimmer.KeyHome
	case glfw.KeyEnd:
		return glimmer.KeyEnd
	case glfw.KeyInsert:
		return glimmer.KeyInsert
	case glfw.KeyDelete:
		return glimmer.KeyDelete
	case glfw.KeyBackspace:
		return glimmer.KeyBackspace
	case glfw.KeySpace:
		return glimmer.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return glimmer.KeyEnter
	case glfw.KeyEscape:
		return glimmer.KeyEscape
	case glfw.KeyA:
		return glimmer.KeyA
	case glfw.KeyC:
		return glimmer.KeyC
	case glfw.KeyV:
		return glimmer.KeyV
	case glfw.KeyX:
		return glimmer.KeyX
	default:
		return glimmer.KeyNone
	}
}

// mapMouseButton maps GLFW mouse buttons to glimmer buttons.
func mapMouseButton(button glfw.MouseButton) (glimmer.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return glimmer.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return glimmer.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return glimmer.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
