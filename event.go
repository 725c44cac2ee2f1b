package glimmer

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyCount
)

// Modifier is a keyboard modifier key.
type Modifier int

const (
	ModifierControl Modifier = iota
	ModifierShift
	ModifierAlt
	ModifierSystem
)

// Event is a platform input or window event delivered to a Gui.
// The backend translates native events into these types; Gui.HandleEvent
// routes them into the widget tree.
type Event interface {
	isEvent()
}

// MousePressEvent reports a mouse button press at an absolute position.
type MousePressEvent struct {
	Button MouseButton
	Pos    Vec2
}

// MouseReleaseEvent reports a mouse button release at an absolute position.
type MouseReleaseEvent struct {
	Button MouseButton
	Pos    Vec2
}

// MouseMoveEvent reports pointer movement.
type MouseMoveEvent struct {
	Pos Vec2
}

// MouseWheelEvent reports vertical scrolling. Delta is positive when
// scrolling up/away from the user.
type MouseWheelEvent struct {
	Delta float32
	Pos   Vec2
}

// KeyPressEvent reports a key press with active modifiers.
type KeyPressEvent struct {
	Key     Key
	Control bool
	Shift   bool
	Alt     bool
	System  bool
}

// TextEvent reports a typed Unicode character.
type TextEvent struct {
	Rune rune
}

// ResizeEvent reports a change of the drawable view size.
type ResizeEvent struct {
	Size Vec2
}

// FocusLossEvent reports that the native window lost input focus.
type FocusLossEvent struct{}

func (MousePressEvent) isEvent()   {}
func (MouseReleaseEvent) isEvent() {}
func (MouseMoveEvent) isEvent()    {}
func (MouseWheelEvent) isEvent()   {}
func (KeyPressEvent) isEvent()     {}
func (TextEvent) isEvent()         {}
func (ResizeEvent) isEvent()       {}
func (FocusLossEvent) isEvent()    {}
