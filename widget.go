package glimmer

// Widget is the capability set every on-screen element implements: geometry,
// enabled/visible state, hit-testing, event handlers, persistence and
// cloning. Concrete widgets embed Base, which supplies default behavior,
// and shadow only the methods they care about.
//
// Extension capabilities are separate interfaces (ContainerWidget,
// TextEditable) checked with type assertions rather than a class hierarchy.
type Widget interface {
	// Type returns the widget's type tag ("ComboBox", "SpinControl", ...).
	Type() string

	SetPosition(pos Vec2)
	Position() Vec2
	SetSize(size Vec2)
	Size() Vec2

	// AbsolutePosition resolves the widget's position in view coordinates
	// by walking the parent chain.
	AbsolutePosition() Vec2

	SetEnabled(enabled bool)
	Enabled() bool
	SetVisible(visible bool)
	Visible() bool

	// Parent returns the container that currently owns this widget,
	// or nil for roots.
	Parent() *Container

	Focused() bool
	// AcceptsFocus reports whether the widget can hold logical focus.
	AcceptsFocus() bool

	// IsMouseOn reports whether the given view-coordinate position lies on
	// the widget. Invisible widgets never report true.
	IsMouseOn(pos Vec2) bool

	// Event handlers. Positions are view coordinates. Containers route
	// mouse events by hit-testing and keyboard/text events by focus.
	MousePressed(btn MouseButton, pos Vec2)
	MouseReleased(btn MouseButton, pos Vec2)
	MouseMoved(pos Vec2)
	MouseLeft()
	// MouseWheelScrolled returns true when the widget consumed the event;
	// unconsumed scrolls propagate to the parent.
	MouseWheelScrolled(delta float32, pos Vec2) bool
	KeyPressed(ev KeyPressEvent)
	TextEntered(r rune)

	// Draw appends the widget's draw commands for the current state.
	Draw(dl *DrawList)

	// Save serializes the widget into a tree node; Load restores it.
	// Every essential attribute round-trips losslessly through the pair.
	Save() *Node
	Load(n *Node) error

	// Clone returns a deep copy without a parent and without any signal
	// connections. Owned sub-widgets are cloned along.
	Clone() Widget

	// SharedStyle returns the widget's appearance record handle.
	// The record may be shared with other widgets; mutations through the
	// handle are copy-on-write.
	SharedStyle() *Style
	// SetStyle shares another style record with this widget, replacing
	// the current one.
	SetStyle(s *Style)

	setParent(p *Container)
	setFocused(focused bool)
}

// ContainerWidget is implemented by widgets that own child widgets.
type ContainerWidget interface {
	Widget
	Add(w Widget)
	Remove(w Widget) bool
	Children() []Widget
}

// TextEditable is implemented by widgets with editable text content.
type TextEditable interface {
	Widget
	SetText(text string)
	Text() string
}

// Base supplies the default Widget behavior. Embed it in concrete widgets
// and call initBase from the constructor.
type Base struct {
	typeName string
	pos      Vec2
	size     Vec2
	enabled  bool
	visible  bool
	focused  bool
	parent   *Container
	style    *Style

	// styleHost is the concrete widget's style observer, used when the
	// style record is replaced or detached.
	styleHost styleObserver
}

// initBase prepares the embedded Base. observer may be nil for widgets
// that don't cache resolved style properties.
func (b *Base) initBase(typeName string, observer styleObserver, styleDefaults map[string]any) {
	b.typeName = typeName
	b.enabled = true
	b.visible = true
	b.styleHost = observer
	b.style = newStyle(styleDefaults)
	b.style.owner = observer
	if observer != nil {
		b.style.subscribeOwner()
	}
}

// Type returns the widget's type tag.
func (b *Base) Type() string { return b.typeName }

// SetPosition moves the widget relative to its parent.
func (b *Base) SetPosition(pos Vec2) { b.pos = pos }

// Position returns the widget's position relative to its parent.
func (b *Base) Position() Vec2 { return b.pos }

// SetSize resizes the widget.
func (b *Base) SetSize(size Vec2) { b.size = size }

// Size returns the widget's size.
func (b *Base) Size() Vec2 { return b.size }

// AbsolutePosition resolves the position in view coordinates.
func (b *Base) AbsolutePosition() Vec2 {
	if b.parent == nil {
		return b.pos
	}
	return b.parent.AbsolutePosition().Add(b.pos)
}

// SetEnabled enables or disables the widget. Disabled widgets no longer
// receive events.
func (b *Base) SetEnabled(enabled bool) { b.enabled = enabled }

// Enabled reports whether the widget receives events.
func (b *Base) Enabled() bool { return b.enabled }

// SetVisible shows or hides the widget.
func (b *Base) SetVisible(visible bool) { b.visible = visible }

// Visible reports whether the widget is drawn and hit-tested.
func (b *Base) Visible() bool { return b.visible }

// Parent returns the owning container, or nil for roots.
func (b *Base) Parent() *Container { return b.parent }

// Focused reports whether the widget holds logical focus.
func (b *Base) Focused() bool { return b.focused }

// AcceptsFocus is false by default; interactive widgets shadow it.
func (b *Base) AcceptsFocus() bool { return false }

// IsMouseOn reports whether pos lies on the widget.
func (b *Base) IsMouseOn(pos Vec2) bool {
	if !b.visible {
		return false
	}
	abs := b.AbsolutePosition()
	return (Rect{X: abs.X, Y: abs.Y, W: b.size.X, H: b.size.Y}).Contains(pos)
}

// Default event handlers: leaf widgets shadow the ones they react to.

func (b *Base) MousePressed(btn MouseButton, pos Vec2)  {}
func (b *Base) MouseReleased(btn MouseButton, pos Vec2) {}
func (b *Base) MouseMoved(pos Vec2)                     {}
func (b *Base) MouseLeft()                              {}
func (b *Base) MouseWheelScrolled(delta float32, pos Vec2) bool {
	return false
}
func (b *Base) KeyPressed(ev KeyPressEvent) {}
func (b *Base) TextEntered(r rune)          {}

// Draw draws nothing by default.
func (b *Base) Draw(dl *DrawList) {}

// SharedStyle returns the widget's style handle.
func (b *Base) SharedStyle() *Style { return b.style }

// SetStyle shares another widget's style record with this widget.
func (b *Base) SetStyle(s *Style) {
	if s == nil || s.data == b.style.data {
		return
	}
	b.style.release()
	b.style = s.share(b.styleHost)
}

func (b *Base) setParent(p *Container) { b.parent = p }

func (b *Base) setFocused(focused bool) { b.focused = focused }

// saveBase writes the common widget attributes into a node.
func (b *Base) saveBase(n *Node) {
	n.SetFloat("x", b.pos.X)
	n.SetFloat("y", b.pos.Y)
	n.SetFloat("width", b.size.X)
	n.SetFloat("height", b.size.Y)
	n.SetBool("enabled", b.enabled)
	n.SetBool("visible", b.visible)
}

// loadBase restores the common widget attributes from a node.
func (b *Base) loadBase(n *Node) {
	b.pos.X = n.Float("x", b.pos.X)
	b.pos.Y = n.Float("y", b.pos.Y)
	b.size.X = n.Float("width", b.size.X)
	b.size.Y = n.Float("height", b.size.Y)
	b.enabled = n.Bool("enabled", b.enabled)
	b.visible = n.Bool("visible", b.visible)
}

// cloneBase copies geometry and flags into a freshly initialized Base.
// The style record is shared with the original (copy-on-write applies).
func (b *Base) cloneBase(dst *Base, observer styleObserver) {
	dst.typeName = b.typeName
	dst.pos = b.pos
	dst.size = b.size
	dst.enabled = b.enabled
	dst.visible = b.visible
	dst.styleHost = observer
	if dst.style != nil {
		dst.style.release()
	}
	dst.style = b.style.share(observer)
}
