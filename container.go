package glimmer

// Container is a widget owning an ordered collection of child widgets.
// Child order is the z-order: hit-testing walks the children topmost
// (last-added) first, drawing walks them bottom (first-added) first.
//
// Every child is exclusively owned by exactly one container at a time;
// adding a widget that already has a parent transfers ownership.
type Container struct {
	Base

	children []Widget

	// focusedChild holds logical focus for keyboard and text events,
	// independent of z-order.
	focusedChild Widget

	// underMouse is the child last reported under the pointer, used to
	// deliver mouse-leave notifications.
	underMouse Widget
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	c := &Container{}
	c.initBase("Container", nil, nil)
	return c
}

// Add appends a widget as the topmost child. If the widget currently
// belongs to another container, ownership is transferred; any focus or
// overlay state held relative to the old parent is cleared first.
func (c *Container) Add(w Widget) {
	if w == nil {
		return
	}
	if old := w.Parent(); old != nil {
		if old == c {
			return
		}
		old.Remove(w)
	}
	c.children = append(c.children, w)
	w.setParent(c)
}

// Remove detaches a child, clearing its focus and parent back-reference.
// Returns false when the widget is not a child of this container.
func (c *Container) Remove(w Widget) bool {
	for i, child := range c.children {
		if child == w {
			c.children = append(c.children[:i], c.children[i+1:]...)
			if c.focusedChild == w {
				c.focusedChild = nil
				w.setFocused(false)
			}
			if c.underMouse == w {
				c.underMouse = nil
				w.MouseLeft()
			}
			w.setParent(nil)
			return true
		}
	}
	return false
}

// RemoveAll detaches every child.
func (c *Container) RemoveAll() {
	for _, w := range c.children {
		if c.focusedChild == w {
			w.setFocused(false)
		}
		w.setParent(nil)
	}
	c.children = nil
	c.focusedChild = nil
	c.underMouse = nil
}

// Children returns the children in z-order (bottom first).
func (c *Container) Children() []Widget {
	return c.children
}

// FocusedChild returns the child holding logical focus, or nil.
func (c *Container) FocusedChild() Widget {
	return c.focusedChild
}

// Focus gives logical focus to a child. Returns false when the widget is
// not a child, doesn't accept focus, or is disabled or invisible.
func (c *Container) Focus(w Widget) bool {
	if w == nil || w.Parent() != c || !w.AcceptsFocus() || !w.Enabled() || !w.Visible() {
		return false
	}
	if c.focusedChild == w {
		return true
	}
	if c.focusedChild != nil {
		c.focusedChild.setFocused(false)
	}
	c.focusedChild = w
	w.setFocused(true)
	return true
}

// Unfocus removes logical focus from the focused child, if any.
func (c *Container) Unfocus() {
	if c.focusedChild != nil {
		c.focusedChild.setFocused(false)
		c.focusedChild = nil
	}
}

// AcceptsFocus reports whether any child can take focus.
func (c *Container) AcceptsFocus() bool {
	for _, w := range c.children {
		if w.AcceptsFocus() && w.Enabled() && w.Visible() {
			return true
		}
	}
	return false
}

// setFocused propagates focus loss into the focused child so nested
// containers drop their focus chain as well.
func (c *Container) setFocused(focused bool) {
	c.Base.setFocused(focused)
	if !focused {
		c.Unfocus()
	}
}

// childUnderMouse returns the topmost visible child at pos.
// A child occluded by a higher sibling is never returned.
func (c *Container) childUnderMouse(pos Vec2) Widget {
	for i := len(c.children) - 1; i >= 0; i-- {
		w := c.children[i]
		if w.Visible() && w.IsMouseOn(pos) {
			return w
		}
	}
	return nil
}

// pressOutsideObserver is implemented by widgets that must react to presses
// landing outside themselves, such as overlay owners. Containers forward the
// notification along the focus chain.
type pressOutsideObserver interface {
	mousePressedElsewhere(pos Vec2)
}

// mousePressedElsewhere forwards the notification to the focused child so a
// nested overlay owner sees presses anywhere in the tree.
func (c *Container) mousePressedElsewhere(pos Vec2) {
	if obs, ok := c.focusedChild.(pressOutsideObserver); ok {
		obs.mousePressedElsewhere(pos)
	}
}

// MousePressed hit-tests the children topmost-first and forwards the press
// to the first match. Clicking empty space removes focus; clicking a
// non-focusable widget leaves the current focus in place, but the focused
// widget is still told the press landed elsewhere.
func (c *Container) MousePressed(btn MouseButton, pos Vec2) {
	w := c.childUnderMouse(pos)
	if w != c.focusedChild {
		if obs, ok := c.focusedChild.(pressOutsideObserver); ok {
			obs.mousePressedElsewhere(pos)
		}
	}
	if w == nil {
		c.Unfocus()
		return
	}
	if !w.Enabled() {
		// The widget occludes the space but receives nothing.
		return
	}
	if w.AcceptsFocus() {
		c.Focus(w)
	}
	w.MousePressed(btn, pos)
}

// MouseReleased forwards the release to the topmost enabled child under pos.
func (c *Container) MouseReleased(btn MouseButton, pos Vec2) {
	if w := c.childUnderMouse(pos); w != nil && w.Enabled() {
		w.MouseReleased(btn, pos)
	}
}

// MouseMoved tracks the widget under the pointer, delivering mouse-leave to
// the previous one before forwarding the move.
func (c *Container) MouseMoved(pos Vec2) {
	w := c.childUnderMouse(pos)
	if w != c.underMouse {
		if c.underMouse != nil {
			c.underMouse.MouseLeft()
		}
		c.underMouse = w
	}
	if w != nil && w.Enabled() {
		w.MouseMoved(pos)
	}
}

// MouseLeft clears pointer tracking when the pointer leaves the container.
func (c *Container) MouseLeft() {
	if c.underMouse != nil {
		c.underMouse.MouseLeft()
		c.underMouse = nil
	}
}

// MouseWheelScrolled forwards the scroll to the topmost enabled child under
// pos. Unconsumed scrolls propagate back to the caller.
func (c *Container) MouseWheelScrolled(delta float32, pos Vec2) bool {
	if w := c.childUnderMouse(pos); w != nil && w.Enabled() {
		return w.MouseWheelScrolled(delta, pos)
	}
	return false
}

// KeyPressed routes the key to the focused child.
func (c *Container) KeyPressed(ev KeyPressEvent) {
	if c.focusedChild != nil && c.focusedChild.Enabled() {
		c.focusedChild.KeyPressed(ev)
	}
}

// TextEntered routes the typed character to the focused child.
func (c *Container) TextEntered(r rune) {
	if c.focusedChild != nil && c.focusedChild.Enabled() {
		c.focusedChild.TextEntered(r)
	}
}

// Draw draws the children bottom-first so later children appear on top.
func (c *Container) Draw(dl *DrawList) {
	for _, w := range c.children {
		if w.Visible() {
			w.Draw(dl)
		}
	}
}

// rootContainer walks the parent chain to the top-level container.
func (c *Container) rootContainer() *Container {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Save serializes the container and its children.
func (c *Container) Save() *Node {
	n := NewNode(c.typeName)
	c.saveBase(n)
	for _, w := range c.children {
		n.Children = append(n.Children, w.Save())
	}
	return n
}

// Load restores the container and rebuilds its children through the
// widget factory registry.
func (c *Container) Load(n *Node) error {
	c.loadBase(n)
	c.RemoveAll()
	for _, childNode := range n.Children {
		w, err := NewWidgetFromNode(childNode)
		if err != nil {
			return err
		}
		c.Add(w)
	}
	return nil
}

// Clone deep-copies the container and all children. The copy has no parent
// and no focus state.
func (c *Container) Clone() Widget {
	clone := NewContainer()
	c.cloneBase(&clone.Base, nil)
	for _, w := range c.children {
		clone.Add(w.Clone())
	}
	return clone
}
