package glimmer

// Renderer consumes finalized draw lists. The opengl subpackage provides
// the real implementation; tests substitute a recording fake.
type Renderer interface {
	// Render draws one finalized draw list.
	Render(dl *DrawList) error
	// Resize informs the renderer of the new framebuffer size in pixels.
	Resize(width, height int)
}

// Gui owns one widget tree and routes window events into it. Several GUIs
// can share a Backend; each keeps its own root container and view size.
//
// Usage:
//
//	gui := glimmer.NewGui(backend)
//	gui.SetWindow(win)
//	gui.SetView(glimmer.Vec2{X: 800, Y: 600})
//	gui.Add(glimmer.NewComboBox())
//	for _, ev := range events {
//		gui.HandleEvent(ev)
//	}
//	gui.Draw(renderer)
type Gui struct {
	backend *Backend
	root    *Container
}

// NewGui creates a GUI attached to the backend.
func NewGui(backend *Backend) *Gui {
	g := &Gui{
		backend: backend,
		root:    NewContainer(),
	}
	backend.AttachGui(g)
	return g
}

// Backend returns the backend this GUI is attached to.
func (g *Gui) Backend() *Backend { return g.backend }

// Root returns the root container of the widget tree.
func (g *Gui) Root() *Container { return g.root }

// Add places a widget directly into the root container.
func (g *Gui) Add(w Widget) { g.root.Add(w) }

// SetWindow binds the native window this GUI renders into.
func (g *Gui) SetWindow(win NativeWindow) {
	g.backend.SetGuiWindow(g, win)
}

// SetView resizes the root container to the view size in pixels.
func (g *Gui) SetView(size Vec2) {
	g.root.SetSize(size)
}

// View returns the current view size.
func (g *Gui) View() Vec2 { return g.root.Size() }

// SetMouseCursor changes the cursor shown over this GUI's window.
func (g *Gui) SetMouseCursor(t CursorType) {
	g.backend.SetMouseCursor(g, t)
}

// HandleEvent routes one event into the widget tree and reports whether
// it was handled. Scroll events report the consumption decision of the
// widget under the pointer.
func (g *Gui) HandleEvent(ev Event) bool {
	switch e := ev.(type) {
	case MousePressEvent:
		g.root.MousePressed(e.Button, e.Pos)
		return true
	case MouseReleaseEvent:
		g.root.MouseReleased(e.Button, e.Pos)
		return true
	case MouseMoveEvent:
		g.root.MouseMoved(e.Pos)
		return true
	case MouseWheelEvent:
		return g.root.MouseWheelScrolled(e.Delta, e.Pos)
	case KeyPressEvent:
		g.root.KeyPressed(e)
		return true
	case TextEvent:
		g.root.TextEntered(e.Rune)
		return true
	case ResizeEvent:
		g.SetView(e.Size)
		return true
	case FocusLossEvent:
		g.root.MouseLeft()
		g.root.Unfocus()
		return true
	}
	return false
}

// FontTextureProvider is implemented by renderers that own a glyph atlas.
type FontTextureProvider interface {
	FontTextureID() uint32
}

// Draw renders the widget tree through the renderer using a pooled draw
// list.
func (g *Gui) Draw(r Renderer) error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	if p, ok := r.(FontTextureProvider); ok {
		dl.SetFontTexture(p.FontTextureID())
	} else {
		dl.SetFontTexture(0)
	}
	g.root.Draw(dl)
	dl.Finalize()
	return r.Render(dl)
}

// Close detaches the GUI from its backend. The widget tree stays usable
// but no longer reaches a window.
func (g *Gui) Close() {
	g.backend.DetachGui(g)
}
