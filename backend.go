package glimmer

// CursorType names the mouse cursors a widget can request.
type CursorType int

const (
	CursorArrow CursorType = iota
	CursorText
	CursorHand
	CursorSizeLeft
	CursorSizeRight
	CursorSizeTop
	CursorSizeBottom
	CursorSizeTopLeft
	CursorSizeBottomRight
	CursorSizeBottomLeft
	CursorSizeTopRight
	CursorCrosshair
	CursorHelp
	CursorNotAllowed
	cursorTypeCount
)

// isDirectionalResize reports whether t is one of the resize cursors that
// some window systems render better through a dedicated native path.
func isDirectionalResize(t CursorType) bool {
	return t >= CursorSizeLeft && t <= CursorSizeTopRight
}

// NativeWindow is an opaque window handle owned by the platform layer.
type NativeWindow any

// CursorHandle is an opaque cursor resource owned by the platform layer.
type CursorHandle any

// Platform is the window-system surface a Backend multiplexes. The glfw
// subpackage provides the real implementation; tests substitute a fake.
type Platform interface {
	// CreateSystemCursor allocates the platform's standard cursor for t.
	CreateSystemCursor(t CursorType) (CursorHandle, error)
	// CreateBitmapCursor allocates a cursor from RGBA pixels.
	CreateBitmapCursor(pixels []byte, width, height, hotspotX, hotspotY int) (CursorHandle, error)
	// FreeCursor releases a cursor allocated by either Create call.
	FreeCursor(h CursorHandle)
	// ApplyCursor makes the window show the cursor.
	ApplyCursor(win NativeWindow, h CursorHandle)
	// ApplyResizeCursorNatively lets the platform route a directional
	// resize cursor through a dedicated native path. Returns false when no
	// such path exists, in which case the regular cursor flow applies.
	ApplyResizeCursorNatively(win NativeWindow, t CursorType) bool

	SetClipboard(win NativeWindow, text string) error
	Clipboard(win NativeWindow) (string, error)

	OpenVirtualKeyboard(area Rect)
	CloseVirtualKeyboard()
	ModifierPressed(m Modifier) bool
}

// guiRecord is the per-GUI state a Backend tracks: the native window the
// GUI renders into and the cursor type it currently shows.
type guiRecord struct {
	window NativeWindow
	// cursorType is meaningful once cursorRequested is set; before the
	// first request the window keeps whatever cursor it came with.
	cursorType      CursorType
	cursorRequested bool
	// cursorShown is set once the window actually displays cursorType.
	// It stays false while the GUI has no window or the cursor could not
	// be created, so the next request retries instead of deduplicating.
	cursorShown bool
}

// cursorEntry is one slot of the shared cursor pool. custom marks cursors
// installed through SetMouseCursorStyle; they survive ResetMouseCursorStyle
// of other types and disable the native resize path for their type.
type cursorEntry struct {
	handle CursorHandle
	custom bool
}

// Backend multiplexes one window-system connection across any number of
// GUIs. Cursors are pooled by type and created lazily; a style change
// fans out to every GUI currently showing that type.
//
// Usage:
//
//	backend := glimmer.NewBackend(platform)
//	gui := glimmer.NewGui(backend)
//	gui.SetWindow(win)
//	gui.SetMouseCursor(glimmer.CursorHand)
type Backend struct {
	platform            Platform
	guis                map[*Gui]*guiRecord
	cursors             map[CursorType]*cursorEntry
	destroyOnLastDetach bool
	clipboard           string
	hasClipboardWindow  bool
}

// BackendOption configures a Backend at construction time.
type BackendOption func(*Backend)

// WithDestroyOnLastDetach makes the Backend release all pooled cursors
// when the last GUI detaches.
func WithDestroyOnLastDetach() BackendOption {
	return func(b *Backend) { b.destroyOnLastDetach = true }
}

// NewBackend creates a Backend on top of a platform layer.
func NewBackend(platform Platform, opts ...BackendOption) *Backend {
	b := &Backend{
		platform: platform,
		guis:     make(map[*Gui]*guiRecord),
		cursors:  make(map[CursorType]*cursorEntry),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AttachGui registers a GUI with the backend. NewGui calls this; it is
// exported for GUIs constructed in unusual ways.
func (b *Backend) AttachGui(g *Gui) {
	if !assertf(g != nil, "AttachGui: nil gui") {
		return
	}
	if _, ok := b.guis[g]; ok {
		return
	}
	b.guis[g] = &guiRecord{cursorType: CursorArrow}
}

// DetachGui removes a GUI from the backend. With the destroy-on-last-detach
// option set, detaching the final GUI releases all pooled cursors.
func (b *Backend) DetachGui(g *Gui) {
	if _, ok := b.guis[g]; !assertf(ok, "DetachGui: gui is not attached") {
		return
	}
	delete(b.guis, g)
	if len(b.guis) == 0 && b.destroyOnLastDetach {
		b.freeCursors()
	}
}

// HasGui reports whether the GUI is attached.
func (b *Backend) HasGui(g *Gui) bool {
	_, ok := b.guis[g]
	return ok
}

// GuiCount returns the number of attached GUIs.
func (b *Backend) GuiCount() int { return len(b.guis) }

// SetGuiWindow binds a native window to an attached GUI and gives the
// window the cursor the GUI last requested.
func (b *Backend) SetGuiWindow(g *Gui, win NativeWindow) {
	rec, ok := b.guis[g]
	if !assertf(ok, "SetGuiWindow: gui is not attached") {
		return
	}
	rec.window = win
	rec.cursorShown = false
	if win != nil && rec.cursorRequested {
		b.showCursor(rec)
	}
}

// GuiWindow returns the native window bound to the GUI, or nil.
func (b *Backend) GuiWindow(g *Gui) NativeWindow {
	if rec, ok := b.guis[g]; ok {
		return rec.window
	}
	return nil
}

// SetMouseCursor changes the cursor type one GUI shows. Requesting the
// type the GUI already shows is a no-op; otherwise the cursor is applied
// to the GUI's window, creating the pooled cursor on first use.
func (b *Backend) SetMouseCursor(g *Gui, t CursorType) {
	rec, ok := b.guis[g]
	if !assertf(ok, "SetMouseCursor: gui is not attached") {
		return
	}
	if rec.cursorShown && rec.cursorType == t {
		return
	}
	rec.cursorType = t
	rec.cursorRequested = true
	b.showCursor(rec)
}

// MouseCursor returns the cursor type a GUI currently shows.
func (b *Backend) MouseCursor(g *Gui) CursorType {
	if rec, ok := b.guis[g]; ok {
		return rec.cursorType
	}
	return CursorArrow
}

// showCursor makes a GUI's window display the GUI's recorded cursor type.
// Windowless GUIs record the type and apply it once a window is bound.
func (b *Backend) showCursor(rec *guiRecord) {
	rec.cursorShown = false
	if rec.window == nil {
		return
	}
	entry := b.cursors[rec.cursorType]
	if isDirectionalResize(rec.cursorType) && (entry == nil || !entry.custom) {
		if b.platform.ApplyResizeCursorNatively(rec.window, rec.cursorType) {
			rec.cursorShown = true
			return
		}
	}
	if entry == nil {
		handle, err := b.platform.CreateSystemCursor(rec.cursorType)
		if err != nil {
			logger.Warn("cursor creation failed", "type", int(rec.cursorType), "error", err)
			return
		}
		entry = &cursorEntry{handle: handle}
		b.cursors[rec.cursorType] = entry
	}
	b.platform.ApplyCursor(rec.window, entry.handle)
	rec.cursorShown = true
}

// SetMouseCursorStyle replaces the pooled cursor for a type with a bitmap
// cursor built from RGBA pixels. Every GUI currently showing that type
// switches to the new look immediately.
func (b *Backend) SetMouseCursorStyle(t CursorType, pixels []byte, width, height, hotspotX, hotspotY int) {
	if !assertf(len(pixels) >= width*height*4, "SetMouseCursorStyle: pixel buffer too small") {
		return
	}
	handle, err := b.platform.CreateBitmapCursor(pixels, width, height, hotspotX, hotspotY)
	if err != nil {
		logger.Warn("bitmap cursor creation failed", "type", int(t), "error", err)
		return
	}
	b.replaceCursor(t, &cursorEntry{handle: handle, custom: true})
}

// ResetMouseCursorStyle drops a custom cursor and returns the type to the
// platform's standard look, restored lazily on the next use. Every GUI
// currently showing that type switches back immediately.
func (b *Backend) ResetMouseCursorStyle(t CursorType) {
	b.replaceCursor(t, nil)
}

// replaceCursor swaps the pooled cursor for a type, frees the old handle
// and re-applies the cursor to every GUI showing that type.
func (b *Backend) replaceCursor(t CursorType, entry *cursorEntry) {
	if old := b.cursors[t]; old != nil {
		b.platform.FreeCursor(old.handle)
	}
	if entry == nil {
		delete(b.cursors, t)
	} else {
		b.cursors[t] = entry
	}
	for _, rec := range b.guis {
		if rec.cursorRequested && rec.cursorType == t && rec.window != nil {
			b.showCursor(rec)
		}
	}
}

// clipboardWindow returns any bound window; the window system needs one
// for clipboard access.
func (b *Backend) clipboardWindow() NativeWindow {
	for _, rec := range b.guis {
		if rec.window != nil {
			return rec.window
		}
	}
	return nil
}

// SetClipboardText stores text in the system clipboard. Without any bound
// window the text is kept in an internal fallback so round-trips within
// the process still work.
func (b *Backend) SetClipboardText(text string) {
	win := b.clipboardWindow()
	if win == nil {
		logger.Warn("no window bound, clipboard kept process-local")
		b.clipboard = text
		b.hasClipboardWindow = false
		return
	}
	b.hasClipboardWindow = true
	if err := b.platform.SetClipboard(win, text); err != nil {
		logger.Warn("clipboard write failed", "error", err)
	}
}

// ClipboardText returns the system clipboard content, or the internal
// fallback when no window is bound.
func (b *Backend) ClipboardText() string {
	win := b.clipboardWindow()
	if win == nil {
		return b.clipboard
	}
	text, err := b.platform.Clipboard(win)
	if err != nil {
		logger.Warn("clipboard read failed", "error", err)
		return ""
	}
	return text
}

// OpenVirtualKeyboard asks the platform to show an on-screen keyboard
// covering input at the given view-space area.
func (b *Backend) OpenVirtualKeyboard(area Rect) {
	b.platform.OpenVirtualKeyboard(area)
}

// CloseVirtualKeyboard hides the on-screen keyboard.
func (b *Backend) CloseVirtualKeyboard() {
	b.platform.CloseVirtualKeyboard()
}

// IsKeyboardModifierPressed polls the live state of a keyboard modifier.
func (b *Backend) IsKeyboardModifierPressed(m Modifier) bool {
	return b.platform.ModifierPressed(m)
}

// Close releases all pooled cursors. Attached GUIs stay attached; their
// cursors are recreated lazily if used again.
func (b *Backend) Close() {
	b.freeCursors()
}

func (b *Backend) freeCursors() {
	for t, entry := range b.cursors {
		b.platform.FreeCursor(entry.handle)
		delete(b.cursors, t)
	}
}
