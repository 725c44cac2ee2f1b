// Package glfw implements the glimmer platform layer on top of GLFW 3.3.
package glfw

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glimmerui/glimmer"
)

// Platform implements glimmer.Platform. One Platform serves all windows of
// the process; glfw.Init must have been called before any cursor or
// clipboard operation.
type Platform struct{}

// NewPlatform creates the GLFW platform layer.
func NewPlatform() *Platform {
	return &Platform{}
}

// standardCursorShape maps a cursor type to the closest GLFW standard
// shape. GLFW 3.3 has no diagonal resize, help or not-allowed shapes, so
// those degrade to the nearest available look.
func standardCursorShape(t glimmer.CursorType) (glfw.StandardCursor, bool) {
	switch t {
	case glimmer.CursorArrow:
		return glfw.ArrowCursor, true
	case glimmer.CursorText:
		return glfw.IBeamCursor, true
	case glimmer.CursorHand:
		return glfw.HandCursor, true
	case glimmer.CursorCrosshair:
		return glfw.CrosshairCursor, true
	case glimmer.CursorSizeLeft, glimmer.CursorSizeRight:
		return glfw.HResizeCursor, true
	case glimmer.CursorSizeTop, glimmer.CursorSizeBottom:
		return glfw.VResizeCursor, true
	case glimmer.CursorSizeTopLeft, glimmer.CursorSizeBottomRight,
		glimmer.CursorSizeBottomLeft, glimmer.CursorSizeTopRight:
		return glfw.HResizeCursor, false
	case glimmer.CursorHelp, glimmer.CursorNotAllowed:
		return glfw.ArrowCursor, false
	}
	return glfw.ArrowCursor, false
}

// CreateSystemCursor allocates the standard cursor for t, substituting the
// nearest shape when GLFW has no exact match.
func (p *Platform) CreateSystemCursor(t glimmer.CursorType) (glimmer.CursorHandle, error) {
	shape, exact := standardCursorShape(t)
	if !exact {
		slog.Warn("no exact standard cursor, substituting nearest", "type", int(t))
	}
	cursor := glfw.CreateStandardCursor(shape)
	if cursor == nil {
		return nil, fmt.Errorf("glfw: standard cursor %d unavailable", shape)
	}
	return cursor, nil
}

// CreateBitmapCursor allocates a cursor from tightly packed RGBA pixels.
func (p *Platform) CreateBitmapCursor(pixels []byte, width, height, hotspotX, hotspotY int) (glimmer.CursorHandle, error) {
	if len(pixels) < width*height*4 {
		return nil, fmt.Errorf("glfw: pixel buffer too small for %dx%d cursor", width, height)
	}
	img := &image.NRGBA{
		Pix:    pixels[:width*height*4],
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	cursor := glfw.CreateCursor(img, hotspotX, hotspotY)
	if cursor == nil {
		return nil, fmt.Errorf("glfw: bitmap cursor creation failed")
	}
	return cursor, nil
}

// FreeCursor releases a cursor allocated by either Create call.
func (p *Platform) FreeCursor(h glimmer.CursorHandle) {
	if cursor, ok := h.(*glfw.Cursor); ok && cursor != nil {
		cursor.Destroy()
	}
}

// ApplyCursor makes the window show the cursor.
func (p *Platform) ApplyCursor(win glimmer.NativeWindow, h glimmer.CursorHandle) {
	window, ok := win.(*glfw.Window)
	if !ok || window == nil {
		return
	}
	cursor, ok := h.(*glfw.Cursor)
	if !ok {
		return
	}
	window.SetCursor(cursor)
}

// ApplyResizeCursorNatively routes directional resize cursors through a
// platform path where one exists; see the per-OS files.
func (p *Platform) ApplyResizeCursorNatively(win glimmer.NativeWindow, t glimmer.CursorType) bool {
	window, ok := win.(*glfw.Window)
	if !ok || window == nil {
		return false
	}
	return applyResizeCursorNatively(window, t)
}

// SetClipboard stores text in the system clipboard through the window.
// Clipboard managers can race the write, so the content is read back and
// the write retried once after a short sleep when it did not stick.
func (p *Platform) SetClipboard(win glimmer.NativeWindow, text string) error {
	window, ok := win.(*glfw.Window)
	if !ok || window == nil {
		return fmt.Errorf("glfw: clipboard needs a window")
	}
	window.SetClipboardString(text)
	if window.GetClipboardString() != text {
		time.Sleep(10 * time.Millisecond)
		window.SetClipboardString(text)
		if window.GetClipboardString() != text {
			return fmt.Errorf("glfw: clipboard write did not stick")
		}
	}
	return nil
}

// Clipboard returns the system clipboard content through the window.
func (p *Platform) Clipboard(win glimmer.NativeWindow) (string, error) {
	window, ok := win.(*glfw.Window)
	if !ok || window == nil {
		return "", fmt.Errorf("glfw: clipboard needs a window")
	}
	return window.GetClipboardString(), nil
}

// OpenVirtualKeyboard is a no-op on desktop; GLFW has no on-screen
// keyboard support.
func (p *Platform) OpenVirtualKeyboard(area glimmer.Rect) {
	slog.Debug("virtual keyboard not supported on this platform")
}

// CloseVirtualKeyboard is a no-op on desktop.
func (p *Platform) CloseVirtualKeyboard() {}

// ModifierPressed polls the modifier state on the window whose context is
// current. Without a current context it reports false.
func (p *Platform) ModifierPressed(m glimmer.Modifier) bool {
	window := glfw.GetCurrentContext()
	if window == nil {
		return false
	}
	pressed := func(a, b glfw.Key) bool {
		return window.GetKey(a) == glfw.Press || window.GetKey(b) == glfw.Press
	}
	switch m {
	case glimmer.ModifierControl:
		return pressed(glfw.KeyLeftControl, glfw.KeyRightControl)
	case glimmer.ModifierShift:
		return pressed(glfw.KeyLeftShift, glfw.KeyRightShift)
	case glimmer.ModifierAlt:
		return pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	case glimmer.ModifierSystem:
		return pressed(glfw.KeyLeftSuper, glfw.KeyRightSuper)
	}
	return false
}
