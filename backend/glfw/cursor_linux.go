//go:build linux

package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glimmerui/glimmer"
)

// X11 renders the pooled resize cursors poorly, so directional resize
// requests go straight to long-lived standard cursors instead of the
// per-type pool.
var nativeResizeCursors = map[glfw.StandardCursor]*glfw.Cursor{}

func applyResizeCursorNatively(window *glfw.Window, t glimmer.CursorType) bool {
	var shape glfw.StandardCursor
	switch t {
	case glimmer.CursorSizeLeft, glimmer.CursorSizeRight,
		glimmer.CursorSizeTopLeft, glimmer.CursorSizeBottomRight,
		glimmer.CursorSizeBottomLeft, glimmer.CursorSizeTopRight:
		shape = glfw.HResizeCursor
	case glimmer.CursorSizeTop, glimmer.CursorSizeBottom:
		shape = glfw.VResizeCursor
	default:
		return false
	}
	cursor := nativeResizeCursors[shape]
	if cursor == nil {
		cursor = glfw.CreateStandardCursor(shape)
		if cursor == nil {
			return false
		}
		nativeResizeCursors[shape] = cursor
	}
	window.SetCursor(cursor)
	return true
}
