//go:build !linux

package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glimmerui/glimmer"
)

// Only Linux needs a dedicated path for directional resize cursors; other
// platforms use the regular pooled cursor flow.
func applyResizeCursorNatively(window *glfw.Window, t glimmer.CursorType) bool {
	return false
}
