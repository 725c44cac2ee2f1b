// Example demonstrates a minimal glimmer window with a combo box, a spin
// control and an edit box.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, initializes the OpenGL renderer and
// routes window events into a widget tree.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glimmerui/glimmer"
	glimmerglfw "github.com/glimmerui/glimmer/backend/glfw"
	"github.com/glimmerui/glimmer/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "glimmer example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

var (
	darkMode = flag.Bool("dark", false, "use the dark theme")
	verbose  = flag.Bool("v", false, "verbose toolkit logging")
)

func main() {
	flag.Parse()
	glimmer.SetVerbose(*verbose)
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := glimmerglfw.NewInputAdapter(window)

	backend := glimmer.NewBackend(glimmerglfw.NewPlatform(), glimmer.WithDestroyOnLastDetach())
	gui := glimmer.NewGui(backend)
	defer gui.Close()
	gui.SetWindow(window)
	gui.SetView(glimmer.Vec2{X: windowWidth, Y: windowHeight})

	// Build the widget tree.
	combo := glimmer.NewComboBox()
	combo.SetPosition(glimmer.Vec2{X: 20, Y: 20})
	combo.SetSize(glimmer.Vec2{X: 200, Y: 24})
	combo.SetDefaultText("pick a fruit")
	combo.AddItem("Apple", "apple")
	combo.AddItem("Banana", "banana")
	combo.AddItem("Cherry", "cherry")
	combo.SetChangeItemOnScroll(true)
	combo.OnItemSelect.Connect(func(ev glimmer.ItemEvent) {
		fmt.Printf("selected %q (id=%q index=%d)\n", ev.Name, ev.ID, ev.Index)
	})
	gui.Add(combo)

	spin := glimmer.NewSpinControl(0, 10, 5, 1, 0.5)
	spin.SetPosition(glimmer.Vec2{X: 20, Y: 60})
	spin.SetSize(glimmer.Vec2{X: 120, Y: 24})
	spin.OnValueChange.Connect(func(v float32) {
		fmt.Printf("spin value %.1f\n", v)
	})
	gui.Add(spin)

	edit := glimmer.NewEditBox()
	edit.SetPosition(glimmer.Vec2{X: 20, Y: 100})
	edit.SetSize(glimmer.Vec2{X: 200, Y: 24})
	edit.SetText("type here")
	gui.Add(edit)

	if *darkMode {
		if err := glimmer.DarkTheme().Apply(gui.Root()); err != nil {
			return fmt.Errorf("theme: %w", err)
		}
	}

	for !window.ShouldClose() {
		glfw.PollEvents()
		for _, ev := range inputAdapter.Flush() {
			gui.HandleEvent(ev)
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		renderer.Resize(w, h)

		if err := gui.Draw(renderer); err != nil {
			return fmt.Errorf("draw: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
