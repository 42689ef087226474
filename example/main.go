// Example demonstrates an overlay driving Dear ImGui on top of a GLFW
// window: a debug window built from property-backed widgets, change
// notification feeding a log line, and capture flags steering input.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/overlay"
	"github.com/go-theft-auto/overlay/backend/opengl"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "overlay example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize GLFW.
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

	// The imgui context must exist before the driver and the manager.
	context := imgui.CreateContext(nil)
	defer context.Destroy()

	driver := opengl.NewDriver(window)
	defer driver.Dispose()

	manager, err := overlay.NewManager(driver, overlay.WithTheme(overlay.GTATheme()))
	if err != nil {
		return fmt.Errorf("overlay manager: %w", err)
	}

	debug := newDebugWindow()
	manager.Add(debug)

	lastTime := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		delta := float32(now - lastTime)
		lastTime = now

		manager.Render(delta)

		if !manager.AcceptingKeyboardInput() && window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		window.SwapBuffers()
	}

	return nil
}

// debugWindow is a demo element exercising every property-backed widget
// helper plus a few plain imgui calls.
type debugWindow struct {
	overlay.Base

	changes []string
	spawned int
}

func newDebugWindow() *debugWindow {
	w := &debugWindow{}
	w.DeclareText("PlayerName", 24)

	// Seed initial values without spamming the change log.
	defer w.Suppress()()
	overlay.Set(&w.Props, "PlayerName", "CJ")
	overlay.Set(&w.Props, "Health", 100)
	overlay.Set(&w.Props, "RunSpeed", float32(1.0))
	overlay.Set(&w.Props, "Gravity", 9.81)
	overlay.Set(&w.Props, "GodMode", false)

	w.OnChange(func(name string) {
		w.changes = append(w.changes, name)
		if len(w.changes) > 8 {
			w.changes = w.changes[1:]
		}
	})

	return w
}

func (w *debugWindow) Draw() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 20, Y: 20}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 360, Y: 420}, imgui.ConditionFirstUseEver)

	open := true
	if imgui.BeginV("Debug", &open, imgui.WindowFlagsNone) {
		w.TextInput("Name", "PlayerName")
		w.IntInput("Health", "Health")
		w.FloatInput("Run speed", "RunSpeed")
		w.Float64Input("Gravity", "Gravity")
		w.Checkbox("God mode", "GodMode")

		imgui.Separator()

		if imgui.Button("Spawn vehicle") {
			w.spawned++
		}
		imgui.SameLine()
		imgui.Text(fmt.Sprintf("spawned: %d", w.spawned))

		if imgui.TreeNode("Player state") {
			imgui.Text(fmt.Sprintf("name:    %s", overlay.Get(&w.Props, "PlayerName", "")))
			imgui.Text(fmt.Sprintf("health:  %d", overlay.Get(&w.Props, "Health", 0)))
			imgui.Text(fmt.Sprintf("godmode: %v", overlay.Get(&w.Props, "GodMode", false)))
			imgui.TreePop()
		}

		imgui.Separator()

		imgui.Text("Recent changes")
		if imgui.BeginChildV("changes", imgui.Vec2{X: 0, Y: 120}, true, imgui.WindowFlagsNone) {
			for _, name := range w.changes {
				imgui.Text(name)
			}
		}
		imgui.EndChild()
	}
	imgui.End()

	if !open {
		w.Hide()
	}
}
