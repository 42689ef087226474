package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/overlay"
)

// Driver implements overlay.Renderer for a GLFW window with an OpenGL 4.1
// context. It composes Platform (input) and Renderer (draw-data
// submission).
type Driver struct {
	io       imgui.IO
	platform *Platform
	renderer *Renderer
}

var _ overlay.Renderer = (*Driver)(nil)

// NewDriver creates a driver for the given window. The imgui context must
// already exist, and the window's GL context must be current on the
// calling thread.
func NewDriver(window *glfw.Window) *Driver {
	io := imgui.CurrentIO()
	return &Driver{
		io:       io,
		platform: NewPlatform(window, io),
		renderer: NewRenderer(io),
	}
}

// Init loads OpenGL function pointers, builds the shader program and
// buffers, and uploads the font atlas. Called once by overlay.NewManager.
func (d *Driver) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	return d.renderer.createDeviceObjects()
}

// PreFrame pushes the window's input state into imgui, applies the frame
// delta, and begins a new imgui frame.
func (d *Driver) PreFrame(delta float32) {
	d.platform.pushInput()
	if delta <= 0 {
		// imgui requires a positive delta time.
		delta = 1.0 / 60.0
	}
	d.io.SetDeltaTime(delta)
	imgui.NewFrame()
}

// PostFrame finalizes the imgui frame and draws the generated draw data
// into the current framebuffer.
func (d *Driver) PostFrame() {
	imgui.Render()
	d.renderer.render(d.platform.DisplaySize(), d.platform.FramebufferSize(), imgui.RenderedDrawData())
}

// Dispose releases the driver's GL resources. The imgui context is owned
// by the host and is not destroyed here.
func (d *Driver) Dispose() {
	d.renderer.Dispose()
}
