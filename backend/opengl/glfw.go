package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

// Platform feeds GLFW input into imgui's IO state. It installs its own
// GLFW callbacks on the window; a host that needs the same callbacks
// should install them first and chain to the previous handler.
type Platform struct {
	io     imgui.IO
	window *glfw.Window

	// A click can begin and end between two frames; latching presses
	// here keeps imgui from missing them.
	mouseJustPressed [3]bool
}

// NewPlatform creates a platform for the given window and wires its input
// callbacks to io.
func NewPlatform(window *glfw.Window, io imgui.IO) *Platform {
	p := &Platform{
		io:     io,
		window: window,
	}

	p.setKeyMapping()
	io.SetClipboard(clipboard{window: window})

	window.SetMouseButtonCallback(p.mouseButtonCallback)
	window.SetScrollCallback(p.scrollCallback)
	window.SetKeyCallback(p.keyCallback)
	window.SetCharCallback(p.charCallback)

	return p
}

// DisplaySize returns the window size in screen coordinates.
func (p *Platform) DisplaySize() [2]float32 {
	w, h := p.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// FramebufferSize returns the framebuffer size in pixels. On high-DPI
// displays this differs from DisplaySize.
func (p *Platform) FramebufferSize() [2]float32 {
	w, h := p.window.GetFramebufferSize()
	return [2]float32{float32(w), float32(h)}
}

// pushInput publishes the current display size, cursor position, and mouse
// button state into imgui IO. Called once per frame, before NewFrame.
func (p *Platform) pushInput() {
	displaySize := p.DisplaySize()
	p.io.SetDisplaySize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})

	if p.window.GetAttrib(glfw.Focused) != 0 {
		x, y := p.window.GetCursorPos()
		p.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	} else {
		p.io.SetMousePosition(imgui.Vec2{X: -1, Y: -1})
	}

	for i := 0; i < len(p.mouseJustPressed); i++ {
		down := p.mouseJustPressed[i] ||
			p.window.GetMouseButton(glfwButtonIDByIndex[i]) == glfw.Press
		p.io.SetMouseButtonDown(i, down)
		p.mouseJustPressed[i] = false
	}
}

var glfwButtonIDByIndex = map[int]glfw.MouseButton{
	0: glfw.MouseButton1,
	1: glfw.MouseButton2,
	2: glfw.MouseButton3,
}

var glfwButtonIndexByID = map[glfw.MouseButton]int{
	glfw.MouseButton1: 0,
	glfw.MouseButton2: 1,
	glfw.MouseButton3: 2,
}

func (p *Platform) mouseButtonCallback(window *glfw.Window, rawButton glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	buttonIndex, known := glfwButtonIndexByID[rawButton]
	if known && action == glfw.Press {
		p.mouseJustPressed[buttonIndex] = true
	}
}

func (p *Platform) scrollCallback(window *glfw.Window, x, y float64) {
	p.io.AddMouseWheelDelta(float32(x), float32(y))
}

func (p *Platform) keyCallback(window *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press {
		p.io.KeyPress(int(key))
	}
	if action == glfw.Release {
		p.io.KeyRelease(int(key))
	}

	// Modifier state from the mods argument is not reliable across
	// platforms; read it from the key state instead.
	p.io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	p.io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	p.io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	p.io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
}

func (p *Platform) charCallback(window *glfw.Window, char rune) {
	p.io.AddInputCharacters(string(char))
}

func (p *Platform) setKeyMapping() {
	// Keyboard mapping: imgui relies on these for text editing shortcuts
	// inside input widgets.
	keys := map[int]int{
		imgui.KeyTab:        int(glfw.KeyTab),
		imgui.KeyLeftArrow:  int(glfw.KeyLeft),
		imgui.KeyRightArrow: int(glfw.KeyRight),
		imgui.KeyUpArrow:    int(glfw.KeyUp),
		imgui.KeyDownArrow:  int(glfw.KeyDown),
		imgui.KeyPageUp:     int(glfw.KeyPageUp),
		imgui.KeyPageDown:   int(glfw.KeyPageDown),
		imgui.KeyHome:       int(glfw.KeyHome),
		imgui.KeyEnd:        int(glfw.KeyEnd),
		imgui.KeyInsert:     int(glfw.KeyInsert),
		imgui.KeyDelete:     int(glfw.KeyDelete),
		imgui.KeyBackspace:  int(glfw.KeyBackspace),
		imgui.KeySpace:      int(glfw.KeySpace),
		imgui.KeyEnter:      int(glfw.KeyEnter),
		imgui.KeyEscape:     int(glfw.KeyEscape),
		imgui.KeyA:          int(glfw.KeyA),
		imgui.KeyC:          int(glfw.KeyC),
		imgui.KeyV:          int(glfw.KeyV),
		imgui.KeyX:          int(glfw.KeyX),
		imgui.KeyY:          int(glfw.KeyY),
		imgui.KeyZ:          int(glfw.KeyZ),
	}
	for imguiKey, nativeKey := range keys {
		p.io.KeyMap(imguiKey, nativeKey)
	}
}

// clipboard bridges imgui's clipboard requests to GLFW.
type clipboard struct {
	window *glfw.Window
}

func (c clipboard) Text() (string, error) {
	return c.window.GetClipboardString(), nil
}

func (c clipboard) SetText(value string) {
	c.window.SetClipboardString(value)
}
