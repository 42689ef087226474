package overlay

// Renderer is the boundary between the overlay and a host rendering
// backend. One implementation exists per backend; backend/opengl provides
// a GLFW + OpenGL 4.1 driver.
//
// An implementation moves through exactly one state transition,
// uninitialized to initialized, and stays usable afterwards.
type Renderer interface {
	// Init performs one-time setup: font atlas upload and graphics
	// resource creation. The Manager calls it exactly once, at
	// construction, before any frame runs.
	Init() error

	// PreFrame pushes the current input device state into imgui, applies
	// the frame delta time in seconds, and begins a new imgui frame.
	PreFrame(delta float32)

	// PostFrame finalizes the imgui frame and submits the generated draw
	// data to the host graphics backend.
	PostFrame()
}
