package overlay

import (
	"errors"

	"github.com/inkyblackness/imgui-go/v4"
)

// Manager owns the root elements of the overlay and drives one imgui frame
// per Render call. Elements added or removed while a frame is in flight
// (from a widget callback, say a button's click handler) are queued and
// applied at the top of the next Render, so the set being iterated never
// mutates under the iteration.
//
// A Manager is single-threaded: every method must run on the thread that
// calls Render.
type Manager struct {
	renderer Renderer
	theme    *Theme

	elements      []Element
	pendingAdd    []Element
	pendingRemove []Element

	acceptMouse    bool
	acceptKeyboard bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithTheme applies a theme to the imgui style at construction time.
// The imgui context must already exist when NewManager runs.
func WithTheme(t Theme) ManagerOption {
	return func(m *Manager) { m.theme = &t }
}

// NewManager creates a Manager and runs the renderer's one-time Init.
// Rendering before backend initialization is a usage error; tying Init to
// construction makes it unrepresentable.
func NewManager(r Renderer, opts ...ManagerOption) (*Manager, error) {
	if r == nil {
		return nil, errors.New("overlay: nil renderer")
	}

	m := &Manager{renderer: r}
	for _, opt := range opts {
		opt(m)
	}

	if err := r.Init(); err != nil {
		return nil, err
	}
	if m.theme != nil {
		m.theme.Apply()
	}
	return m, nil
}

// Add queues an element for inclusion in the live set. The element starts
// rendering on the next Render call. Adding an element that is already
// live, or queued, is a no-op; identity is pointer identity.
func (m *Manager) Add(e Element) {
	if e == nil {
		return
	}
	m.pendingAdd = append(m.pendingAdd, e)
}

// Remove queues an element for removal from the live set, taking effect on
// the next Render call. Removing an element that was never added is a
// no-op.
func (m *Manager) Remove(e Element) {
	if e == nil {
		return
	}
	m.pendingRemove = append(m.pendingRemove, e)
}

// Len returns the number of live elements. Queued additions and removals
// do not count until the next Render applies them.
func (m *Manager) Len() int {
	return len(m.elements)
}

// Render drives one overlay frame: apply queued element changes, run the
// renderer's pre-frame hook with the delta time in seconds, draw every
// visible element in insertion order, refresh the input capture flags from
// imgui's IO state, and run the renderer's post-frame hook.
func (m *Manager) Render(delta float32) {
	m.applyPending()

	m.renderer.PreFrame(delta)
	for _, e := range m.elements {
		Render(e)
	}
	m.acceptMouse, m.acceptKeyboard = captureState()
	m.renderer.PostFrame()
}

// AcceptingMouseInput reports whether imgui wanted the mouse during the
// last rendered frame. While true, the host should not treat mouse input
// as game input.
func (m *Manager) AcceptingMouseInput() bool {
	return m.acceptMouse
}

// AcceptingKeyboardInput reports whether imgui wanted the keyboard during
// the last rendered frame.
func (m *Manager) AcceptingKeyboardInput() bool {
	return m.acceptKeyboard
}

func (m *Manager) applyPending() {
	for _, e := range m.pendingAdd {
		if !m.contains(e) {
			m.elements = append(m.elements, e)
		}
	}
	m.pendingAdd = m.pendingAdd[:0]

	for _, e := range m.pendingRemove {
		for i, live := range m.elements {
			if live == e {
				m.elements = append(m.elements[:i], m.elements[i+1:]...)
				break
			}
		}
	}
	m.pendingRemove = m.pendingRemove[:0]
}

func (m *Manager) contains(e Element) bool {
	for _, live := range m.elements {
		if live == e {
			return true
		}
	}
	return false
}

// captureState reads the per-frame capture flags from the active imgui
// context. Tests stub it out; no imgui context exists there.
var captureState = func() (mouse, keyboard bool) {
	io := imgui.CurrentIO()
	return io.WantCaptureMouse(), io.WantCaptureKeyboard()
}
