package overlay

import (
	"errors"
	"testing"
)

// mockRenderer records lifecycle calls without touching imgui or GL.
type mockRenderer struct {
	initCalls int
	initErr   error

	events []string
}

func (m *mockRenderer) Init() error {
	m.initCalls++
	return m.initErr
}

func (m *mockRenderer) PreFrame(delta float32) {
	m.events = append(m.events, "pre")
}

func (m *mockRenderer) PostFrame() {
	m.events = append(m.events, "post")
}

// stubElement draws by recording into the shared renderer event log, so
// ordering against the pre/post hooks is checkable.
type stubElement struct {
	Base

	renderer  *mockRenderer
	name      string
	drawCalls int
	onDraw    func()
}

func (e *stubElement) Draw() {
	e.drawCalls++
	if e.renderer != nil {
		e.renderer.events = append(e.renderer.events, e.name)
	}
	if e.onDraw != nil {
		e.onDraw()
	}
}

// stubCapture replaces the imgui IO read for the duration of a test.
func stubCapture(t *testing.T, mouse, keyboard *bool) {
	t.Helper()
	prev := captureState
	captureState = func() (bool, bool) { return *mouse, *keyboard }
	t.Cleanup(func() { captureState = prev })
}

func newTestManager(t *testing.T) (*Manager, *mockRenderer) {
	t.Helper()
	mouse, keyboard := false, false
	stubCapture(t, &mouse, &keyboard)

	r := &mockRenderer{}
	m, err := NewManager(r)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m, r
}

func TestNewManagerRunsInit(t *testing.T) {
	m, r := newTestManager(t)
	if r.initCalls != 1 {
		t.Errorf("expected 1 init call, got %d", r.initCalls)
	}
	if m.Len() != 0 {
		t.Errorf("expected empty manager, got %d elements", m.Len())
	}
}

func TestNewManagerInitFailure(t *testing.T) {
	wantErr := errors.New("no GL context")
	_, err := NewManager(&mockRenderer{initErr: wantErr})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected init error, got %v", err)
	}
}

func TestNewManagerNilRenderer(t *testing.T) {
	_, err := NewManager(nil)
	if err == nil {
		t.Error("expected error for nil renderer")
	}
}

func TestManagerAddTakesEffectNextFrame(t *testing.T) {
	m, _ := newTestManager(t)

	e := &stubElement{}
	m.Add(e)
	if m.Len() != 0 {
		t.Errorf("expected pending add to stay queued, live set has %d", m.Len())
	}

	m.Render(0.016)
	if m.Len() != 1 {
		t.Errorf("expected 1 live element after render, got %d", m.Len())
	}
	if e.drawCalls != 1 {
		t.Errorf("expected 1 draw call, got %d", e.drawCalls)
	}
}

func TestManagerIdentityDedup(t *testing.T) {
	m, _ := newTestManager(t)

	e := &stubElement{}
	m.Add(e)
	m.Add(e)
	m.Render(0.016)

	if m.Len() != 1 {
		t.Errorf("expected 1 live element, got %d", m.Len())
	}
	if e.drawCalls != 1 {
		t.Errorf("expected 1 draw call per frame, got %d", e.drawCalls)
	}

	// Re-adding a live element stays a no-op.
	m.Add(e)
	m.Render(0.016)
	if m.Len() != 1 {
		t.Errorf("expected 1 live element, got %d", m.Len())
	}
	if e.drawCalls != 2 {
		t.Errorf("expected 2 draw calls after second frame, got %d", e.drawCalls)
	}
}

func TestManagerRemoveIdempotent(t *testing.T) {
	m, _ := newTestManager(t)

	e := &stubElement{}
	m.Remove(e) // never added: no-op
	m.Render(0.016)

	m.Add(e)
	m.Render(0.016)
	m.Remove(e)
	m.Remove(e)
	m.Render(0.016)

	if m.Len() != 0 {
		t.Errorf("expected empty live set, got %d", m.Len())
	}
}

func TestManagerReentrantAddDuringRender(t *testing.T) {
	m, _ := newTestManager(t)

	late := &stubElement{}
	trigger := &stubElement{}
	trigger.onDraw = func() { m.Add(late) }

	m.Add(trigger)
	m.Render(0.016)

	// The element added mid-frame must not render in the same pass.
	if late.drawCalls != 0 {
		t.Errorf("expected mid-frame add to miss the current pass, got %d draws", late.drawCalls)
	}

	m.Render(0.016)
	if late.drawCalls != 1 {
		t.Errorf("expected mid-frame add to render next pass, got %d draws", late.drawCalls)
	}
}

func TestManagerReentrantRemoveDuringRender(t *testing.T) {
	m, _ := newTestManager(t)

	first := &stubElement{}
	second := &stubElement{}
	first.onDraw = func() { m.Remove(second) }

	m.Add(first)
	m.Add(second)
	m.Render(0.016)

	// Removal queued mid-frame: second still rendered this pass.
	if second.drawCalls != 1 {
		t.Errorf("expected mid-frame remove to miss the current pass, got %d draws", second.drawCalls)
	}

	m.Render(0.016)
	if second.drawCalls != 1 {
		t.Errorf("expected removed element to stop rendering, got %d draws", second.drawCalls)
	}
	if first.drawCalls != 2 {
		t.Errorf("expected surviving element to keep rendering, got %d draws", first.drawCalls)
	}
}

func TestManagerSkipsHiddenElements(t *testing.T) {
	m, _ := newTestManager(t)

	e := &stubElement{}
	e.Hide()
	m.Add(e)
	m.Render(0.016)

	if e.drawCalls != 0 {
		t.Errorf("expected no draws while hidden, got %d", e.drawCalls)
	}
	if m.Len() != 1 {
		t.Errorf("hidden element must stay in the live set, got %d", m.Len())
	}
}

func TestManagerHookOrdering(t *testing.T) {
	m, r := newTestManager(t)

	a := &stubElement{renderer: r, name: "a"}
	b := &stubElement{renderer: r, name: "b"}
	m.Add(a)
	m.Add(b)
	m.Render(0.016)

	want := []string{"pre", "a", "b", "post"}
	if len(r.events) != len(want) {
		t.Fatalf("expected %v, got %v", want, r.events)
	}
	for i := range want {
		if r.events[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, r.events)
		}
	}
}

func TestManagerEndToEnd(t *testing.T) {
	mouse, keyboard := false, false
	stubCapture(t, &mouse, &keyboard)

	r := &mockRenderer{}
	m, err := NewManager(r)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	e := &stubElement{}
	m.Add(e)

	m.Render(0.1)
	if m.AcceptingMouseInput() || m.AcceptingKeyboardInput() {
		t.Error("expected capture flags to start false")
	}

	mouse = true
	m.Render(0.1)
	if !m.AcceptingMouseInput() || m.AcceptingKeyboardInput() {
		t.Error("expected mouse capture only after second frame")
	}

	keyboard = true
	m.Render(0.1)
	if !m.AcceptingMouseInput() || !m.AcceptingKeyboardInput() {
		t.Error("expected both capture flags after third frame")
	}

	if e.drawCalls != 3 {
		t.Errorf("expected the draw hook to fire exactly 3 times, got %d", e.drawCalls)
	}
}
