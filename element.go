package overlay

// Element is a self-contained unit of immediate-mode UI: its Draw method
// issues imgui calls each frame it is visible.
//
// Usage (custom element):
//
//	type scoreboard struct {
//	    overlay.Base
//	}
//
//	func newScoreboard() *scoreboard {
//	    s := &scoreboard{}
//	    s.DeclareText("Filter", 32)
//	    return s
//	}
//
//	func (s *scoreboard) Draw() {
//	    if imgui.BeginV("Scoreboard", nil, imgui.WindowFlagsNone) {
//	        s.TextInput("Filter", "Filter")
//	    }
//	    imgui.End()
//	}
type Element interface {
	// Draw issues the element's imgui calls for the current frame.
	// It runs only while the element is visible.
	Draw()

	// Visible reports whether the element should draw this frame.
	Visible() bool
}

// Render draws e if it is visible. The Manager uses it for every root
// element; parents use it to render child elements they own.
func Render(e Element) {
	if e == nil || !e.Visible() {
		return
	}
	e.Draw()
}

// Base is the embeddable core of an element: a visibility flag plus a
// property store with the imgui widget helpers in widgets.go. The zero
// value is visible with no properties set.
type Base struct {
	Props

	hidden bool
}

// Visible reports whether the element should draw this frame.
func (b *Base) Visible() bool {
	return !b.hidden
}

// SetVisible shows or hides the element.
func (b *Base) SetVisible(visible bool) {
	b.hidden = !visible
}

// Show makes the element visible.
func (b *Base) Show() { b.hidden = false }

// Hide stops the element from drawing until shown again.
func (b *Base) Hide() { b.hidden = true }
