package overlay

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
)

// Property-backed widget helpers. Each helper reads the named property,
// hands a mutable reference to the matching imgui widget, and writes the
// value back through Set only when the widget reports an edit, so a frame
// without user input fires no change notification. All helpers report
// whether the property changed this frame.

// TextInput draws a text field bound to a text-backed property. The
// property must have been declared with DeclareText; the buffer, not the
// widget, enforces the capacity limit, so an edit longer than capacity-1
// bytes is truncated on write-back.
func (b *Base) TextInput(label, name string) bool {
	buf := b.mustTextBuffer(name)
	text := buf.String()
	if imgui.InputText(label, &text) {
		Set(&b.Props, name, text)
		return true
	}
	return false
}

// IntInput draws an integer field bound to an int property.
func (b *Base) IntInput(label, name string) bool {
	v := int32(Get(&b.Props, name, 0))
	if imgui.InputInt(label, &v) {
		Set(&b.Props, name, int(v))
		return true
	}
	return false
}

// FloatInput draws a draggable float field bound to a float32 property.
func (b *Base) FloatInput(label, name string) bool {
	v := Get(&b.Props, name, float32(0))
	if imgui.DragFloat(label, &v) {
		Set(&b.Props, name, v)
		return true
	}
	return false
}

// Float64Input draws a draggable float field bound to a float64 property.
// The binding has no double-typed widget, so the value round-trips through
// float32 while being edited.
func (b *Base) Float64Input(label, name string) bool {
	v := float32(Get(&b.Props, name, float64(0)))
	if imgui.DragFloat(label, &v) {
		Set(&b.Props, name, float64(v))
		return true
	}
	return false
}

// Checkbox draws a checkbox bound to a bool property.
func (b *Base) Checkbox(label, name string) bool {
	v := Get(&b.Props, name, false)
	if imgui.Checkbox(label, &v) {
		Set(&b.Props, name, v)
		return true
	}
	return false
}

func (b *Base) mustTextBuffer(name string) *TextBuffer {
	buf := b.Props.TextBuffer(name)
	if buf == nil {
		panic(fmt.Sprintf("overlay: property %q used as text input but never declared with DeclareText", name))
	}
	return buf
}
