package overlay

import "fmt"

// Props is a per-element property store with change notification.
// Property values live in a name-keyed map, except for text-backed
// properties whose authoritative storage is a fixed-capacity TextBuffer
// (see DeclareText). The zero value is ready to use.
//
// A property name maps to at most one value type for the lifetime of the
// store; reading or writing it as a different type panics with a
// *PropTypeError. That is a programming error in the element, not a
// runtime condition to handle.
type Props struct {
	values    map[string]any
	buffers   map[string]*TextBuffer
	listeners []func(name string)
	suppress  int
}

// PropTypeError reports a property accessed as a type other than the one
// it stores.
type PropTypeError struct {
	Name string
	Want string
	Have string
}

func (e *PropTypeError) Error() string {
	return fmt.Sprintf("overlay: property %q holds %s, accessed as %s", e.Name, e.Have, e.Want)
}

// DeclareText registers name as a text-backed property with the given
// buffer capacity in bytes (must be >= 2). Call it once per property at
// element construction time, before the first render.
//
// Declaring a name twice, or a name that already holds a non-text value,
// panics: both are element construction mistakes.
func (p *Props) DeclareText(name string, capacity int) {
	if _, ok := p.buffers[name]; ok {
		panic(fmt.Sprintf("overlay: text property %q declared twice", name))
	}
	if v, ok := p.values[name]; ok {
		panic(fmt.Sprintf("overlay: property %q already holds a %T value, cannot declare as text", name, v))
	}
	if p.buffers == nil {
		p.buffers = make(map[string]*TextBuffer)
	}
	p.buffers[name] = NewTextBuffer(capacity)
}

// TextBuffer returns the buffer backing a text-backed property, or nil if
// name was never declared with DeclareText.
func (p *Props) TextBuffer(name string) *TextBuffer {
	return p.buffers[name]
}

// OnChange registers a listener invoked synchronously, in registration
// order, with the property name after every effective set.
func (p *Props) OnChange(fn func(name string)) {
	p.listeners = append(p.listeners, fn)
}

// Suppress disables change notification until the returned restore
// function is called:
//
//	defer p.Suppress()()
//
// Suppression nests: notification resumes only after every restore from
// every active Suppress call has run.
func (p *Props) Suppress() (restore func()) {
	p.suppress++
	return func() { p.suppress-- }
}

// Suppressed reports whether change notification is currently disabled.
func (p *Props) Suppressed() bool {
	return p.suppress > 0
}

func (p *Props) notify(name string) {
	if p.suppress > 0 {
		return
	}
	for _, fn := range p.listeners {
		fn(name)
	}
}

// Get returns the value of a property, or def if it was never set.
// Text-backed properties decode their buffer: the bytes before the first
// zero, as a string.
func Get[T comparable](p *Props, name string, def T) T {
	if buf, ok := p.buffers[name]; ok {
		v, ok := any(buf.String()).(T)
		if !ok {
			panic(&PropTypeError{Name: name, Want: fmt.Sprintf("%T", def), Have: "string (text-backed)"})
		}
		return v
	}
	stored, ok := p.values[name]
	if !ok {
		return def
	}
	v, ok := stored.(T)
	if !ok {
		panic(&PropTypeError{Name: name, Want: fmt.Sprintf("%T", def), Have: fmt.Sprintf("%T", stored)})
	}
	return v
}

// Set stores a property value and fires change notification, unless the
// value equals the one already stored, in which case nothing happens.
// For text-backed properties the value must be a string; it is written
// into the backing buffer, truncated to capacity-1 bytes if longer.
func Set[T comparable](p *Props, name string, value T) {
	if buf, ok := p.buffers[name]; ok {
		s, ok := any(value).(string)
		if !ok {
			panic(&PropTypeError{Name: name, Want: fmt.Sprintf("%T", value), Have: "string (text-backed)"})
		}
		if s == buf.String() {
			return
		}
		buf.Set(s)
		p.notify(name)
		return
	}
	if stored, ok := p.values[name]; ok {
		prev, ok := stored.(T)
		if !ok {
			panic(&PropTypeError{Name: name, Want: fmt.Sprintf("%T", value), Have: fmt.Sprintf("%T", stored)})
		}
		if prev == value {
			return
		}
	}
	if p.values == nil {
		p.values = make(map[string]any)
	}
	p.values[name] = value
	p.notify(name)
}
