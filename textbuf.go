package overlay

import "fmt"

// TextBuffer is a fixed-capacity byte buffer backing a text property.
// Dear ImGui's text widgets operate on a mutable, NUL-terminated buffer;
// TextBuffer keeps that convention on the Go side so a text property has
// stable storage across frames with a hard capacity limit.
//
// Invariants: every byte past the logical string is zero, and the logical
// string is the prefix before the first zero byte. A value longer than
// Cap()-1 bytes is silently truncated on write; the final byte always stays
// zero so the buffer remains a valid NUL-terminated string.
type TextBuffer struct {
	data []byte
}

// NewTextBuffer creates a buffer with the given capacity in bytes.
// Capacity must be at least 2 (one content byte plus the terminator);
// anything smaller is a declaration mistake and panics.
func NewTextBuffer(capacity int) *TextBuffer {
	if capacity < 2 {
		panic(fmt.Sprintf("overlay: text buffer capacity must be >= 2, got %d", capacity))
	}
	return &TextBuffer{data: make([]byte, capacity)}
}

// Cap returns the buffer capacity in bytes, including the terminator slot.
func (b *TextBuffer) Cap() int {
	return len(b.data)
}

// Set replaces the buffer contents with s, truncating to Cap()-1 bytes.
// The whole buffer is zeroed first so no stale bytes from a longer previous
// value survive past the new terminator.
//
// Truncation happens at a byte boundary; a multi-byte UTF-8 sequence that
// straddles the capacity limit is cut mid-sequence.
func (b *TextBuffer) Set(s string) {
	clear(b.data)
	copy(b.data[:len(b.data)-1], s)
}

// String returns the logical string: the prefix before the first zero byte.
func (b *TextBuffer) String() string {
	for i, c := range b.data {
		if c == 0 {
			return string(b.data[:i])
		}
	}
	// Unreachable while the invariants hold; the last byte is never written.
	return string(b.data)
}

// Len returns the logical string length in bytes.
func (b *TextBuffer) Len() int {
	for i, c := range b.data {
		if c == 0 {
			return i
		}
	}
	return len(b.data)
}

// Bytes returns the backing slice, terminator included. Callers that hand
// the slice to a native widget call must preserve the trailing zero.
func (b *TextBuffer) Bytes() []byte {
	return b.data
}
