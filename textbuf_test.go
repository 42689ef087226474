package overlay_test

import (
	"bytes"
	"testing"

	"github.com/go-theft-auto/overlay"
)

func TestTextBufferCapacityValidation(t *testing.T) {
	for _, capacity := range []int{-1, 0, 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("capacity %d: expected panic", capacity)
				}
			}()
			overlay.NewTextBuffer(capacity)
		}()
	}

	buf := overlay.NewTextBuffer(2)
	if buf.Cap() != 2 {
		t.Errorf("expected capacity 2, got %d", buf.Cap())
	}
}

func TestTextBufferTruncation(t *testing.T) {
	buf := overlay.NewTextBuffer(5)
	buf.Set("ABCDEFG")

	if got := buf.String(); got != "ABCD" {
		t.Errorf("expected %q after truncating write, got %q", "ABCD", got)
	}
	if got := buf.Len(); got != 4 {
		t.Errorf("expected logical length 4, got %d", got)
	}
}

func TestTextBufferShortAfterLong(t *testing.T) {
	buf := overlay.NewTextBuffer(16)
	buf.Set("a long-ish value")
	buf.Set("hi")

	// No stale bytes from the previous, longer value may survive.
	if got := buf.String(); got != "hi" {
		t.Errorf("expected %q, got %q", "hi", got)
	}
	raw := buf.Bytes()
	for i := 2; i < len(raw); i++ {
		if raw[i] != 0 {
			t.Fatalf("byte %d is %#x, expected zero", i, raw[i])
		}
	}
}

func TestTextBufferZeroThenCopy(t *testing.T) {
	buf := overlay.NewTextBuffer(8)
	buf.Set("abc")

	want := []byte{'a', 'b', 'c', 0, 0, 0, 0, 0}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("expected %v, got %v", want, buf.Bytes())
	}
}

func TestTextBufferEmbeddedNUL(t *testing.T) {
	buf := overlay.NewTextBuffer(8)
	buf.Set("ab\x00cd")

	// The logical string stops at the first zero byte, even one that
	// arrived embedded in the written value.
	if got := buf.String(); got != "ab" {
		t.Errorf("expected %q, got %q", "ab", got)
	}
}

func TestTextBufferEmpty(t *testing.T) {
	buf := overlay.NewTextBuffer(4)
	if got := buf.String(); got != "" {
		t.Errorf("expected empty string from fresh buffer, got %q", got)
	}
	buf.Set("xyz")
	buf.Set("")
	if got := buf.String(); got != "" {
		t.Errorf("expected empty string after clearing, got %q", got)
	}
}
