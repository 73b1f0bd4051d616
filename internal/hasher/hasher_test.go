package hasher

import (
	"bytes"
	"testing"
)

func TestContentHashDeterministic(t *testing.T) {
	data := []byte("some rendered pixels")
	a := ContentHash(data, 16)
	b := ContentHash(data, 16)
	if a != b {
		t.Errorf("expected deterministic hash, got %q and %q", a, b)
	}
	if len(a) != 16 {
		t.Errorf("expected 16 hex chars, got %d (%q)", len(a), a)
	}
}

func TestContentHashDiffersForDifferentData(t *testing.T) {
	a := ContentHash([]byte("a"), 16)
	b := ContentHash([]byte("b"), 16)
	if a == b {
		t.Error("expected different inputs to hash differently")
	}
}

func TestContentHashReaderMatchesContentHash(t *testing.T) {
	data := []byte("streamed content")
	want := ContentHash(data, 16)
	got, err := ContentHashReader(bytes.NewReader(data), 16)
	if err != nil {
		t.Fatalf("ContentHashReader: %v", err)
	}
	if got != want {
		t.Errorf("ContentHashReader = %q, want %q", got, want)
	}
}
