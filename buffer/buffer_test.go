package buffer

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFromRejectsInvalidUTF8(t *testing.T) {
	_, err := From([]byte{0xff, 0xfe})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestAppendReturnsPlacement(t *testing.T) {
	b := New()
	byteOff, runeOff, n, err := b.Append([]byte("héllo"))
	if err != nil {
		t.Fatalf("unexpected Append error: %v", err)
	}
	if byteOff != 0 || runeOff != 0 || n != 5 {
		t.Fatalf("unexpected placement: byteOff=%d runeOff=%d n=%d", byteOff, runeOff, n)
	}
	byteOff, runeOff, n, err = b.Append([]byte(" wörld"))
	if err != nil {
		t.Fatalf("unexpected Append error: %v", err)
	}
	if byteOff != 6 || runeOff != 5 || n != 6 {
		t.Fatalf("unexpected placement: byteOff=%d runeOff=%d n=%d", byteOff, runeOff, n)
	}
	if b.Len() != 13 || b.RuneCount() != 11 {
		t.Fatalf("unexpected totals: bytes=%d runes=%d", b.Len(), b.RuneCount())
	}
}

func TestByteIndexRoundTrip(t *testing.T) {
	text := "a😀b\ncdé"
	b, err := From([]byte(text))
	if err != nil {
		t.Fatalf("unexpected From error: %v", err)
	}
	runeOff := uint64(0)
	for byteOff, r := range text {
		got, err := b.ByteIndex(runeOff)
		if err != nil {
			t.Fatalf("ByteIndex(%d) error: %v", runeOff, err)
		}
		if got != uint64(byteOff) {
			t.Fatalf("ByteIndex(%d) = %d, want %d (rune %q)", runeOff, got, byteOff, r)
		}
		back, err := b.RunesBefore(uint64(byteOff))
		if err != nil {
			t.Fatalf("RunesBefore(%d) error: %v", byteOff, err)
		}
		if back != runeOff {
			t.Fatalf("RunesBefore(%d) = %d, want %d", byteOff, back, runeOff)
		}
		runeOff++
	}
	end, err := b.ByteIndex(runeOff)
	if err != nil || end != b.Len() {
		t.Fatalf("ByteIndex(end) = %d, %v", end, err)
	}
}

func TestTranslationAcrossMarkStride(t *testing.T) {
	// Two-byte runes so byte and rune offsets diverge across checkpoints.
	text := strings.Repeat("é", 3*markStride+7)
	b, err := From([]byte(text))
	if err != nil {
		t.Fatalf("unexpected From error: %v", err)
	}
	if len(b.marks) != 3 {
		t.Fatalf("expected 3 checkpoints, got %d", len(b.marks))
	}
	for _, runeOff := range []uint64{0, 1, markStride - 1, markStride, markStride + 1, 2*markStride + 100, 3*markStride + 6} {
		got, err := b.ByteIndex(runeOff)
		if err != nil {
			t.Fatalf("ByteIndex(%d) error: %v", runeOff, err)
		}
		if got != 2*runeOff {
			t.Fatalf("ByteIndex(%d) = %d, want %d", runeOff, got, 2*runeOff)
		}
		back, err := b.RunesBefore(got)
		if err != nil || back != runeOff {
			t.Fatalf("RunesBefore(%d) = %d, %v", got, back, err)
		}
	}
}

func TestSliceChecksBoundaries(t *testing.T) {
	b, err := From([]byte("a😀b"))
	if err != nil {
		t.Fatalf("unexpected From error: %v", err)
	}
	if _, err := b.Slice(0, 2); !errors.Is(err, ErrNotCharBoundary) {
		t.Fatalf("expected ErrNotCharBoundary, got %v", err)
	}
	if _, err := b.Slice(0, 99); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	s, err := b.Slice(1, 5)
	if err != nil {
		t.Fatalf("unexpected Slice error: %v", err)
	}
	if string(s) != "😀" {
		t.Fatalf("unexpected slice content: %q", string(s))
	}
}

func TestCountRunes(t *testing.T) {
	b, err := From([]byte("héllo wörld"))
	if err != nil {
		t.Fatalf("unexpected From error: %v", err)
	}
	n, err := b.CountRunes(0, b.Len())
	if err != nil || n != 11 {
		t.Fatalf("CountRunes full = %d, %v", n, err)
	}
	n, err = b.CountRunes(1, 3)
	if err != nil || n != 1 {
		t.Fatalf("CountRunes(1,3) = %d, %v; want 1 (é)", n, err)
	}
}

func TestRuneAtAndLastRuneBefore(t *testing.T) {
	b, err := From([]byte("a😀b"))
	if err != nil {
		t.Fatalf("unexpected From error: %v", err)
	}
	r, n, err := b.RuneAt(1)
	if err != nil || r != '😀' || n != 4 {
		t.Fatalf("RuneAt(1) = %q/%d, %v", r, n, err)
	}
	r, n, err = b.LastRuneBefore(5)
	if err != nil || r != '😀' || n != 4 {
		t.Fatalf("LastRuneBefore(5) = %q/%d, %v", r, n, err)
	}
	if _, _, err := b.RuneAt(b.Len()); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds at end, got %v", err)
	}
	if _, _, err := b.LastRuneBefore(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds at start, got %v", err)
	}
}

func TestAppendKeepsOldOffsetsValid(t *testing.T) {
	b := New()
	if _, _, _, err := b.Append([]byte("abc")); err != nil {
		t.Fatalf("unexpected Append error: %v", err)
	}
	s, err := b.Slice(0, 3)
	if err != nil {
		t.Fatalf("unexpected Slice error: %v", err)
	}
	if _, _, _, err := b.Append([]byte(strings.Repeat("x", 4096))); err != nil {
		t.Fatalf("unexpected Append error: %v", err)
	}
	if string(s) != "abc" {
		// A grown buffer may reallocate; the earlier slice must still hold the bytes.
		t.Fatalf("stale slice content: %q", string(s))
	}
	s2, err := b.Slice(0, 3)
	if err != nil || string(s2) != "abc" {
		t.Fatalf("re-slice after growth: %q, %v", string(s2), err)
	}
	if !utf8.Valid(s2) {
		t.Fatalf("slice not valid UTF-8")
	}
}
