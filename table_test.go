package piecetable

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/piecetable/buffer"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func setupTracing(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

func mustTable(t *testing.T, text string, opts ...Option) *Table {
	t.Helper()
	pt, err := FromText(text, opts...)
	if err != nil {
		t.Fatalf("unexpected FromText error: %v", err)
	}
	return pt
}

func TestFromTextIdempotent(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	for _, text := range []string{"", "Hello World", "héllo", "a\nb\nc", "😀😀😀"} {
		pt := mustTable(t, text)
		if pt.String() != text {
			t.Errorf("FromText(%q).String() = %q", text, pt.String())
		}
		if pt.Len() != uint64(utf8.RuneCountInString(text)) {
			t.Errorf("FromText(%q).Len() = %d", text, pt.Len())
		}
	}
}

func TestFromTextRejectsInvalidUTF8(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	_, err := FromText(string([]byte{0xff, 0xfe}))
	if !errors.Is(err, buffer.ErrInvalidUTF8) {
		t.Fatalf("expected buffer.ErrInvalidUTF8, got %v", err)
	}
}

func TestEmptyDocumentHasNoPieces(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	pt := mustTable(t, "")
	if !pt.IsVoid() || pt.PieceCount() != 0 {
		t.Fatalf("empty document: IsVoid=%v, pieces=%d", pt.IsVoid(), pt.PieceCount())
	}
}

func TestSliceMultiByte(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	pt := mustTable(t, "héllo") // 5 chars, 6 bytes
	if pt.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", pt.Len())
	}
	s, err := pt.Slice(1, 2)
	if err != nil {
		t.Fatalf("unexpected Slice error: %v", err)
	}
	if s != "é" {
		t.Errorf("Slice(1,2) = %q, want é", s)
	}
}

func TestSliceRangeErrors(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	pt := mustTable(t, "abc")
	if _, err := pt.Slice(2, 1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	if _, err := pt.Slice(0, 4); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if s, err := pt.Slice(2, 2); err != nil || s != "" {
		t.Errorf("empty slice: %q, %v", s, err)
	}
}

func TestCharAt(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	pt := mustTable(t, "héllo")
	if err := pt.Insert(5, " wörld"); err != nil {
		t.Fatalf("unexpected Insert error: %v", err)
	}
	want := []rune("héllo wörld")
	for i, r := range want {
		got, err := pt.CharAt(uint64(i))
		if err != nil {
			t.Fatalf("CharAt(%d) error: %v", i, err)
		}
		if got != r {
			t.Errorf("CharAt(%d) = %q, want %q", i, got, r)
		}
	}
	if _, err := pt.CharAt(pt.Len()); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds at end, got %v", err)
	}
}

// Length invariant: after every edit, Len() matches both the slice of the
// whole document and the sum of the piece char lengths.
func checkLengthInvariant(t *testing.T, pt *Table) {
	t.Helper()
	s, err := pt.Slice(0, pt.Len())
	if err != nil {
		t.Fatalf("Slice(0, Len) error: %v", err)
	}
	if uint64(utf8.RuneCountInString(s)) != pt.Len() {
		t.Fatalf("Len() = %d, slice has %d chars", pt.Len(), utf8.RuneCountInString(s))
	}
	if !utf8.ValidString(s) {
		t.Fatalf("document is not well-formed UTF-8: %q", s)
	}
	var sum uint64
	for _, p := range pt.pieces {
		if p.chars == 0 {
			t.Fatalf("zero-length piece survived an operation")
		}
		sum += p.chars
	}
	if sum != pt.Len() {
		t.Fatalf("piece chars sum to %d, Len() = %d", sum, pt.Len())
	}
}

func TestLengthInvariantUnderEditSequence(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	pt := mustTable(t, "Der Wolf änderte die Lämmer")
	edits := []func() error{
		func() error { return pt.Insert(4, "böse ") },
		func() error { return pt.Insert(0, "„") },
		func() error { return pt.Insert(pt.Len(), "“") },
		func() error { return pt.Delete(1, 5) },
		func() error { return pt.Insert(1, "Ein ") },
		func() error { return pt.Delete(0, pt.Len()) },
		func() error { return pt.Insert(0, "neu\ngebaut") },
	}
	checkLengthInvariant(t, pt)
	for i, edit := range edits {
		if err := edit(); err != nil {
			t.Fatalf("edit %d failed: %v", i, err)
		}
		checkLengthInvariant(t, pt)
	}
}
