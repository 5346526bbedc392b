package piecetable

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"strings"

	"github.com/npillmayer/piecetable/buffer"
)

// Table is a piece-table text buffer.
//
// A table holds the document text in two append-style byte buffers and an
// ordered list of pieces referencing them. All positions taken or returned by
// table methods are character (rune) offsets; translation to byte offsets
// happens internally and never splits a multi-byte encoding.
//
// Due to its internal structure a piece table has performance characteristics
// differing from Go strings or byte arrays:
//
//	Operation     |   Piece table   |  String
//	--------------+-----------------+--------
//	Insert        |   O(pieces)     |   O(n)
//	Delete        |   O(pieces)     |   O(n)
//	Slice         |   O(pieces+m)   |   O(m)
//
// The piece count grows with the number of non-adjacent edits; no rebalancing
// or compaction is attempted. A Table is not safe for concurrent use.
type Table struct {
	orig  *buffer.Buffer
	added *buffer.Buffer

	// piece list; in-order concatenation of referenced text is the document.
	pieces []piece

	// running totals, updated on every structural change.
	chars uint64
	bytes uint64

	// line index, nil when line tracking is disabled.
	lines *lineIndex

	// contiguous-insert bookkeeping, see edit.go.
	coalesce bool
	open     openTail
}

// FromText creates a table holding initial as its document text.
//
// The original buffer is fixed to initial's bytes, the added buffer starts
// empty, and the piece list holds a single piece spanning the whole original
// buffer (or none, if initial is empty). Returns buffer.ErrInvalidUTF8 if
// initial is not valid UTF-8.
//
// Feature selection is fixed per table, see Option.
func FromText(initial string, opts ...Option) (*Table, error) {
	cfg := defaultConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	orig, err := buffer.From([]byte(initial))
	if err != nil {
		T().Errorf("piece table: initial text rejected: %v", err)
		return nil, err
	}
	t := &Table{
		orig:     orig,
		added:    buffer.New(),
		chars:    orig.RuneCount(),
		bytes:    orig.Len(),
		coalesce: cfg.coalesce,
	}
	if orig.Len() > 0 {
		t.pieces = []piece{{src: original, start: 0, end: orig.Len(), chars: orig.RuneCount()}}
	}
	if cfg.lineTracking {
		t.lines = newLineIndex(cfg.breaks, initial)
	}
	T().Debugf("piece table: created with %d chars, %d bytes", t.chars, t.bytes)
	return t, nil
}

// Len returns the document length in characters.
func (t *Table) Len() uint64 {
	return t.chars
}

// ByteLen returns the document length in bytes.
func (t *Table) ByteLen() uint64 {
	return t.bytes
}

// Slice returns the document text of the half-open character range
// [start, end).
//
// Returns ErrInvalidRange if start exceeds end and ErrIndexOutOfBounds if
// end exceeds the document length. The result is a copy, not a live view.
func (t *Table) Slice(start, end uint64) (string, error) {
	if start > end {
		return "", ErrInvalidRange
	}
	if end > t.chars {
		return "", ErrIndexOutOfBounds
	}
	if start == end {
		return "", nil
	}
	var sb strings.Builder
	i, off := t.locate(start)
	remaining := end - start
	for ; i < len(t.pieces) && remaining > 0; i++ {
		p := t.pieces[i]
		take := min(p.chars-off, remaining)
		frag, err := t.pieceText(p, off, take)
		assert(err == nil, "slice range does not translate to byte offsets")
		sb.Write(frag)
		remaining -= take
		off = 0
	}
	assert(remaining == 0, "piece chars do not cover the requested range")
	return sb.String(), nil
}

// pieceText returns the bytes of take runes of p, starting at rune offset
// off within the piece.
func (t *Table) pieceText(p piece, off, take uint64) ([]byte, error) {
	buf := t.buf(p.src)
	if off == 0 && take == p.chars {
		return buf.Slice(p.start, p.end)
	}
	base, err := buf.RunesBefore(p.start)
	if err != nil {
		return nil, err
	}
	from, err := buf.ByteIndex(base + off)
	if err != nil {
		return nil, err
	}
	to, err := buf.ByteIndex(base + off + take)
	if err != nil {
		return nil, err
	}
	return buf.Slice(from, to)
}

// CharAt returns the character at position at.
//
// Returns ErrIndexOutOfBounds if at is not less than the document length.
func (t *Table) CharAt(at uint64) (rune, error) {
	if at >= t.chars {
		return 0, ErrIndexOutOfBounds
	}
	i, off := t.locate(at)
	p := t.pieces[i]
	buf := t.buf(p.src)
	base, err := buf.RunesBefore(p.start)
	assert(err == nil, "piece start is not a rune boundary")
	bytePos, err := buf.ByteIndex(base + off)
	assert(err == nil, "char position is not translatable")
	r, _, err := buf.RuneAt(bytePos)
	assert(err == nil, "char position does not decode")
	return r, nil
}

// String returns the complete document as a Go string. This may be an
// expensive operation, as it collects all fragments into one continuous
// string.
func (t *Table) String() string {
	s, err := t.Slice(0, t.chars)
	assert(err == nil, "table.String: cannot materialize document")
	return s
}

// IsVoid reports whether the document is empty.
func (t *Table) IsVoid() bool {
	return t.chars == 0
}
