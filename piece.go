package piecetable

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"slices"

	"github.com/npillmayer/piecetable/buffer"
)

// source tags the buffer a piece references.
type source uint8

const (
	original source = iota
	added
)

// piece references a contiguous character range inside exactly one buffer.
//
// start and end are byte offsets into the source buffer and always fall on
// rune boundaries. chars is the rune count of [start, end) and is never zero:
// operations that could produce an empty piece drop it instead.
type piece struct {
	src   source
	start uint64
	end   uint64
	chars uint64
}

func (p piece) byteLen() uint64 {
	return p.end - p.start
}

// buf returns the buffer a source tag refers to.
func (t *Table) buf(src source) *buffer.Buffer {
	if src == original {
		return t.orig
	}
	return t.added
}

// text returns the bytes a piece references.
func (t *Table) text(p piece) []byte {
	frag, err := t.buf(p.src).Slice(p.start, p.end)
	assert(err == nil, "piece references an invalid byte range")
	return frag
}

// locate finds the piece containing character offset at, returning its index
// and the character offset within it. For at == Len() it returns
// (len(pieces), 0), i.e. the append position.
//
// Callers validate at <= Len() beforehand; locate asserts it.
func (t *Table) locate(at uint64) (int, uint64) {
	assert(at <= t.chars, "locate position exceeds document length")
	var pos uint64
	for i := range t.pieces {
		if pos+t.pieces[i].chars > at {
			return i, at - pos
		}
		pos += t.pieces[i].chars
	}
	return len(t.pieces), 0
}

// splitAt computes the two halves of p split at rune offset k, 0 < k < chars.
// Both halves inherit p's source and adjoin at a translated byte boundary.
func (t *Table) splitAt(p piece, k uint64) (piece, piece) {
	assert(k > 0 && k < p.chars, "split offset must be strictly inside the piece")
	buf := t.buf(p.src)
	baseRunes, err := buf.RunesBefore(p.start)
	assert(err == nil, "piece start is not a rune boundary")
	mid, err := buf.ByteIndex(baseRunes + k)
	assert(err == nil, "split offset is not translatable")
	left := piece{src: p.src, start: p.start, end: mid, chars: k}
	right := piece{src: p.src, start: mid, end: p.end, chars: p.chars - k}
	return left, right
}

// mergeAt collapses pieces[i] and pieces[i+1] into one piece if they
// reference the same buffer and their byte ranges adjoin. Reports whether a
// merge happened.
func (t *Table) mergeAt(i int) bool {
	if i < 0 || i+1 >= len(t.pieces) {
		return false
	}
	a, b := t.pieces[i], t.pieces[i+1]
	if a.src != b.src || a.end != b.start {
		return false
	}
	t.pieces[i] = piece{src: a.src, start: a.start, end: b.end, chars: a.chars + b.chars}
	t.pieces = slices.Delete(t.pieces, i+1, i+2)
	return true
}

// PieceCount returns the number of pieces the document is internally
// split into.
func (t *Table) PieceCount() int {
	return len(t.pieces)
}
