package piecetable

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"slices"
	"unicode/utf8"

	"github.com/npillmayer/piecetable/buffer"
)

// Runes returns an iterator over the document's characters in document
// order, starting with the character at offset from.
//
// The sequence is finite and reflects the document at the time of the call:
// it does not observe later mutation of the table. It is not restartable;
// obtain a fresh iterator to re-iterate. An out-of-bounds from yields an
// empty sequence.
func (t *Table) Runes(from uint64) iter.Seq[rune] {
	pieces, bufs := t.snapshot()
	total := t.chars
	i, off := 0, uint64(0)
	if from <= total {
		i, off = t.locate(from)
	} else {
		i = len(pieces)
	}
	return func(yield func(rune) bool) {
		for ; i < len(pieces); i++ {
			p := pieces[i]
			frag, err := bufs[p.src].Slice(p.start, p.end)
			assert(err == nil, "piece references an invalid byte range")
			pos := 0
			for n := uint64(0); n < off; n++ {
				_, w := utf8.DecodeRune(frag[pos:])
				pos += w
			}
			for pos < len(frag) {
				r, w := utf8.DecodeRune(frag[pos:])
				if !yield(r) {
					return
				}
				pos += w
			}
			off = 0
		}
	}
}

// ReverseRunes returns an iterator over the document's characters in reverse
// document order. from is an exclusive upper bound: the first character
// yielded is the one immediately before offset from, so ReverseRunes(Len())
// covers the whole document.
//
// Snapshot and restart semantics are the same as for Runes.
func (t *Table) ReverseRunes(from uint64) iter.Seq[rune] {
	pieces, bufs := t.snapshot()
	if from > t.chars {
		from = 0 // out of bounds yields an empty sequence
	}
	remaining := from
	return func(yield func(rune) bool) {
		i := len(pieces) - 1
		var skip uint64 // chars at the tail of the current walk beyond from
		var pos uint64
		for _, p := range pieces {
			pos += p.chars
		}
		for ; i >= 0; i-- {
			p := pieces[i]
			pos -= p.chars
			if pos >= remaining {
				continue
			}
			skip = pos + p.chars - remaining // tail chars past the bound
			frag, err := bufs[p.src].Slice(p.start, p.end)
			assert(err == nil, "piece references an invalid byte range")
			end := len(frag)
			for n := uint64(0); n < skip; n++ {
				_, w := utf8.DecodeLastRune(frag[:end])
				end -= w
			}
			for end > 0 {
				r, w := utf8.DecodeLastRune(frag[:end])
				if !yield(r) {
					return
				}
				end -= w
			}
			remaining = pos
		}
	}
}

// Fragments returns an iterator over the document's piece-sized text chunks
// in document order, for bulk consumers.
//
// Snapshot and restart semantics are the same as for Runes.
func (t *Table) Fragments() iter.Seq[string] {
	pieces, bufs := t.snapshot()
	return func(yield func(string) bool) {
		for _, p := range pieces {
			frag, err := bufs[p.src].Slice(p.start, p.end)
			assert(err == nil, "piece references an invalid byte range")
			if !yield(string(frag)) {
				return
			}
		}
	}
}

// snapshot captures the current piece list. The returned descriptors stay
// valid however the table is edited afterwards, because both buffers are
// append-only and never invalidate referenced byte ranges.
func (t *Table) snapshot() ([]piece, [2]*buffer.Buffer) {
	return slices.Clone(t.pieces), [2]*buffer.Buffer{original: t.orig, added: t.added}
}
