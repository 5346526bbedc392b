/*
Package buffer implements append-only UTF-8 byte stores with fast
byte-offset/rune-offset translation.

A piece table references text by byte ranges into two such stores.
Buffers never shrink and bytes are never mutated in place, so a byte
range handed out once stays valid for the lifetime of the buffer.

Translation between rune offsets and byte offsets is backed by a
checkpoint index recorded while bytes are appended: one (byte, rune)
mark per fixed rune stride. A conversion is a binary search over the
marks plus a forward decode bounded by the stride.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package buffer

import (
	"sort"
	"unicode/utf8"
)

// markStride is the checkpoint distance in runes.
const markStride = 256

// mark is a translation checkpoint: byte offset and rune offset of the
// same boundary.
type mark struct {
	bytes uint64
	runes uint64
}

// Buffer is an append-only store of UTF-8 text.
//
// The zero value is an empty buffer ready for use.
type Buffer struct {
	data  []byte
	runes uint64
	marks []mark
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// From creates a buffer seeded with text.
//
// Returns ErrInvalidUTF8 if text is not valid UTF-8.
func From(text []byte) (*Buffer, error) {
	b := New()
	if _, _, _, err := b.Append(text); err != nil {
		return nil, err
	}
	return b, nil
}

// Append validates text and appends its bytes to the buffer.
//
// It returns the byte offset and rune offset at which the text was placed,
// plus the number of runes appended. Appending never invalidates previously
// returned offsets.
func (b *Buffer) Append(text []byte) (byteOff, runeOff, runeCount uint64, err error) {
	if !utf8.Valid(text) {
		return 0, 0, 0, ErrInvalidUTF8
	}
	byteOff = uint64(len(b.data))
	runeOff = b.runes
	if len(text) == 0 {
		return byteOff, runeOff, 0, nil
	}
	b.data = append(b.data, text...)
	for i := 0; i < len(text); {
		_, n := utf8.DecodeRune(text[i:])
		i += n
		b.runes++
		runeCount++
		if b.runes%markStride == 0 {
			b.marks = append(b.marks, mark{bytes: byteOff + uint64(i), runes: b.runes})
		}
	}
	return byteOff, runeOff, runeCount, nil
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() uint64 {
	return uint64(len(b.data))
}

// RuneCount returns the buffer length in runes.
func (b *Buffer) RuneCount() uint64 {
	return b.runes
}

// IsCharBoundary reports whether a byte offset falls on a rune boundary.
//
// The end of the buffer counts as a boundary.
func (b *Buffer) IsCharBoundary(byteOff uint64) bool {
	if byteOff > uint64(len(b.data)) {
		return false
	}
	if byteOff == uint64(len(b.data)) {
		return true
	}
	return utf8.RuneStart(b.data[byteOff])
}

// ByteIndex returns the byte offset of the rune at runeOff.
//
// runeOff may equal RuneCount, in which case Len is returned.
func (b *Buffer) ByteIndex(runeOff uint64) (uint64, error) {
	if runeOff > b.runes {
		return 0, ErrIndexOutOfBounds
	}
	if runeOff == b.runes {
		return uint64(len(b.data)), nil
	}
	base := b.markBeforeRune(runeOff)
	bytePos, runePos := base.bytes, base.runes
	for runePos < runeOff {
		_, n := utf8.DecodeRune(b.data[bytePos:])
		bytePos += uint64(n)
		runePos++
	}
	return bytePos, nil
}

// RunesBefore returns the number of runes in [0, byteOff).
//
// byteOff must fall on a rune boundary.
func (b *Buffer) RunesBefore(byteOff uint64) (uint64, error) {
	if byteOff > uint64(len(b.data)) {
		return 0, ErrIndexOutOfBounds
	}
	if !b.IsCharBoundary(byteOff) {
		return 0, ErrNotCharBoundary
	}
	base := b.markBeforeByte(byteOff)
	return base.runes + uint64(utf8.RuneCount(b.data[base.bytes:byteOff])), nil
}

// CountRunes returns the number of runes in [byteStart, byteEnd).
func (b *Buffer) CountRunes(byteStart, byteEnd uint64) (uint64, error) {
	if byteStart > byteEnd {
		return 0, ErrIndexOutOfBounds
	}
	before, err := b.RunesBefore(byteStart)
	if err != nil {
		return 0, err
	}
	upto, err := b.RunesBefore(byteEnd)
	if err != nil {
		return 0, err
	}
	return upto - before, nil
}

// Slice returns the bytes in [byteStart, byteEnd).
//
// Both offsets must fall on rune boundaries. The returned slice aliases the
// buffer's storage; since the buffer is append-only it stays valid and
// unchanged, but callers must not modify it.
func (b *Buffer) Slice(byteStart, byteEnd uint64) ([]byte, error) {
	if byteStart > byteEnd || byteEnd > uint64(len(b.data)) {
		return nil, ErrIndexOutOfBounds
	}
	if !b.IsCharBoundary(byteStart) || !b.IsCharBoundary(byteEnd) {
		return nil, ErrNotCharBoundary
	}
	return b.data[byteStart:byteEnd], nil
}

// RuneAt decodes the rune starting at byteOff and returns it with its
// byte width.
func (b *Buffer) RuneAt(byteOff uint64) (rune, int, error) {
	if byteOff >= uint64(len(b.data)) {
		return 0, 0, ErrIndexOutOfBounds
	}
	if !b.IsCharBoundary(byteOff) {
		return 0, 0, ErrNotCharBoundary
	}
	r, n := utf8.DecodeRune(b.data[byteOff:])
	return r, n, nil
}

// LastRuneBefore decodes the rune ending right before byteOff and returns
// it with its byte width.
func (b *Buffer) LastRuneBefore(byteOff uint64) (rune, int, error) {
	if byteOff == 0 || byteOff > uint64(len(b.data)) {
		return 0, 0, ErrIndexOutOfBounds
	}
	if !b.IsCharBoundary(byteOff) {
		return 0, 0, ErrNotCharBoundary
	}
	r, n := utf8.DecodeLastRune(b.data[:byteOff])
	return r, n, nil
}

// markBeforeRune returns the last checkpoint at or before runeOff.
func (b *Buffer) markBeforeRune(runeOff uint64) mark {
	i := sort.Search(len(b.marks), func(i int) bool {
		return b.marks[i].runes > runeOff
	})
	if i == 0 {
		return mark{}
	}
	return b.marks[i-1]
}

// markBeforeByte returns the last checkpoint at or before byteOff.
func (b *Buffer) markBeforeByte(byteOff uint64) mark {
	i := sort.Search(len(b.marks), func(i int) bool {
		return b.marks[i].bytes > byteOff
	})
	if i == 0 {
		return mark{}
	}
	return b.marks[i-1]
}
