package piecetable

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bytes"
	"unicode/utf8"
)

// ErrTableCompleted signals that a builder has already completed a table and
// it is illegal to further add fragments.
const ErrTableCompleted = TableError("forbidden to add fragments; table has been completed")

// Builder incrementally stages text fragments and finalizes them into a
// Table.
//
// Fragments staged with AppendBytes/PrependBytes may split multi-byte
// encodings at fragment boundaries; the concatenation is validated as a whole
// when Table is called. This lets callers stage fixed-size file fragments
// without aligning them to rune boundaries.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	// front keeps prepended fragments in reverse logical order.
	front [][]byte
	// back keeps appended fragments in logical order.
	back [][]byte

	opts []Option
	done bool
}

// NewBuilder creates a new and empty table builder. The options are handed
// to the table built by Table.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{opts: opts}
}

// Table builds a table from all staged fragments.
//
// It is illegal to continue adding fragments after Table has been called,
// but Table may be called multiple times.
func (b *Builder) Table() (*Table, error) {
	if b == nil {
		return FromText("")
	}
	b.done = true
	var text bytes.Buffer
	for i := len(b.front) - 1; i >= 0; i-- {
		text.Write(b.front[i])
	}
	for _, frag := range b.back {
		text.Write(frag)
	}
	if text.Len() == 0 {
		T().Debugf("table builder: table is void")
	}
	return FromText(text.String(), b.opts...)
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
}

// AppendString appends UTF-8 text to the staged build.
func (b *Builder) AppendString(text string) error {
	if !utf8.ValidString(text) {
		return ErrIllegalArguments
	}
	return b.AppendBytes([]byte(text))
}

// PrependString prepends UTF-8 text to the staged build.
func (b *Builder) PrependString(text string) error {
	if !utf8.ValidString(text) {
		return ErrIllegalArguments
	}
	return b.PrependBytes([]byte(text))
}

// AppendBytes appends raw bytes to the staged build. UTF-8 validation is
// deferred until Table is called.
func (b *Builder) AppendBytes(text []byte) error {
	if b == nil || b.done {
		return ErrTableCompleted
	}
	if len(text) == 0 {
		return nil
	}
	b.back = append(b.back, append([]byte(nil), text...))
	return nil
}

// PrependBytes prepends raw bytes to the staged build. UTF-8 validation is
// deferred until Table is called.
func (b *Builder) PrependBytes(text []byte) error {
	if b == nil || b.done {
		return ErrTableCompleted
	}
	if len(text) == 0 {
		return nil
	}
	b.front = append(b.front, append([]byte(nil), text...))
	return nil
}
