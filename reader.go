package piecetable

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"

	"github.com/npillmayer/piecetable/buffer"
)

// Reader returns a reader over the document bytes.
//
// The reader holds a snapshot of the document at the time of the call; later
// edits of the table are not observed.
func (t *Table) Reader() *Reader {
	pieces, bufs := t.snapshot()
	return &Reader{
		pieces: pieces,
		bufs:   bufs,
		size:   int64(t.bytes),
	}
}

// Reader reads document bytes in document order. It implements io.Reader,
// io.ReaderAt and io.Seeker.
type Reader struct {
	pieces []piece
	bufs   [2]*buffer.Buffer
	size   int64
	cursor int64
}

// Size returns the total number of document bytes the reader covers.
func (r *Reader) Size() int64 {
	return r.size
}

// ReadAt implements io.ReaderAt.
func (r *Reader) ReadAt(p []byte, off int64) (total int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if off < 0 {
		return 0, ErrIllegalArguments
	}
	if off >= r.size {
		return 0, io.EOF
	}
	var pos int64
	for _, pc := range r.pieces {
		length := int64(pc.byteLen())
		if pos+length > off {
			frag, ferr := r.bufs[pc.src].Slice(pc.start, pc.end)
			assert(ferr == nil, "piece references an invalid byte range")
			n := copy(p[total:], frag[off-pos:])
			total += n
			off += int64(n)
			if total >= len(p) {
				return total, nil
			}
		}
		pos += length
	}
	return total, io.EOF
}

// Seek implements io.Seeker.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = r.cursor + offset
	case io.SeekEnd:
		abs = r.size + offset
	default:
		return 0, ErrIllegalArguments
	}
	if abs < 0 {
		return 0, ErrIllegalArguments
	}
	r.cursor = abs
	return abs, nil
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.ReadAt(p, r.cursor)
	r.cursor += int64(n)
	return n, err
}
