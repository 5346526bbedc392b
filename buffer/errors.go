package buffer

import "errors"

var (
	// ErrInvalidUTF8 signals invalid UTF-8 source text.
	ErrInvalidUTF8 = errors.New("buffer: invalid UTF-8")
	// ErrIndexOutOfBounds signals invalid byte or rune offsets.
	ErrIndexOutOfBounds = errors.New("buffer: index out of bounds")
	// ErrNotCharBoundary signals non-UTF-8-boundary byte offsets.
	ErrNotCharBoundary = errors.New("buffer: offset is not a char boundary")
)
