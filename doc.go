/*
Package piecetable implements an editable text buffer as a piece table.

Piece tables

A piece table stores a document as two append-style byte buffers plus an
ordered list of descriptors ("pieces") into them. The original buffer holds
the text the document was constructed from and is never touched again. The
added buffer collects the bytes of every insertion and only ever grows.
Editing never moves document bytes around: an insert appends to the added
buffer and splices a descriptor into the list, a delete merely drops or trims
descriptors. Deleted text stays in its buffer as a tombstone.

This layout matches the access pattern of interactive editors: frequent,
localized inserts and deletes, occasional large reads, and stable character
addressing. Both edits are O(pieces) in the worst case and O(1) in buffer
work; reads walk the descriptor list. The table makes no attempt at
rope-style rebalancing — the piece count may grow with the edit count.

All public positions are character (rune) offsets. No operation can split a
multi-byte UTF-8 encoding or report an offset inside one; byte/rune
translation within one buffer is handled by package buffer.

The table optionally maintains a line index: an ordered list of the character
offsets at which lines start, patched incrementally on every edit. The
line-break classifier is fixed at construction, either ASCII newline only or
the Unicode line terminator set (including CR LF as a single two-character
break).

The table is not internally synchronized. Callers interleaving mutation with
iteration must serialize access externally.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package piecetable

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TableError is an error type for the piecetable module.
type TableError string

func (e TableError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a character position is greater
// than the length of the document, or a line number is greater than the
// line count.
const ErrIndexOutOfBounds = TableError("index out of bounds")

// ErrInvalidRange is flagged whenever a range's start exceeds its end.
const ErrInvalidRange = TableError("invalid range: start exceeds end")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TableError("illegal arguments")

// ErrNoLineIndex is flagged when line queries are made on a table that was
// constructed without line tracking.
const ErrNoLineIndex = TableError("table does not maintain a line index")

// assert checks an internal invariant and panics with msg if it is violated.
// Invariant violations are defects in this package, not user-facing errors.
func assert(condition bool, msg string) {
	if !condition {
		panic("piecetable: internal assertion failed: " + msg)
	}
}
