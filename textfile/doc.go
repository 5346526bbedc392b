/*
Package textfile provides API helpers to load UTF-8 text files as piece
tables.

Files are read in fragments and staged through a table builder, so fragment
boundaries need not align with multi-byte character encodings. Clients may
subscribe to per-fragment progress broadcasts, e.g. to drive a progress
display while a large file loads.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2023–25, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'piecetable'
func tracer() tracing.Trace {
	return tracing.Select("piecetable")
}
