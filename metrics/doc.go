/*
Package metrics provides some pre-manufactured metrics on piece-table text.

All passes operate on a character range of a table and translate their
results back to character offsets, so clients never handle byte positions.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'piecetable'
func tracer() tracing.Trace {
	return tracing.Select("piecetable")
}
