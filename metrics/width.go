package metrics

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/piecetable"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/rivo/uniseg"
)

// GraphemeCount returns the number of user-perceived characters (grapheme
// clusters, see UAX #29) in the character range [i,j) of text.
//
// Returns piecetable.ErrInvalidRange for a reversed range and
// piecetable.ErrIndexOutOfBounds if j exceeds the document length.
func GraphemeCount(text *piecetable.Table, i, j uint64) (int, error) {
	content, err := text.Slice(i, j)
	if err != nil {
		tracer().Errorf("metrics: grapheme pass rejected range [%d,%d): %v", i, j, err)
		return 0, err
	}
	return uniseg.GraphemeClusterCount(content), nil
}

// DisplayWidth returns the fixed-width display width (see UAX #11) of the
// character range [i,j) of text, in multiples of a character cell.
//
// East Asian width classification depends on the reader's locale; context may
// be nil, in which case uax11.LatinContext is used.
//
// Returns piecetable.ErrInvalidRange for a reversed range and
// piecetable.ErrIndexOutOfBounds if j exceeds the document length.
func DisplayWidth(text *piecetable.Table, i, j uint64, context *uax11.Context) (int, error) {
	content, err := text.Slice(i, j)
	if err != nil {
		tracer().Errorf("metrics: width pass rejected range [%d,%d): %v", i, j, err)
		return 0, err
	}
	if context == nil {
		context = uax11.LatinContext
	}
	gstr := grapheme.StringFromString(content)
	return uax11.StringWidth(gstr, context), nil
}
