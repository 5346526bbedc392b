package metrics

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"unicode"

	"github.com/npillmayer/piecetable"
)

// Span is a character-range descriptor inside a document.
//
// Pos is the start character offset, Len is the span length in characters.
type Span struct {
	Pos uint64
	Len uint64
}

// WordsValue is the result of a word-recognition pass.
type WordsValue struct {
	Spans []Span
}

// WordCount returns the number of recognized words.
func (v WordsValue) WordCount() int {
	return len(v.Spans)
}

// Words scans the character range [i,j) of text for words, where a word is a
// maximal run of non-whitespace characters (in the sense of unicode.IsSpace).
//
// Returns piecetable.ErrInvalidRange for a reversed range and
// piecetable.ErrIndexOutOfBounds if j exceeds the document length.
func Words(text *piecetable.Table, i, j uint64) (WordsValue, error) {
	if text.IsVoid() || i == j {
		return WordsValue{}, nil
	}
	content, err := text.Slice(i, j)
	if err != nil {
		tracer().Errorf("metrics: words pass rejected range [%d,%d): %v", i, j, err)
		return WordsValue{}, err
	}
	return WordsValue{Spans: findWordSpans(content, i)}, nil
}

func findWordSpans(s string, base uint64) []Span {
	spans := make([]Span, 0, 8)
	pos := base // character offset of the rune under inspection
	var inWord bool
	var start uint64
	for _, r := range s {
		if unicode.IsSpace(r) {
			if inWord {
				spans = append(spans, Span{Pos: start, Len: pos - start})
				inWord = false
			}
		} else if !inWord {
			start = pos
			inWord = true
		}
		pos++
	}
	if inWord {
		spans = append(spans, Span{Pos: start, Len: pos - start})
	}
	return spans
}
