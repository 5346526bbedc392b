package piecetable

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"sort"
	"unicode/utf8"
)

// breakPolicy is the line-break classifier, fixed at construction.
type breakPolicy uint8

const (
	// asciiBreaks recognizes ASCII LF only.
	asciiBreaks breakPolicy = iota
	// unicodeBreaks recognizes the Unicode line terminator set: LF, CR LF
	// (one break spanning two chars), VT, FF, lone CR, NEL, LS and PS.
	unicodeBreaks
)

// scanBreaks returns the character offsets immediately following each line
// break in text, classified by policy. base is added to every offset.
//
// The scan consumes CR LF as a single break, so text must not start or end
// in the middle of such a pair; callers align their scan windows accordingly.
func scanBreaks(policy breakPolicy, text string, base uint64) []uint64 {
	var entries []uint64
	pos := base
	for i := 0; i < len(text); {
		r, n := utf8.DecodeRuneInString(text[i:])
		i += n
		pos++
		if r == '\n' {
			entries = append(entries, pos)
			continue
		}
		if policy != unicodeBreaks {
			continue
		}
		switch r {
		case '\r':
			if i < len(text) {
				if r2, n2 := utf8.DecodeRuneInString(text[i:]); r2 == '\n' {
					i += n2
					pos++
				}
			}
			entries = append(entries, pos)
		case '\v', '\f', '\u0085', '\u2028', '\u2029':
			entries = append(entries, pos)
		}
	}
	return entries
}

// lineIndex is an ordered list of the character offsets at which lines start.
//
// starts[0] is always 0; entry i is the offset immediately following the i-th
// line break, so the entries are strictly increasing. The index is built once
// from the initial text and patched incrementally on every edit.
type lineIndex struct {
	policy breakPolicy
	starts []uint64
}

func newLineIndex(policy breakPolicy, text string) *lineIndex {
	li := &lineIndex{policy: policy, starts: []uint64{0}}
	li.starts = append(li.starts, scanBreaks(policy, text, 0)...)
	return li
}

// document is the read access the line index needs to rescan text around an
// edit. Satisfied by *Table; tests may substitute any text container.
type document interface {
	Len() uint64
	Slice(start, end uint64) (string, error)
	CharAt(at uint64) (rune, error)
}

// patchEdit updates the index after an edit that replaced the pre-edit
// character range [at, at+removed) with inserted characters. doc provides
// read access to the post-edit document.
//
// Entries for breaks near the edit are recomputed from a small window around
// it; all later entries are shifted by the edit's length delta. The window is
// widened by one character on each side, and further if its boundary would
// split a CR LF pair, so breaks joined or separated by the edit are observed
// (an insert of "\n" directly after a lone "\r" must not yield two breaks
// under the Unicode classifier).
func (li *lineIndex) patchEdit(doc document, at, removed, inserted uint64) {
	scanStart, scanEnd := li.breakWindow(doc, at, inserted)
	// Pre-edit coordinate of the window end: chars at or beyond it were not
	// rescanned and only shift.
	preEnd := scanEnd - inserted + removed

	rescanned := scanBreaks(li.policy, li.window(doc, scanStart, scanEnd), scanStart)

	old := li.starts[1:]
	patched := make([]uint64, 1, 1+len(old)+len(rescanned))
	patched[0] = 0
	for _, e := range old {
		if e > scanStart {
			break
		}
		patched = append(patched, e)
	}
	patched = append(patched, rescanned...)
	for _, e := range old {
		if e <= preEnd {
			continue
		}
		patched = append(patched, e-removed+inserted)
	}
	li.starts = patched
}

// breakWindow returns the post-edit character window [scanStart, scanEnd)
// whose breaks are recomputed for an edit at position at that inserted
// `inserted` characters.
func (li *lineIndex) breakWindow(doc document, at, inserted uint64) (uint64, uint64) {
	scanStart := at
	if scanStart > 0 {
		scanStart--
	}
	if scanStart > 0 && li.charAt(doc, scanStart) == '\n' && li.charAt(doc, scanStart-1) == '\r' {
		scanStart--
	}
	scanEnd := min(doc.Len(), at+inserted+1)
	if scanEnd < doc.Len() && li.charAt(doc, scanEnd-1) == '\r' && li.charAt(doc, scanEnd) == '\n' {
		scanEnd++
	}
	return scanStart, scanEnd
}

func (li *lineIndex) window(doc document, from, to uint64) string {
	s, err := doc.Slice(from, to)
	assert(err == nil, "line index scan window out of bounds")
	return s
}

func (li *lineIndex) charAt(doc document, at uint64) rune {
	r, err := doc.CharAt(at)
	assert(err == nil, "line index probes a char outside the document")
	return r
}

// lineCount returns the number of lines, which is one more than the number
// of line breaks in the document.
func (li *lineIndex) lineCount() int {
	return len(li.starts)
}

// lineOf returns the number of the line containing character offset at, by
// binary search over the strictly increasing start offsets.
func (li *lineIndex) lineOf(at uint64) int {
	return sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > at
	}) - 1
}

// LineCount returns the number of lines in the document. An empty document
// has one line.
//
// Returns ErrNoLineIndex if the table was constructed without line tracking.
func (t *Table) LineCount() (int, error) {
	if t.lines == nil {
		return 0, ErrNoLineIndex
	}
	return t.lines.lineCount(), nil
}

// LineStart returns the character offset at which line starts, counting
// lines from zero.
//
// Returns ErrIndexOutOfBounds if line is not less than LineCount and
// ErrNoLineIndex if the table was constructed without line tracking.
func (t *Table) LineStart(line int) (uint64, error) {
	if t.lines == nil {
		return 0, ErrNoLineIndex
	}
	if line < 0 || line >= t.lines.lineCount() {
		return 0, ErrIndexOutOfBounds
	}
	return t.lines.starts[line], nil
}

// LineOf returns the number of the line containing character offset at.
// The document end is considered part of the last line.
//
// Returns ErrIndexOutOfBounds if at exceeds the document length and
// ErrNoLineIndex if the table was constructed without line tracking.
func (t *Table) LineOf(at uint64) (int, error) {
	if t.lines == nil {
		return 0, ErrNoLineIndex
	}
	if at > t.chars {
		return 0, ErrIndexOutOfBounds
	}
	return t.lines.lineOf(at), nil
}
