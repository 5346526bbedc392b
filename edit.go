package piecetable

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "slices"

// openTail tracks the piece created or extended by the most recent insert.
//
// While valid, an insert at exactly end may extend that piece in place,
// provided its byte range still ends at the added buffer's end. Any other
// edit, and every delete, invalidates the tail.
type openTail struct {
	valid bool
	idx   int    // index of the open piece in the piece list
	end   uint64 // character offset just past the open piece
}

// Insert inserts text at character position at.
//
// Returns ErrIndexOutOfBounds if at exceeds the document length and
// buffer.ErrInvalidUTF8 if text is not valid UTF-8; inserting the empty
// string is a no-op. Errors are detected before any mutation.
func (t *Table) Insert(at uint64, text string) error {
	if at > t.chars {
		return ErrIndexOutOfBounds
	}
	if len(text) == 0 {
		return nil
	}
	if t.coalesce && t.open.valid && at == t.open.end && t.tailIsExtendable() {
		return t.extendTail(at, text)
	}

	byteOff, _, runeCount, err := t.added.Append([]byte(text))
	if err != nil {
		return err
	}
	np := piece{src: added, start: byteOff, end: byteOff + uint64(len(text)), chars: runeCount}

	i, off := t.locate(at)
	switch {
	case off == 0:
		// Piece boundary (or empty document, or append at the end).
		t.pieces = slices.Insert(t.pieces, i, np)
	default:
		// Strictly inside pieces[i]: split first, then place the new piece
		// between the halves.
		left, right := t.splitAt(t.pieces[i], off)
		t.pieces[i] = left
		t.pieces = slices.Insert(t.pieces, i+1, np, right)
		i++
	}

	t.chars += runeCount
	t.bytes += uint64(len(text))
	t.open = openTail{valid: t.coalesce, idx: i, end: at + runeCount}
	if t.lines != nil {
		t.lines.patchEdit(t, at, 0, runeCount)
	}
	T().Debugf("piece table: inserted %d chars at %d, %d pieces", runeCount, at, len(t.pieces))
	return nil
}

// tailIsExtendable reports whether the tracked open piece still ends exactly
// at the added buffer's end.
func (t *Table) tailIsExtendable() bool {
	if t.open.idx >= len(t.pieces) {
		return false
	}
	p := t.pieces[t.open.idx]
	return p.src == added && p.end == t.added.Len()
}

// extendTail is the contiguous-insert fast path: the new bytes still go to
// the added buffer, but the open tail piece grows in place instead of a new
// piece being allocated.
func (t *Table) extendTail(at uint64, text string) error {
	byteOff, _, runeCount, err := t.added.Append([]byte(text))
	if err != nil {
		return err
	}
	p := &t.pieces[t.open.idx]
	assert(byteOff == p.end, "open tail is not adjacent to the added buffer end")
	p.end += uint64(len(text))
	p.chars += runeCount

	t.chars += runeCount
	t.bytes += uint64(len(text))
	t.open.end = at + runeCount
	if t.lines != nil {
		t.lines.patchEdit(t, at, 0, runeCount)
	}
	T().Debugf("piece table: extended tail piece by %d chars at %d", runeCount, at)
	return nil
}

// Delete removes the half-open character range [start, end) from the
// document.
//
// Returns ErrInvalidRange if start exceeds end and ErrIndexOutOfBounds if end
// exceeds the document length; deleting an empty range is a no-op. No buffer
// bytes are erased: only piece descriptors referencing the range are dropped
// or trimmed. Errors are detected before any mutation.
func (t *Table) Delete(start, end uint64) error {
	if start > end {
		return ErrInvalidRange
	}
	if end > t.chars {
		return ErrIndexOutOfBounds
	}
	if start == end {
		return nil
	}
	t.open.valid = false

	del := end - start
	i, off := t.locate(start)

	// Collect the replacement for the affected piece span [i, j).
	kept := make([]piece, 0, 2)
	var bytesRemoved uint64
	j := i
	remaining := del
	if off > 0 {
		p := t.pieces[j]
		left, rest := t.splitAt(p, off)
		kept = append(kept, left)
		if remaining < rest.chars {
			// Range starts and ends inside the same piece.
			_, right := t.splitAt(rest, remaining)
			kept = append(kept, right)
			bytesRemoved += rest.byteLen() - right.byteLen()
			remaining = 0
		} else {
			bytesRemoved += rest.byteLen()
			remaining -= rest.chars
		}
		j++
	}
	for remaining > 0 {
		p := t.pieces[j]
		if remaining < p.chars {
			// Last affected piece; keep its right part.
			cut, right := t.splitAt(p, remaining)
			kept = append(kept, right)
			bytesRemoved += cut.byteLen()
			remaining = 0
		} else {
			bytesRemoved += p.byteLen()
			remaining -= p.chars
		}
		j++
	}

	t.pieces = slices.Replace(t.pieces, i, j, kept...)
	t.chars -= del
	t.bytes -= bytesRemoved

	// Pieces that became neighbors may reference adjoining byte ranges of
	// the same buffer; re-coalesce them.
	seam := i + len(kept)
	t.mergeAt(seam - 1)
	if len(kept) > 0 {
		t.mergeAt(i - 1)
	}

	if t.lines != nil {
		t.lines.patchEdit(t, start, del, 0)
	}
	T().Debugf("piece table: deleted [%d,%d), %d pieces", start, end, len(t.pieces))
	return nil
}
