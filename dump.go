package piecetable

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dot outputs the piece chain of a table in Graphviz DOT format
// (for debugging purposes).
func (t *Table) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=record];\n")
	var pos uint64
	for i, p := range t.pieces {
		label := fmt.Sprintf("{%s|bytes %d–%d|%d chars @%d}",
			sourceName(p.src), p.start, p.end, p.chars, pos)
		fmt.Fprintf(w, "\"p%d\" [label=\"%s\"];\n", i, label)
		if i > 0 {
			fmt.Fprintf(w, "\"p%d\" -> \"p%d\";\n", i-1, i)
		}
		pos += p.chars
	}
	io.WriteString(w, "}\n")
}

// Dump writes a human-readable listing of the piece chain to w, one piece
// per row. Rows are colorized by source buffer when w is a terminal.
func (t *Table) Dump(w io.Writer) {
	origColor := color.New(color.FgCyan)
	addedColor := color.New(color.FgYellow)
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		origColor.DisableColor()
		addedColor.DisableColor()
	}
	fmt.Fprintf(w, "piece table: %d chars, %d bytes, %d pieces\n",
		t.chars, t.bytes, len(t.pieces))
	var pos uint64
	for i, p := range t.pieces {
		c := origColor
		if p.src == added {
			c = addedColor
		}
		c.Fprintf(w, "[%3d] @%-6d %-8s bytes %d–%d  %q\n",
			i, pos, sourceName(p.src), p.start, p.end, clip(string(t.text(p)), 24))
		pos += p.chars
	}
}

func sourceName(src source) string {
	if src == original {
		return "original"
	}
	return "added"
}

// clip shortens s to roughly max bytes, cutting at a rune boundary.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for i := range s {
		if i >= max {
			return s[:i] + "…"
		}
	}
	return s
}
