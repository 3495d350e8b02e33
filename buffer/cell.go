// Package buffer provides the 2-D grid of styled grapheme cells that
// rendering draws into. A grapheme occupying two columns is stored as a
// head cell followed by one continuation cell marked Skip; writers
// maintain that invariant and diffing relies on it.
package buffer

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/termgrid/style"
)

// Cell represents a single terminal cell: one grapheme cluster, its
// style, and the number of columns the glyph occupies. Cells are plain
// comparable values.
type Cell struct {
	// Grapheme is the cluster to display.
	Grapheme string

	// Style is the visual style for this cell.
	Style style.Style

	// Width is the column width of the glyph, always at least 1.
	Width int

	// Skip marks a continuation cell of a preceding multi-column glyph.
	// A skip cell shares Grapheme, Style, and Width with its head.
	Skip bool
}

// Empty is the canonical blank cell: a single space with default style.
var Empty = Cell{Grapheme: " ", Width: 1}

// NewCell creates a cell, normalizing degenerate input: empty strings
// and control characters become a single space, and widths below 1 are
// coerced to 1 so a cell always occupies at least one column.
func NewCell(grapheme string, st style.Style, width int) Cell {
	r, _ := utf8.DecodeRuneInString(grapheme)
	if grapheme == "" || unicode.IsControl(r) {
		grapheme = " "
		width = 1
	}
	return Cell{
		Grapheme: grapheme,
		Style:    st,
		Width:    max(width, 1),
	}
}

// Continuation returns the skip cell that trails this head cell.
func (c Cell) Continuation() Cell {
	c.Skip = true
	return c
}

// WithStyle returns a copy of the cell with the given style.
func (c Cell) WithStyle(st style.Style) Cell {
	c.Style = st
	return c
}

// IsEmpty returns true if the cell displays a blank space.
func (c Cell) IsEmpty() bool {
	return c.Grapheme == " " && !c.Skip
}
