// Package backend provides terminal output abstraction for the screen.
package backend

import (
	"github.com/dshills/termgrid/buffer"
	"github.com/dshills/termgrid/geometry"
)

// Backend defines the interface for terminal/display backends.
// Implementations handle actual drawing to the terminal or other
// display surfaces.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Fini releases backend resources and restores terminal state.
	// Must be called when done with the backend.
	Fini()

	// Size returns the current display dimensions.
	Size() geometry.Size

	// SetCell sets a single cell at the given position.
	// Positions outside the display are silently ignored. Continuation
	// cells (Skip set) may be delivered; backends that address the
	// display by glyph ignore them, since the wide head already covers
	// those columns.
	SetCell(x, y int, c buffer.Cell)

	// Flush pushes pending changes to the actual display.
	Flush() error

	// Clear clears the entire display with the default style.
	Clear()
}

// Null is an in-memory backend for testing. It records every cell it
// receives and counts SetCell and Flush calls.
type Null struct {
	size     geometry.Size
	cells    []buffer.Cell
	setCells int
	flushes  int
}

var _ Backend = (*Null)(nil)

// NewNull creates a null backend with the given size.
func NewNull(size geometry.Size) *Null {
	b := &Null{size: geometry.NewSize(size.Width, size.Height)}
	b.cells = make([]buffer.Cell, b.size.Area())
	b.reset()
	return b
}

func (b *Null) Init() error {
	b.reset()
	return nil
}

func (b *Null) Fini() {}

func (b *Null) Size() geometry.Size {
	return b.size
}

func (b *Null) SetCell(x, y int, c buffer.Cell) {
	if x < 0 || y < 0 || x >= b.size.Width || y >= b.size.Height {
		return
	}
	b.cells[y*b.size.Width+x] = c
	b.setCells++
}

func (b *Null) Flush() error {
	b.flushes++
	return nil
}

func (b *Null) Clear() {
	b.reset()
}

func (b *Null) reset() {
	for i := range b.cells {
		b.cells[i] = buffer.Empty
	}
}

// CellAt returns the recorded cell at the given position, or Empty for
// positions outside the grid.
func (b *Null) CellAt(x, y int) buffer.Cell {
	if x < 0 || y < 0 || x >= b.size.Width || y >= b.size.Height {
		return buffer.Empty
	}
	return b.cells[y*b.size.Width+x]
}

// SetCellCount returns the number of SetCell calls accepted so far.
func (b *Null) SetCellCount() int {
	return b.setCells
}

// FlushCount returns the number of Flush calls so far.
func (b *Null) FlushCount() int {
	return b.flushes
}

// Resize simulates a display resize for testing.
func (b *Null) Resize(size geometry.Size) {
	b.size = geometry.NewSize(size.Width, size.Height)
	b.cells = make([]buffer.Cell, b.size.Area())
	b.reset()
}
