package buffer

import (
	"slices"

	"github.com/dshills/termgrid/geometry"
	"github.com/dshills/termgrid/grapheme"
	"github.com/dshills/termgrid/style"
	"github.com/dshills/termgrid/textwidth"
)

// Buffer is a rectangular grid of cells positioned at an origin on
// screen. Cells are stored in a single flat row-major slice that is
// allocated once and reused across frames; Clear resets content without
// reallocating. A Buffer assumes one writer at a time and provides no
// internal locking.
type Buffer struct {
	origin geometry.Position
	size   geometry.Size
	cells  []Cell
	widths textwidth.Resolver
}

// New creates a buffer at the given origin with every cell set to Empty.
// Ambiguous-width code points measure one column; use NewWithMode for
// East Asian context.
func New(origin geometry.Position, size geometry.Size) *Buffer {
	return NewWithMode(origin, size, textwidth.Standard)
}

// NewWithMode creates a buffer with an explicit ambiguous-width mode.
// The mode is fixed for the buffer's lifetime.
func NewWithMode(origin geometry.Position, size geometry.Size, mode textwidth.Mode) *Buffer {
	origin = geometry.NewPosition(origin.X, origin.Y)
	size = geometry.NewSize(size.Width, size.Height)
	b := &Buffer{
		origin: origin,
		size:   size,
		cells:  make([]Cell, size.Area()),
		widths: textwidth.New(mode),
	}
	b.Clear()
	return b
}

// Origin returns the buffer's top-left screen position.
func (b *Buffer) Origin() geometry.Position {
	return b.origin
}

// Size returns the buffer's extent.
func (b *Buffer) Size() geometry.Size {
	return b.size
}

// Bounds returns the screen rectangle the buffer covers.
func (b *Buffer) Bounds() geometry.Rect {
	return geometry.RectFrom(b.origin, b.size)
}

// Mode returns the buffer's ambiguous-width mode.
func (b *Buffer) Mode() textwidth.Mode {
	return b.widths.Mode()
}

// Contains returns true if the screen coordinate lies inside the buffer.
func (b *Buffer) Contains(x, y int) bool {
	return x >= b.origin.X && x < b.origin.X+b.size.Width &&
		y >= b.origin.Y && y < b.origin.Y+b.size.Height
}

// Clear resets every cell to Empty without reallocating.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

// GetCell returns the cell at the given screen coordinate. Out-of-range
// access returns Empty and an *OutOfBoundsError.
func (b *Buffer) GetCell(x, y int) (Cell, error) {
	if !b.Contains(x, y) {
		return Empty, &OutOfBoundsError{X: x, Y: y, Origin: b.origin, Size: b.size}
	}
	return b.cells[b.index(x, y)], nil
}

// SetCell stores a cell at the given screen coordinate. Out-of-range
// access returns an *OutOfBoundsError.
func (b *Buffer) SetCell(x, y int, c Cell) error {
	if !b.Contains(x, y) {
		return &OutOfBoundsError{X: x, Y: y, Origin: b.origin, Size: b.size}
	}
	b.cells[b.index(x, y)] = c
	return nil
}

// TryGetCell returns the cell at the given coordinate and true, or Empty
// and false when the coordinate is out of range. Used on hot paths where
// out-of-range is an expected outcome rather than a caller bug.
func (b *Buffer) TryGetCell(x, y int) (Cell, bool) {
	if !b.Contains(x, y) {
		return Empty, false
	}
	return b.cells[b.index(x, y)], true
}

// SetString writes text starting at the given screen coordinate,
// splitting it into joiner-merged grapheme clusters and measuring each
// under the buffer's width mode. Zero-advance clusters occupy one column
// so the cursor always moves. A glyph whose head would start at or past
// the right edge is truncated, as are continuation cells. Overwriting
// the head of a previously written wider glyph clears that glyph's stale
// continuation cells first.
func (b *Buffer) SetString(x, y int, text string, st style.Style) {
	if y < b.origin.Y || y >= b.origin.Y+b.size.Height {
		return
	}
	right := b.origin.X + b.size.Width
	col := x
	for g := range grapheme.MergedClusters(text) {
		if col >= right {
			break
		}
		w := max(b.widths.ClusterWidth(g), 1)
		if col >= b.origin.X {
			b.clearStaleContinuation(col, y, w)
			head := NewCell(g, st, w)
			b.cells[b.index(col, y)] = head
			for i := 1; i < w; i++ {
				cx := col + i
				if cx >= right {
					break
				}
				b.cells[b.index(cx, y)] = head.Continuation()
			}
		}
		col += w
	}
}

// Fill sets every cell in the intersection of r and the buffer to c.
func (b *Buffer) Fill(r geometry.Rect, c Cell) {
	clipped := r.Intersect(b.Bounds())
	for y := clipped.Y; y < clipped.Bottom(); y++ {
		for x := clipped.X; x < clipped.Right(); x++ {
			b.cells[b.index(x, y)] = c
		}
	}
}

// FillStyle restyles every cell in the intersection of r and the buffer
// without touching glyphs or widths.
func (b *Buffer) FillStyle(r geometry.Rect, st style.Style) {
	clipped := r.Intersect(b.Bounds())
	for y := clipped.Y; y < clipped.Bottom(); y++ {
		for x := clipped.X; x < clipped.Right(); x++ {
			i := b.index(x, y)
			b.cells[i].Style = st
		}
	}
}

// Resize reallocates the buffer for a new size. Content is reset to
// Empty; owners are expected to redraw fully after a resize.
func (b *Buffer) Resize(size geometry.Size) {
	size = geometry.NewSize(size.Width, size.Height)
	if size == b.size {
		return
	}
	b.size = size
	b.cells = make([]Cell, size.Area())
	b.Clear()
}

// Clone returns a deep copy sharing no state with the original.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		origin: b.origin,
		size:   b.size,
		cells:  slices.Clone(b.cells),
		widths: b.widths,
	}
}

// Equal returns true if both buffers have the same origin, size, and
// cell content.
func (b *Buffer) Equal(other *Buffer) bool {
	return b.origin == other.origin &&
		b.size == other.size &&
		slices.Equal(b.cells, other.cells)
}

func (b *Buffer) index(x, y int) int {
	return (y-b.origin.Y)*b.size.Width + (x - b.origin.X)
}

// clearStaleContinuation resets the trailing continuation cells of a
// wider glyph whose head at (x, y) is about to be overwritten by a glyph
// of newWidth columns.
func (b *Buffer) clearStaleContinuation(x, y, newWidth int) {
	existing, ok := b.TryGetCell(x, y)
	if !ok || existing.Skip || existing.Width <= 1 || existing.Width <= newWidth {
		return
	}
	for i := newWidth; i < existing.Width; i++ {
		if cx := x + i; b.Contains(cx, y) {
			b.cells[b.index(cx, y)] = Empty
		}
	}
}
