package backend

import (
	"testing"

	"github.com/dshills/termgrid/buffer"
	"github.com/dshills/termgrid/geometry"
	"github.com/dshills/termgrid/style"
)

func TestNullInit(t *testing.T) {
	b := NewNull(geometry.NewSize(80, 24))
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if got := b.Size(); got.Width != 80 || got.Height != 24 {
		t.Errorf("expected size 80x24, got %v", got)
	}
}

func TestNullRecordsCells(t *testing.T) {
	b := NewNull(geometry.NewSize(80, 24))
	b.Init()

	cell := buffer.NewCell("X", style.NewStyle(style.Red), 1)
	b.SetCell(10, 5, cell)

	if got := b.CellAt(10, 5); got != cell {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}
	if b.SetCellCount() != 1 {
		t.Errorf("expected 1 accepted SetCell, got %d", b.SetCellCount())
	}
}

func TestNullIgnoresOutOfBounds(t *testing.T) {
	b := NewNull(geometry.NewSize(10, 5))
	b.Init()

	cell := buffer.NewCell("X", style.Style{}, 1)
	b.SetCell(-1, 0, cell)
	b.SetCell(10, 0, cell)
	b.SetCell(0, 5, cell)

	if b.SetCellCount() != 0 {
		t.Errorf("expected out of bounds cells to be dropped, counted %d", b.SetCellCount())
	}
	if got := b.CellAt(-1, 0); got != buffer.Empty {
		t.Errorf("expected Empty outside the grid, got %+v", got)
	}
}

func TestNullClear(t *testing.T) {
	b := NewNull(geometry.NewSize(20, 10))
	b.Init()

	b.SetCell(3, 3, buffer.NewCell("X", style.Style{}, 1))
	b.Clear()

	if got := b.CellAt(3, 3); got != buffer.Empty {
		t.Errorf("expected cleared cell to be Empty, got %+v", got)
	}
}

func TestNullCountsFlushes(t *testing.T) {
	b := NewNull(geometry.NewSize(10, 5))
	b.Init()

	if err := b.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	b.Flush()

	if b.FlushCount() != 2 {
		t.Errorf("expected 2 flushes, got %d", b.FlushCount())
	}
}

func TestNullResize(t *testing.T) {
	b := NewNull(geometry.NewSize(10, 5))
	b.Init()
	b.SetCell(9, 4, buffer.NewCell("X", style.Style{}, 1))

	b.Resize(geometry.NewSize(20, 10))

	if got := b.Size(); got.Width != 20 || got.Height != 10 {
		t.Errorf("expected size 20x10, got %v", got)
	}
	if got := b.CellAt(9, 4); got != buffer.Empty {
		t.Errorf("expected fresh grid after resize, got %+v", got)
	}
}

func TestNullNegativeSizeClamped(t *testing.T) {
	b := NewNull(geometry.Size{Width: -3, Height: 4})
	if got := b.Size(); got.Width != 0 || got.Height != 4 {
		t.Errorf("expected size 0x4, got %v", got)
	}
}
