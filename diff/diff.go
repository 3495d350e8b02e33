// Package diff computes the differences between two same-sized buffers,
// either cell by cell or coalesced into per-row segments. Both forms are
// lazy, restartable sequences: no work happens until iteration, and each
// range runs a fresh scan. Backends consume the output immediately; the
// input buffers must not be mutated while a diff is being iterated.
package diff

import (
	"fmt"
	"iter"

	"github.com/dshills/termgrid/buffer"
	"github.com/dshills/termgrid/geometry"
)

// ChangedCell reports one cell whose content differs between two
// buffers. Coordinates are in the current buffer's coordinate space.
type ChangedCell struct {
	X    int
	Y    int
	Cell buffer.Cell
}

// Segment is a contiguous horizontal run of changed cells on one row,
// emitted as a single update unit. Terminal backends pay a fixed cost
// per cursor reposition, so one segment per run beats one write per
// cell.
type Segment struct {
	Y      int
	StartX int
	Cells  []buffer.Cell
}

// SizeMismatchError reports an attempt to diff buffers whose sizes
// differ. This is a caller bug; it is not recovered internally.
type SizeMismatchError struct {
	Prev    geometry.Size
	Current geometry.Size
}

// Error implements the error interface.
func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("cannot diff buffers of different sizes: previous %s, current %s",
		e.Prev, e.Current)
}

// Cells returns a lazy sequence of every cell that differs between prev
// and cur, scanned in row-major order and compared by full value
// equality. The size precondition is checked eagerly; the returned
// sequence is restartable and supports early termination.
func Cells(prev, cur *buffer.Buffer) (iter.Seq[ChangedCell], error) {
	if err := checkSizes(prev, cur); err != nil {
		return nil, err
	}
	return func(yield func(ChangedCell) bool) {
		size := cur.Size()
		po, co := prev.Origin(), cur.Origin()
		for dy := 0; dy < size.Height; dy++ {
			for dx := 0; dx < size.Width; dx++ {
				pc, _ := prev.TryGetCell(po.X+dx, po.Y+dy)
				cc, _ := cur.TryGetCell(co.X+dx, co.Y+dy)
				if pc != cc {
					if !yield(ChangedCell{X: co.X + dx, Y: co.Y + dy, Cell: cc}) {
						return
					}
				}
			}
		}
	}, nil
}

// Segments returns a lazy sequence of per-row runs of changed cells.
// Within a row, a run starts at the first differing column and ends at
// the next matching column or the row edge; rows are scanned top to
// bottom. The size precondition is checked eagerly.
func Segments(prev, cur *buffer.Buffer) (iter.Seq[Segment], error) {
	if err := checkSizes(prev, cur); err != nil {
		return nil, err
	}
	return func(yield func(Segment) bool) {
		size := cur.Size()
		po, co := prev.Origin(), cur.Origin()
		for dy := 0; dy < size.Height; dy++ {
			y := co.Y + dy
			start := -1
			var run []buffer.Cell
			for dx := 0; dx < size.Width; dx++ {
				pc, _ := prev.TryGetCell(po.X+dx, po.Y+dy)
				cc, _ := cur.TryGetCell(co.X+dx, co.Y+dy)
				if pc != cc {
					if start < 0 {
						start = co.X + dx
					}
					run = append(run, cc)
					continue
				}
				if start >= 0 {
					if !yield(Segment{Y: y, StartX: start, Cells: run}) {
						return
					}
					start = -1
					run = nil
				}
			}
			if start >= 0 {
				if !yield(Segment{Y: y, StartX: start, Cells: run}) {
					return
				}
			}
		}
	}, nil
}

func checkSizes(prev, cur *buffer.Buffer) error {
	if prev.Size() != cur.Size() {
		return &SizeMismatchError{Prev: prev.Size(), Current: cur.Size()}
	}
	return nil
}
