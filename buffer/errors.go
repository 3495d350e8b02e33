package buffer

import (
	"fmt"

	"github.com/dshills/termgrid/geometry"
)

// OutOfBoundsError reports a cell access outside a buffer's bounds.
// It carries the requested coordinates and the buffer's origin and size
// so the offending call site can be identified from the message alone.
type OutOfBoundsError struct {
	X      int
	Y      int
	Origin geometry.Position
	Size   geometry.Size
}

// Error implements the error interface.
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell access (%d,%d) out of bounds: origin %s, size %s",
		e.X, e.Y, e.Origin, e.Size)
}
