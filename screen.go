// Package termgrid renders text-cell frames to a terminal. Drawing
// goes into a back buffer; Flush diffs it against the previously shown
// frame and hands only the changed cells to a backend.
package termgrid

import (
	"fmt"

	"github.com/dshills/termgrid/backend"
	"github.com/dshills/termgrid/buffer"
	"github.com/dshills/termgrid/diff"
	"github.com/dshills/termgrid/geometry"
	"github.com/dshills/termgrid/textwidth"
)

// Options configures a Screen.
type Options struct {
	// WidthMode selects how ambiguous-width characters are measured.
	WidthMode textwidth.Mode
}

// DefaultOptions returns the default screen options.
func DefaultOptions() Options {
	return Options{WidthMode: textwidth.Standard}
}

// Screen owns a double-buffered frame cycle over a backend. Draw into
// Buffer, then call Flush to push the frame out. A Screen is not safe
// for concurrent use; a single goroutine owns the frame cycle.
type Screen struct {
	backend backend.Backend
	opts    Options
	prev    *buffer.Buffer
	cur     *buffer.Buffer
	redraw  bool
}

// New creates a screen over the backend, initializing it and sizing
// both frame buffers from it.
func New(b backend.Backend, opts Options) (*Screen, error) {
	if err := b.Init(); err != nil {
		return nil, fmt.Errorf("initializing backend: %w", err)
	}
	size := b.Size()
	return &Screen{
		backend: b,
		opts:    opts,
		prev:    buffer.NewWithMode(geometry.Position{}, size, opts.WidthMode),
		cur:     buffer.NewWithMode(geometry.Position{}, size, opts.WidthMode),
		redraw:  true,
	}, nil
}

// Buffer returns the draw target for the current frame. It starts each
// frame cleared.
func (s *Screen) Buffer() *buffer.Buffer {
	return s.cur
}

// Size returns the screen dimensions.
func (s *Screen) Size() geometry.Size {
	return s.cur.Size()
}

// Resize reallocates both frame buffers at the given size and forces a
// full redraw on the next Flush.
func (s *Screen) Resize(size geometry.Size) {
	s.prev = buffer.NewWithMode(geometry.Position{}, size, s.opts.WidthMode)
	s.cur = buffer.NewWithMode(geometry.Position{}, size, s.opts.WidthMode)
	s.redraw = true
}

// Flush pushes the current frame to the backend: everything on the
// first frame or after a resize, only the cells that changed since the
// last frame otherwise. Continuation cells are never sent; the backend
// addresses glyph heads. After emission the frame buffers swap and the
// new current buffer starts cleared.
func (s *Screen) Flush() error {
	if s.redraw {
		s.flushAll()
		s.redraw = false
	} else if err := s.flushChanged(); err != nil {
		return err
	}

	if err := s.backend.Flush(); err != nil {
		return fmt.Errorf("flushing backend: %w", err)
	}

	s.prev, s.cur = s.cur, s.prev
	s.cur.Clear()
	return nil
}

func (s *Screen) flushAll() {
	s.backend.Clear()
	size := s.cur.Size()
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			c, ok := s.cur.TryGetCell(x, y)
			if !ok || c.Skip {
				continue
			}
			// The backend clear already painted every blank cell.
			if c == buffer.Empty {
				continue
			}
			s.backend.SetCell(x, y, c)
		}
	}
}

func (s *Screen) flushChanged() error {
	segs, err := diff.Segments(s.prev, s.cur)
	if err != nil {
		return fmt.Errorf("diffing frames: %w", err)
	}
	for seg := range segs {
		for i, c := range seg.Cells {
			if c.Skip {
				continue
			}
			s.backend.SetCell(seg.StartX+i, seg.Y, c)
		}
	}
	return nil
}

// Close restores the backend. The screen must not be used afterward.
func (s *Screen) Close() {
	s.backend.Fini()
}
