package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termgrid/buffer"
	"github.com/dshills/termgrid/geometry"
	"github.com/dshills/termgrid/style"
)

// Tcell implements Backend using tcell for terminal output.
type Tcell struct {
	screen tcell.Screen
	mu     sync.Mutex
}

var _ Backend = (*Tcell)(nil)

// NewTcell creates a tcell backend.
func NewTcell() (*Tcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Tcell{screen: screen}, nil
}

func (t *Tcell) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Init()
}

func (t *Tcell) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Tcell) Size() geometry.Size {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, h := t.screen.Size()
	return geometry.NewSize(w, h)
}

func (t *Tcell) SetCell(x, y int, c buffer.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Continuation cells are covered by the wide head to their left.
	if c.Skip {
		return
	}

	main := ' '
	var comb []rune
	if runes := []rune(c.Grapheme); len(runes) > 0 {
		main = runes[0]
		if len(runes) > 1 {
			comb = runes[1:]
		}
	}
	t.screen.SetContent(x, y, main, comb, convertStyle(c.Style))
}

func (t *Tcell) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
	return nil
}

func (t *Tcell) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s style.Style) tcell.Style {
	ts := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		ts = ts.Foreground(convertColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		ts = ts.Background(convertColor(s.Background))
	}

	if s.Attrs.Has(style.AttrBold) {
		ts = ts.Bold(true)
	}
	if s.Attrs.Has(style.AttrDim) {
		ts = ts.Dim(true)
	}
	if s.Attrs.Has(style.AttrItalic) {
		ts = ts.Italic(true)
	}
	if s.Attrs.Has(style.AttrUnderline) {
		ts = ts.Underline(true)
	}
	if s.Attrs.Has(style.AttrBlink) {
		ts = ts.Blink(true)
	}
	if s.Attrs.Has(style.AttrReverse) {
		ts = ts.Reverse(true)
	}
	if s.Attrs.Has(style.AttrStrikethrough) {
		ts = ts.StrikeThrough(true)
	}

	return ts
}

// convertColor converts our Color to tcell.Color.
func convertColor(c style.Color) tcell.Color {
	if c.IsIndexed() {
		return tcell.PaletteColor(int(c.Index()))
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
