package backend

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/dshills/termgrid/buffer"
	"github.com/dshills/termgrid/geometry"
	"github.com/dshills/termgrid/style"
)

// Escape sequences used by the ANSI backend.
const (
	ansiAltScreenEnter = "\x1b[?1049h"
	ansiAltScreenExit  = "\x1b[?1049l"
	ansiCursorHide     = "\x1b[?25l"
	ansiCursorShow     = "\x1b[?25h"
	ansiAutoWrapOff    = "\x1b[?7l"
	ansiAutoWrapOn     = "\x1b[?7h"
	ansiClear          = "\x1b[2J\x1b[H"
	ansiReset          = "\x1b[0m"
)

// ANSI implements Backend by writing escape sequences to an io.Writer.
// It tracks the cursor position to elide redundant moves and repeats an
// SGR sequence only when the style changes between cells.
type ANSI struct {
	w       *bufio.Writer
	size    geometry.Size
	profile termenv.Profile

	cursorX     int
	cursorY     int
	cursorValid bool
	lastSGR     string
}

var _ Backend = (*ANSI)(nil)

// NewANSI creates an ANSI backend on standard output, sized from the
// terminal and degrading colors to its detected profile. It fails when
// standard output is not a terminal.
func NewANSI() (*ANSI, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("standard output is not a terminal")
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return nil, fmt.Errorf("querying terminal size: %w", err)
	}
	return &ANSI{
		w:       bufio.NewWriterSize(os.Stdout, 64*1024),
		size:    geometry.NewSize(w, h),
		profile: termenv.ColorProfile(),
	}, nil
}

// NewANSIWriter creates an ANSI backend writing to w with a fixed size,
// emitting colors at true-color fidelity. Use it to capture output in
// tests or render to a non-terminal sink.
func NewANSIWriter(w io.Writer, size geometry.Size) *ANSI {
	return &ANSI{
		w:       bufio.NewWriterSize(w, 64*1024),
		size:    geometry.NewSize(size.Width, size.Height),
		profile: termenv.TrueColor,
	}
}

func (a *ANSI) Init() error {
	a.w.WriteString(ansiAltScreenEnter)
	a.w.WriteString(ansiCursorHide)
	a.w.WriteString(ansiAutoWrapOff)
	a.w.WriteString(ansiClear)
	a.invalidate()
	return a.w.Flush()
}

func (a *ANSI) Fini() {
	a.w.WriteString(ansiReset)
	a.w.WriteString(ansiAutoWrapOn)
	a.w.WriteString(ansiCursorShow)
	a.w.WriteString(ansiAltScreenExit)
	a.w.Flush()
}

func (a *ANSI) Size() geometry.Size {
	return a.size
}

func (a *ANSI) SetCell(x, y int, c buffer.Cell) {
	// Continuation cells are covered by the wide head to their left.
	if c.Skip {
		return
	}
	if x < 0 || y < 0 || x >= a.size.Width || y >= a.size.Height {
		return
	}

	if !a.cursorValid || x != a.cursorX || y != a.cursorY {
		fmt.Fprintf(a.w, "\x1b[%d;%dH", y+1, x+1)
	}

	if sgr := a.sgr(c.Style); sgr != a.lastSGR {
		a.w.WriteString(sgr)
		a.lastSGR = sgr
	}

	a.w.WriteString(c.Grapheme)
	a.cursorX = x + c.Width
	a.cursorY = y
	a.cursorValid = true
}

func (a *ANSI) Flush() error {
	return a.w.Flush()
}

func (a *ANSI) Clear() {
	a.w.WriteString(ansiReset)
	a.w.WriteString(ansiClear)
	a.invalidate()
}

func (a *ANSI) invalidate() {
	a.cursorValid = false
	a.lastSGR = ""
}

// sgr builds the full SGR sequence selecting the cell style. The
// sequence always starts from a reset so stale attributes never leak
// between runs.
func (a *ANSI) sgr(s style.Style) string {
	params := []string{"0"}

	if s.Attrs.Has(style.AttrBold) {
		params = append(params, "1")
	}
	if s.Attrs.Has(style.AttrDim) {
		params = append(params, "2")
	}
	if s.Attrs.Has(style.AttrItalic) {
		params = append(params, "3")
	}
	if s.Attrs.Has(style.AttrUnderline) {
		params = append(params, "4")
	}
	if s.Attrs.Has(style.AttrBlink) {
		params = append(params, "5")
	}
	if s.Attrs.Has(style.AttrReverse) {
		params = append(params, "7")
	}
	if s.Attrs.Has(style.AttrStrikethrough) {
		params = append(params, "9")
	}

	if seq := a.colorSeq(s.Foreground, false); seq != "" {
		params = append(params, seq)
	}
	if seq := a.colorSeq(s.Background, true); seq != "" {
		params = append(params, seq)
	}

	return "\x1b[" + strings.Join(params, ";") + "m"
}

// colorSeq returns the SGR parameters selecting c, degraded to the
// output profile, or "" for the terminal default.
func (a *ANSI) colorSeq(c style.Color, background bool) string {
	if c.IsDefault() {
		return ""
	}
	var tc termenv.Color
	if c.IsIndexed() {
		tc = termenv.ANSI256Color(c.Index())
	} else {
		tc = termenv.RGBColor(c.Hex())
	}
	if converted := a.profile.Convert(tc); converted != nil {
		return converted.Sequence(background)
	}
	return ""
}
