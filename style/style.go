// Package style defines the visual attributes carried by every rendered
// cell: colors, text attributes, and their combination into a Style.
// All types are small comparable values, so styles and cells can be
// compared with == in diff hot paths.
package style

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type colorMode uint8

const (
	colorDefault colorMode = iota
	colorIndexed
	colorRGB
)

// Color represents a terminal color: the terminal's default, a palette
// index (0-255), or a 24-bit RGB value. The zero value is the terminal
// default.
type Color struct {
	mode    colorMode
	r, g, b uint8
	index   uint8
}

// RGB creates a true color from red, green, and blue components.
func RGB(r, g, b uint8) Color {
	return Color{mode: colorRGB, r: r, g: g, b: b}
}

// Indexed creates a 256-palette color.
func Indexed(n uint8) Color {
	return Color{mode: colorIndexed, index: n}
}

// Hex parses a "#RRGGBB" or "#RGB" string into a true color.
// The leading "#" is optional.
func Hex(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// Common colors.
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
	Gray    = RGB(128, 128, 128)
)

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.mode == colorDefault
}

// IsIndexed returns true if this is a palette color.
func (c Color) IsIndexed() bool {
	return c.mode == colorIndexed
}

// Index returns the palette index of an indexed color, 0 otherwise.
func (c Color) Index() uint8 {
	return c.index
}

// RGB255 returns the color components of a true color, 0 otherwise.
func (c Color) RGB255() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Hex returns "#RRGGBB" for a true color and "" otherwise.
func (c Color) Hex() string {
	if c.mode != colorRGB {
		return ""
	}
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

// String returns a string representation of the color.
func (c Color) String() string {
	switch c.mode {
	case colorIndexed:
		return fmt.Sprintf("idx(%d)", c.index)
	case colorRGB:
		return c.Hex()
	default:
		return "default"
	}
}

// Attr represents text attributes (bold, italic, etc.) as a bitmask.
type Attr uint16

// Text attribute flags.
const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrikethrough
)

// AttrNone is the empty attribute set.
const AttrNone Attr = 0

// Has returns true if the attribute set contains the given attribute.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attr) With(attr Attr) Attr {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attr) Without(attr Attr) Attr {
	return a &^ attr
}

// Style represents the visual style of a cell: foreground, background,
// and text attributes. The zero value is the terminal's default style.
type Style struct {
	Foreground Color
	Background Color
	Attrs      Attr
}

// NewStyle creates a style with the given foreground color.
func NewStyle(fg Color) Style {
	return Style{Foreground: fg}
}

// WithForeground returns a copy with the given foreground color.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a copy with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// WithAttrs returns a copy with the given attribute set.
func (s Style) WithAttrs(attrs Attr) Style {
	s.Attrs = attrs
	return s
}

// Bold returns a copy with the bold attribute added.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Dim returns a copy with the dim attribute added.
func (s Style) Dim() Style {
	s.Attrs |= AttrDim
	return s
}

// Italic returns a copy with the italic attribute added.
func (s Style) Italic() Style {
	s.Attrs |= AttrItalic
	return s
}

// Underline returns a copy with the underline attribute added.
func (s Style) Underline() Style {
	s.Attrs |= AttrUnderline
	return s
}

// Blink returns a copy with the blink attribute added.
func (s Style) Blink() Style {
	s.Attrs |= AttrBlink
	return s
}

// Reverse returns a copy with the reverse-video attribute added.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// Strikethrough returns a copy with the strikethrough attribute added.
func (s Style) Strikethrough() Style {
	s.Attrs |= AttrStrikethrough
	return s
}

// Merge overlays the non-default fields of other onto s.
// Attributes are combined.
func (s Style) Merge(other Style) Style {
	result := s
	if !other.Foreground.IsDefault() {
		result.Foreground = other.Foreground
	}
	if !other.Background.IsDefault() {
		result.Background = other.Background
	}
	result.Attrs |= other.Attrs
	return result
}

// Invert returns a copy with foreground and background swapped.
func (s Style) Invert() Style {
	return Style{
		Foreground: s.Background,
		Background: s.Foreground,
		Attrs:      s.Attrs,
	}
}

// IsDefault returns true if this is the default style.
func (s Style) IsDefault() bool {
	return s == Style{}
}
