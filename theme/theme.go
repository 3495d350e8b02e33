// Package theme loads named style tables from JSON documents. A theme
// maps style names like "header" or "accent" to style values; screens
// and widgets look styles up by name so the palette can change without
// touching drawing code.
package theme

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dshills/termgrid/style"
)

// ParseError reports a malformed theme document.
type ParseError struct {
	// Path is the dot-separated JSON path to the invalid value.
	Path string

	// Message describes what's wrong.
	Message string

	// Value is the offending value, if any.
	Value string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Theme is a named collection of styles.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Styles maps style names to their styles.
	Styles map[string]style.Style
}

// Style returns the named style and whether it exists.
func (t *Theme) Style(name string) (style.Style, bool) {
	s, ok := t.Styles[name]
	return s, ok
}

// StyleOr returns the named style, or fallback if the theme does not
// define it.
func (t *Theme) StyleOr(name string, fallback style.Style) style.Style {
	if s, ok := t.Styles[name]; ok {
		return s
	}
	return fallback
}

// Load parses a theme from a JSON document of the form
//
//	{"name": "...", "styles": {"header": {"fg": "#61AFEF", "bg": "default", "attrs": ["bold"]}}}
//
// Colors are "#RRGGBB" hex, a 0-255 palette index, or "default".
func Load(data []byte) (*Theme, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Message: "invalid JSON document"}
	}
	root := gjson.ParseBytes(data)

	t := &Theme{
		Name:   root.Get("name").String(),
		Styles: make(map[string]style.Style),
	}

	styles := root.Get("styles")
	if !styles.Exists() {
		return t, nil
	}
	if !styles.IsObject() {
		return nil, &ParseError{Path: "styles", Message: "expected an object", Value: styles.String()}
	}

	var perr *ParseError
	styles.ForEach(func(key, value gjson.Result) bool {
		s, err := parseStyle("styles."+key.String(), value)
		if err != nil {
			perr = err
			return false
		}
		t.Styles[key.String()] = s
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return t, nil
}

// LoadFile reads and parses a theme file.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return Load(data)
}

func parseStyle(path string, res gjson.Result) (style.Style, *ParseError) {
	if !res.IsObject() {
		return style.Style{}, &ParseError{Path: path, Message: "expected an object", Value: res.String()}
	}

	fg, err := parseColor(path+".fg", res.Get("fg"))
	if err != nil {
		return style.Style{}, err
	}
	bg, err := parseColor(path+".bg", res.Get("bg"))
	if err != nil {
		return style.Style{}, err
	}

	var attrs style.Attr
	if list := res.Get("attrs"); list.Exists() {
		if !list.IsArray() {
			return style.Style{}, &ParseError{Path: path + ".attrs", Message: "expected an array", Value: list.String()}
		}
		for _, item := range list.Array() {
			a, ok := attrFromName(item.String())
			if !ok {
				return style.Style{}, &ParseError{Path: path + ".attrs", Message: "unknown attribute", Value: item.String()}
			}
			attrs = attrs.With(a)
		}
	}

	return style.Style{Foreground: fg, Background: bg, Attrs: attrs}, nil
}

func parseColor(path string, res gjson.Result) (style.Color, *ParseError) {
	if !res.Exists() {
		return style.Color{}, nil
	}
	s := res.String()
	if s == "" || s == "default" {
		return style.Color{}, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := style.Hex(s)
		if err != nil {
			return style.Color{}, &ParseError{Path: path, Message: "invalid hex color", Value: s}
		}
		return c, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return style.Color{}, &ParseError{Path: path, Message: "palette index out of range", Value: s}
		}
		return style.Indexed(uint8(n)), nil
	}
	return style.Color{}, &ParseError{Path: path, Message: "unrecognized color", Value: s}
}

func attrFromName(name string) (style.Attr, bool) {
	switch name {
	case "bold":
		return style.AttrBold, true
	case "dim":
		return style.AttrDim, true
	case "italic":
		return style.AttrItalic, true
	case "underline":
		return style.AttrUnderline, true
	case "blink":
		return style.AttrBlink, true
	case "reverse":
		return style.AttrReverse, true
	case "strikethrough":
		return style.AttrStrikethrough, true
	default:
		return style.AttrNone, false
	}
}

// Default returns the built-in dark theme.
func Default() *Theme {
	return &Theme{
		Name: "Default Dark",
		Styles: map[string]style.Style{
			"body":    {Foreground: style.RGB(212, 212, 212)},
			"header":  {Foreground: style.RGB(212, 212, 212), Background: style.RGB(40, 40, 80), Attrs: style.AttrBold},
			"footer":  {Foreground: style.RGB(150, 150, 150), Attrs: style.AttrDim},
			"accent":  {Foreground: style.RGB(97, 175, 239), Attrs: style.AttrBold},
			"warning": {Foreground: style.RGB(229, 192, 123)},
			"error":   {Foreground: style.RGB(224, 108, 117), Attrs: style.AttrBold},
		},
	}
}
