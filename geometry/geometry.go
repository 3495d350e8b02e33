// Package geometry provides the coordinate and region value types shared
// by the rendering packages. All constructors clamp negative input to zero
// rather than failing; pure value math never returns an error.
package geometry

import "fmt"

// Position represents a cell coordinate on screen (0-indexed).
type Position struct {
	X int
	Y int
}

// NewPosition creates a position, clamping negative coordinates to zero.
func NewPosition(x, y int) Position {
	return Position{X: max(x, 0), Y: max(y, 0)}
}

// Add returns a new position offset by the given delta.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Equals returns true if two positions are the same.
func (p Position) Equals(other Position) bool {
	return p == other
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size represents the extent of a rectangular region in cells.
type Size struct {
	Width  int
	Height int
}

// NewSize creates a size, clamping negative dimensions to zero.
func NewSize(width, height int) Size {
	return Size{Width: max(width, 0), Height: max(height, 0)}
}

// Area returns the number of cells the size covers.
func (s Size) Area() int {
	return s.Width * s.Height
}

// IsEmpty returns true if the size has no area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Equals returns true if two sizes are the same.
func (s Size) Equals(other Size) bool {
	return s == other
}

// String returns a string representation of the size.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Rect represents a rectangular region of cells.
// X and Y are the top-left corner; Width and Height extend right and down.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a rectangle, clamping negative components to zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{
		X:      max(x, 0),
		Y:      max(y, 0),
		Width:  max(width, 0),
		Height: max(height, 0),
	}
}

// RectFrom creates a rectangle from a position and size.
func RectFrom(pos Position, size Size) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
}

// Position returns the top-left corner of the rectangle.
func (r Rect) Position() Position {
	return Position{X: r.X, Y: r.Y}
}

// Size returns the extent of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the first column past the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point lies within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsPosition returns true if pos lies within the rectangle.
func (r Rect) ContainsPosition(pos Position) bool {
	return r.Contains(pos.X, pos.Y)
}

// ContainsRect returns true if other lies entirely within r.
// An empty other is contained only if its origin is in bounds.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Right() <= r.Right() &&
		other.Y >= r.Y && other.Bottom() <= r.Bottom()
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Intersect returns the overlapping region of two rectangles.
// It returns the zero rectangle when there is no overlap.
func (r Rect) Intersect(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  min(r.Right(), other.Right()) - x,
		Height: min(r.Bottom(), other.Bottom()) - y,
	}
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  max(r.Right(), other.Right()) - x,
		Height: max(r.Bottom(), other.Bottom()) - y,
	}
}

// Equals returns true if two rectangles are identical.
func (r Rect) Equals(other Rect) bool {
	return r == other
}

// String returns a string representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Margin represents outer spacing removed from a rectangle's edges.
type Margin struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NewMargin creates a margin, clamping negative sides to zero.
func NewMargin(left, top, right, bottom int) Margin {
	return Margin{
		Left:   max(left, 0),
		Top:    max(top, 0),
		Right:  max(right, 0),
		Bottom: max(bottom, 0),
	}
}

// UniformMargin creates a margin with the same value on every side.
func UniformMargin(n int) Margin {
	return NewMargin(n, n, n, n)
}

// SymmetricMargin creates a margin from horizontal and vertical values.
func SymmetricMargin(horizontal, vertical int) Margin {
	return NewMargin(horizontal, vertical, horizontal, vertical)
}

// Apply shrinks the rectangle by the margin. Extents that would go
// negative clamp to zero.
func (m Margin) Apply(r Rect) Rect {
	return shrink(r, m.Left, m.Top, m.Right, m.Bottom)
}

// IsZero returns true if the margin removes nothing.
func (m Margin) IsZero() bool {
	return m == Margin{}
}

// Padding represents inner spacing removed from a rectangle's edges.
type Padding struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NewPadding creates a padding, clamping negative sides to zero.
func NewPadding(left, top, right, bottom int) Padding {
	return Padding{
		Left:   max(left, 0),
		Top:    max(top, 0),
		Right:  max(right, 0),
		Bottom: max(bottom, 0),
	}
}

// UniformPadding creates a padding with the same value on every side.
func UniformPadding(n int) Padding {
	return NewPadding(n, n, n, n)
}

// SymmetricPadding creates a padding from horizontal and vertical values.
func SymmetricPadding(horizontal, vertical int) Padding {
	return NewPadding(horizontal, vertical, horizontal, vertical)
}

// Apply shrinks the rectangle by the padding. Extents that would go
// negative clamp to zero.
func (p Padding) Apply(r Rect) Rect {
	return shrink(r, p.Left, p.Top, p.Right, p.Bottom)
}

// IsZero returns true if the padding removes nothing.
func (p Padding) IsZero() bool {
	return p == Padding{}
}

func shrink(r Rect, left, top, right, bottom int) Rect {
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  max(r.Width-left-right, 0),
		Height: max(r.Height-top-bottom, 0),
	}
}
