// Package geom provides the integer geometry primitives shared by the layout
// engine and the renderer: points, sizes, rectangles, and four-sided border
// thickness. All coordinates are in pixels with the origin at the top-left.
package geom

import (
	"fmt"
	"image"
)

// Point is an x/y coordinate pair.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// String returns the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Size is a width/height pair.
type Size struct {
	W, H int
}

// Max returns the component-wise maximum of s and t.
func (s Size) Max(t Size) Size {
	u := s
	if t.W > u.W {
		u.W = t.W
	}
	if t.H > u.H {
		u.H = t.H
	}
	return u
}

// String returns the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Rect is a rectangle described by its top-left corner and its dimensions.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a rectangle from a position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the exclusive right edge coordinate (X + Width).
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge coordinate (Y + Height).
func (r Rect) Bottom() int { return r.Y + r.Height }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{W: r.Width, H: r.Height} }

// Coords returns the rectangle as an (x1, y1, x2, y2) quad with exclusive
// maximum edges, the form image pasting libraries expect.
func (r Rect) Coords() (x1, y1, x2, y2 int) {
	return r.X, r.Y, r.Right(), r.Bottom()
}

// Image converts the rectangle to the standard library representation.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

// String returns the rectangle as "(x, y) WxH".
func (r Rect) String() string {
	return fmt.Sprintf("(%d, %d) %dx%d", r.X, r.Y, r.Width, r.Height)
}

// Thickness is a four-sided border width, one value per edge.
// The zero value is a zero-width border on every side.
type Thickness struct {
	Top, Right, Bottom, Left int
}

// UniformThickness returns a Thickness with the same value on all four sides.
func UniformThickness(n int) Thickness {
	return Thickness{Top: n, Right: n, Bottom: n, Left: n}
}

// Width returns the combined horizontal extent (left + right).
func (t Thickness) Width() int { return t.Left + t.Right }

// Height returns the combined vertical extent (top + bottom).
func (t Thickness) Height() int { return t.Top + t.Bottom }

// Size returns the combined extents as a Size.
func (t Thickness) Size() Size {
	return Size{W: t.Width(), H: t.Height()}
}
