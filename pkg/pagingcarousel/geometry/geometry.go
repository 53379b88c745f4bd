// Package geometry holds the small value types used to describe resolved
// layout: points, sizes, rectangles and edge insets. All values are in
// logical pixels with the origin at the top-left corner.
package geometry

import "math"

// Point is a location in a parent's coordinate space.
type Point struct {
	X float64
	Y float64
}

// Size is a width and height pair.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether the size has no area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an origin and a size.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Size returns the rectangle's size.
func (r Rect) Size() Size { return Size{Width: r.W, Height: r.H} }

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Inset shrinks r by the given insets. Negative insets grow it.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: math.Max(0, r.W-in.Left-in.Right),
		H: math.Max(0, r.H-in.Top-in.Bottom),
	}
}

// Offset returns r translated by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// ScaledAboutCenter returns r scaled by s around its own center.
func (r Rect) ScaledAboutCenter(s float64) Rect {
	w, h := r.W*s, r.H*s
	return Rect{X: r.CenterX() - w/2, Y: r.CenterY() - h/2, W: w, H: h}
}

// Insets defines spacing on all four sides of an element.
type Insets struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformInsets creates Insets with the same value on all sides.
func UniformInsets(value float64) Insets {
	return Insets{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// IsZero reports whether all sides are zero.
func (in Insets) IsZero() bool {
	return in == Insets{}
}
