package guistate

import (
	"fmt"
	"math"
)

// ScreenRect is an axis-aligned rectangle on the integer pixel grid.
//
// A ScreenRect is a plain value. The absence of a rectangle (nothing left
// after clipping) is reported separately as a false ok result, never as a
// special ScreenRect value, so the zero-sized rectangle at the origin stays
// a legitimate answer.
type ScreenRect struct {
	X, Y          int
	Width, Height int
}

// EmptyRect is the zero-sized rectangle at the origin.
var EmptyRect = ScreenRect{}

// Rect creates a ScreenRect from position and size.
func Rect(x, y, width, height int) ScreenRect {
	return ScreenRect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge x-coordinate.
func (r ScreenRect) Left() int { return r.X }

// Top returns the top edge y-coordinate.
func (r ScreenRect) Top() int { return r.Y }

// Right returns the right edge x-coordinate (exclusive).
func (r ScreenRect) Right() int { return r.X + r.Width }

// Bottom returns the bottom edge y-coordinate (exclusive).
func (r ScreenRect) Bottom() int { return r.Y + r.Height }

// IsEmpty reports whether r covers no pixels.
func (r ScreenRect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the pixel at (x, y) lies inside r.
func (r ScreenRect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Overlaps reports whether r and s share at least one pixel.
func (r ScreenRect) Overlaps(s ScreenRect) bool {
	_, ok := Intersect(r, s)
	return ok
}

// Intersection returns the overlap of r and s.
// ok is false when the overlap is zero or negative on either axis.
func (r ScreenRect) Intersection(s ScreenRect) (ScreenRect, bool) {
	return Intersect(r, s)
}

// Intersect returns the overlap of a and b.
//
// The overlap width is min(a.Right, b.Right) - max(a.Left, b.Left) and the
// overlap height is computed the same way; if either is <= 0 there is no
// rectangle and ok is false. Rectangles that merely touch do not intersect.
func Intersect(a, b ScreenRect) (ScreenRect, bool) {
	left := max(a.Left(), b.Left())
	top := max(a.Top(), b.Top())
	right := min(a.Right(), b.Right())
	bottom := min(a.Bottom(), b.Bottom())

	if right-left <= 0 || bottom-top <= 0 {
		return ScreenRect{}, false
	}
	return ScreenRect{X: left, Y: top, Width: right - left, Height: bottom - top}, true
}

// Union returns the smallest rectangle enclosing both a and b.
// Empty rectangles do not contribute.
func Union(a, b ScreenRect) ScreenRect {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	left := min(a.Left(), b.Left())
	top := min(a.Top(), b.Top())
	right := max(a.Right(), b.Right())
	bottom := max(a.Bottom(), b.Bottom())
	return ScreenRect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// TransformVertices maps all four corners of r through t and returns the
// axis-aligned box around the result. The minimum corner is floored and the
// extent is ceiled, so the box never under-covers the transformed shape.
func (r ScreenRect) TransformVertices(t Affine) ScreenRect {
	left, top := float64(r.Left()), float64(r.Top())
	right, bottom := float64(r.Right()), float64(r.Bottom())

	if t.IsAxisAligned() {
		// Opposite corners carry every x and y the other two do.
		p0 := t.TransformPoint(Pt(left, top))
		p1 := t.TransformPoint(Pt(right, bottom))
		minX, maxX := min(p0.X, p1.X), max(p0.X, p1.X)
		minY, maxY := min(p0.Y, p1.Y), max(p0.Y, p1.Y)
		return ScreenRect{
			X:      int(math.Floor(minX)),
			Y:      int(math.Floor(minY)),
			Width:  int(math.Ceil(maxX - minX)),
			Height: int(math.Ceil(maxY - minY)),
		}
	}

	p0 := t.TransformPoint(Pt(left, top))
	p1 := t.TransformPoint(Pt(right, top))
	p2 := t.TransformPoint(Pt(left, bottom))
	p3 := t.TransformPoint(Pt(right, bottom))

	minX := min(p0.X, p1.X, p2.X, p3.X)
	maxX := max(p0.X, p1.X, p2.X, p3.X)
	minY := min(p0.Y, p1.Y, p2.Y, p3.Y)
	maxY := max(p0.Y, p1.Y, p2.Y, p3.Y)

	return ScreenRect{
		X:      int(math.Floor(minX)),
		Y:      int(math.Floor(minY)),
		Width:  int(math.Ceil(maxX - minX)),
		Height: int(math.Ceil(maxY - minY)),
	}
}

// String returns a compact representation for logs and test failures.
func (r ScreenRect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
