// Package geomconv converts between guistate geometry and the
// seehuhn.de/go/geom types used by vector and PDF tooling.
//
// seehuhn matrices are stored column-major as [a b c d e f] with
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// while guistate.Affine is row-major. Rectangles use lower-left and
// upper-right corners; guistate's y axis points down, so LLy is the top
// edge in screen space.
package geomconv

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/infinite-client/guistate"
)

// FromMatrix converts a seehuhn matrix to an Affine pose.
func FromMatrix(m matrix.Matrix) guistate.Affine {
	return guistate.Affine{
		A: m[0], B: m[2], C: m[4],
		D: m[1], E: m[3], F: m[5],
	}
}

// ToMatrix converts an Affine pose to a seehuhn matrix.
func ToMatrix(a guistate.Affine) matrix.Matrix {
	return matrix.Matrix{a.A, a.D, a.B, a.E, a.C, a.F}
}

// FromVec converts a seehuhn vector to a Point.
func FromVec(v vec.Vec2) guistate.Point { return guistate.Pt(v.X, v.Y) }

// ToVec converts a Point to a seehuhn vector.
func ToVec(p guistate.Point) vec.Vec2 { return vec.Vec2{X: p.X, Y: p.Y} }

// FromRect converts r to the smallest ScreenRect covering it. The corners
// may be given in any order.
func FromRect(r rect.Rect) guistate.ScreenRect {
	x0, x1 := math.Min(r.LLx, r.URx), math.Max(r.LLx, r.URx)
	y0, y1 := math.Min(r.LLy, r.URy), math.Max(r.LLy, r.URy)
	left, top := math.Floor(x0), math.Floor(y0)
	return guistate.Rect(
		int(left), int(top),
		int(math.Ceil(x1)-left), int(math.Ceil(y1)-top),
	)
}

// ToRect converts r to a seehuhn rectangle.
func ToRect(r guistate.ScreenRect) rect.Rect {
	return rect.Rect{
		LLx: float64(r.Left()),
		LLy: float64(r.Top()),
		URx: float64(r.Right()),
		URy: float64(r.Bottom()),
	}
}

// Polygon returns the closed path through pts. Fewer than two points give
// an empty path. pts is copied, so the path stays valid if the caller
// reuses the slice.
func Polygon(pts []guistate.Point) path.Path {
	coords := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		coords[i] = ToVec(p)
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(coords) < 2 {
			return
		}
		if !yield(path.CmdMoveTo, coords[:1]) {
			return
		}
		for i := 1; i < len(coords); i++ {
			if !yield(path.CmdLineTo, coords[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// Outline returns the screen-space outline of a vertex-emitting state, with
// its pose applied, in emission order. Icons and text have no outline of
// their own and report false.
func Outline(s guistate.State) (path.Path, bool) {
	var pts []guistate.Point
	switch st := s.(type) {
	case *guistate.Triangle:
		v := st.Vertices()
		pts = v[:]
	case *guistate.Quad:
		v := st.Vertices()
		pts = v[:]
	case *guistate.Rectangle:
		v := st.Corners()
		pts = v[:]
	case *guistate.TexturedQuad:
		for _, v := range st.Vertices() {
			pts = append(pts, v.Pos)
		}
	default:
		return nil, false
	}
	p := Polygon(pts)
	if pose := s.Pose(); !pose.IsIdentity() {
		p = p.Transform(ToMatrix(pose))
	}
	return p, true
}
