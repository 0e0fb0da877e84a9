package guistate

// Rectangle is a solid-colour axis-aligned rectangle spanned by two
// opposite corners.
type Rectangle struct {
	shape
	c1, c2 Point
}

// NewRectangle builds a rectangle render state and computes its bounds.
// The corners may be given in any order.
func NewRectangle(pipeline any, pose Affine, c1, c2 Point, c Color, clip Scissor) *Rectangle {
	r := &Rectangle{
		shape: shape{
			base:     base{pose: pose, color: c, scissor: clip},
			pipeline: pipeline,
		},
		c1: c1, c2: c2,
	}
	r.bounds, r.hasBounds = RectangleBounds(c1, c2, pose, clip)
	return r
}

// Kind returns KindRectangle.
func (*Rectangle) Kind() Kind { return KindRectangle }

// Corners returns the normalised corners in emission order:
// top-left, bottom-left, bottom-right, top-right.
func (r *Rectangle) Corners() [4]Point {
	left, right := min(r.c1.X, r.c2.X), max(r.c1.X, r.c2.X)
	top, bottom := min(r.c1.Y, r.c2.Y), max(r.c1.Y, r.c2.Y)
	return [4]Point{
		{X: left, Y: top},
		{X: left, Y: bottom},
		{X: right, Y: bottom},
		{X: right, Y: top},
	}
}
