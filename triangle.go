package guistate

// Triangle is a solid-colour triangle.
type Triangle struct {
	shape
	p1, p2, p3 Point
}

// NewTriangle builds a triangle render state and computes its bounds.
func NewTriangle(pipeline any, pose Affine, p1, p2, p3 Point, c Color, clip Scissor) *Triangle {
	t := &Triangle{
		shape: shape{
			base:     base{pose: pose, color: c, scissor: clip},
			pipeline: pipeline,
		},
		p1: p1, p2: p2, p3: p3,
	}
	t.bounds, t.hasBounds = TriangleBounds(p1, p2, p3, pose, clip)
	return t
}

// Kind returns KindTriangle.
func (*Triangle) Kind() Kind { return KindTriangle }

// Vertices returns the raw vertices in the order they were given.
func (t *Triangle) Vertices() [3]Point {
	return [3]Point{t.p1, t.p2, t.p3}
}
