package guistate

// Quad is a solid-colour free-form quadrilateral. Its corners may be given
// in any order; they are emitted in SortClockwise order.
type Quad struct {
	shape
	raw    [4]Point
	sorted [4]Point
}

// NewQuad builds a quadrilateral render state, computes its bounds and
// fixes its winding order.
func NewQuad(pipeline any, pose Affine, p1, p2, p3, p4 Point, c Color, clip Scissor) *Quad {
	q := &Quad{
		shape: shape{
			base:     base{pose: pose, color: c, scissor: clip},
			pipeline: pipeline,
		},
		raw: [4]Point{p1, p2, p3, p4},
	}
	q.bounds, q.hasBounds = QuadBounds(p1, p2, p3, p4, pose, clip)
	copy(q.sorted[:], SortClockwise(q.raw[:]))
	return q
}

// Kind returns KindQuad.
func (*Quad) Kind() Kind { return KindQuad }

// RawVertices returns the corners in the order they were given.
func (q *Quad) RawVertices() [4]Point { return q.raw }

// Vertices returns the corners in emission order.
func (q *Quad) Vertices() [4]Point { return q.sorted }
