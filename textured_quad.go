package guistate

// TexturedQuad is an axis-aligned quad sampling a texture. The first
// corner carries texture coordinate uv1 and the opposite corner uv2.
//
// The corners are used as given: callers pass them already ordered, and no
// winding pass is applied.
type TexturedQuad struct {
	shape
	c1, c2   Point
	uv1, uv2 Point
}

// NewTexturedQuad builds a textured quad render state and computes its
// bounds.
func NewTexturedQuad(pipeline any, pose Affine, c1, c2, uv1, uv2 Point, c Color, clip Scissor) *TexturedQuad {
	q := &TexturedQuad{
		shape: shape{
			base:     base{pose: pose, color: c, scissor: clip},
			pipeline: pipeline,
		},
		c1: c1, c2: c2,
		uv1: uv1, uv2: uv2,
	}
	q.bounds, q.hasBounds = TexturedQuadBounds(c1, c2, pose, clip)
	return q
}

// Kind returns KindTexturedQuad.
func (*TexturedQuad) Kind() Kind { return KindTexturedQuad }

// TexturedVertex is a position paired with a texture coordinate.
type TexturedVertex struct {
	Pos Point
	UV  Point
}

// Vertices returns the corners with their texture coordinates in emission
// order: (x1,y1), (x1,y2), (x2,y2), (x2,y1).
func (q *TexturedQuad) Vertices() [4]TexturedVertex {
	x1, y1, x2, y2 := q.c1.X, q.c1.Y, q.c2.X, q.c2.Y
	u1, v1, u2, v2 := q.uv1.X, q.uv1.Y, q.uv2.X, q.uv2.Y
	return [4]TexturedVertex{
		{Pos: Pt(x1, y1), UV: Pt(u1, v1)},
		{Pos: Pt(x1, y2), UV: Pt(u1, v2)},
		{Pos: Pt(x2, y2), UV: Pt(u2, v2)},
		{Pos: Pt(x2, y1), UV: Pt(u2, v1)},
	}
}
