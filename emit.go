package guistate

import "log/slog"

// TriangleMode selects how triangles are written to a sink.
type TriangleMode uint8

const (
	// TriangleNative emits the three vertices as given.
	TriangleNative TriangleMode = iota

	// TriangleDegenerateQuad emits v1, v2, v3, v2 for sinks that only
	// accept four-vertex primitives.
	TriangleDegenerateQuad
)

// String returns the mode name.
func (m TriangleMode) String() string {
	switch m {
	case TriangleNative:
		return "Native"
	case TriangleDegenerateQuad:
		return "DegenerateQuad"
	default:
		return "Unknown"
	}
}

// EmitOption configures a call to Emit.
type EmitOption func(*emitOptions)

type emitOptions struct {
	triangleMode TriangleMode
	unbounded    bool
}

// WithTriangleMode selects triangle emission. The default is TriangleNative.
func WithTriangleMode(m TriangleMode) EmitOption {
	return func(o *emitOptions) {
		o.triangleMode = m
	}
}

// WithUnbounded makes Emit draw states that have no bounds. By default a
// state whose bounds were clipped away is skipped.
func WithUnbounded(emit bool) EmitOption {
	return func(o *emitOptions) {
		o.unbounded = emit
	}
}

// Emit writes the vertices of s to sink and reports whether anything was
// written.
//
// Icon and Text states are delegated to the sink's IconDrawer or TextDrawer
// implementation; without one they are not emitted.
func Emit(s State, sink VertexSink, opts ...EmitOption) bool {
	var o emitOptions
	for _, opt := range opts {
		opt(&o)
	}

	if !o.unbounded {
		if _, ok := s.Bounds(); !ok {
			Logger().Debug("guistate: skip state without bounds",
				slog.String("kind", s.Kind().String()),
				slog.String("scissor", s.Scissor().String()))
			return false
		}
	}

	switch st := s.(type) {
	case *Triangle:
		emitTriangle(st, sink, o.triangleMode)
	case *Quad:
		v := st.Vertices()
		emitSolid(sink, KindQuad, st.pipeline, st.pose, st.color, v[:])
	case *Rectangle:
		c := st.Corners()
		emitSolid(sink, KindRectangle, st.pipeline, st.pose, st.color, c[:])
	case *TexturedQuad:
		emitTextured(st, sink)
	case *Icon:
		d, ok := sink.(IconDrawer)
		if !ok {
			return false
		}
		d.DrawIcon(st)
	case *Text:
		d, ok := sink.(TextDrawer)
		if !ok {
			return false
		}
		d.DrawText(st, st.Prepare())
	default:
		return false
	}
	return true
}

func emitTriangle(t *Triangle, sink VertexSink, mode TriangleMode) {
	if mode == TriangleDegenerateQuad {
		emitSolid(sink, KindTriangle, t.pipeline, t.pose, t.color, []Point{t.p1, t.p2, t.p3, t.p2})
		return
	}
	emitSolid(sink, KindTriangle, t.pipeline, t.pose, t.color, []Point{t.p1, t.p2, t.p3})
}

func emitSolid(sink VertexSink, kind Kind, pipeline any, pose Affine, c Color, pts []Point) {
	if ps, ok := sink.(PrimitiveSink); ok {
		ps.BeginPrimitive(kind, pipeline, len(pts))
	}
	for _, p := range pts {
		sink.Vertex(pose.TransformPoint(p), c)
	}
}

func emitTextured(q *TexturedQuad, sink VertexSink) {
	vs := q.Vertices()
	if ps, ok := sink.(PrimitiveSink); ok {
		ps.BeginPrimitive(KindTexturedQuad, q.pipeline, len(vs))
	}
	for _, v := range vs {
		sink.TexturedVertex(q.pose.TransformPoint(v.Pos), v.UV, q.color)
	}
}
