package guistate

// VertexSink receives emitted vertices. Positions are already in screen
// space (the state's Pose has been applied). The sink decides how vertices
// are batched into primitives; Emit only guarantees the order.
type VertexSink interface {
	// Vertex appends a solid-colour vertex.
	Vertex(pos Point, c Color)

	// TexturedVertex appends a vertex with a texture coordinate.
	TexturedVertex(pos, uv Point, c Color)
}

// IconDrawer is implemented by sinks that can draw item icons. Icon
// states are only emitted to sinks implementing it.
type IconDrawer interface {
	DrawIcon(ic *Icon)
}

// TextDrawer is implemented by sinks that can draw prepared text. Text
// states are only emitted to sinks implementing it. layout is the result of
// Text.Prepare.
type TextDrawer interface {
	DrawText(t *Text, layout TextLayout)
}

// PrimitiveSink is implemented by sinks that batch vertices into
// primitives and need to know where one primitive ends. Emit calls
// BeginPrimitive before the first vertex of every vertex-emitting state.
type PrimitiveSink interface {
	BeginPrimitive(kind Kind, pipeline any, vertexCount int)
}
