package guistate

import (
	"slices"
	"testing"
)

type vertex struct {
	Pos Point
	UV  Point
	C   Color
	Tex bool
}

// countingSink records vertices and primitive starts.
type countingSink struct {
	vertices   []vertex
	primitives []Kind
	icons      int
	texts      int
}

func (s *countingSink) Vertex(pos Point, c Color) {
	s.vertices = append(s.vertices, vertex{Pos: pos, C: c})
}

func (s *countingSink) TexturedVertex(pos, uv Point, c Color) {
	s.vertices = append(s.vertices, vertex{Pos: pos, UV: uv, C: c, Tex: true})
}

func (s *countingSink) BeginPrimitive(kind Kind, _ any, _ int) {
	s.primitives = append(s.primitives, kind)
}

func (s *countingSink) positions() []Point {
	out := make([]Point, len(s.vertices))
	for i, v := range s.vertices {
		out[i] = v.Pos
	}
	return out
}

// drawingSink additionally draws icons and text.
type drawingSink struct {
	countingSink
	layouts []TextLayout
}

func (s *drawingSink) DrawIcon(*Icon) { s.icons++ }

func (s *drawingSink) DrawText(_ *Text, layout TextLayout) {
	s.texts++
	s.layouts = append(s.layouts, layout)
}

func TestQuadEndToEnd(t *testing.T) {
	q := NewQuad("pipe", Identity(), Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), White, NoScissor())

	got, ok := q.Bounds()
	if !ok || got != Rect(0, 0, 10, 10) {
		t.Fatalf("Bounds() = %v, %v, want %v, true", got, ok, Rect(0, 0, 10, 10))
	}

	var sink countingSink
	if !Emit(q, &sink) {
		t.Fatal("Emit() = false, want true")
	}
	want := []Point{Pt(0, 10), Pt(10, 10), Pt(10, 0), Pt(0, 0)}
	if !slices.Equal(sink.positions(), want) {
		t.Errorf("emitted %v, want %v", sink.positions(), want)
	}
	for _, v := range sink.vertices {
		if v.C != White || v.Tex {
			t.Errorf("vertex %+v: want solid white", v)
		}
	}
	if !slices.Equal(sink.primitives, []Kind{KindQuad}) {
		t.Errorf("primitives = %v, want [Quad]", sink.primitives)
	}
	if q.Pipeline() != "pipe" {
		t.Errorf("Pipeline() = %v, want pipe", q.Pipeline())
	}
	if q.RawVertices()[1] != Pt(10, 0) {
		t.Errorf("RawVertices() = %v, want input order", q.RawVertices())
	}
}

func TestTriangleEmission(t *testing.T) {
	tri := NewTriangle(nil, Identity(), Pt(0, 0), Pt(5, 10), Pt(10, 0), Black, NoScissor())

	tests := []struct {
		name string
		opts []EmitOption
		want []Point
	}{
		{"native", nil, []Point{Pt(0, 0), Pt(5, 10), Pt(10, 0)}},
		{"explicit native", []EmitOption{WithTriangleMode(TriangleNative)}, []Point{Pt(0, 0), Pt(5, 10), Pt(10, 0)}},
		{"degenerate quad", []EmitOption{WithTriangleMode(TriangleDegenerateQuad)}, []Point{Pt(0, 0), Pt(5, 10), Pt(10, 0), Pt(5, 10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sink countingSink
			Emit(tri, &sink, tt.opts...)
			if !slices.Equal(sink.positions(), tt.want) {
				t.Errorf("emitted %v, want %v", sink.positions(), tt.want)
			}
		})
	}
}

func TestRectangleEmission(t *testing.T) {
	r := NewRectangle(nil, Translate(5, 5), Pt(10, 10), Pt(0, 0), White, NoScissor())

	var sink countingSink
	Emit(r, &sink)
	want := []Point{Pt(5, 5), Pt(5, 15), Pt(15, 15), Pt(15, 5)}
	if !slices.Equal(sink.positions(), want) {
		t.Errorf("emitted %v, want %v", sink.positions(), want)
	}
	if got, _ := r.Bounds(); got != Rect(5, 5, 10, 10) {
		t.Errorf("Bounds() = %v, want %v", got, Rect(5, 5, 10, 10))
	}
}

func TestTexturedQuadEmission(t *testing.T) {
	q := NewTexturedQuad(nil, Identity(), Pt(1, 2), Pt(11, 22), Pt(0, 0), Pt(1, 1), White, NoScissor())

	var sink countingSink
	Emit(q, &sink)
	want := []vertex{
		{Pos: Pt(1, 2), UV: Pt(0, 0), C: White, Tex: true},
		{Pos: Pt(1, 22), UV: Pt(0, 1), C: White, Tex: true},
		{Pos: Pt(11, 22), UV: Pt(1, 1), C: White, Tex: true},
		{Pos: Pt(11, 2), UV: Pt(1, 0), C: White, Tex: true},
	}
	if !slices.Equal(sink.vertices, want) {
		t.Errorf("emitted %+v, want %+v", sink.vertices, want)
	}
}

func TestEmitSkipsClippedStates(t *testing.T) {
	clip := ClipTo(Rect(20, 20, 5, 5))
	r := NewRectangle(nil, Identity(), Pt(0, 0), Pt(10, 10), White, clip)

	if _, ok := r.Bounds(); ok {
		t.Fatal("fully clipped rectangle reported bounds")
	}
	var sink countingSink
	if Emit(r, &sink) {
		t.Error("Emit() of a fully clipped state = true, want false")
	}
	if len(sink.vertices) != 0 {
		t.Errorf("emitted %d vertices, want 0", len(sink.vertices))
	}
	if !Emit(r, &sink, WithUnbounded(true)) {
		t.Error("Emit(WithUnbounded) = false, want true")
	}
	if len(sink.vertices) != 4 {
		t.Errorf("emitted %d vertices with WithUnbounded, want 4", len(sink.vertices))
	}
}

func TestEmitDelegatesIconAndText(t *testing.T) {
	ic := NewIcon("apple", Identity(), nil, 0, 0, NoScissor())
	shaper := &countingShaper{rect: Rect(0, 0, 20, 9)}
	txt := NewText(shaper, TextRun{Text: "hi"}, Identity(), 0, 0, TextStyle{Color: White}, NoScissor())

	var plain countingSink
	if Emit(ic, &plain) || Emit(txt, &plain) {
		t.Error("Emit() to a sink without drawers should report false")
	}

	var sink drawingSink
	if !Emit(ic, &sink) || !Emit(txt, &sink) {
		t.Fatal("Emit() to a drawing sink should report true")
	}
	if sink.icons != 1 || sink.texts != 1 {
		t.Errorf("icons, texts = %d, %d, want 1, 1", sink.icons, sink.texts)
	}
	if len(sink.vertices) != 0 {
		t.Errorf("delegated states emitted %d raw vertices", len(sink.vertices))
	}
	if shaper.calls.Load() != 1 {
		t.Errorf("shaper called %d times, want 1", shaper.calls.Load())
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindTriangle, "Triangle"},
		{KindQuad, "Quad"},
		{KindRectangle, "Rectangle"},
		{KindTexturedQuad, "TexturedQuad"},
		{KindIcon, "Icon"},
		{KindText, "Text"},
		{Kind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestStateKinds(t *testing.T) {
	states := []State{
		NewTriangle(nil, Identity(), Pt(0, 0), Pt(1, 1), Pt(2, 0), White, NoScissor()),
		NewQuad(nil, Identity(), Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1), White, NoScissor()),
		NewRectangle(nil, Identity(), Pt(0, 0), Pt(1, 1), White, NoScissor()),
		NewTexturedQuad(nil, Identity(), Pt(0, 0), Pt(1, 1), Pt(0, 0), Pt(1, 1), White, NoScissor()),
		NewIcon("x", Identity(), nil, 0, 0, NoScissor()),
		NewText(nil, TextRun{}, Identity(), 0, 0, TextStyle{}, NoScissor()),
	}
	want := []Kind{KindTriangle, KindQuad, KindRectangle, KindTexturedQuad, KindIcon, KindText}
	for i, s := range states {
		if s.Kind() != want[i] {
			t.Errorf("states[%d].Kind() = %v, want %v", i, s.Kind(), want[i])
		}
	}
}

func TestHitTest(t *testing.T) {
	r := NewRectangle(nil, Identity(), Pt(0, 0), Pt(10, 10), White, ClipTo(Rect(5, 0, 10, 10)))
	if HitTest(r, 2, 2) {
		t.Error("HitTest() inside the clipped-away part = true")
	}
	if !HitTest(r, 7, 7) {
		t.Error("HitTest() inside visible bounds = false")
	}
	hidden := NewRectangle(nil, Identity(), Pt(0, 0), Pt(10, 10), White, ClipTo(EmptyRect))
	if HitTest(hidden, 5, 5) {
		t.Error("HitTest() on a state without bounds = true")
	}
}

func TestTriangleModeString(t *testing.T) {
	if TriangleNative.String() != "Native" || TriangleDegenerateQuad.String() != "DegenerateQuad" {
		t.Error("unexpected TriangleMode names")
	}
}

func BenchmarkEmitQuad(b *testing.B) {
	q := NewQuad(nil, Translate(3, 3), Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), White, NoScissor())
	sink := &countingSink{vertices: make([]vertex, 0, 4)}
	b.ReportAllocs()
	for b.Loop() {
		sink.vertices = sink.vertices[:0]
		sink.primitives = sink.primitives[:0]
		Emit(q, sink)
	}
}
