package guistate

import "testing"

func TestRectangleBoundsRounding(t *testing.T) {
	// Width is ceil(3.2-0.4) = ceil(2.8) = 3, not ceil(3.2)-floor(0.4) = 4.
	got, ok := RectangleBounds(Pt(0.4, 0.6), Pt(3.2, 3.8), Identity(), NoScissor())
	if !ok {
		t.Fatal("RectangleBounds() reported no bounds")
	}
	if want := Rect(0, 0, 3, 4); got != want {
		t.Errorf("RectangleBounds() = %v, want %v", got, want)
	}
}

func TestRectangleBoundsCornerOrder(t *testing.T) {
	a, _ := RectangleBounds(Pt(2, 3), Pt(12, 8), Identity(), NoScissor())
	b, _ := RectangleBounds(Pt(12, 8), Pt(2, 3), Identity(), NoScissor())
	c, _ := RectangleBounds(Pt(2, 8), Pt(12, 3), Identity(), NoScissor())
	want := Rect(2, 3, 10, 5)
	for _, got := range []ScreenRect{a, b, c} {
		if got != want {
			t.Errorf("RectangleBounds() = %v, want %v", got, want)
		}
	}
}

func TestTriangleBounds(t *testing.T) {
	got, ok := TriangleBounds(Pt(1.5, 2.5), Pt(8.2, 3), Pt(4, 9.9), Identity(), NoScissor())
	if !ok {
		t.Fatal("TriangleBounds() reported no bounds")
	}
	if want := Rect(1, 2, 7, 8); got != want {
		t.Errorf("TriangleBounds() = %v, want %v", got, want)
	}
}

func TestQuadBounds(t *testing.T) {
	tests := []struct {
		name   string
		pose   Affine
		clip   Scissor
		want   ScreenRect
		wantOK bool
	}{
		{"identity", Identity(), NoScissor(), Rect(0, 0, 10, 10), true},
		{"translated", Translate(100, 50), NoScissor(), Rect(100, 50, 10, 10), true},
		{"scaled", Scale(2, 2), NoScissor(), Rect(0, 0, 20, 20), true},
		{"partially clipped", Identity(), ClipTo(Rect(5, 5, 10, 10)), Rect(5, 5, 5, 5), true},
		{"disjoint clip", Identity(), ClipTo(Rect(20, 20, 5, 5)), ScreenRect{}, false},
		{"empty clip", Identity(), ClipTo(EmptyRect), ScreenRect{}, false},
		{"clip covers", Identity(), ClipTo(Rect(-100, -100, 1000, 1000)), Rect(0, 0, 10, 10), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := QuadBounds(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), tt.pose, tt.clip)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("QuadBounds() = %v, %v, want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTexturedQuadBounds(t *testing.T) {
	got, ok := TexturedQuadBounds(Pt(2, 3), Pt(12, 8), Translate(1, 1), NoScissor())
	if !ok {
		t.Fatal("TexturedQuadBounds() reported no bounds")
	}
	if want := Rect(3, 4, 10, 5); got != want {
		t.Errorf("TexturedQuadBounds() = %v, want %v", got, want)
	}

	// Fractional corners round outward like every other shape.
	got, _ = TexturedQuadBounds(Pt(-0.5, 0.25), Pt(4.25, 2.5), Identity(), NoScissor())
	if want := Rect(-1, 0, 5, 3); got != want {
		t.Errorf("TexturedQuadBounds() fractional = %v, want %v", got, want)
	}
}

func TestTextBounds(t *testing.T) {
	got, ok := TextBounds(Rect(1, 1, 5, 4), Scale(2, 2), NoScissor())
	if !ok || got != Rect(2, 2, 10, 8) {
		t.Errorf("TextBounds() = %v, %v, want %v, true", got, ok, Rect(2, 2, 10, 8))
	}
	if _, ok := TextBounds(Rect(0, 0, 10, 10), Identity(), ClipTo(Rect(20, 20, 5, 5))); ok {
		t.Error("TextBounds() with disjoint clip reported bounds")
	}
}

func TestBoundsDeterministic(t *testing.T) {
	pose := Translate(3.3, 7.7).Multiply(Rotate(0.3)).Multiply(Scale(1.25, 0.75))
	clip := ClipTo(Rect(0, 0, 64, 64))
	for range 10 {
		a, okA := QuadBounds(Pt(1.1, 2.2), Pt(30.3, 4.4), Pt(28.8, 20.1), Pt(0.5, 18.9), pose, clip)
		b, okB := QuadBounds(Pt(1.1, 2.2), Pt(30.3, 4.4), Pt(28.8, 20.1), Pt(0.5, 18.9), pose, clip)
		if a != b || okA != okB {
			t.Fatalf("QuadBounds() not deterministic: %v, %v vs %v, %v", a, okA, b, okB)
		}
	}
}

func TestZeroAreaGeometryHasBounds(t *testing.T) {
	got, ok := TriangleBounds(Pt(5, 5), Pt(5, 5), Pt(5, 5), Identity(), NoScissor())
	if !ok {
		t.Fatal("degenerate triangle should still have bounds")
	}
	if want := Rect(5, 5, 0, 0); got != want {
		t.Errorf("TriangleBounds() = %v, want %v", got, want)
	}
}

func BenchmarkQuadBounds(b *testing.B) {
	pose := Translate(10, 10).Multiply(Rotate(0.25))
	clip := ClipTo(Rect(0, 0, 1920, 1080))
	b.ReportAllocs()
	for b.Loop() {
		_, _ = QuadBounds(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), pose, clip)
	}
}
