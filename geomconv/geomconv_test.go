package geomconv

import (
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/infinite-client/guistate"
)

func TestMatrixConversion(t *testing.T) {
	m := matrix.Matrix{2, 0, 0, 3, 5, 7}
	a := FromMatrix(m)

	if got, want := a.TransformPoint(guistate.Pt(1, 1)), guistate.Pt(7, 10); got != want {
		t.Errorf("FromMatrix(%v).TransformPoint(1,1) = %v, want %v", m, got, want)
	}
	if back := ToMatrix(a); back != m {
		t.Errorf("ToMatrix(FromMatrix(m)) = %v, want %v", back, m)
	}
	if !FromMatrix(matrix.Identity).IsIdentity() {
		t.Error("FromMatrix(Identity) is not the identity")
	}
}

func TestMatrixShearAxes(t *testing.T) {
	// The off-diagonal terms must land on the right axes.
	m := matrix.Matrix{1, 0.5, 2, 1, 0, 0}
	got := FromMatrix(m).TransformPoint(guistate.Pt(1, 1))
	want := guistate.Pt(1*1+2*1, 0.5*1+1*1)
	if got != want {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestRectConversion(t *testing.T) {
	tests := []struct {
		name string
		in   rect.Rect
		want guistate.ScreenRect
	}{
		{"integral", rect.Rect{LLx: 1, LLy: 2, URx: 11, URy: 7}, guistate.Rect(1, 2, 10, 5)},
		{"fractional rounds outward", rect.Rect{LLx: 0.5, LLy: 0.25, URx: 3.2, URy: 3.8}, guistate.Rect(0, 0, 4, 4)},
		{"swapped corners", rect.Rect{LLx: 11, LLy: 7, URx: 1, URy: 2}, guistate.Rect(1, 2, 10, 5)},
		{"negative", rect.Rect{LLx: -2.5, LLy: -1, URx: 0, URy: 1}, guistate.Rect(-3, -1, 3, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromRect(tt.in); got != tt.want {
				t.Errorf("FromRect(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	r := guistate.Rect(3, 4, 20, 10)
	if got := FromRect(ToRect(r)); got != r {
		t.Errorf("FromRect(ToRect(%v)) = %v", r, got)
	}
}

func TestVecConversion(t *testing.T) {
	v := vec.Vec2{X: 1.5, Y: -2}
	if got := ToVec(FromVec(v)); got != v {
		t.Errorf("ToVec(FromVec(%v)) = %v", v, got)
	}
}

type segment struct {
	cmd path.Command
	pts []vec.Vec2
}

// collect drains p, copying points since iterators may reuse their buffers.
func collect(p path.Path) []segment {
	var out []segment
	for cmd, pts := range p {
		out = append(out, segment{cmd: cmd, pts: append([]vec.Vec2(nil), pts...)})
	}
	return out
}

func TestPolygon(t *testing.T) {
	segs := collect(Polygon([]guistate.Point{guistate.Pt(0, 0), guistate.Pt(10, 0), guistate.Pt(0, 10)}))

	want := []segment{
		{path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}},
		{path.CmdLineTo, []vec.Vec2{{X: 10, Y: 0}}},
		{path.CmdLineTo, []vec.Vec2{{X: 0, Y: 10}}},
		{path.CmdClose, nil},
	}
	if len(segs) != len(want) {
		t.Fatalf("Polygon() = %v, want %v", segs, want)
	}
	for i := range want {
		if segs[i].cmd != want[i].cmd || !slices.Equal(segs[i].pts, want[i].pts) {
			t.Errorf("segment %d = %v, want %v", i, segs[i], want[i])
		}
	}

	if empty := collect(Polygon(nil)); len(empty) != 0 {
		t.Errorf("Polygon(nil) = %v, want no segments", empty)
	}
	if single := collect(Polygon([]guistate.Point{guistate.Pt(1, 1)})); len(single) != 0 {
		t.Errorf("Polygon(one point) = %v, want no segments", single)
	}
}

func TestPolygonCopiesInput(t *testing.T) {
	pts := []guistate.Point{guistate.Pt(0, 0), guistate.Pt(4, 0), guistate.Pt(4, 4)}
	p := Polygon(pts)
	pts[1] = guistate.Pt(99, 99)

	segs := collect(p)
	if got := segs[1].pts[0]; got != (vec.Vec2{X: 4, Y: 0}) {
		t.Errorf("second vertex = %v, want (4,0)", got)
	}
}

func TestPolygonStopsEarly(t *testing.T) {
	p := Polygon([]guistate.Point{guistate.Pt(0, 0), guistate.Pt(1, 0), guistate.Pt(1, 1), guistate.Pt(0, 1)})
	n := 0
	for range p {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d segments, want 2", n)
	}
}

func TestPolygonBBox(t *testing.T) {
	p := Polygon([]guistate.Point{guistate.Pt(0.5, 1), guistate.Pt(9.2, 1), guistate.Pt(9.2, 7.5)})
	if got, want := FromRect(p.BBox()), guistate.Rect(0, 1, 10, 7); got != want {
		t.Errorf("FromRect(BBox()) = %v, want %v", got, want)
	}
}

func TestOutline(t *testing.T) {
	q := guistate.NewQuad(nil, guistate.Translate(5, 5),
		guistate.Pt(0, 0), guistate.Pt(10, 0), guistate.Pt(10, 10), guistate.Pt(0, 10),
		guistate.White, guistate.NoScissor())

	p, ok := Outline(q)
	if !ok {
		t.Fatal("Outline(quad) = false")
	}
	segs := collect(p)
	want := []vec.Vec2{{X: 5, Y: 15}, {X: 15, Y: 15}, {X: 15, Y: 5}, {X: 5, Y: 5}}
	if len(segs) != len(want)+1 {
		t.Fatalf("Outline() = %v, want %d segments", segs, len(want)+1)
	}
	for i := range want {
		if got := segs[i].pts[0]; got != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, got, want[i])
		}
	}
	if segs[len(want)].cmd != path.CmdClose {
		t.Errorf("last command = %v, want CmdClose", segs[len(want)].cmd)
	}

	tq := guistate.NewTexturedQuad(nil, guistate.Identity(), guistate.Pt(0, 0), guistate.Pt(2, 2), guistate.Pt(0, 0), guistate.Pt(1, 1), guistate.White, guistate.NoScissor())
	if p, ok := Outline(tq); !ok || len(collect(p)) != 5 {
		t.Errorf("Outline(textured quad) ok = %v, want a closed four-vertex path", ok)
	}

	icon := guistate.NewIcon("x", guistate.Identity(), nil, 0, 0, guistate.NoScissor())
	if _, ok := Outline(icon); ok {
		t.Error("Outline(icon) = true")
	}
}
