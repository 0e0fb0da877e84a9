package guistate

// Kind identifies the primitive a State describes.
type Kind uint8

const (
	KindTriangle Kind = iota
	KindQuad
	KindRectangle
	KindTexturedQuad
	KindIcon
	KindText
)

var kindNames = [...]string{
	KindTriangle:     "Triangle",
	KindQuad:         "Quad",
	KindRectangle:    "Rectangle",
	KindTexturedQuad: "TexturedQuad",
	KindIcon:         "Icon",
	KindText:         "Text",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// State is a per-draw-call render-state descriptor.
//
// The set of implementations is closed: *Triangle, *Quad, *Rectangle,
// *TexturedQuad, *Icon and *Text. Code that needs per-kind behaviour
// switches on the concrete type (see Emit).
//
// A State is built once per frame and is immutable after construction;
// the only exception is the lazily prepared layout of a *Text.
type State interface {
	// Kind returns the primitive tag.
	Kind() Kind

	// Pose returns the transform applied to the raw geometry.
	Pose() Affine

	// Scissor returns the clip region the state was built with.
	Scissor() Scissor

	// Bounds returns the final clipped screen-space bounds. ok is false
	// when nothing is visible, in which case the state must be neither
	// drawn nor hit-tested.
	Bounds() (ScreenRect, bool)

	sealed()
}

// base holds the inputs shared by every state.
type base struct {
	pose    Affine
	color   Color
	scissor Scissor
}

// Pose returns the transform applied to the raw geometry.
func (b *base) Pose() Affine { return b.pose }

// Color returns the packed vertex colour.
func (b *base) Color() Color { return b.color }

// Scissor returns the clip region.
func (b *base) Scissor() Scissor { return b.scissor }

func (*base) sealed() {}

// shape adds the pipeline reference and eagerly computed bounds used by the
// vertex-emitting primitives.
type shape struct {
	base
	pipeline  any
	bounds    ScreenRect
	hasBounds bool
}

// Pipeline returns the opaque pipeline/texture reference passed at
// construction.
func (s *shape) Pipeline() any { return s.pipeline }

// Bounds returns the bounds computed at construction.
func (s *shape) Bounds() (ScreenRect, bool) { return s.bounds, s.hasBounds }

// HitTest reports whether the pixel at (x, y) lies inside the bounds of s.
// States without bounds are never hit.
func HitTest(s State, x, y int) bool {
	r, ok := s.Bounds()
	return ok && r.Contains(x, y)
}
