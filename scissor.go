package guistate

// Scissor is an optional clip region handed over by the host for each draw
// call. The zero Scissor is unclipped. A Scissor set to an empty rectangle
// is not the same thing: it clips everything away.
type Scissor struct {
	rect ScreenRect
	set  bool
}

// NoScissor returns the unclipped Scissor.
func NoScissor() Scissor { return Scissor{} }

// ClipTo returns a Scissor that restricts drawing to r.
func ClipTo(r ScreenRect) Scissor {
	return Scissor{rect: r, set: true}
}

// Rect returns the clip rectangle and whether one is set.
func (s Scissor) Rect() (ScreenRect, bool) {
	return s.rect, s.set
}

// IsSet reports whether the Scissor restricts drawing.
func (s Scissor) IsSet() bool { return s.set }

// Apply intersects r with the clip rectangle. Without a clip rectangle, r is
// returned unchanged with ok set to true.
func (s Scissor) Apply(r ScreenRect) (ScreenRect, bool) {
	if !s.set {
		return r, true
	}
	return Intersect(s.rect, r)
}

// String returns "none" for the unclipped Scissor.
func (s Scissor) String() string {
	if !s.set {
		return "none"
	}
	return s.rect.String()
}
