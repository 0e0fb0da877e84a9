// Package guistate computes render states for a 2D HUD pipeline.
//
// # Overview
//
// A frame builder creates one render state per visual element per frame:
// a Triangle, Quad, Rectangle, TexturedQuad, Icon or Text. Each state owns
// its raw geometry, a pose (an Affine transform), a packed Color and an
// optional Scissor, and computes its final screen-space bounds up front.
// The pipeline later asks the state to emit its vertices into a sink.
//
//	pose := guistate.Translate(8, 8)
//	clip := guistate.ClipTo(guistate.Rect(0, 0, 320, 240))
//	q := guistate.NewQuad(pipeline, pose,
//	    guistate.Pt(0, 0), guistate.Pt(10, 0), guistate.Pt(10, 10), guistate.Pt(0, 10),
//	    guistate.White, clip)
//	if r, ok := q.Bounds(); ok {
//	    damage = guistate.Union(damage, r)
//	    guistate.Emit(q, sink)
//	}
//
// # Bounds
//
// Bounds are computed from the raw vertices as floor(min) and
// ceil(max - min), transformed corner by corner through the pose, re-boxed
// on the integer grid and finally intersected with the scissor. A state
// whose bounds are clipped away reports ok == false and is neither drawn
// nor hit-tested. The unclipped Scissor and a Scissor set to an empty
// rectangle are different values and behave differently.
//
// # Text
//
// Text states shape lazily: the TextShaper runs on the first call to
// Prepare or Bounds and its result is kept for the lifetime of the state.
// The text sub-package provides a shaper backed by go-text/typesetting.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package guistate
