// Package recording captures a frame of guistate render states as typed
// commands.
//
// A Recorder is a guistate.VertexSink that keeps everything written to it:
// the vertices of solid and textured primitives, delegated icons and
// prepared text. FinishRecording returns an immutable Recording that can be
// inspected, replayed into another sink with Playback, or rasterized with
// package raster for a preview.
//
// The Recording also carries the frame damage: the union of the clipped
// bounds of every recorded state. States skipped because they had no
// bounds do not contribute.
package recording
