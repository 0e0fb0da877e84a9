package guistate

import "math"

// extentRect returns the pre-transform pixel box around pts.
//
// The origin is floor(min) and the size is ceil(max - min). The size is
// derived from the float extent, not from ceil(max) - floor(min), so a
// shape spanning 0.4..3.2 is 3 pixels wide, not 4.
func extentRect(pts ...Point) ScreenRect {
	if len(pts) == 0 {
		return ScreenRect{}
	}
	startX, endX := pts[0].X, pts[0].X
	startY, endY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		startX = min(startX, p.X)
		endX = max(endX, p.X)
		startY = min(startY, p.Y)
		endY = max(endY, p.Y)
	}
	return ScreenRect{
		X:      int(math.Floor(startX)),
		Y:      int(math.Floor(startY)),
		Width:  int(math.Ceil(endX - startX)),
		Height: int(math.Ceil(endY - startY)),
	}
}

// finishBounds transforms raw through pose and clips it.
func finishBounds(raw ScreenRect, pose Affine, clip Scissor) (ScreenRect, bool) {
	return clip.Apply(raw.TransformVertices(pose))
}

// TriangleBounds returns the clipped screen-space bounds of a triangle.
// ok is false when the clip removes the triangle entirely.
func TriangleBounds(p1, p2, p3 Point, pose Affine, clip Scissor) (ScreenRect, bool) {
	return finishBounds(extentRect(p1, p2, p3), pose, clip)
}

// QuadBounds returns the clipped screen-space bounds of a free-form
// quadrilateral. Vertex order does not matter.
func QuadBounds(p1, p2, p3, p4 Point, pose Affine, clip Scissor) (ScreenRect, bool) {
	return finishBounds(extentRect(p1, p2, p3, p4), pose, clip)
}

// RectangleBounds returns the clipped screen-space bounds of the
// axis-aligned rectangle spanned by two opposite corners in any order.
func RectangleBounds(c1, c2 Point, pose Affine, clip Scissor) (ScreenRect, bool) {
	return finishBounds(extentRect(c1, c2), pose, clip)
}

// TexturedQuadBounds returns the clipped screen-space bounds of a textured
// quad spanned by two opposite corners. It rounds the same way as
// RectangleBounds.
func TexturedQuadBounds(c1, c2 Point, pose Affine, clip Scissor) (ScreenRect, bool) {
	return finishBounds(extentRect(c1, c2), pose, clip)
}

// TextBounds transforms and clips the pixel box a shaper reported for a
// laid-out text run.
func TextBounds(raw ScreenRect, pose Affine, clip Scissor) (ScreenRect, bool) {
	return finishBounds(raw, pose, clip)
}
