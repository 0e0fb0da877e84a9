package guistate

import "math"

// Box3 is a model-space bounding box as reported by the item model.
// Only the X and Y extents take part in screen bounds.
type Box3 struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// UnitBox returns the 1x1x1 box from the origin, the footprint of a model
// that exactly fills its slot.
func UnitBox() Box3 {
	return Box3{MaxX: 1, MaxY: 1, MaxZ: 1}
}

// LengthX returns the X extent of b.
func (b Box3) LengthX() float64 { return b.MaxX - b.MinX }

// LengthY returns the Y extent of b.
func (b Box3) LengthY() float64 { return b.MaxY - b.MinY }

// OversizedArea returns the pre-transform pixel area of an icon whose model
// is larger than its slot. x and y are the icon anchor and size the slot
// side. ok is false when the scaled model fits inside size x size.
func OversizedArea(box Box3, x, y, size float64) (ScreenRect, bool) {
	sizeX := int(math.Ceil(box.LengthX() * size))
	sizeY := int(math.Ceil(box.LengthY() * size))

	slot := int(size)
	if sizeX <= slot && sizeY <= slot {
		return ScreenRect{}, false
	}

	ox := math.Floor(box.MinX * size)
	oy := math.Floor(box.MaxY * size)
	return ScreenRect{
		X:      int(math.Floor(x + ox + size/2)),
		Y:      int(math.Floor(y - oy + size/2)),
		Width:  sizeX,
		Height: sizeY,
	}, true
}

// nominalArea is the slot-sized box at the icon anchor.
func nominalArea(x, y, size float64) ScreenRect {
	return ScreenRect{
		X:      int(math.Floor(x)),
		Y:      int(math.Floor(y)),
		Width:  int(math.Ceil(size)),
		Height: int(math.Ceil(size)),
	}
}

// IconBounds returns the clipped screen-space bounds of an icon and, when
// the model is oversized, its oversized bounds.
//
// bounds covers the oversized area when there is one and the nominal
// size x size slot otherwise. oversizedOK is false when the model fits its
// slot or when the clip removes the oversized area.
func IconBounds(box Box3, x, y, size float64, pose Affine, clip Scissor) (bounds ScreenRect, ok bool, oversized ScreenRect, oversizedOK bool) {
	area, isOversized := OversizedArea(box, x, y, size)
	if !isOversized {
		bounds, ok = finishBounds(nominalArea(x, y, size), pose, clip)
		return bounds, ok, ScreenRect{}, false
	}
	bounds, ok = finishBounds(area, pose, clip)
	return bounds, ok, bounds, ok
}
