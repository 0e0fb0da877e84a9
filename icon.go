package guistate

import "math"

// DefaultIconSize is the side of an inventory slot in pixels.
const DefaultIconSize = 16.0

// IconModel is the item model collaborator behind an icon.
type IconModel interface {
	// ModelBox returns the model-space bounding box of the model.
	ModelBox() Box3
}

// IconOption configures an Icon during creation.
type IconOption func(*iconOptions)

type iconOptions struct {
	size  float64
	alpha float64
}

func defaultIconOptions() iconOptions {
	return iconOptions{size: DefaultIconSize, alpha: 1}
}

// WithSize sets the rendered slot size. The default is DefaultIconSize.
func WithSize(size float64) IconOption {
	return func(o *iconOptions) {
		o.size = size
	}
}

// WithAlpha sets the icon opacity. Values outside [0, 1] are clamped.
func WithAlpha(alpha float64) IconOption {
	return func(o *iconOptions) {
		o.alpha = alpha
	}
}

// Icon is an item sprite drawn by the host's item renderer at a
// sub-pixel anchor.
//
// Drawing is delegated (see IconDrawer); the icon only contributes its
// bounds and clip.
type Icon struct {
	base
	name  string
	model IconModel
	x, y  float64
	size  float64
	alpha float64

	oversizedArea ScreenRect
	isOversized   bool
	oversized     ScreenRect
	hasOversized  bool
	bounds        ScreenRect
	hasBounds     bool
}

// NewIcon builds an icon render state anchored at (x, y).
func NewIcon(name string, pose Affine, model IconModel, x, y float64, clip Scissor, opts ...IconOption) *Icon {
	o := defaultIconOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ic := &Icon{
		base:  base{pose: pose, color: White.WithAlpha(o.alpha), scissor: clip},
		name:  name,
		model: model,
		x:     x,
		y:     y,
		size:  o.size,
		alpha: clamp01(o.alpha),
	}

	var box Box3
	if model != nil {
		box = model.ModelBox()
	} else {
		box = UnitBox()
	}
	ic.oversizedArea, ic.isOversized = OversizedArea(box, x, y, ic.size)
	ic.bounds, ic.hasBounds, ic.oversized, ic.hasOversized = IconBounds(box, x, y, ic.size, pose, clip)
	return ic
}

// Kind returns KindIcon.
func (*Icon) Kind() Kind { return KindIcon }

// Name returns the debug name given at construction.
func (ic *Icon) Name() string { return ic.name }

// Model returns the item model collaborator.
func (ic *Icon) Model() IconModel { return ic.model }

// Anchor returns the sub-pixel anchor position.
func (ic *Icon) Anchor() Point { return Pt(ic.x, ic.y) }

// RoundedX returns the anchor X rounded to the nearest pixel.
func (ic *Icon) RoundedX() int { return int(math.Round(ic.x)) }

// RoundedY returns the anchor Y rounded to the nearest pixel.
func (ic *Icon) RoundedY() int { return int(math.Round(ic.y)) }

// Size returns the slot size.
func (ic *Icon) Size() float64 { return ic.size }

// Alpha returns the opacity, already clamped to [0, 1].
func (ic *Icon) Alpha() float64 { return ic.alpha }

// Oversized reports whether the model is larger than its slot.
func (ic *Icon) Oversized() bool { return ic.isOversized }

// OversizedArea returns the pre-transform area of an oversized model.
func (ic *Icon) OversizedArea() (ScreenRect, bool) {
	return ic.oversizedArea, ic.isOversized
}

// OversizedBounds returns the clipped screen-space bounds of an oversized
// model. Renderers prefer it over Bounds when it is present.
func (ic *Icon) OversizedBounds() (ScreenRect, bool) {
	return ic.oversized, ic.hasOversized
}

// Bounds returns the clipped screen-space bounds of the icon.
func (ic *Icon) Bounds() (ScreenRect, bool) { return ic.bounds, ic.hasBounds }
