package text

import (
	"math"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"

	"github.com/infinite-client/guistate"
)

// Glyph is a positioned glyph relative to the layout origin.
type Glyph struct {
	ID      font.GID
	Cluster int
	X, Y    float64
	Advance float64
}

// Layout is a shaped text run ready to draw. It implements
// guistate.TextLayout. A Layout shares its glyph slice with the shaper's
// cache and must be treated as read-only.
type Layout struct {
	Run        guistate.TextRun
	X, Y       float64
	Color      guistate.Color
	Background guistate.Color
	Shadow     bool

	// PixelSize is the em size in pixels the run was shaped at.
	PixelSize float64
	Direction di.Direction
	Glyphs    []Glyph
	Advance   float64
	Metrics   Metrics
	Height    float64

	rect    guistate.ScreenRect
	visible bool
}

// ScreenRect returns the pixel box the layout covers before any pose is
// applied. A visible background plate grows it by one pixel on every side
// and a drop shadow by one pixel to the right and bottom.
func (l *Layout) ScreenRect() (guistate.ScreenRect, bool) {
	return l.rect, l.visible
}

// Baseline returns the y coordinate of the baseline.
func (l *Layout) Baseline() float64 { return l.Y + l.Metrics.Ascent }

func (l *Layout) computeRect() {
	if l.Advance <= 0 || l.Height <= 0 {
		l.rect, l.visible = guistate.ScreenRect{}, false
		return
	}
	r := guistate.Rect(
		int(math.Floor(l.X)),
		int(math.Floor(l.Y)),
		int(math.Ceil(l.Advance)),
		int(math.Ceil(l.Height)),
	)
	if l.Background.A() != 0 {
		r.X--
		r.Y--
		r.Width += 2
		r.Height += 2
	}
	if l.Shadow {
		r.Width++
		r.Height++
	}
	l.rect, l.visible = r, true
}
