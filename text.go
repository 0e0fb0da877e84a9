package guistate

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// TextRun is the glyph run handed to the shaper.
type TextRun struct {
	// Text is the run content.
	Text string

	// Size is the font size in pixels. Zero lets the shaper pick its
	// default.
	Size float64
}

// TextStyle groups the styling inputs of a text state.
type TextStyle struct {
	Color      Color
	Background Color
	Shadow     bool
}

// TextLayout is a shaped run returned by a TextShaper.
type TextLayout interface {
	// ScreenRect returns the pre-transform pixel box the layout covers.
	// ok is false when the layout draws nothing.
	ScreenRect() (ScreenRect, bool)
}

// TextShaper lays out text runs. It is invoked at most once per Text state.
type TextShaper interface {
	Prepare(run TextRun, x, y float64, c Color, shadow bool, background Color) TextLayout
}

// preparedText is the memoized result of Text.Prepare.
type preparedText struct {
	layout    TextLayout
	bounds    ScreenRect
	hasBounds bool
}

// Text is a text run drawn at a sub-pixel anchor.
//
// The layout and bounds are computed together on first use and kept for the
// lifetime of the state. The memoization is safe for concurrent callers, and
// the shaper still runs exactly once.
type Text struct {
	base
	shaper TextShaper
	run    TextRun
	x, y   float64
	style  TextStyle

	once     sync.Once
	done     atomic.Bool
	prepared preparedText
}

// NewText builds a text render state. Nothing is shaped until Prepare or
// Bounds is called.
func NewText(shaper TextShaper, run TextRun, pose Affine, x, y float64, style TextStyle, clip Scissor) *Text {
	return &Text{
		base:   base{pose: pose, color: style.Color, scissor: clip},
		shaper: shaper,
		run:    run,
		x:      x,
		y:      y,
		style:  style,
	}
}

// Kind returns KindText.
func (*Text) Kind() Kind { return KindText }

// Run returns the glyph run.
func (t *Text) Run() TextRun { return t.run }

// Anchor returns the sub-pixel anchor position.
func (t *Text) Anchor() Point { return Pt(t.x, t.y) }

// Style returns the styling inputs.
func (t *Text) Style() TextStyle { return t.style }

// Prepare shapes the run on first call and returns the cached layout
// afterwards.
func (t *Text) Prepare() TextLayout {
	t.once.Do(t.prepare)
	return t.prepared.layout
}

// Prepared reports whether the layout has been computed. It never triggers
// shaping.
func (t *Text) Prepared() bool {
	return t.done.Load()
}

// prepare fills the cell. If the shaper panics the once is still spent, so
// the cell is marked filled with an empty result either way.
func (t *Text) prepare() {
	defer t.done.Store(true)

	var p preparedText
	if t.shaper != nil {
		p.layout = t.shaper.Prepare(t.run, t.x, t.y, t.style.Color, t.style.Shadow, t.style.Background)
	}
	if p.layout != nil {
		if raw, ok := p.layout.ScreenRect(); ok {
			p.bounds, p.hasBounds = TextBounds(raw, t.pose, t.scissor)
		}
	}
	t.prepared = p
	Logger().Debug("guistate: text prepared",
		slog.Int("runes", len([]rune(t.run.Text))),
		slog.Bool("visible", p.hasBounds))
}

// Bounds prepares the layout if needed and returns the cached bounds.
func (t *Text) Bounds() (ScreenRect, bool) {
	t.Prepare()
	return t.prepared.bounds, t.prepared.hasBounds
}
