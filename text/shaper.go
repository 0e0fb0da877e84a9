package text

import (
	"log/slog"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/infinite-client/guistate"
	"github.com/infinite-client/guistate/internal/cache"
)

// runKey identifies a shaped run independent of where it is drawn.
type runKey struct {
	text string
	ppem float64
}

type shapedRun struct {
	dir     di.Direction
	glyphs  []Glyph
	advance float64
	metrics Metrics
}

// Shaper shapes text runs with HarfBuzz via go-text/typesetting and
// implements guistate.TextShaper.
//
// Shaped runs are cached by text and pixel size, so a HUD label redrawn
// every frame is shaped once. Shaper is safe for concurrent use.
type Shaper struct {
	font *Font
	opts options
	lang language.Language

	// HarfbuzzShaper keeps internal buffers and is not safe for
	// concurrent use.
	pool sync.Pool
	runs *cache.Cache[runKey, shapedRun]
}

var _ guistate.TextShaper = (*Shaper)(nil)

// NewShaper creates a Shaper for f.
func NewShaper(f *Font, opts ...Option) (*Shaper, error) {
	if f == nil {
		return nil, ErrNilFont
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Shaper{
		font: f,
		opts: o,
		lang: language.NewLanguage(o.language),
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		runs: cache.New[runKey, shapedRun](o.cacheSize),
	}, nil
}

// Prepare shapes run and places it at (x, y), the top-left corner of the
// line box.
func (s *Shaper) Prepare(run guistate.TextRun, x, y float64, c guistate.Color, shadow bool, background guistate.Color) guistate.TextLayout {
	return s.Layout(run, x, y, c, shadow, background)
}

// Layout is Prepare with a concrete return type.
func (s *Shaper) Layout(run guistate.TextRun, x, y float64, c guistate.Color, shadow bool, background guistate.Color) *Layout {
	size := run.Size
	if size <= 0 {
		size = DefaultSize
	}
	key := runKey{text: run.Text, ppem: size * s.opts.dpi / 72}

	shaped, hit := s.runs.Get(key)
	if !hit {
		shaped = s.shape(key)
		s.runs.Set(key, shaped)
	}
	guistate.Logger().Debug("text: layout",
		slog.Int("glyphs", len(shaped.glyphs)),
		slog.Float64("ppem", key.ppem),
		slog.Bool("cached", hit))

	height := s.opts.lineHeight
	if height <= 0 {
		height = shaped.metrics.LineHeight()
	}
	l := &Layout{
		Run:        run,
		X:          x,
		Y:          y,
		Color:      c,
		Background: background,
		Shadow:     shadow,
		PixelSize:  key.ppem,
		Direction:  shaped.dir,
		Glyphs:     shaped.glyphs,
		Advance:    shaped.advance,
		Metrics:    shaped.metrics,
		Height:     height,
	}
	l.computeRect()
	return l
}

// CacheStats returns the shaped-run cache counters.
func (s *Shaper) CacheStats() cache.Stats { return s.runs.Stats() }

// ClearCache drops every shaped run.
func (s *Shaper) ClearCache() { s.runs.Clear() }

func (s *Shaper) shape(key runKey) shapedRun {
	out := shapedRun{
		dir:     Direction(key.text),
		metrics: s.font.Metrics(key.ppem),
	}
	if key.text == "" {
		return out
	}

	runes := []rune(key.text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: out.dir,
		// font.Face is not safe for concurrent use; a fresh one per run
		// only wraps the shared *font.Font.
		Face:     font.NewFace(s.font.shaping),
		Size:     toFixed(key.ppem),
		Script:   Script(key.text),
		Language: s.lang,
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	out.glyphs = make([]Glyph, len(output.Glyphs))
	var pen float64
	for i, g := range output.Glyphs {
		adv := fromFixed(g.Advance)
		out.glyphs[i] = Glyph{
			ID:      g.GlyphID,
			Cluster: g.TextIndex(),
			X:       pen + fromFixed(g.XOffset),
			Y:       -fromFixed(g.YOffset),
			Advance: adv,
		}
		pen += adv
	}
	out.advance = pen
	return out
}
