package text

import (
	"bytes"
	"fmt"
	"math"
	"slices"

	"github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Font is a parsed OpenType/TrueType font.
//
// The same data is parsed twice: go-text/typesetting drives shaping and
// golang.org/x/image supplies vertical metrics and glyph rasterization.
// Font is read-only after ParseFont and safe for concurrent use.
type Font struct {
	shaping *font.Font
	outline *opentype.Font
}

// Metrics are vertical font metrics in pixels.
type Metrics struct {
	Ascent  float64
	Descent float64
	Height  float64
}

// LineHeight returns Ascent + Descent.
func (m Metrics) LineHeight() float64 { return m.Ascent + m.Descent }

// ParseFont parses font data. The data is not retained.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Parser: "typesetting", Err: err}
	}
	outline, err := opentype.Parse(data)
	if err != nil {
		return nil, &ParseError{Parser: "opentype", Err: err}
	}
	return &Font{shaping: face.Font, outline: outline}, nil
}

// Name returns the font family name, or "" if the font has none.
func (f *Font) Name() string {
	var buf sfnt.Buffer
	name, err := f.outline.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Metrics returns the vertical metrics at ppem pixels per em.
func (f *Font) Metrics(ppem float64) Metrics {
	var buf sfnt.Buffer
	m, err := f.outline.Metrics(&buf, toFixed(ppem), xfont.HintingNone)
	if err != nil {
		return Metrics{}
	}
	return Metrics{
		Ascent:  fromFixed(m.Ascent),
		Descent: fromFixed(m.Descent),
		Height:  fromFixed(m.Height),
	}
}

// GlyphOutline returns the outline of glyph id at ppem pixels per em,
// relative to the glyph origin on the baseline with Y pointing down. Glyph
// IDs are the ones a Shaper produced for this font.
func (f *Font) GlyphOutline(id font.GID, ppem float64) (sfnt.Segments, error) {
	if id > math.MaxUint16 {
		return nil, fmt.Errorf("text: glyph %d: %w", id, sfnt.ErrNotFound)
	}
	var buf sfnt.Buffer
	segs, err := f.outline.LoadGlyph(&buf, sfnt.GlyphIndex(id), toFixed(ppem), nil)
	if err != nil {
		return nil, fmt.Errorf("text: glyph %d: %w", id, err)
	}
	// segs aliases buf; copy so the result outlives it.
	return slices.Clone(segs), nil
}

func toFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(v * 64) }

func fromFixed(v fixed.Int26_6) float64 { return float64(v) / 64 }
