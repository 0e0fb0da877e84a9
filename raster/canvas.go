// Package raster renders a recorded guistate frame into an image for
// previews and golden tests.
//
// Solid primitives are filled as polygons with golang.org/x/image/vector,
// textured quads are scaled into the box of their vertices with
// golang.org/x/image/draw and text is filled from the sfnt outlines of the
// shaped glyphs.
// Icons belong to the host's item renderer; the preview marks their bounds
// with a placeholder tile.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/go-text/typesetting/font"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/infinite-client/guistate"
	"github.com/infinite-client/guistate/recording"
	"github.com/infinite-client/guistate/text"
)

// IconPlaceholder is the colour of icon placeholder tiles.
var IconPlaceholder = color.NRGBA{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF}

// TextureFunc resolves the pipeline reference of a textured quad to an
// image. Returning nil previews the quad as a flat colour.
type TextureFunc func(pipeline any) image.Image

// Option configures a Canvas.
type Option func(*Canvas)

// WithFont sets the font text is drawn with. It should be the font the
// layouts were shaped with. Drawing text without a font is an error.
func WithFont(f *text.Font) Option {
	return func(c *Canvas) {
		c.font = f
	}
}

// WithTextures sets the texture lookup for textured quads.
func WithTextures(fn TextureFunc) Option {
	return func(c *Canvas) {
		c.textures = fn
	}
}

// WithBackground fills the canvas with col before drawing.
func WithBackground(col color.Color) Option {
	return func(c *Canvas) {
		c.background = col
	}
}

// Canvas is a software render target. It is not safe for concurrent use.
type Canvas struct {
	dst        *image.RGBA
	font       *text.Font
	textures   TextureFunc
	background color.Color
	outlines   map[glyphKey]sfnt.Segments
}

type glyphKey struct {
	id   font.GID
	ppem float64
}

// New creates a width x height canvas.
func New(width, height int, opts ...Option) *Canvas {
	c := &Canvas{
		dst:      image.NewRGBA(image.Rect(0, 0, width, height)),
		outlines: make(map[glyphKey]sfnt.Segments),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.background != nil {
		draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(c.background), image.Point{}, draw.Src)
	}
	return c
}

// Image returns the render target.
func (c *Canvas) Image() *image.RGBA { return c.dst }

// Draw renders every command of r in order.
func (c *Canvas) Draw(r *recording.Recording) error {
	for _, cmd := range r.Commands() {
		switch cm := cmd.(type) {
		case recording.PrimitiveCommand:
			c.drawPrimitive(cm)
		case recording.IconCommand:
			c.DrawIcon(cm.Icon)
		case recording.TextCommand:
			l, ok := cm.Layout.(*text.Layout)
			if !ok {
				continue
			}
			if err := c.DrawText(l, cm.Text.Pose()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Canvas) drawPrimitive(p recording.PrimitiveCommand) {
	if len(p.Vertices) < 3 {
		return
	}
	if p.Textured() && c.textures != nil {
		if tex := c.textures(p.Pipeline); tex != nil {
			c.drawTextured(p.Vertices, tex)
			return
		}
	}
	pts := make([]guistate.Point, len(p.Vertices))
	for i, v := range p.Vertices {
		pts[i] = v.Pos
	}
	c.FillPolygon(pts, p.Vertices[0].Color)
}

// FillPolygon fills the closed polygon through pts with col.
func (c *Canvas) FillPolygon(pts []guistate.Point, col guistate.Color) {
	if len(pts) < 3 {
		return
	}
	b := c.dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(c.dst, b, image.NewUniform(col.NRGBA()), image.Point{})
}

// FillRect fills r with col.
func (c *Canvas) FillRect(r guistate.ScreenRect, col color.Color) {
	rect := image.Rect(r.Left(), r.Top(), r.Right(), r.Bottom())
	draw.Draw(c.dst, rect, image.NewUniform(col), image.Point{}, draw.Over)
}

// drawTextured scales the UV sub-rectangle of tex into the axis-aligned
// box of the vertices. Rotation is not previewed.
func (c *Canvas) drawTextured(vs []recording.Vertex, tex image.Image) {
	minP, maxP := vs[0].Pos, vs[0].Pos
	minUV, maxUV := vs[0].UV, vs[0].UV
	for _, v := range vs[1:] {
		minP = guistate.Pt(math.Min(minP.X, v.Pos.X), math.Min(minP.Y, v.Pos.Y))
		maxP = guistate.Pt(math.Max(maxP.X, v.Pos.X), math.Max(maxP.Y, v.Pos.Y))
		minUV = guistate.Pt(math.Min(minUV.X, v.UV.X), math.Min(minUV.Y, v.UV.Y))
		maxUV = guistate.Pt(math.Max(maxUV.X, v.UV.X), math.Max(maxUV.Y, v.UV.Y))
	}

	tb := tex.Bounds()
	src := image.Rect(
		tb.Min.X+int(math.Floor(minUV.X*float64(tb.Dx()))),
		tb.Min.Y+int(math.Floor(minUV.Y*float64(tb.Dy()))),
		tb.Min.X+int(math.Ceil(maxUV.X*float64(tb.Dx()))),
		tb.Min.Y+int(math.Ceil(maxUV.Y*float64(tb.Dy()))),
	)
	dst := image.Rect(
		int(math.Floor(minP.X)), int(math.Floor(minP.Y)),
		int(math.Ceil(maxP.X)), int(math.Ceil(maxP.Y)),
	)
	if src.Empty() || dst.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(c.dst, dst, tex, src, xdraw.Over, nil)
}

// DrawIcon marks the bounds of ic with a placeholder tile.
func (c *Canvas) DrawIcon(ic *guistate.Icon) {
	r, ok := ic.Bounds()
	if !ok {
		return
	}
	col := IconPlaceholder
	col.A = uint8(math.Round(float64(col.A) * ic.Alpha()))
	c.FillRect(r, col)
}

// DrawText draws a shaped layout through pose. Glyphs are filled from the
// outlines of the glyph IDs the shaper chose, at the offsets it computed.
func (c *Canvas) DrawText(l *text.Layout, pose guistate.Affine) error {
	if len(l.Glyphs) == 0 {
		return nil
	}
	if c.font == nil {
		return fmt.Errorf("raster: text at %vpx: %w", l.PixelSize, text.ErrNilFont)
	}

	if l.Background.A() != 0 {
		if r, ok := l.ScreenRect(); ok {
			if l.Shadow {
				r.Width--
				r.Height--
			}
			c.fillPlate(r, pose, l.Background)
		}
	}
	if l.Shadow {
		// The shadow sits one layout unit down and right, scaled with the pose.
		shift := pose.TransformVector(guistate.Pt(1, 1))
		if err := c.fillGlyphs(l, pose, shift, shadowColor(l.Color)); err != nil {
			return err
		}
	}
	return c.fillGlyphs(l, pose, guistate.Point{}, l.Color.NRGBA())
}

// fillPlate fills the layout-space rectangle r mapped through pose.
func (c *Canvas) fillPlate(r guistate.ScreenRect, pose guistate.Affine, col guistate.Color) {
	if pose.IsTranslation() {
		r.X += int(math.Round(pose.C))
		r.Y += int(math.Round(pose.F))
		c.FillRect(r, col.NRGBA())
		return
	}
	left, top := float64(r.Left()), float64(r.Top())
	right, bottom := float64(r.Right()), float64(r.Bottom())
	c.FillPolygon([]guistate.Point{
		pose.TransformPoint(guistate.Pt(left, top)),
		pose.TransformPoint(guistate.Pt(left, bottom)),
		pose.TransformPoint(guistate.Pt(right, bottom)),
		pose.TransformPoint(guistate.Pt(right, top)),
	}, col)
}

// fillGlyphs rasterizes every glyph of l in one pass, mapped through pose
// and then moved by shift in screen pixels.
func (c *Canvas) fillGlyphs(l *text.Layout, pose guistate.Affine, shift guistate.Point, col color.Color) error {
	b := c.dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	baseline := l.Baseline()
	for _, g := range l.Glyphs {
		segs, err := c.outline(g.ID, l.PixelSize)
		if err != nil {
			return err
		}
		ox, oy := l.X+g.X, baseline+g.Y
		at := func(p fixed.Point26_6) (float32, float32) {
			q := pose.TransformPoint(guistate.Pt(ox+float64(p.X)/64, oy+float64(p.Y)/64)).Add(shift)
			return float32(q.X), float32(q.Y)
		}

		open := false
		for _, seg := range segs {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					z.ClosePath()
				}
				z.MoveTo(at(seg.Args[0]))
				open = true
			case sfnt.SegmentOpLineTo:
				z.LineTo(at(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				bx, by := at(seg.Args[0])
				cx, cy := at(seg.Args[1])
				z.QuadTo(bx, by, cx, cy)
			case sfnt.SegmentOpCubeTo:
				bx, by := at(seg.Args[0])
				cx, cy := at(seg.Args[1])
				dx, dy := at(seg.Args[2])
				z.CubeTo(bx, by, cx, cy, dx, dy)
			}
		}
		if open {
			z.ClosePath()
		}
	}
	z.Draw(c.dst, b, image.NewUniform(col), image.Point{})
	return nil
}

// outline returns the cached outline of glyph id at ppem.
func (c *Canvas) outline(id font.GID, ppem float64) (sfnt.Segments, error) {
	key := glyphKey{id: id, ppem: ppem}
	if segs, ok := c.outlines[key]; ok {
		return segs, nil
	}
	segs, err := c.font.GlyphOutline(id, ppem)
	if err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}
	c.outlines[key] = segs
	return segs, nil
}

// shadowColor darkens col to a quarter of its brightness, keeping alpha.
func shadowColor(col guistate.Color) color.NRGBA {
	n := col.NRGBA()
	n.R /= 4
	n.G /= 4
	n.B /= 4
	return n
}
