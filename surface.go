package graphics

import (
	"fmt"
	"image/color"

	"github.com/gogpu/graphics/glyph"
	"golang.org/x/text/unicode/norm"
)

// Surface is a drawing target bound to a backend: an in-memory raster image
// or an SVG document.
//
// Every call draws immediately and keeps no path or style state between
// calls: colors, pens and fonts are passed with each operation.
//
// Surfaces are NOT safe for concurrent use. After Close every drawing call
// returns ErrSurfaceClosed; Close itself is idempotent.
//
// Example usage:
//
//	s, err := graphics.NewImageSurface(graphics.FormatARGB32, 600, 400)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	s.Fill(graphics.RGB(0.86, 0.85, 0.47))
//	s.Stroke(graphics.NewPen(20), graphics.Rect(0, 0, 600, 400))
//	s.WritePNG("out.png")
type Surface interface {
	// Width returns the surface width in surface units.
	Width() float64

	// Height returns the surface height in surface units.
	Height() float64

	// Fill paints the whole surface with c, composited over the current
	// content.
	Fill(c color.Color) error

	// FillPath fills the interior of s with c using the non-zero rule.
	FillPath(c color.Color, s Shape) error

	// FillPathRule fills the interior of s with c using rule.
	FillPathRule(c color.Color, s Shape, rule FillRule) error

	// Stroke outlines s with pen.
	Stroke(pen Pen, s Shape) error

	// Print draws text with its baseline starting at pos.
	Print(font Font, pos Position, text string) error

	// ShowPage finishes the current page. Raster surfaces keep drawing on
	// the same pixels; paged surfaces start a new page.
	ShowPage() error

	// Pages returns the number of pages shown so far.
	Pages() int

	// Close flushes the backend and releases its resources.
	Close() error
}

// FillRule selects how path interiors are computed.
type FillRule int

const (
	// FillRuleNonZero fills regions with a non-zero winding number.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd fills regions crossed an odd number of times.
	FillRuleEvenOdd
)

func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// printText prepares text for glyph lookup.
func printText(s string) string {
	return norm.NFC.String(s)
}

// glyphTarget is a backend path sink that can also paint glyph paths.
type glyphTarget interface {
	pathSink
	fillGlyph(c Color) error
	strokeGlyph(c Color, width float64) error
	clearPath()
}

// defaultGlyphLineWidth is the stroke width, in em units, a glyph canvas
// starts with.
const defaultGlyphLineWidth = 1.0 / 16

// glyphCanvas maps the em-unit coordinates of a glyph.Canvas onto a
// backend: the origin sits at the pen position and one unit is the font
// size.
type glyphCanvas struct {
	dst       glyphTarget
	color     Color
	ox, oy    float64
	size      float64
	lineWidth float64
}

func (g *glyphCanvas) MoveTo(x, y float64) {
	g.dst.MoveTo(g.ox+x*g.size, g.oy+y*g.size)
}

func (g *glyphCanvas) LineTo(x, y float64) {
	g.dst.LineTo(g.ox+x*g.size, g.oy+y*g.size)
}

func (g *glyphCanvas) Rectangle(x, y, w, h float64) {
	g.dst.Rectangle(g.ox+x*g.size, g.oy+y*g.size, w*g.size, h*g.size)
}

// Arc drops arcs with non-finite parameters; the rest are normalized like
// an Arc shape.
func (g *glyphCanvas) Arc(cx, cy, r, angle1, angle2 float64) {
	if !finite(cx, cy, r, angle1, angle2) {
		return
	}
	start, sweep := arcSpan(angle1, angle2)
	g.dst.Arc(g.ox+cx*g.size, g.oy+cy*g.size, r*g.size, start, start+sweep)
}

func (g *glyphCanvas) ClosePath()             { g.dst.ClosePath() }
func (g *glyphCanvas) SetLineWidth(w float64) { g.lineWidth = w }
func (g *glyphCanvas) Fill() error            { return g.dst.fillGlyph(g.color) }
func (g *glyphCanvas) Stroke() error          { return g.dst.strokeGlyph(g.color, g.lineWidth*g.size) }

// printGlyphs runs the user font protocol for text on dst: Init once per
// size, then one UnicodeToGlyph and RenderGlyph per character, advancing
// the pen by XAdvance*size.
func printGlyphs(dst glyphTarget, uf *UserFont, font Font, pos Position, text string) error {
	c := &glyphCanvas{
		dst:       dst,
		color:     font.color,
		ox:        pos.X,
		oy:        pos.Y,
		size:      font.size,
		lineWidth: defaultGlyphLineWidth,
	}
	if _, err := uf.Extents(font.size, c); err != nil {
		return err
	}

	dst.clearPath()
	defer dst.clearPath()
	sf := glyph.ScaledFont{Size: font.size}
	_, err := glyph.Draw(uf.renderer, sf, printText(text), func(x float64) glyph.Canvas {
		c.ox = pos.X + x*font.size
		c.lineWidth = defaultGlyphLineWidth
		return c
	})
	if err != nil {
		return fmt.Errorf("graphics: render glyph: %w", err)
	}
	return nil
}
