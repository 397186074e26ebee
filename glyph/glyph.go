// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyph

// Index identifies a glyph inside one Renderer. It is distinct from the
// code point the glyph represents.
type Index uint32

// NotFound is the reserved index for characters a font cannot render.
const NotFound Index = 0

// ScaledFont describes the font instance a Renderer is asked to serve.
type ScaledFont struct {
	// Size is the em size in surface units.
	Size float64
}

// FontExtents are the aggregate metrics of a font, in em units.
type FontExtents struct {
	Ascent      float64
	Descent     float64
	Height      float64
	MaxXAdvance float64
	MaxYAdvance float64
}

// TextExtents are the metrics of one rendered glyph, in em units.
type TextExtents struct {
	XBearing float64
	YBearing float64
	Width    float64
	Height   float64
	XAdvance float64
	YAdvance float64
}

// Canvas is the drawing target handed to a Renderer.
type Canvas interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Rectangle(x, y, w, h float64)
	Arc(cx, cy, r, angle1, angle2 float64)
	ClosePath()

	// SetLineWidth sets the stroke width, in em units, for Stroke.
	SetLineWidth(w float64)

	// Fill paints and clears the current path in the font color.
	Fill() error

	// Stroke outlines and clears the current path in the font color.
	Stroke() error
}

// Renderer is a user-defined font.
type Renderer interface {
	// Init reports the aggregate metrics of the font. It is called once per
	// scaled font, before any glyph is rendered.
	Init(sf ScaledFont, c Canvas) (FontExtents, error)

	// UnicodeToGlyph maps a character to a glyph. Unmapped characters
	// return NotFound.
	UnicodeToGlyph(sf ScaledFont, r rune) Index

	// RenderGlyph draws glyph g with its origin at the canvas origin and
	// reports its metrics. Unknown glyphs draw nothing and report zero
	// extents.
	RenderGlyph(sf ScaledFont, g Index, c Canvas) (TextExtents, error)
}

// Draw lays text out left to right. For each character it maps the glyph,
// renders it on the canvas returned by at for the current pen offset (in em
// units) and advances the pen by the glyph's XAdvance. It returns the total
// advance.
func Draw(r Renderer, sf ScaledFont, text string, at func(x float64) Canvas) (float64, error) {
	var x float64
	for _, ch := range text {
		g := r.UnicodeToGlyph(sf, ch)
		ext, err := r.RenderGlyph(sf, g, at(x))
		if err != nil {
			return x, err
		}
		x += ext.XAdvance
	}
	return x, nil
}

// Measure returns the total advance of text in em units without drawing.
func Measure(r Renderer, sf ScaledFont, text string) (float64, error) {
	return Draw(r, sf, text, func(float64) Canvas { return discard{} })
}

// discard is a Canvas that drops everything.
type discard struct{}

func (discard) MoveTo(_, _ float64)          {}
func (discard) LineTo(_, _ float64)          {}
func (discard) Rectangle(_, _, _, _ float64) {}
func (discard) Arc(_, _, _, _, _ float64)    {}
func (discard) ClosePath()                   {}
func (discard) SetLineWidth(_ float64)       {}
func (discard) Fill() error                  { return nil }
func (discard) Stroke() error                { return nil }
