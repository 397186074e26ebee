package graphics

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"github.com/gogpu/graphics/glyph"
	"github.com/gogpu/graphics/internal/sysfont"
)

// Slant is the posture of a system font.
type Slant int

const (
	SlantNormal Slant = iota
	SlantItalic
	SlantOblique
)

func (s Slant) String() string {
	switch s {
	case SlantNormal:
		return "normal"
	case SlantItalic:
		return "italic"
	case SlantOblique:
		return "oblique"
	default:
		return fmt.Sprintf("Slant(%d)", int(s))
	}
}

// Weight is the stroke weight of a system font.
type Weight int

const (
	WeightNormal Weight = iota
	WeightBold
)

func (w Weight) String() string {
	switch w {
	case WeightNormal:
		return "normal"
	case WeightBold:
		return "bold"
	default:
		return fmt.Sprintf("Weight(%d)", int(w))
	}
}

// FontFace is a font handle shared by any number of Fonts. It is either a
// *SystemFont or a *UserFont.
type FontFace interface {
	isFontFace()
}

// SystemFont is a font installed on the host, selected by family name,
// slant and weight. The font file is loaded on first use; families that
// cannot be found fall back to the embedded Go fonts.
type SystemFont struct {
	family string
	slant  Slant
	weight Weight

	once   sync.Once
	source *text.FontSource
	err    error
}

func (*SystemFont) isFontFace() {}

// NewSystemFont returns a handle to the named family. Generic names such as
// "sans", "serif" and "monospace" are accepted.
func NewSystemFont(family string, slant Slant, weight Weight) *SystemFont {
	return &SystemFont{family: family, slant: slant, weight: weight}
}

func (f *SystemFont) Family() string { return f.family }
func (f *SystemFont) Slant() Slant   { return f.slant }
func (f *SystemFont) Weight() Weight { return f.weight }

// face returns the loaded face at size.
func (f *SystemFont) face(size float64) (text.Face, error) {
	f.once.Do(f.load)
	if f.err != nil {
		return nil, f.err
	}
	return f.source.Face(size), nil
}

func (f *SystemFont) load() {
	style := sysfont.Style{
		Bold:   f.weight == WeightBold,
		Italic: f.slant != SlantNormal,
	}
	resolved, err := sysfont.Resolve(f.family, style)
	if err != nil {
		Logger().Warn("system font not found, using embedded face",
			"family", f.family, "slant", f.slant, "weight", f.weight, "err", err)
	} else {
		Logger().Debug("system font resolved", "family", f.family, "path", resolved.Path)
	}
	f.source, f.err = text.NewFontSource(resolved.Data)
	if f.err != nil {
		f.err = fmt.Errorf("graphics: load font %q: %w", f.family, f.err)
	}
}

// UserFont is a font whose glyphs are drawn by a glyph.Renderer.
//
// The renderer's Init callback runs once per font size; the resulting
// extents are cached. A UserFont is safe for concurrent use if its
// renderer is.
type UserFont struct {
	renderer glyph.Renderer

	mu      sync.Mutex
	extents map[float64]glyph.FontExtents
}

func (*UserFont) isFontFace() {}

// NewUserFont returns a font drawn by r.
func NewUserFont(r glyph.Renderer) *UserFont {
	return &UserFont{renderer: r, extents: make(map[float64]glyph.FontExtents)}
}

// Renderer returns the glyph renderer.
func (f *UserFont) Renderer() glyph.Renderer { return f.renderer }

// Extents returns the font metrics at size, running the renderer's Init
// callback on c the first time that size is used.
func (f *UserFont) Extents(size float64, c glyph.Canvas) (glyph.FontExtents, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ext, ok := f.extents[size]; ok {
		return ext, nil
	}
	ext, err := f.renderer.Init(glyph.ScaledFont{Size: size}, c)
	if err != nil {
		return glyph.FontExtents{}, fmt.Errorf("graphics: init user font: %w", err)
	}
	f.extents[size] = ext
	return ext, nil
}

// Font is an immutable text style: a face, a color and a size in surface
// units.
type Font struct {
	face  FontFace
	color Color
	size  float64
}

// NewFont returns a font drawing face in color c at size.
func NewFont(face FontFace, c Color, size float64) Font {
	return Font{face: face, color: c, size: size}
}

func (f Font) Face() FontFace { return f.face }
func (f Font) Color() Color   { return f.color }
func (f Font) Size() float64  { return f.size }

// WithColor returns a copy of f drawing in c.
func (f Font) WithColor(c Color) Font {
	f.color = c
	return f
}

// WithSize returns a copy of f at size.
func (f Font) WithSize(size float64) Font {
	f.size = size
	return f
}
