package graphics

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorOf is an immutable red, green, blue, alpha color whose channels may
// each use a different bounded representation.
//
// ColorOf implements color.Color, so any instantiation can be handed to a
// Surface or to the image packages.
type ColorOf[R Scalable[R], G Scalable[G], B Scalable[B], A Scalable[A]] struct {
	red   R
	green G
	blue  B
	alpha A
}

// Color is the normalized color: four float64 channels in [0, 1].
type Color = ColorOf[Channel, Channel, Channel, Channel]

// Color8 is the common 8 bits per channel color.
type Color8 = ColorOf[Channel8, Channel8, Channel8, Channel8]

// Predefined normalized colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA(0, 0, 0, 0)
)

// NewColorOf builds a color from four bounded channels.
func NewColorOf[R Scalable[R], G Scalable[G], B Scalable[B], A Scalable[A]](r R, g G, b B, a A) ColorOf[R, G, B, A] {
	return ColorOf[R, G, B, A]{red: r, green: g, blue: b, alpha: a}
}

// RGBA returns a normalized color. Components outside [0, 1] are kept and
// make the color invalid.
func RGBA(r, g, b, a float64) Color {
	return NewColorOf(NewChannel(r), NewChannel(g), NewChannel(b), NewChannel(a))
}

// RGB returns an opaque normalized color.
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// RGBA8 returns an 8 bits per channel color.
func RGBA8(r, g, b, a uint8) Color8 {
	return NewColorOf(NewChannel8(r), NewChannel8(g), NewChannel8(b), NewChannel8(a))
}

func (c ColorOf[R, G, B, A]) Red() R   { return c.red }
func (c ColorOf[R, G, B, A]) Green() G { return c.green }
func (c ColorOf[R, G, B, A]) Blue() B  { return c.blue }
func (c ColorOf[R, G, B, A]) Alpha() A { return c.alpha }

// WithRed returns a copy with the red channel replaced.
func (c ColorOf[R, G, B, A]) WithRed(r R) ColorOf[R, G, B, A] {
	c.red = r
	return c
}

// WithGreen returns a copy with the green channel replaced.
func (c ColorOf[R, G, B, A]) WithGreen(g G) ColorOf[R, G, B, A] {
	c.green = g
	return c
}

// WithBlue returns a copy with the blue channel replaced.
func (c ColorOf[R, G, B, A]) WithBlue(b B) ColorOf[R, G, B, A] {
	c.blue = b
	return c
}

// WithAlpha returns a copy with the alpha channel replaced.
func (c ColorOf[R, G, B, A]) WithAlpha(a A) ColorOf[R, G, B, A] {
	c.alpha = a
	return c
}

// Valid reports whether all four channels are inside their bounds.
func (c ColorOf[R, G, B, A]) Valid() bool {
	return c.red.Valid() && c.green.Valid() && c.blue.Valid() && c.alpha.Valid()
}

// Normalized returns the channel fractions clamped to [0, 1].
// Channels with a degenerate range read as 0.
func (c ColorOf[R, G, B, A]) Normalized() (r, g, b, a float64) {
	return unit(c.red), unit(c.green), unit(c.blue), unit(c.alpha)
}

// RGBA implements color.Color. The result is alpha-premultiplied.
func (c ColorOf[R, G, B, A]) RGBA() (r, g, b, a uint32) {
	nr, ng, nb, na := c.Normalized()
	a = uint32(na*0xffff + 0.5)
	r = uint32(nr*na*0xffff + 0.5)
	g = uint32(ng*na*0xffff + 0.5)
	b = uint32(nb*na*0xffff + 0.5)
	return r, g, b, a
}

func (c ColorOf[R, G, B, A]) String() string {
	return fmt.Sprintf("(%v,%v,%v,%v)", c.red, c.green, c.blue, c.alpha)
}

// ConvertColor converts every channel of c into the static representations
// R2, G2, B2, A2:
//
//	c := graphics.RGBA(0, 0.5, 1, 0.5)
//	b, _ := graphics.ConvertColor[
//	    graphics.Value[uint8, graphics.Bits1], graphics.Value[uint8, graphics.Bits2],
//	    graphics.Value[uint8, graphics.Bits3], graphics.Value[uint8, graphics.Bits4]](c)
//	// b == (0,1,7,7)
func ConvertColor[R2 Scalable[R2], G2 Scalable[G2], B2 Scalable[B2], A2 Scalable[A2],
	R1 Scalable[R1], G1 Scalable[G1], B1 Scalable[B1], A1 Scalable[A1]](
	c ColorOf[R1, G1, B1, A1],
) (ColorOf[R2, G2, B2, A2], error) {
	return ConvertColorInto(ColorOf[R2, G2, B2, A2]{}, c)
}

// ConvertColorInto converts every channel of c into the representation and
// bounds of the matching channel of template.
func ConvertColorInto[R2 Scalable[R2], G2 Scalable[G2], B2 Scalable[B2], A2 Scalable[A2],
	R1 Scalable[R1], G1 Scalable[G1], B1 Scalable[B1], A1 Scalable[A1]](
	template ColorOf[R2, G2, B2, A2], c ColorOf[R1, G1, B1, A1],
) (ColorOf[R2, G2, B2, A2], error) {
	r, err := ConvertInto(template.red, c.red)
	if err != nil {
		return template, fmt.Errorf("graphics: red channel: %w", err)
	}
	g, err := ConvertInto(template.green, c.green)
	if err != nil {
		return template, fmt.Errorf("graphics: green channel: %w", err)
	}
	b, err := ConvertInto(template.blue, c.blue)
	if err != nil {
		return template, fmt.Errorf("graphics: blue channel: %w", err)
	}
	a, err := ConvertInto(template.alpha, c.alpha)
	if err != nil {
		return template, fmt.Errorf("graphics: alpha channel: %w", err)
	}
	return NewColorOf(r, g, b, a), nil
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa" into a normalized color.
// The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	alpha := uint8(0xff)
	if len(hex) == 8 {
		v, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("graphics: parse color %q: %w", s, err)
		}
		alpha = uint8(v)
		hex = hex[:6]
	}
	rgb, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("graphics: parse color %q: %w", s, err)
	}
	r, g, b := rgb.RGB255()
	return ConvertColor[Channel, Channel, Channel, Channel](RGBA8(r, g, b, alpha))
}

// normalizer is implemented by every ColorOf instantiation.
type normalizer interface {
	Normalized() (r, g, b, a float64)
}

// normalize returns the straight (non-premultiplied) components of c in [0, 1].
func normalize(c color.Color) (r, g, b, a float64) {
	if c == nil {
		return 0, 0, 0, 1
	}
	if n, ok := c.(normalizer); ok {
		return n.Normalized()
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return float64(n.R) / 0xffff, float64(n.G) / 0xffff, float64(n.B) / 0xffff, float64(n.A) / 0xffff
}

func unit(s Scaler) float64 {
	f, err := s.Fraction()
	if err != nil || math.IsNaN(f) {
		return 0
	}
	return min(max(f, 0), 1)
}
