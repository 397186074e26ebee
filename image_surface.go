package graphics

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/gg"
)

// Format is the pixel layout of an image surface.
type Format int

const (
	// FormatARGB32 stores 8 bits per channel with alpha. New surfaces are
	// fully transparent.
	FormatARGB32 Format = iota
	// FormatRGB24 stores opaque 8 bits per channel color. New surfaces are
	// opaque black and encode without transparency.
	FormatRGB24
	// FormatA8 stores 8 bits of alpha only. Not supported by the raster
	// backend.
	FormatA8
	// FormatA1 stores 1 bit of alpha only. Not supported by the raster
	// backend.
	FormatA1
)

func (f Format) String() string {
	switch f {
	case FormatARGB32:
		return "ARGB32"
	case FormatRGB24:
		return "RGB24"
	case FormatA8:
		return "A8"
	case FormatA1:
		return "A1"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ImageSurface is an in-memory raster surface. Drawing is done by the
// gg software rasterizer; the pixels can be read back with Image or
// encoded as PNG.
type ImageSurface struct {
	dc     *gg.Context
	format Format
	width  int
	height int
	pages  int
	closed bool

	// onClose runs once, before the surface is released.
	onClose func(*ImageSurface) error
}

// NewImageSurface creates a raster surface of width×height pixels.
// Only FormatARGB32 and FormatRGB24 are supported.
func NewImageSurface(format Format, width, height int) (*ImageSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	switch format {
	case FormatARGB32, FormatRGB24:
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}

	dc := gg.NewContext(width, height)
	if format == FormatRGB24 {
		dc.ClearWithColor(gg.RGBA{A: 1})
	}
	Logger().Debug("image surface created", "format", format, "width", width, "height", height)
	return &ImageSurface{dc: dc, format: format, width: width, height: height}, nil
}

// Format returns the pixel format.
func (s *ImageSurface) Format() Format { return s.format }

// Width returns the width in pixels.
func (s *ImageSurface) Width() float64 { return float64(s.width) }

// Height returns the height in pixels.
func (s *ImageSurface) Height() float64 { return float64(s.height) }

// Pages returns the number of ShowPage calls.
func (s *ImageSurface) Pages() int { return s.pages }

// Fill composites c over the whole surface.
func (s *ImageSurface) Fill(c color.Color) error {
	return s.FillPath(c, Rect(0, 0, float64(s.width), float64(s.height)))
}

// FillPath fills shape with c using the non-zero rule.
func (s *ImageSurface) FillPath(c color.Color, shape Shape) error {
	return s.FillPathRule(c, shape, FillRuleNonZero)
}

// FillPathRule fills shape with c using rule.
func (s *ImageSurface) FillPathRule(c color.Color, shape Shape, rule FillRule) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	t := s.begin()
	defer t.end()
	if err := emit(t, shape); err != nil {
		return err
	}
	t.setColor(c)
	t.dc.SetFillRule(rasterRule(rule))
	return t.dc.Fill()
}

// Stroke outlines shape with pen.
func (s *ImageSurface) Stroke(pen Pen, shape Shape) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	t := s.begin()
	defer t.end()
	if err := emit(t, shape); err != nil {
		return err
	}
	t.setColor(pen.color)
	t.dc.SetLineWidth(pen.width)
	return t.dc.Stroke()
}

// Print draws text with its baseline starting at pos.
func (s *ImageSurface) Print(font Font, pos Position, text string) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	t := s.begin()
	defer t.end()

	switch face := font.face.(type) {
	case *SystemFont:
		if face == nil {
			return ErrNilFontFace
		}
		f, err := face.face(font.size)
		if err != nil {
			return err
		}
		t.setColor(font.color)
		t.dc.SetFont(f)
		t.dc.DrawString(printText(text), pos.X, pos.Y)
		t.dc.SetFont(nil)
		return nil
	case *UserFont:
		if face == nil {
			return ErrNilFontFace
		}
		return printGlyphs(t, face, font, pos, text)
	default:
		return ErrNilFontFace
	}
}

// ShowPage counts a finished page. The pixels are kept.
func (s *ImageSurface) ShowPage() error {
	if s.closed {
		return ErrSurfaceClosed
	}
	s.pages++
	return nil
}

// Image returns a copy of the current pixels.
func (s *ImageSurface) Image() (*image.RGBA, error) {
	if s.closed {
		return nil, ErrSurfaceClosed
	}
	return s.snapshot(), nil
}

func (s *ImageSurface) snapshot() *image.RGBA {
	img, ok := s.dc.Image().(*image.RGBA)
	if !ok {
		img = image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	}
	if s.format == FormatRGB24 {
		for i := 3; i < len(img.Pix); i += 4 {
			img.Pix[i] = 0xff
		}
	}
	return img
}

// EncodePNG writes the current pixels to w as PNG.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	img, err := s.Image()
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("graphics: encode png: %w", err)
	}
	return nil
}

// WritePNG writes the current pixels to the named file as PNG.
func (s *ImageSurface) WritePNG(filename string) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	f, err := os.Create(filename) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("graphics: create %s: %w", filename, err)
	}
	return s.writePNGFile(f)
}

// writePNGFile encodes the current pixels into f and closes it.
func (s *ImageSurface) writePNGFile(f *os.File) error {
	bw := bufio.NewWriter(f)
	if err := s.EncodePNG(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("graphics: write %s: %w", f.Name(), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("graphics: close %s: %w", f.Name(), err)
	}
	Logger().Info("png written", "file", f.Name(), "width", s.width, "height", s.height)
	return nil
}

// Close releases the raster context. It is safe to call more than once.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	var err error
	if s.onClose != nil {
		err = s.onClose(s)
	}
	s.closed = true
	if cerr := s.dc.Close(); err == nil {
		err = cerr
	}
	return err
}

// begin opens a drawing scope on the raster context with an empty path.
func (s *ImageSurface) begin() rasterTarget {
	s.dc.Push()
	s.dc.ClearPath()
	return rasterTarget{dc: s.dc}
}

// rasterTarget forwards path construction to a gg context.
type rasterTarget struct {
	dc *gg.Context
}

func (t rasterTarget) end() {
	t.dc.ClearPath()
	t.dc.Pop()
}

func (t rasterTarget) MoveTo(x, y float64)          { t.dc.MoveTo(x, y) }
func (t rasterTarget) LineTo(x, y float64)          { t.dc.LineTo(x, y) }
func (t rasterTarget) Rectangle(x, y, w, h float64) { t.dc.DrawRectangle(x, y, w, h) }
func (t rasterTarget) ClosePath()                   { t.dc.ClosePath() }

func (t rasterTarget) Arc(cx, cy, r, angle1, angle2 float64) {
	t.dc.DrawArc(cx, cy, r, angle1, angle2)
}

func (t rasterTarget) setColor(c color.Color) {
	r, g, b, a := normalize(c)
	t.dc.SetRGBA(r, g, b, a)
}

func (t rasterTarget) fillGlyph(c Color) error {
	t.setColor(c)
	t.dc.SetFillRule(gg.FillRuleNonZero)
	return t.dc.Fill()
}

func (t rasterTarget) strokeGlyph(c Color, width float64) error {
	t.setColor(c)
	t.dc.SetLineWidth(width)
	return t.dc.Stroke()
}

func (t rasterTarget) clearPath() { t.dc.ClearPath() }

func rasterRule(r FillRule) gg.FillRule {
	if r == FillRuleEvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleNonZero
}
