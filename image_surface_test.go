package graphics

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/graphics/glyph"
)

func newTestImage(t *testing.T, format Format, w, h int) *ImageSurface {
	t.Helper()
	s, err := NewImageSurface(format, w, h)
	if err != nil {
		t.Fatalf("NewImageSurface() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func pixel(t *testing.T, s *ImageSurface, x, y int) (r, g, b, a uint8) {
	t.Helper()
	img, err := s.Image()
	if err != nil {
		t.Fatalf("Image() error = %v", err)
	}
	c := img.RGBAAt(x, y)
	return c.R, c.G, c.B, c.A
}

func within(got, want uint8, tol int) bool {
	d := int(got) - int(want)
	return d >= -tol && d <= tol
}

func TestNewImageSurfaceErrors(t *testing.T) {
	if _, err := NewImageSurface(FormatARGB32, 0, 10); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero width: error = %v, want ErrInvalidSize", err)
	}
	if _, err := NewImageSurface(FormatARGB32, 10, -1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("negative height: error = %v, want ErrInvalidSize", err)
	}
	for _, f := range []Format{FormatA8, FormatA1, Format(42)} {
		if _, err := NewImageSurface(f, 10, 10); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("format %v: error = %v, want ErrUnsupportedFormat", f, err)
		}
	}
}

func TestImageSurfaceSize(t *testing.T) {
	s := newTestImage(t, FormatARGB32, 600, 400)
	if s.Width() != 600 || s.Height() != 400 {
		t.Errorf("size = %vx%v, want 600x400", s.Width(), s.Height())
	}
	if s.Format() != FormatARGB32 {
		t.Errorf("Format() = %v, want ARGB32", s.Format())
	}
}

func TestImageSurfaceInitialContent(t *testing.T) {
	argb := newTestImage(t, FormatARGB32, 4, 4)
	if _, _, _, a := pixel(t, argb, 1, 1); a != 0 {
		t.Errorf("ARGB32 initial alpha = %d, want 0", a)
	}
	rgb := newTestImage(t, FormatRGB24, 4, 4)
	if r, g, b, a := pixel(t, rgb, 1, 1); r != 0 || g != 0 || b != 0 || a != 255 {
		t.Errorf("RGB24 initial pixel = (%d,%d,%d,%d), want opaque black", r, g, b, a)
	}
}

func TestImageSurfaceFill(t *testing.T) {
	s := newTestImage(t, FormatARGB32, 20, 20)
	if err := s.Fill(RGB(1, 0, 0)); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	for _, p := range [][2]int{{0, 0}, {10, 10}, {19, 19}} {
		r, g, b, a := pixel(t, s, p[0], p[1])
		if r != 255 || g != 0 || b != 0 || a != 255 {
			t.Errorf("pixel %v = (%d,%d,%d,%d), want opaque red", p, r, g, b, a)
		}
	}
}

func TestImageSurfaceTranslucentStroke(t *testing.T) {
	s := newTestImage(t, FormatARGB32, 600, 400)
	bg := RGB(0.86, 0.85, 0.47)
	if err := s.Fill(bg); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	br, bgG, bb, _ := pixel(t, s, 300, 5)

	pen := NewColorPen(RGBA(0, 0, 0, 0.7), 20)
	if err := s.Stroke(pen, Circle(300, 200, 100)); err != nil {
		t.Fatalf("Stroke() error = %v", err)
	}

	// On the circle, 70% black over the background.
	r, g, b, a := pixel(t, s, 400, 200)
	if !within(r, uint8(float64(br)*0.3), 4) || !within(g, uint8(float64(bgG)*0.3), 4) || !within(b, uint8(float64(bb)*0.3), 4) {
		t.Errorf("stroke pixel = (%d,%d,%d), want about 0.3 x (%d,%d,%d)", r, g, b, br, bgG, bb)
	}
	if a != 255 {
		t.Errorf("stroke pixel alpha = %d, want 255", a)
	}

	// The center of the circle is untouched.
	if r, g, b, _ := pixel(t, s, 300, 200); r != br || g != bgG || b != bb {
		t.Errorf("center pixel = (%d,%d,%d), want background", r, g, b)
	}
}

func TestImageSurfaceFillRule(t *testing.T) {
	ring := NewPath(Rect(0, 0, 30, 30), Rect(10, 10, 10, 10))

	nz := newTestImage(t, FormatARGB32, 30, 30)
	if err := nz.FillPath(Black, ring); err != nil {
		t.Fatalf("FillPath() error = %v", err)
	}
	if _, _, _, a := pixel(t, nz, 15, 15); a != 255 {
		t.Errorf("non-zero center alpha = %d, want 255", a)
	}

	eo := newTestImage(t, FormatARGB32, 30, 30)
	if err := eo.FillPathRule(Black, ring, FillRuleEvenOdd); err != nil {
		t.Fatalf("FillPathRule() error = %v", err)
	}
	if _, _, _, a := pixel(t, eo, 15, 15); a != 0 {
		t.Errorf("even-odd center alpha = %d, want 0", a)
	}
	if _, _, _, a := pixel(t, eo, 5, 5); a != 255 {
		t.Errorf("even-odd ring alpha = %d, want 255", a)
	}
}

func TestImageSurfacePrintUserFont(t *testing.T) {
	s := newTestImage(t, FormatARGB32, 200, 60)
	font := NewFont(NewUserFont(glyph.BoxFont{}), RGB(0, 0, 1), 40)
	if err := s.Print(font, Pos(10, 50), "T?"); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	// The top-left box of T spans (10, 15)-(15, 20).
	if r, g, b, a := pixel(t, s, 12, 17); r != 0 || g != 0 || b != 255 || a != 255 {
		t.Errorf("glyph pixel = (%d,%d,%d,%d), want opaque blue", r, g, b, a)
	}
	// Below the baseline nothing is drawn.
	if _, _, _, a := pixel(t, s, 12, 55); a != 0 {
		t.Errorf("pixel below baseline alpha = %d, want 0", a)
	}
	// The second glyph starts after T's advance: 5 cells plus spacing.
	x := 10 + int((5*glyph.Cell+glyph.Spacing)*40)
	if _, _, _, a := pixel(t, s, x+7, 17); a != 255 {
		t.Errorf("second glyph pixel alpha = %d, want 255", a)
	}
}

func TestImageSurfacePrintSystemFont(t *testing.T) {
	s := newTestImage(t, FormatARGB32, 200, 60)
	font := NewFont(NewSystemFont("NoSuchFamilyXYZ123", SlantNormal, WeightNormal), Black, 24)
	if err := s.Print(font, Pos(10, 40), "Hello"); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
}

func TestImageSurfacePrintNilFace(t *testing.T) {
	s := newTestImage(t, FormatARGB32, 10, 10)
	if err := s.Print(Font{}, Pos(0, 0), "x"); !errors.Is(err, ErrNilFontFace) {
		t.Errorf("Print() error = %v, want ErrNilFontFace", err)
	}
}

func TestImageSurfaceNilShape(t *testing.T) {
	s := newTestImage(t, FormatARGB32, 10, 10)
	if err := s.FillPath(Black, nil); !errors.Is(err, ErrNilShape) {
		t.Errorf("FillPath(nil) error = %v, want ErrNilShape", err)
	}
	if err := s.Stroke(NewPen(1), nil); !errors.Is(err, ErrNilShape) {
		t.Errorf("Stroke(nil) error = %v, want ErrNilShape", err)
	}
	// The failed call left no path behind.
	if err := s.Fill(Black); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
}

func TestImageSurfaceNonFiniteArc(t *testing.T) {
	s := newTestImage(t, FormatARGB32, 10, 10)
	if err := s.Stroke(NewPen(1), NewArc(5, 5, 3, math.Inf(1), 0)); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Stroke(Inf arc) error = %v, want ErrInvalidShape", err)
	}
	if err := s.FillPath(Black, NewArc(5, 5, 3, 1e17, 0)); err != nil {
		t.Errorf("FillPath(huge angle arc) error = %v", err)
	}
}

func TestImageSurfaceClosed(t *testing.T) {
	s, err := NewImageSurface(FormatARGB32, 10, 10)
	if err != nil {
		t.Fatalf("NewImageSurface() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}

	checks := map[string]error{
		"Fill":      s.Fill(Black),
		"FillPath":  s.FillPath(Black, Rect(0, 0, 1, 1)),
		"Stroke":    s.Stroke(NewPen(1), NewLine(0, 0, 1, 1)),
		"Print":     s.Print(NewFont(NewUserFont(glyph.BoxFont{}), Black, 10), Pos(0, 0), "A"),
		"ShowPage":  s.ShowPage(),
		"EncodePNG": s.EncodePNG(&bytes.Buffer{}),
		"WritePNG":  s.WritePNG(filepath.Join(t.TempDir(), "x.png")),
	}
	for name, err := range checks {
		if !errors.Is(err, ErrSurfaceClosed) {
			t.Errorf("%s after Close: error = %v, want ErrSurfaceClosed", name, err)
		}
	}
	if _, err := s.Image(); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("Image after Close: error = %v, want ErrSurfaceClosed", err)
	}
}

func TestImageSurfaceShowPage(t *testing.T) {
	s := newTestImage(t, FormatARGB32, 10, 10)
	if err := s.Fill(Black); err != nil {
		t.Fatal(err)
	}
	for range 2 {
		if err := s.ShowPage(); err != nil {
			t.Fatalf("ShowPage() error = %v", err)
		}
	}
	if s.Pages() != 2 {
		t.Errorf("Pages() = %d, want 2", s.Pages())
	}
	if _, _, _, a := pixel(t, s, 5, 5); a != 255 {
		t.Error("ShowPage should keep the pixels")
	}
}

func TestImageSurfaceEncodePNG(t *testing.T) {
	s := newTestImage(t, FormatRGB24, 8, 6)
	if err := s.FillPath(RGBA(1, 1, 1, 0.5), Rect(0, 0, 4, 6)); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 8, 6) {
		t.Errorf("bounds = %v, want 8x6", img.Bounds())
	}
	_, _, _, a := img.At(6, 3).RGBA()
	if a != 0xffff {
		t.Errorf("RGB24 pixel alpha = %#x, want opaque", a)
	}
}

func TestImageSurfaceWritePNG(t *testing.T) {
	s := newTestImage(t, FormatARGB32, 5, 5)
	name := filepath.Join(t.TempDir(), "out.png")
	if err := s.WritePNG(name); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.DecodeConfig(f); err != nil {
		t.Errorf("written file is not a PNG: %v", err)
	}

	if err := s.WritePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("WritePNG into a missing directory should fail")
	}
}

func TestImageSurfaceSnapshotIsACopy(t *testing.T) {
	s := newTestImage(t, FormatARGB32, 4, 4)
	img, err := s.Image()
	if err != nil {
		t.Fatal(err)
	}
	img.Pix[3] = 0xff
	if _, _, _, a := pixel(t, s, 0, 0); a != 0 {
		t.Error("modifying the snapshot changed the surface")
	}
}
