package graphics

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"
)

// SVGSurface writes drawing operations as an SVG document. Every page is a
// <g id="page-N"> group; every drawing call becomes one element, written
// through to the destination before the call returns.
type SVGSurface struct {
	canvas *svg.SVG
	buf    *bufio.Writer
	file   *os.File
	name   string

	width, height float64
	pages         int
	pageOpen      bool
	closed        bool
}

// NewSVGSurface creates filename and starts an SVG document of the given
// size in it. The file is written as drawing proceeds and completed by
// Close.
func NewSVGSurface(filename string, width, height float64) (*SVGSurface, error) {
	if !(width > 0 && height > 0) {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidSize, width, height)
	}
	f, err := os.Create(filename) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("graphics: create %s: %w", filename, err)
	}
	s, err := newSVGSurface(f, width, height)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	s.file = f
	s.name = filename
	return s, nil
}

// NewSVGSurfaceWriter starts an SVG document of the given size on w.
// Close completes the document but does not close w.
func NewSVGSurfaceWriter(w io.Writer, width, height float64) (*SVGSurface, error) {
	if !(width > 0 && height > 0) {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidSize, width, height)
	}
	return newSVGSurface(w, width, height)
}

func newSVGSurface(w io.Writer, width, height float64) (*SVGSurface, error) {
	buf := bufio.NewWriter(w)
	s := &SVGSurface{
		canvas: svg.New(buf),
		buf:    buf,
		width:  width,
		height: height,
	}
	s.canvas.Start(int(math.Ceil(width)), int(math.Ceil(height)),
		fmt.Sprintf(`viewBox="0 0 %s %s"`, svgNum(width), svgNum(height)))
	if err := s.buf.Flush(); err != nil {
		return nil, fmt.Errorf("graphics: write svg header: %w", err)
	}
	Logger().Debug("svg surface created", "width", width, "height", height)
	return s, nil
}

// Width returns the document width.
func (s *SVGSurface) Width() float64 { return s.width }

// Height returns the document height.
func (s *SVGSurface) Height() float64 { return s.height }

// Pages returns the number of completed pages.
func (s *SVGSurface) Pages() int { return s.pages }

// Fill composites c over the whole page.
func (s *SVGSurface) Fill(c color.Color) error {
	return s.FillPath(c, Rect(0, 0, s.width, s.height))
}

// FillPath fills shape with c using the non-zero rule.
func (s *SVGSurface) FillPath(c color.Color, shape Shape) error {
	return s.FillPathRule(c, shape, FillRuleNonZero)
}

// FillPathRule fills shape with c using rule.
func (s *SVGSurface) FillPathRule(c color.Color, shape Shape, rule FillRule) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	var p svgPath
	if err := emit(&p, shape); err != nil {
		return err
	}
	s.page()
	s.path(p.String(), fillStyle(c, rule))
	return s.flush()
}

// Stroke outlines shape with pen.
func (s *SVGSurface) Stroke(pen Pen, shape Shape) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	var p svgPath
	if err := emit(&p, shape); err != nil {
		return err
	}
	s.page()
	s.path(p.String(), strokeStyle(pen.color, pen.width))
	return s.flush()
}

// Print draws text with its baseline starting at pos. System fonts become
// a <text> element; user fonts are drawn glyph by glyph as paths.
func (s *SVGSurface) Print(font Font, pos Position, text string) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	switch face := font.face.(type) {
	case *SystemFont:
		if face == nil {
			return ErrNilFontFace
		}
		s.page()
		s.canvas.Gtransform(fmt.Sprintf("translate(%s,%s)", svgNum(pos.X), svgNum(pos.Y)))
		s.canvas.Text(0, 0, printText(text), textStyle(face, font))
		s.canvas.Gend()
	case *UserFont:
		if face == nil {
			return ErrNilFontFace
		}
		s.page()
		if err := printGlyphs(&svgGlyphs{s: s}, face, font, pos, text); err != nil {
			return err
		}
	default:
		return ErrNilFontFace
	}
	return s.flush()
}

// ShowPage completes the current page, which may be blank, and starts a
// new one.
func (s *SVGSurface) ShowPage() error {
	if s.closed {
		return ErrSurfaceClosed
	}
	s.page()
	s.canvas.Gend()
	s.pages++
	s.pageOpen = false
	return s.flush()
}

// Close completes a pending page, ends the document and flushes it. A
// surface closed without any page gets one blank page. Files opened by
// NewSVGSurface are closed. It is safe to call more than once.
func (s *SVGSurface) Close() error {
	if s.closed {
		return nil
	}
	var err error
	if s.pageOpen || s.pages == 0 {
		err = s.ShowPage()
	}
	s.closed = true
	s.canvas.End()
	if ferr := s.flush(); err == nil {
		err = ferr
	}
	if s.file != nil {
		if cerr := s.file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("graphics: close %s: %w", s.name, cerr)
		}
	}
	if err != nil {
		return err
	}
	if s.name != "" {
		Logger().Info("svg written", "file", s.name, "pages", s.pages)
	}
	return nil
}

// flush hands the buffered elements of the current call to the underlying
// writer. Write errors are sticky in the buffer, so every later call
// reports them too.
func (s *SVGSurface) flush() error {
	if err := s.buf.Flush(); err != nil {
		return fmt.Errorf("graphics: write svg: %w", err)
	}
	return nil
}

// page opens the group of the current page if needed.
func (s *SVGSurface) page() {
	if s.pageOpen {
		return
	}
	s.canvas.Gid(fmt.Sprintf("page-%d", s.pages+1))
	s.pageOpen = true
}

func (s *SVGSurface) path(d, style string) {
	if d == "" {
		return
	}
	s.canvas.Path(d, style)
}

// svgGlyphs paints glyph paths of a user font as <path> elements.
type svgGlyphs struct {
	svgPath
	s *SVGSurface
}

func (g *svgGlyphs) fillGlyph(c Color) error {
	g.s.path(g.String(), fillStyle(c, FillRuleNonZero))
	g.clearPath()
	return nil
}

func (g *svgGlyphs) strokeGlyph(c Color, width float64) error {
	g.s.path(g.String(), strokeStyle(c, width))
	g.clearPath()
	return nil
}

// svgPath builds the d attribute of an SVG path.
type svgPath struct {
	b      strings.Builder
	x, y   float64
	hasPos bool
}

func (p *svgPath) String() string { return strings.TrimSpace(p.b.String()) }

func (p *svgPath) clearPath() {
	p.b.Reset()
	p.hasPos = false
}

func (p *svgPath) cmd(op string, args ...float64) {
	p.b.WriteString(op)
	for i, a := range args {
		if i > 0 {
			p.b.WriteByte(' ')
		}
		p.b.WriteString(svgNum(a))
	}
	p.b.WriteByte(' ')
}

func (p *svgPath) MoveTo(x, y float64) {
	p.cmd("M", x, y)
	p.x, p.y, p.hasPos = x, y, true
}

func (p *svgPath) LineTo(x, y float64) {
	if !p.hasPos {
		p.MoveTo(x, y)
		return
	}
	p.cmd("L", x, y)
	p.x, p.y = x, y
}

func (p *svgPath) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.cmd("h", w)
	p.cmd("v", h)
	p.cmd("h", -w)
	p.ClosePath()
}

func (p *svgPath) ClosePath() {
	p.b.WriteString("Z ")
}

// Arc appends a clockwise (in y-down coordinates) circular arc. A line
// joins the current point to the arc start, as for a raster path. Arcs with
// non-finite parameters are dropped.
func (p *svgPath) Arc(cx, cy, r, angle1, angle2 float64) {
	if !finite(cx, cy, r, angle1, angle2) {
		return
	}
	angle1, sweep := arcSpan(angle1, angle2)
	angle2 = angle1 + sweep
	x0, y0 := cx+r*math.Cos(angle1), cy+r*math.Sin(angle1)
	switch {
	case !p.hasPos:
		p.MoveTo(x0, y0)
	case svgNum(p.x) != svgNum(x0) || svgNum(p.y) != svgNum(y0):
		p.LineTo(x0, y0)
	}

	n := int(math.Ceil((angle2 - angle1) / (math.Pi / 2)))
	step := (angle2 - angle1) / float64(n)
	for i := 1; i <= n; i++ {
		a := angle1 + float64(i)*step
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		p.cmd("A", r, r, 0, 0, 1, x, y)
		p.x, p.y = x, y
	}
}

// svgNum formats v with at most three decimals.
func svgNum(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// paint returns the hex color and opacity of c.
func paint(c color.Color) (string, string) {
	r, g, b, a := normalize(c)
	return colorful.Color{R: r, G: g, B: b}.Hex(), svgNum(a)
}

func fillStyle(c color.Color, rule FillRule) string {
	hex, opacity := paint(c)
	return fmt.Sprintf("fill:%s;fill-opacity:%s;fill-rule:%s;stroke:none", hex, opacity, rule)
}

func strokeStyle(c color.Color, width float64) string {
	hex, opacity := paint(c)
	return fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%s;stroke-width:%s", hex, opacity, svgNum(width))
}

func textStyle(face *SystemFont, font Font) string {
	hex, opacity := paint(font.color)
	style := fmt.Sprintf("font-family:%s;font-size:%s;fill:%s;fill-opacity:%s",
		cssIdent(face.family), svgNum(font.size), hex, opacity)
	if face.slant != SlantNormal {
		style += ";font-style:" + face.slant.String()
	}
	if face.weight == WeightBold {
		style += ";font-weight:bold"
	}
	return style
}

// cssIdent strips characters that cannot appear unescaped in a style
// attribute.
func cssIdent(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '"', '\'', '<', '>', '&', ';', ':', '=':
			return -1
		}
		return r
	}, s)
}
