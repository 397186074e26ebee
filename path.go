package graphics

import (
	"fmt"
	"math"
)

// Shape is one drawable path primitive: Line, Rectangle, Arc or a composite
// Path. The set is closed; surfaces dispatch on it with a type switch.
type Shape interface {
	isShape()
}

// Line is a straight segment from Start to End.
type Line struct {
	Start, End Position
}

func (Line) isShape() {}

// NewLine returns the segment (x1, y1)-(x2, y2).
func NewLine(x1, y1, x2, y2 float64) Line {
	return Line{Start: Pos(x1, y1), End: Pos(x2, y2)}
}

// Rectangle is the axis-aligned rectangle spanned by two opposite corners.
type Rectangle struct {
	Corner1, Corner2 Position
}

func (Rectangle) isShape() {}

// Rect returns the rectangle with top-left corner (x, y) and size w×h.
func Rect(x, y, w, h float64) Rectangle {
	return Rectangle{Corner1: Pos(x, y), Corner2: Pos(x+w, y+h)}
}

// Arc is a circular arc around Center from angle Start to angle Stop, in
// radians, measured from the positive x axis towards positive y.
// A Stop smaller than Start wraps by whole turns, so the arc always runs in
// the direction of increasing angle and sweeps at most one full turn.
type Arc struct {
	Center      Position
	Radius      float64
	Start, Stop float64
}

func (Arc) isShape() {}

// NewArc returns the arc around (cx, cy).
func NewArc(cx, cy, r, start, stop float64) Arc {
	return Arc{Center: Pos(cx, cy), Radius: r, Start: start, Stop: stop}
}

// Circle returns a full arc around (cx, cy).
func Circle(cx, cy, r float64) Arc {
	return NewArc(cx, cy, r, 0, 2*math.Pi)
}

// StartPoint returns the point at angle Start.
func (a Arc) StartPoint() Position {
	return Pos(a.Center.X+a.Radius*math.Cos(a.Start), a.Center.Y+a.Radius*math.Sin(a.Start))
}

// span returns the start angle reduced to [0, 2π) and the swept angle in
// [0, 2π]. A Stop below Start wraps by whole turns; sweeps beyond one turn
// are drawn as a single full turn.
func (a Arc) span() (start, sweep float64) {
	return arcSpan(a.Start, a.Stop)
}

func arcSpan(angle1, angle2 float64) (start, sweep float64) {
	const turn = 2 * math.Pi
	sweep = angle2 - angle1
	if sweep < 0 {
		sweep = math.Mod(sweep, turn)
		if sweep < 0 {
			sweep += turn
		}
	}
	sweep = min(sweep, turn)
	start = math.Mod(angle1, turn)
	if start < 0 {
		start += turn
	}
	return start, sweep
}

// finite reports whether every v is neither NaN nor infinite.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Path is an ordered sequence of shapes. Shapes are stored by value, so a
// Path exclusively owns its members; adding a Path adds a copy of it.
// Shapes are emitted in insertion order, so later shapes paint over earlier
// ones.
type Path struct {
	shapes []Shape
}

func (Path) isShape() {}

// NewPath returns a path holding shapes in order.
func NewPath(shapes ...Shape) *Path {
	p := &Path{shapes: make([]Shape, 0, len(shapes))}
	for _, s := range shapes {
		p.Add(s)
	}
	return p
}

// Add appends s and returns p for chaining. Nil shapes are ignored.
func (p *Path) Add(s Shape) *Path {
	switch s := s.(type) {
	case nil:
	case *Path:
		if s != nil {
			p.shapes = append(p.shapes, s.clone())
		}
	case Path:
		p.shapes = append(p.shapes, s.clone())
	default:
		p.shapes = append(p.shapes, s)
	}
	return p
}

// IsEmpty reports whether the path holds no shapes.
func (p *Path) IsEmpty() bool {
	return len(p.shapes) == 0
}

// Len returns the number of shapes directly held by the path.
func (p *Path) Len() int {
	return len(p.shapes)
}

// Shapes returns a copy of the shapes in insertion order.
func (p *Path) Shapes() []Shape {
	out := make([]Shape, len(p.shapes))
	copy(out, p.shapes)
	return out
}

func (p Path) clone() Path {
	c := Path{shapes: make([]Shape, len(p.shapes))}
	for i, s := range p.shapes {
		if sub, ok := s.(Path); ok {
			s = sub.clone()
		}
		c.shapes[i] = s
	}
	return c
}

// pathSink receives path construction commands from shapes. Both backend
// drawing contexts and glyph canvases implement it.
type pathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Rectangle(x, y, w, h float64)
	Arc(cx, cy, r, angle1, angle2 float64)
	ClosePath()
}

// emit issues the backend primitives equivalent to s. Every primitive
// starts its own subpath. Non-finite geometry is rejected before anything
// reaches dst.
func emit(dst pathSink, s Shape) error {
	switch s := s.(type) {
	case Line:
		if !finite(s.Start.X, s.Start.Y, s.End.X, s.End.Y) {
			return fmt.Errorf("%w: line %+v", ErrInvalidShape, s)
		}
		dst.MoveTo(s.Start.X, s.Start.Y)
		dst.LineTo(s.End.X, s.End.Y)
	case Rectangle:
		if !finite(s.Corner1.X, s.Corner1.Y, s.Corner2.X, s.Corner2.Y) {
			return fmt.Errorf("%w: rectangle %+v", ErrInvalidShape, s)
		}
		x := math.Min(s.Corner1.X, s.Corner2.X)
		y := math.Min(s.Corner1.Y, s.Corner2.Y)
		dst.Rectangle(x, y, math.Abs(s.Corner2.X-s.Corner1.X), math.Abs(s.Corner2.Y-s.Corner1.Y))
	case Arc:
		if !finite(s.Center.X, s.Center.Y, s.Radius, s.Start, s.Stop) {
			return fmt.Errorf("%w: arc %+v", ErrInvalidShape, s)
		}
		start, sweep := s.span()
		dst.MoveTo(s.Center.X+s.Radius*math.Cos(start), s.Center.Y+s.Radius*math.Sin(start))
		dst.Arc(s.Center.X, s.Center.Y, s.Radius, start, start+sweep)
	case Path:
		for _, sub := range s.shapes {
			if err := emit(dst, sub); err != nil {
				return err
			}
		}
	case *Path:
		if s == nil {
			return ErrNilShape
		}
		return emit(dst, *s)
	case nil:
		return ErrNilShape
	default:
		return fmt.Errorf("graphics: unsupported shape %T", s)
	}
	return nil
}
