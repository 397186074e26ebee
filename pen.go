package graphics

// DefaultPenWidth is the stroke width of a pen built without one.
const DefaultPenWidth = 2.0

// Pen is an immutable stroke style: a color and a line width in surface
// units.
type Pen struct {
	color Color
	width float64
}

// NewPen returns an opaque black pen of the given width.
func NewPen(width float64) Pen {
	return Pen{color: Black, width: width}
}

// NewColorPen returns a pen of the given color and width.
func NewColorPen(c Color, width float64) Pen {
	return Pen{color: c, width: width}
}

// Color returns the stroke color.
func (p Pen) Color() Color { return p.color }

// Width returns the stroke width.
func (p Pen) Width() float64 { return p.width }

// WithColor returns a copy of p stroking in c.
func (p Pen) WithColor(c Color) Pen {
	p.color = c
	return p
}

// WithWidth returns a copy of p with the given width.
func (p Pen) WithWidth(width float64) Pen {
	p.width = width
	return p
}
