package graphics

import "math"

// Position is a point in surface coordinates: origin at the top-left,
// x to the right, y down.
type Position struct {
	X, Y float64
}

// Pos is a convenience function to create a Position.
func Pos(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Add returns the component-wise sum of p and q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of p and q.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the euclidean distance between p and q.
func (p Position) Distance(q Position) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}
