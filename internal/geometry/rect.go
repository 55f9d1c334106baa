package geometry

// Point is a pixel position in root-window coordinates.
type Point struct {
	X int
	Y int
}

// Rect describes a rectangular screen region. X/Y is the top-left corner,
// in the same pixel units the window system reports.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() int { return r.X }

// Right returns the x coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// CenterX returns the x coordinate of the rectangle's center.
func (r Rect) CenterX() int { return r.X + r.Width/2 }

// CenterY returns the y coordinate of the rectangle's center.
func (r Rect) CenterY() int { return r.Y + r.Height/2 }

// Center returns the rectangle's center point.
func (r Rect) Center() Point { return Point{X: r.CenterX(), Y: r.CenterY()} }

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive so that adjacent monitors never both claim a shared edge.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}
