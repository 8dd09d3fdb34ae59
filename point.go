package chartgeom

import (
	"math"
)

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) Reverse() Point {
	return Point{
		X: p.Y,
		Y: p.X,
	}
}

func (p Point) Add(x, y float64) Point {
	p.X += x
	p.Y += y
	return p
}

func (p Point) Distance(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// PolarPoint returns the cartesian position at the given radius and
// angle (radians) around center.
func PolarPoint(center Point, radius, angle float64) Point {
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// Rect is always normalized: Min holds the smallest coordinates.
type Rect struct {
	Min Point
	Max Point
}

func NewRect(x0, y0, x1, y1 float64) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{
		Min: NewPoint(x0, y0),
		Max: NewPoint(x1, y1),
	}
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Center() Point {
	return NewPoint((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) Polygon() Polygon {
	return Polygon{
		r.Min,
		NewPoint(r.Max.X, r.Min.Y),
		r.Max,
		NewPoint(r.Min.X, r.Max.Y),
	}
}

type Polygon []Point

// Contains reports whether p is inside the polygon using the even-odd
// crossing rule.
func (g Polygon) Contains(p Point) bool {
	if len(g) < 3 {
		return false
	}
	var (
		inside bool
		j      = len(g) - 1
	)
	for i := range g {
		a, b := g[i], g[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
