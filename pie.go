package chartgeom

import (
	"math"
)

// Sector is a slice of a pie or donut. Angles are in radians, clockwise on
// screen, and End is never lower than Start.
type Sector struct {
	Center Point
	Inner  float64
	Outer  float64
	Start  float64
	End    float64
}

func (s Sector) Mid() float64 {
	return s.Start + (s.End-s.Start)/2
}

func (s Sector) Contains(p Point) bool {
	if s.End <= s.Start {
		return false
	}
	d := s.Center.Distance(p)
	if d < s.Inner || d > s.Outer {
		return false
	}
	a := math.Atan2(p.Y-s.Center.Y, p.X-s.Center.X) - s.Start
	a = math.Mod(a, fullcircle)
	if a < 0 {
		a += fullcircle
	}
	return a < s.End-s.Start
}

func (s Sector) Path() Path {
	return sectorPath(s)
}

type pieGeometry struct {
	shapes []Shape
}

func newPieGeometry(snap Snapshot, s valueSerie, inner float64, palette Palette) pieGeometry {
	var (
		geo   pieGeometry
		total float64
		outer = snap.Radius
	)
	for i := 0; i < s.Len(); i++ {
		total += pieValue(s.ValueAt(i))
	}
	if total <= 0 || outer <= 0 {
		return geo
	}
	if inner < 0 || inner >= 1 || math.IsNaN(inner) {
		inner = 0
	}
	var angle float64
	for i := 0; i < s.Len(); i++ {
		var (
			val  = pieValue(s.ValueAt(i))
			span = val / total * fullcircle
			sec  = Sector{
				Center: snap.Center,
				Inner:  inner * outer,
				Outer:  outer,
				Start:  angle,
				End:    angle + span,
			}
			mid = sec.Mid()
		)
		sh := Shape{
			Item:   i,
			Value:  s.ValueAt(i),
			Sector: sec,
			Point:  PolarPoint(sec.Center, sec.Outer, mid),
			Anchor: PolarPoint(sec.Center, (sec.Inner+sec.Outer)/2, mid),
			Base:   PolarPoint(sec.Center, sec.Outer, mid),
			Fill:   palette.Color(i),
		}
		geo.shapes = append(geo.shapes, sh)
		angle += span
	}
	return geo
}

func pieValue(v float64) float64 {
	if !isFinite(v) || v < 0 {
		return 0
	}
	return v
}

func (g pieGeometry) Shapes() []Shape {
	return g.shapes
}

func (g pieGeometry) Path() Path {
	var pat Path
	for _, s := range g.shapes {
		pat = append(pat, s.Sector.Path()...)
	}
	return pat
}

func (g pieGeometry) Contains(x, y, _ float64) bool {
	_, ok := g.DataAt(x, y, 0)
	return ok
}

func (g pieGeometry) DataAt(x, y, _ float64) (int, bool) {
	pt := NewPoint(x, y)
	for _, s := range g.shapes {
		if s.Sector.Contains(pt) {
			return s.Item, true
		}
	}
	return -1, false
}

func (g pieGeometry) Tooltip(item int) (Point, bool) {
	return tooltipOf(g.shapes, item)
}
