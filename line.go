package chartgeom

import (
	"math"
)

type lineOptions struct {
	interp  Interpolation
	stretch float64
	marker  Marker
	size    float64
	connect bool
	scatter bool
	closed  bool
}

type lineGeometry struct {
	shapes  []Shape
	path    Path
	swapped bool
	opts    lineOptions
}

func newLineGeometry(snap Snapshot, s valueSerie, opts lineOptions) lineGeometry {
	var (
		pts = make([]Point, s.Len())
		geo = lineGeometry{
			swapped: snap.Swapped && snap.System == Cartesian,
			opts:    opts,
		}
	)
	for i := range pts {
		cat, val := s.CategoryAt(i), s.ValueAt(i)
		pts[i] = snap.Point(cat, val)
		if !isFinite(pts[i].X) || !isFinite(pts[i].Y) {
			pts[i] = NewPoint(math.NaN(), math.NaN())
			continue
		}
		sh := Shape{
			Item:   i,
			Value:  val,
			Point:  pts[i],
			Anchor: pts[i],
			Base:   pts[i],
		}
		geo.shapes = append(geo.shapes, sh)
	}
	if opts.scatter {
		return geo
	}
	interp := opts.interp
	if snap.System == Polar && interp != Linear {
		interp = Linear
	}
	geo.path = linePath(pts, interp, opts.stretch, opts.connect, geo.swapped)
	if opts.closed && len(geo.shapes) > 2 {
		geo.path.Close()
	}
	return geo
}

func (g lineGeometry) Shapes() []Shape {
	return g.shapes
}

func (g lineGeometry) Path() Path {
	return g.path
}

// Contains tests (x, y) against every segment of the line widened by
// tolerance across the category axis. A single point is tested against a
// square of tolerance around it.
func (g lineGeometry) Contains(x, y, tolerance float64) bool {
	pt := NewPoint(x, y)
	if len(g.shapes) == 1 {
		return squareOf(g.shapes[0].Point, tolerance).Contains(pt)
	}
	if g.opts.scatter {
		for _, s := range g.shapes {
			if squareOf(s.Point, tolerance).Contains(pt) {
				return true
			}
		}
		return false
	}
	for i := 1; i < len(g.shapes); i++ {
		prev, curr := g.shapes[i-1], g.shapes[i]
		if curr.Item != prev.Item+1 && !g.opts.connect {
			continue
		}
		if g.segment(prev.Point, curr.Point, tolerance).Contains(pt) {
			return true
		}
	}
	return false
}

func (g lineGeometry) segment(a, b Point, tolerance float64) Polygon {
	if g.swapped {
		if a.Y == b.Y {
			return NewRect(a.X, a.Y-tolerance, b.X, b.Y+tolerance).Polygon()
		}
		return Polygon{
			a.Add(-tolerance, 0),
			b.Add(-tolerance, 0),
			b.Add(tolerance, 0),
			a.Add(tolerance, 0),
		}
	}
	if a.X == b.X {
		return NewRect(a.X-tolerance, a.Y, b.X+tolerance, b.Y).Polygon()
	}
	return Polygon{
		a.Add(0, -tolerance),
		b.Add(0, -tolerance),
		b.Add(0, tolerance),
		a.Add(0, tolerance),
	}
}

// DataAt returns the first item whose marker is under (x, y). Without
// marker, a square of tolerance around the point is used.
func (g lineGeometry) DataAt(x, y, tolerance float64) (int, bool) {
	pt := NewPoint(x, y)
	for _, s := range g.shapes {
		if g.opts.marker != MarkerNone && g.opts.marker.Contains(s.Point, g.opts.size, pt) {
			return s.Item, true
		}
		if squareOf(s.Point, tolerance).Contains(pt) {
			return s.Item, true
		}
	}
	return -1, false
}

func (g lineGeometry) Tooltip(item int) (Point, bool) {
	return tooltipOf(g.shapes, item)
}
