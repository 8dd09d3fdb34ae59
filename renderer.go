package chartgeom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	fullcircle = 2 * math.Pi
	halfcircle = math.Pi
	deg2rad    = math.Pi / 180
)

type PathOp int

const (
	MoveTo PathOp = iota
	LineTo
	CubicTo
	ArcTo
	ClosePath
)

// Segment is one command of a path. CubicTo carries both control points
// before the end point.
type Segment struct {
	Op     PathOp
	Points []Point
	Radius float64
	Large  bool
	Sweep  bool
}

type Path []Segment

func (p *Path) MoveTo(pt Point) {
	*p = append(*p, Segment{Op: MoveTo, Points: []Point{pt}})
}

func (p *Path) LineTo(pt Point) {
	*p = append(*p, Segment{Op: LineTo, Points: []Point{pt}})
}

func (p *Path) CubicTo(ctrl1, ctrl2, pt Point) {
	*p = append(*p, Segment{Op: CubicTo, Points: []Point{ctrl1, ctrl2, pt}})
}

func (p *Path) ArcTo(pt Point, radius float64, large, sweep bool) {
	*p = append(*p, Segment{
		Op:     ArcTo,
		Points: []Point{pt},
		Radius: radius,
		Large:  large,
		Sweep:  sweep,
	})
}

func (p *Path) Close() {
	*p = append(*p, Segment{Op: ClosePath})
}

// Vertices returns the end point of every segment.
func (p Path) Vertices() []Point {
	var list []Point
	for _, s := range p {
		if n := len(s.Points); n > 0 {
			list = append(list, s.Points[n-1])
		}
	}
	return list
}

// String gives the path in the SVG path data syntax.
func (p Path) String() string {
	var w strings.Builder
	for i, s := range p {
		if i > 0 {
			w.WriteByte(' ')
		}
		switch s.Op {
		case MoveTo:
			w.WriteString("M")
		case LineTo:
			w.WriteString("L")
		case CubicTo:
			w.WriteString("C")
		case ArcTo:
			r := formatCoord(s.Radius)
			fmt.Fprintf(&w, "A%s %s 0 %d %d", r, r, flag(s.Large), flag(s.Sweep))
		case ClosePath:
			w.WriteString("Z")
			continue
		}
		for j, pt := range s.Points {
			if j > 0 || s.Op == ArcTo {
				w.WriteByte(' ')
			}
			w.WriteString(formatCoord(pt.X))
			w.WriteByte(' ')
			w.WriteString(formatCoord(pt.Y))
		}
	}
	return w.String()
}

func (p Path) swap() Path {
	for i := range p {
		pts := make([]Point, len(p[i].Points))
		for j := range p[i].Points {
			pts[j] = p[i].Points[j].Reverse()
		}
		p[i].Points = pts
	}
	return p
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

type Interpolation int

const (
	Linear Interpolation = iota
	Spline
	Step
	StepBefore
	StepAfter
)

const DefaultStretch = 0.5

func ParseInterpolation(str string) (Interpolation, error) {
	switch strings.ToLower(str) {
	case "", "line", "linear":
		return Linear, nil
	case "spline", "cubic":
		return Spline, nil
	case "step":
		return Step, nil
	case "step-before":
		return StepBefore, nil
	case "step-after":
		return StepAfter, nil
	default:
		return 0, fmt.Errorf("%s: unrecognized interpolation", str)
	}
}

// linePath joins pts following the interpolation. Points with a NaN
// coordinate are missing: unless connect is set the path starts again
// after them. With swapped set, the category axis is Y.
func linePath(pts []Point, interp Interpolation, stretch float64, connect, swapped bool) Path {
	if swapped {
		list := make([]Point, len(pts))
		for i := range pts {
			list[i] = pts[i].Reverse()
		}
		return linePath(list, interp, stretch, connect, false).swap()
	}
	if stretch <= 0 {
		stretch = DefaultStretch
	}
	var (
		pat   Path
		ori   Point
		nan   bool
		first = true
	)
	for _, pos := range pts {
		if math.IsNaN(pos.X) || math.IsNaN(pos.Y) {
			nan = true
			continue
		}
		if first || (nan && !connect) {
			pat.MoveTo(pos)
			first, nan, ori = false, false, pos
			continue
		}
		nan = false
		switch interp {
		case Spline:
			var (
				diff  = (pos.X - ori.X) * stretch
				ctrl1 = ori.Add(diff, 0)
				ctrl2 = pos.Add(-diff, 0)
			)
			pat.CubicTo(ctrl1, ctrl2, pos)
		case Step:
			mid := ori.X + (pos.X-ori.X)/2
			pat.LineTo(NewPoint(mid, ori.Y))
			pat.LineTo(NewPoint(mid, pos.Y))
			pat.LineTo(pos)
		case StepAfter:
			pat.LineTo(NewPoint(pos.X, ori.Y))
			pat.LineTo(pos)
		case StepBefore:
			pat.LineTo(NewPoint(ori.X, pos.Y))
			pat.LineTo(pos)
		default:
			pat.LineTo(pos)
		}
		ori = pos
	}
	return pat
}

func sectorPath(s Sector) Path {
	var (
		pat  Path
		span = s.End - s.Start
	)
	if span <= 0 {
		return pat
	}
	if span >= fullcircle-1e-9 {
		mid := s.Start + halfcircle
		pat.MoveTo(PolarPoint(s.Center, s.Outer, s.Start))
		pat.ArcTo(PolarPoint(s.Center, s.Outer, mid), s.Outer, false, true)
		pat.ArcTo(PolarPoint(s.Center, s.Outer, s.End), s.Outer, false, true)
		if s.Inner > 0 {
			pat.MoveTo(PolarPoint(s.Center, s.Inner, s.End))
			pat.ArcTo(PolarPoint(s.Center, s.Inner, mid), s.Inner, false, false)
			pat.ArcTo(PolarPoint(s.Center, s.Inner, s.Start), s.Inner, false, false)
		}
		pat.Close()
		return pat
	}
	large := span > halfcircle
	pat.MoveTo(PolarPoint(s.Center, s.Outer, s.Start))
	pat.ArcTo(PolarPoint(s.Center, s.Outer, s.End), s.Outer, large, true)
	if s.Inner > 0 {
		pat.LineTo(PolarPoint(s.Center, s.Inner, s.End))
		pat.ArcTo(PolarPoint(s.Center, s.Inner, s.Start), s.Inner, large, false)
	} else {
		pat.LineTo(s.Center)
	}
	pat.Close()
	return pat
}
