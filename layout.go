package chartgeom

import (
	"math"
)

// Shape is the geometry computed for one item of a series. Depending on
// the family of the series, Rect (bands) or Sector (pies) is set.
type Shape struct {
	Item  int
	Value float64
	// Point is the position of the value: the bar tip, the line vertex or
	// the outer middle of a sector.
	Point Point
	// Anchor is where a tooltip attaches.
	Anchor Point
	// Base is where a data label attaches.
	Base   Point
	Rect   Rect
	Sector Sector
	Fill   string
}

// Geometry is the common view on the computed geometry of a series,
// whatever its family.
type Geometry interface {
	Shapes() []Shape
	Path() Path
	Contains(x, y, tolerance float64) bool
	DataAt(x, y, tolerance float64) (int, bool)
	Tooltip(item int) (Point, bool)
}

func tooltipOf(shapes []Shape, item int) (Point, bool) {
	for _, s := range shapes {
		if s.Item == item {
			return s.Anchor, true
		}
	}
	return Point{}, false
}

type SerieLayout[T any] struct {
	Serie[T]
	// Index is the position of the series in Chart.Series.
	Index int
	Geometry
}

// Layout is the result of one layout pass. It is never modified once
// returned by Chart.Layout.
type Layout[T any] struct {
	Snapshot
	Width  float64
	Height float64
	// Band is the size allotted to one category, zero without banded series.
	Band float64

	CategoryTicks []Tick
	ValueTicks    []Tick

	Series    []SerieLayout[T]
	Tolerance float64
}

// DataAt looks for the item under (x, y), starting with the series drawn
// last. It returns the position of the series in Series and the index of
// the item.
func (l *Layout[T]) DataAt(x, y float64) (int, int, bool) {
	for i := len(l.Series) - 1; i >= 0; i-- {
		item, ok := l.Series[i].DataAt(x, y, l.Tolerance)
		if ok {
			return i, item, true
		}
	}
	return -1, -1, false
}

// Contains reports whether (x, y) hits any series.
func (l *Layout[T]) Contains(x, y float64) bool {
	for i := range l.Series {
		if l.Series[i].Contains(x, y, l.Tolerance) {
			return true
		}
	}
	return false
}

func (l *Layout[T]) Tooltip(serie, item int) (Point, bool) {
	if serie < 0 || serie >= len(l.Series) {
		return Point{}, false
	}
	return l.Series[serie].Tooltip(item)
}

// DataLabels positions a label next to each item of the given series.
func (l *Layout[T]) DataLabels(serie int, offsetX, offsetY float64) []Label {
	if serie < 0 || serie >= len(l.Series) {
		return nil
	}
	var (
		sl     = l.Series[serie]
		sys    = sl.Coordinates()
		origin *Point
		list   []Label
	)
	if sys == Polar {
		center := l.Center
		origin = &center
	}
	for _, s := range sl.Shapes() {
		var text string
		if sl.Kind == KindPie {
			text = formatNumber(sl.Format, s.Value)
		} else {
			text = l.Value.FormatTick(sl.Format, s.Value)
		}
		pos, anchor := PositionLabel(sys, s.Base, origin, offsetX, offsetY)
		lbl := Label{
			Item:   s.Item,
			Text:   text,
			Pos:    pos,
			Anchor: anchor,
		}
		list = append(list, lbl)
	}
	return list
}

// TrendLine draws the regression line of a cartesian series across the
// whole category domain.
func (l *Layout[T]) TrendLine(serie int) Path {
	var pat Path
	if serie < 0 || serie >= len(l.Series) || l.System != Cartesian {
		return pat
	}
	a, b := l.Series[serie].Trend()
	if !isFinite(a) || !isFinite(b) {
		return pat
	}
	dom := l.Category.Domain()
	if !dom.Finite() {
		return pat
	}
	var (
		x0 = dom.Start
		x1 = dom.End
	)
	if lg, ok := l.Category.(LogScale); ok {
		x0, x1 = lg.Input.Start, lg.Input.End
	}
	pat.MoveTo(l.Point(x0, a*x0+b))
	pat.LineTo(l.Point(x1, a*x1+b))
	return pat
}

// ValueLine draws a line across the chart at the given value. In polar
// mode the line is a circle.
func (l *Layout[T]) ValueLine(value float64) Path {
	var pat Path
	if math.IsNaN(l.Value.Value(value)) {
		return pat
	}
	if l.System == Polar {
		radius := l.ValuePos(value)
		sec := Sector{
			Center: l.Center,
			Outer:  math.Abs(radius),
			End:    fullcircle,
		}
		return sectorPath(sec)
	}
	var (
		rg  = l.Category.Range()
		pos = l.ValuePos(value)
	)
	pat.MoveTo(l.place(rg.Start, pos))
	pat.LineTo(l.place(rg.End, pos))
	return pat
}
