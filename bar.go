package chartgeom

import (
	"math"
)

type valueSerie interface {
	Counter
	Valuer
}

// stackOffsets gives for each series the sum of the values of the series
// before it at the same category. The returned range covers every
// cumulative sum.
func stackOffsets[S valueSerie](list []S) ([][]float64, Range) {
	var (
		sums    = make(map[float64]float64)
		offsets = make([][]float64, len(list))
		rg      = emptyRange()
	)
	for i, s := range list {
		offsets[i] = make([]float64, s.Len())
		for j := range offsets[i] {
			cat, val := s.CategoryAt(j), s.ValueAt(j)
			if !isFinite(cat) {
				continue
			}
			offsets[i][j] = sums[cat]
			if !isFinite(val) {
				continue
			}
			sums[cat] += val
			rg = rg.Include(sums[cat])
		}
	}
	return offsets, rg
}

// bandSize divides the category output in n+2 bands, the extra band being
// split at both ends of the axis.
func bandSize(out Range, n int) float64 {
	if n <= 0 {
		return 0
	}
	return math.Abs(out.Len()) / float64(n+2)
}

// groupSlice gives the offset from the band start and the size of the
// slice of the index-th series among count grouped series.
func groupSlice(band, margin float64, index, count int) (float64, float64) {
	if count <= 0 {
		return 0, band
	}
	n := float64(count)
	size := band/n - margin + margin/n
	if size <= 0 || margin < 0 {
		margin = 0
		size = band / n
	}
	return float64(index) * (size + margin), size
}

type bandContext struct {
	band    float64
	margin  float64
	index   int
	count   int
	stacked bool
	offsets []float64
}

type barGeometry struct {
	shapes []Shape
}

func newBarGeometry(snap Snapshot, s valueSerie, ctx bandContext) barGeometry {
	var (
		geo  barGeometry
		dom  = snap.Value.Domain()
		base = math.Min(math.Max(0, dom.Min()), dom.Max())
		half = ctx.band / 2
	)
	if !dom.Finite() {
		base = 0
	}
	offset, size := groupSlice(ctx.band, ctx.margin, ctx.index, ctx.count)
	for i := 0; i < s.Len(); i++ {
		cat, val := s.CategoryAt(i), s.ValueAt(i)
		if !isFinite(cat) || !isFinite(val) {
			continue
		}
		var (
			center   = snap.CategoryPos(cat)
			lo, hi   float64
			from, to float64
		)
		if ctx.stacked {
			var running float64
			if i < len(ctx.offsets) {
				running = ctx.offsets[i]
			}
			lo, hi = center-half, center+half
			from = snap.ValuePos(math.Max(math.Max(0, dom.Min()), running))
			to = snap.ValuePos(val + running)
		} else {
			lo = center - half + offset
			hi = lo + size
			from = snap.ValuePos(base)
			to = snap.ValuePos(val)
		}
		sh := Shape{
			Item:  i,
			Value: val,
		}
		if snap.Swapped {
			sh.Rect = NewRect(from, lo, to, hi)
			sh.Point = NewPoint(to, (lo+hi)/2)
		} else {
			sh.Rect = NewRect(lo, from, hi, to)
			sh.Point = NewPoint((lo+hi)/2, to)
		}
		sh.Anchor = sh.Point
		if ctx.stacked {
			sh.Anchor = sh.Rect.Center()
		}
		sh.Base = sh.Anchor
		geo.shapes = append(geo.shapes, sh)
	}
	return geo
}

func (g barGeometry) Shapes() []Shape {
	return g.shapes
}

func (g barGeometry) Path() Path {
	var pat Path
	for _, s := range g.shapes {
		poly := s.Rect.Polygon()
		pat.MoveTo(poly[0])
		for _, p := range poly[1:] {
			pat.LineTo(p)
		}
		pat.Close()
	}
	return pat
}

func (g barGeometry) Contains(x, y, tolerance float64) bool {
	if tolerance < 0 {
		tolerance = 0
	}
	pt := NewPoint(x, y)
	for _, s := range g.shapes {
		r := s.Rect
		r.Min = r.Min.Add(-tolerance, -tolerance)
		r.Max = r.Max.Add(tolerance, tolerance)
		if r.Contains(pt) {
			return true
		}
	}
	return false
}

// DataAt scans the bars in order and returns the first one under (x, y).
func (g barGeometry) DataAt(x, y, _ float64) (int, bool) {
	pt := NewPoint(x, y)
	for _, s := range g.shapes {
		if s.Rect.Contains(pt) {
			return s.Item, true
		}
	}
	return -1, false
}

func (g barGeometry) Tooltip(item int) (Point, bool) {
	return tooltipOf(g.shapes, item)
}
