package chartgeom

import (
	"math"
	"testing"
)

func countOps(p Path, op PathOp) int {
	var n int
	for _, s := range p {
		if s.Op == op {
			n++
		}
	}
	return n
}

func TestLineContainsSinglePoint(t *testing.T) {
	var (
		snap  = cartesianSnapshot()
		serie = Serie[pair]{Kind: KindLine, Items: []pair{{5, 5}}, Category: getX, Value: getY}
		geo   = newLineGeometry(snap, serie, lineOptions{})
		pt    = snap.Point(5, 5)
	)
	if !geo.Contains(pt.X+4, pt.Y, 5) {
		t.Errorf("point within tolerance should be found")
	}
	if geo.Contains(pt.X+10, pt.Y, 5) {
		t.Errorf("point outside tolerance should not be found")
	}
	if !geo.Contains(pt.X-5, pt.Y+5, 5) {
		t.Errorf("corner of the tolerance square should be found")
	}
}

func TestLineContainsSegments(t *testing.T) {
	var (
		snap  = cartesianSnapshot()
		serie = Serie[pair]{Kind: KindLine, Items: []pair{{0, 0}, {10, 10}}, Category: getX, Value: getY}
		geo   = newLineGeometry(snap, serie, lineOptions{})
	)
	tests := []struct {
		X, Y float64
		Want bool
	}{
		{X: 50, Y: 50, Want: true},
		{X: 50, Y: 54, Want: true},
		{X: 50, Y: 46, Want: true},
		{X: 50, Y: 60, Want: false},
		{X: 20, Y: 50, Want: false},
		{X: 120, Y: -20, Want: false},
	}
	for _, tt := range tests {
		if got := geo.Contains(tt.X, tt.Y, 5); got != tt.Want {
			t.Errorf("(%f, %f): want %t, got %t", tt.X, tt.Y, tt.Want, got)
		}
	}
}

func TestLineContainsVertical(t *testing.T) {
	var (
		snap  = cartesianSnapshot()
		serie = Serie[pair]{Kind: KindLine, Items: []pair{{5, 0}, {5, 10}}, Category: getX, Value: getY}
		geo   = newLineGeometry(snap, serie, lineOptions{})
	)
	if !geo.Contains(53, 50, 5) {
		t.Errorf("point near a vertical segment should be found")
	}
	if geo.Contains(60, 50, 5) {
		t.Errorf("point away from a vertical segment should not be found")
	}
}

func TestLineGaps(t *testing.T) {
	items := []pair{{0, 1}, {1, math.NaN()}, {2, 3}, {3, 4}}
	var (
		snap  = cartesianSnapshot()
		serie = Serie[pair]{Kind: KindLine, Items: items, Category: getX, Value: getY}
	)
	geo := newLineGeometry(snap, serie, lineOptions{})
	if n := countOps(geo.Path(), MoveTo); n != 2 {
		t.Errorf("gap should start a new path, got %d MoveTo", n)
	}
	if n := len(geo.Shapes()); n != 3 {
		t.Errorf("missing value should not give a shape, got %d", n)
	}
	mid := snap.Point(1, 2)
	if geo.Contains(mid.X, mid.Y, 1) {
		t.Errorf("gap should not be hit")
	}

	geo = newLineGeometry(snap, serie, lineOptions{connect: true})
	if n := countOps(geo.Path(), MoveTo); n != 1 {
		t.Errorf("connected path should have a single MoveTo, got %d", n)
	}
	if !geo.Contains(mid.X, mid.Y, 1) {
		t.Errorf("connected gap should be hit")
	}
}

func TestLineInterpolation(t *testing.T) {
	var (
		snap  = cartesianSnapshot()
		items = []pair{{0, 0}, {5, 5}, {10, 0}}
		serie = Serie[pair]{Kind: KindLine, Items: items, Category: getX, Value: getY}
	)
	tests := []struct {
		Interpolation
		Op   PathOp
		Want int
	}{
		{Interpolation: Linear, Op: LineTo, Want: 2},
		{Interpolation: Step, Op: LineTo, Want: 6},
		{Interpolation: StepAfter, Op: LineTo, Want: 4},
		{Interpolation: StepBefore, Op: LineTo, Want: 4},
		{Interpolation: Spline, Op: CubicTo, Want: 2},
	}
	for _, tt := range tests {
		geo := newLineGeometry(snap, serie, lineOptions{interp: tt.Interpolation})
		if got := countOps(geo.Path(), tt.Op); got != tt.Want {
			t.Errorf("%d: segments mismatched! want %d, got %d", tt.Interpolation, tt.Want, got)
		}
		vs := geo.Path().Vertices()
		if last := vs[len(vs)-1]; !almostEqual(last.X, 100) || !almostEqual(last.Y, 100) {
			t.Errorf("%d: path should end on the last point, got %+v", tt.Interpolation, last)
		}
	}
}

func TestStepVertices(t *testing.T) {
	pts := []Point{NewPoint(0, 0), NewPoint(10, 20)}
	pat := linePath(pts, Step, 0, false, false)
	want := []Point{
		NewPoint(0, 0),
		NewPoint(5, 0),
		NewPoint(5, 20),
		NewPoint(10, 20),
	}
	got := pat.Vertices()
	if len(got) != len(want) {
		t.Fatalf("vertices mismatched! want %d, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%d: vertex mismatched! want %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestScatterDataAt(t *testing.T) {
	var (
		snap  = cartesianSnapshot()
		items = []pair{{1, 1}, {5, 5}}
		serie = Serie[pair]{Kind: KindScatter, Items: items, Category: getX, Value: getY}
		opts  = lineOptions{scatter: true, marker: MarkerCircle, size: 10}
		geo   = newLineGeometry(snap, serie, opts)
	)
	if len(geo.Path()) != 0 {
		t.Errorf("scatter should not have a path")
	}
	pt := snap.Point(5, 5)
	item, ok := geo.DataAt(pt.X+3, pt.Y+3, 0)
	if !ok || item != 1 {
		t.Errorf("item 1 expected under its marker, got %d (%t)", item, ok)
	}
	if _, ok := geo.DataAt(pt.X+20, pt.Y, 2); ok {
		t.Errorf("no item expected away from markers")
	}
	if geo.Contains(30, 30, 2) {
		t.Errorf("scatter should not be hit between markers")
	}
}

func TestRadarClosed(t *testing.T) {
	var (
		snap = Snapshot{
			Category: NumberScaler(NewRange(0, 4), NewRange(-math.Pi/2, 3*math.Pi/2)),
			Value:    NumberScaler(NewRange(0, 10), NewRange(0, 100)),
			System:   Polar,
			Center:   NewPoint(100, 100),
			Radius:   100,
		}
		items = []pair{{0, 10}, {1, 10}, {2, 10}, {3, 10}}
		serie = Serie[pair]{Kind: KindRadar, Items: items, Category: getX, Value: getY}
		geo   = newLineGeometry(snap, serie, lineOptions{interp: Spline, closed: true})
	)
	pat := geo.Path()
	if pat[len(pat)-1].Op != ClosePath {
		t.Errorf("radar path should be closed")
	}
	if countOps(pat, CubicTo) != 0 {
		t.Errorf("polar lines should be straight")
	}
	tip, ok := geo.Tooltip(1)
	if !ok || !almostEqual(tip.X, 200) || !almostEqual(tip.Y, 100) {
		t.Errorf("tooltip mismatched! got %+v", tip)
	}
}
