package chartgeom

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type CoordinateSystem int

const (
	Cartesian CoordinateSystem = iota
	Polar
)

func (c CoordinateSystem) String() string {
	if c == Polar {
		return "polar"
	}
	return "cartesian"
}

type Kind int

const (
	KindLine Kind = iota
	KindScatter
	KindRadar
	KindColumn
	KindBar
	KindStackedColumn
	KindStackedBar
	KindPie
)

var kindNames = map[Kind]string{
	KindLine:          "line",
	KindScatter:       "scatter",
	KindRadar:         "radar",
	KindColumn:        "column",
	KindBar:           "bar",
	KindStackedColumn: "stacked-column",
	KindStackedBar:    "stacked-bar",
	KindPie:           "pie",
}

func ParseKind(str string) (Kind, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	for k, n := range kindNames {
		if n == str {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%s: unrecognized series kind", str)
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Banded reports whether series of this kind share category bands.
func (k Kind) Banded() bool {
	switch k {
	case KindColumn, KindBar, KindStackedColumn, KindStackedBar:
		return true
	default:
		return false
	}
}

func (k Kind) Stacked() bool {
	return k == KindStackedColumn || k == KindStackedBar
}

// Horizontal reports whether the category axis of the kind is vertical.
func (k Kind) Horizontal() bool {
	return k == KindBar || k == KindStackedBar
}

func (k Kind) Coordinates() CoordinateSystem {
	if k == KindRadar || k == KindPie {
		return Polar
	}
	return Cartesian
}

type Accessor[T any] func(T) float64

// Counter, Valuer and Bander are the views the layout has on a series.
type Counter interface {
	Len() int
}

type Valuer interface {
	CategoryAt(int) float64
	ValueAt(int) float64
}

type Bander interface {
	Banded() bool
	Stacked() bool
}

type Serie[T any] struct {
	Title  string
	Kind   Kind
	Hidden bool
	Style  Style
	Items  []T

	Category Accessor[T]
	Value    Accessor[T]

	Interpolation  Interpolation
	Stretch        float64
	Marker         Marker
	MarkerSize     float64
	ConnectMissing bool

	// InnerRadius is the ratio of the outer radius left empty in a pie.
	InnerRadius float64
	Format      string

	RenderingOrder int
}

func (s Serie[T]) Len() int {
	return len(s.Items)
}

// CategoryAt falls back on the index of the item without category accessor.
func (s Serie[T]) CategoryAt(i int) float64 {
	if i < 0 || i >= len(s.Items) {
		return math.NaN()
	}
	if s.Category == nil {
		return float64(i)
	}
	return s.Category(s.Items[i])
}

func (s Serie[T]) ValueAt(i int) float64 {
	if i < 0 || i >= len(s.Items) || s.Value == nil {
		return math.NaN()
	}
	return s.Value(s.Items[i])
}

func (s Serie[T]) Banded() bool {
	return s.Kind.Banded()
}

func (s Serie[T]) Stacked() bool {
	return s.Kind.Stacked()
}

func (s Serie[T]) Visible() bool {
	return !s.Hidden
}

func (s Serie[T]) Coordinates() CoordinateSystem {
	return s.Kind.Coordinates()
}

func (s Serie[T]) values() []float64 {
	vs := make([]float64, 0, len(s.Items))
	for i := range s.Items {
		v := s.ValueAt(i)
		if math.IsNaN(v) {
			continue
		}
		vs = append(vs, v)
	}
	return vs
}

func valueExtent(v Valuer, n int) Range {
	rg := emptyRange()
	for i := 0; i < n; i++ {
		rg = rg.Include(v.ValueAt(i))
	}
	return rg
}

func categoryExtent(v Valuer, n int) Range {
	rg := emptyRange()
	for i := 0; i < n; i++ {
		rg = rg.Include(v.CategoryAt(i))
	}
	return rg
}

// categoryStep gives the smallest gap between two distinct categories of
// the series, 1 when there is no such gap.
func categoryStep[T any](list []Serie[T]) float64 {
	var values []float64
	for _, s := range list {
		if s.Kind == KindPie {
			continue
		}
		for i := 0; i < s.Len(); i++ {
			if v := s.CategoryAt(i); isFinite(v) {
				values = append(values, v)
			}
		}
	}
	sort.Float64s(values)
	step := math.Inf(1)
	for i := 1; i < len(values); i++ {
		if d := values[i] - values[i-1]; d > 0 && d < step {
			step = d
		}
	}
	if math.IsInf(step, 0) {
		return 1
	}
	return step
}

func maxCount[C Counter](list []C) int {
	var n int
	for _, c := range list {
		if x := c.Len(); x > n {
			n = x
		}
	}
	return n
}
