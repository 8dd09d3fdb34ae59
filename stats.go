package chartgeom

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/fit"
	"github.com/aclements/go-moremath/stats"
)

// Mean of the values of the series. Missing values are ignored.
func (s Serie[T]) Mean() float64 {
	vs := s.values()
	if len(vs) == 0 {
		return math.NaN()
	}
	return stats.Mean(vs)
}

func (s Serie[T]) Median() float64 {
	vs := s.values()
	if len(vs) == 0 {
		return math.NaN()
	}
	sort.Float64s(vs)
	sample := stats.Sample{
		Xs:     vs,
		Sorted: true,
	}
	return sample.Quantile(0.5)
}

// Mode gives the most frequent value. On ties, the value seen first wins.
func (s Serie[T]) Mode() float64 {
	var (
		values = s.values()
		counts = make(map[float64]int)
		mode   = math.NaN()
		best   int
	)
	for _, v := range values {
		counts[v]++
	}
	for _, v := range values {
		if n := counts[v]; n > best {
			mode, best = v, n
		}
	}
	return mode
}

// Trend returns the slope and the intercept of the least squares line
// going through the values. The values are paired with the categories of
// the series, or with the index of the items without category accessor.
func (s Serie[T]) Trend() (float64, float64) {
	var xs, ys []float64
	for i := range s.Items {
		x, y := s.CategoryAt(i), s.ValueAt(i)
		if !isFinite(x) || !isFinite(y) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	switch len(xs) {
	case 0:
		return 0, math.NaN()
	case 1:
		return 0, ys[0]
	}
	if lo, hi := stats.Bounds(xs); lo == hi {
		return 0, stats.Mean(ys)
	}
	res := fit.PolynomialRegression(xs, ys, nil, 1)
	if len(res.Coefficients) < 2 {
		return 0, math.NaN()
	}
	return res.Coefficients[1], res.Coefficients[0]
}
