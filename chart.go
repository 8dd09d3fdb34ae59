package chartgeom

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func NewPadding(all float64) Padding {
	return Padding{
		Top:    all,
		Right:  all,
		Bottom: all,
		Left:   all,
	}
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

const (
	DefaultMargin    = 4.0
	DefaultTolerance = 5.0
	DefaultPadding   = 40.0
)

// Chart owns its series. Each call to Layout computes a fresh snapshot of
// the scales and of the geometry of every visible series.
type Chart[T any] struct {
	Title  string
	Width  float64
	Height float64

	Padding

	CategoryAxis Axis
	ValueAxis    Axis

	Series []Serie[T]

	// Margin is the space between two grouped bars of the same band.
	Margin float64
	// Tolerance is used by hit testing on lines and markers.
	Tolerance float64
	Palette   Palette

	Logger *slog.Logger
}

func NewChart[T any](width, height float64) Chart[T] {
	c := Chart[T]{
		Width:     width,
		Height:    height,
		Padding:   NewPadding(DefaultPadding),
		Margin:    DefaultMargin,
		Tolerance: DefaultTolerance,
		Palette:   Tableau10,
	}
	c.CategoryAxis.Orientation = OrientBottom
	c.CategoryAxis.TickDistance = DefaultTickDistance
	c.ValueAxis.Orientation = OrientLeft
	c.ValueAxis.TickDistance = DefaultTickDistance
	c.ValueAxis.Round = true
	return c
}

func (c *Chart[T]) Append(s Serie[T]) {
	c.Series = append(c.Series, s)
}

func (c Chart[T]) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart[T]) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

// Layout computes the scales, the ticks and the geometry of every visible
// series. Only configuration errors are reported: degenerate data always
// produce a usable layout.
func (c Chart[T]) Layout() (*Layout[T], error) {
	var (
		logger  = c.logger()
		visible []int
		system  = Cartesian
		swapped bool
	)
	for i, s := range c.Series {
		if !s.Visible() {
			continue
		}
		if len(visible) > 0 && s.Coordinates() != system {
			return nil, fmt.Errorf("%w: %q is %s", ErrCoordinates, s.Title, s.Coordinates())
		}
		system = s.Coordinates()
		swapped = swapped || s.Kind.Horizontal()
		visible = append(visible, i)
	}
	if system == Polar {
		swapped = false
	}

	snap := Snapshot{
		System:  system,
		Swapped: swapped,
	}
	catOut, valOut := c.outputs(&snap)

	var (
		grouped []Serie[T]
		stacked []Serie[T]
		banded  []Serie[T]
		catData = emptyRange()
		valData = emptyRange()
	)
	for _, i := range visible {
		s := c.Series[i]
		switch {
		case s.Stacked():
			stacked = append(stacked, s)
		case s.Banded():
			grouped = append(grouped, s)
		}
		if s.Banded() {
			banded = append(banded, s)
		}
		if s.Kind == KindPie {
			continue
		}
		catData = catData.Merge(categoryExtent(s, s.Len()))
		valData = valData.Merge(valueExtent(s, s.Len()))
		if s.Banded() || s.Kind == KindRadar {
			valData = valData.Include(0)
		}
	}
	offsets, stackRange := stackOffsets(stacked)
	valData = valData.Merge(stackRange)

	if c.CategoryAxis.Type == TypeCategory {
		n := len(c.CategoryAxis.Categories)
		if m := maxCount(c.visibleSeries(visible)); m > n {
			n = m
		}
		catData = NewRange(0, float64(n-1))
	}
	if system == Polar && catData.Finite() {
		step := 1.0
		if c.CategoryAxis.Type != TypeCategory {
			step = categoryStep(c.visibleSeries(visible))
		}
		catData.End += step
	}
	if !valData.Finite() {
		logger.Debug("value domain has no finite value", "series", len(visible))
	}

	snap.Category = c.CategoryAxis.scaler(catData, catOut)
	snap.Value = c.ValueAxis.scaler(valData, valOut)

	var err error
	if snap.Value, err = c.nice(c.ValueAxis, snap.Value); err != nil {
		return nil, axisError("value", err)
	}
	if c.CategoryAxis.Type != TypeCategory && system == Cartesian {
		if snap.Category, err = c.nice(c.CategoryAxis, snap.Category); err != nil {
			return nil, axisError("category", err)
		}
	}

	var band float64
	if len(banded) > 0 {
		band = bandSize(catOut, maxCount(banded))
		snap.Category = snap.Category.pad(band)
	}

	lay := Layout[T]{
		Snapshot:  snap,
		Width:     c.Width,
		Height:    c.Height,
		Band:      band,
		Tolerance: c.tolerance(),
	}
	if lay.CategoryTicks, err = c.CategoryAxis.Ticks(snap.Category); err != nil {
		return nil, axisError("category", err)
	}
	if lay.ValueTicks, err = c.ValueAxis.Ticks(snap.Value); err != nil {
		return nil, axisError("value", err)
	}

	var (
		groupIndex int
		stackIndex int
	)
	for _, i := range visible {
		s := c.Series[i]
		s.Style = s.Style.withColor(c.palette().Color(i))

		sl := SerieLayout[T]{
			Serie: s,
			Index: i,
		}
		switch {
		case s.Kind == KindPie:
			sl.Geometry = newPieGeometry(snap, s, s.InnerRadius, c.palette())
		case s.Stacked():
			ctx := bandContext{
				band:    band,
				stacked: true,
				offsets: offsets[stackIndex],
			}
			sl.Geometry = newBarGeometry(snap, s, ctx)
			stackIndex++
		case s.Banded():
			ctx := bandContext{
				band:   band,
				margin: c.margin(),
				index:  groupIndex,
				count:  len(grouped),
			}
			sl.Geometry = newBarGeometry(snap, s, ctx)
			groupIndex++
		default:
			opts := lineOptions{
				interp:  s.Interpolation,
				stretch: s.Stretch,
				marker:  s.Marker,
				size:    s.MarkerSize,
				connect: s.ConnectMissing,
				scatter: s.Kind == KindScatter,
				closed:  s.Kind == KindRadar,
			}
			if opts.scatter && opts.marker == MarkerNone {
				opts.marker = MarkerCircle
			}
			sl.Geometry = newLineGeometry(snap, s, opts)
		}
		lay.Series = append(lay.Series, sl)
	}
	sort.SliceStable(lay.Series, func(i, j int) bool {
		return lay.Series[i].RenderingOrder < lay.Series[j].RenderingOrder
	})
	logger.Debug("layout computed",
		"system", system.String(),
		"series", len(lay.Series),
		"band", band,
		"category", snap.Category.Domain(),
		"value", snap.Value.Domain(),
	)
	return &lay, nil
}

// outputs gives the pixel ranges of the category and value scales. In
// polar mode the category range is an angle starting at the top and the
// value range a radius.
func (c Chart[T]) outputs(snap *Snapshot) (Range, Range) {
	var (
		left   = c.Padding.Left
		right  = c.Width - c.Padding.Right
		top    = c.Padding.Top
		bottom = c.Height - c.Padding.Bottom
	)
	switch {
	case snap.System == Polar:
		snap.Center = NewPoint((left+right)/2, (top+bottom)/2)
		snap.Radius = math.Max(0, math.Min(right-left, bottom-top)/2)
		return NewRange(-math.Pi/2, 3*math.Pi/2), NewRange(0, snap.Radius)
	case snap.Swapped:
		return NewRange(top, bottom), NewRange(left, right)
	default:
		return NewRange(left, right), NewRange(bottom, top)
	}
}

// nice replaces the domain of s by the bounds of its ticks. The direction
// of the domain is kept.
func (c Chart[T]) nice(a Axis, s Scaler) (Scaler, error) {
	res, err := s.Ticks(a.distance())
	if err != nil {
		return nil, err
	}
	if res == fallbackTicks && !s.Domain().Finite() {
		c.logger().Debug("fallback domain used", "axis", a.Type.String())
	}
	rg := NewRange(res.Start, res.End)
	if s.Domain().Reversed() {
		rg = rg.Reverse()
	}
	return s.reset(rg), nil
}

func (c Chart[T]) visibleSeries(indices []int) []Serie[T] {
	list := make([]Serie[T], 0, len(indices))
	for _, i := range indices {
		list = append(list, c.Series[i])
	}
	return list
}

func (c Chart[T]) logger() *slog.Logger {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("module", "chartgeom")
}

func (c Chart[T]) palette() Palette {
	if len(c.Palette) == 0 {
		return Tableau10
	}
	return c.Palette
}

func (c Chart[T]) margin() float64 {
	if c.Margin < 0 || math.IsNaN(c.Margin) {
		return 0
	}
	return c.Margin
}

func (c Chart[T]) tolerance() float64 {
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) {
		return 0
	}
	return c.Tolerance
}
