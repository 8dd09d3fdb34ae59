package chartgeom

// ComposeCategory binds a category accessor to a scale.
func ComposeCategory[T any](s Scaler, get Accessor[T]) func(T) float64 {
	return func(item T) float64 {
		return s.Scale(s.Value(get(item)), true)
	}
}

// ComposeValue binds a value accessor to a scale.
func ComposeValue[T any](s Scaler, get Accessor[T]) func(T) float64 {
	return func(item T) float64 {
		return s.Scale(s.Value(get(item)), true)
	}
}

// Snapshot holds the scales of one layout pass. It is built once by
// Chart.Layout and only read afterwards.
type Snapshot struct {
	Category Scaler
	Value    Scaler
	System   CoordinateSystem
	// Swapped is set when the category axis is vertical.
	Swapped bool
	Center  Point
	Radius  float64
}

func (s Snapshot) CategoryPos(v float64) float64 {
	return s.Category.Scale(s.Category.Value(v), true)
}

func (s Snapshot) ValuePos(v float64) float64 {
	return s.Value.Scale(s.Value.Value(v), true)
}

// Point maps a category and a value to the screen. In polar mode the
// category position is the angle and the value position is the radius.
func (s Snapshot) Point(category, value float64) Point {
	return s.place(s.CategoryPos(category), s.ValuePos(value))
}

func (s Snapshot) place(cat, val float64) Point {
	switch {
	case s.System == Polar:
		return PolarPoint(s.Center, val, cat)
	case s.Swapped:
		return NewPoint(val, cat)
	default:
		return NewPoint(cat, val)
	}
}

type Composer[T any] struct {
	Snapshot
	category func(T) float64
	value    func(T) float64
}

func NewComposer[T any](snap Snapshot, category, value Accessor[T]) Composer[T] {
	return Composer[T]{
		Snapshot: snap,
		category: ComposeCategory(snap.Category, category),
		value:    ComposeValue(snap.Value, value),
	}
}

func (c Composer[T]) X(item T) float64 {
	return c.category(item)
}

func (c Composer[T]) Y(item T) float64 {
	return c.value(item)
}

func (c Composer[T]) Point(item T) Point {
	return c.place(c.category(item), c.value(item))
}
