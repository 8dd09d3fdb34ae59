package chartgeom

import (
	"math"
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

// Anchor gives the text anchor of tick labels placed along an axis with
// this orientation.
func (o Orientation) Anchor() Anchor {
	switch {
	case o.Vertical() && !o.Reverse():
		return AnchorEnd
	case o.Vertical() && o.Reverse():
		return AnchorStart
	default:
		return AnchorMiddle
	}
}

type ScaleType int

const (
	TypeNumber ScaleType = iota
	TypeCategory
	TypeTime
	TypeLog
)

func (t ScaleType) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeCategory:
		return "category"
	case TypeTime:
		return "time"
	case TypeLog:
		return "log"
	default:
		return "unknown"
	}
}

const DefaultTickDistance = 100.0

type Axis struct {
	Label string
	Orientation
	Type       ScaleType
	Categories []string

	Min  *float64
	Max  *float64
	Step *float64
	Base float64

	Round    bool
	Inverted bool
	Format   string
	// TickDistance is the minimum space in pixels between two ticks.
	TickDistance float64
}

type Tick struct {
	Value  float64
	Pos    float64
	Label  string
	Anchor Anchor
}

// Ticks computes the position and label of each tick of s.
func (a Axis) Ticks(s Scaler) ([]Tick, error) {
	res, err := s.Ticks(a.distance())
	if err != nil {
		return nil, err
	}
	var (
		values = res.Values()
		list   = make([]Tick, 0, len(values))
	)
	for _, v := range values {
		t := Tick{
			Value:  v,
			Pos:    s.Scale(v, true),
			Label:  s.FormatTick(a.Format, v),
			Anchor: a.Orientation.Anchor(),
		}
		list = append(list, t)
	}
	return list, nil
}

func (a Axis) distance() float64 {
	if a.TickDistance <= 0 || math.IsNaN(a.TickDistance) {
		return DefaultTickDistance
	}
	return a.TickDistance
}

func (a Axis) scaler(data, out Range) Scaler {
	in := data
	if a.Min != nil {
		in.Start = *a.Min
	}
	if a.Max != nil {
		in.End = *a.Max
	}
	if a.Inverted {
		in = in.Reverse()
	}
	switch a.Type {
	case TypeCategory:
		s := CategoryScaler(a.Categories, out)
		s.Input = in
		s.Step = a.Step
		return s
	case TypeTime:
		s := TimeScaler(in, out)
		s.Round = a.Round
		s.Step = a.Step
		return s
	case TypeLog:
		s := LogScaler(in, out, a.Base)
		s.Round = a.Round
		s.Step = a.Step
		return s
	default:
		s := NumberScaler(in, out)
		s.Round = a.Round
		s.Step = a.Step
		return s
	}
}
