package chartgeom

import (
	"errors"
	"math"
	"testing"
	"time"
)

const epsilon = 1e-6

func almostEqual(got, want float64) bool {
	if math.IsNaN(want) {
		return math.IsNaN(got)
	}
	return math.Abs(got-want) <= epsilon
}

func ptr(f float64) *float64 {
	return &f
}

func TestScaleLinearity(t *testing.T) {
	tests := []struct {
		In  Range
		Out Range
	}{
		{In: NewRange(0, 100), Out: NewRange(0, 400)},
		{In: NewRange(0, 100), Out: NewRange(400, 0)},
		{In: NewRange(-50, 50), Out: NewRange(10, 210)},
		{In: NewRange(10, -10), Out: NewRange(0, 300)},
		{In: NewRange(1e-3, 2e-3), Out: NewRange(600, 20)},
	}
	for _, tt := range tests {
		s := NumberScaler(tt.In, tt.Out)
		if got := s.Scale(tt.In.Start, false); !almostEqual(got, tt.Out.Start) {
			t.Errorf("%v -> %v: start mismatched! want %f, got %f", tt.In, tt.Out, tt.Out.Start, got)
		}
		if got := s.Scale(tt.In.End, false); !almostEqual(got, tt.Out.End) {
			t.Errorf("%v -> %v: end mismatched! want %f, got %f", tt.In, tt.Out, tt.Out.End, got)
		}
	}
}

func TestScaleInvertedOutput(t *testing.T) {
	s := NumberScaler(NewRange(0, 100), NewRange(100, 0))
	s.Padding = 10

	if got := s.Scale(0, true); !almostEqual(got, 90) {
		t.Errorf("padded start mismatched! want 90, got %f", got)
	}
	if got := s.Scale(100, true); !almostEqual(got, 10) {
		t.Errorf("padded end mismatched! want 10, got %f", got)
	}
	prev := math.Inf(1)
	for v := 0.0; v <= 100; v += 5 {
		px := s.Scale(v, true)
		if px > prev {
			t.Fatalf("%f: pixel should decrease when value increases (%f > %f)", v, px, prev)
		}
		prev = px
	}
}

func TestScaleInvert(t *testing.T) {
	s := NumberScaler(NewRange(0, 100), NewRange(400, 0))
	s.Padding = 10
	for _, v := range []float64{0, 12.5, 37, 50, 99} {
		px := s.Scale(v, true)
		if got := s.Invert(px, true); !almostEqual(got, v) {
			t.Errorf("%f: inverted value mismatched! got %f", v, got)
		}
	}
}

func TestScaleDegenerate(t *testing.T) {
	s := NumberScaler(NewRange(5, 5), NewRange(0, 200))
	if got := s.Scale(5, false); !almostEqual(got, 100) {
		t.Errorf("degenerate domain should map to the middle of the output! got %f", got)
	}
	s = NumberScaler(NewRange(math.NaN(), math.NaN()), NewRange(0, 200))
	if got := s.Scale(1, false); !almostEqual(got, 100) {
		t.Errorf("empty domain should map to the middle of the output! got %f", got)
	}
}

func TestPaddingClamped(t *testing.T) {
	s := NumberScaler(NewRange(0, 10), NewRange(0, 100))
	s.Padding = 80
	if got := s.Scale(0, true); !almostEqual(got, 50) {
		t.Errorf("padding larger than the output should be clamped! got %f", got)
	}
	if got := s.Scale(0, false); !almostEqual(got, 0) {
		t.Errorf("padding should be ignored when not requested! got %f", got)
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		Name     string
		In       Range
		Out      Range
		Round    bool
		Step     *float64
		Distance float64
		Want     TickResult
	}{
		{
			Name:     "round",
			In:       NewRange(0, 100),
			Out:      NewRange(0, 500),
			Round:    true,
			Distance: 100,
			Want:     TickResult{Start: 0, End: 100, Step: 20},
		},
		{
			Name:     "not-round",
			In:       NewRange(0, 95),
			Out:      NewRange(0, 400),
			Distance: 100,
			Want:     TickResult{Start: 0, End: 95, Step: 24},
		},
		{
			Name:     "reversed-output",
			In:       NewRange(0, 100),
			Out:      NewRange(500, 0),
			Round:    true,
			Distance: 100,
			Want:     TickResult{Start: 0, End: 100, Step: 20},
		},
		{
			Name:     "negative",
			In:       NewRange(-50, -10),
			Out:      NewRange(0, 500),
			Round:    true,
			Distance: 100,
			Want:     TickResult{Start: -60, End: 0, Step: 10},
		},
		{
			Name:     "nan",
			In:       NewRange(math.NaN(), math.NaN()),
			Out:      NewRange(0, 500),
			Round:    true,
			Distance: 100,
			Want:     TickResult{Start: 0, End: 2, Step: 1},
		},
		{
			Name:     "inf",
			In:       NewRange(math.Inf(1), math.Inf(1)),
			Out:      NewRange(0, 500),
			Distance: 100,
			Want:     TickResult{Start: 0, End: 2, Step: 1},
		},
		{
			Name:     "single-value",
			In:       NewRange(5, 5),
			Out:      NewRange(0, 500),
			Distance: 100,
			Want:     TickResult{Start: 5, End: 6, Step: 1},
		},
		{
			Name:     "zero",
			In:       NewRange(0, 0),
			Out:      NewRange(0, 500),
			Distance: 100,
			Want:     TickResult{Start: 0, End: 1, Step: 1},
		},
		{
			Name:     "no-distance",
			In:       NewRange(0, 100),
			Out:      NewRange(0, 500),
			Round:    true,
			Distance: 0,
			Want:     TickResult{Start: 0, End: 100, Step: 100},
		},
		{
			Name:     "forced-step",
			In:       NewRange(0, 100),
			Out:      NewRange(0, 500),
			Round:    true,
			Step:     ptr(5),
			Distance: 100,
			Want:     TickResult{Start: 0, End: 100, Step: 5},
		},
		{
			Name:     "forced-step-not-round",
			In:       NewRange(0, 95),
			Out:      NewRange(0, 400),
			Step:     ptr(5),
			Distance: 100,
			Want:     TickResult{Start: 0, End: 95, Step: 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			s := NumberScaler(tt.In, tt.Out)
			s.Round = tt.Round
			s.Step = tt.Step
			got, err := s.Ticks(tt.Distance)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if !almostEqual(got.Start, tt.Want.Start) || !almostEqual(got.End, tt.Want.End) || !almostEqual(got.Step, tt.Want.Step) {
				t.Errorf("ticks mismatched! want %+v, got %+v", tt.Want, got)
			}
		})
	}
}

func TestTicksStepPositive(t *testing.T) {
	domains := []Range{
		NewRange(0, 1),
		NewRange(-1e6, 3),
		NewRange(0.001, 0.002),
		NewRange(42, 42),
		NewRange(100, -100),
		NewRange(-7, -3),
	}
	for _, in := range domains {
		for _, round := range []bool{true, false} {
			for _, distance := range []float64{1, 37, 100, 1000} {
				s := NumberScaler(in, NewRange(0, 640))
				s.Round = round
				res, err := s.Ticks(distance)
				if err != nil {
					t.Fatalf("%v: unexpected error: %s", in, err)
				}
				if res.Step <= 0 {
					t.Errorf("%v (round: %t, distance: %f): step should be positive, got %f", in, round, distance, res.Step)
				}
				if res.End < res.Start {
					t.Errorf("%v: ticks should be ordered, got %+v", in, res)
				}
			}
		}
	}
}

func TestTicksInvalidStep(t *testing.T) {
	for _, step := range []float64{0, -1, -0.5, math.Inf(1), math.NaN()} {
		s := NumberScaler(NewRange(0, 100), NewRange(0, 500)).WithStep(step)
		_, err := s.Ticks(100)
		if !errors.Is(err, ErrStep) {
			t.Errorf("%f: expected ErrStep, got %v", step, err)
		}
	}
}

func TestTickValues(t *testing.T) {
	res := TickResult{Start: 0, End: 100, Step: 20}
	want := []float64{0, 20, 40, 60, 80, 100}
	got := res.Values()
	if len(got) != len(want) {
		t.Fatalf("length mismatched! want %d, got %d", len(want), len(got))
	}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("%d: value mismatched! want %f, got %f", i, want[i], got[i])
		}
	}
	if vs := (TickResult{Start: 0, End: 10, Step: 0}).Values(); len(vs) != 0 {
		t.Errorf("no values expected without step, got %v", vs)
	}
}

func TestNiceNumber(t *testing.T) {
	tests := []struct {
		Value float64
		Round bool
		Want  float64
	}{
		{Value: 1, Round: false, Want: 1},
		{Value: 1.2, Round: false, Want: 2},
		{Value: 2, Round: false, Want: 2},
		{Value: 3, Round: false, Want: 5},
		{Value: 6, Round: false, Want: 10},
		{Value: 20, Round: false, Want: 20},
		{Value: 23, Round: false, Want: 50},
		{Value: -23, Round: false, Want: -50},
		{Value: 1.2, Round: true, Want: 1},
		{Value: 2.5, Round: true, Want: 2},
		{Value: 4, Round: true, Want: 5},
		{Value: 8, Round: true, Want: 10},
		{Value: 120, Round: true, Want: 100},
		{Value: 0, Round: true, Want: 0},
	}
	for _, tt := range tests {
		if got := NiceNumber(tt.Value, tt.Round); !almostEqual(got, tt.Want) {
			t.Errorf("%f (round: %t): want %f, got %f", tt.Value, tt.Round, tt.Want, got)
		}
	}
}

func TestFormatTick(t *testing.T) {
	var nil64 *float64
	s := NumberScaler(NewRange(0, 1), NewRange(0, 1))
	tests := []struct {
		Format string
		Value  any
		Want   string
	}{
		{Format: "", Value: nil, Want: ""},
		{Format: "%.2f", Value: nil64, Want: ""},
		{Format: "", Value: 1.5, Want: "1.5"},
		{Format: "", Value: 100.0, Want: "100"},
		{Format: "%.2f", Value: 1.5, Want: "1.50"},
		{Format: "", Value: 3, Want: "3"},
		{Format: "", Value: ptr(2.25), Want: "2.25"},
	}
	for _, tt := range tests {
		if got := s.FormatTick(tt.Format, tt.Value); got != tt.Want {
			t.Errorf("%q/%v: want %q, got %q", tt.Format, tt.Value, tt.Want, got)
		}
	}
}

func TestOrdinalScale(t *testing.T) {
	s := CategoryScaler([]string{"a", "b", "c"}, NewRange(0, 300))
	if got := s.Scale(0, false); !almostEqual(got, 0) {
		t.Errorf("first category mismatched! got %f", got)
	}
	if got := s.Scale(2, false); !almostEqual(got, 300) {
		t.Errorf("last category mismatched! got %f", got)
	}
	if got := s.Index("b"); got != 1 {
		t.Errorf("index mismatched! want 1, got %f", got)
	}
	if got := s.Index("z"); !math.IsNaN(got) {
		t.Errorf("unknown category should give NaN, got %f", got)
	}
	res, err := s.Ticks(100)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if res.Start != 0 || res.End != 2 || res.Step != 1 {
		t.Errorf("ticks mismatched! got %+v", res)
	}
	if got := s.FormatTick("", 1.0); got != "b" {
		t.Errorf("label mismatched! want b, got %s", got)
	}
	if got := s.FormatTick("", 7.0); got != "7" {
		t.Errorf("out of range label mismatched! want 7, got %s", got)
	}
}

func TestDateScale(t *testing.T) {
	var (
		from = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		to   = from.Add(24 * time.Hour)
		s    = TimeScaler(NewRange(TimeValue(from), TimeValue(to)), NewRange(0, 400))
	)
	res, err := s.Ticks(100)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want := (6 * time.Hour).Seconds(); res.Step != want {
		t.Errorf("step mismatched! want %f, got %f", want, res.Step)
	}
	if got := s.FormatTick("", TimeValue(from)); got != "2024-01-01" {
		t.Errorf("label mismatched! want 2024-01-01, got %s", got)
	}
	if got := s.FormatTick("%H:%M", TimeValue(from.Add(90*time.Minute))); got != "01:30" {
		t.Errorf("label mismatched! want 01:30, got %s", got)
	}
	if got := s.Time(TimeValue(to)); !got.Equal(to) {
		t.Errorf("time mismatched! want %s, got %s", to, got)
	}
}

func TestLogScale(t *testing.T) {
	s := LogScaler(NewRange(1, 1000), NewRange(0, 300), 10)
	if got := s.Value(100); !almostEqual(got, 2) {
		t.Errorf("value mismatched! want 2, got %f", got)
	}
	if got := s.Value(-1); !math.IsNaN(got) {
		t.Errorf("negative value should give NaN, got %f", got)
	}
	if got := s.Scale(s.Value(100), false); !almostEqual(got, 200) {
		t.Errorf("position mismatched! want 200, got %f", got)
	}
	res, err := s.Ticks(100)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if res.Start != 0 || res.End != 3 || res.Step != 1 {
		t.Errorf("ticks mismatched! got %+v", res)
	}
	if got := s.FormatTick("", 2.0); got != "100" {
		t.Errorf("label mismatched! want 100, got %s", got)
	}
	if minor := s.MinorTicks(100); len(minor) != 24 {
		t.Errorf("minor ticks mismatched! want 24, got %d", len(minor))
	}
}

func TestMinorTicks(t *testing.T) {
	s := NumberScaler(NewRange(0, 100), NewRange(0, 500))
	minor := s.MinorTicks(5)
	if len(minor) == 0 {
		t.Fatalf("minor ticks expected")
	}
	for i := 1; i < len(minor); i++ {
		if minor[i] <= minor[i-1] {
			t.Fatalf("minor ticks should be increasing: %v", minor)
		}
	}
}

func TestRange(t *testing.T) {
	rg := emptyRange()
	for _, v := range []float64{3, math.NaN(), -2, math.Inf(1), 7} {
		rg = rg.Include(v)
	}
	if rg.Start != -2 || rg.End != 7 {
		t.Errorf("range mismatched! got %+v", rg)
	}
	if rg.Reverse().Min() != -2 || !rg.Reverse().Reversed() {
		t.Errorf("reversed range mismatched! got %+v", rg.Reverse())
	}
	if got := rg.Merge(NewRange(10, 12)); got.End != 12 || got.Start != -2 {
		t.Errorf("merged range mismatched! got %+v", got)
	}
}
