package chartgeom

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
)

// Range is an input or output interval. Start can be greater than End
// to express a reversed axis.
type Range struct {
	Start float64
	End   float64
}

func NewRange(start, end float64) Range {
	return Range{
		Start: start,
		End:   end,
	}
}

func emptyRange() Range {
	return NewRange(math.NaN(), math.NaN())
}

func (r Range) Len() float64 {
	return r.End - r.Start
}

func (r Range) Min() float64 {
	return math.Min(r.Start, r.End)
}

func (r Range) Max() float64 {
	return math.Max(r.Start, r.End)
}

func (r Range) Reverse() Range {
	return NewRange(r.End, r.Start)
}

func (r Range) Reversed() bool {
	return r.Start > r.End
}

func (r Range) Finite() bool {
	return isFinite(r.Start) && isFinite(r.End)
}

// Include extends r so that it covers v. Non finite values are ignored.
func (r Range) Include(v float64) Range {
	if !isFinite(v) {
		return r
	}
	if !r.Finite() {
		return NewRange(v, v)
	}
	if v < r.Start {
		r.Start = v
	}
	if v > r.End {
		r.End = v
	}
	return r
}

func (r Range) Merge(other Range) Range {
	return r.Include(other.Start).Include(other.End)
}

var fallbackTicks = TickResult{
	Start: 0,
	End:   2,
	Step:  1,
}

const maxTicks = 1000

type TickResult struct {
	Start float64
	End   float64
	Step  float64
}

// Values enumerates the ticks from Start to End.
func (t TickResult) Values() []float64 {
	if t.Step <= 0 || !isFinite(t.Step) || !isFinite(t.Start) || !isFinite(t.End) {
		return nil
	}
	n := int(math.Floor((t.End-t.Start)/t.Step+1e-9)) + 1
	switch {
	case n < 1:
		return nil
	case n == 1:
		return []float64{t.Start}
	case n > maxTicks:
		n = maxTicks
	}
	last := t.Start + float64(n-1)*t.Step
	return vec.Linspace(t.Start, last, n)
}

type Scaler interface {
	Value(float64) float64
	Scale(float64, bool) float64
	Invert(float64, bool) float64
	Ticks(float64) (TickResult, error)
	MinorTicks(int) []float64
	FormatTick(string, any) string
	Domain() Range
	Range() Range
	Space() float64

	replace(Range) Scaler
	reset(Range) Scaler
	pad(float64) Scaler
}

type LinearScale struct {
	Input   Range
	Output  Range
	Padding float64
	Round   bool
	// Step, when set, overrides the computed tick step.
	Step *float64
}

func NumberScaler(in, out Range) LinearScale {
	return LinearScale{
		Input:  in,
		Output: out,
	}
}

func (s LinearScale) WithStep(step float64) LinearScale {
	s.Step = &step
	return s
}

func (s LinearScale) Value(v float64) float64 {
	return v
}

func (s LinearScale) Scale(v float64, padding bool) float64 {
	return project(s.Input, s.Output, s.inset(padding), v)
}

func (s LinearScale) Invert(px float64, padding bool) float64 {
	return unproject(s.Input, s.Output, s.inset(padding), px)
}

func (s LinearScale) Ticks(distance float64) (TickResult, error) {
	if err := checkStep(s.Step); err != nil {
		return TickResult{}, err
	}
	return niceTicks(s.Input, tickCount(s.Output, distance), s.Round, s.Step), nil
}

func (s LinearScale) MinorTicks(max int) []float64 {
	if !s.Input.Finite() || max <= 0 || s.Input.Len() == 0 {
		return nil
	}
	lin := scale.Linear{
		Min: s.Input.Min(),
		Max: s.Input.Max(),
	}
	_, minor := lin.Ticks(scale.TickOptions{Max: max})
	return minor
}

func (s LinearScale) FormatTick(format string, value any) string {
	return formatNumber(format, value)
}

func (s LinearScale) Domain() Range {
	return s.Input
}

func (s LinearScale) Range() Range {
	return s.Output
}

func (s LinearScale) Space() float64 {
	return space(s.Domain(), s.Output)
}

func (s LinearScale) replace(rg Range) Scaler {
	x := s
	x.Output = rg
	return x
}

func (s LinearScale) reset(rg Range) Scaler {
	x := s
	x.Input = rg
	return x
}

func (s LinearScale) pad(p float64) Scaler {
	x := s
	x.Padding = p
	return x
}

func (s LinearScale) inset(padding bool) float64 {
	if !padding || !isFinite(s.Padding) || s.Padding < 0 {
		return 0
	}
	return s.Padding
}

// OrdinalScale places categories at the integer positions 0..n-1.
type OrdinalScale struct {
	LinearScale
	Categories []string
}

func CategoryScaler(categories []string, out Range) OrdinalScale {
	s := OrdinalScale{
		Categories: append([]string(nil), categories...),
	}
	s.Input = NewRange(0, float64(len(categories)-1))
	s.Output = out
	return s
}

// Index gives the position of the given category or NaN if it is unknown.
func (s OrdinalScale) Index(label string) float64 {
	for i := range s.Categories {
		if s.Categories[i] == label {
			return float64(i)
		}
	}
	return math.NaN()
}

func (s OrdinalScale) Ticks(distance float64) (TickResult, error) {
	if err := checkStep(s.Step); err != nil {
		return TickResult{}, err
	}
	if !s.Input.Finite() {
		return fallbackTicks, nil
	}
	var (
		lo = math.Max(0, math.Ceil(s.Input.Min()))
		hi = math.Floor(s.Input.Max())
	)
	if hi < lo {
		return fallbackTicks, nil
	}
	step := 1.0
	if s.Step != nil {
		step = *s.Step
	} else if c := math.Ceil((hi - lo + 1) / tickCount(s.Output, distance)); c > 1 {
		step = c
	}
	return TickResult{Start: lo, End: hi, Step: step}, nil
}

func (s OrdinalScale) MinorTicks(int) []float64 {
	return nil
}

func (s OrdinalScale) FormatTick(format string, value any) string {
	f, ok := toFloat(value)
	if !ok {
		return formatNumber(format, value)
	}
	i := int(math.Round(f))
	if i < 0 || i >= len(s.Categories) {
		return formatNumber(format, f)
	}
	if format == "" {
		return s.Categories[i]
	}
	return fmt.Sprintf(format, s.Categories[i])
}

func (s OrdinalScale) replace(rg Range) Scaler {
	x := s
	x.Output = rg
	return x
}

func (s OrdinalScale) reset(rg Range) Scaler {
	x := s
	x.Input = rg
	return x
}

func (s OrdinalScale) pad(p float64) Scaler {
	x := s
	x.Padding = p
	return x
}

// DateScale works on seconds since the unix epoch.
type DateScale struct {
	LinearScale
	Location *time.Location
}

func TimeScaler(in, out Range) DateScale {
	var s DateScale
	s.Input = in
	s.Output = out
	return s
}

func TimeValue(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

func (s DateScale) Time(v float64) time.Time {
	sec, frac := math.Modf(v)
	t := time.Unix(int64(sec), int64(frac*float64(time.Second)))
	if s.Location != nil {
		t = t.In(s.Location)
	} else {
		t = t.UTC()
	}
	return t
}

var timeSteps = []time.Duration{
	time.Second,
	5 * time.Second,
	15 * time.Second,
	30 * time.Second,
	time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
	time.Hour,
	3 * time.Hour,
	6 * time.Hour,
	12 * time.Hour,
	24 * time.Hour,
	2 * 24 * time.Hour,
	7 * 24 * time.Hour,
	30 * 24 * time.Hour,
	90 * 24 * time.Hour,
	365 * 24 * time.Hour,
}

func (s DateScale) Ticks(distance float64) (TickResult, error) {
	if err := checkStep(s.Step); err != nil {
		return TickResult{}, err
	}
	if s.Step != nil {
		return niceTicks(s.Input, tickCount(s.Output, distance), s.Round, s.Step), nil
	}
	start, end := s.Input.Min(), s.Input.Max()
	if !isFinite(start) || !isFinite(end) {
		return fallbackTicks, nil
	}
	day := (24 * time.Hour).Seconds()
	if start == end {
		end = start + day
	}
	var (
		raw  = (end - start) / tickCount(s.Output, distance)
		step float64
	)
	for _, d := range timeSteps {
		if d.Seconds() >= raw {
			step = d.Seconds()
			break
		}
	}
	if step == 0 {
		year := timeSteps[len(timeSteps)-1].Seconds()
		step = math.Ceil(raw/year) * year
	}
	if s.Round {
		start = math.Floor(start/step) * step
		end = math.Ceil(end/step) * step
	}
	return TickResult{Start: start, End: end, Step: step}, nil
}

func (s DateScale) FormatTick(format string, value any) string {
	var when time.Time
	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		when = v
	default:
		f, ok := toFloat(value)
		if !ok {
			return formatNumber(format, value)
		}
		when = s.Time(f)
	}
	if format == "" {
		format = DefaultTimeFormat
	}
	layout, err := parseFormat(format)
	if err != nil {
		layout, _ = parseFormat(DefaultTimeFormat)
	}
	return when.Format(layout)
}

func (s DateScale) replace(rg Range) Scaler {
	x := s
	x.Output = rg
	return x
}

func (s DateScale) reset(rg Range) Scaler {
	x := s
	x.Input = rg
	return x
}

func (s DateScale) pad(p float64) Scaler {
	x := s
	x.Padding = p
	return x
}

// LogScale keeps its Input in raw units; Value, Domain, Ticks and Scale
// all work on logarithms.
type LogScale struct {
	LinearScale
	Base float64
}

func LogScaler(in, out Range, base float64) LogScale {
	var s LogScale
	s.Input = in
	s.Output = out
	s.Base = base
	return s
}

func (s LogScale) base() float64 {
	if s.Base <= 0 || s.Base == 1 || !isFinite(s.Base) {
		return 10
	}
	return s.Base
}

func (s LogScale) Value(v float64) float64 {
	if v <= 0 {
		return math.NaN()
	}
	return math.Log(v) / math.Log(s.base())
}

func (s LogScale) Domain() Range {
	return NewRange(s.Value(s.Input.Start), s.Value(s.Input.End))
}

func (s LogScale) Scale(v float64, padding bool) float64 {
	return project(s.Domain(), s.Output, s.inset(padding), v)
}

func (s LogScale) Invert(px float64, padding bool) float64 {
	return unproject(s.Domain(), s.Output, s.inset(padding), px)
}

func (s LogScale) Space() float64 {
	return space(s.Domain(), s.Output)
}

func (s LogScale) Ticks(distance float64) (TickResult, error) {
	if err := checkStep(s.Step); err != nil {
		return TickResult{}, err
	}
	dom := s.Domain()
	if !dom.Finite() {
		return fallbackTicks, nil
	}
	var (
		start = math.Floor(dom.Min())
		end   = math.Ceil(dom.Max())
		step  = 1.0
	)
	if start == end {
		end++
	}
	if s.Step != nil {
		step = *s.Step
	} else if c := math.Ceil((end - start) / tickCount(s.Output, distance)); c > 1 {
		step = c
	}
	return TickResult{Start: start, End: end, Step: step}, nil
}

func (s LogScale) MinorTicks(max int) []float64 {
	dom := s.Domain()
	if !dom.Finite() || max <= 0 {
		return nil
	}
	var (
		list []float64
		base = s.base()
	)
	for k := math.Floor(dom.Min()); k < math.Ceil(dom.Max()); k++ {
		for m := 2.0; m < base; m++ {
			v := k + math.Log(m)/math.Log(base)
			if v < dom.Min() || v > dom.Max() {
				continue
			}
			list = append(list, v)
			if len(list) >= max {
				return list
			}
		}
	}
	return list
}

func (s LogScale) FormatTick(format string, value any) string {
	f, ok := toFloat(value)
	if !ok {
		return formatNumber(format, value)
	}
	return formatNumber(format, math.Pow(s.base(), f))
}

func (s LogScale) replace(rg Range) Scaler {
	x := s
	x.Output = rg
	return x
}

// reset receives a range expressed in logarithms.
func (s LogScale) reset(rg Range) Scaler {
	x := s
	x.Input = NewRange(math.Pow(s.base(), rg.Start), math.Pow(s.base(), rg.End))
	return x
}

func (s LogScale) pad(p float64) Scaler {
	x := s
	x.Padding = p
	return x
}

// NiceNumber rounds x to a value of {1, 2, 5, 10}×10^k. With round set the
// nearest candidate is picked, otherwise the smallest candidate not lower
// than x.
func NiceNumber(x float64, round bool) float64 {
	if x == 0 || !isFinite(x) {
		return x
	}
	sign := 1.0
	if x < 0 {
		sign, x = -1, -x
	}
	var (
		exp  = math.Floor(math.Log10(x))
		pow  = math.Pow(10, exp)
		frac = x / pow
		nice float64
	)
	const eps = 1e-9
	if round {
		switch {
		case frac < 1.5:
			nice = 1
		case frac < 3:
			nice = 2
		case frac < 7:
			nice = 5
		default:
			nice = 10
		}
	} else {
		switch {
		case frac <= 1+eps:
			nice = 1
		case frac <= 2+eps:
			nice = 2
		case frac <= 5+eps:
			nice = 5
		default:
			nice = 10
		}
	}
	return sign * nice * pow
}

func niceTicks(in Range, count float64, round bool, step *float64) TickResult {
	start, end := in.Min(), in.Max()
	if !isFinite(start) || !isFinite(end) {
		return fallbackTicks
	}
	if start == end {
		inc := NiceNumber(math.Abs(end)/count, true)
		if inc == 0 {
			inc = 1
		}
		end = start + inc
	}
	if round && end < 0 {
		end = 0
		start -= NiceNumber(math.Abs(start)/count, true)
	}
	rg := end - start
	if round {
		rg = NiceNumber(rg, true)
	}
	var st float64
	switch {
	case step != nil:
		st = *step
	case round:
		st = NiceNumber(rg/count, false)
	default:
		st = math.Ceil(rg / count)
	}
	if round && st > 0 {
		start = math.Floor(start/st) * st
		end = math.Ceil(end/st) * st
	}
	if !isFinite(start) || !isFinite(end) || !isFinite(st) || st <= 0 {
		return fallbackTicks
	}
	return TickResult{Start: start, End: end, Step: st}
}

func tickCount(out Range, distance float64) float64 {
	n := math.Ceil(math.Abs(out.Len()) / distance)
	if distance <= 0 || !isFinite(n) || n < 1 {
		return 1
	}
	return n
}

func checkStep(step *float64) error {
	if step == nil {
		return nil
	}
	if !isFinite(*step) || *step <= 0 {
		return fmt.Errorf("%w (got %g)", ErrStep, *step)
	}
	return nil
}

func shrink(size, pad float64) (float64, float64) {
	if pad <= 0 {
		return size, 0
	}
	if half := math.Abs(size) / 2; pad > half {
		pad = half
	}
	if size < 0 {
		return size + 2*pad, pad
	}
	return size - 2*pad, pad
}

func ratio(in Range, v float64) float64 {
	ext := in.Len()
	if ext == 0 || !in.Finite() {
		return 0.5
	}
	return (v - in.Start) / ext
}

func project(in, out Range, pad, v float64) float64 {
	size, pad := shrink(out.Len(), pad)
	res := ratio(in, v) * size
	if size < 0 {
		res -= size
	}
	return out.Min() + pad + res
}

func unproject(in, out Range, pad, px float64) float64 {
	size, pad := shrink(out.Len(), pad)
	if size == 0 || !in.Finite() {
		return in.Start + in.Len()/2
	}
	res := px - out.Min() - pad
	if size < 0 {
		res += size
	}
	return in.Start + res/size*in.Len()
}

func space(in, out Range) float64 {
	ext := in.Len()
	if ext == 0 || !in.Finite() {
		return 0
	}
	return out.Len() / ext
}

func formatNumber(format string, value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case *float64:
		if v == nil {
			return ""
		}
		return formatNumber(format, *v)
	case float64:
		if format == "" {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	if format == "" {
		return fmt.Sprint(value)
	}
	return fmt.Sprintf(format, value)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case *float64:
		if v == nil {
			return 0, false
		}
		return *v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
