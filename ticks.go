package axes

import (
	"fmt"
	"math"
	"sort"

	"github.com/midbel/slices"
)

const (
	maxTicks    = 5000
	maxLogTicks = 10
)

// Tick is a single position produced by tick placement. Ticks are
// regenerated on every layout pass.
type Tick struct {
	Value float64
	Large bool
	Label string
	// TextOnly ticks carry a label but no tick mark (label axes).
	TextOnly bool
}

type TickOptions struct {
	// MinPhysicalLargeTickStep is the minimum distance in pixels between two
	// large ticks when the step is computed automatically.
	MinPhysicalLargeTickStep float64
	// LargeTickStep forces the distance between large ticks. Zero means
	// automatic.
	LargeTickStep float64
	// LargeTickValue anchors explicit large ticks: ticks are placed at
	// LargeTickValue + n*LargeTickStep.
	LargeTickValue float64
	// NumberOfSmallTicks between two large ticks. Zero means automatic and a
	// negative value disables small ticks.
	NumberOfSmallTicks int
	// TicksIndependentOfPhysicalExtent computes the step from the world
	// range alone.
	TicksIndependentOfPhysicalExtent bool
}

func DefaultTickOptions() TickOptions {
	return TickOptions{
		MinPhysicalLargeTickStep: 30,
	}
}

var mantissas = []struct {
	Value float64
	Small int
}{
	{Value: 1, Small: 4},
	{Value: 2, Small: 1},
	{Value: 5, Small: 4},
}

func linearTicks(a *Axis, length float64) ([]Tick, error) {
	var (
		lo = a.world.Lo()
		hi = a.world.Hi()
	)
	step, cull := largeTickStep(a.TickOptions, lo, hi, length)
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return nil, configError("linear ticks", "invalid large tick step %g", step)
	}
	first := firstLargeTick(lo, step)
	if a.LargeTickStep > 0 {
		first = a.LargeTickValue + math.Ceil((lo-a.LargeTickValue)/step-epsilon)*step
	}
	var (
		tol   = step * epsilon
		large []float64
		small []float64
	)
	for i := 0; i < maxTicks; i++ {
		v := first + float64(i)*step
		if v > hi+tol {
			break
		}
		if math.Abs(v) < tol {
			v = 0
		}
		large = append(large, v)
	}
	switch {
	case cull:
		if len(large) > 2 {
			small = append(small, large[1:len(large)-1]...)
			large = []float64{slices.Fst(large), slices.Lst(large)}
		}
	case len(large) > 0:
		n := a.NumberOfSmallTicks + 1
		if a.NumberOfSmallTicks == 0 {
			n = smallTickDivisions(step)
		}
		small = linearSmallTicks(large, lo, hi, step, n)
	}
	return a.collect(large, small), nil
}

// largeTickStep computes the distance between two large ticks as m*10^e with
// m taken from the mantissa table. cull reports that the step had to be
// shrunk for at least two large ticks to fit, in which case only the first
// and last large ticks are kept.
func largeTickStep(opts TickOptions, lo, hi, length float64) (step float64, cull bool) {
	if opts.LargeTickStep > 0 {
		return opts.LargeTickStep, false
	}
	extent := hi - lo
	if extent == 0 {
		return 1, false
	}
	independent := opts.TicksIndependentOfPhysicalExtent || length <= 0 || opts.MinPhysicalLargeTickStep <= 0
	approx := extent / 6
	if !independent {
		approx = opts.MinPhysicalLargeTickStep * extent / length
	}
	var (
		exp  = math.Floor(log10(approx))
		mant = approx / math.Pow(10, exp)
		idx  = len(mantissas) - 1
	)
	for i := 1; i < len(mantissas); i++ {
		if mant < mantissas[i].Value*(1-epsilon) {
			idx = i - 1
			break
		}
	}
	if idx++; idx >= len(mantissas) {
		idx, exp = 0, exp+1
	}
	step = mantissas[idx].Value * math.Pow(10, exp)
	if independent {
		return step, false
	}
	for pixels := length / extent; step*pixels > length/2; {
		cull = true
		if idx--; idx < 0 {
			idx, exp = len(mantissas)-1, exp-1
		}
		step = mantissas[idx].Value * math.Pow(10, exp)
	}
	return step, cull
}

func firstLargeTick(lo, step float64) float64 {
	var first float64
	if lo > 0 {
		first = (math.Floor(lo/step) + 1) * step
	} else {
		first = -(math.Floor(-lo/step) - 1) * step
	}
	if first-step >= lo {
		first -= step
	}
	return first
}

// smallTickDivisions returns in how many intervals the space between two
// large ticks is split, or zero when step does not use a known mantissa.
func smallTickDivisions(step float64) int {
	mant := step / math.Pow(10, math.Floor(log10(step)))
	for _, m := range mantissas {
		if math.Abs(mant-m.Value) < 0.001 {
			return m.Small + 1
		}
	}
	return 0
}

func linearSmallTicks(large []float64, lo, hi, step float64, n int) []float64 {
	if n <= 1 {
		return nil
	}
	var (
		space = step / float64(n)
		tol   = space * epsilon
		small []float64
	)
	for j := 1; j < n; j++ {
		v := slices.Fst(large) - float64(j)*space
		if v < lo-tol {
			break
		}
		small = append(small, v)
	}
	for _, v := range large {
		for j := 1; j < n; j++ {
			x := v + float64(j)*space
			if x > hi+tol {
				break
			}
			small = append(small, x)
		}
	}
	return sortTicks(small)
}

func sortTicks(values []float64) []float64 {
	sort.Float64s(values)
	return values
}

func (a *Axis) collect(large, small []float64) []Tick {
	list := make([]Tick, 0, len(large)+len(small))
	for _, v := range large {
		list = append(list, Tick{
			Value: v,
			Large: true,
			Label: a.format(v),
		})
	}
	for _, v := range small {
		list = append(list, Tick{
			Value: v,
		})
	}
	return list
}

func (a *Axis) format(v float64) string {
	if a.NumberFormat == "" {
		return fmt.Sprintf(defaultFormat, v)
	}
	return fmt.Sprintf(a.NumberFormat, v)
}

// LargeTicks returns the values of the large ticks in ticks.
func LargeTicks(ticks []Tick) []float64 {
	var list []float64
	for _, t := range ticks {
		if t.Large && !t.TextOnly {
			list = append(list, t.Value)
		}
	}
	return list
}

// SmallTicks returns the values of the small ticks in ticks.
func SmallTicks(ticks []Tick) []float64 {
	var list []float64
	for _, t := range ticks {
		if !t.Large {
			list = append(list, t.Value)
		}
	}
	return list
}
