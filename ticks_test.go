package axes

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearTicks(t *testing.T) {
	a := NewLinearAxis(0, 100)
	a.MinPhysicalLargeTickStep = 50

	ticks, err := a.Ticks(500)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 20, 40, 60, 80, 100}, LargeTicks(ticks))
	assert.Equal(t, []float64{10, 30, 50, 70, 90}, SmallTicks(ticks))

	var labels []string
	for _, k := range ticks {
		if k.Large {
			labels = append(labels, k.Label)
		}
	}
	assert.Equal(t, []string{"0", "20", "40", "60", "80", "100"}, labels)
}

func TestLinearTicksNegativeStart(t *testing.T) {
	a := NewLinearAxis(-5, 45)
	a.MinPhysicalLargeTickStep = 50

	ticks, err := a.Ticks(500)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 10, 20, 30, 40}, LargeTicks(ticks))

	small := SmallTicks(ticks)
	assert.Contains(t, small, -4.0)
	assert.Contains(t, small, -2.0)
	assert.NotContains(t, small, -6.0)
	for _, v := range small {
		assert.GreaterOrEqual(t, v, -5.0)
		assert.LessOrEqual(t, v, 45.0)
	}
}

func TestMantissaLaw(t *testing.T) {
	var (
		ranges  = []Range{NewRange(0, 1), NewRange(0.3, 7.9), NewRange(-120, 3400), NewRange(1e-4, 3e-3), NewRange(12, 13.5)}
		lengths = []float64{2, 17, 100, 333, 1000}
	)
	for _, r := range ranges {
		for _, n := range lengths {
			for _, independent := range []bool{false, true} {
				opts := DefaultTickOptions()
				opts.TicksIndependentOfPhysicalExtent = independent

				step, _ := largeTickStep(opts, r.F, r.T, n)
				assert.True(t, isMantissaStep(step), "step %g for %v on %gpx", step, r, n)

				a := NewLinearAxis(r.F, r.T)
				a.TickOptions = opts
				ticks, err := a.Ticks(n)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, len(LargeTicks(ticks)), 2, "range %v on %gpx", r, n)
			}
		}
	}
}

func isMantissaStep(step float64) bool {
	for _, m := range mantissas {
		exp := math.Round(math.Log10(step / m.Value))
		if math.Abs(step/(m.Value*math.Pow(10, exp))-1) < 1e-9 {
			return true
		}
	}
	return false
}

func TestCullMiddle(t *testing.T) {
	a := NewLinearAxis(0, 10)
	a.MinPhysicalLargeTickStep = 30

	step, cull := largeTickStep(a.TickOptions, 0, 10, 30)
	assert.Equal(t, 5.0, step)
	assert.True(t, cull)

	ticks, err := a.Ticks(30)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 10}, LargeTicks(ticks))
	assert.Equal(t, []float64{5}, SmallTicks(ticks))
}

func TestCullTwoTicks(t *testing.T) {
	a := NewLinearAxis(0.25, 1.25)
	a.MinPhysicalLargeTickStep = 30

	step, cull := largeTickStep(a.TickOptions, 0.25, 1.25, 20)
	assert.Equal(t, 0.5, step)
	assert.True(t, cull)

	ticks, err := a.Ticks(20)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1}, LargeTicks(ticks))
	assert.Empty(t, SmallTicks(ticks))
}

func TestLargeTickStep(t *testing.T) {
	tests := []struct {
		opts     TickOptions
		lo       float64
		hi       float64
		length   float64
		expected float64
	}{
		{opts: TickOptions{MinPhysicalLargeTickStep: 50}, lo: 0, hi: 100, length: 500, expected: 20},
		{opts: TickOptions{MinPhysicalLargeTickStep: 50}, lo: -5, hi: 45, length: 500, expected: 10},
		{opts: TickOptions{MinPhysicalLargeTickStep: 30}, lo: 0, hi: 1, length: 300, expected: 0.2},
		{opts: TickOptions{TicksIndependentOfPhysicalExtent: true}, lo: 0, hi: 60, length: 10, expected: 20},
		{opts: TickOptions{LargeTickStep: 7}, lo: 0, hi: 60, length: 10, expected: 7},
		{opts: TickOptions{MinPhysicalLargeTickStep: 30}, lo: 4, hi: 4, length: 100, expected: 1},
		{opts: TickOptions{MinPhysicalLargeTickStep: 30}, lo: 0, hi: 100, length: 0, expected: 20},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%g-%g/%g", tt.lo, tt.hi, tt.length), func(t *testing.T) {
			step, _ := largeTickStep(tt.opts, tt.lo, tt.hi, tt.length)
			assert.InDelta(t, tt.expected, step, 1e-12)
		})
	}
}

func TestExplicitTicks(t *testing.T) {
	a := NewLinearAxis(0, 100)
	a.LargeTickStep = 15
	a.LargeTickValue = 5

	ticks, err := a.Ticks(500)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 20, 35, 50, 65, 80, 95}, LargeTicks(ticks))
	assert.Empty(t, SmallTicks(ticks))

	a.NumberOfSmallTicks = 2
	ticks, err = a.Ticks(500)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 10, 15, 25, 30, 40, 45, 55, 60, 70, 75, 85, 90, 100}, SmallTicks(ticks))
}

func TestSmallTicksDisabled(t *testing.T) {
	a := NewLinearAxis(0, 100)
	a.NumberOfSmallTicks = -1

	ticks, err := a.Ticks(500)
	require.NoError(t, err)
	assert.NotEmpty(t, LargeTicks(ticks))
	assert.Empty(t, SmallTicks(ticks))
}

func TestTickFormat(t *testing.T) {
	a := NewLinearAxis(0, 1)
	a.NumberFormat = "%.2f"
	a.LargeTickStep = 0.5

	ticks, err := a.Ticks(100)
	require.NoError(t, err)
	var labels []string
	for _, k := range ticks {
		if k.Large {
			labels = append(labels, k.Label)
		}
	}
	assert.Equal(t, []string{"0.00", "0.50", "1.00"}, labels)
}

func TestTicksInvalidStep(t *testing.T) {
	a := NewLinearAxis(0, math.Inf(1))
	_, err := a.Ticks(100)
	assert.True(t, errors.Is(err, ErrConfiguration))
}
