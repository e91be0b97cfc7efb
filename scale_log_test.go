package axes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogTicks(t *testing.T) {
	a := mustLogAxis(t, 1, 1000)

	ticks, err := a.Ticks(300)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 10, 100, 1000}, LargeTicks(ticks))

	small := SmallTicks(ticks)
	assert.Len(t, small, 24)
	for _, v := range small {
		assert.Greater(t, v, 1.0)
		assert.Less(t, v, 1000.0)
	}
	assert.Contains(t, small, 2.0)
	assert.Contains(t, small, 90.0)
	assert.Contains(t, small, 500.0)
}

func TestLogTicksNegativeBound(t *testing.T) {
	_, err := NewLogAxis(-1, 1000)
	assert.True(t, errors.Is(err, ErrConfiguration))

	var cfg ConfigurationError
	require.True(t, errors.As(err, &cfg))
	assert.Equal(t, "log axis", cfg.Op)
}

func TestLogTicksSpacing(t *testing.T) {
	tests := []struct {
		name  string
		min   float64
		max   float64
		dist  float64
		first float64
	}{
		{name: "three decades", min: 1, max: 1000, dist: 1, first: 1},
		{name: "ten decades", min: 1, max: 1e10, dist: 2, first: 1},
		{name: "twenty decades", min: 1e-10, max: 1e10, dist: 2, first: 1e-10},
		{name: "inside a decade", min: 2, max: 8, dist: 1},
		{name: "below one", min: 0.05, max: 20, dist: 1, first: 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustLogAxis(t, tt.min, tt.max)
			dist, err := logSpacing(a.TickOptions, tt.min, tt.max)
			require.NoError(t, err)
			assert.Equal(t, tt.dist, dist)

			ticks, err := a.Ticks(300)
			require.NoError(t, err)
			large := LargeTicks(ticks)
			assert.LessOrEqual(t, len(large), maxLogTicks+1)
			if tt.first == 0 {
				assert.Empty(t, large)
				return
			}
			require.NotEmpty(t, large)
			assert.InEpsilon(t, tt.first, large[0], 1e-9)
		})
	}
}

func TestLogTicksTruncatedRatio(t *testing.T) {
	a := mustLogAxis(t, 1e-10, 1e10)
	ticks, err := a.Ticks(300)
	require.NoError(t, err)

	large := LargeTicks(ticks)
	require.Len(t, large, maxLogTicks+1)
	assert.InEpsilon(t, 1e-10, large[0], 1e-9)
	assert.InEpsilon(t, 1e10, large[len(large)-1], 1e-9)
}

func TestLogSmallTicksSkippedDecades(t *testing.T) {
	a := mustLogAxis(t, 1, 1e10)
	ticks, err := a.Ticks(300)
	require.NoError(t, err)

	small := SmallTicks(ticks)
	assert.Contains(t, small, 10.0)
	assert.Contains(t, small, 1000.0)
	assert.NotContains(t, small, 100.0)
}

func TestLogSmallTicksInsideDecade(t *testing.T) {
	a := mustLogAxis(t, 2.5, 8)
	ticks, err := a.Ticks(300)
	require.NoError(t, err)
	assert.Empty(t, LargeTicks(ticks))
	assert.Equal(t, []float64{3, 4, 5, 6, 7}, SmallTicks(ticks))
}

func TestLogExplicitStep(t *testing.T) {
	a := mustLogAxis(t, 1, 1e6)
	a.LargeTickStep = 0.5
	_, err := a.Ticks(300)
	assert.True(t, errors.Is(err, ErrConfiguration))

	a.LargeTickStep = 2
	ticks, err := a.Ticks(300)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 100, 10000, 1e6}, LargeTicks(ticks))
}

func TestLogTransform(t *testing.T) {
	a := mustLogAxis(t, 1, 100)
	pt, err := a.WorldToPhysical(10, Pt(0, 0), Pt(100, 0), false)
	require.NoError(t, err)
	assert.InDelta(t, 50, pt.X, 1e-9)

	v, err := a.PhysicalToWorld(Pt(50, 0), Pt(0, 0), Pt(100, 0), false)
	require.NoError(t, err)
	assert.InDelta(t, 10, v, 1e-9)

	pt, err = a.WorldToPhysical(-3, Pt(0, 0), Pt(100, 0), false)
	require.NoError(t, err)
	assert.Equal(t, -100*100.0, pt.X)
}
