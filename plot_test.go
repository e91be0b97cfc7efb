package axes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlot() *Plot {
	var (
		x = NewLinearAxis(0, 10)
		y = NewLinearAxis(0, 10)
	)
	x.Label = "time"
	y.Label = "value"
	return NewPlot(x, y)
}

func TestPlotLayout(t *testing.T) {
	var (
		p      = samplePlot()
		bounds = NewRect(0, 0, 600, 400)
	)
	res, err := p.Layout(bounds)
	require.NoError(t, err)
	require.NoError(t, res.Frame.Check())

	area := res.PlotArea
	assert.Greater(t, area.Left(), p.Padding.Left)
	assert.Less(t, area.Bottom(), bounds.Bottom()-p.Padding.Bottom)
	assert.Greater(t, area.W, 0.0)
	assert.Greater(t, area.H, 0.0)

	// synthesized sides only get their ticks
	assert.InDelta(t, p.Padding.Top+p.Bottom.LargeTickSize, res.Indents.Top, 1e-6)
	assert.InDelta(t, p.Padding.Right+p.Left.LargeTickSize, res.Indents.Right, 1e-6)

	top := res.Axes[OrientTop]
	assert.True(t, top.Axis.Axis.HideTickText)
	assert.Nil(t, top.Label)
	require.NotEmpty(t, top.Marks)
	for _, m := range top.Marks {
		assert.Nil(t, m.Text)
		assert.LessOrEqual(t, m.End.Y, m.Start.Y)
	}
	right := res.Axes[OrientRight]
	for _, m := range right.Marks {
		assert.GreaterOrEqual(t, m.End.X, m.Start.X)
	}
	assert.NotNil(t, res.Axes[OrientBottom].Label)
	assert.NotNil(t, res.Axes[OrientLeft].Label)

	assert.Nil(t, p.Top)
	assert.Nil(t, p.Right)
	assert.Equal(t, DefaultDecoration().TicksAngle, p.Bottom.TicksAngle)
	assert.Equal(t, 1, res.Passes)
}

func TestPlotLayoutErrors(t *testing.T) {
	t.Run("no x axis", func(t *testing.T) {
		p := NewPlot(nil, NewLinearAxis(0, 1))
		_, err := p.Layout(NewRect(0, 0, 600, 400))
		assert.ErrorIs(t, err, ErrConfiguration)
	})
	t.Run("no y axis", func(t *testing.T) {
		p := NewPlot(NewLinearAxis(0, 1), nil)
		_, err := p.Layout(NewRect(0, 0, 600, 400))
		assert.ErrorIs(t, err, ErrConfiguration)
	})
	t.Run("unset range", func(t *testing.T) {
		p := NewPlot(NewLinearAxis(0, 1), NewLinearAxis(math.NaN(), math.NaN()))
		_, err := p.Layout(NewRect(0, 0, 600, 400))
		assert.ErrorIs(t, err, ErrConfiguration)
	})
	t.Run("bounds too small", func(t *testing.T) {
		p := samplePlot()
		_, err := p.Layout(NewRect(0, 0, 30, 30))
		assert.ErrorIs(t, err, ErrConfiguration)
	})
	t.Run("broken constraint", func(t *testing.T) {
		p := samplePlot()
		p.Constraints = append(p.Constraints, ConstraintFunc(func(f Frame) Frame {
			f.Top.Max.X += 10
			return f
		}))
		_, err := p.Layout(NewRect(0, 0, 600, 400))
		assert.ErrorIs(t, err, ErrInvariant)
	})
}

func TestPlotLayoutTitle(t *testing.T) {
	var (
		bounds = NewRect(0, 0, 600, 400)
		p      = samplePlot()
	)
	before, err := p.Layout(bounds)
	require.NoError(t, err)
	assert.Nil(t, before.Title)

	p.Title = "measures"
	after, err := p.Layout(bounds)
	require.NoError(t, err)
	require.NotNil(t, after.Title)

	height := DefaultMeasurer.Measure(p.Title, p.TitleFont).H
	assert.InDelta(t, before.Indents.Top+height*titleSpacing, after.Indents.Top, 1e-6)
	assert.InDelta(t, p.Padding.Top+height/2, after.Title.Center.Y, 1e-6)

	mid := (after.Frame.Top.Min.X + after.Frame.Top.Max.X) / 2
	assert.InDelta(t, mid, after.Title.Center.X, 1e-6)
	assert.Equal(t, RegionTitle, after.HitTest(after.Title.Center))
}

func TestPlotHitTest(t *testing.T) {
	p := samplePlot()
	res, err := p.Layout(NewRect(0, 0, 600, 400))
	require.NoError(t, err)

	var (
		area   = res.PlotArea
		center = area.Center()
	)
	tests := []struct {
		Point
		Region
	}{
		{Point: center, Region: RegionPlotArea},
		{Point: Pt(center.X, area.Bottom()+3), Region: RegionBottomAxis},
		{Point: Pt(area.Left()-3, center.Y), Region: RegionLeftAxis},
		{Point: Pt(center.X, area.Top()-3), Region: RegionTopAxis},
		{Point: Pt(area.Right()+3, center.Y), Region: RegionRightAxis},
		{Point: Pt(1, 1), Region: RegionNone},
	}
	for _, tt := range tests {
		t.Run(tt.Region.String(), func(t *testing.T) {
			assert.Equal(t, tt.Region, res.HitTest(tt.Point))
		})
	}
}

func TestPlotLayoutConstraints(t *testing.T) {
	p := samplePlot()
	p.Constraints = []Constraint{
		AspectRatio{Ratio: 1},
	}
	res, err := p.Layout(NewRect(0, 0, 600, 400))
	require.NoError(t, err)
	require.NoError(t, res.Frame.Check())

	var (
		x = res.Frame.Bottom.Length() / p.Bottom.WorldLength()
		y = res.Frame.Left.Length() / p.Left.WorldLength()
	)
	assert.InDelta(t, 1, x/y, 1e-9)
	assert.InDelta(t, res.PlotArea.W, res.PlotArea.H, 1e-9)
}

func TestPlotLayoutLegend(t *testing.T) {
	var (
		bounds = NewRect(0, 0, 600, 400)
		p      = samplePlot()
	)
	plain, err := p.Layout(bounds)
	require.NoError(t, err)

	lg := NewLegend(LegendEntry{Label: "temperature", Color: "red"})
	p.Legend = lg
	res, err := p.Layout(bounds)
	require.NoError(t, err)
	require.NoError(t, res.Frame.Check())

	size := lg.Size(nil)
	assert.Less(t, res.PlotArea.Right(), plain.PlotArea.Right())
	assert.InDelta(t, bounds.Right()-p.Padding.Right, res.Legend.X+size.W, 1e-6)
	assert.InDelta(t, res.PlotArea.Right()+lg.OffsetX, res.Legend.X, 1e-6)
	assert.InDelta(t, res.PlotArea.Top()+lg.OffsetY, res.Legend.Y, 1e-6)

	lg.NeverShiftAxes = true
	fixed, err := p.Layout(bounds)
	require.NoError(t, err)
	assert.Equal(t, plain.PlotArea, fixed.PlotArea)
	assert.InDelta(t, plain.PlotArea.Right()+lg.OffsetX, fixed.Legend.X, 1e-6)
}

func TestPlotLayoutRefine(t *testing.T) {
	var (
		bounds = NewRect(0, 0, 600, 400)
		fixed  = func(refine int) *Plot {
			p := NewPlot(NewLinearAxis(0, 10), NewLinearAxis(0, 1))
			p.Left.Label = "value"
			p.Refine = refine
			p.Constraints = []Constraint{
				PixelWorldLength{Direction: DirY, Pixels: 50},
			}
			return p
		}
	)
	base := NewPlot(NewLinearAxis(0, 10), NewLinearAxis(0, 1))
	base.Left.Label = "value"
	plain, err := base.Layout(bounds)
	require.NoError(t, err)

	once, err := fixed(0).Layout(bounds)
	require.NoError(t, err)
	require.NoError(t, once.Frame.Check())
	assert.Equal(t, 1, once.Passes)
	assert.Equal(t, plain.Indents, once.Indents)
	assert.InDelta(t, 50, once.Frame.Left.Length(), 1e-6)

	p := fixed(5)
	res, err := p.Layout(bounds)
	require.NoError(t, err)
	require.NoError(t, res.Frame.Check())
	assert.GreaterOrEqual(t, res.Passes, 2)
	assert.Less(t, res.Passes, 1+p.Refine)
	assert.Less(t, res.Indents.Left, plain.Indents.Left)
	assert.InDelta(t, 50, res.Frame.Left.Length(), 1e-6)
	var large []float64
	for _, m := range res.Axes[OrientLeft].Marks {
		if m.Tick.Large {
			large = append(large, m.Tick.Value)
		}
	}
	assert.Equal(t, []float64{0, 1}, large)
}

func TestPlotLayoutTicksAngle(t *testing.T) {
	bounds := NewRect(0, 0, 600, 400)

	p := samplePlot()
	p.Left.TicksAngle = -math.Pi / 2
	res, err := p.Layout(bounds)
	require.NoError(t, err)
	assert.Equal(t, -math.Pi/2, p.Left.TicksAngle)

	left := res.Axes[OrientLeft]
	require.NotEmpty(t, left.Marks)
	for _, m := range left.Marks {
		assert.Greater(t, m.End.X, m.Start.X)
	}
	bottom := res.Axes[OrientBottom]
	for _, m := range bottom.Marks {
		assert.Greater(t, m.End.Y, m.Start.Y)
	}

	p.Left.TicksAngle = 3 * math.Pi / 4
	res, err = p.Layout(bounds)
	require.NoError(t, err)
	for _, m := range res.Axes[OrientLeft].Marks {
		assert.Less(t, m.End.X, m.Start.X)
		assert.Greater(t, m.End.Y, m.Start.Y)
	}
	// the right side is a copy of the left one but keeps its own direction
	right := res.Axes[OrientRight]
	require.NotEmpty(t, right.Marks)
	for _, m := range right.Marks {
		assert.Greater(t, m.End.X, m.Start.X)
		assert.InDelta(t, m.Start.Y, m.End.Y, 1e-9)
	}

	p.Right = NewLinearAxis(0, 10)
	p.Right.TicksAngle = math.Pi / 2
	res, err = p.Layout(bounds)
	require.NoError(t, err)
	for _, m := range res.Axes[OrientRight].Marks {
		assert.Less(t, m.End.X, m.Start.X)
	}
	assert.Equal(t, math.Pi/2, p.Right.TicksAngle)
}

func TestPlotAddWidens(t *testing.T) {
	p := NewPlot(NewLinearAxis(math.NaN(), math.NaN()), NewLinearAxis(0, 1))

	require.NoError(t, p.Add(Serie{Points: []Point{Pt(0, 0.5), Pt(10, 0.2)}}, OrientBottom, OrientLeft))
	assert.Equal(t, NewRange(0, 10), p.Bottom.World())
	assert.Equal(t, NewRange(0, 1), p.Left.World())

	require.NoError(t, p.Add(Serie{Points: []Point{Pt(100, 2), Pt(200, 3)}}, OrientTop, OrientLeft))
	require.NotNil(t, p.Top)
	assert.Equal(t, NewRange(100, 200), p.Top.World())
	assert.Equal(t, NewRange(0, 10), p.Bottom.World())
	assert.Equal(t, NewRange(0, 3), p.Left.World())

	require.NoError(t, p.Add(Serie{Points: []Point{Pt(-5, 0), Pt(3, 1)}}, OrientBottom, OrientLeft))
	assert.Equal(t, NewRange(-5, 10), p.Bottom.World())
	assert.Nil(t, p.Right)

	require.NoError(t, p.Add(Serie{}, OrientBottom, OrientRight))
	assert.Nil(t, p.Right)
	assert.Len(t, p.items, 4)

	logs, err := NewLogAxis(1, 100)
	require.NoError(t, err)
	p.Right = logs
	err = p.Add(Serie{Points: []Point{Pt(0, -1), Pt(1, 10)}}, OrientBottom, OrientRight)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestPlotRangeOperations(t *testing.T) {
	p := samplePlot()
	p.Top = NewLinearAxis(100, 200)

	require.NoError(t, p.ZoomX(0.5, 0.5))
	assert.InDelta(t, -2.5, p.Bottom.WorldMin(), 1e-9)
	assert.InDelta(t, 12.5, p.Bottom.WorldMax(), 1e-9)
	assert.InDelta(t, 75, p.Top.WorldMin(), 1e-9)
	assert.InDelta(t, 225, p.Top.WorldMax(), 1e-9)

	require.NoError(t, p.TranslateY(0.1))
	assert.InDelta(t, 1, p.Left.WorldMin(), 1e-9)
	assert.InDelta(t, 11, p.Left.WorldMax(), 1e-9)

	require.NoError(t, p.DefineY(0.2, 0.4))
	assert.InDelta(t, 3, p.Left.WorldMin(), 1e-9)
	assert.InDelta(t, 5, p.Left.WorldMax(), 1e-9)

	require.NoError(t, p.DefineX(-1, 0.5))
	assert.InDelta(t, -2.5, p.Bottom.WorldMin(), 1e-9)
	assert.InDelta(t, 5, p.Bottom.WorldMax(), 1e-9)

	require.NoError(t, p.ZoomY(-0.5, 0))
	assert.InDelta(t, 3, p.Left.WorldMin(), 1e-9)
	assert.InDelta(t, 4, p.Left.WorldMax(), 1e-9)

	require.NoError(t, p.TranslateX(-1))
	assert.InDelta(t, -10, p.Bottom.WorldMin(), 1e-9)
	assert.InDelta(t, -2.5, p.Bottom.WorldMax(), 1e-9)
}

func TestPlotRangeOperationsUnset(t *testing.T) {
	p := NewPlot(NewLinearAxis(math.NaN(), math.NaN()), NewLinearAxis(0, 1))
	assert.ErrorIs(t, p.ZoomX(0.1, 0.5), ErrConfiguration)
	assert.ErrorIs(t, p.TranslateX(0.1), ErrConfiguration)
	assert.NoError(t, p.TranslateY(0.1))
}
