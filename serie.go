package axes

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Serie is a list of points in world coordinates drawn by a Renderer.
type Serie struct {
	Title  string
	Color  string
	Points []Point

	Renderer Renderer
}

func (s Serie) Draw(c Canvas, x, y PhysicalAxis) {
	r := s.Renderer
	if r == nil {
		r = LinearRenderer{}
	}
	r.Render(c, s, x, y)
}

func (s Serie) LegendEntry() LegendEntry {
	return LegendEntry{
		Label: s.Title,
		Color: s.Color,
	}
}

// Extent returns the ranges covered by the points of s. Both ranges are
// unset when s has no valid point.
func (s Serie) Extent() (Range, Range) {
	var xs, ys []float64
	for _, p := range s.Points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	if len(xs) == 0 {
		return unsetRange(), unsetRange()
	}
	return NewRange(stats.Bounds(xs)), NewRange(stats.Bounds(ys))
}

// SuggestAxes returns linear axes covering the extent of s.
func (s Serie) SuggestAxes() (*Axis, *Axis) {
	x, y := s.Extent()
	return NewLinearAxis(x.F, x.T), NewLinearAxis(y.F, y.T)
}

func project(pt Point, x, y PhysicalAxis) Point {
	return Pt(x.WorldToPhysical(pt.X, true).X, y.WorldToPhysical(pt.Y, true).Y)
}
