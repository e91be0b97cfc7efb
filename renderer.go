package axes

import (
	"math"
)

const currentColour = "currentColor"

type Renderer interface {
	Render(Canvas, Serie, PhysicalAxis, PhysicalAxis)
}

type LinearRenderer struct {
	Width         float64
	Skip          int
	Point         PointFunc
	IgnoreMissing bool
}

func (r LinearRenderer) Render(c Canvas, serie Serie, x, y PhysicalAxis) {
	var (
		style = NewLineStyle(serie.Color, r.Width)
		line  []Point
		nan   bool
	)
	for i, pt := range serie.Points {
		if r.Skip != 0 && i > 0 && i%r.Skip == 0 {
			continue
		}
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
			nan = true
			continue
		}
		pos := project(pt, x, y)
		if nan && r.IgnoreMissing {
			c.Polyline(line, style)
			line = nil
		}
		nan = false
		line = append(line, pos)
		if r.Point != nil {
			r.Point(c, pos, serie.Color)
		}
	}
	c.Polyline(line, style)
}

type PointRenderer struct {
	Skip  int
	Point PointFunc
}

func (r PointRenderer) Render(c Canvas, serie Serie, x, y PhysicalAxis) {
	fn := r.Point
	if fn == nil {
		fn = GetCircle
	}
	for i, pt := range serie.Points {
		if r.Skip > 0 && i > 0 && i%r.Skip != 0 {
			continue
		}
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
			continue
		}
		fn(c, project(pt, x, y), serie.Color)
	}
}

// StepRenderer joins consecutive points with a horizontal then a vertical
// segment.
type StepRenderer struct {
	Width float64
	Point PointFunc
}

func (r StepRenderer) Render(c Canvas, serie Serie, x, y PhysicalAxis) {
	var line []Point
	for _, pt := range serie.Points {
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
			continue
		}
		pos := project(pt, x, y)
		if n := len(line); n > 0 {
			line = append(line, Pt(pos.X, line[n-1].Y))
		}
		line = append(line, pos)
		if r.Point != nil {
			r.Point(c, pos, serie.Color)
		}
	}
	c.Polyline(line, NewLineStyle(serie.Color, r.Width))
}
