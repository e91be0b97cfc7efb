package axes

import (
	"math"
)

// PhysicalAxis binds an Axis to two points of the drawing surface. Min is
// where WorldMin is drawn (WorldMax when the axis is reversed).
type PhysicalAxis struct {
	Axis *Axis
	Min  Point
	Max  Point
}

func NewPhysicalAxis(a *Axis, min, max Point) PhysicalAxis {
	return PhysicalAxis{
		Axis: a,
		Min:  min,
		Max:  max,
	}
}

func (p PhysicalAxis) Length() float64 {
	return p.Max.Sub(p.Min).Len()
}

func (p PhysicalAxis) Direction() Point {
	return p.Max.Sub(p.Min).Unit()
}

// PixelWorldLength is the size of one pixel in world units.
func (p PhysicalAxis) PixelWorldLength() float64 {
	return p.Axis.WorldLength() / p.Length()
}

// WorldToPhysical transforms a world value. The axis range must be set:
// Layout validates it before handing physical axes out.
func (p PhysicalAxis) WorldToPhysical(v float64, clip bool) Point {
	return p.Axis.worldToPhysical(v, p.Min, p.Max, clip)
}

func (p PhysicalAxis) PhysicalToWorld(pt Point, clip bool) float64 {
	if p.Min.Eq(p.Max) {
		return math.NaN()
	}
	return p.Axis.physicalToWorld(pt, p.Min, p.Max, clip)
}

func (p PhysicalAxis) Ticks() ([]Tick, error) {
	return p.Axis.Ticks(p.Length())
}

func (p PhysicalAxis) BoundingBox(m TextMeasurer) (Rect, error) {
	g, err := p.Layout(m)
	if err != nil {
		return Rect{}, err
	}
	return g.Footprint.Box, nil
}

// TextBox is a string placed on the surface: the box of Size is centered on
// Center then rotated by Angle degrees.
type TextBox struct {
	Text   string
	Center Point
	Angle  float64
	Size   Size
	Font   Font
	Color  string
}

// Bounds is the axis aligned box around the rotated text.
func (t TextBox) Bounds() Rect {
	var (
		sin, cos = math.Sincos(t.Angle * deg2rad)
		hw       = math.Abs(t.Size.W/2*cos) + math.Abs(t.Size.H/2*sin)
		hh       = math.Abs(t.Size.W/2*sin) + math.Abs(t.Size.H/2*cos)
	)
	return NewRect(t.Center.X-hw, t.Center.Y-hh, 2*hw, 2*hh)
}

type TickMark struct {
	Tick
	Start Point
	End   Point
	Text  *TextBox
}

// Footprint aggregates the room taken by the parts of an axis: the union of
// their boxes and the longest label offset reported by its ticks.
type Footprint struct {
	Box    Rect
	Offset Point

	set bool
}

func (f *Footprint) Merge(offset Point, box Rect) {
	if !f.set {
		f.Box, f.Offset, f.set = box, offset, true
		return
	}
	if offset.Len() > f.Offset.Len() {
		f.Offset = offset
	}
	f.Box = f.Box.Union(box)
}

type AxisGeometry struct {
	Axis      PhysicalAxis
	Marks     []TickMark
	Label     *TextBox
	Footprint Footprint
}

// Layout computes where the line, the ticks, the tick labels and the axis
// label of p go and how much room they take.
func (p PhysicalAxis) Layout(m TextMeasurer) (AxisGeometry, error) {
	g := AxisGeometry{
		Axis: p,
	}
	if err := p.Axis.valid("axis layout"); err != nil {
		return g, err
	}
	line := RectFromPoints(p.Min, p.Max)
	if p.Axis.Hidden {
		g.Footprint.Merge(Point{}, line)
		return g, nil
	}
	ticks, err := p.Ticks()
	if err != nil {
		return g, err
	}
	m = measurerOrDefault(m)

	var marks Footprint
	for _, t := range ticks {
		mark, offset, box := p.tick(t, m)
		marks.Merge(offset, box)
		g.Marks = append(g.Marks, mark)
	}
	g.Footprint.Merge(Point{}, line)
	if marks.set {
		g.Footprint.Merge(marks.Offset, marks.Box)
	}
	if a := p.Axis; a.Label != "" && !a.HideTickText {
		label := p.label(g.Footprint.Offset, m)
		g.Label = &label
		g.Footprint.Merge(Point{}, label.Bounds())
	}
	return g, nil
}

func (p PhysicalAxis) tickSize(t Tick) float64 {
	switch {
	case t.TextOnly:
		return 0
	case t.Large:
		return p.Axis.LargeTickSize
	default:
		return p.Axis.SmallTickSize
	}
}

// tick returns the mark of t, the offset at which the axis label should be
// placed to clear it and the box it covers.
func (p PhysicalAxis) tick(t Tick, m TextMeasurer) (TickMark, Point, Rect) {
	var (
		a        = p.Axis
		start    = p.WorldToPhysical(t.Value, true)
		dir      = p.Direction()
		sin, cos = math.Sincos(a.TicksAngle)
		out      = Pt(cos*dir.X+sin*dir.Y, cos*dir.Y-sin*dir.X)
		vec      = out.Mul(p.tickSize(t))
	)
	if a.TicksCrossAxis {
		start = start.Sub(vec.Mul(0.5))
	}
	var (
		end    = start.Add(vec)
		box    = RectFromPoints(start, end)
		offset = vec.Mul(-1)
		mark   = TickMark{
			Tick:  t,
			Start: start,
			End:   end,
		}
	)
	if t.Label == "" || a.HideTickText {
		return mark, offset, box
	}
	text := TextBox{
		Text:  t.Label,
		Size:  m.Measure(t.Label, a.TickTextFont),
		Font:  a.TickTextFont,
		Color: a.TickTextColor,
	}
	if a.TickTextAngle != 0 {
		var (
			base    = end
			reading = Pt(1, 0).rotate(a.TickTextAngle)
		)
		text.Angle = a.TickTextAngle
		if a.TickTextNextToAxis {
			base = start
			out = out.Mul(-1)
		}
		if a.FlipTickText {
			reading = reading.Mul(-1)
			text.Angle += halfcircle
		}
		text.Center = base.Add(out.Mul(text.Size.H / 2)).Add(reading.Mul(text.Size.W / 2))
		var (
			bounds = text.Bounds()
			along  = text.Center.Sub(start).Dot(out)
			half   = math.Abs(out.X)*bounds.W/2 + math.Abs(out.Y)*bounds.H/2
		)
		box = box.Union(bounds)
		offset = out.Mul((along + half) * 1.25)
	} else {
		var (
			half   = Pt(out.X*text.Size.W, out.Y*text.Size.H).Mul(0.5)
			center = start.Add(vec.Mul(1.2)).Add(half)
		)
		if a.TickTextNextToAxis {
			center = start.Sub(half).Sub(out.Mul(2))
		}
		text.Center = center
		box = box.Union(text.Bounds())
		offset = center.Sub(start).Mul(2.3)
	}
	mark.Text = &text
	return mark, offset, box
}

// label places the axis label at the middle of the axis, pushed away from
// the line along offset and rotated to follow the axis.
func (p PhysicalAxis) label(offset Point, m TextMeasurer) TextBox {
	a := p.Axis
	if offset.Len() > 0.01 {
		push := offset.Unit().Mul(a.LabelOffset + 2)
		if a.LabelOffsetAbsolute {
			offset = push
		} else {
			offset = offset.Add(push)
		}
	}
	var (
		mid = p.Min.Add(p.Max).Mul(0.5)
		dir = p.Max.Sub(p.Min)
	)
	return TextBox{
		Text:   a.Label,
		Center: mid.Add(offset),
		Angle:  math.Atan2(dir.Y, dir.X) * rad2deg,
		Size:   m.Measure(a.Label, a.LabelFont),
		Font:   a.LabelFont,
		Color:  a.LabelColor,
	}
}
