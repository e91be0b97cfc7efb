package axes

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// titleSpacing is the room reserved above the plot for its title, as a
// multiple of the title height.
const titleSpacing = 1.3

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func Uniform(v float64) Padding {
	return Padding{
		Top:    v,
		Right:  v,
		Bottom: v,
		Left:   v,
	}
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

func (p Padding) near(o Padding) bool {
	const px = 0.5
	return math.Abs(p.Top-o.Top) < px && math.Abs(p.Right-o.Right) < px &&
		math.Abs(p.Bottom-o.Bottom) < px && math.Abs(p.Left-o.Left) < px
}

// Drawable is anything drawn inside the plot area using a pair of physical
// axes, typically a data serie.
type Drawable interface {
	Draw(Canvas, PhysicalAxis, PhysicalAxis)
}

type item struct {
	Drawable
	X Orientation
	Y Orientation
}

// Plot owns the four logical axes of a chart. Bottom and Left are the
// primary axes, Top and Right the secondary ones. At least one axis is
// needed in each direction: a missing side is drawn as a copy of the
// opposite one without tick text.
type Plot struct {
	Title      string
	TitleFont  Font
	Padding    Padding
	Background string

	Bottom *Axis
	Top    *Axis
	Left   *Axis
	Right  *Axis

	Legend      LegendLayout
	Constraints []Constraint
	Measurer    TextMeasurer
	Logger      *log.Logger
	// Refine is the maximum number of extra layout passes, each one measuring
	// the axes at the place found by the previous one. Zero gives the single
	// pass layout.
	Refine int

	items []item
}

func NewPlot(x, y *Axis) *Plot {
	return &Plot{
		TitleFont:  NewFont(14),
		Padding:    Uniform(10),
		Background: "white",
		Bottom:     x,
		Left:       y,
	}
}

// AxisSuggester is implemented by drawables able to propose axes covering
// their data.
type AxisSuggester interface {
	SuggestAxes() (*Axis, *Axis)
}

// Add registers d to be drawn with the given X (OrientBottom, OrientTop) and
// Y (OrientLeft, OrientRight) axes. When d suggests axes, the axes it is
// drawn with are widened to cover them and a missing axis is created from
// the suggestion.
func (p *Plot) Add(d Drawable, x, y Orientation) error {
	if x != OrientTop {
		x = OrientBottom
	}
	if y != OrientRight {
		y = OrientLeft
	}
	if s, ok := d.(AxisSuggester); ok {
		sx, sy := s.SuggestAxes()
		if err := p.adopt(x, sx); err != nil {
			return err
		}
		if err := p.adopt(y, sy); err != nil {
			return err
		}
	}
	p.items = append(p.items, item{
		Drawable: d,
		X:        x,
		Y:        y,
	})
	return nil
}

func (p *Plot) adopt(o Orientation, suggested *Axis) error {
	if suggested == nil || !suggested.World().IsSet() {
		return nil
	}
	var target **Axis
	switch o {
	case OrientTop:
		target = &p.Top
	case OrientLeft:
		target = &p.Left
	case OrientRight:
		target = &p.Right
	default:
		target = &p.Bottom
	}
	if *target == nil {
		*target = suggested.Clone()
		return nil
	}
	return (*target).LUB(suggested)
}

func (p *Plot) logger() *log.Logger {
	if p.Logger == nil {
		return log.New(io.Discard)
	}
	return p.Logger
}

type Region int

const (
	RegionNone Region = iota
	RegionBottomAxis
	RegionLeftAxis
	RegionTopAxis
	RegionRightAxis
	RegionTitle
	RegionPlotArea
)

func (r Region) String() string {
	switch r {
	case RegionBottomAxis:
		return "bottom axis"
	case RegionLeftAxis:
		return "left axis"
	case RegionTopAxis:
		return "top axis"
	case RegionRightAxis:
		return "right axis"
	case RegionTitle:
		return "title"
	case RegionPlotArea:
		return "plot area"
	default:
		return "none"
	}
}

// Result is the outcome of one layout pass. It is only valid until the axes
// of the plot change.
type Result struct {
	Bounds   Rect
	PlotArea Rect
	Frame    Frame
	Indents  Padding
	Title    *TextBox
	Legend   Point
	Axes     map[Orientation]AxisGeometry
	Passes   int
}

// HitTest reports which part of the plot contains pt. Axes are tested
// first, then the title and finally the plot area.
func (r Result) HitTest(pt Point) Region {
	order := []struct {
		Orientation
		Region
	}{
		{OrientBottom, RegionBottomAxis},
		{OrientLeft, RegionLeftAxis},
		{OrientTop, RegionTopAxis},
		{OrientRight, RegionRightAxis},
	}
	for _, o := range order {
		if g, ok := r.Axes[o.Orientation]; ok && g.Footprint.Box.Contains(pt) {
			return o.Region
		}
	}
	if r.Title != nil && r.Title.Bounds().Contains(pt) {
		return RegionTitle
	}
	if r.PlotArea.Contains(pt) {
		return RegionPlotArea
	}
	return RegionNone
}

type sides struct {
	bottom *Axis
	top    *Axis
	left   *Axis
	right  *Axis
}

func (s sides) frame(bounds Rect, ind Padding) Frame {
	var (
		left   = bounds.Left() + ind.Left
		right  = bounds.Right() - ind.Right
		top    = bounds.Top() + ind.Top
		bottom = bounds.Bottom() - ind.Bottom
	)
	return Frame{
		Bottom: NewPhysicalAxis(s.bottom, Pt(left, bottom), Pt(right, bottom)),
		Left:   NewPhysicalAxis(s.left, Pt(left, bottom), Pt(left, top)),
		Top:    NewPhysicalAxis(s.top, Pt(left, top), Pt(right, top)),
		Right:  NewPhysicalAxis(s.right, Pt(right, bottom), Pt(right, top)),
	}
}

// sides returns the axes drawn for this pass. Each one is a copy of a plot
// axis. Ticks left at the default angle, and those of synthesized sides, are
// oriented away from the plot area.
func (p *Plot) sides() (sides, error) {
	if p.Bottom == nil && p.Top == nil {
		return sides{}, configError("layout", "no x axis")
	}
	if p.Left == nil && p.Right == nil {
		return sides{}, configError("layout", "no y axis")
	}
	var (
		s = sides{
			bottom: drawn(p.Bottom, p.Top),
			top:    drawn(p.Top, p.Bottom),
			left:   drawn(p.Left, p.Right),
			right:  drawn(p.Right, p.Left),
		}
		angles = []struct {
			*Axis
			Angle float64
		}{
			{s.bottom, -math.Pi / 2},
			{s.top, math.Pi / 2},
			{s.left, math.Pi / 2},
			{s.right, -math.Pi / 2},
		}
	)
	for _, a := range angles {
		if err := a.valid("layout"); err != nil {
			return s, err
		}
		if a.synthesized || a.TicksAngle == defaultTicksAngle {
			a.TicksAngle = a.Angle
		}
	}
	return s, nil
}

func drawn(a, opposite *Axis) *Axis {
	if a != nil {
		return a.Clone()
	}
	x := opposite.Clone()
	x.HideTickText = true
	x.synthesized = true
	return x
}

// Layout places the axes of the plot inside bounds.
func (p *Plot) Layout(bounds Rect) (Result, error) {
	var (
		logger = p.logger()
		m      = measurerOrDefault(p.Measurer)
		res    = Result{
			Bounds: bounds,
			Passes: 1,
		}
	)
	s, err := p.sides()
	if err != nil {
		return res, err
	}
	ind, err := p.indents(s.frame(bounds, Padding{}), m)
	if err != nil {
		return res, err
	}
	frame, at, err := p.arrange(bounds, s, ind, m)
	if err != nil {
		return res, err
	}
	for i := 0; i < p.Refine; i++ {
		next, err := p.indents(frame, m)
		if err != nil {
			return res, err
		}
		if next.near(ind) {
			break
		}
		logger.Debug("refine layout", "pass", i+1, "top", next.Top, "right", next.Right, "bottom", next.Bottom, "left", next.Left)
		ind = next
		if frame, at, err = p.arrange(bounds, s, ind, m); err != nil {
			return res, err
		}
		res.Passes++
	}
	if frame.Bottom.Max.X-frame.Bottom.Min.X <= 0 || frame.Left.Min.Y-frame.Left.Max.Y <= 0 {
		return res, configError("layout", "bounds too small: no room left for the plot area")
	}
	res.Frame = frame
	res.Indents = ind
	res.Legend = at
	res.PlotArea = frame.PlotArea()
	res.Axes = make(map[Orientation]AxisGeometry)
	for _, o := range []Orientation{OrientBottom, OrientLeft, OrientTop, OrientRight} {
		g, err := frame.Axis(o).Layout(m)
		if err != nil {
			return res, err
		}
		res.Axes[o] = g
	}
	if p.Title != "" {
		var (
			size  = m.Measure(p.Title, p.TitleFont)
			shift = frame.Top.Min.Y - (bounds.Top() + ind.Top)
			mid   = (frame.Top.Min.X + frame.Top.Max.X) / 2
		)
		res.Title = &TextBox{
			Text:   p.Title,
			Center: Pt(mid, bounds.Top()+p.Padding.Top+size.H/2+shift),
			Size:   size,
			Font:   p.TitleFont,
			Color:  defaultColor,
		}
	}
	logger.Debug("layout done", "area", res.PlotArea, "passes", res.Passes)
	return res, nil
}

// indents measures the axes of f and returns how far each edge of the plot
// area has to be from the bounds for the axes to fit.
func (p *Plot) indents(f Frame, m TextMeasurer) (Padding, error) {
	ind := p.Padding
	boxes := make(map[Orientation]Rect)
	for _, o := range []Orientation{OrientBottom, OrientLeft, OrientTop, OrientRight} {
		b, err := f.Axis(o).BoundingBox(m)
		if err != nil {
			return ind, err
		}
		boxes[o] = b
	}
	ind.Bottom += math.Max(0, boxes[OrientBottom].Bottom()-f.Bottom.Min.Y)
	ind.Left += math.Max(0, f.Left.Min.X-boxes[OrientLeft].Left())
	ind.Top += math.Max(0, f.Top.Min.Y-boxes[OrientTop].Top())
	ind.Right += math.Max(0, boxes[OrientRight].Right()-f.Right.Min.X)
	if p.Title != "" {
		ind.Top += m.Measure(p.Title, p.TitleFont).H * titleSpacing
	}
	p.logger().Debug("indents", "top", ind.Top, "right", ind.Right, "bottom", ind.Bottom, "left", ind.Left)
	return ind, nil
}

// arrange insets the axes by ind, lets the legend shift them then applies
// the constraints in order.
func (p *Plot) arrange(bounds Rect, s sides, ind Padding, m TextMeasurer) (Frame, Point, error) {
	var (
		frame = s.frame(bounds, ind)
		at    Point
	)
	if p.Legend != nil {
		frame, at = p.Legend.Place(frame, bounds, p.Padding, m)
		p.logger().Debug("legend placed", "x", at.X, "y", at.Y)
	}
	for i, c := range p.Constraints {
		if c == nil {
			continue
		}
		frame = c.Apply(frame)
		p.logger().Debug("constraint applied", "index", i, "area", frame.PlotArea())
	}
	if err := frame.Check(); err != nil {
		return frame, at, err
	}
	return frame, at, nil
}

func each(fn func(*Axis) error, list ...*Axis) error {
	for _, a := range list {
		if a == nil {
			continue
		}
		if err := fn(a); err != nil {
			return err
		}
	}
	return nil
}

func (p *Plot) TranslateX(shift float64) error {
	return each(func(a *Axis) error { return a.TranslateRange(shift) }, p.Bottom, p.Top)
}

func (p *Plot) TranslateY(shift float64) error {
	return each(func(a *Axis) error { return a.TranslateRange(shift) }, p.Left, p.Right)
}

func (p *Plot) ZoomX(prop, focus float64) error {
	return each(func(a *Axis) error { return a.IncreaseRange(prop, focus) }, p.Bottom, p.Top)
}

func (p *Plot) ZoomY(prop, focus float64) error {
	return each(func(a *Axis) error { return a.IncreaseRange(prop, focus) }, p.Left, p.Right)
}

func (p *Plot) DefineX(min, max float64) error {
	return each(func(a *Axis) error { return a.DefineRange(min, max, true) }, p.Bottom, p.Top)
}

func (p *Plot) DefineY(min, max float64) error {
	return each(func(a *Axis) error { return a.DefineRange(min, max, true) }, p.Left, p.Right)
}
