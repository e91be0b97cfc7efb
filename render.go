package axes

import (
	"bufio"
	"io"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

// Canvas receives the drawing primitives of a plot.
type Canvas interface {
	Line(Point, Point, LineStyle)
	Polyline([]Point, LineStyle)
	Rect(Rect, string, LineStyle)
	Circle(Point, float64, string)
	Text(TextBox)
}

// Draw lays the plot out inside bounds and draws it on c: background,
// drawables, legend, axes and title.
func (p *Plot) Draw(c Canvas, bounds Rect) (Result, error) {
	res, err := p.Layout(bounds)
	if err != nil {
		return res, err
	}
	if p.Background != "" {
		c.Rect(res.PlotArea, p.Background, LineStyle{})
	}
	for _, i := range p.items {
		i.Draw(c, res.Frame.Axis(i.X), res.Frame.Axis(i.Y))
	}
	if lg, ok := p.Legend.(interface {
		Draw(Canvas, Point, TextMeasurer)
	}); ok {
		lg.Draw(c, res.Legend, p.Measurer)
	}
	for _, o := range []Orientation{OrientBottom, OrientLeft, OrientTop, OrientRight} {
		drawAxis(c, res.Axes[o])
	}
	if res.Title != nil {
		c.Text(*res.Title)
	}
	return res, nil
}

// Render draws the plot as an SVG document of the given size.
func (p *Plot) Render(w io.Writer, width, height float64) error {
	c := NewSVGCanvas(width, height)
	if _, err := p.Draw(c, NewRect(0, 0, width, height)); err != nil {
		return err
	}
	return c.Flush(w)
}

func drawAxis(c Canvas, g AxisGeometry) {
	a := g.Axis.Axis
	if a == nil || a.Hidden {
		return
	}
	c.Line(g.Axis.Min, g.Axis.Max, a.Line)
	for _, m := range g.Marks {
		if !m.TextOnly && !m.Start.Eq(m.End) {
			c.Line(m.Start, m.End, a.Line)
		}
		if m.Text != nil {
			c.Text(*m.Text)
		}
	}
	if g.Label != nil {
		c.Text(*g.Label)
	}
}

type SVGCanvas struct {
	Width  float64
	Height float64

	elems []svg.Element
}

func NewSVGCanvas(width, height float64) *SVGCanvas {
	return &SVGCanvas{
		Width:  width,
		Height: height,
	}
}

func (c *SVGCanvas) Line(from, to Point, style LineStyle) {
	li := svg.NewLine(toPos(from), toPos(to))
	li.Stroke = getStroke(style)
	c.elems = append(c.elems, li.AsElement())
}

func (c *SVGCanvas) Polyline(pts []Point, style LineStyle) {
	if len(pts) == 0 {
		return
	}
	pat := getBasePath("none")
	pat.Stroke = getStroke(style)
	pat.AbsMoveTo(toPos(slices.Fst(pts)))
	for _, p := range slices.Rest(pts) {
		pat.AbsLineTo(toPos(p))
	}
	c.elems = append(c.elems, pat.AsElement())
}

func (c *SVGCanvas) Rect(r Rect, fill string, style LineStyle) {
	if fill != "" {
		var rec svg.Rect
		rec.Pos = svg.NewPos(r.X, r.Y)
		rec.Dim = svg.NewDim(r.W, r.H)
		rec.Fill = svg.NewFill(fill)
		c.elems = append(c.elems, rec.AsElement())
	}
	if style.Width <= 0 {
		return
	}
	pat := getBasePath("none")
	pat.Stroke = getStroke(style)
	pat.AbsMoveTo(svg.NewPos(r.Left(), r.Top()))
	pat.AbsLineTo(svg.NewPos(r.Right(), r.Top()))
	pat.AbsLineTo(svg.NewPos(r.Right(), r.Bottom()))
	pat.AbsLineTo(svg.NewPos(r.Left(), r.Bottom()))
	pat.ClosePath()
	c.elems = append(c.elems, pat.AsElement())
}

func (c *SVGCanvas) Circle(at Point, radius float64, fill string) {
	var el svg.Circle
	el.Pos = toPos(at)
	el.Fill = svg.NewFill(fill)
	el.Radius = radius
	c.elems = append(c.elems, el.AsElement())
}

func (c *SVGCanvas) Text(t TextBox) {
	grp := svg.NewGroup(svg.WithTranslate(t.Center.X, t.Center.Y))
	if t.Color != "" {
		grp.Fill = svg.NewFill(t.Color)
	}
	grp.Transform.RA = t.Angle

	text := svg.NewText(t.Text)
	text.Pos = svg.NewPos(0, 0)
	text.Font = svg.NewFont(t.Font.Size)
	text.Anchor = "middle"
	text.Baseline = "middle"
	grp.Append(text.AsElement())
	c.elems = append(c.elems, grp.AsElement())
}

// Flush writes the SVG document holding everything drawn so far.
func (c *SVGCanvas) Flush(w io.Writer) error {
	el := svg.NewSVG(svg.WithDimension(c.Width, c.Height))
	el.OmitProlog = true
	for _, e := range c.elems {
		el.Append(e)
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func toPos(p Point) svg.Pos {
	return svg.NewPos(p.X, p.Y)
}

func getStroke(style LineStyle) svg.Stroke {
	color := style.Color
	if color == "" {
		color = currentColour
	}
	width := style.Width
	if width <= 0 {
		width = 1
	}
	sk := svg.NewStroke(color, width)
	if style.Opacity > 0 && style.Opacity < 1 {
		sk.Opacity = style.Opacity
	}
	return sk
}

func getBasePath(fill string) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Fill = svg.NewFill(fill)
	return pat
}
