package axes

import (
	"math"
)

type Placement int

const (
	Inside Placement = iota
	Outside
)

func (p Placement) String() string {
	if p == Outside {
		return "outside"
	}
	return "inside"
}

// LegendLayout positions a legend relative to the laid out axes. It may move
// the edges of the frame to make room for itself and returns the top left
// corner where it should be drawn.
type LegendLayout interface {
	Place(Frame, Rect, Padding, TextMeasurer) (Frame, Point)
}

type LegendEntry struct {
	Label string
	Color string
}

// Legend is attached to a corner of the plot area given by Orient (a
// combination of one horizontal and one vertical orientation). PlaceX tells
// whether it sits inside or outside the left/right edge it is attached to,
// PlaceY does the same for the top/bottom edge.
type Legend struct {
	Title   string
	Entries []LegendEntry
	Font    Font

	Orient  Orientation
	PlaceX  Placement
	PlaceY  Placement
	OffsetX float64
	OffsetY float64

	NeverShiftAxes bool
}

func NewLegend(entries ...LegendEntry) *Legend {
	return &Legend{
		Entries: entries,
		Font:    NewFont(FontSize),
		Orient:  OrientTop | OrientRight,
		PlaceX:  Outside,
		PlaceY:  Inside,
		OffsetX: 10,
		OffsetY: 1,
	}
}

const (
	legendSample = 20.0
	legendGap    = 4.0
)

func (g *Legend) lineHeight() float64 {
	return g.Font.Size * 1.4
}

func (g *Legend) Size(m TextMeasurer) Size {
	m = measurerOrDefault(m)
	var (
		width float64
		rows  = len(g.Entries)
	)
	for _, e := range g.Entries {
		width = math.Max(width, m.Measure(e.Label, g.Font).W)
	}
	width += legendSample + legendGap
	if g.Title != "" {
		rows++
		width = math.Max(width, m.Measure(g.Title, g.Font).W)
	}
	return Size{
		W: width + 2*legendGap,
		H: float64(rows)*g.lineHeight() + 2*legendGap,
	}
}

func (g *Legend) Place(f Frame, bounds Rect, pad Padding, m TextMeasurer) (Frame, Point) {
	var (
		size   = g.Size(m)
		orient = g.Orient
		at     Point
	)
	if orient&(OrientTop|OrientBottom) == 0 {
		orient |= OrientTop
	}
	if orient&(OrientLeft|OrientRight) == 0 {
		orient |= OrientRight
	}
	if orient&OrientBottom != 0 {
		at.Y = f.Left.Min.Y
		if g.PlaceY == Inside {
			at.Y -= size.H
		}
	} else {
		at.Y = f.Left.Max.Y
		if g.PlaceY == Outside {
			at.Y -= size.H
		}
	}
	if orient&OrientLeft != 0 {
		at.X = f.Bottom.Min.X
		if g.PlaceX == Outside {
			at.X -= size.W
		}
	} else {
		at.X = f.Bottom.Max.X
		if g.PlaceX == Inside {
			at.X -= size.W
		}
	}
	at = at.Add(Pt(g.OffsetX, g.OffsetY))
	if g.NeverShiftAxes {
		return f, at
	}
	limit := bounds.Inset(pad)
	if d := limit.Left() - at.X; d > 0 {
		f, at.X = f.moveLeft(d), at.X+d
	}
	if d := at.X + size.W - limit.Right(); d > 0 {
		f, at.X = f.moveRight(-d), at.X-d
	}
	if d := limit.Top() - at.Y; d > 0 {
		f, at.Y = f.moveTop(d), at.Y+d
	}
	if d := at.Y + size.H - limit.Bottom(); d > 0 {
		f, at.Y = f.moveBottom(-d), at.Y-d
	}
	return f, at
}

func (g *Legend) Draw(c Canvas, at Point, m TextMeasurer) {
	var (
		size   = g.Size(m)
		offset = g.lineHeight()
		top    = at.Y + legendGap + offset/2
	)
	c.Rect(NewRect(at.X, at.Y, size.W, size.H), "white", NewLineStyle(defaultColor, 1))
	if g.Title != "" {
		c.Text(TextBox{
			Text:   g.Title,
			Center: Pt(at.X+size.W/2, top),
			Size:   measurerOrDefault(m).Measure(g.Title, g.Font),
			Font:   g.Font,
			Color:  defaultColor,
		})
		top += offset
	}
	for i, e := range g.Entries {
		var (
			y    = top + float64(i)*offset
			x    = at.X + legendGap
			text = measurerOrDefault(m).Measure(e.Label, g.Font)
		)
		c.Line(Pt(x, y), Pt(x+legendSample, y), NewLineStyle(e.Color, 1))
		c.Text(TextBox{
			Text:   e.Label,
			Center: Pt(x+legendSample+legendGap+text.W/2, y),
			Size:   text,
			Font:   g.Font,
			Color:  defaultColor,
		})
	}
}
