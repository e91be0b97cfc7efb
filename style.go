package axes

import (
	"math"
)

const (
	FontSize = 12.0

	defaultColor = "black"
)

type Font struct {
	Family string
	Size   float64
}

func NewFont(size float64) Font {
	return Font{
		Size: size,
	}
}

type LineStyle struct {
	Color   string
	Width   float64
	Opacity float64
}

func NewLineStyle(color string, width float64) LineStyle {
	return LineStyle{
		Color:   color,
		Width:   width,
		Opacity: 1,
	}
}

// Decoration controls how an axis, its ticks and its labels are drawn and
// how much room they take.
const defaultTicksAngle = 3 * math.Pi / 2

type Decoration struct {
	LargeTickSize float64
	SmallTickSize float64
	// TicksAngle is the angle in radians between the axis direction and its
	// ticks. A plot lays the default out pointing away from its plot area
	// whatever the side; any other value is used as is.
	TicksAngle     float64
	TicksCrossAxis bool

	TickTextNextToAxis bool
	// TickTextAngle rotates tick labels, in degrees.
	TickTextAngle float64
	FlipTickText  bool
	TickTextFont  Font
	TickTextColor string

	LabelFont  Font
	LabelColor string
	// LabelOffset is the extra distance between tick labels and the axis
	// label. With LabelOffsetAbsolute, it is the distance to the axis line.
	LabelOffset         float64
	LabelOffsetAbsolute bool

	Line LineStyle
}

func DefaultDecoration() Decoration {
	return Decoration{
		LargeTickSize: 6,
		SmallTickSize: 2,
		TicksAngle:    defaultTicksAngle,
		TickTextFont:  NewFont(10),
		TickTextColor: defaultColor,
		LabelFont:     NewFont(FontSize),
		LabelColor:    defaultColor,
		Line:          NewLineStyle(defaultColor, 1),
	}
}
