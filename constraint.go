package axes

import (
	"math"
)

// Frame is the set of the four physical axes of a plot. Bottom and Top run
// from left to right, Left and Right from bottom to top, and the four of
// them share their corners.
type Frame struct {
	Bottom PhysicalAxis
	Top    PhysicalAxis
	Left   PhysicalAxis
	Right  PhysicalAxis
}

func (f Frame) Axis(o Orientation) PhysicalAxis {
	switch o {
	case OrientTop:
		return f.Top
	case OrientLeft:
		return f.Left
	case OrientRight:
		return f.Right
	default:
		return f.Bottom
	}
}

// PlotArea is the rectangle enclosed by the axes.
func (f Frame) PlotArea() Rect {
	return RectFromPoints(f.Bottom.Min, f.Right.Max)
}

// Check verifies that the axes still share their corners.
func (f Frame) Check() error {
	corners := []struct {
		Name string
		A, B Point
	}{
		{Name: "bottom-left", A: f.Bottom.Min, B: f.Left.Min},
		{Name: "bottom-right", A: f.Bottom.Max, B: f.Right.Min},
		{Name: "top-left", A: f.Top.Min, B: f.Left.Max},
		{Name: "top-right", A: f.Top.Max, B: f.Right.Max},
	}
	for _, c := range corners {
		if !c.A.Eq(c.B) {
			return invariantError("frame", "%s corner is not shared (%v != %v)", c.Name, c.A, c.B)
		}
	}
	return nil
}

func (f Frame) moveLeft(dx float64) Frame {
	f.Bottom.Min.X += dx
	f.Top.Min.X += dx
	f.Left.Min.X += dx
	f.Left.Max.X += dx
	return f
}

func (f Frame) moveRight(dx float64) Frame {
	f.Bottom.Max.X += dx
	f.Top.Max.X += dx
	f.Right.Min.X += dx
	f.Right.Max.X += dx
	return f
}

func (f Frame) moveBottom(dy float64) Frame {
	f.Bottom.Min.Y += dy
	f.Bottom.Max.Y += dy
	f.Left.Min.Y += dy
	f.Right.Min.Y += dy
	return f
}

func (f Frame) moveTop(dy float64) Frame {
	f.Top.Min.Y += dy
	f.Top.Max.Y += dy
	f.Left.Max.Y += dy
	f.Right.Max.Y += dy
	return f
}

// Constraint transforms a frame. Constraints are applied in order after the
// axes have been laid out; each one sees the result of the previous one.
type Constraint interface {
	Apply(Frame) Frame
}

type ConstraintFunc func(Frame) Frame

func (fn ConstraintFunc) Apply(f Frame) Frame {
	return fn(f)
}

func ApplyConstraints(f Frame, list ...Constraint) Frame {
	for _, c := range list {
		if c == nil {
			continue
		}
		f = c.Apply(f)
	}
	return f
}

type Direction int

const (
	DirX Direction = iota
	DirY
)

func (d Direction) String() string {
	if d == DirY {
		return "y"
	}
	return "x"
}

// PixelWorldLength makes one world unit of the primary axis of Direction
// span exactly Pixels pixels. By default both edges move by the same amount;
// Pin keeps one edge in place (OrientLeft or OrientRight for X, OrientBottom
// or OrientTop for Y).
type PixelWorldLength struct {
	Direction Direction
	Pixels    float64
	Pin       Orientation
}

func (c PixelWorldLength) Apply(f Frame) Frame {
	if c.Pixels <= 0 {
		return f
	}
	if c.Direction == DirY {
		var (
			want  = f.Left.Axis.WorldLength() * c.Pixels
			delta = f.Left.Length() - want
		)
		bottom, top := split(delta, c.Pin == OrientBottom, c.Pin == OrientTop)
		return f.moveBottom(-bottom).moveTop(top)
	}
	var (
		want  = f.Bottom.Axis.WorldLength() * c.Pixels
		delta = f.Bottom.Length() - want
	)
	left, right := split(delta, c.Pin == OrientLeft, c.Pin == OrientRight)
	return f.moveLeft(left).moveRight(-right)
}

// AxisPosition moves the line of one axis to a physical coordinate (Y for
// top and bottom axes, X for left and right). The perpendicular axes follow
// through the shared corners; the opposite axis does not move.
type AxisPosition struct {
	Axis     Orientation
	Position float64
}

func (c AxisPosition) Apply(f Frame) Frame {
	switch c.Axis {
	case OrientBottom:
		return f.moveBottom(c.Position - f.Bottom.Min.Y)
	case OrientTop:
		return f.moveTop(c.Position - f.Top.Min.Y)
	case OrientLeft:
		return f.moveLeft(c.Position - f.Left.Min.X)
	case OrientRight:
		return f.moveRight(c.Position - f.Right.Min.X)
	default:
		return f
	}
}

// AspectRatio forces the ratio between the pixels used by one world unit on
// the X axis and on the Y axis. It only ever shrinks the plot area, in the
// direction with spare room. PinX (OrientLeft, OrientRight) and PinY
// (OrientBottom, OrientTop) keep an edge in place instead of shrinking
// symmetrically.
type AspectRatio struct {
	Ratio float64
	PinX  Orientation
	PinY  Orientation
}

func (c AspectRatio) Apply(f Frame) Frame {
	if c.Ratio <= 0 {
		return f
	}
	var (
		xWorld = f.Bottom.Axis.WorldLength()
		yWorld = f.Left.Axis.WorldLength()
		xPhys  = f.Bottom.Length()
		yPhys  = f.Left.Length()
	)
	if xWorld == 0 || yWorld == 0 || xPhys == 0 || yPhys == 0 {
		return f
	}
	var (
		xSize   = xWorld / xPhys
		ySize   = yWorld / yPhys
		current = ySize / xSize
	)
	if c.Ratio > current {
		var (
			height = yWorld / (c.Ratio * xSize)
			change = math.Max(0, yPhys-height)
		)
		bottom, top := split(change, c.PinY == OrientBottom, c.PinY == OrientTop)
		return f.moveBottom(-bottom).moveTop(top)
	}
	var (
		width  = xWorld / (ySize / c.Ratio)
		change = math.Max(0, xPhys-width)
	)
	left, right := split(change, c.PinX == OrientLeft, c.PinX == OrientRight)
	return f.moveLeft(left).moveRight(-right)
}

// split shares delta between two edges. A pinned edge gets nothing.
func split(delta float64, pinFirst, pinSecond bool) (float64, float64) {
	switch {
	case pinFirst:
		return 0, delta
	case pinSecond:
		return delta, 0
	default:
		return delta / 2, delta / 2
	}
}
