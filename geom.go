package axes

import (
	"math"
)

type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) Add(o Point) Point {
	return Pt(p.X+o.X, p.Y+o.Y)
}

func (p Point) Sub(o Point) Point {
	return Pt(p.X-o.X, p.Y-o.Y)
}

func (p Point) Mul(f float64) Point {
	return Pt(p.X*f, p.Y*f)
}

func (p Point) Dot(o Point) float64 {
	return p.X*o.X + p.Y*o.Y
}

func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Unit returns the zero point when p has no length.
func (p Point) Unit() Point {
	n := p.Len()
	if n == 0 {
		return Point{}
	}
	return p.Mul(1 / n)
}

func (p Point) Eq(o Point) bool {
	return nearly(p.X, o.X) && nearly(p.Y, o.Y)
}

// rotate turns p by angle (in degrees) around the origin.
func (p Point) rotate(angle float64) Point {
	sin, cos := math.Sincos(angle * deg2rad)
	return Pt(p.X*cos-p.Y*sin, p.X*sin+p.Y*cos)
}

type Size struct {
	W float64
	H float64
}

// Rect is an axis aligned rectangle in device coordinates, Y growing downward.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{
		X: x,
		Y: y,
		W: w,
		H: h,
	}
}

func RectFromPoints(a, b Point) Rect {
	return Rect{
		X: math.Min(a.X, b.X),
		Y: math.Min(a.Y, b.Y),
		W: math.Abs(a.X - b.X),
		H: math.Abs(a.Y - b.Y),
	}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() Point {
	return Pt(r.X+r.W/2, r.Y+r.H/2)
}

func (r Rect) Union(o Rect) Rect {
	var (
		x1 = math.Min(r.Left(), o.Left())
		y1 = math.Min(r.Top(), o.Top())
		x2 = math.Max(r.Right(), o.Right())
		y2 = math.Max(r.Bottom(), o.Bottom())
	)
	return NewRect(x1, y1, x2-x1, y2-y1)
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Inset shrinks r by the given padding on each side.
func (r Rect) Inset(p Padding) Rect {
	return NewRect(r.X+p.Left, r.Y+p.Top, r.W-p.Horizontal(), r.H-p.Vertical())
}

const (
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
	rad2deg    = halfcircle / math.Pi

	epsilon = 1e-9
)

func nearly(a, b float64) bool {
	return math.Abs(a-b) <= epsilon*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
