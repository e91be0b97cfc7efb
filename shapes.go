package axes

var DefaultSize float64 = 4

type PointFunc func(Canvas, Point, string)

func GetCircle(c Canvas, pos Point, color string) {
	c.Circle(pos, DefaultSize/2, color)
}

func GetSquare(c Canvas, pos Point, color string) {
	half := DefaultSize / 2
	c.Rect(NewRect(pos.X-half, pos.Y-half, DefaultSize, DefaultSize), color, LineStyle{})
}

func GetDiamond(c Canvas, pos Point, color string) {
	half := DefaultSize / 2
	c.Polyline([]Point{
		Pt(pos.X, pos.Y-half),
		Pt(pos.X+half, pos.Y),
		Pt(pos.X, pos.Y+half),
		Pt(pos.X-half, pos.Y),
		Pt(pos.X, pos.Y-half),
	}, NewLineStyle(color, 1))
}
