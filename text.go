package axes

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextMeasurer reports the size of a string drawn with a font.
type TextMeasurer interface {
	Measure(string, Font) Size
}

// FaceMeasurer measures text with a font face designed at the Nominal size
// and scales the result linearly to the requested size.
type FaceMeasurer struct {
	Face    font.Face
	Nominal float64
}

var DefaultMeasurer TextMeasurer = FaceMeasurer{
	Face:    basicfont.Face7x13,
	Nominal: 13,
}

func (m FaceMeasurer) Measure(str string, f Font) Size {
	if m.Face == nil || m.Nominal <= 0 {
		return Size{}
	}
	var (
		adv   = font.MeasureString(m.Face, str)
		met   = m.Face.Metrics()
		scale = f.Size / m.Nominal
	)
	if f.Size <= 0 {
		scale = 1
	}
	return Size{
		W: fixedToFloat(adv) * scale,
		H: fixedToFloat(met.Height) * scale,
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func measurerOrDefault(m TextMeasurer) TextMeasurer {
	if m == nil {
		return DefaultMeasurer
	}
	return m
}
