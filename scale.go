package axes

import (
	"math"
)

type Kind int

const (
	Linear Kind = iota
	Logarithmic
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Logarithmic:
		return "log"
	case Categorical:
		return "label"
	default:
		return "unknown"
	}
}

// Scale is the variant part of an Axis. The set of scales is closed:
// LinearScale, LogScale and *LabelScale are the only implementations.
type Scale interface {
	Kind() Kind

	check(float64) error
	proportion(Range, float64) float64
	world(Range, float64) float64
	ticks(*Axis, float64) ([]Tick, error)
	clone() Scale
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func unsetRange() Range {
	return NewRange(math.NaN(), math.NaN())
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

func (r Range) Lo() float64 {
	return math.Min(r.F, r.T)
}

func (r Range) Hi() float64 {
	return math.Max(r.F, r.T)
}

func (r Range) IsSet() bool {
	return !math.IsNaN(r.F) && !math.IsNaN(r.T)
}

func (r Range) Contains(v float64) bool {
	return v >= r.Lo() && v <= r.Hi()
}

func (r Range) clamp(v float64) float64 {
	return math.Max(r.Lo(), math.Min(r.Hi(), v))
}

type LinearScale struct{}

func (LinearScale) Kind() Kind {
	return Linear
}

func (LinearScale) check(float64) error {
	return nil
}

func (LinearScale) proportion(r Range, v float64) float64 {
	return (v - r.F) / r.Len()
}

func (LinearScale) world(r Range, p float64) float64 {
	return r.F + p*r.Len()
}

func (LinearScale) ticks(a *Axis, length float64) ([]Tick, error) {
	return linearTicks(a, length)
}

func (s LinearScale) clone() Scale {
	return s
}
