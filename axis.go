package axes

import (
	"math"
)

const (
	defaultFormat = "%.5g"

	// largeClip bounds the extrapolation of unclipped transforms to a
	// hundred times the physical segment.
	largeClip = 100.0
	// minDefineRange is the smallest proportion of the current range
	// DefineRange accepts.
	minDefineRange = 0.01
	// maxShrink is the lower bound of IncreaseRange proportions.
	maxShrink = -0.99
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

func (o Orientation) String() string {
	switch o {
	case OrientTop:
		return "top"
	case OrientRight:
		return "right"
	case OrientBottom:
		return "bottom"
	case OrientLeft:
		return "left"
	case 0:
		return "none"
	default:
		return "mixed"
	}
}

// Axis holds the world range of one plot axis and the options used to place
// and decorate its ticks. The zero value is not usable: create axes with
// NewAxis or one of its shortcuts.
type Axis struct {
	Label        string
	NumberFormat string
	Reversed     bool
	// Hidden axes take part in the layout but draw nothing.
	Hidden bool
	// HideTickText suppresses tick labels and the axis label.
	HideTickText bool

	TickOptions
	Decoration

	scale Scale
	world Range
	// copy of the opposite axis standing in for a missing side
	synthesized bool
}

func NewAxis(s Scale, min, max float64) (*Axis, error) {
	if s == nil {
		s = LinearScale{}
	}
	a := Axis{
		NumberFormat: defaultFormat,
		TickOptions:  DefaultTickOptions(),
		Decoration:   DefaultDecoration(),
		scale:        s,
		world:        unsetRange(),
	}
	if err := a.SetWorld(min, max); err != nil {
		return nil, err
	}
	return &a, nil
}

func NewLinearAxis(min, max float64) *Axis {
	a, _ := NewAxis(LinearScale{}, min, max)
	return a
}

func NewLogAxis(min, max float64) (*Axis, error) {
	return NewAxis(LogScale{}, min, max)
}

func NewLabelAxis(min, max float64, labels ...TickLabel) *Axis {
	a, _ := NewAxis(&LabelScale{Labels: labels}, min, max)
	return a
}

func (a *Axis) Kind() Kind {
	return a.scale.Kind()
}

func (a *Axis) Scale() Scale {
	return a.scale
}

func (a *Axis) World() Range {
	return a.world
}

func (a *Axis) WorldMin() float64 {
	return a.world.F
}

func (a *Axis) WorldMax() float64 {
	return a.world.T
}

// WorldLength is the absolute size of the world range.
func (a *Axis) WorldLength() float64 {
	return math.Abs(a.world.Len())
}

func (a *Axis) SetWorldMin(v float64) error {
	return a.SetWorld(v, a.world.T)
}

func (a *Axis) SetWorldMax(v float64) error {
	return a.SetWorld(a.world.F, v)
}

// SetWorld replaces both bounds at once. NaN leaves a bound unset.
func (a *Axis) SetWorld(min, max float64) error {
	if err := a.scale.check(min); err != nil {
		return err
	}
	if err := a.scale.check(max); err != nil {
		return err
	}
	a.world = NewRange(min, max)
	return nil
}

func (a *Axis) AddLabel(name string, v float64) error {
	s, ok := a.scale.(*LabelScale)
	if !ok {
		return configError("add label", "%s axis does not hold labels", a.Kind())
	}
	s.Add(name, v)
	return nil
}

func (a *Axis) valid(op string) error {
	if !a.world.IsSet() {
		return configError(op, "world range is not set")
	}
	return nil
}

func (a *Axis) OutOfRange(v float64) (bool, error) {
	if err := a.valid("out of range"); err != nil {
		return false, err
	}
	return !a.world.Contains(v), nil
}

// LUB widens the range of a to also cover the range of other. An unset bound
// adopts the bound of other.
func (a *Axis) LUB(other *Axis) error {
	if other == nil {
		return nil
	}
	var (
		min = a.world.F
		max = a.world.T
	)
	if v := other.world.F; !math.IsNaN(v) && (math.IsNaN(min) || v < min) {
		min = v
	}
	if v := other.world.T; !math.IsNaN(v) && (math.IsNaN(max) || v > max) {
		max = v
	}
	return a.SetWorld(min, max)
}

func (a *Axis) WorldToPhysical(v float64, min, max Point, clip bool) (Point, error) {
	if err := a.valid("world to physical"); err != nil {
		return Point{}, err
	}
	return a.worldToPhysical(v, min, max, clip), nil
}

func (a *Axis) PhysicalToWorld(p, min, max Point, clip bool) (float64, error) {
	if err := a.valid("physical to world"); err != nil {
		return 0, err
	}
	if min.Eq(max) {
		return 0, configError("physical to world", "physical segment has no length")
	}
	return a.physicalToWorld(p, min, max, clip), nil
}

func (a *Axis) worldToPhysical(v float64, min, max Point, clip bool) Point {
	if a.Reversed {
		min, max = max, min
	}
	if clip {
		if a.world.F < a.world.T {
			if v > a.world.T {
				return max
			}
			if v < a.world.F {
				return min
			}
		} else {
			if v < a.world.T {
				return max
			}
			if v > a.world.F {
				return min
			}
		}
	}
	var prop float64
	if a.world.Len() == 0 {
		prop = -largeClip
		if v >= a.world.F {
			prop = largeClip
		}
	} else {
		prop = a.scale.proportion(a.world, v)
	}
	switch {
	case math.IsNaN(prop) || prop < -largeClip:
		prop = -largeClip
	case prop > largeClip:
		prop = largeClip
	}
	return min.Add(max.Sub(min).Mul(prop))
}

func (a *Axis) physicalToWorld(p, min, max Point, clip bool) float64 {
	if a.Reversed {
		min, max = max, min
	}
	v := a.project(p, min, max)
	if clip {
		v = a.world.clamp(v)
	}
	return v
}

// project maps p onto the segment min-max and returns the matching world
// value, ignoring Reversed.
func (a *Axis) project(p, min, max Point) float64 {
	var (
		dir  = max.Sub(min)
		size = dir.Len()
		prop = dir.Unit().Dot(p.Sub(min)) / size
	)
	return a.scale.world(a.world, prop)
}

// modifyRange maps the unit segment (0,0)-(1,0), with its ends moved by
// dmin and dmax, back to world coordinates and adopts the result as the new
// range.
func (a *Axis) modifyRange(op string, dmin, dmax float64) error {
	if err := a.valid(op); err != nil {
		return err
	}
	var (
		origin = Pt(0, 0)
		unit   = Pt(1, 0)
		min    = a.project(Pt(dmin, 0), origin, unit)
		max    = a.project(Pt(1+dmax, 0), origin, unit)
	)
	return a.SetWorld(min, max)
}

// IncreaseRange grows (or shrinks for negative values) the range by the
// given proportion, keeping the world value at focus (a proportion of the
// axis) at the same place.
func (a *Axis) IncreaseRange(prop, focus float64) error {
	prop = math.Max(prop, maxShrink)
	focus = math.Max(0, math.Min(1, focus))
	return a.modifyRange("increase range", -prop*focus, prop*(1-focus))
}

// DefineRange sets the range to the part of the current one found between
// the min and max proportions.
func (a *Axis) DefineRange(min, max float64, clip bool) error {
	if min > max {
		min, max = max, min
	}
	if clip {
		min = math.Max(0, math.Min(1, min))
		max = math.Max(0, math.Min(1, max))
	}
	if max-min < minDefineRange {
		if max <= 1-minDefineRange {
			max = min + minDefineRange
		} else {
			min = max - minDefineRange
		}
	}
	return a.modifyRange("define range", min, max-1)
}

// TranslateRange shifts the range by a proportion of its length.
func (a *Axis) TranslateRange(shift float64) error {
	return a.modifyRange("translate range", shift, shift)
}

// Ticks places the ticks of a for a physical extent of length pixels.
func (a *Axis) Ticks(length float64) ([]Tick, error) {
	if err := a.valid("ticks"); err != nil {
		return nil, err
	}
	return a.scale.ticks(a, length)
}

// Clone returns a deep copy of a. The copy shares nothing with a.
func (a *Axis) Clone() *Axis {
	x := *a
	x.scale = a.scale.clone()
	return &x
}
