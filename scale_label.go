package axes

import (
	"math"
	"sort"

	"github.com/midbel/slices"
)

type TickLabel struct {
	Name  string
	Value float64
}

// LabelScale is a categorical scale: text labels attached to world values
// on an otherwise linear axis.
type LabelScale struct {
	Labels []TickLabel

	// TicksBetweenText places tick marks halfway between consecutive label
	// values instead of at the labels themselves.
	TicksBetweenText bool
	// KeepOrder skips sorting label values before computing midpoints.
	KeepOrder bool
	// PhysicalSpacingMin is the minimum distance in pixels between two drawn
	// labels. Labels closer to the last drawn one are dropped.
	PhysicalSpacingMin float64
}

func (s *LabelScale) Add(name string, v float64) {
	s.Labels = append(s.Labels, TickLabel{
		Name:  name,
		Value: v,
	})
}

func (*LabelScale) Kind() Kind {
	return Categorical
}

func (*LabelScale) check(float64) error {
	return nil
}

func (*LabelScale) proportion(r Range, v float64) float64 {
	return LinearScale{}.proportion(r, v)
}

func (*LabelScale) world(r Range, p float64) float64 {
	return LinearScale{}.world(r, p)
}

func (s *LabelScale) clone() Scale {
	x := *s
	x.Labels = append([]TickLabel(nil), s.Labels...)
	return &x
}

func (s *LabelScale) ticks(a *Axis, length float64) ([]Tick, error) {
	var (
		list  []Tick
		marks []float64
	)
	if s.TicksBetweenText {
		marks = s.midpoints(a.world)
	} else {
		for _, t := range s.Labels {
			if a.world.Contains(t.Value) {
				marks = append(marks, t.Value)
			}
		}
	}
	for _, i := range s.thin(a, length, marks) {
		list = append(list, Tick{
			Value: marks[i],
			Large: true,
		})
	}

	var shown []TickLabel
	for _, t := range s.Labels {
		if a.world.Contains(t.Value) {
			shown = append(shown, t)
		}
	}
	values := make([]float64, len(shown))
	for i, t := range shown {
		values[i] = t.Value
	}
	for _, i := range s.thin(a, length, values) {
		list = append(list, Tick{
			Value:    shown[i].Value,
			Large:    true,
			Label:    shown[i].Name,
			TextOnly: true,
		})
	}
	return list, nil
}

func (s *LabelScale) midpoints(r Range) []float64 {
	if len(s.Labels) < 2 {
		return nil
	}
	values := make([]float64, 0, len(s.Labels))
	for _, t := range s.Labels {
		values = append(values, t.Value)
	}
	if !s.KeepOrder {
		sort.Float64s(values)
	}
	var (
		mids []float64
		prev = slices.Fst(values)
	)
	for _, v := range slices.Rest(values) {
		if m := (prev + v) / 2; r.Contains(m) {
			mids = append(mids, m)
		}
		prev = v
	}
	return mids
}

// thin walks values in order and returns the indices of the values lying
// further than PhysicalSpacingMin pixels from the last kept one. The first
// value is always kept.
func (s *LabelScale) thin(a *Axis, length float64, values []float64) []int {
	var (
		kept []int
		last = math.NaN()
	)
	for i, v := range values {
		pos := 0.0
		if a.world.Len() != 0 {
			pos = s.proportion(a.world, v) * length
		}
		if !math.IsNaN(last) && math.Abs(pos-last) <= s.PhysicalSpacingMin {
			continue
		}
		kept = append(kept, i)
		last = pos
	}
	return kept
}
