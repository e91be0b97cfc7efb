package axes

import (
	"math"
)

// LogScale maps world values by their decimal logarithm. Both bounds of a
// log axis must be strictly positive.
type LogScale struct{}

func (LogScale) Kind() Kind {
	return Logarithmic
}

func (LogScale) check(v float64) error {
	if !math.IsNaN(v) && v <= 0 {
		return configError("log axis", "bound must be strictly positive (got %g)", v)
	}
	return nil
}

func (LogScale) proportion(r Range, v float64) float64 {
	if v <= 0 {
		return math.NaN()
	}
	var (
		lo = math.Log10(r.F)
		hi = math.Log10(r.T)
	)
	return (math.Log10(v) - lo) / (hi - lo)
}

func (LogScale) world(r Range, p float64) float64 {
	return r.F * math.Pow(r.T/r.F, p)
}

func (LogScale) ticks(a *Axis, _ float64) ([]Tick, error) {
	var (
		lo = a.world.Lo()
		hi = a.world.Hi()
	)
	if lo <= 0 {
		return nil, configError("log ticks", "world range must be strictly positive")
	}
	dist, err := logSpacing(a.TickOptions, lo, hi)
	if err != nil {
		return nil, err
	}
	var (
		first = logFirstTick(a.TickOptions, lo, dist)
		top   = log10(hi)
		large []float64
	)
	for i := 0; i < maxTicks; i++ {
		mark := first + float64(i)*dist
		if mark > top+epsilon {
			break
		}
		large = append(large, math.Pow(10, mark))
	}
	small := logSmallTicks(large, lo, hi, int(dist))
	return a.collect(large, small), nil
}

func (s LogScale) clone() Scale {
	return s
}

// logSpacing returns the distance between large ticks counted in decades.
func logSpacing(opts TickOptions, lo, hi float64) (float64, error) {
	if opts.LargeTickStep != 0 {
		if opts.LargeTickStep < 1 || math.Trunc(opts.LargeTickStep) != opts.LargeTickStep {
			return 0, configError("log ticks", "large tick step must be a whole number of decades (got %g)", opts.LargeTickStep)
		}
		return opts.LargeTickStep, nil
	}
	var (
		mag  = math.Floor(log10(hi)) - math.Floor(log10(lo)) + 1
		dist = 1.0
	)
	for int(mag/dist) > maxLogTicks {
		dist++
	}
	return dist, nil
}

func logFirstTick(opts TickOptions, lo, dist float64) float64 {
	l := log10(lo)
	if opts.LargeTickStep != 0 && opts.LargeTickValue > 0 {
		anchor := log10(opts.LargeTickValue)
		return anchor + math.Ceil((l-anchor)/dist-epsilon)*dist
	}
	first := (math.Floor(l/dist) + 1) * dist
	if first-dist >= l-epsilon {
		first -= dist
	}
	return first
}

func logSmallTicks(large []float64, lo, hi float64, dist int) []float64 {
	var small []float64
	if dist > 1 {
		if len(large) == 0 {
			return nil
		}
		v := large[0]
		for j := 1; j < dist; j++ {
			v /= 10
			if v <= lo {
				break
			}
			small = append(small, v)
		}
		for _, v := range large {
			for j := 1; j < dist; j++ {
				v *= 10
				if v >= hi {
					break
				}
				small = append(small, v)
			}
		}
		return sortTicks(small)
	}
	if len(large) == 0 {
		base := math.Pow(10, math.Floor(log10(lo)))
		for m := 2; m < 10; m++ {
			v := base * float64(m)
			if v > lo && v < hi {
				small = append(small, v)
			}
		}
		return small
	}
	prev := large[0] / 10
	for m := 2; m < 10; m++ {
		if v := prev * float64(m); v > lo {
			small = append(small, v)
		}
	}
	for _, v := range large {
		for m := 2; m < 10; m++ {
			if x := v * float64(m); x < hi {
				small = append(small, x)
			}
		}
	}
	return small
}

// log10 snaps values within rounding noise of an integer so that exact
// powers of ten give exact decades.
func log10(v float64) float64 {
	l := math.Log10(v)
	if r := math.Round(l); math.Abs(l-r) < 1e-12 {
		return r
	}
	return l
}
