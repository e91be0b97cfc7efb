package axes

// Snapshot holds private copies of the four axes of a plot. It is not
// affected by later changes to the plot or its axes.
type Snapshot struct {
	bottom *Axis
	top    *Axis
	left   *Axis
	right  *Axis
}

func (s Snapshot) IsZero() bool {
	return s.bottom == nil && s.top == nil && s.left == nil && s.right == nil
}

func (p *Plot) Snapshot() Snapshot {
	return Snapshot{
		bottom: cloneAxis(p.Bottom),
		top:    cloneAxis(p.Top),
		left:   cloneAxis(p.Left),
		right:  cloneAxis(p.Right),
	}
}

// Restore replaces the axes of p by copies of the ones saved in s. The
// snapshot can be restored again afterwards. Restoring the zero Snapshot
// leaves p untouched.
func (p *Plot) Restore(s Snapshot) {
	if s.IsZero() {
		return
	}
	p.Bottom = cloneAxis(s.bottom)
	p.Top = cloneAxis(s.top)
	p.Left = cloneAxis(s.left)
	p.Right = cloneAxis(s.right)
}

func cloneAxis(a *Axis) *Axis {
	if a == nil {
		return nil
	}
	return a.Clone()
}
