package timeline

import (
	"github.com/san-kum/gridlife/internal/life"
)

// DefaultEpsilon is the gap, in percent of the cycle, between the last
// visible keyframe and the invisible one. Renderers reject two keyframes at
// the same percentage, so the drop is written as two adjacent stops.
const DefaultEpsilon = 0.001

// MinEpsilon is the smallest accepted gap. Smaller gaps can collapse both
// stops onto one selector once the document rounds them.
const MinEpsilon = 1e-6

// Keyframe is one stop of a cyclic opacity curve.
type Keyframe struct {
	Percent float64
	Opacity float64
}

// Curve is the opacity cycle shared by every layer in cyclic mode: visible
// for the first Cutoff percent of the cycle, invisible for the rest.
type Curve struct {
	Cutoff  float64
	Epsilon float64
}

// NewCurve derives the shared curve for s. Cutoff is frame/total*100.
func NewCurve(s *Schedule, epsilon float64) (*Curve, error) {
	if epsilon < MinEpsilon || epsilon >= 1 {
		return nil, life.Misconfigured("epsilon", epsilon, "must be within [1e-6, 1)")
	}
	return &Curve{
		Cutoff:  cyclePercent(s.Frame(), s.Total()),
		Epsilon: epsilon,
	}, nil
}

// Keyframes returns the stops of the curve in ascending order. A single
// generation occupies the whole cycle and never drops.
func (c *Curve) Keyframes() []Keyframe {
	if c.Cutoff+c.Epsilon >= 100 {
		return []Keyframe{{0, 1}, {100, 1}}
	}
	return []Keyframe{
		{0, 1},
		{c.Cutoff, 1},
		{c.Cutoff + c.Epsilon, 0},
		{100, 0},
	}
}

// VisibleAt evaluates the curve at pct percent of the cycle. The drop takes
// effect at Cutoff itself, which keeps consecutive layers from overlapping at
// a frame boundary.
func (c *Curve) VisibleAt(pct float64) bool {
	return pct >= 0 && pct < c.Cutoff
}
