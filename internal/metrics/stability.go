package metrics

import "github.com/san-kum/gridlife/internal/life"

// Stability records the first generation identical to its predecessor, the
// point from which the sequence no longer changes. Value is -1 until one is
// seen.
type Stability struct {
	name   string
	prev   *life.Grid
	settle int
}

func NewStability() *Stability {
	return &Stability{name: "settled_at", settle: -1}
}

func (s *Stability) Name() string { return s.name }

func (s *Stability) OnGeneration(index int, g *life.Grid) {
	if s.settle < 0 && s.prev != nil && s.prev.Equal(g) {
		s.settle = index
	}
	s.prev = g
}

func (s *Stability) Value() float64 { return float64(s.settle) }

func (s *Stability) Reset() {
	s.prev = nil
	s.settle = -1
}
