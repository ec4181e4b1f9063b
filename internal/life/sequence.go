package life

// Observer is notified of every generation as the Sequencer produces it.
type Observer interface {
	OnGeneration(index int, g *Grid)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(index int, g *Grid)

func (f ObserverFunc) OnGeneration(index int, g *Grid) { f(index, g) }

// Sequencer produces an ordered generation sequence from an initial grid.
type Sequencer struct {
	workers   int
	observers []Observer
}

func NewSequencer() *Sequencer {
	return &Sequencer{workers: 1, observers: make([]Observer, 0)}
}

// SetWorkers sets how many goroutines compute a single step. Values below two
// keep stepping on the calling goroutine.
func (s *Sequencer) SetWorkers(n int) { s.workers = n }

func (s *Sequencer) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run returns count generations. Index 0 is initial itself; index k is initial
// stepped k times. Generation k only depends on k-1, so the loop is strictly
// sequential.
func (s *Sequencer) Run(initial *Grid, count int) ([]*Grid, error) {
	if count < 1 {
		return nil, Misconfigured("generations", count, "must be at least 1")
	}
	if err := initial.validate(); err != nil {
		return nil, err
	}

	seq := make([]*Grid, 0, count)
	seq = append(seq, initial)
	s.notify(0, initial)

	for i := 1; i < count; i++ {
		next, err := s.step(seq[i-1])
		if err != nil {
			return nil, err
		}
		seq = append(seq, next)
		s.notify(i, next)
	}
	return seq, nil
}

func (s *Sequencer) step(g *Grid) (*Grid, error) {
	if s.workers > 1 {
		return StepParallel(g, s.workers)
	}
	return Step(g)
}

func (s *Sequencer) notify(index int, g *Grid) {
	for _, o := range s.observers {
		o.OnGeneration(index, g)
	}
}

// Run is shorthand for NewSequencer().Run(initial, count).
func Run(initial *Grid, count int) ([]*Grid, error) {
	return NewSequencer().Run(initial, count)
}

// Populations returns the live-cell count of every grid in seq.
func Populations(seq []*Grid) []int {
	out := make([]int, len(seq))
	for i, g := range seq {
		out[i] = g.Population()
	}
	return out
}
