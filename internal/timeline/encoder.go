package timeline

import (
	"fmt"
	"sort"
	"time"
)

// Animation is the encoded visibility schedule of one generation layer.
type Animation interface {
	// Window returns the absolute window the animation reproduces.
	Window() Window
	// Visible reports whether the layer is shown at time t.
	Visible(t time.Duration) bool
}

// Encoder turns a Schedule into one Animation per generation.
type Encoder interface {
	Name() string
	Encode(s *Schedule) ([]Animation, error)
}

// Discrete is a layer shown from Begin for Duration with instantaneous
// transitions, then frozen invisible.
type Discrete struct {
	Index    int
	Begin    time.Duration
	Duration time.Duration
}

func (d *Discrete) Window() Window {
	return Window{Index: d.Index, Begin: d.Begin, Duration: d.Duration}
}

func (d *Discrete) Visible(t time.Duration) bool {
	return t >= d.Begin && t < d.Begin+d.Duration
}

// Cyclic is a layer that plays the shared Curve in a loop of length Period,
// starting Offset after the document begins.
type Cyclic struct {
	Index  int
	Curve  *Curve
	Offset time.Duration
	Period time.Duration
	Frame  time.Duration
}

func (c *Cyclic) Window() Window {
	return Window{Index: c.Index, Begin: c.Offset, Duration: c.Frame}
}

func (c *Cyclic) Visible(t time.Duration) bool {
	if t < c.Offset {
		return false
	}
	elapsed := (t - c.Offset) % c.Period
	return c.Curve.VisibleAt(cyclePercent(elapsed, c.Period))
}

// DiscreteEncoder produces absolute, non-interpolated windows.
type DiscreteEncoder struct{}

func (DiscreteEncoder) Name() string { return ModeDiscrete }

func (DiscreteEncoder) Encode(s *Schedule) ([]Animation, error) {
	anims := make([]Animation, s.Len())
	for i, w := range s.windows {
		anims[i] = &Discrete{Index: i, Begin: w.Begin, Duration: w.Duration}
	}
	return anims, nil
}

// CyclicEncoder produces one shared Curve with per-layer start offsets.
type CyclicEncoder struct {
	Epsilon float64
}

func (CyclicEncoder) Name() string { return ModeCyclic }

func (e CyclicEncoder) Encode(s *Schedule) ([]Animation, error) {
	curve, err := NewCurve(s, e.Epsilon)
	if err != nil {
		return nil, err
	}
	anims := make([]Animation, s.Len())
	for i, w := range s.windows {
		anims[i] = &Cyclic{Index: i, Curve: curve, Offset: w.Begin, Period: s.Total(), Frame: w.Duration}
	}
	return anims, nil
}

// Presentation modes.
const (
	ModeDiscrete = "discrete"
	ModeCyclic   = "cyclic"
)

// Options configures encoders created through NewEncoder.
type Options struct {
	Epsilon float64
}

var encoders = map[string]func(Options) Encoder{
	ModeDiscrete: func(Options) Encoder { return DiscreteEncoder{} },
	ModeCyclic: func(o Options) Encoder {
		eps := o.Epsilon
		if eps == 0 {
			eps = DefaultEpsilon
		}
		return CyclicEncoder{Epsilon: eps}
	},
}

// NewEncoder returns the encoder registered for mode.
func NewEncoder(mode string, opts Options) (Encoder, error) {
	fn, ok := encoders[mode]
	if !ok {
		return nil, fmt.Errorf("unknown timeline mode: %s (available: %v)", mode, Modes())
	}
	return fn(opts), nil
}

// Modes returns the registered mode names, sorted.
func Modes() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VisibleLayers returns the indices of every animation shown at t.
func VisibleLayers(anims []Animation, t time.Duration) []int {
	var out []int
	for i, a := range anims {
		if a.Visible(t) {
			out = append(out, i)
		}
	}
	return out
}

func cyclePercent(d, period time.Duration) float64 {
	return float64(d) / float64(period) * 100
}
