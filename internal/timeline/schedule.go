package timeline

import (
	"math"
	"time"

	"github.com/san-kum/gridlife/internal/life"
)

// Window is the half-open interval [Begin, Begin+Duration) during which one
// generation is the visible one.
type Window struct {
	Index    int
	Begin    time.Duration
	Duration time.Duration
}

// End returns the first instant after the window.
func (w Window) End() time.Duration { return w.Begin + w.Duration }

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Duration) bool {
	return t >= w.Begin && t < w.End()
}

// Schedule holds the windows of every generation in order.
type Schedule struct {
	frame   time.Duration
	windows []Window
}

// NewSchedule lays out count windows of length frame back to back, starting
// at zero.
func NewSchedule(count int, frame time.Duration) (*Schedule, error) {
	if count < 1 {
		return nil, life.Misconfigured("generations", count, "must be at least 1")
	}
	if frame <= 0 {
		return nil, life.Misconfigured("frame_duration", frame, "must be positive")
	}
	if frame > time.Duration(math.MaxInt64)/time.Duration(count) {
		return nil, life.Misconfigured("frame_duration", frame, "total timeline overflows")
	}

	windows := make([]Window, count)
	for i := range windows {
		windows[i] = Window{
			Index:    i,
			Begin:    time.Duration(i) * frame,
			Duration: frame,
		}
	}
	return &Schedule{frame: frame, windows: windows}, nil
}

// Len returns the number of generations.
func (s *Schedule) Len() int { return len(s.windows) }

// Frame returns the duration of a single window.
func (s *Schedule) Frame() time.Duration { return s.frame }

// Total returns the length of the whole timeline.
func (s *Schedule) Total() time.Duration {
	return time.Duration(len(s.windows)) * s.frame
}

// Window returns the window of generation i.
func (s *Schedule) Window(i int) Window { return s.windows[i] }

// Windows returns a copy of all windows, ordered by generation.
func (s *Schedule) Windows() []Window {
	out := make([]Window, len(s.windows))
	copy(out, s.windows)
	return out
}

// VisibleAt returns the generation whose window contains t. It reports false
// outside [0, Total()).
func (s *Schedule) VisibleAt(t time.Duration) (int, bool) {
	if t < 0 || t >= s.Total() {
		return 0, false
	}
	return int(t / s.frame), true
}
