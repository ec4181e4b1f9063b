package metrics

import (
	"testing"

	"github.com/san-kum/gridlife/internal/life"
)

func run(t *testing.T, count int, lines ...string) []Metric {
	t.Helper()
	g, err := life.FromStrings(lines...)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	ms := Defaults()
	s := life.NewSequencer()
	for _, o := range Observers(ms) {
		s.AddObserver(o)
	}
	if _, err := s.Run(g, count); err != nil {
		t.Fatalf("run: %v", err)
	}
	return ms
}

func value(t *testing.T, ms []Metric, name string) float64 {
	t.Helper()
	for _, m := range ms {
		if m.Name() == name {
			return m.Value()
		}
	}
	t.Fatalf("no metric %q", name)
	return 0
}

func TestMetrics(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		population float64
		churn      float64
		settled    float64
	}{
		// A 2x2 block never changes.
		{"block", []string{"0000", "0110", "0110", "0000"}, 4, 0, 1},
		// A blinker flips four cells every step and never settles.
		{"blinker", []string{"00000", "00100", "00100", "00100", "00000"}, 3, 4, -1},
		// A lone cell dies in one step, then stays empty.
		{"lone cell", []string{"000", "010", "000"}, 0.25, 1.0 / 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := run(t, 4, tt.lines...)
			if got := value(t, ms, "mean_population"); got != tt.population {
				t.Errorf("mean_population = %v, want %v", got, tt.population)
			}
			if got := value(t, ms, "churn"); got != tt.churn {
				t.Errorf("churn = %v, want %v", got, tt.churn)
			}
			if got := value(t, ms, "settled_at"); got != tt.settled {
				t.Errorf("settled_at = %v, want %v", got, tt.settled)
			}
		})
	}
}

func TestReset(t *testing.T) {
	for _, m := range run(t, 3, "010", "010", "010") {
		m.Reset()
		want := 0.0
		if m.Name() == "settled_at" {
			want = -1
		}
		if m.Value() != want {
			t.Errorf("%s after reset = %v, want %v", m.Name(), m.Value(), want)
		}
	}
}
