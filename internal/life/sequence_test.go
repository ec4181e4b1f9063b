package life

import (
	"errors"
	"testing"
)

func TestRun_Length(t *testing.T) {
	initial := mustGrid(t, "0100", "0010", "1110", "0000")

	for n := 1; n <= 12; n++ {
		seq, err := Run(initial, n)
		if err != nil {
			t.Fatalf("run(%d) failed: %v", n, err)
		}
		if len(seq) != n {
			t.Errorf("run(%d) returned %d generations", n, len(seq))
		}
		if seq[0] != initial {
			t.Errorf("run(%d): generation 0 is not the initial grid", n)
		}
		for i, g := range seq {
			if !g.SameShape(initial) {
				t.Errorf("run(%d): generation %d has shape %dx%d", n, i, g.Rows(), g.Cols())
			}
		}
	}
}

func TestRun_EachEntryStepsPrevious(t *testing.T) {
	initial, err := Random(7, 52, DefaultDensity, 42)
	if err != nil {
		t.Fatalf("random failed: %v", err)
	}

	seq, err := Run(initial, 6)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for i := 1; i < len(seq); i++ {
		want, _ := Step(seq[i-1])
		if !seq[i].Equal(want) {
			t.Errorf("generation %d is not Step(generation %d)", i, i-1)
		}
	}
}

func TestRun_GliderSeedFixture(t *testing.T) {
	initial := mustGrid(t, "010", "111", "000")

	seq, err := Run(initial, 2)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !seq[0].Equal(initial) {
		t.Errorf("generation 0 = \n%s", seq[0])
	}

	// On a 3x3 torus all eight neighbours of a cell are the other eight
	// cells: live cells see 3, dead cells see 4, nothing changes.
	want := mustGrid(t, "010", "111", "000")
	if !seq[1].Equal(want) {
		t.Errorf("generation 1 = \n%swant\n%s", seq[1], want)
	}
}

func TestRun_Errors(t *testing.T) {
	initial := mustGrid(t, "01", "10")

	tests := []struct {
		name    string
		grid    *Grid
		count   int
		wantErr error
	}{
		{"zero generations", initial, 0, ErrConfiguration},
		{"negative generations", initial, -3, ErrConfiguration},
		{"nil grid", nil, 3, ErrValidation},
		{"degenerate grid", &Grid{}, 3, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(tt.grid, tt.count)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSequencer_Observers(t *testing.T) {
	initial := mustGrid(t, "00000", "00100", "00100", "00100", "00000")

	var indices []int
	var populations []int
	s := NewSequencer()
	s.SetWorkers(3)
	s.AddObserver(ObserverFunc(func(i int, g *Grid) {
		indices = append(indices, i)
		populations = append(populations, g.Population())
	}))

	seq, err := s.Run(initial, 4)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(indices) != 4 {
		t.Fatalf("expected 4 notifications, got %d", len(indices))
	}
	for i, idx := range indices {
		if idx != i {
			t.Errorf("notification %d carried index %d", i, idx)
		}
		if populations[i] != 3 {
			t.Errorf("blinker population at %d = %d, want 3", i, populations[i])
		}
	}

	got := Populations(seq)
	for i, p := range got {
		if p != populations[i] {
			t.Errorf("Populations()[%d] = %d, observer saw %d", i, p, populations[i])
		}
	}
}

func TestRandom(t *testing.T) {
	a, err := Random(7, 52, DefaultDensity, 99)
	if err != nil {
		t.Fatalf("random failed: %v", err)
	}
	b, _ := Random(7, 52, DefaultDensity, 99)
	if !a.Equal(b) {
		t.Error("same seed produced different grids")
	}

	empty, _ := Random(3, 3, 0, 1)
	if empty.Population() != 0 {
		t.Errorf("density 0 produced %d live cells", empty.Population())
	}
	full, _ := Random(3, 3, 1, 1)
	if full.Population() != 9 {
		t.Errorf("density 1 produced %d live cells", full.Population())
	}

	if _, err := Random(3, 3, 1.5, 1); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration for density 1.5, got %v", err)
	}
}
