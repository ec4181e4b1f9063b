package life

import "math/rand/v2"

// DefaultDensity is the share of live cells in a random seed grid.
const DefaultDensity = 0.3

// Random returns a grid where each cell is alive with probability density.
// The same seed always yields the same grid.
func Random(rows, cols int, density float64, seed int64) (*Grid, error) {
	if density < 0 || density > 1 {
		return nil, Misconfigured("density", density, "must be within [0, 1]")
	}
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
	return g, nil
}
