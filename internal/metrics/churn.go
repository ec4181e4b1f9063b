package metrics

import "github.com/san-kum/gridlife/internal/life"

// Churn is the mean number of cells that changed state per step.
type Churn struct {
	name    string
	prev    *life.Grid
	sum     int
	samples int
}

func NewChurn() *Churn {
	return &Churn{name: "churn"}
}

func (c *Churn) Name() string { return c.name }

func (c *Churn) OnGeneration(_ int, g *life.Grid) {
	if c.prev != nil && c.prev.SameShape(g) {
		for r := 0; r < g.Rows(); r++ {
			for col := 0; col < g.Cols(); col++ {
				if c.prev.Alive(r, col) != g.Alive(r, col) {
					c.sum++
				}
			}
		}
		c.samples++
	}
	c.prev = g
}

func (c *Churn) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.sum) / float64(c.samples)
}

func (c *Churn) Reset() {
	c.prev = nil
	c.sum = 0
	c.samples = 0
}
