package metrics

import "github.com/san-kum/gridlife/internal/life"

// Population is the mean live-cell count across observed generations.
type Population struct {
	name    string
	sum     int
	samples int
}

func NewPopulation() *Population {
	return &Population{name: "mean_population"}
}

func (p *Population) Name() string { return p.name }

func (p *Population) OnGeneration(_ int, g *life.Grid) {
	p.sum += g.Population()
	p.samples++
}

func (p *Population) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return float64(p.sum) / float64(p.samples)
}

func (p *Population) Reset() {
	p.sum = 0
	p.samples = 0
}
