package viz

import (
	"github.com/guptarohit/asciigraph"
)

const maxPlotWidth = 80

// PopulationPlot charts the live-cell count of each generation. An empty
// series yields an empty string.
func PopulationPlot(pops []int, caption string) string {
	if len(pops) == 0 {
		return ""
	}
	data := make([]float64, len(pops))
	for i, p := range pops {
		data[i] = float64(p)
	}

	opts := []asciigraph.Option{asciigraph.Height(10), asciigraph.Caption(caption)}
	if len(data) > maxPlotWidth {
		opts = append(opts, asciigraph.Width(maxPlotWidth))
	}
	return asciigraph.Plot(data, opts...)
}
