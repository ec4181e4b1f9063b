package scene

import (
	"github.com/san-kum/gridlife/internal/life"
	"github.com/san-kum/gridlife/internal/timeline"
)

// Cell is one drawn cell with its grid coordinate and pixel origin.
type Cell struct {
	Row, Col int
	X, Y     int
}

// Layer is a group of cells sharing an appearance. The background layer has
// no animation and is always visible.
type Layer struct {
	Index      int
	Appearance string
	Cells      []Cell
	Animation  timeline.Animation
}

// Scene is the full layered description of one document.
type Scene struct {
	Width, Height int
	Rows, Cols    int
	CellSize      int
	Background    Layer
	Generations   []Layer
}

// Emit combines a generation sequence with its encoded animations. The
// background holds every position with the dead appearance; overlay i holds
// only the live cells of seq[i] and carries anims[i].
func Emit(seq []*life.Grid, anims []timeline.Animation, layout Layout) (*Scene, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, life.Invalid("generation sequence is empty")
	}
	if len(seq) != len(anims) {
		return nil, life.Invalid("sequence has %d generations but timeline has %d windows", len(seq), len(anims))
	}

	first := seq[0]
	if first == nil {
		return nil, life.Invalid("generation 0 is nil")
	}
	rows, cols := first.Rows(), first.Cols()
	width, height := layout.Canvas(rows, cols)

	sc := &Scene{
		Width:       width,
		Height:      height,
		Rows:        rows,
		Cols:        cols,
		CellSize:    layout.CellSize,
		Background:  Layer{Index: -1, Appearance: layout.Dead, Cells: make([]Cell, 0, rows*cols)},
		Generations: make([]Layer, len(seq)),
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			sc.Background.Cells = append(sc.Background.Cells, cellAt(layout, r, c))
		}
	}

	for i, g := range seq {
		if g == nil || !g.SameShape(first) {
			return nil, life.Invalid("generation %d does not match the %dx%d grid", i, rows, cols)
		}
		if anims[i] == nil {
			return nil, life.Invalid("generation %d has no animation", i)
		}
		if idx := anims[i].Window().Index; idx != i {
			return nil, life.Invalid("animation %d belongs to generation %d", i, idx)
		}
		sc.Generations[i] = overlay(g, i, anims[i], layout)
	}

	return sc, nil
}

func overlay(g *life.Grid, index int, anim timeline.Animation, layout Layout) Layer {
	layer := Layer{
		Index:      index,
		Appearance: layout.Alive,
		Cells:      make([]Cell, 0, g.Population()),
		Animation:  anim,
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.Alive(r, c) {
				layer.Cells = append(layer.Cells, cellAt(layout, r, c))
			}
		}
	}
	return layer
}

func cellAt(layout Layout, row, col int) Cell {
	x, y := layout.Position(row, col)
	return Cell{Row: row, Col: col, X: x, Y: y}
}
