package scene

import "github.com/san-kum/gridlife/internal/life"

// Layout fixes how grid cells map onto the canvas. Alive and Dead are opaque
// appearance references handed through to the document writer.
type Layout struct {
	CellSize int
	Spacing  int
	Alive    string
	Dead     string
}

// Validate checks the layout before any scene is built.
func (l Layout) Validate() error {
	if l.CellSize <= 0 {
		return life.Misconfigured("cell_size", l.CellSize, "must be positive")
	}
	if l.Spacing < 0 {
		return life.Misconfigured("spacing", l.Spacing, "must not be negative")
	}
	if l.Alive == "" {
		return life.Misconfigured("alive", l.Alive, "appearance reference is empty")
	}
	if l.Dead == "" {
		return life.Misconfigured("dead", l.Dead, "appearance reference is empty")
	}
	return nil
}

// Pitch is the distance between the origins of two adjacent cells.
func (l Layout) Pitch() int { return l.CellSize + l.Spacing }

// Position returns the top-left pixel of cell (row, col). Every layer uses
// this so cells line up across the background and all generations.
func (l Layout) Position(row, col int) (x, y int) {
	return col * l.Pitch(), row * l.Pitch()
}

// Canvas returns the document size for a rows x cols grid. There is no
// trailing gap after the last row or column.
func (l Layout) Canvas(rows, cols int) (width, height int) {
	return cols*l.Pitch() - l.Spacing, rows*l.Pitch() - l.Spacing
}
