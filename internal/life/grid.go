package life

import "strings"

// Grid is a rectangular matrix of live/dead cells stored in row-major order.
// A Grid is never modified after it is returned by a constructor.
type Grid struct {
	rows, cols int
	cells      []bool
}

// NewGrid returns an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, Invalid("grid dimensions must be positive, got %dx%d", rows, cols)
	}
	return blank(rows, cols), nil
}

// FromRows copies a boolean matrix into a Grid. Every row must have the same
// non-zero length.
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 {
		return nil, Invalid("grid has no rows")
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, &ValidationError{Line: 1, Message: "row is empty"}
	}
	g := blank(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, &ValidationError{Line: r + 1, Message: rowLengthMessage(len(row), cols)}
		}
		copy(g.cells[r*cols:(r+1)*cols], row)
	}
	return g, nil
}

// FromStrings builds a Grid from 0/1 rows, applying the same rules as ParseGrid.
func FromStrings(lines ...string) (*Grid, error) {
	return ParseGrid(strings.NewReader(strings.Join(lines, "\n")))
}

func blank(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
}

// Rows returns the number of rows (R).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns (C).
func (g *Grid) Cols() int { return g.cols }

// Alive reports whether the cell at (row, col) is alive. Coordinates wrap
// toroidally, so any integer pair is a valid lookup.
func (g *Grid) Alive(row, col int) bool {
	return g.cells[wrap(row, g.rows)*g.cols+wrap(col, g.cols)]
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// Cells returns a copy of the grid as a boolean matrix.
func (g *Grid) Cells() [][]bool {
	out := make([][]bool, g.rows)
	for r := range out {
		out[r] = make([]bool, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// Equal reports whether both grids have the same shape and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// SameShape reports whether both grids have identical dimensions.
func (g *Grid) SameShape(other *Grid) bool {
	return g.rows == other.rows && g.cols == other.cols
}

// String renders the grid in the 0/1 text format, one row per line.
func (g *Grid) String() string {
	return FormatGrid(g)
}

func (g *Grid) validate() error {
	if g == nil {
		return Invalid("grid is nil")
	}
	if g.rows < 1 || g.cols < 1 || len(g.cells) != g.rows*g.cols {
		return Invalid("grid dimensions must be positive, got %dx%d", g.rows, g.cols)
	}
	return nil
}

// wrap is the mathematical modulus: the result is always in [0, n).
func wrap(v, n int) int {
	return (v%n + n) % n
}
