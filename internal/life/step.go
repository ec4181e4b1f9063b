package life

// Neighbors counts the live cells among the eight toroidal neighbours of
// (row, col). Offsets that fall off an edge wrap to the opposite edge.
func Neighbors(g *Grid, row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r := wrap(row+dr, g.rows)
			c := wrap(col+dc, g.cols)
			if g.cells[r*g.cols+c] {
				n++
			}
		}
	}
	return n
}

// Step returns the next generation of g under the B3/S23 rule. The input is
// left untouched and the result has the same dimensions.
func Step(g *Grid) (*Grid, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	next := blank(g.rows, g.cols)
	stepRows(g, next, 0, g.rows)
	return next, nil
}

// StepParallel is Step with the rows split across up to workers goroutines.
// Cells within one generation are independent, so the result is identical to
// Step for any worker count.
func StepParallel(g *Grid, workers int) (*Grid, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	next := blank(g.rows, g.cols)
	ParallelFor(g.rows, workers, 1, func(start, end int) {
		stepRows(g, next, start, end)
	})
	return next, nil
}

// stepRows writes rows [start, end) of the next generation into next.
func stepRows(cur, next *Grid, start, end int) {
	for r := start; r < end; r++ {
		for c := 0; c < cur.cols; c++ {
			idx := r*cur.cols + c
			next.cells[idx] = rule(cur.cells[idx], Neighbors(cur, r, c))
		}
	}
}

// rule applies Conway's survival (2 or 3) and birth (exactly 3) conditions.
func rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
