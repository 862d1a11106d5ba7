package gridgraph

import "fmt"

// Render draws g one row per line, replacing every path cell after the
// first with the arrow of the move that entered it. The first cell keeps
// its digit. An empty path renders the plain grid.
// Returns ErrOutOfBounds or ErrBrokenPath for an invalid path.
func Render(g *CostGrid, path []Cell) (string, error) {
	if g == nil {
		return "", ErrNilGrid
	}
	canvas := []rune(g.String())
	stride := g.width + 1 // newline after every row but the last

	for i, c := range path {
		if !g.InBounds(c) {
			return "", fmt.Errorf("%w: path[%d]=%v", ErrOutOfBounds, i, c)
		}
		if i == 0 {
			continue
		}
		d, ok := directionBetween(path[i-1], c)
		if !ok {
			return "", fmt.Errorf("%w: %v -> %v", ErrBrokenPath, path[i-1], c)
		}
		canvas[c.Row*stride+c.Col] = d.Arrow()
	}

	return string(canvas), nil
}

// directionBetween returns the move taking a to b, if they are orthogonal neighbours.
func directionBetween(a, b Cell) (Direction, bool) {
	for _, d := range Moves {
		if a.Step(d) == b {
			return d, true
		}
	}

	return Start, false
}
