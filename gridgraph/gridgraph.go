package gridgraph

import (
	"fmt"
	"strings"
)

// LoadGrid parses text into a CostGrid. Each line is a row, each character
// a single decimal digit giving that cell's entry cost.
// A trailing newline and "\r\n" line endings are accepted.
// Returns ErrEmptyGrid for empty input, ErrParse for any non-digit
// character, ErrNonRectangular if row lengths differ.
// Complexity: O(W×H) time and memory.
func LoadGrid(text string) (*CostGrid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	h, w := len(lines), len(lines[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([]int, 0, h*w)
	for row, line := range lines {
		// Digits before widths, so a multi-byte rune reports ErrParse.
		for col, ch := range line {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrParse, ch, row, col)
			}
		}
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, row, len(line), w)
		}
		for col := 0; col < len(line); col++ {
			cells = append(cells, int(line[col]-'0'))
		}
	}

	return &CostGrid{height: h, width: w, cells: cells}, nil
}

// NewCostGrid builds a CostGrid from a non-empty, rectangular 2D slice of
// costs in [0, MaxCellCost], indexed values[row][col]. The input is copied.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrNegativeCost or ErrCostTooLarge.
func NewCostGrid(values [][]int) (*CostGrid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([]int, 0, h*w)
	for row, line := range values {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, row, len(line), w)
		}
		for col, v := range line {
			if v < 0 {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrNegativeCost, v, row, col)
			}
			if v > MaxCellCost {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrCostTooLarge, v, row, col)
			}
			cells = append(cells, v)
		}
	}

	return &CostGrid{height: h, width: w, cells: cells}, nil
}

// Dimensions returns the grid height (rows) and width (columns).
func (g *CostGrid) Dimensions() (height, width int) {
	return g.height, g.width
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *CostGrid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// Cost returns the entry cost of c, or ErrOutOfBounds.
// Complexity: O(1).
func (g *CostGrid) Cost(c Cell) (int, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.height, g.width)
	}

	return g.cells[g.Index(c)], nil
}

// Index maps c to its row-major index: Row*Width + Col.
// The caller guarantees c is in bounds.
func (g *CostGrid) Index(c Cell) int {
	return c.Row*g.width + c.Col
}

// CellAt converts a row-major index back to a Cell.
func (g *CostGrid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.width, Col: idx % g.width}
}

// Len returns the number of cells, Height×Width.
func (g *CostGrid) Len() int {
	return len(g.cells)
}

// Values returns a deep copy of the costs as values[row][col].
func (g *CostGrid) Values() [][]int {
	out := make([][]int, g.height)
	for r := 0; r < g.height; r++ {
		out[r] = make([]int, g.width)
		copy(out[r], g.cells[r*g.width:(r+1)*g.width])
	}

	return out
}

// String renders the grid one row per line. Costs above 9 (only possible
// via NewCostGrid) are rendered as '#'.
func (g *CostGrid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for i, v := range g.cells {
		if i > 0 && i%g.width == 0 {
			sb.WriteByte('\n')
		}
		if v > 9 {
			sb.WriteByte('#')
			continue
		}
		sb.WriteByte(byte('0' + v))
	}

	return sb.String()
}
