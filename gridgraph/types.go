// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/crucible.
package gridgraph

import "fmt"

// Cell addresses a single grid cell by row and column.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the cell one move away from c in direction d.
// Start yields c itself. The result may lie outside the grid.
func (c Cell) Step(d Direction) Cell {
	off := d.Offset()

	return Cell{Row: c.Row + off[0], Col: c.Col + off[1]}
}

// Direction is the last movement direction of a path.
// Start is synthetic: it marks the initial state, before any move was made.
type Direction uint8

const (
	// Start means no move has been made yet.
	Start Direction = iota
	// Up decreases Row.
	Up
	// Down increases Row.
	Down
	// Left decreases Col.
	Left
	// Right increases Col.
	Right
)

// NumDirections counts every Direction value, Start included.
// It sizes per-direction tables.
const NumDirections = 5

// Moves lists the four movement directions in the fixed order
// used for adjacency: Up, Down, Left, Right.
var Moves = [4]Direction{Up, Down, Left, Right}

// offsets holds {dRow, dCol} per Direction, indexed by the Direction value.
var offsets = [NumDirections][2]int{
	Start: {0, 0},
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

// Offset returns the {dRow, dCol} displacement of one move in d.
func (d Direction) Offset() [2]int {
	if int(d) >= NumDirections {
		return [2]int{}
	}

	return offsets[d]
}

// Reverse returns the opposite direction. Start is its own reverse.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return Start
	}
}

// Arrow returns the single-rune glyph used by Render: ^ v < > or S for Start.
func (d Direction) Arrow() rune {
	switch d {
	case Up:
		return '^'
	case Down:
		return 'v'
	case Left:
		return '<'
	case Right:
		return '>'
	default:
		return 'S'
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Start:
		return "Start"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Edge is a candidate move out of a cell: travelling Dir lands on To
// and costs Cost, the entry cost of To.
type Edge struct {
	Dir  Direction
	To   Cell
	Cost int
}

// CostGrid is an immutable rectangular matrix of non-negative entry costs.
// cells is stored row-major: cells[row*width+col].
type CostGrid struct {
	height, width int
	cells         []int
}

// Graph is the four-directional adjacency of a CostGrid.
// edges[i] lists the out-edges of the cell with row-major index i,
// always in Moves order. Run-length and reversal rules are not encoded
// here; they belong to the search.
type Graph struct {
	grid  *CostGrid
	edges [][]Edge
	count int
}
