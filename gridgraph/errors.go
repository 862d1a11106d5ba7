package gridgraph

import (
	"errors"
	"math"
)

// MaxCellCost is the largest entry cost NewCostGrid accepts.
const MaxCellCost = math.MaxInt32

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrParse indicates a character that is not a single decimal digit.
	ErrParse = errors.New("gridgraph: cell is not a decimal digit")
	// ErrNegativeCost indicates a negative value passed to NewCostGrid.
	ErrNegativeCost = errors.New("gridgraph: cell cost must be non-negative")
	// ErrCostTooLarge indicates a value above MaxCellCost passed to NewCostGrid.
	ErrCostTooLarge = errors.New("gridgraph: cell cost exceeds MaxCellCost")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrNilGrid indicates a nil *CostGrid.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
	// ErrBrokenPath indicates consecutive path cells that are not orthogonal neighbours.
	ErrBrokenPath = errors.New("gridgraph: path cells are not adjacent")
)
