// Package dijkstra defines core types and configuration options
// for the run-length-constrained shortest-path search.
//
// A search state is (cell, last direction, run length). Two states on the
// same cell with a different direction or run are different nodes.
//
// Options:
//
//	– From / To:       start and goal cells (defaults: top-left and bottom-right).
//	– WithRunLimits:   minimum straight run before a turn, maximum straight run.
//	– WithReturnPath:  keep predecessors so Result.Path can rebuild the route.
//	– WithMaxCost:     do not explore states costlier than this.
//	– WithOnSettle:    callback for each finalized state, in pop order.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the graph pointer is nil.
//	– ErrOptionViolation if an option received an invalid value.
//	– ErrBadRunLimits    if minRun < 0, maxRun < 1 or minRun > maxRun.
//	– gridgraph.ErrOutOfBounds if start or goal lies outside the grid.
//	– ErrNotFound        from Result.Path when the goal was unreachable.
//	– ErrNoPathRecorded  from Result.Path when WithReturnPath was not set.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGraph indicates that a nil *gridgraph.Graph was passed to Search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrOptionViolation indicates an option constructor received an invalid value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrBadRunLimits indicates an unusable (minRun, maxRun) pair.
	// Raised before any search work begins.
	ErrBadRunLimits = errors.New("dijkstra: run limits require 0 <= minRun <= maxRun and maxRun >= 1")

	// ErrNotFound indicates the goal was not reachable under the constraints.
	ErrNotFound = errors.New("dijkstra: goal not reachable")

	// ErrNoPathRecorded indicates Result.Path was called on a search run
	// without WithReturnPath.
	ErrNoPathRecorded = errors.New("dijkstra: predecessors were not recorded")
)

// Unreachable is the Result.Cost of a search that found no accepted goal state.
const Unreachable int64 = math.MaxInt64

// State is the identity of a search node.
type State struct {
	Cell gridgraph.Cell
	Dir  gridgraph.Direction // last move; gridgraph.Start before the first move
	Run  int                 // consecutive moves made in Dir
}

// String renders the state as "(row,col) Dir×Run".
func (s State) String() string {
	return fmt.Sprintf("%v %v×%d", s.Cell, s.Dir, s.Run)
}

// Options configures a single Search call.
//
// Start   – first cell of every path. Default (0,0).
// Goal    – target cell. Default is the bottom-right cell of the graph.
// MinRun  – moves in one direction required before a turn (and to stop at Goal). Default 1.
// MaxRun  – moves in one direction allowed before a turn is forced. Default 3.
// MaxCost – states costlier than this are not explored. Default math.MaxInt64.
type Options struct {
	Start      gridgraph.Cell
	Goal       gridgraph.Cell
	MinRun     int
	MaxRun     int
	ReturnPath bool
	MaxCost    int64
	OnSettle   func(s State, cost int64)

	err error // recorded by option constructors, surfaced by Search
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the defaults described on Options.
func DefaultOptions() Options {
	return Options{
		Start:    gridgraph.Cell{},
		MinRun:   1,
		MaxRun:   3,
		MaxCost:  math.MaxInt64,
		OnSettle: func(State, int64) {},
	}
}

// From sets the start cell.
func From(c gridgraph.Cell) Option {
	return func(o *Options) {
		o.Start = c
	}
}

// To sets the goal cell.
func To(c gridgraph.Cell) Option {
	return func(o *Options) {
		o.Goal = c
	}
}

// WithRunLimits sets the minimum and maximum straight-run lengths.
// Validity is checked by Search (ErrBadRunLimits).
func WithRunLimits(minRun, maxRun int) Option {
	return func(o *Options) {
		o.MinRun = minRun
		o.MaxRun = maxRun
	}
}

// WithReturnPath records predecessors so Result.Path can rebuild the route.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost stops exploration beyond the given accumulated cost.
//
//	c >= 0: cap at c
//	c < 0:  invalid option → ErrOptionViolation
func WithMaxCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithOnSettle registers a callback run once per finalized state,
// in the order states leave the frontier.
func WithOnSettle(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// ValidateRunLimits reports ErrBadRunLimits for an unusable pair.
func ValidateRunLimits(minRun, maxRun int) error {
	if minRun < 0 || maxRun < 1 || minRun > maxRun {
		return fmt.Errorf("%w: got minRun=%d maxRun=%d", ErrBadRunLimits, minRun, maxRun)
	}

	return nil
}
