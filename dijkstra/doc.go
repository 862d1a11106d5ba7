// Package dijkstra provides a shortest-path search over digit-cost grids where
// legal moves depend on recent movement history.
//
// Overview:
//
//   - A path may never reverse direction, must make at least MinRun straight
//     moves before turning, and may make at most MaxRun straight moves in one
//     direction. These rules depend on the path, not on the grid, so the
//     search works on augmented states (cell, last direction, run length)
//     rather than on cells.
//   - Each move costs the entry cost of the cell it lands on. The start cell
//     is never paid for.
//   - Reaching the goal counts only if the final straight run is at least
//     MinRun long (or no move was made at all). A goal state with a shorter
//     run is extended like any other state.
//
// When to use:
//
//   - Vehicle or crucible routing where momentum limits how often you may turn.
//   - Any grid search with "at least k / at most m straight" constraints.
//
// Key features:
//
//   - Functional options: From, To, WithRunLimits, WithReturnPath,
//     WithMaxCost, WithOnSettle.
//   - Flat distance and predecessor tables, no per-state hashing.
//   - Deterministic frontier tie-break (cost, row, column, direction, run):
//     identical inputs give identical costs and identical paths.
//   - One *gridgraph.Graph can serve any number of searches with different
//     run limits, concurrently if desired; a search allocates everything it
//     mutates.
//
// Performance and complexity, with S = W×H×5×(MaxRun+1):
//
//   - Time:  O(S log S)
//   - Space: O(S)
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil graph.
//   - ErrOptionViolation: an option received an invalid value (e.g. negative MaxCost).
//   - ErrBadRunLimits:    minRun < 0, maxRun < 1 or minRun > maxRun.
//   - gridgraph.ErrOutOfBounds: start or goal outside the grid.
//
// An unreachable goal is not an error: Result.Found is false and
// ShortestPathCost returns ok == false.
//
// API reference:
//
//	func ShortestPathCost(g *gridgraph.Graph, start, goal gridgraph.Cell, minRun, maxRun int) (int64, bool, error)
//	func Search(g *gridgraph.Graph, opts ...Option) (*Result, error)
//	func (r *Result) Path() ([]gridgraph.Cell, error)
//	func (r *Result) States() ([]State, error)
//
// Thread safety:
//
//   - Search never mutates the graph; concurrent searches on one graph are safe.
//   - An OnSettle callback runs on the calling goroutine.
package dijkstra
