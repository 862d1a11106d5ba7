package dijkstra

import "github.com/katalvlaran/crucible/gridgraph"

// Result is the outcome of one Search.
//
//   - Found:   an accepted goal state was popped.
//   - Cost:    its total cost, or Unreachable.
//   - Start:   the initial state.
//   - Goal:    the accepted goal state (zero value if not Found).
//   - Settled: states finalized, the accepted goal included.
//   - Pushed:  frontier insertions, the initial state included.
//   - Stale:   frontier entries discarded because a cheaper cost was already known.
type Result struct {
	Found   bool
	Cost    int64
	Start   State
	Goal    State
	Settled int
	Pushed  int
	Stale   int

	layout layout
	prev   []int
}

// States walks predecessors from the accepted goal state back to the
// initial state and returns the chain in travel order.
// Returns ErrNotFound if the goal was unreachable and ErrNoPathRecorded if
// the search ran without WithReturnPath.
func (r *Result) States() ([]State, error) {
	if !r.Found {
		return nil, ErrNotFound
	}
	if r.prev == nil {
		return nil, ErrNoPathRecorded
	}

	g := r.Goal
	cur := r.layout.index(r.layout.grid.Index(g.Cell), g.Dir, g.Run)
	chain := []State{}
	for cur >= 0 {
		chain = append(chain, r.layout.state(cur))
		cur = r.prev[cur]
	}
	// reverse to get start → goal
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain, nil
}

// Path returns the cells visited from start to goal, both included.
// Errors as for States.
func (r *Result) Path() ([]gridgraph.Cell, error) {
	chain, err := r.States()
	if err != nil {
		return nil, err
	}
	cells := make([]gridgraph.Cell, len(chain))
	for i, s := range chain {
		cells[i] = s.Cell
	}

	return cells, nil
}
