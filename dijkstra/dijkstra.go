// Package dijkstra implements Dijkstra's algorithm over an augmented state
// space: (cell, last direction, run length).
//
// Move legality depends on the path taken so far, so the search, not the
// adjacency, enforces the rules while relaxing edges:
//
//   - no move may reverse the last direction;
//   - a turn is allowed only after at least MinRun straight moves;
//   - no more than MaxRun straight moves in one direction.
//
// Complexity, with S = W×H×5×(MaxRun+1) states:
//
//   - Time:  O(S log S)
//   - Space: O(S) for the flat distance (and optional predecessor) tables.
//
// Notes on implementation choices:
//
//   - State tables are flat slices indexed by ((cell·5 + dir)·(MaxRun+1) + run).
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - The first popped goal state whose run satisfies MinRun is optimal; the search stops there.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// ShortestPathCost returns the minimal total entry cost of a path from start
// to goal under the run limits. ok is false when no legal path exists;
// that is a normal outcome, not an error.
func ShortestPathCost(g *gridgraph.Graph, start, goal gridgraph.Cell, minRun, maxRun int) (cost int64, ok bool, err error) {
	res, err := Search(g, From(start), To(goal), WithRunLimits(minRun, maxRun))
	if err != nil {
		return 0, false, err
	}
	if !res.Found {
		return 0, false, nil
	}

	return res.Cost, true, nil
}

// Search runs the constrained search on g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. options must be valid (ErrOptionViolation).
//  3. run limits must satisfy 0 <= MinRun <= MaxRun, MaxRun >= 1 (ErrBadRunLimits).
//  4. Start and Goal must lie inside the grid (gridgraph.ErrOutOfBounds).
//
// An unreachable goal yields a Result with Found == false and Cost == Unreachable.
// MaxRun is capped at the grid's longest side minus one; a MinRun above that
// makes every goal other than Start unreachable.
func Search(g *gridgraph.Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	if g == nil {
		return nil, ErrNilGraph
	}
	grid := g.Grid()
	h, w := grid.Dimensions()

	cfg := DefaultOptions()
	cfg.Goal = gridgraph.Cell{Row: h - 1, Col: w - 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := ValidateRunLimits(cfg.MinRun, cfg.MaxRun); err != nil {
		return nil, err
	}
	if !grid.InBounds(cfg.Start) {
		return nil, fmt.Errorf("%w: start %v", gridgraph.ErrOutOfBounds, cfg.Start)
	}
	if !grid.InBounds(cfg.Goal) {
		return nil, fmt.Errorf("%w: goal %v", gridgraph.ErrOutOfBounds, cfg.Goal)
	}

	// 2) A straight run cannot be longer than the grid's longest side.
	longest := max(h, w) - 1
	if cfg.MinRun > longest && cfg.Start != cfg.Goal {
		return &Result{Cost: Unreachable, Start: State{Cell: cfg.Start, Dir: gridgraph.Start}}, nil
	}
	cfg.MaxRun = min(cfg.MaxRun, longest)

	// 3) Allocate per-call tables. Nothing outlives this call except the Result.
	r := newRunner(g, cfg)
	r.init()
	r.process()

	return r.res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *gridgraph.Graph
	grid    *gridgraph.CostGrid
	options Options
	layout  layout
	dist    []int64 // state index → best known cost, Unreachable if none
	prev    []int   // state index → predecessor state index, -1 if none; nil unless ReturnPath
	pq      stateQueue
	res     *Result
}

func newRunner(g *gridgraph.Graph, cfg Options) *runner {
	grid := g.Grid()
	lay := layout{stride: cfg.MaxRun + 1, grid: grid}
	n := lay.size()

	dist := make([]int64, n)
	for i := range dist {
		dist[i] = Unreachable
	}
	var prev []int
	if cfg.ReturnPath {
		prev = make([]int, n)
		for i := range prev {
			prev[i] = -1
		}
	}

	return &runner{
		g:       g,
		grid:    grid,
		options: cfg,
		layout:  lay,
		dist:    dist,
		prev:    prev,
		pq:      make(stateQueue, 0, grid.Len()),
		res: &Result{
			Cost:   Unreachable,
			Start:  State{Cell: cfg.Start, Dir: gridgraph.Start},
			layout: lay,
		},
	}
}

// init seeds the frontier with (Start, gridgraph.Start, 0) at cost 0.
func (r *runner) init() {
	start := r.layout.index(r.grid.Index(r.options.Start), gridgraph.Start, 0)
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, queueItem{cost: 0, state: start})
	r.res.Pushed++
}

// process pops states in cost order until an accepted goal state is popped
// or the frontier is exhausted.
func (r *runner) process() {
	goal := r.options.Goal
	minRun := r.options.MinRun
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest entry; skip it if a cheaper cost was recorded since it was pushed.
		item := heap.Pop(&r.pq).(queueItem)
		if item.cost > r.dist[item.state] {
			r.res.Stale++
			continue
		}

		// 2) The cost is now final for this state.
		s := r.layout.state(item.state)
		r.res.Settled++
		r.options.OnSettle(s, item.cost)

		// 3) Accept only goal states whose current run may legally stop.
		if s.Cell == goal && (s.Dir == gridgraph.Start || s.Run >= minRun) {
			r.res.Found = true
			r.res.Cost = item.cost
			r.res.Goal = s
			r.res.prev = r.prev
			return
		}

		// 4) Relax outgoing edges.
		r.relax(item.state, s, item.cost)
	}
}

// relax applies the reversal and run-length rules to every edge out of s
// and pushes each strictly improved successor.
func (r *runner) relax(from int, s State, cost int64) {
	minRun, maxRun := r.options.MinRun, r.options.MaxRun
	back := s.Dir.Reverse()
	for _, e := range r.g.EdgesAt(r.grid.Index(s.Cell)) {
		// No backtracking, ever.
		if s.Dir != gridgraph.Start && e.Dir == back {
			continue
		}

		run := 1
		if e.Dir == s.Dir {
			run = s.Run + 1
		}
		// A turn before MinRun straight moves is illegal.
		if s.Dir != gridgraph.Start && run == 1 && s.Run < minRun {
			continue
		}
		if run > maxRun {
			continue
		}

		// Unreachable marks empty slots, so it is never a real cost.
		if int64(e.Cost) >= Unreachable-cost {
			continue
		}
		next := cost + int64(e.Cost)
		if next > r.options.MaxCost {
			continue
		}
		to := r.layout.index(r.grid.Index(e.To), e.Dir, run)
		if next >= r.dist[to] {
			continue
		}

		r.dist[to] = next
		if r.prev != nil {
			r.prev[to] = from
		}
		heap.Push(&r.pq, queueItem{cost: next, state: to})
		r.res.Pushed++
	}
}
