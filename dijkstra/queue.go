package dijkstra

import "github.com/katalvlaran/crucible/gridgraph"

// layout maps States to flat table offsets and back:
//
//	index = (cell·NumDirections + dir)·stride + run,  stride = MaxRun+1
//
// Index order is therefore row, column, direction, run, which doubles as
// the frontier tie-break.
type layout struct {
	stride int
	grid   *gridgraph.CostGrid
}

func (l layout) size() int {
	return l.grid.Len() * gridgraph.NumDirections * l.stride
}

func (l layout) index(cell int, dir gridgraph.Direction, run int) int {
	return (cell*gridgraph.NumDirections+int(dir))*l.stride + run
}

func (l layout) state(idx int) State {
	run := idx % l.stride
	idx /= l.stride
	dir := gridgraph.Direction(idx % gridgraph.NumDirections)
	cell := idx / gridgraph.NumDirections

	return State{Cell: l.grid.CellAt(cell), Dir: dir, Run: run}
}

// queueItem is a frontier entry: a state index and the cost it was pushed with.
type queueItem struct {
	cost  int64
	state int
}

// stateQueue is a min-heap of queueItem ordered by cost, then by state index
// so equal-cost pops happen in a reproducible order.
// Stale entries are left in place and skipped when popped.
type stateQueue []queueItem

// Len returns the number of items in the heap.
func (pq stateQueue) Len() int { return len(pq) }

// Less orders by cost, then row, column, direction and run.
func (pq stateQueue) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].state < pq[j].state
}

// Swap swaps two elements in the heap.
func (pq stateQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be a queueItem.
func (pq *stateQueue) Push(x interface{}) { *pq = append(*pq, x.(queueItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *stateQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
