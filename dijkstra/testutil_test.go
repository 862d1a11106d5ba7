package dijkstra_test

import (
	"container/heap"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/gridgraph"
)

// referenceGrid is the classic 13×13 instance: 102 under (1,3), 94 under (4,10).
const referenceGrid = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

// lopsidedGrid punishes long detours: 71 under (4,10).
const lopsidedGrid = `111111111111
999999999991
999999999991
999999999991
999999999991
`

// mustGraph parses text and builds its adjacency, failing the test on error.
func mustGraph(tb testing.TB, text string) *gridgraph.Graph {
	tb.Helper()
	g, err := gridgraph.LoadGrid(text)
	require.NoError(tb, err)
	gr, err := gridgraph.BuildAdjacency(g)
	require.NoError(tb, err)

	return gr
}

// randomGrid returns an h×w digit grid drawn from rng.
func randomGrid(rng *rand.Rand, h, w int) string {
	var sb strings.Builder
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			sb.WriteByte(byte('0' + rng.Intn(10)))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// corner returns the bottom-right cell of gr.
func corner(gr *gridgraph.Graph) gridgraph.Cell {
	h, w := gr.Grid().Dimensions()

	return gridgraph.Cell{Row: h - 1, Col: w - 1}
}

// requireLegalPath checks that path obeys every movement rule and that its
// entry costs add up to want.
func requireLegalPath(t *testing.T, gr *gridgraph.Graph, path []gridgraph.Cell, start, goal gridgraph.Cell, minRun, maxRun int, want int64) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0], "path must begin at start")
	require.Equal(t, goal, path[len(path)-1], "path must end at goal")

	var total int64
	last := gridgraph.Start
	run := 0
	for i := 1; i < len(path); i++ {
		var dir gridgraph.Direction
		for _, d := range gridgraph.Moves {
			if path[i-1].Step(d) == path[i] {
				dir = d
			}
		}
		require.NotEqual(t, gridgraph.Start, dir, "step %d is not between neighbours", i)
		require.NotEqual(t, last.Reverse(), dir, "step %d reverses", i)
		if dir == last {
			run++
		} else {
			if last != gridgraph.Start {
				require.GreaterOrEqual(t, run, minRun, "turn at step %d after a short run", i)
			}
			run = 1
		}
		require.LessOrEqual(t, run, maxRun, "run too long at step %d", i)
		last = dir

		c, err := gr.Grid().Cost(path[i])
		require.NoError(t, err)
		total += int64(c)
	}
	if last != gridgraph.Start {
		require.GreaterOrEqual(t, run, minRun, "final run is short")
	}
	require.Equal(t, want, total, "path cost")
}

// plainShortest is an unconstrained cell-level Dijkstra used as an oracle.
func plainShortest(gr *gridgraph.Graph, start, goal gridgraph.Cell) int64 {
	grid := gr.Grid()
	dist := make([]int64, grid.Len())
	for i := range dist {
		dist[i] = math.MaxInt64
	}
	pq := &cellQueue{}
	dist[grid.Index(start)] = 0
	heap.Push(pq, cellItem{idx: grid.Index(start), cost: 0})
	for pq.Len() > 0 {
		it := heap.Pop(pq).(cellItem)
		if it.cost > dist[it.idx] {
			continue
		}
		for _, e := range gr.EdgesAt(it.idx) {
			to := grid.Index(e.To)
			if nc := it.cost + int64(e.Cost); nc < dist[to] {
				dist[to] = nc
				heap.Push(pq, cellItem{idx: to, cost: nc})
			}
		}
	}

	return dist[grid.Index(goal)]
}

type cellItem struct {
	idx  int
	cost int64
}

type cellQueue []cellItem

func (q cellQueue) Len() int            { return len(q) }
func (q cellQueue) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q cellQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *cellQueue) Push(x interface{}) { *q = append(*q, x.(cellItem)) }
func (q *cellQueue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}

// costOrInf maps an absent result to math.MaxInt64 for ordering comparisons.
func costOrInf(cost int64, ok bool) int64 {
	if !ok {
		return math.MaxInt64
	}

	return cost
}
