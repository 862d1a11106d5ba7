package profile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/gridgraph"
)

func mustReference(t *testing.T) *gridgraph.Graph {
	t.Helper()
	g, err := gridgraph.LoadGrid(`2413432311323
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
4322674655533`)
	require.NoError(t, err)
	adj, err := gridgraph.BuildAdjacency(g)
	require.NoError(t, err)

	return adj
}
