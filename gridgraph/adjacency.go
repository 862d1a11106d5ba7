package gridgraph

import "fmt"

// BuildAdjacency derives the four-directional adjacency of g.
// For every cell and every direction in Moves order, an Edge is added to the
// neighbour in that direction if it lies inside the grid; its cost is the
// neighbour's entry cost. The result is read-only and safe to share between
// concurrent searches.
// Returns ErrNilGrid if g is nil.
// Complexity: O(W×H×4) time and memory.
func BuildAdjacency(g *CostGrid) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	edges := make([][]Edge, g.Len())
	count := 0
	for idx := range edges {
		from := g.CellAt(idx)
		out := make([]Edge, 0, len(Moves))
		for _, d := range Moves {
			to := from.Step(d)
			if !g.InBounds(to) {
				continue
			}
			out = append(out, Edge{Dir: d, To: to, Cost: g.cells[g.Index(to)]})
		}
		edges[idx] = out
		count += len(out)
	}

	return &Graph{grid: g, edges: edges, count: count}, nil
}

// Grid returns the CostGrid this adjacency was built from.
func (gr *Graph) Grid() *CostGrid {
	return gr.grid
}

// Edges returns the out-edges of c in Moves order, or ErrOutOfBounds.
// The returned slice is shared and must not be modified.
func (gr *Graph) Edges(c Cell) ([]Edge, error) {
	if !gr.grid.InBounds(c) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}

	return gr.edges[gr.grid.Index(c)], nil
}

// EdgesAt is Edges by row-major index, without bounds checking.
// Used on the search hot path.
func (gr *Graph) EdgesAt(idx int) []Edge {
	return gr.edges[idx]
}

// EdgeCount returns the total number of directed edges.
func (gr *Graph) EdgeCount() int {
	return gr.count
}
