// Package gridgraph treats a rectangular block of digit costs as a graph,
// ready for constrained shortest-path search.
//
// What:
//
//   - CostGrid holds one non-negative entry cost per cell, parsed from text
//     (one decimal digit per cell) or built from a [][]int. It is immutable.
//   - Graph is the four-directional adjacency of a CostGrid: every cell gets
//     an Edge to each in-bounds neighbour, weighted by that neighbour's cost.
//   - Render draws a grid with a path overlaid as ^ v < > arrows.
//
// Why:
//
//   - The adjacency knows nothing about run lengths or reversals. Those
//     depend on the path taken so far and are checked by the search, so one
//     Graph serves every run-length profile.
//
// Complexity:
//
//   - LoadGrid, NewCostGrid: O(W×H) time and memory.
//   - BuildAdjacency:        O(W×H×4) time and memory.
//   - Cost, Edges:           O(1).
//
// Errors:
//
//   - ErrEmptyGrid:      no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrParse:          a character is not a decimal digit.
//   - ErrNegativeCost:   a negative value in NewCostGrid.
//   - ErrCostTooLarge:   a value above MaxCellCost in NewCostGrid.
//   - ErrOutOfBounds:    a cell outside the grid.
//   - ErrNilGrid:        BuildAdjacency called with nil.
package gridgraph
