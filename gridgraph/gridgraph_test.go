package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/gridgraph"
)

//----------------------------------------------------------------------------//
// LoadGrid and NewCostGrid Tests
//----------------------------------------------------------------------------//

// TestLoadGrid_Errors verifies that LoadGrid rejects empty, ragged and non-digit inputs.
func TestLoadGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", gridgraph.ErrEmptyGrid},
		{"OnlyNewlines", "\n\n", gridgraph.ErrEmptyGrid},
		{"Ragged", "123\n12\n", gridgraph.ErrNonRectangular},
		{"InteriorBlankLine", "12\n\n34", gridgraph.ErrNonRectangular},
		{"Letter", "12\n3a", gridgraph.ErrParse},
		{"Space", "1 2", gridgraph.ErrParse},
		{"Minus", "-1", gridgraph.ErrParse},
		{"MultiByteRune", "123\né", gridgraph.ErrParse},
		{"MultiByteRuneFirstRow", "1é\n123", gridgraph.ErrParse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.LoadGrid(tc.text)
			if !errors.Is(err, tc.err) {
				t.Errorf("LoadGrid(%q) error = %v; want %v", tc.text, err, tc.err)
			}
		})
	}
}

// TestLoadGrid_Valid checks dimensions and per-cell costs, including CRLF input.
func TestLoadGrid_Valid(t *testing.T) {
	for _, text := range []string{"241\n321\n", "241\r\n321\r\n", "241\n321"} {
		g, err := gridgraph.LoadGrid(text)
		require.NoError(t, err)

		h, w := g.Dimensions()
		assert.Equal(t, 2, h)
		assert.Equal(t, 3, w)
		assert.Equal(t, 6, g.Len())

		want := [][]int{{2, 4, 1}, {3, 2, 1}}
		assert.Equal(t, want, g.Values())
		assert.Equal(t, "241\n321", g.String())
	}
}

// TestNewCostGrid_Errors verifies that NewCostGrid rejects empty, ragged or negative inputs.
func TestNewCostGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
		{"Negative", [][]int{{1, -2}}, gridgraph.ErrNegativeCost},
		{"TooLarge", [][]int{{0, math.MaxInt}}, gridgraph.ErrCostTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewCostGrid(tc.grid)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewCostGrid_CopiesInput ensures later mutation of the caller's slice
// and of Values() output does not leak into the grid.
func TestNewCostGrid_CopiesInput(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	g, err := gridgraph.NewCostGrid(src)
	require.NoError(t, err)

	src[0][0] = 9
	vals := g.Values()
	vals[1][1] = 9

	c, err := g.Cost(gridgraph.Cell{Row: 0, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, c)
	c, err = g.Cost(gridgraph.Cell{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, c)
}

// TestCost_OutOfBounds checks Cost and InBounds at and beyond the edges.
func TestCost_OutOfBounds(t *testing.T) {
	g, err := gridgraph.LoadGrid("123\n456")
	require.NoError(t, err)

	valid := []gridgraph.Cell{{0, 0}, {1, 2}, {0, 2}}
	for _, c := range valid {
		assert.True(t, g.InBounds(c), "InBounds(%v)", c)
		_, err := g.Cost(c)
		assert.NoError(t, err)
	}
	invalid := []gridgraph.Cell{{-1, 0}, {0, 3}, {2, 0}, {0, -1}}
	for _, c := range invalid {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
		_, err := g.Cost(c)
		assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	}
}

// TestIndexRoundTrip checks Index and CellAt are inverses over the whole grid.
func TestIndexRoundTrip(t *testing.T) {
	g, err := gridgraph.LoadGrid("1234\n5678\n9012")
	require.NoError(t, err)
	for idx := 0; idx < g.Len(); idx++ {
		assert.Equal(t, idx, g.Index(g.CellAt(idx)))
	}
	assert.Equal(t, gridgraph.Cell{Row: 2, Col: 1}, g.CellAt(9))
}

// TestNewCostGrid_StringClampsWideCosts shows costs above 9 render as '#'.
func TestNewCostGrid_StringClampsWideCosts(t *testing.T) {
	g, err := gridgraph.NewCostGrid([][]int{{1, 12}, {0, 9}})
	require.NoError(t, err)
	assert.Equal(t, "1#\n09", g.String())
}

//----------------------------------------------------------------------------//
// Direction Tests
//----------------------------------------------------------------------------//

func TestDirection_Reverse(t *testing.T) {
	pairs := map[gridgraph.Direction]gridgraph.Direction{
		gridgraph.Up:    gridgraph.Down,
		gridgraph.Down:  gridgraph.Up,
		gridgraph.Left:  gridgraph.Right,
		gridgraph.Right: gridgraph.Left,
		gridgraph.Start: gridgraph.Start,
	}
	for d, want := range pairs {
		assert.Equal(t, want, d.Reverse(), "%v.Reverse()", d)
		assert.Equal(t, d, d.Reverse().Reverse())
	}
}

func TestCell_Step(t *testing.T) {
	c := gridgraph.Cell{Row: 3, Col: 3}
	assert.Equal(t, gridgraph.Cell{Row: 2, Col: 3}, c.Step(gridgraph.Up))
	assert.Equal(t, gridgraph.Cell{Row: 4, Col: 3}, c.Step(gridgraph.Down))
	assert.Equal(t, gridgraph.Cell{Row: 3, Col: 2}, c.Step(gridgraph.Left))
	assert.Equal(t, gridgraph.Cell{Row: 3, Col: 4}, c.Step(gridgraph.Right))
	assert.Equal(t, c, c.Step(gridgraph.Start))
	assert.Equal(t, "(3,3)", c.String())
	assert.Equal(t, "Right", gridgraph.Right.String())
}
