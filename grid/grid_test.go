package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// New, dimensions and bounds
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects degenerate sizes.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.w, tc.h)
			if !errors.Is(err, grid.ErrEmptyGrid) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.w, tc.h, err, grid.ErrEmptyGrid)
			}
		})
	}
}

// TestNew_Defaults checks that every cell starts open, unreached and unflagged.
func TestNew_Defaults(t *testing.T) {
	g, err := grid.New(4, 3)
	require.NoError(t, err)
	require.Equal(t, 4, g.Width())
	require.Equal(t, 3, g.Height())

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c, err := g.Node(grid.Coordinate{X: x, Y: y})
			require.NoError(t, err)
			assert.Equal(t, grid.Coordinate{X: x, Y: y}, c.Position)
			assert.False(t, c.IsWall)
			assert.False(t, c.Visited)
			assert.False(t, c.OnPath)
			assert.True(t, math.IsInf(c.CostSoFar(), 1))
			assert.True(t, math.IsInf(c.EstimatedTotal(), 1))
			_, ok := c.Predecessor()
			assert.False(t, ok)
		}
	}
}

// TestIndex_Bijection decodes every index back to the coordinate that encoded it
// for a range of grid shapes.
func TestIndex_Bijection(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {1, 7}, {7, 1}, {3, 5}, {16, 9}} {
		g, err := grid.New(size[0], size[1])
		require.NoError(t, err)

		seen := make(map[int]bool, size[0]*size[1])
		for y := 0; y < size[1]; y++ {
			for x := 0; x < size[0]; x++ {
				c := grid.Coordinate{X: x, Y: y}
				i, err := g.Index(c)
				require.NoError(t, err)
				require.Equal(t, y*size[0]+x, i)
				require.False(t, seen[i], "index %d produced twice", i)
				seen[i] = true

				back, err := g.Coordinate(i)
				require.NoError(t, err)
				require.Equal(t, c, back)
			}
		}
		require.Len(t, seen, size[0]*size[1])
	}
}

// TestOutOfBounds checks that lookups never clamp.
func TestOutOfBounds(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)

	for _, c := range []grid.Coordinate{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: -1}} {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
		_, err := g.Node(c)
		assert.ErrorIs(t, err, grid.ErrOutOfBounds, "Node(%v)", c)
		_, err = g.Index(c)
		assert.ErrorIs(t, err, grid.ErrOutOfBounds, "Index(%v)", c)
	}
	for _, i := range []int{-1, 6, 100} {
		_, err := g.Coordinate(i)
		assert.ErrorIs(t, err, grid.ErrOutOfBounds, "Coordinate(%d)", i)
	}
}

// TestNode_ReturnsCopy ensures callers cannot mutate the grid through a view.
func TestNode_ReturnsCopy(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	c, err := g.Node(grid.Coordinate{X: 1, Y: 1})
	require.NoError(t, err)
	c.IsWall = true

	again, err := g.Node(grid.Coordinate{X: 1, Y: 1})
	require.NoError(t, err)
	assert.False(t, again.IsWall)
}

//----------------------------------------------------------------------------//
// Distance
//----------------------------------------------------------------------------//

// TestDistance covers symmetry, non-negativity and the zero case.
func TestDistance(t *testing.T) {
	pts := []grid.Coordinate{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: -2, Y: 5}, {X: 7, Y: 7}, {X: 0, Y: 9}}
	for _, a := range pts {
		for _, b := range pts {
			d := grid.Distance(a, b)
			assert.GreaterOrEqual(t, d, 0.0)
			assert.Equal(t, d, grid.Distance(b, a), "symmetry %v %v", a, b)
			if a == b {
				assert.Zero(t, d)
			} else {
				assert.Positive(t, d)
			}
		}
	}
	assert.Equal(t, 5.0, grid.Distance(grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 3, Y: 4}))
	assert.Equal(t, 1.0, grid.Distance(grid.Coordinate{X: 2, Y: 2}, grid.Coordinate{X: 2, Y: 3}))
}

//----------------------------------------------------------------------------//
// Reset
//----------------------------------------------------------------------------//

// TestReset_KeepsWalls runs a search, resets and checks that only walls survive.
func TestReset_KeepsWalls(t *testing.T) {
	g, err := grid.Parse([]string{
		"....",
		".--.",
		"....",
	})
	require.NoError(t, err)
	g.Reset() // before any search: harmless

	_, err = g.Search(grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 3, Y: 2})
	require.NoError(t, err)
	require.Positive(t, g.PathCount())

	g.Reset()
	g.Reset()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, err := g.Node(grid.Coordinate{X: x, Y: y})
			require.NoError(t, err)
			wantWall := y == 1 && (x == 1 || x == 2)
			assert.Equal(t, wantWall, c.IsWall, "wall at %v", c.Position)
			assert.False(t, c.Visited)
			assert.False(t, c.OnPath)
			assert.True(t, math.IsInf(c.CostSoFar(), 1))
			assert.True(t, math.IsInf(c.EstimatedTotal(), 1))
			_, ok := c.Predecessor()
			assert.False(t, ok)
		}
	}
	assert.Equal(t, 2, g.WallCount())
}
