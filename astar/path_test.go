package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

func TestReconstruct_Chain(t *testing.T) {
	g, err := grid.Parse("S..E")
	require.NoError(t, err)
	c := func(col int) *grid.Cell { return g.Cell(0, col) }

	cameFrom := map[*grid.Cell]*grid.Cell{
		c(1): c(0),
		c(2): c(1),
		c(3): c(2),
	}
	path := astar.Reconstruct(cameFrom, c(3))

	require.Len(t, path, 4)
	assert.Same(t, c(0), path[0])
	assert.Same(t, c(3), path[3])
	assert.Equal(t, "S**E", g.String(), "only interior cells become Path")
}

// TestReconstruct_IgnoresUnrelatedEntries checks that only the chain ending at
// end is followed.
func TestReconstruct_IgnoresUnrelatedEntries(t *testing.T) {
	g, err := grid.Parse(
		"S.E",
		"...",
	)
	require.NoError(t, err)

	cameFrom := map[*grid.Cell]*grid.Cell{
		g.Cell(0, 1): g.Cell(0, 0),
		g.Cell(0, 2): g.Cell(0, 1),
		g.Cell(1, 0): g.Cell(0, 0),
		g.Cell(1, 1): g.Cell(1, 0),
	}
	path := astar.Reconstruct(cameFrom, g.End())

	assert.Len(t, path, 3)
	assert.Equal(t, "S*E\n...", g.String())
}

func TestReconstruct_Degenerate(t *testing.T) {
	g, err := grid.Parse("S.E")
	require.NoError(t, err)

	assert.Nil(t, astar.Reconstruct(nil, nil))
	path := astar.Reconstruct(nil, g.End())
	assert.Equal(t, []*grid.Cell{g.End()}, path, "no predecessor: the end alone")
}

// TestReconstruct_UnmarkedEndpoints uses cells without Start/End state: the
// chain's first and last cells still stay untouched.
func TestReconstruct_UnmarkedEndpoints(t *testing.T) {
	g, err := grid.New(1, 4)
	require.NoError(t, err)
	c := func(col int) *grid.Cell { return g.Cell(0, col) }

	cameFrom := map[*grid.Cell]*grid.Cell{
		c(1): c(0),
		c(2): c(1),
		c(3): c(2),
	}
	path := astar.Reconstruct(cameFrom, c(3))

	require.Len(t, path, 4)
	assert.Equal(t, ".**.", g.String())
}
