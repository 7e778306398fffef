package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/core"
	"github.com/katalvlaran/gridsearch/grid"
)

func mustGrid(t *testing.T, lines ...string) *grid.Grid {
	t.Helper()
	g, err := grid.FromLines(lines)
	require.NoError(t, err)

	return g
}

// TestExpander_OrderAndSequence checks that successors follow the traversal
// order and receive increasing sequence numbers after the root.
func TestExpander_OrderAndSequence(t *testing.T) {
	g := mustGrid(t,
		"---",
		"-S-",
		"--G",
	)
	exp := core.NewExpander(g, grid.Clockwise)
	root := exp.Root()
	require.Equal(t, 1, root.Seq)
	require.Equal(t, 0, exp.Generated())

	kids := exp.Successors(root)
	require.Len(t, kids, 8)
	wantMoves := []grid.Direction{grid.R, grid.DR, grid.D, grid.DL, grid.L, grid.UL, grid.U, grid.UR}
	for i, k := range kids {
		assert.Equal(t, wantMoves[i], k.Move)
		assert.Equal(t, i+2, k.Seq)
		assert.Same(t, root, k.Parent)
	}
	assert.Equal(t, 8, exp.Generated())

	// DR lands on the goal at cost 5 and is flagged on arrival
	assert.True(t, kids[1].OnGoal)
	assert.Equal(t, 5, kids[1].G)
	assert.False(t, kids[0].OnGoal)
	assert.Equal(t, 1, kids[0].G)
}

// TestExpander_NoImmediateReversal verifies the predecessor filter.
func TestExpander_NoImmediateReversal(t *testing.T) {
	g := mustGrid(t, "S--G")
	exp := core.NewExpander(g, grid.Clockwise)
	root := exp.Root()
	first := exp.Successors(root)
	require.Len(t, first, 1)

	second := exp.Successors(first[0])
	require.Len(t, second, 1, "moving back onto the start must be filtered")
	assert.Equal(t, grid.Position{Row: 0, Col: 2}, second[0].Pos)
}

// TestExpander_SupplyAndTunnel covers the supply flag and Enter moves.
func TestExpander_SupplyAndTunnel(t *testing.T) {
	g := mustGrid(t,
		"S*~1",
		"###-",
		"1--G",
	)
	exp := core.NewExpander(g, grid.Clockwise)
	root := exp.Root()
	kids := exp.Successors(root)
	require.Len(t, kids, 1)
	supply := kids[0]
	assert.True(t, supply.Supply)
	assert.Equal(t, core.Identity{Row: 0, Col: 1, Supply: true}, supply.Identity())

	// with the flag set, stepping back onto the start is a new vertex
	rough := exp.Successors(supply)
	require.Len(t, rough, 2)
	assert.Equal(t, grid.R, rough[0].Move)
	assert.Equal(t, 4, rough[0].G, "supply 1 + rough 3")
	assert.Equal(t, grid.L, rough[1].Move)
	assert.True(t, rough[1].Supply)

	tunnel := exp.Successors(rough[0])
	require.Len(t, tunnel, 2) // R onto the tunnel, DR onto (1,3)
	mouth := tunnel[0]
	require.Equal(t, grid.R, mouth.Move)
	assert.Equal(t, 5, mouth.G)

	var entered *core.State
	for _, k := range exp.Successors(mouth) {
		if k.Move == grid.Enter {
			entered = k
		}
	}
	require.NotNil(t, entered)
	assert.Equal(t, grid.Position{Row: 2, Col: 0}, entered.Pos)
	assert.Equal(t, 5+grid.EnterCost, entered.G)
}

// TestNewResult covers both found and not-found results.
func TestNewResult(t *testing.T) {
	g := mustGrid(t, "S-G")
	exp := core.NewExpander(g, grid.Clockwise)
	root := exp.Root()
	mid := exp.Successors(root)[0]
	goal := exp.Successors(mid)[0]
	require.True(t, goal.OnGoal)

	res := core.NewResult(goal, 2, 1)
	assert.True(t, res.Found)
	assert.Equal(t, 6, res.Cost)
	assert.Equal(t, "R-R", res.MoveString())
	assert.Equal(t, []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, res.Path)

	none := core.NewResult(nil, 7, 3)
	assert.False(t, none.Found)
	assert.Equal(t, core.Infinity, none.Cost)
	assert.Empty(t, none.Moves)
	assert.Equal(t, "", none.MoveString())
	assert.Equal(t, 7, none.Generated)
}
