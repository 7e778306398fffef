// Package gridtest holds board fixtures and result checks shared by the
// strategy test suites.
package gridtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/core"
	"github.com/katalvlaran/gridsearch/grid"
)

// Corridor is a 3×3 board whose walls leave a single route S→G:
// D, DR, UR, U, costing 1+1+1+5.
var Corridor = []string{
	"S#G",
	"-#-",
	"#-#",
}

// CorridorMoves and CorridorCost describe the only route through Corridor.
var (
	CorridorMoves = []grid.Direction{grid.D, grid.DR, grid.UR, grid.U}
	CorridorCost  = 8
)

// TunnelDetour is a board where a wall forces a long walk (cost 14) unless
// the tunnel pair '1' is used: R, Ent, R for 1+2+5 = 8.
var TunnelDetour = []string{
	"S1#-----",
	"--#-----",
	"--#-----",
	"--#-----",
	"--#-----",
	"------1G",
}

// TunnelMoves and TunnelCost describe the tunnel route through TunnelDetour.
var (
	TunnelMoves = []grid.Direction{grid.R, grid.Enter, grid.R}
	TunnelCost  = 8
)

// HillDetour reaches the hill at (1,1) two ways: diagonally from S for 10,
// or straight from (1,0) for 1+5. A search that meets the diagonal copy
// first later finds the cheaper duplicate of the same identity.
var HillDetour = []string{
	"S###",
	"-^^G",
}

// HillMoves and HillCost describe the cheapest route through HillDetour.
var (
	HillMoves = []grid.Direction{grid.D, grid.R, grid.R, grid.R}
	HillCost  = 16
)

// RoughBlocked puts the goal behind rough terrain with no supply station.
var RoughBlocked = []string{
	"S-~-",
	"--~G",
	"--~-",
}

// MustGrid builds a Grid from rows or fails the test.
func MustGrid(t testing.TB, lines ...string) *grid.Grid {
	t.Helper()
	g, err := grid.FromLines(lines)
	require.NoError(t, err)

	return g
}

// RequireValidPath replays res on g: every step must be a legal single move
// (tunnel Enter included), the path must run start → goal, and Cost must
// equal the exact sum of landing costs.
func RequireValidPath(t testing.TB, g *grid.Grid, res *core.Result) {
	t.Helper()
	require.True(t, res.Found, "expected a path")
	require.Len(t, res.Path, len(res.Moves)+1)
	require.Equal(t, g.Start(), res.Path[0])
	require.Equal(t, g.Goal(), res.Path[len(res.Path)-1])

	supply := g.Terrain(g.Start().Row, g.Start().Col) == grid.Supply
	cost := 0
	for i, mv := range res.Moves {
		from, to := res.Path[i], res.Path[i+1]
		if mv == grid.Enter {
			exit, ok := g.TunnelExit(from.Row, from.Col)
			require.True(t, ok, "step %d: Enter from non-tunnel %v", i, from)
			require.Equal(t, exit, to, "step %d: tunnel exit", i)
		} else {
			dr, dc := mv.Delta()
			require.Equal(t, grid.Position{Row: from.Row + dr, Col: from.Col + dc}, to, "step %d: %s", i, mv)
		}
		require.True(t, g.IsLegal(to.Row, to.Col, supply, nil), "step %d: illegal landing on %v", i, to)
		cost += g.PositionValue(to.Row, to.Col, mv)
		if g.Terrain(to.Row, to.Col) == grid.Supply {
			supply = true
		}
	}
	require.Equal(t, cost, res.Cost, "reported cost must equal the sum of edge costs")
}

// RequireNoPath asserts the unreachable-goal contract.
func RequireNoPath(t testing.TB, res *core.Result) {
	t.Helper()
	require.False(t, res.Found)
	require.Empty(t, res.Moves)
	require.Equal(t, core.Infinity, res.Cost)
}
