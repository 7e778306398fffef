package astar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/core"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/internal/gridtest"
)

func TestAStar_Errors(t *testing.T) {
	_, err := astar.AStar(nil)
	require.ErrorIs(t, err, astar.ErrGridNil)

	g := gridtest.MustGrid(t, gridtest.Corridor...)
	_, err = astar.AStar(g, astar.WithOrder(grid.Order(9)))
	require.ErrorIs(t, err, astar.ErrOptionViolation)
	_, err = astar.AStar(g, astar.WithTieBreak(astar.TieBreak(5)))
	require.ErrorIs(t, err, astar.ErrOptionViolation)
}

func TestParseTieBreak(t *testing.T) {
	cases := map[string]astar.TieBreak{
		"":          astar.OldFirst,
		"old-first": astar.OldFirst,
		"NEW-FIRST": astar.NewFirst,
		"New-First": astar.NewFirst,
	}
	for in, want := range cases {
		got, err := astar.ParseTieBreak(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := astar.ParseTieBreak("random")
	require.ErrorIs(t, err, astar.ErrBadTieBreak)
	assert.Equal(t, "new-first", astar.NewFirst.String())
}

// TestAStar_Corridor expands each corridor cell once: the frontier never
// holds more than one state. The goal successor counts as generated, so
// three cells plus G make four.
func TestAStar_Corridor(t *testing.T) {
	g := gridtest.MustGrid(t, gridtest.Corridor...)
	res, err := astar.AStar(g)
	require.NoError(t, err)
	gridtest.RequireValidPath(t, g, res)

	assert.Equal(t, gridtest.CorridorMoves, res.Moves)
	assert.Equal(t, gridtest.CorridorCost, res.Cost)
	assert.Equal(t, 4, res.Generated)
	assert.Equal(t, 1, res.MaxSpace)
}

// TestAStar_AvoidsHill goes around the hill (1+5) where BFS climbs it (5+5).
func TestAStar_AvoidsHill(t *testing.T) {
	g := gridtest.MustGrid(t,
		"S^G",
		"---",
	)
	res, err := astar.AStar(g)
	require.NoError(t, err)
	gridtest.RequireValidPath(t, g, res)
	assert.Equal(t, []grid.Direction{grid.DR, grid.UR}, res.Moves)
	assert.Equal(t, 6, res.Cost)
}

// TestAStar_Tunnel takes the tunnel (cost 8) instead of walking around the
// wall (cost 14).
func TestAStar_Tunnel(t *testing.T) {
	g := gridtest.MustGrid(t, gridtest.TunnelDetour...)
	res, err := astar.AStar(g)
	require.NoError(t, err)
	gridtest.RequireValidPath(t, g, res)
	assert.Equal(t, gridtest.TunnelMoves, res.Moves)
	assert.Equal(t, gridtest.TunnelCost, res.Cost)
}

// TestAStar_TieBreak uses a wall with equal-cost routes above and below it.
// Clockwise expansion creates the lower neighbour (DR) before the upper one
// (UR), both at f=2.
//
//	- - -
//	S # G
//	- - -
func TestAStar_TieBreak(t *testing.T) {
	g := gridtest.MustGrid(t,
		"---",
		"S#G",
		"---",
	)

	old, err := astar.AStar(g, astar.WithTieBreak(astar.OldFirst))
	require.NoError(t, err)
	gridtest.RequireValidPath(t, g, old)
	assert.Equal(t, []grid.Direction{grid.DR, grid.UR}, old.Moves)

	fresh, err := astar.AStar(g, astar.WithTieBreak(astar.NewFirst))
	require.NoError(t, err)
	gridtest.RequireValidPath(t, g, fresh)
	assert.Equal(t, []grid.Direction{grid.UR, grid.DR}, fresh.Moves)

	assert.Equal(t, 6, old.Cost)
	assert.Equal(t, old.Cost, fresh.Cost)
}

// TestAStar_StaleDuplicate pushes the hill cell twice, first at g=10 via the
// diagonal and then at g=6 via (1,0). The cheaper copy is expanded; the stale
// copy ties with (1,2) at f=12, pops first on its older sequence number and is
// skipped because its identity is already closed.
func TestAStar_StaleDuplicate(t *testing.T) {
	g := gridtest.MustGrid(t, gridtest.HillDetour...)
	var heads []*core.State
	res, err := astar.AStar(g, astar.WithOnOpen(func(open []*core.State) {
		heads = append(heads, open[0])
	}))
	require.NoError(t, err)
	gridtest.RequireValidPath(t, g, res)

	assert.Equal(t, gridtest.HillMoves, res.Moves)
	assert.Equal(t, gridtest.HillCost, res.Cost)
	assert.Equal(t, 6, res.Generated)
	assert.Equal(t, 2, res.MaxSpace)

	hill := grid.Position{Row: 1, Col: 1}
	want := []grid.Position{{Row: 0, Col: 0}, {Row: 1, Col: 0}, hill, hill, {Row: 1, Col: 2}}
	require.Len(t, heads, len(want))
	for i, p := range want {
		assert.Equal(t, p, heads[i].Pos, "pop %d", i)
	}
	assert.Equal(t, 6, heads[2].G)
	assert.Equal(t, 10, heads[3].G)
	assert.Less(t, heads[3].Seq, heads[2].Seq)
}

func TestAStar_NoPath(t *testing.T) {
	g := gridtest.MustGrid(t, gridtest.RoughBlocked...)
	res, err := astar.AStar(g)
	require.NoError(t, err)
	gridtest.RequireNoPath(t, res)
	assert.Positive(t, res.Generated)
}

// TestAStar_Supply crosses rough terrain only after visiting the station.
func TestAStar_Supply(t *testing.T) {
	g := gridtest.MustGrid(t,
		"S-~-",
		"-*~G",
		"--~-",
	)
	res, err := astar.AStar(g)
	require.NoError(t, err)
	gridtest.RequireValidPath(t, g, res)
	assert.Contains(t, res.Path, grid.Position{Row: 1, Col: 1})
}

// TestAStar_OnOpen checks that every snapshot is in pop order and that the
// first one holds only the start.
func TestAStar_OnOpen(t *testing.T) {
	g := gridtest.MustGrid(t, gridtest.TunnelDetour...)
	var snaps [][]*core.State
	res, err := astar.AStar(g, astar.WithOnOpen(func(open []*core.State) {
		snaps = append(snaps, open)
	}))
	require.NoError(t, err)
	require.True(t, res.Found)

	require.NotEmpty(t, snaps)
	require.Len(t, snaps[0], 1)
	assert.Equal(t, g.Start(), snaps[0][0].Pos)
	for _, snap := range snaps {
		assert.LessOrEqual(t, len(snap), res.MaxSpace)
		for i := 1; i < len(snap); i++ {
			prev, cur := snap[i-1], snap[i]
			assert.True(t, prev.F() < cur.F() || (prev.F() == cur.F() && prev.Seq < cur.Seq))
		}
	}
}

func TestAStar_Deterministic(t *testing.T) {
	g := gridtest.MustBoard(gridtest.Scattered(16, 3))
	a, err := astar.AStar(g, astar.WithOrder(grid.CounterClockwise))
	require.NoError(t, err)
	b, err := astar.AStar(g, astar.WithOrder(grid.CounterClockwise))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	if a.Found {
		gridtest.RequireValidPath(t, g, a)
	}
}

func TestAStar_Cancellation(t *testing.T) {
	g := gridtest.MustGrid(t, gridtest.Corridor...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := astar.AStar(g, astar.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
