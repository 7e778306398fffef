package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/core"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/internal/gridtest"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil)
	require.ErrorIs(t, err, bfs.ErrGridNil)

	g := gridtest.MustGrid(t, gridtest.Corridor...)
	_, err = bfs.BFS(g, bfs.WithOrder(grid.Order(7)))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_Corridor walks the only route and checks the exact statistics:
// four generated states and a frontier that never holds more than one.
func TestBFS_Corridor(t *testing.T) {
	g := gridtest.MustGrid(t, gridtest.Corridor...)
	for _, order := range []grid.Order{grid.Clockwise, grid.CounterClockwise} {
		res, err := bfs.BFS(g, bfs.WithOrder(order))
		require.NoError(t, err)
		gridtest.RequireValidPath(t, g, res)
		assert.Equal(t, gridtest.CorridorMoves, res.Moves, order.String())
		assert.Equal(t, gridtest.CorridorCost, res.Cost)
		assert.Equal(t, 4, res.Generated)
		assert.Equal(t, 1, res.MaxSpace)
	}
}

// TestBFS_FewestMovesNotCheapest documents that BFS returns the first path in
// expansion order: straight over the hill (10) rather than around it (6).
func TestBFS_FewestMovesNotCheapest(t *testing.T) {
	g := gridtest.MustGrid(t,
		"S^G",
		"---",
	)
	res, err := bfs.BFS(g)
	require.NoError(t, err)
	gridtest.RequireValidPath(t, g, res)
	assert.Equal(t, []grid.Direction{grid.R, grid.R}, res.Moves)
	assert.Equal(t, 10, res.Cost)
}

// TestBFS_Tunnel checks that the Enter move is taken when it is the shortest
// route in moves.
func TestBFS_Tunnel(t *testing.T) {
	g := gridtest.MustGrid(t, gridtest.TunnelDetour...)
	res, err := bfs.BFS(g)
	require.NoError(t, err)
	gridtest.RequireValidPath(t, g, res)
	assert.Equal(t, gridtest.TunnelMoves, res.Moves)
	assert.Equal(t, gridtest.TunnelCost, res.Cost)
}

// TestBFS_SupplyUnlocksRough needs the supply detour before crossing rough terrain.
func TestBFS_SupplyUnlocksRough(t *testing.T) {
	g := gridtest.MustGrid(t,
		"S-~G",
		"*#~-",
	)
	res, err := bfs.BFS(g)
	require.NoError(t, err)
	gridtest.RequireValidPath(t, g, res)
	assert.Contains(t, res.Path, grid.Position{Row: 1, Col: 0})
}

// TestBFS_NoPath covers the unreachable-goal contract.
func TestBFS_NoPath(t *testing.T) {
	g := gridtest.MustGrid(t, gridtest.RoughBlocked...)
	res, err := bfs.BFS(g)
	require.NoError(t, err)
	gridtest.RequireNoPath(t, res)
	assert.Positive(t, res.Generated)
	assert.Positive(t, res.MaxSpace)
}

// TestBFS_Deterministic runs the same search twice.
func TestBFS_Deterministic(t *testing.T) {
	g := gridtest.MustGrid(t, gridtest.TunnelDetour...)
	a, err := bfs.BFS(g, bfs.WithOrder(grid.CounterClockwise))
	require.NoError(t, err)
	b, err := bfs.BFS(g, bfs.WithOrder(grid.CounterClockwise))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestBFS_OnOpen asserts one snapshot per dequeue and no effect on the result.
func TestBFS_OnOpen(t *testing.T) {
	g := gridtest.MustGrid(t, gridtest.Corridor...)
	var snapshots [][]*core.State
	traced, err := bfs.BFS(g, bfs.WithOnOpen(func(open []*core.State) {
		snapshots = append(snapshots, open)
	}))
	require.NoError(t, err)
	plain, err := bfs.BFS(g)
	require.NoError(t, err)

	assert.Equal(t, plain, traced)
	require.Len(t, snapshots, 5) // S, three corridor cells, G
	require.Len(t, snapshots[0], 1)
	assert.Equal(t, g.Start(), snapshots[0][0].Pos)
	assert.Equal(t, g.Goal(), snapshots[4][0].Pos)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS.
func TestBFS_Cancellation(t *testing.T) {
	g := gridtest.MustGrid(t, gridtest.TunnelDetour...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestBFS_ConcurrentSafety ensures runs sharing one grid do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := gridtest.MustGrid(t, gridtest.TunnelDetour...)
	results := make(chan *core.Result, 4)
	for i := 0; i < 4; i++ {
		go func() {
			res, _ := bfs.BFS(g)
			results <- res
		}()
	}
	first := <-results
	for i := 1; i < 4; i++ {
		assert.Equal(t, first, <-results)
	}
}
