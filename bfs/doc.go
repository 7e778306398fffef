// Package bfs provides breadth-first search over a grid.Grid, from the board's
// start to its goal, with tunnels and the supply-station flag.
//
// What
//
//   - Expands states in FIFO order from the start state.
//   - Deduplicates by core.Identity (position + supply flag) with two sets:
//     states waiting in the frontier and states already expanded.
//   - Tests for the goal when a state is dequeued.
//   - Returns a core.Result: moves, positions, generated count, peak frontier
//     size, and path cost (core.Infinity when the goal is unreachable).
//
// Cost
//
//	Edge costs are not uniform (rough 3, goal 5, tunnel entry 2, hills 5/10),
//	but BFS ignores them when ordering: it returns the first path found in
//	expansion order, which has the fewest moves among those it explored and
//	is not necessarily the cheapest. Use astar or idastar for cost-optimal
//	answers.
//
// Determinism
//
//	Successors are generated in the fixed order given by WithOrder, so the
//	returned path and statistics are fully reproducible.
//
// Complexity (N = Rows×Cols)
//
//   - Time:   O(N) expansions, two identities per cell (supply flag off/on).
//   - Memory: O(N) for the queue and identity sets.
//
// Usage
//
//	res, err := bfs.BFS(g,
//	    bfs.WithOrder(grid.CounterClockwise),
//	    bfs.WithOnOpen(func(open []*core.State) { /* trace */ }),
//	)
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrOptionViolation   if an invalid Option was supplied.
//   - ctx.Err()            if the context passed with WithContext is done.
package bfs
