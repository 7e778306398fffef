// Package astar implements A* best-first search over a grid.Grid, guided by
// the tunnel-aware Chebyshev heuristic.
//
// The frontier is a min-heap on f = g + h. Equal f values are ordered by a
// TieBreak policy on creation sequence numbers:
//
//   - OldFirst (default): lower sequence first, FIFO among equals.
//   - NewFirst:           higher sequence first, LIFO among equals.
//
// Duplicate handling
//
//   - An open map keeps the best g known for each identity in the frontier.
//     A newly generated state that improves on it is pushed again and the
//     map entry overwritten; the heap is never updated in place.
//   - A closed set holds identities already expanded. Closed identities are
//     never reopened, and stale heap entries are dropped when popped.
//
// The goal test runs when a state is generated: every edge into the goal
// costs the same, so the first generated goal state ends the search.
//
// Complexity:
//
//   - Time:  O(N log N) heap operations for N generated states.
//   - Space: O(N) for the heap, open map and closed set.
//
// Errors:
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOptionViolation  for an invalid order or tie-break.
//   - ErrBadTieBreak      from ParseTieBreak on an unknown policy name.
package astar
