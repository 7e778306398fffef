// Package dfid implements depth-first iterative deepening over a grid.Grid.
//
// The outer loop runs a depth-limited depth-first search with limits
// 1, 2, 3, … until one attempt reaches the goal or proves it unreachable.
// Each bounded attempt is recursive and keeps only the identities on the
// current root-to-here path (no global closed list), so the same position
// may be revisited through different paths while cycles along one path are
// refused.
//
// A bounded attempt ends in one of three outcomes:
//
//   - found:  the goal was reached; the search returns immediately.
//   - cutoff: at least one branch hit the depth limit; retry with limit+1.
//   - fail:   the whole tree was exhausted without a cutoff; no path exists.
//
// The goal test happens when a state is entered, before the limit check,
// so a goal k moves away is found by iteration k and by no earlier one.
//
// Statistics: generated states across all iterations, the largest depth
// limit used (the space metric, since recursion depth bounds memory), and
// the final path cost.
//
// Options:
//
//   - WithContext(ctx)        cancellation, checked on every recursive call.
//   - WithOrder(order)        clockwise (default) or counter-clockwise.
//   - WithMaxLimit(n)         give up with ErrLimitExceeded past limit n (0 = unbounded).
//   - WithOnIteration(fn)     called with each depth limit before its attempt.
//   - WithOnOpen(fn)          called with the current path on every expansion.
//
// Complexity: O(b^d) time for branching factor b ≤ 9 and solution depth d;
// O(d) memory.
package dfid
