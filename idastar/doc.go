// Package idastar implements IDA*, iterative-deepening best-first search,
// over a grid.Grid.
//
// Each outer iteration runs a depth-first search bounded by a threshold t on
// f = g + h, starting from t = h(start). Successors with f > t are pruned and
// the smallest pruned f becomes the next threshold. The search ends when the
// goal is generated or no pruned successor exists.
//
// The depth-first walk uses an explicit stack instead of recursion, plus a
// table keyed by identity. A stack entry visited for the first time is marked
// closing and pushed back; popping it again removes it from the table, which
// emulates post-order cleanup. A successor whose identity is in the table is
//
//   - dropped when that entry is closing (a cycle on the current path);
//   - dropped when that entry is not closing and its f is no worse;
//   - otherwise swapped in, evicting the stale entry from stack and table.
//
// A goal successor is accepted even when its f exceeds the threshold.
//
// Complexity:
//
//   - Time:  exponential in the worst case; each iteration repeats the work
//     of the previous ones.
//   - Space: O(d·b) for depth d and branching factor b, plus the table.
package idastar
