// Package core defines the search vertex shared by every gridsearch strategy,
// the successor generator that turns a board and a traversal order into
// child vertices, and the Result contract each strategy returns.
//
// State
//
//	A State is one search vertex: a position, the cost paid to reach it (G),
//	a heuristic estimate (H), the supply flag, a link to its predecessor, the
//	move that produced it and a creation sequence number. States are never
//	mutated after creation except for H, which a strategy sets once before the
//	state enters any frontier.
//
// Identity
//
//	Two states with the same (row, col, supply) Identity are the same vertex
//	for duplicate detection, whatever their cost or path.
//
// Expander
//
//	Expander walks the traversal order, resolves the Enter pseudo-direction
//	through tunnels, filters illegal moves with grid.IsLegal and stamps each
//	new State with the next sequence number. It also counts generated
//	states, which is the "Num" statistic every strategy reports.
//
// Result
//
//	Found, Moves, Path, Generated, MaxSpace and Cost. An unreachable goal is
//	not an error: Found is false, Moves is empty and Cost is Infinity.
package core
