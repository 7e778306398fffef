// Package heuristic provides the tunnel-aware Chebyshev estimate used by the
// informed strategies (A* and IDA*).
//
//	h(n) = min( cheb(n, goal),
//	            min over tunnel pairs (a, b) of
//	                cheb(n, a) + EnterCost + cheb(b, goal),
//	                cheb(n, b) + EnterCost + cheb(a, goal) )
//
// Chebyshev distance matches eight-directional movement where every step
// costs at least 1, and EnterCost is the cheapest possible tunnel use.
// The estimate is not guaranteed consistent once rough terrain (cost 3) or
// hills are present, because it prices every step at 1; A* therefore never
// reopens closed states and may miss a cheaper path on such boards.
package heuristic

import "github.com/katalvlaran/gridsearch/grid"

// TunnelAware estimates the remaining cost to one goal on one board.
// It is immutable and safe for concurrent use.
type TunnelAware struct {
	goal  grid.Position
	pairs []grid.TunnelPair
}

// New precomputes the goal and tunnel pairs of g.
func New(g *grid.Grid) *TunnelAware {
	return &TunnelAware{
		goal:  g.Goal(),
		pairs: g.TunnelPairs(),
	}
}

// Estimate returns h for a state standing at p.
func (h *TunnelAware) Estimate(p grid.Position) int {
	best := Chebyshev(p, h.goal)
	for _, tp := range h.pairs {
		// both orientations: tunnels are bidirectional
		if c := Chebyshev(p, tp.A) + grid.EnterCost + Chebyshev(tp.B, h.goal); c < best {
			best = c
		}
		if c := Chebyshev(p, tp.B) + grid.EnterCost + Chebyshev(tp.A, h.goal); c < best {
			best = c
		}
	}

	return best
}

// Chebyshev returns max(|Δrow|, |Δcol|).
func Chebyshev(a, b grid.Position) int {
	return max(abs(a.Row-b.Row), abs(a.Col-b.Col))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
