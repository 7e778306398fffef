package core

import (
	"math"
	"strings"

	"github.com/katalvlaran/gridsearch/grid"
)

// Infinity is the cost sentinel for an unreachable goal and the "no bound"
// value of IDA* thresholds.
const Infinity = math.MaxInt

// Identity is the duplicate-detection key of a search vertex.
type Identity struct {
	Row, Col int
	Supply   bool
}

// State is a search vertex. See the package documentation for its lifecycle.
type State struct {
	Pos grid.Position

	// G is the accumulated path cost; H the heuristic estimate to the goal.
	G, H int

	// Supply is set once a supply station lies on the path to this state.
	Supply bool

	// OnGoal is decided at construction and is authoritative for goal tests.
	OnGoal bool

	// Parent is nil for the root.
	Parent *State

	// Move is the direction taken from Parent; meaningless at the root.
	Move grid.Direction

	// Seq is the creation sequence number, used only to break ties.
	Seq int
}

// Identity returns the (row, col, supply) key of s.
func (s *State) Identity() Identity {
	return Identity{Row: s.Pos.Row, Col: s.Pos.Col, Supply: s.Supply}
}

// F returns G + H.
func (s *State) F() int {
	return s.G + s.H
}

// String formats s as its position, "(r,c)".
func (s *State) String() string {
	return s.Pos.String()
}

// Chain returns the states from the root to s, inclusive.
func (s *State) Chain() []*State {
	var chain []*State
	for cur := s; cur != nil; cur = cur.Parent {
		chain = append(chain, cur)
	}
	// reverse to get root → s
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain
}

// Result is what every strategy returns.
type Result struct {
	// Found reports whether the goal was reached.
	Found bool

	// Moves lists the directions from start to goal; empty when not found.
	Moves []grid.Direction

	// Path lists the positions from start to goal, both included; empty when not found.
	Path []grid.Position

	// Generated counts states created by expansion (the root excluded).
	Generated int

	// MaxSpace is the strategy's peak-space metric: frontier size for BFS and A*,
	// depth limit for DFID, stack plus table size for IDA*.
	MaxSpace int

	// Cost is the total path cost, or Infinity when not found.
	Cost int
}

// NewResult builds a Result from the goal state reached, or from nil when the
// search ended without a path.
func NewResult(goal *State, generated, maxSpace int) *Result {
	res := &Result{
		Generated: generated,
		MaxSpace:  maxSpace,
		Cost:      Infinity,
		Moves:     []grid.Direction{},
		Path:      []grid.Position{},
	}
	if goal == nil {
		return res
	}

	chain := goal.Chain()
	res.Found = true
	res.Cost = goal.G
	res.Path = make([]grid.Position, 0, len(chain))
	res.Moves = make([]grid.Direction, 0, len(chain)-1)
	for i, s := range chain {
		res.Path = append(res.Path, s.Pos)
		if i > 0 {
			res.Moves = append(res.Moves, s.Move)
		}
	}

	return res
}

// MoveString joins the move labels with "-", e.g. "R-DR-Ent".
func (r *Result) MoveString() string {
	labels := make([]string, len(r.Moves))
	for i, m := range r.Moves {
		labels[i] = m.String()
	}

	return strings.Join(labels, "-")
}
