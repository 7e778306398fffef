package core

import "github.com/katalvlaran/gridsearch/grid"

// Expander generates successor states over one board in one traversal order.
// It owns the creation sequence counter and the generated-states statistic,
// so each strategy invocation must use its own Expander.
type Expander struct {
	grid *grid.Grid
	dirs []grid.Direction
	goal grid.Position

	seq       int
	generated int
}

// NewExpander prepares successor generation for g in the given order.
func NewExpander(g *grid.Grid, order grid.Order) *Expander {
	return &Expander{
		grid: g,
		dirs: order.Directions(),
		goal: g.Goal(),
	}
}

// Root creates the start state. It takes a sequence number but is not
// counted as generated.
func (e *Expander) Root() *State {
	p := e.grid.Start()
	s := &State{
		Pos:    p,
		Supply: e.grid.Terrain(p.Row, p.Col) == grid.Supply,
		OnGoal: p == e.goal,
	}
	s.Seq = e.next()

	return s
}

// Successors returns the legal children of s in traversal order.
// Each child gets the next sequence number and is counted as generated.
func (e *Expander) Successors(s *State) []*State {
	var pred *grid.Step
	if s.Parent != nil {
		pred = &grid.Step{Pos: s.Parent.Pos, Supply: s.Parent.Supply}
	}

	out := make([]*State, 0, len(e.dirs))
	for _, dir := range e.dirs {
		var target grid.Position
		if dir == grid.Enter {
			exit, ok := e.grid.TunnelExit(s.Pos.Row, s.Pos.Col)
			if !ok {
				continue
			}
			target = exit
		} else {
			dr, dc := dir.Delta()
			target = grid.Position{Row: s.Pos.Row + dr, Col: s.Pos.Col + dc}
		}

		if !e.grid.IsLegal(target.Row, target.Col, s.Supply, pred) {
			continue
		}

		next := &State{
			Pos:    target,
			G:      s.G + e.grid.PositionValue(target.Row, target.Col, dir),
			Supply: s.Supply || e.grid.Terrain(target.Row, target.Col) == grid.Supply,
			OnGoal: target == e.goal,
			Parent: s,
			Move:   dir,
			Seq:    e.next(),
		}
		e.generated++
		out = append(out, next)
	}

	return out
}

// Generated returns how many states Successors has created so far.
func (e *Expander) Generated() int {
	return e.generated
}

func (e *Expander) next() int {
	e.seq++
	return e.seq
}
