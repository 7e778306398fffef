// Package bfs provides breadth-first search over a grid.Grid.
package bfs

import (
	"context"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridsearch/core"
	"github.com/katalvlaran/gridsearch/grid"
)

// walker encapsulates mutable BFS state for one invocation.
type walker struct {
	opts     Options
	ctx      context.Context
	exp      *core.Expander
	queue    []*core.State
	frontier mapset.Set[core.Identity]
	expanded mapset.Set[core.Identity]
	maxSpace int
}

// BFS runs breadth-first search on g from its start to its goal.
// An unreachable goal is not an error: the Result has Found=false and
// Cost=core.Infinity. Returns ErrGridNil, ErrOptionViolation, or the
// context's error on cancellation.
func BFS(g *grid.Grid, opts ...Option) (*core.Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		opts:     o,
		ctx:      o.Ctx,
		exp:      core.NewExpander(g, o.Order),
		queue:    make([]*core.State, 0, g.Rows*g.Cols),
		frontier: mapset.New[core.Identity](),
		expanded: mapset.New[core.Identity](),
	}
	w.enqueue(w.exp.Root())

	goal, err := w.loop()
	if err != nil {
		return nil, err
	}

	return core.NewResult(goal, w.exp.Generated(), w.maxSpace), nil
}

// enqueue appends s, marks it as in the frontier and tracks the peak size.
func (w *walker) enqueue(s *core.State) {
	w.queue = append(w.queue, s)
	w.frontier.Put(s.Identity())
	if len(w.queue) > w.maxSpace {
		w.maxSpace = len(w.queue)
	}
}

// loop processes the queue until the goal is dequeued, the queue empties,
// or the context is cancelled.
func (w *walker) loop() (*core.State, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		if w.opts.OnOpen != nil {
			snapshot := make([]*core.State, len(w.queue))
			copy(snapshot, w.queue)
			w.opts.OnOpen(snapshot)
		}

		cur := w.queue[0]
		w.queue[0] = nil
		w.queue = w.queue[1:]
		id := cur.Identity()
		w.frontier.Remove(id)
		w.expanded.Put(id)

		if cur.OnGoal {
			return cur, nil
		}

		for _, next := range w.exp.Successors(cur) {
			nid := next.Identity()
			if w.frontier.Has(nid) || w.expanded.Has(nid) {
				continue
			}
			w.enqueue(next)
		}
	}

	return nil, nil
}
