package idastar

import (
	"github.com/katalvlaran/gridsearch/core"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/heuristic"
)

// entry is a stack slot. closing is set on the first pop.
type entry struct {
	state   *core.State
	closing bool
}

// walker holds the state of one IDAStar invocation. stack and table are
// rebuilt for every threshold.
type walker struct {
	opts     Options
	exp      *core.Expander
	h        *heuristic.TunnelAware
	stack    []*entry
	table    map[core.Identity]*entry
	maxSpace int
}

// IDAStar searches g from its start to its goal with increasing f thresholds.
// An unreachable goal is not an error: the Result has Found=false and
// Cost=core.Infinity.
func IDAStar(g *grid.Grid, opts ...Option) (*core.Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		opts: o,
		exp:  core.NewExpander(g, o.Order),
		h:    heuristic.New(g),
	}
	root := w.exp.Root()
	root.H = w.h.Estimate(root.Pos)

	for t := root.F(); t != core.Infinity; {
		if o.OnIteration != nil {
			o.OnIteration(t)
		}
		goal, minF, err := w.iterate(root, t)
		if err != nil {
			return nil, err
		}
		if goal != nil {
			return core.NewResult(goal, w.exp.Generated(), w.maxSpace), nil
		}
		t = minF
	}

	return core.NewResult(nil, w.exp.Generated(), w.maxSpace), nil
}

// iterate runs one threshold-bounded pass. It returns the goal state when
// generated, else the smallest pruned f (core.Infinity when nothing was pruned).
func (w *walker) iterate(root *core.State, t int) (*core.State, int, error) {
	minF := core.Infinity
	first := &entry{state: root}
	w.stack = append(w.stack[:0], first)
	w.table = map[core.Identity]*entry{root.Identity(): first}

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return nil, 0, w.opts.Ctx.Err()
		default:
		}
		if n := len(w.stack) + len(w.table); n > w.maxSpace {
			w.maxSpace = n
		}
		if w.opts.OnOpen != nil {
			w.opts.OnOpen(w.snapshot())
		}

		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// second visit: the subtree below is done
		if top.closing {
			delete(w.table, top.state.Identity())
			continue
		}
		top.closing = true
		w.stack = append(w.stack, top)

		for _, next := range w.exp.Successors(top.state) {
			next.H = w.h.Estimate(next.Pos)
			if next.F() > t {
				if next.OnGoal {
					return next, minF, nil
				}
				minF = min(minF, next.F())
				if w.opts.OnPrune != nil {
					w.opts.OnPrune(next)
				}
				continue
			}

			id := next.Identity()
			if old, ok := w.table[id]; ok {
				if old.closing || old.state.F() <= next.F() {
					continue
				}
				w.evict(old)
			}
			if next.OnGoal {
				return next, minF, nil
			}

			e := &entry{state: next}
			w.stack = append(w.stack, e)
			w.table[id] = e
		}
	}

	return nil, minF, nil
}

// evict removes e from the stack and the table.
func (w *walker) evict(e *entry) {
	for i := len(w.stack) - 1; i >= 0; i-- {
		if w.stack[i] == e {
			w.stack = append(w.stack[:i], w.stack[i+1:]...)
			break
		}
	}
	delete(w.table, e.state.Identity())
	if w.opts.OnEvict != nil {
		w.opts.OnEvict(e.state)
	}
}

func (w *walker) snapshot() []*core.State {
	out := make([]*core.State, len(w.stack))
	for i, e := range w.stack {
		out[i] = e.state
	}

	return out
}
