package astar

import (
	"container/heap"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridsearch/core"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/heuristic"
)

// AStar searches g from its start to its goal in order of f = g + h.
// An unreachable goal is not an error: the Result has Found=false and
// Cost=core.Infinity.
func AStar(g *grid.Grid, opts ...Option) (*core.Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	r := &runner{
		options: cfg,
		exp:     core.NewExpander(g, cfg.Order),
		h:       heuristic.New(g),
		pq:      &frontier{newFirst: cfg.TieBreak == NewFirst},
		open:    make(map[core.Identity]int),
		closed:  mapset.New[core.Identity](),
	}
	r.init()
	goal, err := r.process()
	if err != nil {
		return nil, err
	}

	return core.NewResult(goal, r.exp.Generated(), r.maxSpace), nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	options  Options
	exp      *core.Expander
	h        *heuristic.TunnelAware
	pq       *frontier
	open     map[core.Identity]int // identity → best g currently in the frontier
	closed   mapset.Set[core.Identity]
	maxSpace int
}

// init pushes the start state.
func (r *runner) init() {
	heap.Init(r.pq)
	start := r.exp.Root()
	start.H = r.h.Estimate(start.Pos)
	r.push(start)
}

func (r *runner) push(s *core.State) {
	heap.Push(r.pq, s)
	r.open[s.Identity()] = s.G
	if n := r.pq.Len(); n > r.maxSpace {
		r.maxSpace = n
	}
}

// process pops states in priority order until a successor is the goal or
// the frontier is empty.
func (r *runner) process() (*core.State, error) {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if r.options.OnOpen != nil {
			r.options.OnOpen(r.pq.snapshot())
		}

		cur := heap.Pop(r.pq).(*core.State)
		id := cur.Identity()
		delete(r.open, id)

		// stale duplicate of an expanded identity
		if r.closed.Has(id) {
			continue
		}
		r.closed.Put(id)

		for _, next := range r.exp.Successors(cur) {
			if next.OnGoal {
				return next, nil
			}
			next.H = r.h.Estimate(next.Pos)

			nid := next.Identity()
			if r.closed.Has(nid) {
				continue
			}
			if g, ok := r.open[nid]; ok && next.G >= g {
				continue
			}
			r.push(next)
		}
	}

	return nil, nil
}
