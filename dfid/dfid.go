package dfid

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridsearch/core"
	"github.com/katalvlaran/gridsearch/grid"
)

// walker encapsulates state during one DFID invocation.
type walker struct {
	opts Options
	exp  *core.Expander
	path mapset.Set[core.Identity] // identities on the current root-to-here path
}

// DFID runs depth-first iterative deepening on g from its start to its goal.
// An unreachable goal is not an error: the Result has Found=false and
// Cost=core.Infinity.
func DFID(g *grid.Grid, opts ...Option) (*core.Result, error) {
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

	w := &walker{opts: o, exp: core.NewExpander(g, o.Order)}
	root := w.exp.Root()
	maxSpace := 0

	for limit := 1; ; limit++ {
		if o.MaxLimit > 0 && limit > o.MaxLimit {
			return core.NewResult(nil, w.exp.Generated(), maxSpace),
				fmt.Errorf("%w: still cutting off at %d", ErrLimitExceeded, o.MaxLimit)
		}
		maxSpace = max(maxSpace, limit)
		if o.OnIteration != nil {
			o.OnIteration(limit)
		}

		w.path = mapset.New[core.Identity]()
		out, goal, err := w.limited(root, limit)
		if err != nil {
			return nil, err
		}
		switch out {
		case found:
			return core.NewResult(goal, w.exp.Generated(), maxSpace), nil
		case fail:
			return core.NewResult(nil, w.exp.Generated(), maxSpace), nil
		}
		// cutoff: deepen
	}
}

// limited is the recursive depth-limited search below cur with limit moves left.
func (w *walker) limited(cur *core.State, limit int) (outcome, *core.State, error) {
	select {
	case <-w.opts.Ctx.Done():
		return fail, nil, w.opts.Ctx.Err()
	default:
	}

	if cur.OnGoal {
		return found, cur, nil
	}
	if limit == 0 {
		return cutoff, nil, nil
	}

	id := cur.Identity()
	w.path.Put(id)
	if w.opts.OnOpen != nil {
		w.opts.OnOpen(cur.Chain())
	}

	cutoffOccurred := false
	for _, next := range w.exp.Successors(cur) {
		if w.path.Has(next.Identity()) {
			continue
		}
		out, goal, err := w.limited(next, limit-1)
		if err != nil {
			return fail, nil, err
		}
		switch out {
		case found:
			return found, goal, nil
		case cutoff:
			cutoffOccurred = true
		}
	}

	// backtrack so other routes may pass through this vertex
	w.path.Remove(id)
	if cutoffOccurred {
		return cutoff, nil, nil
	}

	return fail, nil, nil
}
