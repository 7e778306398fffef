package astar

import (
	"sort"

	"github.com/katalvlaran/gridsearch/core"
)

// frontier is a min-heap of states ordered by f, then by creation sequence
// according to the tie-break policy. Stale duplicates stay in the heap and
// are skipped when popped (lazy decrease-key).
type frontier struct {
	items    []*core.State
	newFirst bool
}

func (pq *frontier) Len() int { return len(pq.items) }

func (pq *frontier) Less(i, j int) bool {
	return pq.before(pq.items[i], pq.items[j])
}

func (pq *frontier) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push is called by heap.Push; x must be a *core.State.
func (pq *frontier) Push(x interface{}) { pq.items = append(pq.items, x.(*core.State)) }

// Pop is called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	pq.items = old[:n-1]

	return item
}

// before reports whether a pops ahead of b.
func (pq *frontier) before(a, b *core.State) bool {
	if fa, fb := a.F(), b.F(); fa != fb {
		return fa < fb
	}
	if pq.newFirst {
		return a.Seq > b.Seq
	}

	return a.Seq < b.Seq
}

// snapshot returns the frontier in pop order. Sequence numbers are unique,
// so the order is total.
func (pq *frontier) snapshot() []*core.State {
	out := make([]*core.State, len(pq.items))
	copy(out, pq.items)
	sort.Slice(out, func(i, j int) bool { return pq.before(out[i], out[j]) })

	return out
}
