// Package bfs provides tunable options and error definitions
// for breadth-first search over a grid.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsearch/core"
	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation; checked once per dequeue.
	Ctx context.Context

	// Order fixes the direction sequence used for every expansion.
	Order grid.Order

	// OnOpen, if non-nil, receives a snapshot of the queue (front first)
	// once per dequeue cycle, before the dequeue. It must not retain or
	// modify the states' fields.
	OnOpen func(open []*core.State)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, clockwise
// order and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		Order: grid.Clockwise,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder selects the traversal order.
func WithOrder(order grid.Order) Option {
	return func(o *Options) {
		switch order {
		case grid.Clockwise, grid.CounterClockwise:
			o.Order = order
		default:
			o.err = fmt.Errorf("%w: unknown order %d", ErrOptionViolation, order)
		}
	}
}

// WithOnOpen registers the open-list observation hook.
func WithOnOpen(fn func(open []*core.State)) Option {
	return func(o *Options) {
		o.OnOpen = fn
	}
}
