// Package dfid defines options, outcomes and errors for iterative deepening.
package dfid

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsearch/core"
	"github.com/katalvlaran/gridsearch/grid"
)

var (
	// ErrGridNil is returned when a nil *grid.Grid is passed to DFID.
	ErrGridNil = errors.New("dfid: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfid: invalid option supplied")

	// ErrLimitExceeded is returned when WithMaxLimit is set and the search
	// is still cutting off at that limit.
	ErrLimitExceeded = errors.New("dfid: depth limit exceeded")
)

// outcome of one depth-limited attempt.
type outcome int

const (
	found outcome = iota
	cutoff
	fail
)

// Option configures DFID via functional arguments.
type Option func(*Options)

// Options holds configurable parameters for DFID.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Order fixes the direction sequence used for every expansion.
	Order grid.Order

	// MaxLimit, if positive, caps the depth limit. Default 0 (unbounded).
	MaxLimit int

	// OnIteration, if non-nil, is called with each depth limit before the attempt.
	OnIteration func(limit int)

	// OnOpen, if non-nil, is called with the current root-to-here path each
	// time a state is expanded.
	OnOpen func(path []*core.State)

	err error
}

// DefaultOptions returns Options with a background context, clockwise order,
// no limit cap and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		Order: grid.Clockwise,
	}
}

// WithContext sets the Context for cancellation. A nil context is ignored.
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

// WithMaxLimit caps the depth limit at n. n == 0 means unbounded; n < 0 is invalid.
func WithMaxLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLimit = n
	}
}

// WithOnIteration installs fn as the per-iteration hook.
func WithOnIteration(fn func(limit int)) Option {
	return func(o *Options) {
		o.OnIteration = fn
	}
}

// WithOnOpen installs fn as the current-path observation hook.
func WithOnOpen(fn func(path []*core.State)) Option {
	return func(o *Options) {
		o.OnOpen = fn
	}
}
