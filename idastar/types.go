package idastar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsearch/core"
	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors returned by IDAStar.
var (
	// ErrGridNil indicates that a nil *grid.Grid was passed to IDAStar.
	ErrGridNil = errors.New("idastar: grid is nil")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("idastar: invalid option supplied")
)

// Options configures IDAStar.
type Options struct {
	// Ctx is checked once per stack pop.
	Ctx context.Context

	// Order is the direction sequence for every expansion.
	Order grid.Order

	// OnIteration is called with the threshold at the start of every outer iteration.
	OnIteration func(threshold int)

	// OnPrune is called for every successor rejected because f exceeds the threshold.
	OnPrune func(s *core.State)

	// OnEvict is called with a table entry replaced by a cheaper duplicate.
	OnEvict func(s *core.State)

	// OnOpen receives the stack, bottom to top, once per pop.
	OnOpen func(stack []*core.State)

	err error
}

// Option represents a functional option for configuring IDAStar.
type Option func(*Options)

// DefaultOptions returns Options with a background context and clockwise order.
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

// WithOnIteration registers the per-threshold hook.
func WithOnIteration(fn func(threshold int)) Option {
	return func(o *Options) {
		o.OnIteration = fn
	}
}

// WithOnPrune registers the pruned-successor hook.
func WithOnPrune(fn func(s *core.State)) Option {
	return func(o *Options) {
		o.OnPrune = fn
	}
}

// WithOnEvict registers the eviction hook.
func WithOnEvict(fn func(s *core.State)) Option {
	return func(o *Options) {
		o.OnEvict = fn
	}
}

// WithOnOpen registers the stack observation hook.
func WithOnOpen(fn func(stack []*core.State)) Option {
	return func(o *Options) {
		o.OnOpen = fn
	}
}
