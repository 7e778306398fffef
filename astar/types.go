package astar

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/core"
	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrGridNil indicates that a nil *grid.Grid was passed to AStar.
	ErrGridNil = errors.New("astar: grid is nil")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrBadTieBreak indicates an unknown tie-break policy name.
	ErrBadTieBreak = errors.New("astar: unknown tie-break policy")
)

// TieBreak orders frontier entries with equal f by creation sequence.
type TieBreak int

const (
	// OldFirst pops the earlier-created state first.
	OldFirst TieBreak = iota
	// NewFirst pops the later-created state first.
	NewFirst
)

// String returns the policy name as written in run configurations.
func (t TieBreak) String() string {
	if t == NewFirst {
		return "new-first"
	}

	return "old-first"
}

// ParseTieBreak accepts "old-first" or "new-first" (case-insensitive).
// The empty string selects the default, OldFirst.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "old-first":
		return OldFirst, nil
	case "new-first":
		return NewFirst, nil
	}

	return OldFirst, fmt.Errorf("%w: %q", ErrBadTieBreak, s)
}

// Options configures the behavior of A*.
//
// Ctx      – cancellation, checked once per pop.
// Order    – direction sequence for every expansion.
// TieBreak – ordering among equal f.
// OnOpen   – observation hook; receives the frontier in pop order once per cycle.
type Options struct {
	Ctx      context.Context
	Order    grid.Order
	TieBreak TieBreak
	OnOpen   func(open []*core.State)

	err error
}

// Option represents a functional option for configuring A*.
type Option func(*Options)

// DefaultOptions returns Options with a background context, clockwise order,
// OldFirst tie-breaking and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Order:    grid.Clockwise,
		TieBreak: OldFirst,
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

// WithTieBreak selects the policy for equal f values.
func WithTieBreak(tb TieBreak) Option {
	return func(o *Options) {
		switch tb {
		case OldFirst, NewFirst:
			o.TieBreak = tb
		default:
			o.err = fmt.Errorf("%w: unknown tie-break %d", ErrOptionViolation, tb)
		}
	}
}

// WithOnOpen registers the frontier observation hook.
func WithOnOpen(fn func(open []*core.State)) Option {
	return func(o *Options) {
		o.OnOpen = fn
	}
}
