package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/core"
	"github.com/katalvlaran/gridsearch/dfid"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/idastar"
	"github.com/katalvlaran/gridsearch/report"
)

// ErrUnknownAlgorithm is returned by Lookup for an unrecognised name.
var ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")

// Config carries the run settings shared by every strategy.
type Config struct {
	// Ctx cancels a running search. Nil means context.Background().
	Ctx context.Context

	Order grid.Order

	// TieBreak is used by A* only.
	TieBreak astar.TieBreak

	// Trace logs the open structure once per cycle.
	Trace bool

	// Logger receives trace lines. Nil discards them.
	Logger logrus.FieldLogger
}

// Strategy solves one grid with one algorithm. Every call returns a fresh Result.
type Strategy interface {
	Name() string
	Solve(g *grid.Grid, cfg Config) (*core.Result, error)
}

type strategy struct {
	name  string
	solve func(g *grid.Grid, cfg Config, onOpen func([]*core.State)) (*core.Result, error)
}

func (s strategy) Name() string { return s.name }

func (s strategy) Solve(g *grid.Grid, cfg Config) (*core.Result, error) {
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}

	return s.solve(g, cfg, tracer(s.name, cfg))
}

var (
	bfsStrategy = strategy{"BFS", func(g *grid.Grid, cfg Config, onOpen func([]*core.State)) (*core.Result, error) {
		return bfs.BFS(g, bfs.WithContext(cfg.Ctx), bfs.WithOrder(cfg.Order), bfs.WithOnOpen(onOpen))
	}}
	dfidStrategy = strategy{"DFID", func(g *grid.Grid, cfg Config, onOpen func([]*core.State)) (*core.Result, error) {
		return dfid.DFID(g, dfid.WithContext(cfg.Ctx), dfid.WithOrder(cfg.Order), dfid.WithOnOpen(onOpen))
	}}
	astarStrategy = strategy{"A*", func(g *grid.Grid, cfg Config, onOpen func([]*core.State)) (*core.Result, error) {
		return astar.AStar(g,
			astar.WithContext(cfg.Ctx),
			astar.WithOrder(cfg.Order),
			astar.WithTieBreak(cfg.TieBreak),
			astar.WithOnOpen(onOpen),
		)
	}}
	idastarStrategy = strategy{"IDA*", func(g *grid.Grid, cfg Config, onOpen func([]*core.State)) (*core.Result, error) {
		return idastar.IDAStar(g, idastar.WithContext(cfg.Ctx), idastar.WithOrder(cfg.Order), idastar.WithOnOpen(onOpen))
	}}
)

var registry = map[string]Strategy{
	"BFS":     bfsStrategy,
	"DFID":    dfidStrategy,
	"A*":      astarStrategy,
	"ASTAR":   astarStrategy,
	"IDA*":    idastarStrategy,
	"IDASTAR": idastarStrategy,
}

// Lookup returns the strategy registered under name.
func Lookup(name string) (Strategy, error) {
	if s, ok := registry[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return s, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Names lists the canonical strategy names.
func Names() []string {
	return []string{"BFS", "DFID", "A*", "IDA*"}
}

// tracer returns the OnOpen hook for cfg, or nil when tracing is off.
func tracer(name string, cfg Config) func([]*core.State) {
	if !cfg.Trace {
		return nil
	}
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	entry := log.WithField("algorithm", name)
	cycle := 0

	return func(open []*core.State) {
		cycle++
		entry.WithField("cycle", cycle).Debugf("open=%s", report.FormatOpen(open))
	}
}
