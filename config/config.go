package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/solver"
)

// Configuration errors. The last three alias the sentinels of the packages
// that own the vocabulary, so errors.Is works against either name.
var (
	// ErrMalformed indicates a run file that does not follow either format.
	ErrMalformed = errors.New("config: malformed run file")

	ErrUnknownAlgorithm = solver.ErrUnknownAlgorithm
	ErrBadOrder         = grid.ErrBadOrder
	ErrBadTieBreak      = astar.ErrBadTieBreak
)

// Run is one fully validated run file.
type Run struct {
	Algorithm solver.Strategy
	Order     grid.Order
	TieBreak  astar.TieBreak
	WithTime  bool
	WithOpen  bool
	Rows      int
	Cols      int
	Board     []string
}

// Grid builds the board, surfacing grid configuration errors.
func (r *Run) Grid() (*grid.Grid, error) {
	return grid.New(r.Rows, r.Cols, r.Board)
}

// Solver returns the strategy settings derived from the run.
func (r *Run) Solver() solver.Config {
	return solver.Config{Order: r.Order, TieBreak: r.TieBreak, Trace: r.WithOpen}
}

// Load reads path as YAML when its extension is .yaml or .yml, as text otherwise.
func Load(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	}

	return Parse(bytes.NewReader(data))
}

// Parse reads the line-oriented text format.
func Parse(r io.Reader) (*Run, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	next := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("%w: line %d: missing %s", ErrMalformed, lineNo+1, what)
		}
		lineNo++
		return strings.TrimRight(sc.Text(), "\r"), nil
	}

	var (
		run  Run
		line string
		err  error
	)
	if line, err = next("algorithm"); err != nil {
		return nil, err
	}
	if run.Algorithm, err = solver.Lookup(line); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo, err)
	}

	if line, err = next("order"); err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) == 0 || len(fields) > 2 {
		return nil, fmt.Errorf("%w: line %d: want \"<order> [tie-break]\", got %q", ErrMalformed, lineNo, line)
	}
	if run.Order, err = grid.ParseOrder(fields[0]); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo, err)
	}
	if len(fields) == 2 {
		if run.TieBreak, err = astar.ParseTieBreak(fields[1]); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if line, err = next("time switch"); err != nil {
		return nil, err
	}
	if run.WithTime, err = toggle(line, "time", lineNo); err != nil {
		return nil, err
	}
	if line, err = next("open switch"); err != nil {
		return nil, err
	}
	if run.WithOpen, err = toggle(line, "open", lineNo); err != nil {
		return nil, err
	}

	if line, err = next("dimensions"); err != nil {
		return nil, err
	}
	if run.Rows, run.Cols, err = dimensions(line, lineNo); err != nil {
		return nil, err
	}
	run.Board = make([]string, 0, run.Rows)
	for i := 0; i < run.Rows; i++ {
		if line, err = next(fmt.Sprintf("board row %d", i+1)); err != nil {
			return nil, err
		}
		run.Board = append(run.Board, line)
	}

	return &run, nil
}

// toggle accepts "with <what>" or "no <what>".
func toggle(line, what string, lineNo int) (bool, error) {
	switch strings.TrimSpace(line) {
	case "with " + what:
		return true, nil
	case "no " + what:
		return false, nil
	}

	return false, fmt.Errorf("%w: line %d: want \"with %s\" or \"no %s\", got %q", ErrMalformed, lineNo, what, what, line)
}

// dimensions parses "<rows>x<cols>".
func dimensions(line string, lineNo int) (int, int, error) {
	rs, cs, ok := strings.Cut(strings.TrimSpace(line), "x")
	if ok {
		rows, errR := strconv.Atoi(rs)
		cols, errC := strconv.Atoi(cs)
		if errR == nil && errC == nil && rows > 0 && cols > 0 {
			return rows, cols, nil
		}
	}

	return 0, 0, fmt.Errorf("%w: line %d: want \"<rows>x<cols>\", got %q", ErrMalformed, lineNo, line)
}

// yamlRun mirrors the YAML document.
type yamlRun struct {
	Algorithm string   `yaml:"algorithm"`
	Order     string   `yaml:"order"`
	TieBreak  string   `yaml:"tie_break"`
	WithTime  bool     `yaml:"with_time"`
	WithOpen  bool     `yaml:"with_open"`
	Board     []string `yaml:"board"`
}

// ParseYAML reads the YAML format. Order defaults to clockwise; dimensions
// are taken from the board.
func ParseYAML(data []byte) (*Run, error) {
	var doc yamlRun
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var (
		run Run
		err error
	)
	if run.Algorithm, err = solver.Lookup(doc.Algorithm); err != nil {
		return nil, err
	}
	run.Order = grid.Clockwise
	if doc.Order != "" {
		if run.Order, err = grid.ParseOrder(doc.Order); err != nil {
			return nil, err
		}
	}
	if run.TieBreak, err = astar.ParseTieBreak(doc.TieBreak); err != nil {
		return nil, err
	}
	if len(doc.Board) == 0 {
		return nil, fmt.Errorf("%w: board is empty", ErrMalformed)
	}
	run.WithTime, run.WithOpen = doc.WithTime, doc.WithOpen
	run.Rows, run.Cols = len(doc.Board), len(doc.Board[0])
	run.Board = doc.Board

	return &run, nil
}
