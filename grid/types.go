// Package grid defines terrain, positions, tunnel pairs and sentinel errors
// for the board model.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for board construction.
var (
	// ErrEmptyGrid indicates the input matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: board must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrDimensionMismatch indicates declared dimensions disagree with the matrix.
	ErrDimensionMismatch = errors.New("grid: declared dimensions do not match the board")
	// ErrUnknownTerrain indicates a character outside the terrain alphabet.
	ErrUnknownTerrain = errors.New("grid: unknown terrain character")
	// ErrNoStart indicates the board has no start cell.
	ErrNoStart = errors.New("grid: board has no start cell")
	// ErrNoGoal indicates the board has no goal cell.
	ErrNoGoal = errors.New("grid: board has no goal cell")
	// ErrDuplicateStart indicates more than one start cell.
	ErrDuplicateStart = errors.New("grid: board has more than one start cell")
	// ErrDuplicateGoal indicates more than one goal cell.
	ErrDuplicateGoal = errors.New("grid: board has more than one goal cell")
	// ErrMalformedTunnel indicates a tunnel symbol that does not appear exactly twice.
	ErrMalformedTunnel = errors.New("grid: tunnel symbol must appear exactly twice")
	// ErrBadOrder indicates an unrecognised traversal order name.
	ErrBadOrder = errors.New("grid: unknown traversal order")
)

// EnterCost is the price of moving through a tunnel with the Enter pseudo-direction.
// It is also the minimum cost of any tunnel use, which the heuristic relies on.
const EnterCost = 2

// Impassable is returned by PositionValue for cells no legal move can land on.
// It is small enough that adding it to a path cost cannot overflow.
const Impassable = math.MaxInt32

// Terrain classifies a board cell.
type Terrain uint8

const (
	// Open is an ordinary corridor cell ('-').
	Open Terrain = iota
	// Wall is impassable ('#').
	Wall
	// Rough is passable only once a supply station has been visited ('~').
	Rough
	// Supply is a supply station ('*'); entering it sets the supply flag for good.
	Supply
	// Hill is passable but expensive, more so diagonally ('^').
	Hill
	// Start is the unique start cell ('S').
	Start
	// Goal is the unique goal cell ('G').
	Goal
	// Tunnel is one endpoint of a digit-paired tunnel ('0'…'9').
	Tunnel
)

// String returns the terrain name.
func (t Terrain) String() string {
	switch t {
	case Open:
		return "open"
	case Wall:
		return "wall"
	case Rough:
		return "rough"
	case Supply:
		return "supply"
	case Hill:
		return "hill"
	case Start:
		return "start"
	case Goal:
		return "goal"
	case Tunnel:
		return "tunnel"
	default:
		return fmt.Sprintf("Terrain(%d)", uint8(t))
	}
}

// terrainOf maps a board character to its terrain class.
func terrainOf(ch byte) (Terrain, bool) {
	switch {
	case ch == '-':
		return Open, true
	case ch == '#':
		return Wall, true
	case ch == '~':
		return Rough, true
	case ch == '*':
		return Supply, true
	case ch == '^':
		return Hill, true
	case ch == 'S':
		return Start, true
	case ch == 'G':
		return Goal, true
	case ch >= '0' && ch <= '9':
		return Tunnel, true
	}

	return 0, false
}

// Position is a (row, column) board coordinate, origin top-left.
type Position struct {
	Row, Col int
}

// String formats the position as "(r,c)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step is the (position, supply flag) pair of a search vertex.
// IsLegal uses it to refuse an immediate reversal onto the predecessor.
type Step struct {
	Pos    Position
	Supply bool
}

// TunnelPair holds the two endpoints of a tunnel. The pair is unordered:
// A is simply the endpoint met first in row-major order.
type TunnelPair struct {
	Symbol byte
	A, B   Position
}

// Grid is an immutable board. Rows and Cols give its dimensions;
// all other state is private and exposed through query methods.
type Grid struct {
	Rows, Cols int

	cells   []byte    // row-major raw characters
	terrain []Terrain // row-major terrain classes
	start   Position
	goal    Position
	exits   map[Position]Position // tunnel endpoint -> paired endpoint
	pairs   []TunnelPair
}
