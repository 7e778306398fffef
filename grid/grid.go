package grid

import (
	"fmt"
	"strings"
)

// New builds a Grid from a declared size and its character rows.
// It validates dimensions, the terrain alphabet, start/goal uniqueness and
// tunnel pairing, and copies the input so the Grid stays immutable.
// Complexity: O(R×C) time and memory.
func New(rows, cols int, lines []string) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(lines) != rows {
		return nil, fmt.Errorf("%w: declared %d rows, got %d", ErrDimensionMismatch, rows, len(lines))
	}
	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, r, len(line), cols)
		}
	}

	return build(rows, cols, lines)
}

// FromLines builds a Grid whose dimensions are taken from the rows themselves.
// Returns ErrEmptyGrid for no rows or an empty first row, ErrNonRectangular
// when row lengths differ.
func FromLines(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(lines[0])
	for _, line := range lines {
		if len(line) != w {
			return nil, ErrNonRectangular
		}
	}

	return build(len(lines), w, lines)
}

func build(rows, cols int, lines []string) (*Grid, error) {
	g := &Grid{
		Rows:    rows,
		Cols:    cols,
		cells:   make([]byte, rows*cols),
		terrain: make([]Terrain, rows*cols),
		exits:   make(map[Position]Position),
	}

	var haveStart, haveGoal bool
	first := make(map[byte]Position) // tunnel symbol -> first endpoint seen
	seen := make(map[byte]int)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ch := lines[r][c]
			t, ok := terrainOf(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownTerrain, ch, r, c)
			}
			i := g.index(r, c)
			g.cells[i] = ch
			g.terrain[i] = t

			p := Position{Row: r, Col: c}
			switch t {
			case Start:
				if haveStart {
					return nil, fmt.Errorf("%w: second start at %v", ErrDuplicateStart, p)
				}
				haveStart, g.start = true, p
			case Goal:
				if haveGoal {
					return nil, fmt.Errorf("%w: second goal at %v", ErrDuplicateGoal, p)
				}
				haveGoal, g.goal = true, p
			case Tunnel:
				seen[ch]++
				switch seen[ch] {
				case 1:
					first[ch] = p
				case 2:
					a := first[ch]
					g.exits[a] = p
					g.exits[p] = a
					g.pairs = append(g.pairs, TunnelPair{Symbol: ch, A: a, B: p})
				default:
					return nil, fmt.Errorf("%w: %q appears more than twice", ErrMalformedTunnel, ch)
				}
			}
		}
	}

	if !haveStart {
		return nil, ErrNoStart
	}
	if !haveGoal {
		return nil, ErrNoGoal
	}
	for ch, n := range seen {
		if n != 2 {
			return nil, fmt.Errorf("%w: %q appears once at %v", ErrMalformedTunnel, ch, first[ch])
		}
	}

	return g, nil
}

// InBounds reports whether (r,c) lies within the board.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// Terrain returns the terrain class at (r,c). The cell must be in bounds.
func (g *Grid) Terrain(r, c int) Terrain {
	return g.terrain[g.index(r, c)]
}

// Cell returns the raw board character at (r,c). The cell must be in bounds.
func (g *Grid) Cell(r, c int) byte {
	return g.cells[g.index(r, c)]
}

// Start returns the start position.
func (g *Grid) Start() Position { return g.start }

// Goal returns the goal position.
func (g *Grid) Goal() Position { return g.goal }

// IsLegal reports whether a searcher carrying the given supply flag may
// move onto (r,c). pred is the (position, supply) pair of the expanding
// vertex's predecessor, or nil at the root; landing back on it with the same
// flag is refused. Longer cycles are left to the strategies.
func (g *Grid) IsLegal(r, c int, supply bool, pred *Step) bool {
	if !g.InBounds(r, c) {
		return false
	}
	switch g.Terrain(r, c) {
	case Wall:
		return false
	case Rough:
		if !supply {
			return false
		}
	}
	if pred != nil && pred.Pos.Row == r && pred.Pos.Col == c && pred.Supply == supply {
		return false
	}

	return true
}

// PositionValue returns the cost of landing on (r,c) by moving in dir.
// Walls report Impassable; IsLegal keeps strategies from ever asking.
func (g *Grid) PositionValue(r, c int, dir Direction) int {
	switch g.Terrain(r, c) {
	case Open, Supply, Start:
		return 1
	case Rough:
		return 3
	case Goal:
		return 5
	case Hill:
		if dir.Diagonal() {
			return 10
		}
		return 5
	case Tunnel:
		if dir == Enter {
			return EnterCost
		}
		return 1
	default:
		return Impassable
	}
}

// TunnelExit returns the endpoint paired with the tunnel cell at (r,c).
// ok is false when (r,c) is not a tunnel endpoint.
func (g *Grid) TunnelExit(r, c int) (exit Position, ok bool) {
	exit, ok = g.exits[Position{Row: r, Col: c}]
	return exit, ok
}

// TunnelPairs returns every tunnel once, ordered by the row-major position
// of its second endpoint. The returned slice is a copy.
func (g *Grid) TunnelPairs() []TunnelPair {
	out := make([]TunnelPair, len(g.pairs))
	copy(out, g.pairs)

	return out
}

// String renders the board back into its character rows, one per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for r := 0; r < g.Rows; r++ {
		sb.Write(g.cells[g.index(r, 0) : g.index(r, 0)+g.Cols])
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps (r,c) to a row-major index: r*Cols + c.
func (g *Grid) index(r, c int) int {
	return r*g.Cols + c
}
