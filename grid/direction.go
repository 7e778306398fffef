package grid

import (
	"fmt"
	"strings"
)

// Direction is one of the eight compass moves or the Enter pseudo-direction.
type Direction uint8

// Direction constants, named after the labels written to results.
const (
	R Direction = iota
	DR
	D
	DL
	L
	UL
	U
	UR
	// Enter moves through the tunnel the searcher is standing on.
	Enter
)

var (
	deltas = [...][2]int{
		R: {0, 1}, DR: {1, 1}, D: {1, 0}, DL: {1, -1},
		L: {0, -1}, UL: {-1, -1}, U: {-1, 0}, UR: {-1, 1},
		Enter: {0, 0},
	}
	labels = [...]string{
		R: "R", DR: "DR", D: "D", DL: "DL",
		L: "L", UL: "UL", U: "U", UR: "UR",
		Enter: "Ent",
	}
)

// Delta returns the row and column offsets of the move. Enter has none;
// its target comes from the tunnel pairing.
func (d Direction) Delta() (dr, dc int) {
	return deltas[d][0], deltas[d][1]
}

// Diagonal reports whether the move changes both row and column.
func (d Direction) Diagonal() bool {
	dr, dc := d.Delta()
	return dr != 0 && dc != 0
}

// String returns the move label used in results ("R", "DR", …, "Ent").
func (d Direction) String() string {
	if int(d) < len(labels) {
		return labels[d]
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Order selects the fixed sequence in which moves are tried.
type Order int

const (
	// Clockwise tries R, DR, D, DL, L, UL, U, UR, then Enter.
	Clockwise Order = iota
	// CounterClockwise tries R, UR, U, UL, L, DL, D, DR, then Enter.
	CounterClockwise
)

var (
	clockwise        = [...]Direction{R, DR, D, DL, L, UL, U, UR, Enter}
	counterClockwise = [...]Direction{R, UR, U, UL, L, DL, D, DR, Enter}
)

// Directions returns the move sequence for the order. Every strategy walks
// it front to back, so it decides tie order among equal successors.
func (o Order) Directions() []Direction {
	src := clockwise[:]
	if o == CounterClockwise {
		src = counterClockwise[:]
	}
	out := make([]Direction, len(src))
	copy(out, src)

	return out
}

// String returns the canonical order name.
func (o Order) String() string {
	if o == CounterClockwise {
		return "counter-clockwise"
	}

	return "clockwise"
}

// ParseOrder accepts "clockwise", "counter-clockwise" or "counterclockwise",
// case-insensitively.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clockwise":
		return Clockwise, nil
	case "counter-clockwise", "counterclockwise":
		return CounterClockwise, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadOrder, s)
}
