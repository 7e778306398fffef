// Package grid models the static board searched by the gridsearch strategies:
// a rectangular matrix of terrain cells with a single start, a single goal,
// and digit-paired tunnels.
//
// What:
//
//   - Grid wraps a rectangular character matrix and is immutable once built.
//   - Terrain alphabet:
//     '-' open corridor, '#' wall, '~' rough terrain, '*' supply station,
//     '^' hill, 'S' start, 'G' goal, '0'…'9' tunnel endpoints.
//   - IsLegal filters moves before any search vertex exists: bounds, walls,
//     rough terrain without the supply flag, and immediate reversal onto the
//     predecessor's (position, supply flag) pair.
//   - PositionValue prices a move by the terrain it lands on.
//   - Tunnels pair the two cells sharing a digit; the Enter pseudo-direction
//     relocates between them.
//   - Direction and Order fix the eight compass moves plus Enter, in clockwise
//     or counter-clockwise traversal order.
//
// Costs:
//
//	open 1, rough 3, supply station 1, start 1, goal 5,
//	hill 5 straight / 10 diagonal,
//	tunnel endpoint 2 when reached through Enter, 1 when walked onto.
//
// Errors:
//
//   - ErrEmptyGrid:         no rows or no columns.
//   - ErrNonRectangular:    rows of differing lengths.
//   - ErrDimensionMismatch: declared rows/cols disagree with the matrix.
//   - ErrUnknownTerrain:    a character outside the alphabet.
//   - ErrNoStart, ErrNoGoal, ErrDuplicateStart, ErrDuplicateGoal.
//   - ErrMalformedTunnel:   a tunnel digit not appearing exactly twice.
//   - ErrBadOrder:          unrecognised traversal order name.
//
// Complexity:
//
//   - New:          O(R×C) time and memory.
//   - IsLegal, PositionValue, TunnelExit: O(1).
package grid
