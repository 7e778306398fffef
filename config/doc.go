// Package config reads run files: which strategy to use, its direction order
// and tie-break, the output switches and the board itself.
//
// Two formats are accepted. The text format is line oriented:
//
//	A*
//	clockwise new-first
//	with time
//	no open
//	3x4
//	S-~-
//	-*~G
//	--~-
//
// The YAML format carries the same fields:
//
//	algorithm: A*
//	order: clockwise
//	tie_break: new-first
//	with_time: true
//	with_open: false
//	board:
//	  - S-~-
//	  - -*~G
//	  - --~-
//
// Load picks the format from the file extension. Every configuration error
// is reported before any search runs.
package config
