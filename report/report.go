// Package report renders search results as result files: the move list,
// node statistics and cost, one per line.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/gridsearch/core"
)

// NoPath is written in place of the move list when the goal is unreachable.
const NoPath = "no path"

// Write prints res to w:
//
//	D-DR-UR-U
//	Num: 4
//	Max space: 1
//	Cost: 8
//	0.001 seconds
//
// The last line is written only when withTime is set.
func Write(w io.Writer, res *core.Result, elapsed time.Duration, withTime bool) error {
	var b strings.Builder
	if res.Found {
		b.WriteString(res.MoveString())
	} else {
		b.WriteString(NoPath)
	}
	fmt.Fprintf(&b, "\nNum: %d\nMax space: %d\n", res.Generated, res.MaxSpace)
	if res.Found {
		fmt.Fprintf(&b, "Cost: %d\n", res.Cost)
	} else {
		b.WriteString("Cost: inf\n")
	}
	if withTime {
		fmt.Fprintf(&b, "%.3f seconds\n", elapsed.Seconds())
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// FormatOpen renders states as "[(r,c), (r,c)]". Entries holding the supply
// flag are marked with a trailing '*'.
func FormatOpen(states []*core.State) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = s.Pos.String()
		if s.Supply {
			parts[i] += "*"
		}
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
