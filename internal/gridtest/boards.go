package gridtest

import (
	"math/rand"
	"strings"

	"github.com/katalvlaran/gridsearch/grid"
)

// Open returns an n×n board of open cells with S top-left and G bottom-right.
func Open(n int) []string {
	lines := make([]string, n)
	for r := range lines {
		lines[r] = strings.Repeat("-", n)
	}
	lines[0] = "S" + lines[0][1:]
	lines[n-1] = lines[n-1][:n-1] + "G"

	return lines
}

// Scattered returns an n×n board like Open with roughly one wall in five
// cells, one tunnel pair and one supply station, laid out from a fixed seed
// so benchmarks are reproducible.
func Scattered(n int, seed int64) []string {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]byte, n)
	for r := range rows {
		rows[r] = []byte(strings.Repeat("-", n))
		for c := range rows[r] {
			switch x := rng.Intn(10); {
			case x < 2:
				rows[r][c] = '#'
			case x == 2:
				rows[r][c] = '~'
			}
		}
	}
	rows[0][0], rows[n-1][n-1] = 'S', 'G'
	rows[0][n/2], rows[n-1][n/2] = '1', '1'
	rows[n/2][0] = '*'

	lines := make([]string, n)
	for r := range rows {
		lines[r] = string(rows[r])
	}

	return lines
}

// MustBoard is MustGrid for benchmarks and examples that already hold a
// known-good board; it panics on error.
func MustBoard(lines []string) *grid.Grid {
	g, err := grid.FromLines(lines)
	if err != nil {
		panic(err)
	}

	return g
}
