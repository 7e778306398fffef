// Package gridsearch is cost-aware path-finding on a 2D grid with terrain
// costs, teleporting tunnels and a supply station that unlocks rough
// terrain.
//
// Four interchangeable strategies solve the same start→goal problem over
// the same board abstraction:
//
//   - bfs:     breadth-first search, fewest moves.
//   - dfid:    depth-first iterative deepening.
//   - astar:   A* best-first search, cheapest path.
//   - idastar: IDA*, memory-bounded iterative deepening on f = g + h.
//
// Board alphabet:
//
//	-    open, cost 1
//	#    wall
//	~    rough, cost 3, passable only after visiting a supply station
//	*    supply station, cost 1
//	^    hill, cost 5 straight or 10 diagonal
//	S G  start, goal (entering the goal costs 5)
//	0-9  tunnel endpoints; Ent jumps to the twin cell for 2
//
// Subpackages:
//
//	grid/       board, terrain, directions and move legality
//	core/       search states, successor generation, results
//	heuristic/  tunnel-aware Chebyshev estimate
//	bfs/, dfid/, astar/, idastar/  the strategies
//	solver/     lookup by name, open-list tracing via logrus
//	config/     text and YAML run files
//	report/     result file format
//	cmd/gridsearch  command line entry point
//
// Quick start:
//
//	g, _ := grid.FromLines([]string{"S-~", "-*G"})
//	res, _ := astar.AStar(g)
//	fmt.Println(res.MoveString(), res.Cost)
package gridsearch
