// Package solver puts the four search strategies behind one interface so a
// run can select one by name.
//
//	s, err := solver.Lookup("A*")
//	res, err := s.Solve(g, solver.Config{Order: grid.Clockwise})
//
// Names are matched case-insensitively: BFS, DFID, A* (or ASTAR) and IDA*
// (or IDASTAR). When Config.Trace is set, every open-structure snapshot is
// logged at debug level through Config.Logger.
package solver
