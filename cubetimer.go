// Package cubetimer generates random-state scrambles for the 3x3 Rubik's
// cube and provides the move types shared by the timer application.
//
// A scramble is produced by drawing a uniformly random *reachable* cube
// state (respecting the corner/edge parity and orientation-sum constraints
// of the cube group), encoding it as a 54-character facelet string, asking
// an external solver for a solution, and inverting that solution.
//
// # Quick Start
//
//	solver := cubetimer.CommandSolver{Path: "kociemba"}
//	s := cubetimer.NewScrambler(solver)
//
//	scramble, err := s.Generate()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(scramble) // e.g. "D2 R' U F2 L B' ..."
//
// The random source and solver are both injectable, so tests can run the
// full pipeline with a fixed seed and a stub oracle:
//
//	s := cubetimer.NewScrambler(
//	    cubetimer.SolverFunc(func(string) (string, error) { return "R U R'", nil }),
//	    cubetimer.WithRand(rand.New(rand.NewSource(1))),
//	)
//
// # Facelet Format
//
// States are exchanged with the solver as 54-character strings in URFDLB
// face order, nine stickers per face, matching the format used by
// Kociemba's two-phase solver. The solved state is SolvedFacelets.
package cubetimer
