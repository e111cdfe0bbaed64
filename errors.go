package cubetimer

import "errors"

// Sentinel errors for the cubetimer package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubetimer: invalid move notation")

	// State errors
	ErrIncompleteEncoding = errors.New("cubetimer: facelet encoding left cells unfilled")

	// Solver errors
	ErrNoSolver     = errors.New("cubetimer: no solver configured")
	ErrSolverFailed = errors.New("cubetimer: solver failed")
)
