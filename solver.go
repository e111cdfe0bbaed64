package cubetimer

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Solver computes a move sequence that brings the given facelet string to
// the solved state. Implementations are external oracles (typically
// Kociemba's two-phase algorithm); this package never solves cubes itself.
//
// The returned sequence uses standard space-separated notation ("R U2 F'").
// An empty string is a valid answer for an already-solved state. Solve
// should return an error for states it considers unreachable.
type Solver interface {
	Solve(facelets string) (string, error)
}

// SolverFunc adapts an ordinary function to the Solver interface.
type SolverFunc func(facelets string) (string, error)

// Solve calls f.
func (f SolverFunc) Solve(facelets string) (string, error) {
	return f(facelets)
}

// CommandSolver invokes an external solver executable. The facelet string is
// appended as the final argument and the solution is read from stdout, which
// matches the CLI of the common kociemba ports.
//
//	kociemba <54-char facelet string>  ->  "R U R' ..."
type CommandSolver struct {
	Path string   // Solver executable (looked up on PATH if not absolute)
	Args []string // Extra arguments placed before the facelet string
}

// Solve runs the solver process and returns its trimmed stdout.
func (c CommandSolver) Solve(facelets string) (string, error) {
	args := make([]string, 0, len(c.Args)+1)
	args = append(args, c.Args...)
	args = append(args, facelets)

	out, err := exec.Command(c.Path, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%s: %s", c.Path, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%s: %w", c.Path, err)
	}

	return strings.TrimSpace(string(out)), nil
}
