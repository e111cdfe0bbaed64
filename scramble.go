package cubetimer

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// Scrambler produces random-state scrambles. It draws a random reachable
// cube state, encodes it, asks the injected Solver for a solution, and
// returns the inverted solution.
//
// A Scrambler is not safe for concurrent use; its random source is not
// locked. Create one per goroutine or serialize calls.
type Scrambler struct {
	solver Solver
	rng    *rand.Rand
	log    *slog.Logger
}

// Option configures a Scrambler.
type Option func(*Scrambler)

// WithRand sets the random source. Supplying a seeded source makes scramble
// generation reproducible, which is how the tests pin down the pipeline.
func WithRand(rng *rand.Rand) Option {
	return func(s *Scrambler) {
		s.rng = rng
	}
}

// WithLogger sets the logger used for debug tracing of generated states,
// solutions and scrambles. Defaults to slog.Default(); traces are emitted
// at Debug level so they are silent unless the caller opts in.
func WithLogger(log *slog.Logger) Option {
	return func(s *Scrambler) {
		s.log = log
	}
}

// NewScrambler creates a Scrambler backed by the given solver.
func NewScrambler(solver Solver, opts ...Option) *Scrambler {
	s := &Scrambler{
		solver: solver,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces one scramble in standard notation.
//
// Errors come in two distinct flavors: an ErrIncompleteEncoding wrap signals
// a defect in this package's sticker tables and is never masked, while an
// ErrSolverFailed wrap carries the oracle's failure along with the facelet
// string that provoked it. A solved-state draw with an empty solution yields
// an empty scramble and no error.
func (s *Scrambler) Generate() (string, error) {
	state := RandomState(s.rng)

	facelets, err := state.Facelets()
	if err != nil {
		return "", err
	}
	s.log.Debug("generated state", "facelets", facelets)

	if s.solver == nil {
		return "", ErrNoSolver
	}

	solution, err := s.solver.Solve(facelets)
	if err != nil {
		return "", fmt.Errorf("%w: %v | state: %s", ErrSolverFailed, err, facelets)
	}
	s.log.Debug("solver solution", "moves", solution)

	moves, err := ParseMoves(solution)
	if err != nil {
		return "", fmt.Errorf("%w: unparseable solution %q | state: %s", ErrSolverFailed, solution, facelets)
	}

	scramble := FormatMoves(InvertMoves(moves))
	s.log.Debug("scramble", "moves", scramble)
	return scramble, nil
}

// GenerateText is the display-facing variant of Generate. It never fails:
// on error it returns a diagnostic string embedding the failure so the
// caller (a timer UI) always has something to show. Callers that want to
// branch on failure should use Generate instead.
func (s *Scrambler) GenerateText() string {
	scramble, err := s.Generate()
	if err != nil {
		return "Error generating scramble: " + err.Error()
	}
	return scramble
}
