// Package config loads application configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds environment-driven settings. Command-line flags override
// these values; the core scrambler library sees neither and receives its
// dependencies fully constructed.
type Config struct {
	// DBPath is the solve history database. Empty means the default
	// location under the user's home directory.
	DBPath string `env:"CUBETIMER_DB"`

	// SolverCmd is the external solver executable handed the 54-character
	// facelet string as its argument.
	SolverCmd string `env:"CUBETIMER_SOLVER" envDefault:"kociemba"`

	// Debug enables debug-level logging, including traces of every
	// generated state, solution and scramble.
	Debug bool `env:"CUBETIMER_DEBUG"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
