package cli

import (
	"log/slog"
	"os"

	"github.com/SeamusWaldron/cubetimer"
	"github.com/SeamusWaldron/cubetimer/internal/config"
	"github.com/SeamusWaldron/cubetimer/internal/storage"
)

// loadConfig merges environment configuration with command-line flags.
// Flags win.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if solverCmd != "" {
		cfg.SolverCmd = solverCmd
	}
	if verbose {
		cfg.Debug = true
	}

	return cfg, nil
}

// setupLogging installs the default slog handler. Debug level exposes the
// scrambler's state/solution traces.
func setupLogging(cfg config.Config) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// newScrambler builds the scrambler against the configured external solver.
func newScrambler(cfg config.Config) *cubetimer.Scrambler {
	return cubetimer.NewScrambler(cubetimer.CommandSolver{Path: cfg.SolverCmd})
}

// openDB opens the solve database from config, falling back to the default
// location.
func openDB(cfg config.Config) (*storage.DB, error) {
	path := cfg.DBPath
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	return storage.Open(path)
}
