package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "kociemba", cfg.SolverCmd)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CUBETIMER_DB", "/tmp/solves.db")
	t.Setenv("CUBETIMER_SOLVER", "/opt/bin/twophase")
	t.Setenv("CUBETIMER_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/solves.db", cfg.DBPath)
	assert.Equal(t, "/opt/bin/twophase", cfg.SolverCmd)
	assert.True(t, cfg.Debug)
}
