package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9095, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "cpusched.db", cfg.DBPath)
	assert.Equal(t, 4, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, []int{4, 8}, cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
port: 8081
log:
  level: debug
  format: json
scheduler:
  round_robin:
    time_quantum: 2
  multilevel_feedback_queue:
    levels_time_quantum: [1, 2, 4]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 2, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, []int{1, 2, 4}, cfg.MultilevelFeedbackQueueLevelsTimeQuantum)

	opts := cfg.SchedulerOptions()
	assert.Equal(t, 2, opts.TimeQuantum)
	assert.Equal(t, []int{1, 2, 4}, opts.LevelsTimeQuantum)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CPUSCHED_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "6")
	cfg, err := Load(writeConfig(t, "port: 9000\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.RoundRobinTimeQuantum)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "scheduler:\n  round_robin:\n    time_quantum: 0\n"))
	assert.ErrorContains(t, err, "time quantum")

	_, err = Load(writeConfig(t, "port: 70000\n"))
	assert.ErrorContains(t, err, "port")
}
