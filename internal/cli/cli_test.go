package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/workload"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return out.String(), err
}

func workloadFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "w.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,burst,arrival,priority\n1,5,0,2\n2,3,1,1\n"), 0o644))
	return path
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "-a", "fcfs", "-i", workloadFile(t))
	require.NoError(t, err)
	assert.Contains(t, out, "First-come, first-serve")
	assert.Contains(t, out, "|   P1   |   P2   |")
	assert.Contains(t, out, "Makespan 8")
}

func TestRun_QuantumFlag(t *testing.T) {
	out, err := execute(t, "run", "-a", "rr", "--quantum", "2", "-i", workloadFile(t))
	require.NoError(t, err)
	assert.Contains(t, out, "|   P1   |   P2   |   P1   |   P2   |   P1   |")
}

func TestRun_All(t *testing.T) {
	out, err := execute(t, "run", "-a", "all", "--random", "4", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, len(schedulers.Names()), strings.Count(out, "Gantt schedule"))
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run", "-a", "fcfs")
	assert.ErrorContains(t, err, "--input or --random")

	_, err = execute(t, "run", "-a", "lottery", "--random", "3")
	assert.ErrorIs(t, err, schedulers.ErrUnknownAlgorithm)

	_, err = execute(t, "run", "-a", "rr", "--quantum", "0", "--random", "3")
	assert.ErrorIs(t, err, schedulers.ErrInvalidQuantum)

	_, err = execute(t, "run", "-i", filepath.Join(t.TempDir(), "w.txt"))
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	out, err := execute(t, "compare", "-i", workloadFile(t), "--levels", "2,4")
	require.NoError(t, err)
	for _, name := range schedulers.Names() {
		assert.Contains(t, out, name)
	}
}

func TestGenerate(t *testing.T) {
	out, err := execute(t, "generate", "-n", "6", "--seed", "3", "-f", "yaml")
	require.NoError(t, err)

	descs, err := workload.ReadYAML(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, descs, 6)

	again, err := execute(t, "generate", "-n", "6", "--seed", "3", "-f", "yaml")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpusched.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scheduler:\n  round_robin:\n    time_quantum: 8\n"), 0o644))

	out, err := execute(t, "--config", path, "run", "-a", "rr", "-i", workloadFile(t))
	require.NoError(t, err)
	assert.Contains(t, out, "|   P1   |   P2   |\n")

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "run", "--random", "2")
	assert.Error(t, err)
}

func TestRootsDoNotShareState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpusched.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scheduler:\n  round_robin:\n    time_quantum: 8\n"), 0o644))
	input := workloadFile(t)

	tests := []struct {
		name string
		args []string
		bar  string
	}{
		{name: "config quantum", args: []string{"--config", path, "run", "-a", "rr", "-i", input}, bar: "|   P1   |   P2   |\n"},
		{name: "default quantum", args: []string{"run", "-a", "rr", "-i", input}, bar: "|   P1   |   P2   |   P1   |\n"},
		{name: "flag quantum", args: []string{"run", "-a", "rr", "--quantum", "2", "-i", input}, bar: "|   P1   |   P2   |   P1   |   P2   |   P1   |\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for range 5 {
				out, err := execute(t, tt.args...)
				require.NoError(t, err)
				assert.Contains(t, out, tt.bar)
			}
		})
	}
}
