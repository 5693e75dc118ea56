package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, k := range []string{"QUBIT_SEED", "QUBIT_TRIALS", "QUBIT_WORKERS", "QUBIT_LOG_LEVEL", "QUBIT_LOG_PRETTY"} {
		t.Setenv(k, "")
	}

	var stdout, stderr bytes.Buffer
	cmd := NewCLI()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "qubit "+version+"\n", out)
}

func TestFilters(t *testing.T) {
	out, _, err := execute(t, "filters", "-n", "4000", "--seed", "1", "--workers", "2", "--log-pretty=false")
	require.NoError(t, err)
	assert.Contains(t, out, "CHAIN")
	assert.Contains(t, out, "[0° → 90°]")
	assert.Contains(t, out, "[0° → 45° → 90°]")
	assert.Contains(t, out, "12.500%")
}

func TestFiltersReproducible(t *testing.T) {
	args := []string{"filters", "-n", "3000", "--seed", "9", "--workers", "3", "--log-pretty=false"}
	a, _, err := execute(t, args...)
	require.NoError(t, err)
	b, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBell(t *testing.T) {
	out, logs, err := execute(t, "bell", "-n", "3000", "--seed", "3", "--log-pretty=false")
	require.NoError(t, err)
	assert.Contains(t, out, "ALICE")
	assert.Contains(t, out, "120°")
	assert.Contains(t, out, "local hidden-variable bound of 55.556%")
	assert.Contains(t, logs, "bell experiment finished")
}

func TestSweepPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.svg")
	out, _, err := execute(t, "sweep", "-n", "1000", "--seed", "5", "--steps", "2", "--plot", path, "--log-level", "warn")
	require.NoError(t, err)
	assert.Contains(t, out, "45°")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestEnvAndFlagPrecedence(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("QUBIT_TRIALS", "0")

	var stdout, stderr bytes.Buffer
	cmd := NewCLI()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	// Zero trials from the environment is rejected...
	cmd.SetArgs([]string{"filters"})
	assert.Error(t, cmd.Execute())

	// ...unless a flag overrides it.
	cmd = NewCLI()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"filters", "-n", "100", "--log-pretty=false"})
	assert.NoError(t, cmd.Execute())
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "filters", "--log-level", "loud")
	assert.Error(t, err)
}

func TestPrepareInspectMeasure(t *testing.T) {
	dir := t.TempDir()
	bell := filepath.Join(dir, "bell.qbit")
	rest := filepath.Join(dir, "rest.qbit")

	out, _, err := execute(t, "prepare", "bell", "--out", bell, "--log-pretty=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Qubits: 2, entangled: true")
	assert.Contains(t, out, "|11⟩")

	out, _, err = execute(t, "inspect", bell, "--log-pretty=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Prepared: bell")
	assert.Contains(t, out, "50.000%")

	out, _, err = execute(t, "measure", bell, "--qubit", "0", "--seed", "4", "--out", rest, "--log-pretty=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Qubit 0 at 0°: P(off)=50.000% P(on)=50.000%")
	assert.Contains(t, out, "Qubits: 1, entangled: false")

	out, _, err = execute(t, "inspect", rest, "--log-pretty=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Prepared: bell")
	assert.Contains(t, out, "100.000%")
}

func TestPrepareStates(t *testing.T) {
	out, _, err := execute(t, "prepare", "ghz", "--qubits", "3", "--log-pretty=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Qubits: 3, entangled: true")
	assert.Contains(t, out, "|111⟩")

	out, _, err = execute(t, "prepare", "plus", "--qubits", "2", "--log-pretty=false")
	require.NoError(t, err)
	assert.Contains(t, out, "entangled: false")
	assert.Contains(t, out, "25.000%")

	_, _, err = execute(t, "prepare", "random", "--qubits", "2", "--seed", "1", "--log-pretty=false")
	require.NoError(t, err)

	_, _, err = execute(t, "prepare", "cat")
	assert.Error(t, err)

	_, _, err = execute(t, "prepare", "zero", "--qubits", "0")
	assert.Error(t, err)
}

func TestMeasureMissingFile(t *testing.T) {
	_, _, err := execute(t, "measure", filepath.Join(t.TempDir(), "nope.qbit"))
	assert.Error(t, err)
}
