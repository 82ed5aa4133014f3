package main

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout, stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// reportValue decodes the single JSON report printed on stdout.
func reportValue(t *testing.T, stdout string) map[string]any {
	t.Helper()
	var reports []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &reports), stdout)
	require.Len(t, reports, 1)
	return reports[0]
}

func TestSingle(t *testing.T) {
	stdout, stderr, err := execute(t, "single", "sin(x)", "--x-from=0", "--x-to=pi", "-o", "json", "--log-format", "json")
	require.NoError(t, err, stderr)

	rep := reportValue(t, stdout)
	assert.Equal(t, "done", rep["status"])
	assert.InDelta(t, 2.0, rep["value"], 1e-8)
	assert.Contains(t, stderr, `"message":"integral evaluated"`)
}

func TestSingle_Expected(t *testing.T) {
	stdout, _, err := execute(t, "single", "max(sqrt(1 - x^2))",
		"--x-from=-1", "--x-to=1", "--x-step=0.05",
		"--expected", strconv.FormatFloat(math.Pi/2, 'g', -1, 64), "--tolerance", "0.01")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pass")

	_, _, err = execute(t, "single", "1", "--x-from=0", "--x-to=1", "--expected", "3")
	assert.ErrorIs(t, err, errJobsFailed)
}

func TestDouble(t *testing.T) {
	stdout, stderr, err := execute(t, "double", "x*y",
		"--x-from=0", "--x-to=1", "--y-from=0", "--y-to=2", "--step=0.1", "-o", "json")
	require.NoError(t, err, stderr)

	rep := reportValue(t, stdout)
	assert.Equal(t, 2.0, rep["dimensions"])
	assert.InDelta(t, 1.0, rep["value"], 1e-9)
}

func TestTriple(t *testing.T) {
	stdout, stderr, err := execute(t, "triple", "1",
		"--x-from=-1", "--x-to=1", "--y-from=0", "--y-to=2", "--z-from=0", "--z-to=2",
		"--step=0.1", "-o", "yaml")
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "dimensions: 3")
	assert.Contains(t, stdout, "status: done")
}

func TestMissingLimits(t *testing.T) {
	_, _, err := execute(t, "double", "1", "--x-from=0", "--x-to=1", "--y-from=0")
	assert.Error(t, err, "required y-to flag")
}

func TestEvaluationError(t *testing.T) {
	stdout, _, err := execute(t, "single", "x +", "--x-from=0", "--x-to=1")
	assert.ErrorIs(t, err, errJobsFailed)
	assert.Contains(t, stdout, "error")
}

func TestBadFlagValues(t *testing.T) {
	_, _, err := execute(t, "single", "x", "--x-from=0", "--x-to=1", "--step=-1")
	assert.Error(t, err)

	_, _, err = execute(t, "single", "x", "--x-from=0", "--x-to=1", "-o", "csv")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
jobs:
  - name: cube
    integrand: "1"
    x: {from: "-1", to: "1"}
    y: {from: "0", to: "2"}
    z: {from: "0", to: "2"}
    expected: 8
    tolerance: 0.01
  - name: parabola
    integrand: "3 * x^2"
    x: {from: "0", to: "1"}
    expected: 1
    tolerance: 0.000001
`), 0o600))

	stdout, stderr, err := execute(t, "run", good, "--step=0.1")
	require.NoError(t, err, stderr)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "cube")
	assert.Contains(t, lines[1], "parabola")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`
jobs:
  - name: wrong
    integrand: "1"
    x: {from: "0", to: "1"}
    expected: 2
    tolerance: 0.1
`), 0o600))
	stdout, _, err = execute(t, "run", good, bad, "--step=0.1")
	assert.ErrorIs(t, err, errJobsFailed)
	assert.Contains(t, stdout, "miss")

	_, _, err = execute(t, "run", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

// TestRun_ExampleJobs keeps examples/jobs.yaml passing.
func TestRun_ExampleJobs(t *testing.T) {
	if testing.Short() {
		t.Skip("evaluates every reference integral")
	}
	stdout, stderr, err := execute(t, "run", filepath.Join("..", "..", "examples", "jobs.yaml"), "-o", "json")
	require.NoError(t, err, stdout+stderr)

	var reports []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &reports))
	require.Len(t, reports, 5)
	for _, r := range reports {
		assert.Equal(t, "pass", r["status"], r["name"])
	}
}

func TestEnvFile(t *testing.T) {
	for _, name := range []string{"SEQINT_OUTPUT", "SEQINT_DEFAULT_STEP", "SEQINT_LOG_LEVEL", "SEQINT_LOG_FORMAT"} {
		if old, ok := os.LookupEnv(name); ok {
			require.NoError(t, os.Unsetenv(name))
			t.Cleanup(func() { _ = os.Setenv(name, old) })
		} else {
			t.Cleanup(func() { _ = os.Unsetenv(name) })
		}
	}

	env := filepath.Join(t.TempDir(), "seqint.env")
	require.NoError(t, os.WriteFile(env, []byte("SEQINT_OUTPUT=json\nSEQINT_LOG_LEVEL=ERROR\n"), 0o600))

	stdout, stderr, err := execute(t, "single", "1", "--x-from=0", "--x-to=2", "--env-file", env)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, reportValue(t, stdout)["value"], 1e-12)
	assert.Empty(t, stderr, "info logs are filtered at ERROR level")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "seqint version dev")
	assert.Contains(t, stdout, "commit: unknown")
}
