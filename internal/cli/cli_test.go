package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vacuumworld/instance"
)

// execute runs the command tree with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun_Instance1(t *testing.T) {
	out, logs, err := execute(t, "run", "instance-1", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "== instance-1 (max depth 10) ==")
	assert.Contains(t, out, "Total number of nodes expanded: 2004002")
	assert.Contains(t, out, "Total number of nodes generated: 2003992")
	assert.Contains(t, out, "Sequence of moves: Up -> Suck -> Right -> Right -> Down -> Suck -> Right -> Down -> Suck")
	assert.Contains(t, out, "Total number of moves: 9")
	assert.Contains(t, out, "Total cost of solution: 6.70")

	assert.Contains(t, logs, "search finished")
	assert.NotContains(t, logs, "depth limit done", "debug hidden at info level")
}

func TestRun_MaxDepthOverride(t *testing.T) {
	out, _, err := execute(t, "run", "instance-1", "instance-2", "--max-depth", "2", "--no-color")
	require.NoError(t, err, "no solution is not an error")

	assert.Contains(t, out, "== instance-1 (max depth 2) ==")
	assert.Contains(t, out, "== instance-2 (max depth 2) ==")
	assert.Contains(t, out, "No solution within depth 2")
	assert.NotContains(t, out, "Sequence of moves")
}

func TestRun_DebugLogging(t *testing.T) {
	_, logs, err := execute(t, "run", "instance-1", "--max-depth", "3", "--log-level", "debug", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, logs, "depth limit done")
	assert.Contains(t, logs, "limit=3")
}

func TestRun_JSON(t *testing.T) {
	out, _, err := execute(t, "run", "--json", "--max-depth", "1", "--no-color")
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "instance-1", decoded[0]["instance"])
	assert.Equal(t, "instance-2", decoded[1]["instance"])
	assert.Equal(t, false, decoded[0]["found"])
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
rows = 2
columns = 2

[[instance]]
name = "square"
start = [1, 1]
dirty = [[2, 2]]
max_depth = 5
`), 0o644))

	out, _, err := execute(t, "-c", path, "run", "--show-grid", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "== square (max depth 5) ==")
	assert.Contains(t, out, "[A][ ]")
	assert.Contains(t, out, "Total number of moves: 3")
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "run", "nope")
	assert.ErrorIs(t, err, instance.ErrUnknownInstance)

	_, _, err = execute(t, "-c", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "run", "instance-1", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")

	_, _, err = execute(t, "run", "instance-1", "--max-depth=-1")
	assert.ErrorContains(t, err, "depth bound must be non-negative")
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "instance-1   start=(2, 2) dirty=[(1, 2) (2, 4) (3, 5)] max_depth=10")
	assert.Contains(t, out, "instance-2   start=(3, 2) dirty=[(1, 2) (2, 1) (2, 4) (3, 3)] max_depth=13")
}

func TestParseLevel(t *testing.T) {
	level, err := parseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = parseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestColorEnabled_NonTerminal(t *testing.T) {
	assert.False(t, colorEnabled(&bytes.Buffer{}, false))
	assert.False(t, colorEnabled(os.Stdout, true))
}
