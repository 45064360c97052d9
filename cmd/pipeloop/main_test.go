package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/supervisor"
)

const square = ".....\n.S-7.\n.|.|.\n.L-J.\n.....\n"

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day10.input")
	require.NoError(t, os.WriteFile(path, []byte(square), 0o644))

	out, err := execute(t, "", path, "--verify")
	require.NoError(t, err)
	require.Equal(t, "day10 - part1: 4\n", out)
}

func TestRoot_Stdin(t *testing.T) {
	out, err := execute(t, "..F7.\n.FJ|.\nSJ.L7\n|F--J\nLJ...\n", "-")
	require.NoError(t, err)
	require.Equal(t, "day10 - part1: 8\n", out)
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "grid.txt")
	require.NoError(t, os.WriteFile(input, []byte(square), 0o644))
	cfgPath := filepath.Join(dir, "pipeloop.yaml")
	cfg := "input: " + input + "\nmax_rounds: 2\nlog:\n  level: error\n  format: json\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	_, err := execute(t, "", "--config", cfgPath)
	require.ErrorIs(t, err, supervisor.ErrRoundLimit)

	// Flags override the file.
	out, err := execute(t, "", "--config", cfgPath, "--max-rounds", "0")
	require.NoError(t, err)
	require.Equal(t, "day10 - part1: 4\n", out)
}

func TestRoot_Errors(t *testing.T) {
	_, err := execute(t, ".....\n.S-7.\n...|.\n.L-J.\n", "-")
	require.ErrorIs(t, err, supervisor.ErrInsufficientDirections)

	_, err = execute(t, "", filepath.Join(t.TempDir(), "missing.input"))
	require.Error(t, err)

	_, err = execute(t, square, "-", "--max-rounds", "-3")
	require.Error(t, err)
}
