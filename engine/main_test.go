package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeState(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunChoosesCapture(t *testing.T) {
	path := writeState(t, "B=1x1\np1: (0,1) (1,2)\np2: (1,0)\n")

	var out bytes.Buffer
	require.NoError(t, run([]string{"-color", "Off", path}, &out))
	assert.Contains(t, out.String(), "AI would choose move (2, 1) (value 5)")
}

func TestRunFullBoard(t *testing.T) {
	path := writeState(t, "B=1x1\np1: (0,1) (1,2)\np2: (1,0) (2,1)\n")

	var out bytes.Buffer
	require.NoError(t, run([]string{"-color", "Off", path}, &out))
	assert.Contains(t, out.String(), "No legal moves left")
}

func TestRunWithConfigFile(t *testing.T) {
	path := writeState(t, "B=1x1\np1: (0,1) (1,2)\np2: (1,0)\n")

	var out bytes.Buffer
	require.NoError(t, run([]string{"-f", "etc/engine.yaml", "-depth", "1", "-color", "Off", path}, &out))
	assert.Contains(t, out.String(), "AI would choose move (2, 1) (value 2)")
}

func TestRunErrors(t *testing.T) {
	assert.Error(t, run(nil, &bytes.Buffer{}))
	assert.Error(t, run([]string{"-ai", "3", "x"}, &bytes.Buffer{}))
	assert.Error(t, run([]string{filepath.Join(t.TempDir(), "missing")}, &bytes.Buffer{}))
}
