package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/decisiongrid/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Help(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"--help"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error for --help")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
	require.Contains(t, out.String(), "calculate")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}

func TestRun_Calculate(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "request.json")
	request := `{"data": [
	  {"id": 1, "node_type": "matrix", "extension": "crisp",
	   "matrix": [[1, 2], [2, 1], [3, 3]], "criteria_types": [1, 1], "connections_to": [2]},
	  {"id": 2, "node_type": "weights", "extension": "crisp", "method": "EQUAL", "connections_to": [3]},
	  {"id": 3, "node_type": "method", "extension": "crisp", "method": "TOPSIS", "connections_to": [4]},
	  {"id": 4, "node_type": "ranking", "extension": "crisp"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(request), 0o600))
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"calculate", "--log-level", "debug", path})

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"ranking":[2.5,2.5,1]`)
}
