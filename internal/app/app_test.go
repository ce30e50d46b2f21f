package app

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/decisiongrid/internal/config"
	"github.com/specialistvlad/decisiongrid/internal/registry"
	"github.com/specialistvlad/decisiongrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arasRequest = `{
  "locale": "en",
  "data": [
    {"id": 1, "node_type": "matrix", "extension": "crisp",
     "matrix": [[6, 2, 3], [3, 7, 2], [2, 3, 9]], "criteria_types": [1, -1, 1],
     "connections_to": [2]},
    {"id": 2, "node_type": "weights", "extension": "crisp", "method": "equal",
     "connections_from": [1], "connections_to": [3]},
    {"id": 3, "node_type": "method", "extension": "crisp", "method": "aras",
     "connections_from": [2], "connections_to": [4]},
    {"id": 4, "node_type": "ranking", "extension": "crisp", "connections_from": [3]}
  ]
}`

const orphanMatrixYAML = `
locale: pl
data:
  - id: 1
    node_type: matrix
    extension: crisp
    matrix: [[1, 2], [3, 4]]
    criteria_types: [1, 1]
`

// setupAppTest creates an app backed by the fake strategies and captures its
// output and logs.
func setupAppTest(t *testing.T, settings *config.Settings) (*App, *testutil.SafeBuffer, *testutil.FakeModule) {
	t.Helper()
	if settings == nil {
		settings = config.Default()
	}
	settings.Log.Level = "debug"

	out := &testutil.SafeBuffer{}
	logs := &testutil.SafeBuffer{}
	fake := testutil.NewFakeModule()
	a := NewApp(out, logs, settings, fake)

	t.Cleanup(func() {
		if os.Getenv("DECISIONGRID_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return a, out, fake
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func documents(t *testing.T, out string) []map[string]any {
	t.Helper()
	var docs []map[string]any
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var doc map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &doc))
		docs = append(docs, doc)
	}
	return docs
}

func TestRun_SingleRequest(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeFile(t, t.TempDir(), "request.json", arasRequest)
	a, out, fake := setupAppTest(t, nil)

	// --- Act ---
	err := a.Run(context.Background(), &Config{RequestPath: path})

	// --- Assert ---
	require.NoError(t, err)
	docs := documents(t, out.String())
	require.Len(t, docs, 1)
	records := docs[0]["response"].([]any)
	require.Len(t, records, 4)
	ranking := records[3].(map[string]any)["data"].([]any)[0].(map[string]any)
	assert.Equal(t, []any{2.0, 3.0, 1.0}, ranking["ranking"])
	assert.Equal(t, 1, fake.CallCount("ARAS"))
}

func TestRun_DirectoryKeepsGoingAfterFailure(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeFile(t, dir, "a.json", arasRequest)
	writeFile(t, dir, "b.yaml", orphanMatrixYAML)
	writeFile(t, dir, "c.json", `{"data": [`)
	a, out, _ := setupAppTest(t, nil)

	// --- Act ---
	err := a.Run(context.Background(), &Config{RequestPath: dir})

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 requests failed")

	docs := documents(t, out.String())
	require.Len(t, docs, 3)
	assert.Contains(t, docs[0], "response")

	problem := docs[1]["error"].(map[string]any)
	assert.Equal(t, "structure error", problem["category"])
	assert.Equal(t, "Do macierzy o ID 1 nie podłączono żadnych bloków", problem["message"])

	assert.Contains(t, docs[2]["error"].(map[string]any)["message"], "failed to parse request")
}

func TestRun_ValidateOnlyDoesNotCalculate(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "request.json", arasRequest)
	a, out, fake := setupAppTest(t, nil)

	err := a.Run(context.Background(), &Config{RequestPath: path, ValidateOnly: true})

	require.NoError(t, err)
	assert.JSONEq(t, `{"response": []}`, out.String())
	assert.Zero(t, fake.CallCount("EQUAL"))
	assert.Zero(t, fake.CallCount("ARAS"))
}

func TestRun_EmptyRequestFails(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		body    string
		message string
	}{
		{"empty data", `{"locale": "en", "data": []}`, "Request does not contain any blocks"},
		{"no data", `{"locale": "pl"}`, "Żądanie nie zawiera żadnych bloków"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			path := writeFile(t, t.TempDir(), "request.json", tc.body)
			a, out, _ := setupAppTest(t, nil)

			// --- Act ---
			err := a.Run(context.Background(), &Config{RequestPath: path})

			// --- Assert ---
			require.Error(t, err)
			docs := documents(t, out.String())
			require.Len(t, docs, 1)
			problem := docs[0]["error"].(map[string]any)
			assert.Equal(t, "structure error", problem["category"])
			assert.Equal(t, "empty-request-error", problem["key"])
			assert.Equal(t, tc.message, problem["message"])
		})
	}
}

func TestRun_DefaultLocaleFromSettings(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "request.json",
		`{"data": [{"id": 1, "node_type": "matrix", "extension": "crisp", "matrix": [[1]], "criteria_types": [1]}]}`)
	settings := config.Default()
	settings.Engine.DefaultLocale = "pl"
	a, out, _ := setupAppTest(t, settings)

	err := a.Run(context.Background(), &Config{RequestPath: path})

	require.Error(t, err)
	assert.Contains(t, out.String(), "Do macierzy o ID 1")
}

func TestRun_WritesMetricsTextfile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "request.json", arasRequest)
	settings := config.Default()
	settings.Metrics.Textfile = filepath.Join(dir, "metrics.prom")
	a, _, _ := setupAppTest(t, settings)

	require.NoError(t, a.Run(context.Background(), &Config{RequestPath: path}))

	raw, err := os.ReadFile(settings.Metrics.Textfile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `decisiongrid_engine_node_calculations_total{kind="ranking"} 1`)
}

func TestRun_MissingPath(t *testing.T) {
	t.Parallel()
	a, _, _ := setupAppTest(t, nil)

	err := a.Run(context.Background(), &Config{RequestPath: filepath.Join(t.TempDir(), "absent.json")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find requests")
}

type brokenModule struct{}

func (brokenModule) Register(r *registry.Registry) {
	r.RegisterPlot("EMPTY", registry.Plot{})
}

func TestNewApp_PanicsOnInvalidRegistry(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewApp(&testutil.SafeBuffer{}, &testutil.SafeBuffer{}, config.Default(), brokenModule{})
	})
}

func TestNewApp_DefaultModules(t *testing.T) {
	t.Parallel()

	a := NewApp(&testutil.SafeBuffer{}, &testutil.SafeBuffer{}, config.Default())

	names := a.Registry().Names()
	assert.Contains(t, names["assessment"], "TOPSIS")
	assert.Contains(t, names["plot"], "RANKING BAR")
}
