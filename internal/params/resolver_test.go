package params

import (
	"encoding/json"
	"testing"

	"github.com/specialistvlad/decisiongrid/internal/calcerr"
	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"github.com/specialistvlad/decisiongrid/internal/registry"
	"github.com/specialistvlad/decisiongrid/internal/schema"
	"github.com/specialistvlad/decisiongrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crispMatrix(t *testing.T) mcda.Matrix {
	t.Helper()
	m, err := mcda.DecodeMatrix(mcda.Crisp, json.RawMessage(`[[6,2,3],[3,7,2],[2,3,8]]`))
	require.NoError(t, err)
	return m
}

func record(t *testing.T, doc string) schema.Kwargs {
	t.Helper()
	var k schema.Kwargs
	require.NoError(t, json.Unmarshal([]byte(doc), &k))
	return k
}

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	reg, _ := testutil.NewRegistry()
	return New(reg)
}

func TestResolve_NoRecordForMatrix(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx, _ := testutil.Context(t)
	req := Request{
		Records:  []schema.Kwargs{record(t, `{"matrix_id": 9, "lam": 0.5}`)},
		Mode:     mcda.Crisp,
		Method:   "TOPSIS",
		MatrixID: 1,
		Matrix:   crispMatrix(t),
	}

	// --- Act ---
	res, err := newResolver(t).Resolve(ctx, req)

	// --- Assert ---
	require.NoError(t, err)
	assert.Empty(t, res.Init)
	assert.Empty(t, res.Call)
	assert.Empty(t, res.Raw)
}

func TestResolve_CoercesValues(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.Context(t)
	req := Request{
		Records: []schema.Kwargs{record(t, `{
			"matrix_id": 1,
			"lam": "0.25",
			"sPROBID": true,
			"ref_point": [1, 2, 3],
			"cvalues": [[1, 2], [3, 4, 5]],
			"normalization_function": "minmax_normalization",
			"preference_function": "usual"
		}`)},
		Mode:     mcda.Crisp,
		Method:   "TOPSIS",
		MatrixID: 1,
		Matrix:   crispMatrix(t),
	}

	res, err := newResolver(t).Resolve(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, 0.25, res.Init["lam"])
	assert.Equal(t, true, res.Init["sPROBID"])
	assert.Equal(t, []float64{1, 2, 3}, res.Init["ref_point"])
	assert.Equal(t, [][]float64{{1, 2}, {3, 4, 5}}, res.Init["cvalues"])
	_, ok := res.Init.Normalization("normalization_function")
	assert.True(t, ok)
	assert.IsType(t, registry.PreferenceFunc(nil), res.Init["preference_function"])
	assert.Equal(t, "minmax_normalization", res.Raw["normalization_function"])
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mode    mcda.Mode
		record  string
		message string
	}{
		{
			name:    "unknown key",
			mode:    mcda.Crisp,
			record:  `{"matrix_id": 1, "gamma": 1}`,
			message: "Parameter 'gamma' is not supported by method 'TOPSIS'",
		},
		{
			name:    "fuzzy key in crisp mode",
			mode:    mcda.Crisp,
			record:  `{"matrix_id": 1, "distance": "euclidean_distance"}`,
			message: "Parameter 'distance' is not supported by method 'TOPSIS'",
		},
		{
			name:    "unresolvable selector",
			mode:    mcda.Fuzzy,
			record:  `{"matrix_id": 1, "normalization": "cube_normalization"}`,
			message: "Function 'cube_normalization' given in parameter 'normalization' is not available for method 'TOPSIS'",
		},
		{
			name:    "wrong value type",
			mode:    mcda.Crisp,
			record:  `{"matrix_id": 1, "lam": [1, 2]}`,
			message: "Parameter 'lam' of method 'TOPSIS' has an invalid value",
		},
		{
			name:    "bounds not pairs",
			mode:    mcda.Crisp,
			record:  `{"matrix_id": 1, "bounds": [[1, 2, 3]]}`,
			message: "Parameter 'bounds' of method 'TOPSIS' has an invalid value",
		},
		{
			name:    "esp expert without esp",
			mode:    mcda.Crisp,
			record:  `{"matrix_id": 1, "expert_function": "esp_expert"}`,
			message: "Missing parameter 'esp' for the expert function 'esp_expert' of method 'TOPSIS'",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx, _ := testutil.Context(t)
			req := Request{
				Records:  []schema.Kwargs{record(t, tc.record)},
				Mode:     tc.mode,
				Method:   "TOPSIS",
				MatrixID: 1,
				Matrix:   crispMatrix(t),
			}

			_, err := newResolver(t).Resolve(ctx, req)

			require.ErrorIs(t, err, calcerr.ErrParameter)
			var ce *calcerr.Error
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tc.message, ce.Message)
		})
	}
}

func TestResolve_ESPExpertConsumesESP(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.Context(t)
	req := Request{
		Records:  []schema.Kwargs{record(t, `{"matrix_id": 1, "expert_function": "esp_expert", "esp": [4, 4, 4]}`)},
		Mode:     mcda.Crisp,
		Method:   "COMET",
		MatrixID: 1,
		Matrix:   crispMatrix(t),
		Types:    []int{1, -1, 1},
		Weights:  mcda.CrispVector([]float64{0.3, 0.3, 0.4}),
	}

	res, err := newResolver(t).Resolve(ctx, req)

	require.NoError(t, err)
	assert.IsType(t, registry.ExpertFunc(nil), res.Init["expert_function"])
	assert.False(t, res.Init.Has("esp"), "esp is consumed by the expert function")
	assert.Equal(t, []float64{4, 4, 4}, res.Raw["esp"])
}

func TestResolve_ESPWithoutExpertIsPassedThrough(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.Context(t)
	req := Request{
		Records:  []schema.Kwargs{record(t, `{"matrix_id": 1, "esp": [1, 2, 3]}`)},
		Mode:     mcda.Crisp,
		Method:   "COMET",
		MatrixID: 1,
		Matrix:   crispMatrix(t),
	}

	res, err := newResolver(t).Resolve(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, res.Init["esp"])
}

func TestResolve_CallTimeSplit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		method   string
		mode     mcda.Mode
		record   string
		wantInit []string
		wantCall []string
	}{
		{"vikor crisp keeps v at construction", "VIKOR", mcda.Crisp, `{"matrix_id": 1, "v": 0.3}`, []string{"v"}, nil},
		{"vikor fuzzy moves v to call", "VIKOR", mcda.Fuzzy, `{"matrix_id": 1, "v": 0.3}`, nil, []string{"v"}},
		{"spotis crisp moves bounds to call", "SPOTIS", mcda.Crisp, `{"matrix_id": 1, "bounds": [[0, 10], [0, 10], [0, 10]]}`, nil, []string{"bounds"}},
		{"spotis crisp derives bounds", "SPOTIS", mcda.Crisp, `{"matrix_id": 2}`, nil, []string{"bounds"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx, _ := testutil.Context(t)
			req := Request{
				Records:  []schema.Kwargs{record(t, tc.record)},
				Mode:     tc.mode,
				Method:   tc.method,
				MatrixID: 1,
				Matrix:   crispMatrix(t),
			}

			res, err := newResolver(t).Resolve(ctx, req)

			require.NoError(t, err)
			for _, k := range tc.wantInit {
				assert.True(t, res.Init.Has(k), "init should hold %s", k)
				assert.False(t, res.Call.Has(k), "call should not hold %s", k)
			}
			for _, k := range tc.wantCall {
				assert.True(t, res.Call.Has(k), "call should hold %s", k)
				assert.False(t, res.Init.Has(k), "init should not hold %s", k)
			}
		})
	}
}

func TestResolve_DerivedSpotisBounds(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.Context(t)
	req := Request{Mode: mcda.Crisp, Method: "SPOTIS", MatrixID: 1, Matrix: crispMatrix(t)}

	res, err := newResolver(t).Resolve(ctx, req)

	require.NoError(t, err)
	bounds, ok := res.Call.Pairs("bounds")
	require.True(t, ok)
	assert.Equal(t, [][2]float64{{2, 6}, {2, 7}, {2, 8}}, bounds)
}
