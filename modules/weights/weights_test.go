package weights

import (
	"testing"

	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"github.com/specialistvlad/decisiongrid/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

var sample = mcda.Matrix{Mode: mcda.Crisp, Crisp: [][]float64{
	{6, 2, 3},
	{3, 7, 2},
	{2, 3, 9},
	{4, 5, 6},
}}

func weigh(t *testing.T, name string, m mcda.Matrix, types []int) mcda.Vector {
	t.Helper()
	reg := registry.NewWith(&Module{})
	w, err := reg.Weighting(name, m.Mode)
	require.NoError(t, err)
	v, err := w.Fn(m, types)
	require.NoError(t, err)
	return v
}

func TestCrispMethods_SumToOne(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"EQUAL", "ENTROPY", "STANDARD DEVIATION", "VARIANCE", "CRITIC", "MEREC"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			v := weigh(t, name, sample, []int{1, -1, 1})

			require.False(t, v.IsFuzzy())
			require.Len(t, v.Crisp, 3)
			assert.InDelta(t, 1.0, floats.Sum(v.Crisp), 1e-9)
			for _, x := range v.Crisp {
				assert.GreaterOrEqual(t, x, 0.0)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	v := weigh(t, "EQUAL", sample, nil)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, v.Crisp, 1e-12)
}

func TestStandardDeviation_FavoursSpread(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	m := mcda.Matrix{Mode: mcda.Crisp, Crisp: [][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
	}}

	// --- Act ---
	v := weigh(t, "STANDARD DEVIATION", m, nil)

	// --- Assert ---
	assert.InDeltaSlice(t, []float64{1.0 / 11, 10.0 / 11}, v.Crisp, 1e-12)
}

func TestEntropy_ConstantColumnGetsNoWeight(t *testing.T) {
	t.Parallel()

	m := mcda.Matrix{Mode: mcda.Crisp, Crisp: [][]float64{
		{5, 1},
		{5, 9},
	}}

	v := weigh(t, "ENTROPY", m, nil)
	assert.InDeltaSlice(t, []float64{0, 1}, v.Crisp, 1e-12)
}

func TestCRITIC_Columns(t *testing.T) {
	t.Parallel()

	// Perfectly correlated columns with equal contrast share the weight.
	m := mcda.Matrix{Mode: mcda.Crisp, Crisp: [][]float64{
		{1, 2, 3},
		{2, 4, 1},
		{3, 6, 2},
	}}

	v := weigh(t, "CRITIC", m, nil)
	assert.InDelta(t, v.Crisp[0], v.Crisp[1], 1e-12)
	assert.Greater(t, v.Crisp[2], v.Crisp[0])
}

func TestConstantMatrix_IsAnError(t *testing.T) {
	t.Parallel()

	m := mcda.Matrix{Mode: mcda.Crisp, Crisp: [][]float64{{1, 1}, {1, 1}}}
	for _, fn := range []method{Entropy, StandardDeviation, Variance, CRITIC} {
		_, err := fn(columns(m.Crisp))
		assert.ErrorIs(t, err, ErrIndistinguishable)
	}
}

func TestMEREC_Errors(t *testing.T) {
	t.Parallel()

	_, err := MEREC(mcda.Matrix{Mode: mcda.Crisp, Crisp: [][]float64{{1}, {2}}}, []int{1})
	assert.ErrorContains(t, err, "at least two criteria")

	_, err = MEREC(mcda.Matrix{Mode: mcda.Crisp, Crisp: [][]float64{{0, 1}, {2, 3}}}, []int{1, 1})
	assert.ErrorContains(t, err, "positive values")
}

func TestFuzzy_ProducesOrderedTriangles(t *testing.T) {
	t.Parallel()

	m := mcda.Matrix{Mode: mcda.Fuzzy, Fuzzy: [][]mcda.TFN{
		{{1, 2, 3}, {4, 5, 9}},
		{{2, 3, 4}, {1, 2, 3}},
		{{3, 5, 6}, {2, 3, 5}},
	}}

	for _, name := range []string{"EQUAL", "ENTROPY", "STANDARD DEVIATION", "VARIANCE"} {
		v := weigh(t, name, m, nil)

		require.True(t, v.IsFuzzy(), name)
		require.Len(t, v.Fuzzy, 2, name)
		for _, tfn := range v.Fuzzy {
			assert.True(t, tfn.Valid(), "%s: %v", name, tfn)
		}
	}
}

func TestModule_CrispOnlyMethods(t *testing.T) {
	t.Parallel()

	reg := registry.NewWith(&Module{})

	for _, name := range []string{"CRITIC", "MEREC"} {
		_, err := reg.Weighting(name, mcda.Fuzzy)
		assert.ErrorIs(t, err, registry.ErrUnsupportedMode)
	}
	w, err := reg.Weighting("MEREC", mcda.Crisp)
	require.NoError(t, err)
	assert.True(t, w.NeedsTypes)
}
