package correlation

import (
	"testing"

	"github.com/specialistvlad/decisiongrid/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoefficients(t *testing.T) {
	t.Parallel()

	same := []float64{1, 2, 3, 4}
	reversed := []float64{4, 3, 2, 1}

	testCases := []struct {
		name    string
		fn      registry.CorrelationFunc
		same    float64
		reverse float64
	}{
		{"pearson", Pearson, 1, -1},
		{"spearman", Spearman, 1, -1},
		{"weighted spearman", WeightedSpearman, 1, -1},
		{"kendall", KendallTau, 1, -1},
		{"goodman-kruskal", GoodmanKruskal, 1, -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.fn(same, same)
			require.NoError(t, err)
			assert.InDelta(t, tc.same, got, 1e-12)

			got, err = tc.fn(same, reversed)
			require.NoError(t, err)
			assert.InDelta(t, tc.reverse, got, 1e-12)
		})
	}
}

func TestSpearman_UsesRanksOnly(t *testing.T) {
	t.Parallel()

	got, err := Spearman([]float64{0.1, 0.2, 0.9}, []float64{1, 10, 1000})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)
}

func TestWS(t *testing.T) {
	t.Parallel()

	got, err := WS([]float64{1, 2, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	// Swapping the top pair costs more than swapping the bottom pair.
	top, err := WS([]float64{1, 2, 3}, []float64{2, 1, 3})
	require.NoError(t, err)
	bottom, err := WS([]float64{1, 2, 3}, []float64{1, 3, 2})
	require.NoError(t, err)
	assert.Less(t, top, bottom)
}

func TestRegistered_Checks(t *testing.T) {
	t.Parallel()

	reg := registry.NewWith(&Module{})

	fn, err := reg.Correlation("PEARSON")
	require.NoError(t, err)

	_, err = fn([]float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrLength)
	_, err = fn([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, ErrTooShort)
	_, err = fn([]float64{1, 1, 1}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrUndefined)

	for _, name := range []string{"SPEARMAN", "WEIGHTED SPEARMAN", "WS RANK SIMILARITY", "KENDALL-TAU", "GOODMAN-KRUSKALL"} {
		_, err := reg.Correlation(name)
		assert.NoError(t, err, name)
	}
}

func TestGoodmanKruskal_AllTied(t *testing.T) {
	t.Parallel()

	_, err := GoodmanKruskal([]float64{1, 1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrUndefined)
}
