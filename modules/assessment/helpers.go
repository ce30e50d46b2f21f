package assessment

import (
	"errors"
	"fmt"
	"math"

	"github.com/specialistvlad/decisiongrid/internal/registry"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrBounds         = errors.New("bounds do not match the criteria")
	ErrMissingExpert  = errors.New("expert_function is required")
	ErrCharacteristic = errors.New("characteristic values must be given for every criterion")
)

func errWeightsLength(got, want int) error {
	return fmt.Errorf("got %d weights for %d criteria", got, want)
}

func errTypesLength(got, want int) error {
	return fmt.Errorf("got %d criteria types for %d criteria", got, want)
}

// normalize applies fn to every column of x. Columns with a negative type
// are normalized as cost criteria.
func normalize(x [][]float64, types []int, fn registry.NormalizationFunc) [][]float64 {
	out := make([][]float64, len(x))
	for i := range out {
		out[i] = make([]float64, len(x[i]))
	}
	for j := range types {
		col := make([]float64, len(x))
		for i := range x {
			col[i] = x[i][j]
		}
		for i, v := range fn(col, types[j] > 0) {
			out[i][j] = v
		}
	}
	return out
}

func normalizationOr(p registry.Params, def registry.NormalizationFunc) registry.NormalizationFunc {
	if fn, ok := p.Normalization("normalization_function"); ok {
		return fn
	}
	return def
}

func column(x [][]float64, j int) []float64 {
	col := make([]float64, len(x))
	for i := range x {
		col[i] = x[i][j]
	}
	return col
}

// ideal returns the best and worst value of every column with respect to
// the criteria types.
func ideal(x [][]float64, types []int) (best, worst []float64) {
	best = make([]float64, len(types))
	worst = make([]float64, len(types))
	for j, t := range types {
		col := column(x, j)
		best[j], worst[j] = floats.Max(col), floats.Min(col)
		if t < 0 {
			best[j], worst[j] = worst[j], best[j]
		}
	}
	return best, worst
}

// ratio divides a by b, treating an empty range as no difference.
func ratio(a, b float64) float64 {
	if b == 0 || math.IsNaN(b) {
		return 0
	}
	return a / b
}

func equalWeights(n int) []float64 {
	w := make([]float64, n)
	for j := range w {
		w[j] = 1 / float64(n)
	}
	return w
}
