package weights

import (
	"errors"
	"math"

	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrIndistinguishable is returned when no criterion differentiates the
// alternatives, so no weight can be derived.
var ErrIndistinguishable = errors.New("criteria do not differentiate the alternatives")

// normalize scales scores to sum to one.
func normalize(scores []float64) ([]float64, error) {
	total := floats.Sum(scores)
	if total < 1e-12 || math.IsNaN(total) {
		return nil, ErrIndistinguishable
	}
	out := make([]float64, len(scores))
	floats.ScaleTo(out, 1/total, scores)
	return out, nil
}

// Equal gives every criterion the same weight.
func Equal(cols [][]float64) ([]float64, error) {
	w := make([]float64, len(cols))
	for j := range w {
		w[j] = 1 / float64(len(cols))
	}
	return w, nil
}

// Entropy weighs criteria by their degree of diversification, one minus the
// normalized Shannon entropy of the column shares.
func Entropy(cols [][]float64) ([]float64, error) {
	d := make([]float64, len(cols))
	for j, col := range cols {
		total := floats.Sum(col)
		if total == 0 || len(col) < 2 {
			continue
		}
		p := make([]float64, len(col))
		floats.ScaleTo(p, 1/total, col)
		d[j] = 1 - stat.Entropy(p)/math.Log(float64(len(col)))
	}
	return normalize(d)
}

// StandardDeviation weighs criteria by the population standard deviation of
// their values.
func StandardDeviation(cols [][]float64) ([]float64, error) {
	sd := make([]float64, len(cols))
	for j, col := range cols {
		_, sd[j] = stat.PopMeanStdDev(col, nil)
	}
	return normalize(sd)
}

// Variance weighs criteria by the population variance of their min-max
// normalized values.
func Variance(cols [][]float64) ([]float64, error) {
	v := make([]float64, len(cols))
	for j, col := range cols {
		v[j] = stat.PopVariance(minMax(col), nil)
	}
	return normalize(v)
}

// CRITIC combines the contrast of each criterion with its conflict with the
// others, measured by Pearson correlation.
func CRITIC(cols [][]float64) ([]float64, error) {
	norm := make([][]float64, len(cols))
	sd := make([]float64, len(cols))
	for j, col := range cols {
		norm[j] = minMax(col)
		_, sd[j] = stat.PopMeanStdDev(norm[j], nil)
	}

	c := make([]float64, len(cols))
	for j := range cols {
		var conflict float64
		for k := range cols {
			r := 1.0
			if j != k && sd[j] > 0 && sd[k] > 0 {
				r = stat.Correlation(norm[j], norm[k], nil)
			}
			conflict += 1 - r
		}
		c[j] = sd[j] * conflict
	}
	return normalize(c)
}

func minMax(col []float64) []float64 {
	lo, hi := floats.Min(col), floats.Max(col)
	out := make([]float64, len(col))
	if hi == lo {
		return out
	}
	for i, x := range col {
		out[i] = (x - lo) / (hi - lo)
	}
	return out
}

// MEREC weighs criteria by how much removing each one changes the overall
// performance of the alternatives. Values must be positive.
func MEREC(m mcda.Matrix, types []int) (mcda.Vector, error) {
	cols := columns(m.Crisp)
	n := len(cols)
	if n < 2 {
		return mcda.Vector{}, errors.New("MEREC needs at least two criteria")
	}

	logs := make([][]float64, n)
	for j, col := range cols {
		lo, hi := floats.Min(col), floats.Max(col)
		if lo <= 0 {
			return mcda.Vector{}, errors.New("MEREC needs positive values")
		}
		logs[j] = make([]float64, len(col))
		for i, x := range col {
			v := lo / x
			if types[j] < 0 {
				v = x / hi
			}
			logs[j][i] = math.Abs(math.Log(v))
		}
	}

	rows := len(cols[0])
	overall := make([]float64, rows)
	for i := range overall {
		var sum float64
		for j := range cols {
			sum += logs[j][i]
		}
		overall[i] = math.Log(1 + sum/float64(n))
	}

	effect := make([]float64, n)
	for j := range cols {
		for i := range overall {
			var sum float64
			for k := range cols {
				if k != j {
					sum += logs[k][i]
				}
			}
			effect[j] += math.Abs(math.Log(1+sum/float64(n)) - overall[i])
		}
	}

	w, err := normalize(effect)
	if err != nil {
		return mcda.Vector{}, err
	}
	return mcda.CrispVector(w), nil
}
