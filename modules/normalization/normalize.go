package normalization

import "gonum.org/v1/gonum/floats"

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// MinMax maps the column onto [0, 1]; for cost criteria the smallest value
// maps to 1. A constant column maps to ones.
func MinMax(col []float64, profit bool) []float64 {
	lo, hi := floats.Min(col), floats.Max(col)
	if hi == lo {
		return ones(len(col))
	}
	out := make([]float64, len(col))
	for i, x := range col {
		if profit {
			out[i] = (x - lo) / (hi - lo)
		} else {
			out[i] = (hi - x) / (hi - lo)
		}
	}
	return out
}

// Max divides by the column maximum; cost criteria are mirrored.
func Max(col []float64, profit bool) []float64 {
	hi := floats.Max(col)
	if hi == 0 {
		return ones(len(col))
	}
	out := make([]float64, len(col))
	for i, x := range col {
		if profit {
			out[i] = x / hi
		} else {
			out[i] = 1 - x/hi
		}
	}
	return out
}

// Sum divides by the column sum; cost criteria use reciprocals.
func Sum(col []float64, profit bool) []float64 {
	out := make([]float64, len(col))
	if profit {
		total := floats.Sum(col)
		if total == 0 {
			return ones(len(col))
		}
		floats.ScaleTo(out, 1/total, col)
		return out
	}
	var total float64
	for _, x := range col {
		if x == 0 {
			return ones(len(col))
		}
		total += 1 / x
	}
	for i, x := range col {
		out[i] = (1 / x) / total
	}
	return out
}

// Vector divides by the Euclidean norm of the column; cost criteria are
// mirrored.
func Vector(col []float64, profit bool) []float64 {
	norm := floats.Norm(col, 2)
	if norm == 0 {
		return ones(len(col))
	}
	out := make([]float64, len(col))
	for i, x := range col {
		if profit {
			out[i] = x / norm
		} else {
			out[i] = 1 - x/norm
		}
	}
	return out
}

// Linear divides by the maximum for profit criteria and divides the minimum
// by each value for cost criteria.
func Linear(col []float64, profit bool) []float64 {
	if profit {
		hi := floats.Max(col)
		if hi == 0 {
			return ones(len(col))
		}
		out := make([]float64, len(col))
		floats.ScaleTo(out, 1/hi, col)
		return out
	}
	lo := floats.Min(col)
	out := make([]float64, len(col))
	for i, x := range col {
		if x == 0 {
			return ones(len(col))
		}
		out[i] = lo / x
	}
	return out
}
