package assessment

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"github.com/specialistvlad/decisiongrid/internal/registry"
	"gonum.org/v1/gonum/floats"
)

// NewCOMET builds the characteristic objects method. The expert function
// judges every characteristic object; alternatives are scored by fuzzy
// inference over the judged objects. Without cvalues each criterion gets
// its minimum, midpoint and maximum.
func NewCOMET(init registry.Params) (registry.Assessment, error) {
	expert, ok := init.Expert("expert_function")
	if !ok {
		return nil, ErrMissingExpert
	}
	cvalues, hasCValues := init.Matrix("cvalues")

	return &method{evaluate: func(m mcda.Matrix, _ mcda.Vector, _ []int, _ registry.Params) (mcda.Scores, error) {
		cv := cvalues
		if !hasCValues {
			cv = make([][]float64, m.Cols())
			for j, b := range m.Bounds() {
				cv[j] = []float64{b[0], (b[0] + b[1]) / 2, b[1]}
			}
		}
		if len(cv) != m.Cols() {
			return nil, fmt.Errorf("%w: got %d rows for %d criteria", ErrCharacteristic, len(cv), m.Cols())
		}
		for j, c := range cv {
			if len(c) < 2 {
				return nil, fmt.Errorf("%w: criterion %d needs at least two values", ErrCharacteristic, j+1)
			}
		}

		objects := characteristicObjects(cv)
		judged := expert(objects)
		if len(judged) != len(objects) {
			return nil, fmt.Errorf("expert judged %d of %d characteristic objects", len(judged), len(objects))
		}
		p := scale(judged)

		pref := make([]float64, m.Rows())
		for i, row := range m.Crisp {
			for k, co := range objects {
				mu := 1.0
				for j, v := range row {
					mu *= membership(cv[j], co[j], v)
					if mu == 0 {
						break
					}
				}
				pref[i] += mu * p[k]
			}
		}
		return mcda.Single(pref), nil
	}}, nil
}

// characteristicObjects is the Cartesian product of the characteristic
// values, last criterion varying fastest.
func characteristicObjects(cv [][]float64) [][]float64 {
	objects := [][]float64{{}}
	for _, values := range cv {
		next := make([][]float64, 0, len(objects)*len(values))
		for _, prefix := range objects {
			for _, v := range values {
				co := append(append(make([]float64, 0, len(prefix)+1), prefix...), v)
				next = append(next, co)
			}
		}
		objects = next
	}
	return objects
}

// membership is the triangular membership of x in the fuzzy number peaking
// at peak, with neighbouring characteristic values as its support.
func membership(values []float64, peak, x float64) float64 {
	i := slices.Index(values, peak)
	if i < 0 {
		return 0
	}
	switch {
	case x == peak:
		return 1
	case x < peak && i > 0 && x >= values[i-1]:
		return (x - values[i-1]) / (peak - values[i-1])
	case x > peak && i < len(values)-1 && x <= values[i+1]:
		return (values[i+1] - x) / (values[i+1] - peak)
	case i == 0 && x < peak, i == len(values)-1 && x > peak:
		// Values outside the characteristic range belong to the edge.
		return 1
	}
	return 0
}

// scale maps judgements onto [0, 1].
func scale(v []float64) []float64 {
	lo, hi := floats.Min(v), floats.Max(v)
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = ratio(x-lo, hi-lo)
	}
	if hi == lo {
		for i := range out {
			out[i] = 1
		}
	}
	return out
}
