package assessment

import (
	"fmt"
	"math"

	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"github.com/specialistvlad/decisiongrid/internal/registry"
	"github.com/specialistvlad/decisiongrid/modules/normalization"
	"gonum.org/v1/gonum/floats"
)

// NewWSM builds the weighted sum model. Columns are min-max normalized
// unless normalization_function says otherwise.
func NewWSM(init registry.Params) (registry.Assessment, error) {
	norm := normalizationOr(init, normalization.MinMax)
	return &method{evaluate: func(m mcda.Matrix, w mcda.Vector, types []int, _ registry.Params) (mcda.Scores, error) {
		nx := normalize(m.Crisp, types, norm)
		weights := w.Values()
		pref := make([]float64, len(nx))
		for i, row := range nx {
			pref[i] = floats.Dot(row, weights)
		}
		return mcda.Single(pref), nil
	}}, nil
}

// NewWPM builds the weighted product model on sum-normalized columns.
func NewWPM(init registry.Params) (registry.Assessment, error) {
	norm := normalizationOr(init, normalization.Sum)
	return &method{evaluate: func(m mcda.Matrix, w mcda.Vector, types []int, _ registry.Params) (mcda.Scores, error) {
		nx := normalize(m.Crisp, types, norm)
		weights := w.Values()
		pref := make([]float64, len(nx))
		for i, row := range nx {
			pref[i] = 1
			for j, v := range row {
				pref[i] *= math.Pow(v, weights[j])
			}
		}
		return mcda.Single(pref), nil
	}}, nil
}

// NewTOPSIS builds TOPSIS. Preference is the relative closeness to the
// positive ideal solution, on vector-normalized columns by default.
func NewTOPSIS(init registry.Params) (registry.Assessment, error) {
	norm := normalizationOr(init, normalization.Vector)
	return &method{evaluate: func(m mcda.Matrix, w mcda.Vector, types []int, _ registry.Params) (mcda.Scores, error) {
		return mcda.Single(topsis(m.Crisp, w.Values(), types, norm)), nil
	}}, nil
}

func topsis(x [][]float64, weights []float64, types []int, norm registry.NormalizationFunc) []float64 {
	nx := normalize(x, types, norm)
	for _, row := range nx {
		floats.Mul(row, weights)
	}

	// Normalized columns are already oriented so that larger is better.
	profit := make([]int, len(types))
	for j := range profit {
		profit[j] = 1
	}
	pis, nis := ideal(nx, profit)

	pref := make([]float64, len(nx))
	for i, row := range nx {
		dp := floats.Distance(row, pis, 2)
		dn := floats.Distance(row, nis, 2)
		pref[i] = ratio(dn, dp+dn)
	}
	return pref
}

// NewARAS builds the additive ratio assessment. Every alternative is
// compared with an optimal one made of the best value of each criterion.
func NewARAS(init registry.Params) (registry.Assessment, error) {
	norm := normalizationOr(init, normalization.Sum)
	return &method{evaluate: func(m mcda.Matrix, w mcda.Vector, types []int, _ registry.Params) (mcda.Scores, error) {
		best, _ := ideal(m.Crisp, types)
		extended := append([][]float64{best}, m.Crisp...)

		nx := normalize(extended, types, norm)
		weights := w.Values()
		optimal := floats.Dot(nx[0], weights)
		pref := make([]float64, len(m.Crisp))
		for i, row := range nx[1:] {
			pref[i] = ratio(floats.Dot(row, weights), optimal)
		}
		return mcda.Single(pref), nil
	}}, nil
}

// NewSPOTIS builds the stable preference ordering towards ideal solution.
// Bounds arrive at call time; the ideal solution point is taken from them
// unless esp is given at construction.
func NewSPOTIS(init registry.Params) (registry.Assessment, error) {
	esp, hasESP := init.Floats("esp")
	return &method{ascending: true, evaluate: func(m mcda.Matrix, w mcda.Vector, types []int, call registry.Params) (mcda.Scores, error) {
		bounds, ok := call.Pairs("bounds")
		if !ok {
			bounds = m.Bounds()
		}
		if len(bounds) != m.Cols() {
			return nil, fmt.Errorf("%w: got %d pairs for %d criteria", ErrBounds, len(bounds), m.Cols())
		}

		point := esp
		if !hasESP {
			point = make([]float64, len(bounds))
			for j, b := range bounds {
				point[j] = b[1]
				if types[j] < 0 {
					point[j] = b[0]
				}
			}
		}
		if len(point) != m.Cols() {
			return nil, fmt.Errorf("%w: got %d esp values for %d criteria", ErrBounds, len(point), m.Cols())
		}

		weights := w.Values()
		pref := make([]float64, m.Rows())
		for i, row := range m.Crisp {
			for j, v := range row {
				span := bounds[j][1] - bounds[j][0]
				if span <= 0 {
					return nil, fmt.Errorf("%w: criterion %d has an empty range", ErrBounds, j+1)
				}
				pref[i] += weights[j] * math.Abs(v-point[j]) / span
			}
		}
		return mcda.Single(pref), nil
	}}, nil
}

// NewVIKOR builds VIKOR with the strategy weight v (default 0.5) fixed at
// construction. Scores hold S, R and Q; Q is reported and ranked ascending.
func NewVIKOR(init registry.Params) (registry.Assessment, error) {
	v := init.FloatOr("v", 0.5)
	if v < 0 || v > 1 {
		return nil, fmt.Errorf("v must lie in [0, 1], got %g", v)
	}
	return &method{ascending: true, evaluate: func(m mcda.Matrix, w mcda.Vector, types []int, _ registry.Params) (mcda.Scores, error) {
		s, r := vikorSR(m.Crisp, w.Values(), types)
		return mcda.Scores{s, r, vikorQ(s, r, v)}, nil
	}}, nil
}

// vikorSR returns the group utility S and the individual regret R.
func vikorSR(x [][]float64, weights []float64, types []int) (s, r []float64) {
	best, worst := ideal(x, types)
	s = make([]float64, len(x))
	r = make([]float64, len(x))
	for i, row := range x {
		for j, v := range row {
			d := weights[j] * ratio(best[j]-v, best[j]-worst[j])
			s[i] += d
			r[i] = math.Max(r[i], d)
		}
	}
	return s, r
}

func vikorQ(s, r []float64, v float64) []float64 {
	sMin, sMax := floats.Min(s), floats.Max(s)
	rMin, rMax := floats.Min(r), floats.Max(r)
	q := make([]float64, len(s))
	for i := range q {
		q[i] = v*ratio(s[i]-sMin, sMax-sMin) + (1-v)*ratio(r[i]-rMin, rMax-rMin)
	}
	return q
}

// NewPROMETHEE builds PROMETHEE II. The preference function defaults to
// usual; the indifference threshold is zero and the preference threshold is
// the range of each criterion. Scores hold the positive, negative and net
// flows.
func NewPROMETHEE(init registry.Params) (registry.Assessment, error) {
	pf, ok := init.Preference("preference_function")
	if !ok {
		pf = normalization.Usual
	}
	return &method{evaluate: func(m mcda.Matrix, w mcda.Vector, types []int, _ registry.Params) (mcda.Scores, error) {
		n := m.Rows()
		if n < 2 {
			return nil, fmt.Errorf("PROMETHEE II needs at least two alternatives")
		}
		weights := w.Values()
		spans := make([]float64, m.Cols())
		for j := range spans {
			col := column(m.Crisp, j)
			spans[j] = floats.Max(col) - floats.Min(col)
		}

		pi := func(a, b int) float64 {
			var sum float64
			for j, t := range types {
				d := m.Crisp[a][j] - m.Crisp[b][j]
				if t < 0 {
					d = -d
				}
				sum += weights[j] * pf(d, 0, spans[j])
			}
			return sum
		}

		plus, minus, net := make([]float64, n), make([]float64, n), make([]float64, n)
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				if a == b {
					continue
				}
				plus[a] += pi(a, b)
				minus[a] += pi(b, a)
			}
			plus[a] /= float64(n - 1)
			minus[a] /= float64(n - 1)
			net[a] = plus[a] - minus[a]
		}
		return mcda.Scores{plus, minus, net}, nil
	}}, nil
}
