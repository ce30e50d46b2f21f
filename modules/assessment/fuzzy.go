package assessment

import (
	"math"
	"slices"

	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"github.com/specialistvlad/decisiongrid/internal/registry"
	"github.com/specialistvlad/decisiongrid/modules/normalization"
	"gonum.org/v1/gonum/floats"
)

// NewFuzzyTOPSIS builds fuzzy TOPSIS. Columns are normalized over all
// triangle vertices, weighted vertex by vertex and compared with the fuzzy
// positive and negative ideal solutions.
func NewFuzzyTOPSIS(init registry.Params) (registry.Assessment, error) {
	norm, ok := init.Normalization("normalization")
	if !ok {
		norm = normalization.Linear
	}
	dist, ok := init.Distance("distance")
	if !ok {
		dist = vertexDistance
	}

	return &method{evaluate: func(m mcda.Matrix, w mcda.Vector, types []int, _ registry.Params) (mcda.Scores, error) {
		nx := normalizeFuzzy(m, types, norm)
		weights := fuzzyWeights(w)
		for _, row := range nx {
			for j := range row {
				for k := range row[j] {
					row[j][k] *= weights[j][k]
				}
			}
		}

		cols := m.Cols()
		pis, nis := make([]mcda.TFN, cols), make([]mcda.TFN, cols)
		for j := 0; j < cols; j++ {
			hi, lo := math.Inf(-1), math.Inf(1)
			for _, row := range nx {
				hi = math.Max(hi, row[j][2])
				lo = math.Min(lo, row[j][0])
			}
			pis[j] = mcda.TFN{hi, hi, hi}
			nis[j] = mcda.TFN{lo, lo, lo}
		}

		pref := make([]float64, len(nx))
		for i, row := range nx {
			var dp, dn float64
			for j, t := range row {
				dp += dist(t[:], pis[j][:])
				dn += dist(t[:], nis[j][:])
			}
			pref[i] = ratio(dn, dp+dn)
		}
		return mcda.Single(pref), nil
	}}, nil
}

// NewFuzzyVIKOR builds fuzzy VIKOR. S and R are computed per triangle
// vertex and defuzzified before Q is derived with the call-time strategy
// weight v (default 0.5).
func NewFuzzyVIKOR(init registry.Params) (registry.Assessment, error) {
	defuzz, ok := init.Defuzzify("defuzzify")
	if !ok {
		defuzz = normalization.MeanArea
	}

	return &method{ascending: true, evaluate: func(m mcda.Matrix, w mcda.Vector, types []int, call registry.Params) (mcda.Scores, error) {
		v := call.FloatOr("v", 0.5)
		weights := fuzzyWeights(w)

		n := m.Rows()
		var s, r [3][]float64
		for k := 0; k < 3; k++ {
			wk := make([]float64, len(weights))
			for j := range wk {
				wk[j] = weights[j][k]
			}
			s[k], r[k] = vikorSR(m.Component(k), wk, types)
		}

		sd, rd := make([]float64, n), make([]float64, n)
		for i := 0; i < n; i++ {
			sd[i] = defuzz(sorted(s[0][i], s[1][i], s[2][i]))
			rd[i] = defuzz(sorted(r[0][i], r[1][i], r[2][i]))
		}
		return mcda.Scores{sd, rd, vikorQ(sd, rd, v)}, nil
	}}, nil
}

// normalizeFuzzy normalizes each column over the flattened vertices of its
// cells. Cost normalizations reverse the vertex order, so every cell is
// re-sorted.
func normalizeFuzzy(m mcda.Matrix, types []int, norm registry.NormalizationFunc) [][]mcda.TFN {
	out := make([][]mcda.TFN, m.Rows())
	for i := range out {
		out[i] = make([]mcda.TFN, m.Cols())
	}
	for j, t := range types {
		flat := norm(m.Column(j), t > 0)
		for i := range out {
			out[i][j] = sorted(flat[3*i], flat[3*i+1], flat[3*i+2])
		}
	}
	return out
}

func fuzzyWeights(w mcda.Vector) []mcda.TFN {
	if w.IsFuzzy() {
		return w.Fuzzy
	}
	out := make([]mcda.TFN, len(w.Crisp))
	for j, v := range w.Crisp {
		out[j] = mcda.TFN{v, v, v}
	}
	return out
}

func sorted(a, b, c float64) mcda.TFN {
	t := mcda.TFN{a, b, c}
	slices.Sort(t[:])
	return t
}

// vertexDistance is the vertex method distance between two triangles.
func vertexDistance(a, b []float64) float64 {
	return floats.Distance(a, b, 2) / math.Sqrt(3)
}
