// Package weights registers objective criteria weighting methods.
//
// Every method returns one weight per criterion, summing to one. Fuzzy
// variants run the crisp method on the lower, modal and upper vertex
// matrices separately and combine the three results into one triangular
// weight per criterion.
package weights

import (
	"slices"

	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"github.com/specialistvlad/decisiongrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the weighting methods with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterWeighting("EQUAL", mcda.Crisp, registry.Weighting{Fn: crisp(Equal)})
	r.RegisterWeighting("EQUAL", mcda.Fuzzy, registry.Weighting{Fn: fuzzy(Equal)})
	r.RegisterWeighting("ENTROPY", mcda.Crisp, registry.Weighting{Fn: crisp(Entropy)})
	r.RegisterWeighting("ENTROPY", mcda.Fuzzy, registry.Weighting{Fn: fuzzy(Entropy)})
	r.RegisterWeighting("STANDARD DEVIATION", mcda.Crisp, registry.Weighting{Fn: crisp(StandardDeviation)})
	r.RegisterWeighting("STANDARD DEVIATION", mcda.Fuzzy, registry.Weighting{Fn: fuzzy(StandardDeviation)})
	r.RegisterWeighting("VARIANCE", mcda.Crisp, registry.Weighting{Fn: crisp(Variance)})
	r.RegisterWeighting("VARIANCE", mcda.Fuzzy, registry.Weighting{Fn: fuzzy(Variance)})
	r.RegisterWeighting("CRITIC", mcda.Crisp, registry.Weighting{Fn: crisp(CRITIC)})
	r.RegisterWeighting("MEREC", mcda.Crisp, registry.Weighting{Fn: MEREC, NeedsTypes: true})
}

// method computes crisp weights from the columns of a matrix.
type method func(cols [][]float64) ([]float64, error)

func crisp(fn method) registry.WeightingFunc {
	return func(m mcda.Matrix, _ []int) (mcda.Vector, error) {
		w, err := fn(columns(m.Crisp))
		if err != nil {
			return mcda.Vector{}, err
		}
		return mcda.CrispVector(w), nil
	}
}

func fuzzy(fn method) registry.WeightingFunc {
	return func(m mcda.Matrix, _ []int) (mcda.Vector, error) {
		var parts [3][]float64
		for k := range parts {
			w, err := fn(columns(m.Component(k)))
			if err != nil {
				return mcda.Vector{}, err
			}
			parts[k] = w
		}
		out := make([]mcda.TFN, len(parts[0]))
		for j := range out {
			t := mcda.TFN{parts[0][j], parts[1][j], parts[2][j]}
			slices.Sort(t[:])
			out[j] = t
		}
		return mcda.FuzzyVector(out), nil
	}
}

// columns transposes rows into criterion columns.
func columns(rows [][]float64) [][]float64 {
	if len(rows) == 0 {
		return nil
	}
	cols := make([][]float64, len(rows[0]))
	for j := range cols {
		cols[j] = make([]float64, len(rows))
		for i, row := range rows {
			cols[j][i] = row[j]
		}
	}
	return cols
}
