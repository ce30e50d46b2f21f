// Package normalization registers the helper functions assessment methods
// can be configured with: column normalizations, distances, defuzzifications
// and PROMETHEE preference functions.
package normalization

import (
	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"github.com/specialistvlad/decisiongrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers every helper function with the engine.
func (m *Module) Register(r *registry.Registry) {
	for name, fn := range map[string]registry.NormalizationFunc{
		"minmax_normalization": MinMax,
		"max_normalization":    Max,
		"sum_normalization":    Sum,
		"vector_normalization": Vector,
		"linear_normalization": Linear,
	} {
		r.RegisterNormalization(name, mcda.Crisp, fn)
	}
	r.RegisterNormalization("linear_normalization", mcda.Fuzzy, Linear)
	r.RegisterNormalization("vector_normalization", mcda.Fuzzy, Vector)

	r.RegisterDistance("euclidean_distance", Euclidean)
	r.RegisterDistance("manhattan_distance", Manhattan)

	r.RegisterDefuzzification("mean_area", MeanArea)
	r.RegisterDefuzzification("weighted_mean", WeightedMean)
	r.RegisterDefuzzification("mean_max", MeanMax)

	r.RegisterPreferenceFunction("usual", Usual)
	r.RegisterPreferenceFunction("ushape", UShape)
	r.RegisterPreferenceFunction("vshape", VShape)
	r.RegisterPreferenceFunction("level", Level)
	r.RegisterPreferenceFunction("vshape_2", VShape2)
}
