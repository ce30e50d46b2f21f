package assessment

import (
	"fmt"
	"math"

	"github.com/specialistvlad/decisiongrid/internal/registry"
	"github.com/specialistvlad/decisiongrid/modules/normalization"
)

// MethodExpert judges characteristic objects with TOPSIS under the current
// weights and criteria types.
func MethodExpert(req registry.ExpertRequest) (registry.ExpertFunc, error) {
	weights := req.Weights.Values()
	if len(weights) != len(req.Types) {
		return nil, errWeightsLength(len(weights), len(req.Types))
	}
	return func(objects [][]float64) []float64 {
		return topsis(objects, weights, req.Types, normalization.MinMax)
	}, nil
}

// ESPExpert prefers objects close to the expected solution point, measured
// in units of each criterion's range.
func ESPExpert(req registry.ExpertRequest) (registry.ExpertFunc, error) {
	if len(req.ESP) != len(req.Bounds) {
		return nil, fmt.Errorf("%w: got %d esp values for %d criteria", ErrBounds, len(req.ESP), len(req.Bounds))
	}
	return func(objects [][]float64) []float64 {
		pref := make([]float64, len(objects))
		for i, co := range objects {
			var dist float64
			for j, v := range co {
				dist += ratio(math.Abs(v-req.ESP[j]), req.Bounds[j][1]-req.Bounds[j][0])
			}
			pref[i] = 1 - dist/float64(len(co))
		}
		return pref
	}, nil
}

// CompromiseExpert averages the TOPSIS judgements under the current weights
// and under equal weights.
func CompromiseExpert(req registry.ExpertRequest) (registry.ExpertFunc, error) {
	weights := req.Weights.Values()
	if len(weights) != len(req.Types) {
		return nil, errWeightsLength(len(weights), len(req.Types))
	}
	equal := equalWeights(len(weights))
	return func(objects [][]float64) []float64 {
		a := topsis(objects, weights, req.Types, normalization.MinMax)
		b := topsis(objects, equal, req.Types, normalization.MinMax)
		for i := range a {
			a[i] = (a[i] + b[i]) / 2
		}
		return a
	}, nil
}
