// Package assessment registers multi-criteria assessment methods.
//
// Methods are constructed from their init parameters and evaluated against
// a decision matrix, a weight vector and criteria types (1 profit, -1 cost).
// Each method owns its ranking direction: preference methods rank
// descending, distance-to-ideal methods such as SPOTIS and VIKOR rank
// ascending.
package assessment

import (
	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"github.com/specialistvlad/decisiongrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers assessment methods and expert functions.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAssessment("WSM", mcda.Crisp, NewWSM)
	r.RegisterAssessment("WPM", mcda.Crisp, NewWPM)
	r.RegisterAssessment("TOPSIS", mcda.Crisp, NewTOPSIS)
	r.RegisterAssessment("ARAS", mcda.Crisp, NewARAS)
	r.RegisterAssessment("SPOTIS", mcda.Crisp, NewSPOTIS)
	r.RegisterAssessment("VIKOR", mcda.Crisp, NewVIKOR)
	r.RegisterAssessment("PROMETHEE II", mcda.Crisp, NewPROMETHEE)
	r.RegisterAssessment("COMET", mcda.Crisp, NewCOMET)

	r.RegisterAssessment("TOPSIS", mcda.Fuzzy, NewFuzzyTOPSIS)
	r.RegisterAssessment("VIKOR", mcda.Fuzzy, NewFuzzyVIKOR)

	r.RegisterExpert("method_expert", MethodExpert)
	r.RegisterExpert("esp_expert", ESPExpert)
	r.RegisterExpert("compromise_expert", CompromiseExpert)
}

type evaluateFunc func(m mcda.Matrix, w mcda.Vector, types []int, call registry.Params) (mcda.Scores, error)

// method adapts an evaluation function and a ranking direction to
// registry.Assessment.
type method struct {
	evaluate  evaluateFunc
	ascending bool
}

func (a *method) Evaluate(m mcda.Matrix, w mcda.Vector, types []int, call registry.Params) (mcda.Scores, error) {
	if w.Len() != m.Cols() {
		return nil, errWeightsLength(w.Len(), m.Cols())
	}
	if len(types) != m.Cols() {
		return nil, errTypesLength(len(types), m.Cols())
	}
	return a.evaluate(m, w, types, call)
}

func (a *method) Rank(s mcda.Scores) ([]float64, error) {
	if a.ascending {
		return mcda.RankAscending(s.Primary()), nil
	}
	return mcda.RankDescending(s.Primary()), nil
}
