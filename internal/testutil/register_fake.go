package testutil

import (
	"errors"
	"math"
	"sync"

	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"github.com/specialistvlad/decisiongrid/internal/registry"
	"gonum.org/v1/gonum/stat"
)

// SVG is the image every fake plot renders.
var SVG = []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"></svg>`)

// FakeModule registers small, predictable strategies under the names the
// tests use. It records the parameters and criteria types it receives.
type FakeModule struct {
	mu        sync.Mutex
	InitSeen  []registry.Params
	CallSeen  []registry.Params
	TypesSeen [][]int
	Calls     map[string]int
}

// NewFakeModule returns a module with empty call records.
func NewFakeModule() *FakeModule {
	return &FakeModule{Calls: map[string]int{}}
}

// NewRegistry returns a registry populated by a fresh FakeModule.
func NewRegistry() (*registry.Registry, *FakeModule) {
	m := NewFakeModule()
	return registry.NewWith(m), m
}

func (m *FakeModule) count(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls[name]++
}

// CallCount returns how many times the named strategy ran.
func (m *FakeModule) CallCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[name]
}

// Register implements registry.Module.
func (m *FakeModule) Register(r *registry.Registry) {
	r.RegisterWeighting("EQUAL", mcda.Crisp, registry.Weighting{Fn: m.equal})
	r.RegisterWeighting("EQUAL", mcda.Fuzzy, registry.Weighting{Fn: m.equalFuzzy})
	r.RegisterWeighting("ENTROPY", mcda.Crisp, registry.Weighting{Fn: m.ascending})
	r.RegisterWeighting("ANGLE", mcda.Crisp, registry.Weighting{Fn: m.ascending})
	r.RegisterWeighting("MEREC", mcda.Crisp, registry.Weighting{Fn: m.typed, NeedsTypes: true})
	r.RegisterWeighting("SHORT", mcda.Crisp, registry.Weighting{Fn: m.short})

	r.RegisterAssessment("TOPSIS", mcda.Crisp, m.factory("TOPSIS", false))
	r.RegisterAssessment("ARAS", mcda.Crisp, m.factory("ARAS", false))
	r.RegisterAssessment("SPOTIS", mcda.Crisp, m.factory("SPOTIS", true))
	r.RegisterAssessment("VIKOR", mcda.Crisp, m.factory("VIKOR", true))
	r.RegisterAssessment("VIKOR", mcda.Fuzzy, m.vikorFuzzy)
	r.RegisterAssessment("TOPSIS", mcda.Fuzzy, m.factory("TOPSIS", false))
	r.RegisterAssessment("NAN", mcda.Crisp, m.nan)

	r.RegisterCorrelation("PEARSON", func(a, b []float64) (float64, error) {
		return stat.Correlation(a, b, nil), nil
	})
	r.RegisterCorrelation("ONES", func(a, b []float64) (float64, error) { return 1, nil })

	r.RegisterNormalization("minmax_normalization", mcda.Crisp, func(col []float64, profit bool) []float64 { return col })
	r.RegisterNormalization("linear_normalization", mcda.Fuzzy, func(col []float64, profit bool) []float64 { return col })
	r.RegisterDistance("euclidean_distance", func(a, b []float64) float64 { return 0 })
	r.RegisterDefuzzification("mean_area", func(t mcda.TFN) float64 { return t.Centroid() })
	r.RegisterPreferenceFunction("usual", func(d, q, p float64) float64 {
		if d > 0 {
			return 1
		}
		return 0
	})
	r.RegisterExpert("method_expert", func(req registry.ExpertRequest) (registry.ExpertFunc, error) {
		return func(objects [][]float64) []float64 { return make([]float64, len(objects)) }, nil
	})
	r.RegisterExpert("esp_expert", func(req registry.ExpertRequest) (registry.ExpertFunc, error) {
		if len(req.ESP) != len(req.Bounds) {
			return nil, errors.New("esp length differs from criteria count")
		}
		return func(objects [][]float64) []float64 { return make([]float64, len(objects)) }, nil
	})

	render := func(data [][]float64, labels []string, kind string) ([]byte, error) {
		m.count("render:" + kind)
		return SVG, nil
	}
	r.RegisterPlot("WEIGHTS DISTRIBUTION", registry.Plot{Accepts: []registry.Series{registry.SeriesWeights}, Render: render})
	r.RegisterPlot("RANKING BAR", registry.Plot{Accepts: []registry.Series{registry.SeriesRanking}, Render: render})
	r.RegisterPlot("SCATTER RANKING", registry.Plot{Accepts: []registry.Series{registry.SeriesRanking}, Series: 2, Render: render})
	r.RegisterPlot("CORRELATION HEATMAP", registry.Plot{Accepts: []registry.Series{registry.SeriesCorrelation}, Render: render})
}

func (m *FakeModule) equal(mat mcda.Matrix, _ []int) (mcda.Vector, error) {
	m.count("EQUAL")
	w := make([]float64, mat.Cols())
	for i := range w {
		w[i] = 1 / float64(len(w))
	}
	return mcda.CrispVector(w), nil
}

func (m *FakeModule) equalFuzzy(mat mcda.Matrix, _ []int) (mcda.Vector, error) {
	m.count("EQUAL")
	n := float64(mat.Cols())
	w := make([]mcda.TFN, mat.Cols())
	for i := range w {
		w[i] = mcda.TFN{0.5 / n, 1 / n, 1.5 / n}
	}
	return mcda.FuzzyVector(w), nil
}

// ascending returns weights proportional to 1, 2, ..., n.
func (m *FakeModule) ascending(mat mcda.Matrix, _ []int) (mcda.Vector, error) {
	m.count("ASCENDING")
	n := mat.Cols()
	total := float64(n*(n+1)) / 2
	w := make([]float64, n)
	for i := range w {
		w[i] = float64(i+1) / total
	}
	return mcda.CrispVector(w), nil
}

func (m *FakeModule) typed(mat mcda.Matrix, types []int) (mcda.Vector, error) {
	m.mu.Lock()
	m.TypesSeen = append(m.TypesSeen, types)
	m.mu.Unlock()
	return m.equal(mat, nil)
}

func (m *FakeModule) short(mat mcda.Matrix, _ []int) (mcda.Vector, error) {
	return mcda.CrispVector([]float64{1}), nil
}

// fakeAssessment scores each alternative by its weighted, type-signed sum.
type fakeAssessment struct {
	name      string
	ascending bool
	owner     *FakeModule
}

func (m *FakeModule) factory(name string, ascending bool) registry.AssessmentFactory {
	return func(init registry.Params) (registry.Assessment, error) {
		m.mu.Lock()
		m.InitSeen = append(m.InitSeen, init)
		m.mu.Unlock()
		return &fakeAssessment{name: name, ascending: ascending, owner: m}, nil
	}
}

func (a *fakeAssessment) Evaluate(mat mcda.Matrix, w mcda.Vector, types []int, call registry.Params) (mcda.Scores, error) {
	a.owner.count(a.name)
	a.owner.mu.Lock()
	a.owner.CallSeen = append(a.owner.CallSeen, call)
	a.owner.mu.Unlock()

	x := mat.Defuzzified()
	weights := w.Values()
	pref := make([]float64, len(x))
	for i, row := range x {
		for j, v := range row {
			pref[i] += weights[j] * v * float64(types[j])
		}
	}
	return mcda.Single(pref), nil
}

func (a *fakeAssessment) Rank(s mcda.Scores) ([]float64, error) {
	if a.ascending {
		return mcda.RankAscending(s.Primary()), nil
	}
	return mcda.RankDescending(s.Primary()), nil
}

type vikorFuzzy struct{ owner *FakeModule }

func (m *FakeModule) vikorFuzzy(init registry.Params) (registry.Assessment, error) {
	m.mu.Lock()
	m.InitSeen = append(m.InitSeen, init)
	m.mu.Unlock()
	return &vikorFuzzy{owner: m}, nil
}

// Evaluate returns three components; the last one is i/10 per alternative.
func (v *vikorFuzzy) Evaluate(mat mcda.Matrix, _ mcda.Vector, _ []int, call registry.Params) (mcda.Scores, error) {
	v.owner.mu.Lock()
	v.owner.CallSeen = append(v.owner.CallSeen, call)
	v.owner.mu.Unlock()

	n := mat.Rows()
	s, r, q := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		s[i], r[i], q[i] = 1, 2, float64(i)/10
	}
	return mcda.Scores{s, r, q}, nil
}

func (v *vikorFuzzy) Rank(s mcda.Scores) ([]float64, error) {
	return mcda.RankAscending(s.Primary()), nil
}

type nanAssessment struct{}

func (m *FakeModule) nan(registry.Params) (registry.Assessment, error) { return nanAssessment{}, nil }

func (nanAssessment) Evaluate(mat mcda.Matrix, _ mcda.Vector, _ []int, _ registry.Params) (mcda.Scores, error) {
	out := make([]float64, mat.Rows())
	out[0] = math.NaN()
	return mcda.Single(out), nil
}

func (nanAssessment) Rank(s mcda.Scores) ([]float64, error) { return mcda.RankDescending(s.Primary()), nil }
