package registry

import (
	"github.com/specialistvlad/decisiongrid/internal/mcda"
)

// WeightingFunc derives one weight per criterion from a decision matrix.
// types is nil unless the strategy was registered with NeedsTypes.
type WeightingFunc func(m mcda.Matrix, types []int) (mcda.Vector, error)

// Weighting is a registered weighting strategy.
type Weighting struct {
	Fn         WeightingFunc
	NeedsTypes bool
}

// Assessment is a constructed assessment method instance.
type Assessment interface {
	// Evaluate scores every alternative. call carries the arguments that
	// are passed at call time instead of construction time.
	Evaluate(m mcda.Matrix, w mcda.Vector, types []int, call Params) (mcda.Scores, error)
	// Rank converts scores into positions using the method's own direction.
	Rank(s mcda.Scores) ([]float64, error)
}

// AssessmentFactory constructs an Assessment from resolved init parameters.
type AssessmentFactory func(init Params) (Assessment, error)

// CorrelationFunc measures the similarity of two equally long vectors.
type CorrelationFunc func(a, b []float64) (float64, error)

// NormalizationFunc rescales a single criterion column. profit is false for
// cost criteria.
type NormalizationFunc func(col []float64, profit bool) []float64

// DistanceFunc measures the distance between two points.
type DistanceFunc func(a, b []float64) float64

// DefuzzifyFunc collapses a triangular fuzzy number to a crisp value.
type DefuzzifyFunc func(t mcda.TFN) float64

// PreferenceFunc maps a difference d onto a preference degree using the
// indifference threshold q and the preference threshold p.
type PreferenceFunc func(d, q, p float64) float64

// ExpertRequest is what an expert function may be calibrated from.
type ExpertRequest struct {
	Weights mcda.Vector
	Types   []int
	Bounds  [][2]float64
	ESP     []float64
}

// ExpertFunc assigns a preference to each characteristic object (one row
// per object, one column per criterion).
type ExpertFunc func(objects [][]float64) []float64

// ExpertFactory calibrates an expert function.
type ExpertFactory func(req ExpertRequest) (ExpertFunc, error)

// Series is the kind of result a plot can present.
type Series string

const (
	SeriesWeights     Series = "weights"
	SeriesPreference  Series = "preference"
	SeriesRanking     Series = "ranking"
	SeriesCorrelation Series = "correlation"
)

// RenderFunc draws data rows with their labels and returns encoded image
// bytes.
type RenderFunc func(data [][]float64, labels []string, kind string) ([]byte, error)

// Plot is a registered plot kind.
type Plot struct {
	Accepts []Series
	// Series, when positive, is the exact number of data rows required.
	Series int
	Render RenderFunc
}

// Accept reports whether the plot can present results of kind s.
func (p Plot) Accept(s Series) bool {
	for _, a := range p.Accepts {
		if a == s {
			return true
		}
	}
	return false
}
