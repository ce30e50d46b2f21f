package mcda

import (
	"encoding/json"
	"math"
)

// Vector is a criteria-weight vector. Fuzzy weights are allowed on fuzzy
// nodes only; crisp weights may feed either mode.
type Vector struct {
	Crisp []float64
	Fuzzy []TFN
}

// CrispVector wraps plain weights.
func CrispVector(w []float64) Vector { return Vector{Crisp: w} }

// FuzzyVector wraps triangular weights.
func FuzzyVector(w []TFN) Vector { return Vector{Fuzzy: w} }

// IsFuzzy reports whether the vector holds triangular weights.
func (v Vector) IsFuzzy() bool { return v.Fuzzy != nil }

// Len is the number of criteria the vector covers.
func (v Vector) Len() int {
	if v.IsFuzzy() {
		return len(v.Fuzzy)
	}
	return len(v.Crisp)
}

// Values reduces the vector to one number per criterion, using centroids for
// fuzzy weights.
func (v Vector) Values() []float64 {
	if !v.IsFuzzy() {
		return v.Crisp
	}
	out := make([]float64, len(v.Fuzzy))
	for i, t := range v.Fuzzy {
		out[i] = t.Centroid()
	}
	return out
}

// Finite reports whether every component is a real number.
func (v Vector) Finite() bool {
	if v.IsFuzzy() {
		for _, t := range v.Fuzzy {
			if !Finite(t[:]) {
				return false
			}
		}
		return true
	}
	return Finite(v.Crisp)
}

// Round returns a copy rounded to prec decimal digits.
func (v Vector) Round(prec int) Vector {
	if v.IsFuzzy() {
		out := make([]TFN, len(v.Fuzzy))
		for i, t := range v.Fuzzy {
			out[i] = TFN{Round(t[0], prec), Round(t[1], prec), Round(t[2], prec)}
		}
		return FuzzyVector(out)
	}
	return CrispVector(RoundAll(v.Crisp, prec))
}

func (v Vector) MarshalJSON() ([]byte, error) {
	if v.IsFuzzy() {
		return json.Marshal(v.Fuzzy)
	}
	return json.Marshal(v.Crisp)
}

// Round rounds half away from zero to prec decimal digits.
func Round(x float64, prec int) float64 {
	p := math.Pow10(prec)
	return math.Round(x*p) / p
}

// RoundAll rounds every element of xs into a new slice.
func RoundAll(xs []float64, prec int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = Round(x, prec)
	}
	return out
}

// Finite reports whether xs holds no NaN or infinity.
func Finite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
