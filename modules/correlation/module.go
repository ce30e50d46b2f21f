// Package correlation registers similarity coefficients used to compare
// preference vectors and rankings produced by different methods.
package correlation

import (
	"errors"
	"fmt"
	"math"

	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"github.com/specialistvlad/decisiongrid/internal/registry"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrLength    = errors.New("vectors differ in length")
	ErrTooShort  = errors.New("at least two values are required")
	ErrUndefined = errors.New("coefficient is undefined for these vectors")
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the correlation coefficients with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterCorrelation("PEARSON", checked(Pearson))
	r.RegisterCorrelation("SPEARMAN", checked(Spearman))
	r.RegisterCorrelation("WEIGHTED SPEARMAN", checked(WeightedSpearman))
	r.RegisterCorrelation("WS RANK SIMILARITY", checked(WS))
	r.RegisterCorrelation("KENDALL-TAU", checked(KendallTau))
	r.RegisterCorrelation("GOODMAN-KRUSKALL", checked(GoodmanKruskal))
}

func checked(fn registry.CorrelationFunc) registry.CorrelationFunc {
	return func(a, b []float64) (float64, error) {
		if len(a) != len(b) {
			return 0, fmt.Errorf("%w: %d and %d", ErrLength, len(a), len(b))
		}
		if len(a) < 2 {
			return 0, ErrTooShort
		}
		return fn(a, b)
	}
}

// Pearson is the linear correlation coefficient.
func Pearson(a, b []float64) (float64, error) {
	r := stat.Correlation(a, b, nil)
	if math.IsNaN(r) {
		return 0, ErrUndefined
	}
	return r, nil
}

// Spearman is the Pearson coefficient of the ranks of both vectors.
func Spearman(a, b []float64) (float64, error) {
	return Pearson(mcda.RankAscending(a), mcda.RankAscending(b))
}

// WeightedSpearman is the rw coefficient: rank differences near the top of
// the rankings weigh more. a and b are rankings.
func WeightedSpearman(a, b []float64) (float64, error) {
	n := float64(len(a))
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d * ((n - a[i] + 1) + (n - b[i] + 1))
	}
	return 1 - 6*sum/(math.Pow(n, 4)+math.Pow(n, 3)-n*n-n), nil
}

// WS is the WS rank similarity coefficient of ranking b against the
// reference ranking a. It is asymmetric.
func WS(a, b []float64) (float64, error) {
	n := float64(len(a))
	var sum float64
	for i := range a {
		sum += math.Pow(2, -a[i]) * math.Abs(a[i]-b[i]) / math.Max(math.Abs(a[i]-1), math.Abs(a[i]-n))
	}
	return 1 - sum, nil
}

// KendallTau is the tau-a coefficient over all pairs.
func KendallTau(a, b []float64) (float64, error) {
	concordant, discordant := pairs(a, b)
	n := float64(len(a))
	return (concordant - discordant) / (n * (n - 1) / 2), nil
}

// GoodmanKruskal is the gamma coefficient; tied pairs are ignored.
func GoodmanKruskal(a, b []float64) (float64, error) {
	concordant, discordant := pairs(a, b)
	if concordant+discordant == 0 {
		return 0, ErrUndefined
	}
	return (concordant - discordant) / (concordant + discordant), nil
}

func pairs(a, b []float64) (concordant, discordant float64) {
	for i := range a {
		for j := i + 1; j < len(a); j++ {
			switch s := sign(a[i]-a[j]) * sign(b[i]-b[j]); {
			case s > 0:
				concordant++
			case s < 0:
				discordant++
			}
		}
	}
	return concordant, discordant
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
