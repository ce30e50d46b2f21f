package node

import (
	"context"
	"math"

	"github.com/specialistvlad/decisiongrid/internal/calcerr"
	"github.com/specialistvlad/decisiongrid/internal/ctxlog"
	"github.com/specialistvlad/decisiongrid/internal/i18n"
	"github.com/specialistvlad/decisiongrid/internal/inmemorystore"
	"github.com/specialistvlad/decisiongrid/internal/mcda"
)

// WeightsResult is one weight vector, tagged with its matrix.
type WeightsResult struct {
	MatrixID *int
	Weights  mcda.Vector
}

// WeightsNode derives criteria weights, or carries user weights when its
// method is INPUT.
type WeightsNode struct {
	base
	input mcda.Vector
	cache *inmemorystore.Store[key, WeightsResult]
}

// Results lists the computed vectors in calculation order.
func (n *WeightsNode) Results() []WeightsResult { return n.cache.Values() }

// ValidateInput checks user weights against m: one weight per criterion,
// then the sum rule for plain numbers.
func (n *WeightsNode) ValidateInput(ctx context.Context, m *MatrixNode) error {
	if n.input.Len() != m.Matrix.Cols() {
		return calcerr.New(ctx, calcerr.Data, i18n.DataCriteriaDimension, n.input.Len(), m.Matrix.Cols(), n.id)
	}
	return n.validateSum(ctx)
}

func (n *WeightsNode) validateSum(ctx context.Context) error {
	if n.input.IsFuzzy() {
		for _, t := range n.input.Fuzzy {
			if !t.Valid() {
				return calcerr.New(ctx, calcerr.Data, i18n.DataFuzzyWeights, n.id)
			}
		}
		return nil
	}
	var sum float64
	for _, w := range n.input.Crisp {
		sum += w
	}
	if mcda.Round(sum, 4) != 1 || math.IsNaN(sum) {
		return calcerr.New(ctx, calcerr.Data, i18n.DataWeightsSum, n.id)
	}
	return nil
}

// Seed stores the user vector of an INPUT block that has no matrix.
func (n *WeightsNode) Seed(ctx context.Context, env *Env) error {
	if err := n.validateSum(ctx); err != nil {
		return err
	}
	env.record(n.kind, n.cache.Set(unanchored, WeightsResult{Weights: n.input}))
	return nil
}

// Calculate returns the weight vector for m, computing it on first use.
func (n *WeightsNode) Calculate(ctx context.Context, env *Env, m *MatrixNode) (mcda.Vector, error) {
	k := matrixKey(m.ID())
	res, hit, err := n.cache.GetOrCompute(k, func() (WeightsResult, error) {
		w, err := traced(ctx, &n.base, func(ctx context.Context) (mcda.Vector, error) {
			return n.compute(ctx, env, m)
		})
		if err != nil {
			return WeightsResult{}, err
		}
		return WeightsResult{MatrixID: k.matrixRef(), Weights: w}, nil
	})
	if err != nil {
		return mcda.Vector{}, err
	}
	env.record(n.kind, hit)
	return res.Weights, nil
}

func (n *WeightsNode) compute(ctx context.Context, env *Env, m *MatrixNode) (mcda.Vector, error) {
	if err := n.checkMode(ctx, m); err != nil {
		return mcda.Vector{}, err
	}
	logger := ctxlog.FromContext(ctx)
	if n.IsInput() {
		if err := n.ValidateInput(ctx, m); err != nil {
			return mcda.Vector{}, err
		}
		logger.Debug("User weights accepted.", "node_id", n.id, "matrix_id", m.ID())
		return n.input, nil
	}

	strategy, err := env.Registry.Weighting(n.method, n.mode)
	if err != nil {
		return mcda.Vector{}, unknownMethod(ctx, n.base, err)
	}
	var types []int
	if strategy.NeedsTypes {
		types = m.Types
	}
	w, err := strategy.Fn(m.Matrix, types)
	if err != nil {
		return mcda.Vector{}, calcerr.Wrap(ctx, calcerr.Method, i18n.MethodCall, err, n.method, n.id)
	}
	if w.Len() != m.Matrix.Cols() {
		return mcda.Vector{}, calcerr.New(ctx, calcerr.Method, i18n.MethodLength, n.method, w.Len(), m.Matrix.Cols(), n.id)
	}
	if !w.Finite() {
		return mcda.Vector{}, calcerr.New(ctx, calcerr.Method, i18n.MethodResult, n.method, n.id)
	}

	logger.Debug("Weights calculated.", "node_id", n.id, "matrix_id", m.ID(), "method", n.method)
	return w.Round(env.Precision), nil
}
