package node

import (
	"context"

	"github.com/specialistvlad/decisiongrid/internal/calcerr"
	"github.com/specialistvlad/decisiongrid/internal/ctxlog"
	"github.com/specialistvlad/decisiongrid/internal/i18n"
	"github.com/specialistvlad/decisiongrid/internal/inmemorystore"
	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"github.com/specialistvlad/decisiongrid/internal/params"
	"github.com/specialistvlad/decisiongrid/internal/registry"
	"github.com/specialistvlad/decisiongrid/internal/schema"
)

// MethodResult is one preference vector with everything a ranking needs to
// reuse it.
type MethodResult struct {
	MatrixID      *int
	WeightsID     *int
	WeightsMethod string
	Preference    []float64
	Kwargs        map[string]any

	scores   mcda.Scores
	instance registry.Assessment
}

// MethodNode evaluates an assessment method, or carries a user preference
// vector when its method is INPUT.
type MethodNode struct {
	base
	preference []float64
	kwargs     []schema.Kwargs
	cache      *inmemorystore.Store[key, *MethodResult]
}

// Results lists the computed preferences in calculation order.
func (n *MethodNode) Results() []*MethodResult { return n.cache.Values() }

// Seed stores the user preference of an INPUT block.
func (n *MethodNode) Seed(ctx context.Context, env *Env) (*MethodResult, error) {
	res, hit, _ := n.cache.GetOrCompute(unanchored, func() (*MethodResult, error) {
		return &MethodResult{Preference: n.preference}, nil
	})
	env.record(n.kind, hit)
	ctxlog.FromContext(ctx).Debug("User preference accepted.", "node_id", n.id)
	return res, nil
}

// Calculate returns the preference for the (m, w) pair, computing it on first
// use. Weights are obtained from w, which serves them from its own cache.
func (n *MethodNode) Calculate(ctx context.Context, env *Env, m *MatrixNode, w *WeightsNode) (*MethodResult, error) {
	if n.IsInput() {
		return n.Seed(ctx, env)
	}
	k := key{matrix: m.ID(), weights: w.ID(), anchored: true}
	res, hit, err := n.cache.GetOrCompute(k, func() (*MethodResult, error) {
		return traced(ctx, &n.base, func(ctx context.Context) (*MethodResult, error) {
			return n.compute(ctx, env, k, m, w)
		})
	})
	if err != nil {
		return nil, err
	}
	env.record(n.kind, hit)
	return res, nil
}

func (n *MethodNode) compute(ctx context.Context, env *Env, k key, m *MatrixNode, w *WeightsNode) (*MethodResult, error) {
	if err := n.checkMode(ctx, m); err != nil {
		return nil, err
	}
	weights, err := w.Calculate(ctx, env, m)
	if err != nil {
		return nil, err
	}

	resolved, err := env.Params.Resolve(ctx, params.Request{
		Records:  n.kwargs,
		Mode:     n.mode,
		Method:   n.method,
		MatrixID: m.ID(),
		Matrix:   m.Matrix,
		Types:    m.Types,
		Weights:  weights,
	})
	if err != nil {
		return nil, err
	}

	factory, err := env.Registry.Assessment(n.method, n.mode)
	if err != nil {
		return nil, unknownMethod(ctx, n.base, err)
	}
	instance, err := factory(resolved.Init)
	if err != nil {
		return nil, calcerr.Wrap(ctx, calcerr.Method, i18n.MethodCall, err, n.method, n.id)
	}
	scores, err := instance.Evaluate(m.Matrix, weights, m.Types, resolved.Call)
	if err != nil {
		return nil, calcerr.Wrap(ctx, calcerr.Method, i18n.MethodCall, err, n.method, n.id)
	}

	pref := scores.Primary()
	if len(pref) != m.Matrix.Rows() {
		return nil, calcerr.New(ctx, calcerr.Method, i18n.MethodLength, n.method, len(pref), m.Matrix.Rows(), n.id)
	}
	if !mcda.Finite(pref) {
		return nil, calcerr.New(ctx, calcerr.Method, i18n.MethodResult, n.method, n.id)
	}

	ctxlog.FromContext(ctx).Debug("Preference calculated.",
		"node_id", n.id, "matrix_id", m.ID(), "weights_id", w.ID(), "method", n.method)
	return &MethodResult{
		MatrixID:      k.matrixRef(),
		WeightsID:     intRef(w.ID()),
		WeightsMethod: w.Method(),
		Preference:    mcda.RoundAll(pref, env.Precision),
		Kwargs:        resolved.Raw,
		scores:        scores,
		instance:      instance,
	}, nil
}

// Rank converts a result into positions with the method's own convention.
// Results without a method instance, such as user preferences, rank
// descending.
func (r *MethodResult) Rank() ([]float64, error) {
	if r.instance == nil {
		return mcda.RankDescending(r.Preference), nil
	}
	return r.instance.Rank(r.scores)
}
