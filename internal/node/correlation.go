package node

import (
	"context"

	"github.com/specialistvlad/decisiongrid/internal/calcerr"
	"github.com/specialistvlad/decisiongrid/internal/ctxlog"
	"github.com/specialistvlad/decisiongrid/internal/i18n"
	"github.com/specialistvlad/decisiongrid/internal/inmemorystore"
	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"github.com/specialistvlad/decisiongrid/internal/registry"
)

// CorrelationResult is a square correlation matrix over one group of
// sibling vectors.
type CorrelationResult struct {
	MatrixID    *int
	Series      registry.Series
	Correlation [][]float64
	Labels      []string
}

// CorrelationNode correlates the results of its inbound blocks pairwise.
type CorrelationNode struct {
	base
	cache *inmemorystore.Store[key, []CorrelationResult]
}

// Results lists the correlation matrices in calculation order.
func (n *CorrelationNode) Results() []CorrelationResult {
	var out []CorrelationResult
	for _, rs := range n.cache.Values() {
		out = append(out, rs...)
	}
	return out
}

var correlatedKinds = []Kind{KindWeights, KindMethod, KindRanking}

// Calculate builds one matrix per non-empty group of weights, preferences
// and rankings among siblings. matrixID selects the matrix group; nil
// selects all results.
func (n *CorrelationNode) Calculate(ctx context.Context, env *Env, siblings []Node, matrixID *int) error {
	k := unanchored
	if matrixID != nil {
		k = matrixKey(*matrixID)
	}
	_, hit, err := n.cache.GetOrCompute(k, func() ([]CorrelationResult, error) {
		return traced(ctx, &n.base, func(ctx context.Context) ([]CorrelationResult, error) {
			return n.compute(ctx, env, siblings, matrixID)
		})
	})
	if err != nil {
		return err
	}
	env.record(n.kind, hit)
	return nil
}

func (n *CorrelationNode) compute(ctx context.Context, env *Env, siblings []Node, matrixID *int) ([]CorrelationResult, error) {
	coef, err := env.Registry.Correlation(n.method)
	if err != nil {
		return nil, unknownMethod(ctx, n.base, err)
	}

	var out []CorrelationResult
	for _, kind := range correlatedKinds {
		g := gather(siblings, kind, matrixID)
		if len(g.data) == 0 {
			continue
		}
		if err := g.checkSizes(ctx, n.id); err != nil {
			return nil, err
		}

		size := len(g.data)
		corr := make([][]float64, size)
		for i := range corr {
			corr[i] = make([]float64, size)
			for j := range corr[i] {
				v, err := coef(g.data[i], g.data[j])
				if err != nil {
					return nil, calcerr.Wrap(ctx, calcerr.Method, i18n.MethodCall, err, n.method, n.id)
				}
				corr[i][j] = v
			}
			if !mcda.Finite(corr[i]) {
				return nil, calcerr.New(ctx, calcerr.Method, i18n.MethodResult, n.method, n.id)
			}
			corr[i] = mcda.RoundAll(corr[i], env.Precision)
		}

		ctxlog.FromContext(ctx).Debug("Correlation calculated.", "node_id", n.id, "series", g.series, "size", size)
		out = append(out, CorrelationResult{
			MatrixID:    copyRef(matrixID),
			Series:      g.series,
			Correlation: corr,
			Labels:      g.labels,
		})
	}
	return out, nil
}

func copyRef(id *int) *int {
	if id == nil {
		return nil
	}
	return intRef(*id)
}
