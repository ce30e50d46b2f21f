package node

import (
	"context"

	"github.com/specialistvlad/decisiongrid/internal/calcerr"
	"github.com/specialistvlad/decisiongrid/internal/ctxlog"
	"github.com/specialistvlad/decisiongrid/internal/i18n"
	"github.com/specialistvlad/decisiongrid/internal/inmemorystore"
	"github.com/specialistvlad/decisiongrid/internal/mcda"
)

// RankingResult is one rank vector together with the blocks it came from.
type RankingResult struct {
	MatrixID      *int
	WeightsID     *int
	Method        string
	WeightsMethod string
	Ranking       []float64
	Kwargs        map[string]any
}

// RankingNode extracts positions from a method's result, or carries user
// ranks when its method is INPUT.
type RankingNode struct {
	base
	input []float64
	cache *inmemorystore.Store[key, RankingResult]
}

// Results lists the rank vectors in calculation order.
func (n *RankingNode) Results() []RankingResult { return n.cache.Values() }

// Seed stores the user ranks of an INPUT block verbatim.
func (n *RankingNode) Seed(ctx context.Context, env *Env) {
	env.record(n.kind, n.cache.Set(unanchored, RankingResult{Method: n.method, Ranking: n.input}))
	ctxlog.FromContext(ctx).Debug("User ranking accepted.", "node_id", n.id)
}

// RankInput ranks the preference of an INPUT method block.
func (n *RankingNode) RankInput(ctx context.Context, env *Env, method *MethodNode) error {
	if n.IsInput() {
		return nil
	}
	res, err := method.Seed(ctx, env)
	if err != nil {
		return err
	}
	k := key{method: method.ID()}
	return n.store(ctx, env, k, method, res, len(res.Preference))
}

// Calculate ranks the result of method for the (m, w) pair.
func (n *RankingNode) Calculate(ctx context.Context, env *Env, method *MethodNode, m *MatrixNode, w *WeightsNode) error {
	if n.IsInput() {
		return nil
	}
	res, err := method.Calculate(ctx, env, m, w)
	if err != nil {
		return err
	}
	k := key{matrix: m.ID(), weights: w.ID(), method: method.ID(), anchored: true}
	return n.store(ctx, env, k, method, res, m.Matrix.Rows())
}

func (n *RankingNode) store(ctx context.Context, env *Env, k key, method *MethodNode, res *MethodResult, rows int) error {
	_, hit, err := n.cache.GetOrCompute(k, func() (RankingResult, error) {
		rank, err := res.Rank()
		if err != nil {
			return RankingResult{}, calcerr.Wrap(ctx, calcerr.Method, i18n.MethodCall, err, method.Method(), n.id)
		}
		if len(rank) != rows {
			return RankingResult{}, calcerr.New(ctx, calcerr.Method, i18n.MethodLength, method.Method(), len(rank), rows, n.id)
		}
		if !mcda.Finite(rank) {
			return RankingResult{}, calcerr.New(ctx, calcerr.Method, i18n.MethodResult, method.Method(), n.id)
		}
		ctxlog.FromContext(ctx).Debug("Ranking calculated.", "node_id", n.id, "method_id", method.ID())
		return RankingResult{
			MatrixID:      res.MatrixID,
			WeightsID:     res.WeightsID,
			Method:        method.Method(),
			WeightsMethod: res.WeightsMethod,
			Ranking:       mcda.RoundAll(rank, env.Precision),
			Kwargs:        res.Kwargs,
		}, nil
	})
	if err != nil {
		return err
	}
	env.record(n.kind, hit)
	return nil
}
