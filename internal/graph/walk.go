package graph

import (
	"context"
	"time"

	"github.com/specialistvlad/decisiongrid/internal/ctxlog"
	"github.com/specialistvlad/decisiongrid/internal/node"
	"github.com/specialistvlad/decisiongrid/internal/response"
	"github.com/specialistvlad/decisiongrid/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// Calculate validates the topology, evaluates every block and returns one
// record per block in declaration order.
func (g *Graph) Calculate(ctx context.Context) (records []response.Record, err error) {
	ctx, span := telemetry.StartSpan(ctx, "graph.Calculate", attribute.Int("nodes", g.nodes.Len()))
	start := time.Now()
	defer func() {
		g.metrics.ObserveEvaluation(time.Since(start))
		if err != nil {
			err = g.fail(err)
		}
		telemetry.EndSpan(span, err)
	}()

	if err := g.validate(ctx); err != nil {
		return nil, err
	}
	if err := g.seed(ctx); err != nil {
		return nil, err
	}

	matrices := g.ofKind(node.KindMatrix)
	if len(matrices) == 0 {
		ctxlog.FromContext(ctx).Debug("No matrix blocks, aggregating user values.")
		if err := g.aggregate(ctx, nil); err != nil {
			return nil, err
		}
	}
	for _, m := range matrices {
		if err := g.walkMatrix(ctx, m.(*node.MatrixNode)); err != nil {
			return nil, err
		}
	}
	return response.Assemble(g.nodes.Values()), nil
}

// seed stores user-supplied values that do not depend on a matrix.
func (g *Graph) seed(ctx context.Context) error {
	for _, n := range g.nodes.Values() {
		switch n := n.(type) {
		case *node.MethodNode:
			if !n.IsInput() {
				continue
			}
			if _, err := n.Seed(ctx, g.env); err != nil {
				return err
			}
			for _, r := range g.outOf(n, node.KindRanking) {
				if err := r.(*node.RankingNode).RankInput(ctx, g.env, n); err != nil {
					return err
				}
			}
		case *node.RankingNode:
			if n.IsInput() {
				n.Seed(ctx, g.env)
			}
		case *node.WeightsNode:
			if n.IsInput() && !g.hasInbound(n, node.KindMatrix) {
				if err := n.Seed(ctx, g.env); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (g *Graph) walkMatrix(ctx context.Context, m *node.MatrixNode) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "graph.Matrix", attribute.Int("matrix_id", m.ID()))
	defer func() { telemetry.EndSpan(span, err) }()
	ctx = ctxlog.With(ctx, "matrix_id", m.ID())

	weights := g.outOf(m, node.KindWeights)
	if len(weights) == 0 {
		return noWeights(ctx, m)
	}

	for _, wn := range weights {
		w := wn.(*node.WeightsNode)
		if _, err := w.Calculate(ctx, g.env, m); err != nil {
			return err
		}
		for _, mn := range g.outOf(w, node.KindMethod) {
			meth := mn.(*node.MethodNode)
			if meth.IsInput() {
				continue
			}
			if _, err := meth.Calculate(ctx, g.env, m, w); err != nil {
				return err
			}
			for _, rn := range g.outOf(meth, node.KindRanking) {
				if err := rn.(*node.RankingNode).Calculate(ctx, g.env, meth, m, w); err != nil {
					return err
				}
			}
		}
	}

	id := m.ID()
	return g.aggregate(ctx, &id)
}

// aggregate runs every correlation, then every visualization, over the
// results of the matrix group selected by matrixID.
func (g *Graph) aggregate(ctx context.Context, matrixID *int) error {
	for _, n := range g.ofKind(node.KindCorrelation) {
		if err := n.(*node.CorrelationNode).Calculate(ctx, g.env, g.in[n.ID()], matrixID); err != nil {
			return err
		}
	}
	for _, n := range g.ofKind(node.KindVisualization) {
		if err := n.(*node.VisualizationNode).Generate(ctx, g.env, g.in[n.ID()], matrixID); err != nil {
			return err
		}
	}
	return nil
}
