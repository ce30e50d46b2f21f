package graph

import (
	"context"
	"slices"

	"github.com/specialistvlad/decisiongrid/internal/calcerr"
	"github.com/specialistvlad/decisiongrid/internal/i18n"
	"github.com/specialistvlad/decisiongrid/internal/node"
)

var allowedTargets = map[node.Kind][]node.Kind{
	node.KindMatrix:        {node.KindWeights},
	node.KindWeights:       {node.KindMethod, node.KindCorrelation, node.KindVisualization},
	node.KindMethod:        {node.KindRanking, node.KindCorrelation},
	node.KindRanking:       {node.KindCorrelation, node.KindVisualization},
	node.KindCorrelation:   {node.KindVisualization},
	node.KindVisualization: {},
}

// validate checks that every connection resolves and every edge joins
// compatible kinds. It runs before anything is calculated.
func (g *Graph) validate(ctx context.Context) error {
	nodes := g.nodes.Values()
	for _, n := range nodes {
		for _, id := range slices.Concat(n.From(), n.To()) {
			if _, ok := g.node(id); !ok {
				return calcerr.New(ctx, calcerr.Structure, i18n.StructureMissingBlock, id, n.ID())
			}
		}
	}

	g.link()
	for _, n := range nodes {
		for _, target := range g.out[n.ID()] {
			if !slices.Contains(allowedTargets[n.Kind()], target.Kind()) {
				return calcerr.New(ctx, calcerr.Structure, i18n.StructureConnection,
					n.Kind(), target.Kind(), n.ID())
			}
		}
	}
	return nil
}

func noWeights(ctx context.Context, m node.Node) error {
	return calcerr.New(ctx, calcerr.Structure, i18n.StructureNoWeights, m.ID())
}

// Validate checks the topology without calculating anything.
func (g *Graph) Validate(ctx context.Context) error {
	if err := g.validate(ctx); err != nil {
		return g.fail(err)
	}
	return nil
}
