package node

import (
	"context"

	"github.com/specialistvlad/decisiongrid/internal/calcerr"
	"github.com/specialistvlad/decisiongrid/internal/i18n"
	"github.com/specialistvlad/decisiongrid/internal/registry"
)

// group is a set of same-kind vectors gathered from sibling blocks.
type group struct {
	series registry.Series
	data   [][]float64
	labels []string
}

var seriesOf = map[Kind]registry.Series{
	KindWeights:     registry.SeriesWeights,
	KindMethod:      registry.SeriesPreference,
	KindRanking:     registry.SeriesRanking,
	KindCorrelation: registry.SeriesCorrelation,
}

// gather collects the vectors of all siblings of kind, restricted to the
// matrix group selected by matrixID. Weights and preferences are labeled
// with their block's method, rankings with the assessment method they rank.
func gather(siblings []Node, kind Kind, matrixID *int) group {
	g := group{series: seriesOf[kind]}
	for _, s := range siblings {
		switch n := s.(type) {
		case *WeightsNode:
			if kind != KindWeights {
				continue
			}
			for _, r := range n.Results() {
				if matches(r.MatrixID, matrixID) {
					g.data = append(g.data, r.Weights.Values())
					g.labels = append(g.labels, n.Method())
				}
			}
		case *MethodNode:
			if kind != KindMethod {
				continue
			}
			for _, r := range n.Results() {
				if matches(r.MatrixID, matrixID) {
					g.data = append(g.data, r.Preference)
					g.labels = append(g.labels, n.Method())
				}
			}
		case *RankingNode:
			if kind != KindRanking {
				continue
			}
			for _, r := range n.Results() {
				if matches(r.MatrixID, matrixID) {
					g.data = append(g.data, r.Ranking)
					g.labels = append(g.labels, r.Method)
				}
			}
		}
	}
	return g
}

// checkSizes requires every vector of g to have the same length.
func (g group) checkSizes(ctx context.Context, owner int) error {
	for _, row := range g.data[1:] {
		if len(row) != len(g.data[0]) {
			return calcerr.New(ctx, calcerr.Aggregation, i18n.AggregationSize, g.series, owner)
		}
	}
	return nil
}
