package node

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/specialistvlad/decisiongrid/internal/calcerr"
	"github.com/specialistvlad/decisiongrid/internal/ctxlog"
	"github.com/specialistvlad/decisiongrid/internal/i18n"
	"github.com/specialistvlad/decisiongrid/internal/inmemorystore"
	"github.com/specialistvlad/decisiongrid/internal/registry"
)

// VisualizationResult is one rendered plot.
type VisualizationResult struct {
	MatrixID *int
	Series   registry.Series
	Labels   []string
	// Image is a base64 data URL.
	Image string
}

// VisualizationNode renders the results of its inbound blocks.
type VisualizationNode struct {
	base
	cache *inmemorystore.Store[key, []VisualizationResult]
}

// Results lists the rendered plots in generation order.
func (n *VisualizationNode) Results() []VisualizationResult {
	var out []VisualizationResult
	for _, rs := range n.cache.Values() {
		out = append(out, rs...)
	}
	return out
}

// Generate renders siblings for the matrix group selected by matrixID.
// Siblings must all be of one kind the plot accepts. Weights and rankings
// become one plot with a series per result; every correlation result becomes
// its own plot.
func (n *VisualizationNode) Generate(ctx context.Context, env *Env, siblings []Node, matrixID *int) error {
	k := unanchored
	if matrixID != nil {
		k = matrixKey(*matrixID)
	}
	_, hit, err := n.cache.GetOrCompute(k, func() ([]VisualizationResult, error) {
		return traced(ctx, &n.base, func(ctx context.Context) ([]VisualizationResult, error) {
			return n.generate(ctx, env, siblings, matrixID)
		})
	})
	if err != nil {
		return err
	}
	env.record(n.kind, hit)
	return nil
}

func (n *VisualizationNode) generate(ctx context.Context, env *Env, siblings []Node, matrixID *int) ([]VisualizationResult, error) {
	if len(siblings) == 0 {
		return nil, nil
	}
	kind := siblings[0].Kind()
	for _, s := range siblings[1:] {
		if s.Kind() != kind {
			return nil, calcerr.New(ctx, calcerr.Structure, i18n.StructureMixedInputs, n.id)
		}
	}

	plot, err := env.Registry.Plot(n.method)
	if err != nil {
		return nil, unknownMethod(ctx, n.base, err)
	}
	series := seriesOf[kind]
	if !plot.Accept(series) {
		return nil, calcerr.New(ctx, calcerr.Structure, i18n.StructurePlotInput, n.method, series, n.id)
	}

	var groups []group
	if kind == KindCorrelation {
		for _, s := range siblings {
			for _, r := range s.(*CorrelationNode).Results() {
				if matches(r.MatrixID, matrixID) {
					groups = append(groups, group{series: series, data: r.Correlation, labels: r.Labels})
				}
			}
		}
	} else {
		g := gather(siblings, kind, matrixID)
		if len(g.data) == 0 {
			return nil, nil
		}
		if plot.Series > 0 && len(g.data) != plot.Series {
			return nil, calcerr.New(ctx, calcerr.Aggregation, i18n.AggregationSeries, n.method, plot.Series, len(g.data), n.id)
		}
		if err := g.checkSizes(ctx, n.id); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	out := make([]VisualizationResult, 0, len(groups))
	for _, g := range groups {
		img, err := plot.Render(g.data, g.labels, n.method)
		if err != nil {
			return nil, calcerr.Wrap(ctx, calcerr.Method, i18n.MethodCall, err, n.method, n.id)
		}
		out = append(out, VisualizationResult{
			MatrixID: copyRef(matrixID),
			Series:   g.series,
			Labels:   g.labels,
			Image:    dataURL(img),
		})
	}
	ctxlog.FromContext(ctx).Debug("Plots generated.", "node_id", n.id, "plot", n.method, "count", len(out))
	return out, nil
}

// dataURL embeds img with its sniffed media type.
func dataURL(img []byte) string {
	media, _, _ := strings.Cut(mimetype.Detect(img).String(), ";")
	return "data:" + media + ";base64," + base64.StdEncoding.EncodeToString(img)
}
