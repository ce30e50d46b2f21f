// Package plot registers SVG renderers for weights, rankings and
// correlation matrices.
//
// Renderers receive one data row per series and one label per series (for
// correlation matrices, one label per row and column). Every render draws
// into a pooled buffer that is released once the bytes are copied out.
package plot

import (
	"errors"
	"fmt"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/specialistvlad/decisiongrid/internal/registry"
	"github.com/valyala/bytebufferpool"
)

const (
	width  = 640
	height = 400
	margin = 48
)

var (
	ErrNoData = errors.New("nothing to plot")
	ErrRagged = errors.New("series differ in length")
)

var palette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

func color(i int) string { return palette[i%len(palette)] }

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers every plot kind with the engine.
func (m *Module) Register(r *registry.Registry) {
	weights := []registry.Series{registry.SeriesWeights}
	ranking := []registry.Series{registry.SeriesRanking}
	correlation := []registry.Series{registry.SeriesCorrelation}

	r.RegisterPlot("WEIGHTS DISTRIBUTION", registry.Plot{Accepts: weights, Render: checked(bars)})
	r.RegisterPlot("POLAR WEIGHTS", registry.Plot{Accepts: weights, Render: checked(polar)})
	r.RegisterPlot("RANKING BAR", registry.Plot{Accepts: ranking, Render: checked(bars)})
	r.RegisterPlot("RANKING FLOW", registry.Plot{Accepts: ranking, Render: checked(flow)})
	r.RegisterPlot("POLAR RANKING", registry.Plot{Accepts: ranking, Render: checked(polar)})
	r.RegisterPlot("SCATTER RANKING", registry.Plot{Accepts: ranking, Series: 2, Render: checked(scatter)})
	r.RegisterPlot("CORRELATION HEATMAP", registry.Plot{Accepts: correlation, Render: checked(heatmap)})
	r.RegisterPlot("CORRELATION FLOW", registry.Plot{Accepts: correlation, Render: checked(flow)})
}

type drawFunc func(c *svg.SVG, data [][]float64, labels []string)

// checked validates the data and renders it on a fresh canvas titled with
// the plot kind.
func checked(draw drawFunc) registry.RenderFunc {
	return func(data [][]float64, labels []string, kind string) ([]byte, error) {
		if len(data) == 0 || len(data[0]) == 0 {
			return nil, ErrNoData
		}
		for i, row := range data {
			if len(row) != len(data[0]) {
				return nil, fmt.Errorf("%w: series %d has %d values, expected %d", ErrRagged, i+1, len(row), len(data[0]))
			}
		}
		return render(kind, func(c *svg.SVG) { draw(c, data, labels) }), nil
	}
}

func render(title string, draw func(c *svg.SVG)) []byte {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	c := svg.New(buf)
	c.Start(width, height)
	c.Rect(0, 0, width, height, "fill:white")
	c.Text(width/2, margin/2, title, "text-anchor:middle;font-family:sans-serif;font-size:16px")
	draw(c)
	c.End()

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out
}

func label(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return strconv.Itoa(i + 1)
}
