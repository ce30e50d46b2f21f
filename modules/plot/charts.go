package plot

import (
	"fmt"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"gonum.org/v1/gonum/floats"
)

// scale maps a value range onto a pixel range.
type scale struct {
	lo, hi   float64
	from, to int
}

func newScale(data [][]float64, from, to int, zero bool) scale {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range data {
		lo = math.Min(lo, floats.Min(row))
		hi = math.Max(hi, floats.Max(row))
	}
	if zero {
		lo = math.Min(lo, 0)
	}
	if hi == lo {
		hi = lo + 1
	}
	return scale{lo: lo, hi: hi, from: from, to: to}
}

func (s scale) at(v float64) int {
	return s.from + int(math.Round((v-s.lo)/(s.hi-s.lo)*float64(s.to-s.from)))
}

const plotBottom = height - margin

func axes(c *svg.SVG) {
	c.Line(margin, plotBottom, width-margin, plotBottom, "stroke:black")
	c.Line(margin, margin, margin, plotBottom, "stroke:black")
}

func legend(c *svg.SVG, labels []string, n int) {
	for i := 0; i < n; i++ {
		y := margin + 16*i
		c.Rect(width-margin-110, y-9, 10, 10, "fill:"+color(i))
		c.Text(width-margin-96, y, label(labels, i), "font-family:sans-serif;font-size:11px")
	}
}

// bars draws grouped bars, one group per position and one bar per series.
func bars(c *svg.SVG, data [][]float64, labels []string) {
	axes(c)
	y := newScale(data, plotBottom, margin, true)
	groups := len(data[0])
	groupWidth := (width - 2*margin) / groups
	barWidth := max(1, (groupWidth-8)/len(data))

	for g := 0; g < groups; g++ {
		x0 := margin + g*groupWidth + 4
		for s, row := range data {
			top := y.at(row[g])
			base := y.at(0)
			c.Rect(x0+s*barWidth, min(top, base), barWidth, abs(base-top), "fill:"+color(s))
		}
		c.Text(x0+groupWidth/2, plotBottom+16, strconv.Itoa(g+1), "text-anchor:middle;font-family:sans-serif;font-size:11px")
	}
	legend(c, labels, len(data))
}

// flow draws one line per position across the series, so that changes of a
// value between series stay visible.
func flow(c *svg.SVG, data [][]float64, labels []string) {
	axes(c)
	y := newScale(data, plotBottom, margin, false)
	step := (width - 2*margin) / max(1, len(data)-1)

	for p := range data[0] {
		xs := make([]int, len(data))
		ys := make([]int, len(data))
		for s, row := range data {
			xs[s] = margin + s*step
			ys[s] = y.at(row[p])
		}
		c.Polyline(xs, ys, "fill:none;stroke-width:2;stroke:"+color(p))
		for s := range xs {
			c.Circle(xs[s], ys[s], 3, "fill:"+color(p))
		}
	}
	for s := range data {
		c.Text(margin+s*step, plotBottom+16, label(labels, s), "text-anchor:middle;font-family:sans-serif;font-size:11px")
	}
}

// polar draws one closed polygon per series on radial axes.
func polar(c *svg.SVG, data [][]float64, labels []string) {
	cx, cy := width/2, height/2+margin/4
	r := newScale(data, 0, height/2-margin, true)
	spokes := len(data[0])

	point := func(k int, v float64) (int, int) {
		angle := 2*math.Pi*float64(k)/float64(spokes) - math.Pi/2
		d := float64(r.at(v))
		return cx + int(math.Round(d*math.Cos(angle))), cy + int(math.Round(d*math.Sin(angle)))
	}

	for k := 0; k < spokes; k++ {
		x, y := point(k, r.hi)
		c.Line(cx, cy, x, y, "stroke:#cccccc")
		c.Text(x, y, strconv.Itoa(k+1), "font-family:sans-serif;font-size:11px")
	}
	for s, row := range data {
		xs := make([]int, spokes)
		ys := make([]int, spokes)
		for k, v := range row {
			xs[k], ys[k] = point(k, v)
		}
		c.Polygon(xs, ys, "fill-opacity:0.2;stroke-width:2;fill:"+color(s)+";stroke:"+color(s))
	}
	legend(c, labels, len(data))
}

// scatter plots the first series against the second.
func scatter(c *svg.SVG, data [][]float64, labels []string) {
	axes(c)
	x := newScale(data, margin, width-margin, false)
	y := newScale(data, plotBottom, margin, false)

	c.Line(x.at(x.lo), y.at(y.lo), x.at(x.hi), y.at(y.hi), "stroke:#cccccc;stroke-dasharray:4")
	for i := range data[0] {
		px, py := x.at(data[0][i]), y.at(data[1][i])
		c.Circle(px, py, 5, "fill:"+color(0))
		c.Text(px+7, py-7, "A"+strconv.Itoa(i+1), "font-family:sans-serif;font-size:11px")
	}
	c.Text(width/2, height-8, label(labels, 0), "text-anchor:middle;font-family:sans-serif;font-size:12px")
	c.Text(12, height/2, label(labels, 1), "font-family:sans-serif;font-size:12px")
}

// heatmap draws a square correlation matrix with its values printed in the
// cells. Colours run from red at -1 to blue at 1.
func heatmap(c *svg.SVG, data [][]float64, labels []string) {
	n := len(data)
	cell := min((width-3*margin)/max(1, len(data[0])), (height-2*margin)/n)
	x0 := 2 * margin

	for i, row := range data {
		c.Text(x0-6, margin+i*cell+cell/2, label(labels, i), "text-anchor:end;font-family:sans-serif;font-size:11px")
		for j, v := range row {
			x, y := x0+j*cell, margin+i*cell
			c.Rect(x, y, cell, cell, "stroke:white;fill:"+heat(c, v))
			c.Text(x+cell/2, y+cell/2+4, fmt.Sprintf("%.2f", v), "text-anchor:middle;font-family:sans-serif;font-size:11px")
		}
	}
	for j := range data[0] {
		c.Text(x0+j*cell+cell/2, margin+n*cell+14, label(labels, j), "text-anchor:middle;font-family:sans-serif;font-size:11px")
	}
}

func heat(c *svg.SVG, v float64) string {
	t := (math.Max(-1, math.Min(1, v)) + 1) / 2
	return c.RGB(int(255*(1-t)), int(80+95*(1-math.Abs(2*t-1))), int(255*t))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
