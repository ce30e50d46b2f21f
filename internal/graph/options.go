package graph

import "github.com/specialistvlad/decisiongrid/internal/telemetry"

// Option configures a Graph.
type Option func(*Graph)

// WithPrecision sets the number of decimal digits results are rounded to.
func WithPrecision(digits int) Option {
	return func(g *Graph) { g.env.Precision = digits }
}

// WithMetrics records calculations, cache hits and failures into m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(g *Graph) {
		g.env.Metrics = m
		g.metrics = m
	}
}
