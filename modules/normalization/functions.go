package normalization

import (
	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"gonum.org/v1/gonum/floats"
)

// Euclidean is the L2 distance.
func Euclidean(a, b []float64) float64 { return floats.Distance(a, b, 2) }

// Manhattan is the L1 distance.
func Manhattan(a, b []float64) float64 { return floats.Distance(a, b, 1) }

// MeanArea is the centroid of the triangle.
func MeanArea(t mcda.TFN) float64 { return t.Centroid() }

// WeightedMean weights the modal value four times.
func WeightedMean(t mcda.TFN) float64 { return (t[0] + 4*t[1] + t[2]) / 6 }

// MeanMax is the modal value.
func MeanMax(t mcda.TFN) float64 { return t[1] }

// Usual prefers any positive difference fully.
func Usual(d, _, _ float64) float64 {
	if d <= 0 {
		return 0
	}
	return 1
}

// UShape prefers differences above q fully.
func UShape(d, q, _ float64) float64 {
	if d <= q {
		return 0
	}
	return 1
}

// VShape grows linearly up to p.
func VShape(d, _, p float64) float64 {
	switch {
	case d <= 0:
		return 0
	case d > p:
		return 1
	}
	return d / p
}

// Level gives half preference between q and p.
func Level(d, q, p float64) float64 {
	switch {
	case d <= q:
		return 0
	case d > p:
		return 1
	}
	return 0.5
}

// VShape2 grows linearly between q and p.
func VShape2(d, q, p float64) float64 {
	switch {
	case d <= q:
		return 0
	case d > p:
		return 1
	}
	return (d - q) / (p - q)
}
