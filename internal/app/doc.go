// Package app wires settings, logging, metrics and the strategy registry
// into an App that reads decision-graph requests from disk, evaluates them
// and writes one JSON response document per request.
package app
