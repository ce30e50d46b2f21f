// Package schema defines the wire shape of a calculation request: a locale
// and a flat, ordered list of block descriptions as produced by the graph
// editor. It validates field-level constraints only; cross-block rules
// belong to the graph package.
package schema
