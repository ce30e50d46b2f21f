// Package mcda holds the value types shared by every stage of a decision
// graph: the data mode, triangular fuzzy numbers, decision matrices, weight
// vectors and score vectors produced by assessment methods.
//
// The types are plain data. Validation that must produce user-facing
// messages lives in the node package; this package only reports shape
// problems through its sentinel errors.
package mcda
