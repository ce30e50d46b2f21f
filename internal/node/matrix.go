package node

import "github.com/specialistvlad/decisiongrid/internal/mcda"

// MatrixNode holds a validated decision matrix and its criteria types.
type MatrixNode struct {
	base
	Matrix mcda.Matrix
	Types  []int
}
