package mcda

import "errors"

var (
	ErrUnknownMode  = errors.New("unknown data mode")
	ErrEmptyMatrix  = errors.New("matrix has no alternatives or criteria")
	ErrRaggedMatrix = errors.New("matrix rows have different lengths")
	ErrTFNShape     = errors.New("fuzzy value must have exactly 3 components")
	ErrNotFinite    = errors.New("value is not finite")
)
