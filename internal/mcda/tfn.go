package mcda

import (
	"encoding/json"
	"fmt"
)

// TFN is a triangular fuzzy number (lower, middle, upper).
type TFN [3]float64

// Centroid reduces the number to its center of gravity.
func (t TFN) Centroid() float64 {
	return (t[0] + t[1] + t[2]) / 3
}

// Valid reports whether the components are ordered.
func (t TFN) Valid() bool {
	return t[0] <= t[1] && t[1] <= t[2]
}

// UnmarshalJSON rejects triplets of the wrong arity instead of silently
// zero-filling them.
func (t *TFN) UnmarshalJSON(b []byte) error {
	var raw []float64
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("%w: got %d", ErrTFNShape, len(raw))
	}
	copy(t[:], raw)
	return nil
}
