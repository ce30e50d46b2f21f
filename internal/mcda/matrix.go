package mcda

import (
	"encoding/json"
	"fmt"
	"math"
)

// Matrix is a decision matrix: alternatives in rows, criteria in columns.
// Exactly one of Crisp and Fuzzy is populated, according to Mode.
type Matrix struct {
	Mode  Mode
	Crisp [][]float64
	Fuzzy [][]TFN
}

// DecodeMatrix parses the wire form of a matrix for the given mode and
// checks that it is rectangular, non-empty and finite.
func DecodeMatrix(mode Mode, raw json.RawMessage) (Matrix, error) {
	m := Matrix{Mode: mode}
	switch mode {
	case Crisp:
		if err := json.Unmarshal(raw, &m.Crisp); err != nil {
			return Matrix{}, err
		}
	case Fuzzy:
		if err := json.Unmarshal(raw, &m.Fuzzy); err != nil {
			return Matrix{}, err
		}
	default:
		return Matrix{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return m, m.check()
}

func (m Matrix) check() error {
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return ErrEmptyMatrix
	}
	for i := 0; i < rows; i++ {
		if m.rowLen(i) != cols {
			return fmt.Errorf("%w: row %d", ErrRaggedMatrix, i)
		}
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			for _, v := range m.cell(i, j) {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("%w: cell [%d][%d]", ErrNotFinite, i, j)
				}
			}
		}
	}
	return nil
}

// Rows is the number of alternatives.
func (m Matrix) Rows() int {
	if m.Mode == Fuzzy {
		return len(m.Fuzzy)
	}
	return len(m.Crisp)
}

// Cols is the number of criteria, taken from the first row.
func (m Matrix) Cols() int {
	if m.Rows() == 0 {
		return 0
	}
	return m.rowLen(0)
}

func (m Matrix) rowLen(i int) int {
	if m.Mode == Fuzzy {
		return len(m.Fuzzy[i])
	}
	return len(m.Crisp[i])
}

func (m Matrix) cell(i, j int) []float64 {
	if m.Mode == Fuzzy {
		return m.Fuzzy[i][j][:]
	}
	return []float64{m.Crisp[i][j]}
}

// Column returns the values of criterion j. Fuzzy cells are flattened, so
// each alternative contributes three values.
func (m Matrix) Column(j int) []float64 {
	col := make([]float64, 0, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		col = append(col, m.cell(i, j)...)
	}
	return col
}

// Bounds returns the [min, max] pair of each criterion.
func (m Matrix) Bounds() [][2]float64 {
	bounds := make([][2]float64, m.Cols())
	for j := range bounds {
		col := m.Column(j)
		lo, hi := col[0], col[0]
		for _, v := range col[1:] {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		bounds[j] = [2]float64{lo, hi}
	}
	return bounds
}

// Defuzzified collapses a fuzzy matrix to crisp centroids. Crisp matrices
// are returned as-is.
func (m Matrix) Defuzzified() [][]float64 {
	if m.Mode != Fuzzy {
		return m.Crisp
	}
	out := make([][]float64, len(m.Fuzzy))
	for i, row := range m.Fuzzy {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = v.Centroid()
		}
	}
	return out
}

// MarshalJSON emits the populated representation only.
func (m Matrix) MarshalJSON() ([]byte, error) {
	if m.Mode == Fuzzy {
		return json.Marshal(m.Fuzzy)
	}
	return json.Marshal(m.Crisp)
}

// Component returns the matrix made of the k-th vertex (0 lower, 1 modal,
// 2 upper) of every fuzzy cell. Crisp matrices are returned as-is.
func (m Matrix) Component(k int) [][]float64 {
	if m.Mode != Fuzzy {
		return m.Crisp
	}
	out := make([][]float64, len(m.Fuzzy))
	for i, row := range m.Fuzzy {
		out[i] = make([]float64, len(row))
		for j, t := range row {
			out[i][j] = t[k]
		}
	}
	return out
}
