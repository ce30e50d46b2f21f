package schema

import (
	"encoding/json"
	"strings"
)

// Block kinds accepted in node_type.
const (
	TypeMatrix        = "matrix"
	TypeWeights       = "weights"
	TypeMethod        = "method"
	TypeRanking       = "ranking"
	TypeCorrelation   = "correlation"
	TypeVisualization = "visualization"
)

// Request is a complete calculation request. Blocks are validated one by
// one after normalization, so only the list itself is checked here.
type Request struct {
	Locale string `json:"locale" yaml:"locale"`
	Data   []Node `json:"data" validate:"required,min=1"`
}

// Kwargs is one per-matrix parameter record. The matrix_id entry selects the
// matrix the record applies to; every other entry is a method keyword.
type Kwargs map[string]json.RawMessage

// Node is the flat description of one block.
type Node struct {
	ID              int     `json:"id" validate:"gte=0"`
	NodeType        string  `json:"node_type" validate:"required,oneof=matrix weights method ranking correlation visualization"`
	Extension       string  `json:"extension" validate:"required,oneof=crisp fuzzy"`
	ConnectionsFrom []int   `json:"connections_from"`
	ConnectionsTo   []int   `json:"connections_to"`
	PositionX       float64 `json:"position_x"`
	PositionY       float64 `json:"position_y"`

	Matrix        json.RawMessage `json:"matrix,omitempty" validate:"required_if=NodeType matrix"`
	CriteriaTypes []int           `json:"criteria_types,omitempty" validate:"required_if=NodeType matrix"`
	Method        string          `json:"method,omitempty"`
	Weights       json.RawMessage `json:"weights,omitempty"`
	Preference    []float64       `json:"preference,omitempty"`
	Ranking       []float64       `json:"ranking,omitempty"`
	Kwargs        []Kwargs        `json:"kwargs,omitempty"`
}

// Normalize folds case-insensitive fields to their canonical spelling.
func (n *Node) Normalize() {
	n.NodeType = strings.ToLower(strings.TrimSpace(n.NodeType))
	n.Extension = strings.ToLower(strings.TrimSpace(n.Extension))
	n.Method = strings.ToUpper(strings.TrimSpace(n.Method))
}

// MatrixID extracts the matrix selector of a kwargs record.
func (k Kwargs) MatrixID() (int, bool) {
	raw, ok := k["matrix_id"]
	if !ok {
		return 0, false
	}
	var id int
	if err := json.Unmarshal(raw, &id); err != nil {
		return 0, false
	}
	return id, true
}
