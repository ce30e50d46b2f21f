package response

import (
	"errors"

	"github.com/specialistvlad/decisiongrid/internal/calcerr"
	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"github.com/specialistvlad/decisiongrid/internal/node"
)

// Record is the result of one block. The editor position is echoed back
// unchanged.
type Record struct {
	ID        int     `json:"id"`
	NodeType  string  `json:"node_type"`
	Extension string  `json:"extension"`
	Method    string  `json:"method,omitempty"`
	PositionX float64 `json:"position_x"`
	PositionY float64 `json:"position_y"`
	Data      []any   `json:"data"`
}

// Envelope is the top-level response document.
type Envelope struct {
	Response []Record `json:"response"`
}

// Failure is the document returned instead of an Envelope when evaluation
// stops on an error.
type Failure struct {
	Error Problem `json:"error"`
}

// Problem describes one calculation error.
type Problem struct {
	Category string `json:"category"`
	Key      string `json:"key,omitempty"`
	Message  string `json:"message"`
}

// FailureOf converts err into a Failure. Errors that are not calculation
// errors are reported with their text only.
func FailureOf(err error) Failure {
	var ce *calcerr.Error
	if errors.As(err, &ce) {
		return Failure{Error: Problem{Category: ce.Category.String(), Key: ce.Key, Message: ce.Message}}
	}
	return Failure{Error: Problem{Category: calcerr.CategoryOf(err).String(), Message: err.Error()}}
}

// MatrixData echoes a decoded decision matrix.
type MatrixData struct {
	Matrix        mcda.Matrix `json:"matrix"`
	CriteriaTypes []int       `json:"criteria_types"`
}

// WeightsData is one weight vector. MatrixID is absent for user weights
// given without a matrix.
type WeightsData struct {
	MatrixID *int        `json:"matrix_id,omitempty"`
	Weights  mcda.Vector `json:"weights"`
}

// MethodData is the preference of one (matrix, weights) pair, with the
// parameters the method ran with.
type MethodData struct {
	MatrixID      *int           `json:"matrix_id,omitempty"`
	WeightsMethod string         `json:"weights_method,omitempty"`
	Preference    []float64      `json:"preference"`
	Kwargs        map[string]any `json:"kwargs,omitempty"`
}

// RankingData is one ranking and the method and weights it derives from.
type RankingData struct {
	MatrixID *int           `json:"matrix_id,omitempty"`
	Method   string         `json:"method,omitempty"`
	Weights  string         `json:"weights,omitempty"`
	Ranking  []float64      `json:"ranking"`
	Kwargs   map[string]any `json:"kwargs,omitempty"`
}

// CorrelationData is a square coefficient matrix over the series named in
// Labels. Kind is the series type that was correlated.
type CorrelationData struct {
	MatrixID    *int        `json:"matrix_id,omitempty"`
	Kind        string      `json:"kind"`
	Correlation [][]float64 `json:"correlation"`
	Labels      []string    `json:"labels"`
}

// VisualizationData is a rendered plot as a base64 data URI.
type VisualizationData struct {
	MatrixID *int     `json:"matrix_id,omitempty"`
	Kind     string   `json:"kind"`
	Labels   []string `json:"labels"`
	Image    string   `json:"image"`
}

// Assemble builds one record per node, in the order given.
func Assemble(nodes []node.Node) []Record {
	out := make([]Record, 0, len(nodes))
	for _, n := range nodes {
		x, y := n.Position()
		out = append(out, Record{
			ID:        n.ID(),
			NodeType:  string(n.Kind()),
			Extension: string(n.Mode()),
			Method:    n.Method(),
			PositionX: x,
			PositionY: y,
			Data:      dataOf(n),
		})
	}
	return out
}

func dataOf(n node.Node) []any {
	data := []any{}
	switch n := n.(type) {
	case *node.MatrixNode:
		data = append(data, MatrixData{Matrix: n.Matrix, CriteriaTypes: n.Types})
	case *node.WeightsNode:
		for _, r := range n.Results() {
			data = append(data, WeightsData{MatrixID: r.MatrixID, Weights: r.Weights})
		}
	case *node.MethodNode:
		for _, r := range n.Results() {
			data = append(data, MethodData{
				MatrixID:      r.MatrixID,
				WeightsMethod: r.WeightsMethod,
				Preference:    r.Preference,
				Kwargs:        nonEmpty(r.Kwargs),
			})
		}
	case *node.RankingNode:
		for _, r := range n.Results() {
			data = append(data, RankingData{
				MatrixID: r.MatrixID,
				Method:   r.Method,
				Weights:  r.WeightsMethod,
				Ranking:  r.Ranking,
				Kwargs:   nonEmpty(r.Kwargs),
			})
		}
	case *node.CorrelationNode:
		for _, r := range n.Results() {
			data = append(data, CorrelationData{
				MatrixID:    r.MatrixID,
				Kind:        string(r.Series),
				Correlation: r.Correlation,
				Labels:      r.Labels,
			})
		}
	case *node.VisualizationNode:
		for _, r := range n.Results() {
			data = append(data, VisualizationData{
				MatrixID: r.MatrixID,
				Kind:     string(r.Series),
				Labels:   r.Labels,
				Image:    r.Image,
			})
		}
	}
	return data
}

func nonEmpty(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	return m
}
