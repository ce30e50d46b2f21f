package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonRequest = `{
  "locale": "pl",
  "data": [
    {"id": 1, "node_type": "Matrix", "extension": "CRISP", "connections_to": [2],
     "matrix": [[1,2],[3,4]], "criteria_types": [1,-1]},
    {"id": 2, "node_type": "weights", "extension": "crisp", "connections_from": [1],
     "method": "equal"},
    {"id": 3, "node_type": "method", "extension": "crisp", "method": "topsis",
     "kwargs": [{"matrix_id": 1, "normalization_function": "minmax_normalization"}]}
  ]
}`

const yamlRequest = `
locale: en
data:
  - id: 1
    node_type: matrix
    extension: crisp
    matrix: [[1, 2], [3, 4]]
    criteria_types: [1, -1]
  - id: 2
    node_type: weights
    extension: crisp
    method: INPUT
    weights: [0.5, 0.5]
`

func TestDecode_JSON(t *testing.T) {
	t.Parallel()

	// --- Act ---
	req, err := Decode("request.json", []byte(jsonRequest))

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "pl", req.Locale)
	require.Len(t, req.Data, 3)
	assert.Equal(t, TypeMatrix, req.Data[0].NodeType)
	assert.Equal(t, "crisp", req.Data[0].Extension)
	assert.Equal(t, "EQUAL", req.Data[1].Method)

	id, ok := req.Data[2].Kwargs[0].MatrixID()
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	for _, n := range req.Data {
		assert.NoError(t, ValidateNode(n))
	}
}

func TestDecode_YAML(t *testing.T) {
	t.Parallel()

	req, err := Decode("request.yaml", []byte(yamlRequest))

	require.NoError(t, err)
	require.Len(t, req.Data, 2)
	assert.JSONEq(t, `[[1,2],[3,4]]`, string(req.Data[0].Matrix))
	assert.JSONEq(t, `[0.5,0.5]`, string(req.Data[1].Weights))
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		req     *Request
		wantErr bool
	}{
		{"missing data", &Request{Locale: "en"}, true},
		{"empty data", &Request{Data: []Node{}}, true},
		{"one block", &Request{Data: []Node{{ID: 1, NodeType: "ranking", Extension: "crisp"}}}, false},
		{"blocks are not checked", &Request{Data: []Node{{ID: 1, NodeType: "Matrix"}}}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateRequest(tc.req)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateNode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		node  Node
		field string
	}{
		{"unknown type", Node{ID: 1, NodeType: "table", Extension: "crisp"}, "node_type"},
		{"unknown extension", Node{ID: 1, NodeType: "ranking", Extension: "grey"}, "extension"},
		{"matrix without data", Node{ID: 1, NodeType: "matrix", Extension: "crisp"}, "matrix"},
		{"matrix without types", Node{ID: 2, NodeType: "matrix", Extension: "crisp", Matrix: []byte("[[1]]")}, "criteria_types"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateNode(tc.node)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tc.field, fe.Field)
		})
	}
}

func TestValidateNode_RankingWithoutMethod(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateNode(Node{ID: 4, NodeType: "ranking", Extension: "fuzzy"}))
}
