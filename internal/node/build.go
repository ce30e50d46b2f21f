package node

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/specialistvlad/decisiongrid/internal/calcerr"
	"github.com/specialistvlad/decisiongrid/internal/i18n"
	"github.com/specialistvlad/decisiongrid/internal/inmemorystore"
	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"github.com/specialistvlad/decisiongrid/internal/registry"
	"github.com/specialistvlad/decisiongrid/internal/schema"
)

// Build creates the block described by desc. It validates field shapes,
// kind-specific data and method names, so every returned Node is ready to
// calculate.
func Build(ctx context.Context, desc schema.Node, reg *registry.Registry) (Node, error) {
	desc.Normalize()
	if err := schema.ValidateNode(desc); err != nil {
		return nil, fieldError(ctx, desc, err)
	}
	mode, err := mcda.ParseMode(desc.Extension)
	if err != nil {
		return nil, calcerr.Wrap(ctx, calcerr.Data, i18n.DataExtension, err, desc.Extension, desc.ID)
	}

	b := base{
		id:     desc.ID,
		kind:   Kind(desc.NodeType),
		mode:   mode,
		method: desc.Method,
		from:   desc.ConnectionsFrom,
		to:     desc.ConnectionsTo,
		x:      desc.PositionX,
		y:      desc.PositionY,
	}

	switch b.kind {
	case KindMatrix:
		return buildMatrix(ctx, b, desc)
	case KindWeights:
		return buildWeights(ctx, b, desc, reg)
	case KindMethod:
		return buildMethod(ctx, b, desc, reg)
	case KindRanking:
		return buildRanking(ctx, b, desc)
	case KindCorrelation:
		if _, err := reg.Correlation(b.method); err != nil {
			return nil, unknownMethod(ctx, b, err)
		}
		return &CorrelationNode{base: b, cache: inmemorystore.New[key, []CorrelationResult]()}, nil
	case KindVisualization:
		if _, err := reg.Plot(b.method); err != nil {
			return nil, unknownMethod(ctx, b, err)
		}
		return &VisualizationNode{base: b, cache: inmemorystore.New[key, []VisualizationResult]()}, nil
	}
	return nil, calcerr.New(ctx, calcerr.Structure, i18n.StructureBlockType, desc.NodeType, desc.ID)
}

func fieldError(ctx context.Context, desc schema.Node, err error) error {
	var fe *schema.FieldError
	if !errors.As(err, &fe) {
		return calcerr.Wrap(ctx, calcerr.Structure, i18n.StructureRequestField, err, "?", desc.ID)
	}
	switch fe.Field {
	case "node_type":
		return calcerr.New(ctx, calcerr.Structure, i18n.StructureBlockType, desc.NodeType, desc.ID)
	case "extension":
		return calcerr.New(ctx, calcerr.Data, i18n.DataExtension, desc.Extension, desc.ID)
	}
	return calcerr.Wrap(ctx, calcerr.Structure, i18n.StructureRequestField, err, fe.Field, desc.ID)
}

func unknownMethod(ctx context.Context, b base, err error) error {
	return calcerr.Wrap(ctx, calcerr.Method, i18n.MethodName, err, b.method, b.mode, b.id)
}

func buildMatrix(ctx context.Context, b base, desc schema.Node) (Node, error) {
	m, err := mcda.DecodeMatrix(b.mode, desc.Matrix)
	if err != nil {
		msg := i18n.DataCrispMatrix
		if b.mode == mcda.Fuzzy {
			msg = i18n.DataFuzzyMatrix
		}
		return nil, calcerr.Wrap(ctx, calcerr.Data, msg, err, b.id)
	}
	if len(desc.CriteriaTypes) != m.Cols() {
		return nil, calcerr.New(ctx, calcerr.Data, i18n.DataCriteriaTypesNumber, m.Cols(), len(desc.CriteriaTypes), b.id)
	}
	for _, t := range desc.CriteriaTypes {
		if t != -1 && t != 1 {
			return nil, calcerr.New(ctx, calcerr.Data, i18n.DataCriteriaTypesValues, b.id)
		}
	}
	b.method = ""
	return &MatrixNode{base: b, Matrix: m, Types: desc.CriteriaTypes}, nil
}

func buildWeights(ctx context.Context, b base, desc schema.Node, reg *registry.Registry) (Node, error) {
	n := &WeightsNode{base: b, cache: inmemorystore.New[key, WeightsResult]()}
	if !n.IsInput() {
		if _, err := reg.Weighting(b.method, b.mode); err != nil {
			return nil, unknownMethod(ctx, b, err)
		}
		return n, nil
	}

	if len(desc.Weights) == 0 {
		return nil, calcerr.New(ctx, calcerr.Data, i18n.DataMissingInput, b.id)
	}
	input, err := decodeUserWeights(ctx, b, desc.Weights)
	if err != nil {
		return nil, err
	}
	n.input = input
	return n, nil
}

// decodeUserWeights accepts plain numbers in either mode and triangular
// numbers in fuzzy mode.
func decodeUserWeights(ctx context.Context, b base, raw json.RawMessage) (mcda.Vector, error) {
	var crisp []float64
	if err := json.Unmarshal(raw, &crisp); err == nil {
		if !mcda.Finite(crisp) || len(crisp) == 0 {
			return mcda.Vector{}, calcerr.New(ctx, calcerr.Data, i18n.DataWeightsFormat, b.id)
		}
		return mcda.CrispVector(crisp), nil
	}
	if b.mode == mcda.Crisp {
		return mcda.Vector{}, calcerr.New(ctx, calcerr.Data, i18n.DataWeightsFormat, b.id)
	}

	var fuzzy []mcda.TFN
	if err := json.Unmarshal(raw, &fuzzy); err != nil || len(fuzzy) == 0 {
		return mcda.Vector{}, calcerr.New(ctx, calcerr.Data, i18n.DataFuzzyWeights, b.id)
	}
	v := mcda.FuzzyVector(fuzzy)
	if !v.Finite() {
		return mcda.Vector{}, calcerr.New(ctx, calcerr.Data, i18n.DataFuzzyWeights, b.id)
	}
	return v, nil
}

func buildMethod(ctx context.Context, b base, desc schema.Node, reg *registry.Registry) (Node, error) {
	n := &MethodNode{
		base:   b,
		kwargs: desc.Kwargs,
		cache:  inmemorystore.New[key, *MethodResult](),
	}
	if n.IsInput() {
		if len(desc.Preference) == 0 || !mcda.Finite(desc.Preference) {
			return nil, calcerr.New(ctx, calcerr.Data, i18n.DataMissingInput, b.id)
		}
		n.preference = desc.Preference
		return n, nil
	}
	if _, err := reg.Assessment(b.method, b.mode); err != nil {
		return nil, unknownMethod(ctx, b, err)
	}
	return n, nil
}

func buildRanking(ctx context.Context, b base, desc schema.Node) (Node, error) {
	n := &RankingNode{base: b, cache: inmemorystore.New[key, RankingResult]()}
	switch {
	case n.IsInput():
		if len(desc.Ranking) == 0 || !mcda.Finite(desc.Ranking) {
			return nil, calcerr.New(ctx, calcerr.Data, i18n.DataMissingInput, b.id)
		}
		n.input = desc.Ranking
	case b.method != "":
		return nil, unknownMethod(ctx, b, registry.ErrNotFound)
	}
	return n, nil
}
