package params

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

var errPairShape = errors.New("every bound must be a [min, max] pair")

// decode converts a raw JSON fragment to want and stores it in target.
func decode(raw json.RawMessage, want cty.Type, target any) error {
	implied, err := ctyjson.ImpliedType(raw)
	if err != nil {
		return fmt.Errorf("failed to infer type: %w", err)
	}
	val, err := ctyjson.Unmarshal(raw, implied)
	if err != nil {
		return fmt.Errorf("failed to parse value: %w", err)
	}
	converted, err := convert.Convert(val, want)
	if err != nil {
		return fmt.Errorf("cannot use %s as %s: %w", implied.FriendlyName(), want.FriendlyName(), err)
	}
	if converted.IsNull() {
		return fmt.Errorf("value is null")
	}
	return gocty.FromCtyValue(converted, target)
}

// value decodes raw according to k. Selectors come back as their name.
func (k kind) value(raw json.RawMessage) (any, error) {
	switch k {
	case kindNumber:
		var f float64
		err := decode(raw, k.ctyType(), &f)
		return f, err
	case kindBool:
		var b bool
		err := decode(raw, k.ctyType(), &b)
		return b, err
	case kindVector:
		var v []float64
		err := decode(raw, k.ctyType(), &v)
		return v, err
	case kindMatrix:
		var m [][]float64
		err := decode(raw, k.ctyType(), &m)
		return m, err
	case kindPairs:
		var m [][]float64
		if err := decode(raw, k.ctyType(), &m); err != nil {
			return nil, err
		}
		pairs := make([][2]float64, len(m))
		for i, row := range m {
			if len(row) != 2 {
				return nil, errPairShape
			}
			pairs[i] = [2]float64{row[0], row[1]}
		}
		return pairs, nil
	default:
		var s string
		err := decode(raw, k.ctyType(), &s)
		return s, err
	}
}
