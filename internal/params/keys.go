package params

import (
	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"github.com/zclconf/go-cty/cty"
)

type kind int

const (
	kindNumber kind = iota
	kindBool
	kindVector
	kindMatrix
	kindPairs
	kindNormalization
	kindDistance
	kindDefuzzify
	kindPreference
	kindExpert
)

// Keyword names with special handling.
const (
	KeyMatrixID = "matrix_id"
	KeyExpert   = "expert_function"
	KeyESP      = "esp"
	KeyBounds   = "bounds"
	KeyV        = "v"
)

// Expert function that needs a user reference point.
const ESPExpert = "esp_expert"

var keysByMode = map[mcda.Mode]map[string]kind{
	mcda.Crisp: {
		"normalization_function": kindNormalization,
		"preference_function":    kindPreference,
		KeyExpert:                kindExpert,
		"cvalues":                kindMatrix,
		"ref_point":              kindVector,
		KeyESP:                   kindVector,
		KeyBounds:                kindPairs,
		"ref_ideal":              kindPairs,
		"lam":                    kindNumber,
		"alpha":                  kindNumber,
		KeyV:                     kindNumber,
		"sPROBID":                kindBool,
	},
	mcda.Fuzzy: {
		"normalization": kindNormalization,
		"distance":      kindDistance,
		"distance_1":    kindDistance,
		"distance_2":    kindDistance,
		"defuzzify":     kindDefuzzify,
		KeyV:            kindNumber,
	},
}

// callTime lists, per method and mode, the keys passed when the method is
// invoked rather than when it is constructed.
var callTime = map[string]map[mcda.Mode][]string{
	"VIKOR":  {mcda.Fuzzy: {KeyV}},
	"SPOTIS": {mcda.Crisp: {KeyBounds}},
}

func (k kind) ctyType() cty.Type {
	switch k {
	case kindNumber:
		return cty.Number
	case kindBool:
		return cty.Bool
	case kindVector:
		return cty.List(cty.Number)
	case kindMatrix, kindPairs:
		return cty.List(cty.List(cty.Number))
	default:
		return cty.String
	}
}
