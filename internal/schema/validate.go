package schema

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// FieldError names the first offending field of a block.
type FieldError struct {
	ID    int
	Field string
	Tag   string
}

func (e *FieldError) Error() string {
	return "block " + e.Field + " failed '" + e.Tag + "' validation"
}

// ValidateRequest checks request-level constraints: at least one block.
func ValidateRequest(r *Request) error {
	return validate.Struct(r)
}

// ValidateNode checks field-level constraints of a normalized block.
func ValidateNode(n Node) error {
	err := validate.Struct(n)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &FieldError{ID: n.ID, Field: jsonName(verrs[0].Field()), Tag: verrs[0].Tag()}
	}
	return err
}

var jsonNames = map[string]string{
	"ID":            "id",
	"NodeType":      "node_type",
	"Extension":     "extension",
	"Matrix":        "matrix",
	"CriteriaTypes": "criteria_types",
	"Method":        "method",
}

func jsonName(field string) string {
	if n, ok := jsonNames[field]; ok {
		return n
	}
	return field
}
