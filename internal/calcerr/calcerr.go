// Package calcerr defines the single error kind raised while building or
// evaluating a decision graph. Every error carries a category, a catalog key
// and a message already rendered in the request locale.
//
// Callers match categories with errors.Is:
//
//	if errors.Is(err, calcerr.ErrStructure) { ... }
//
// Errors returned by algorithm collaborators are kept as the cause and stay
// reachable through errors.Is and errors.As.
package calcerr

import (
	"context"
	"errors"

	"github.com/specialistvlad/decisiongrid/internal/i18n"
)

// Category groups errors by what the user has to fix.
type Category int

const (
	// Structure covers illegal edges, missing connections and unresolved ids.
	Structure Category = iota + 1
	// Data covers malformed matrices, criteria types and user vectors.
	Data
	// Method covers unknown names and malformed algorithm results.
	Method
	// Parameter covers keyword arguments that cannot be resolved.
	Parameter
	// Aggregation covers sibling results that cannot be combined.
	Aggregation
)

var (
	ErrStructure   = errors.New("structure error")
	ErrData        = errors.New("data error")
	ErrMethod      = errors.New("method error")
	ErrParameter   = errors.New("parameter error")
	ErrAggregation = errors.New("aggregation error")
)

var sentinels = map[Category]error{
	Structure:   ErrStructure,
	Data:        ErrData,
	Method:      ErrMethod,
	Parameter:   ErrParameter,
	Aggregation: ErrAggregation,
}

func (c Category) String() string {
	if err, ok := sentinels[c]; ok {
		return err.Error()
	}
	return "unknown error"
}

// Error is a localized, recoverable calculation failure.
type Error struct {
	Category Category
	Key      string
	Message  string
	cause    error
}

// New renders the catalog message for key in the locale carried by ctx.
func New(ctx context.Context, cat Category, key string, args ...any) *Error {
	return &Error{
		Category: cat,
		Key:      key,
		Message:  i18n.Sprintf(ctx, key, args...),
	}
}

// Wrap is New with an underlying cause.
func Wrap(ctx context.Context, cat Category, key string, cause error, args ...any) *Error {
	e := New(ctx, cat, key, args...)
	e.cause = cause
	return e
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes both the category sentinel and the cause.
func (e *Error) Unwrap() []error {
	errs := []error{sentinels[e.Category]}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// CategoryOf returns the category of the first *Error in err's tree, or 0.
func CategoryOf(err error) Category {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Category
	}
	return 0
}
