package node

import (
	"context"

	"github.com/specialistvlad/decisiongrid/internal/calcerr"
	"github.com/specialistvlad/decisiongrid/internal/i18n"
	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"github.com/specialistvlad/decisiongrid/internal/params"
	"github.com/specialistvlad/decisiongrid/internal/registry"
	"github.com/specialistvlad/decisiongrid/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// Kind is the block type discriminant.
type Kind string

const (
	KindMatrix        Kind = "matrix"
	KindWeights       Kind = "weights"
	KindMethod        Kind = "method"
	KindRanking       Kind = "ranking"
	KindCorrelation   Kind = "correlation"
	KindVisualization Kind = "visualization"
)

// DefaultPrecision is the number of decimal digits results are rounded to.
const DefaultPrecision = 3

// Node is one block of a decision graph.
type Node interface {
	ID() int
	Kind() Kind
	Mode() mcda.Mode
	// Method is the upper-cased method, coefficient or plot name. It is
	// empty for matrices and for rankings without a method.
	Method() string
	// From lists the ids of blocks with an edge into this one.
	From() []int
	// To lists the ids of blocks this one has an edge into.
	To() []int
	// Position returns the editor layout coordinates.
	Position() (x, y float64)

	sealed()
}

type base struct {
	id     int
	kind   Kind
	mode   mcda.Mode
	method string
	from   []int
	to     []int
	x, y   float64
}

func (b *base) ID() int                  { return b.id }
func (b *base) Kind() Kind               { return b.kind }
func (b *base) Mode() mcda.Mode          { return b.mode }
func (b *base) Method() string           { return b.method }
func (b *base) From() []int              { return b.from }
func (b *base) To() []int                { return b.to }
func (b *base) Position() (x, y float64) { return b.x, b.y }
func (b *base) sealed()                  {}

// IsInput reports whether the block carries user-supplied values.
func (b *base) IsInput() bool { return b.method == registry.Input }

// checkMode rejects a block whose mode differs from the matrix it reads.
// User-supplied crisp weights are the one block allowed to feed a fuzzy
// matrix.
func (b *base) checkMode(ctx context.Context, m *MatrixNode) error {
	if b.mode == m.Mode() {
		return nil
	}
	if b.kind == KindWeights && b.IsInput() && b.mode == mcda.Crisp {
		return nil
	}
	return calcerr.New(ctx, calcerr.Data, i18n.DataModeMismatch, b.id, b.mode, m.ID(), m.Mode())
}

// Env is what calculating blocks need from the engine.
type Env struct {
	Registry  *registry.Registry
	Params    *params.Resolver
	Precision int
	Metrics   *telemetry.Metrics
}

// NewEnv builds an environment with a resolver over reg and the default
// precision.
func NewEnv(reg *registry.Registry, metrics *telemetry.Metrics) *Env {
	return &Env{
		Registry:  reg,
		Params:    params.New(reg),
		Precision: DefaultPrecision,
		Metrics:   metrics,
	}
}

// key identifies one cached result. anchored is false for results computed
// without a matrix.
type key struct {
	matrix   int
	weights  int
	method   int
	anchored bool
}

func matrixKey(id int) key { return key{matrix: id, anchored: true} }

var unanchored = key{}

func (k key) matrixRef() *int {
	if !k.anchored {
		return nil
	}
	id := k.matrix
	return &id
}

func intRef(id int) *int { return &id }

// matches reports whether a result tagged with ref belongs to the matrix
// group selected by matrixID. A nil matrixID selects every result, and
// results computed without a matrix join every group.
func matches(ref, matrixID *int) bool {
	if matrixID == nil || ref == nil {
		return true
	}
	return *ref == *matrixID
}

func (e *Env) record(kind Kind, hit bool) {
	if hit {
		e.Metrics.CacheHit(string(kind))
		return
	}
	e.Metrics.Calculated(string(kind))
}

// traced runs fn inside a span named after the block kind.
func traced[T any](ctx context.Context, b *base, fn func(context.Context) (T, error)) (T, error) {
	ctx, span := telemetry.StartSpan(ctx, "node."+string(b.kind),
		attribute.Int("node_id", b.id), attribute.String("method", b.method))
	v, err := fn(ctx)
	telemetry.EndSpan(span, err)
	return v, err
}
