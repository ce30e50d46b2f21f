package params

import (
	"context"
	"sort"

	"github.com/specialistvlad/decisiongrid/internal/calcerr"
	"github.com/specialistvlad/decisiongrid/internal/ctxlog"
	"github.com/specialistvlad/decisiongrid/internal/i18n"
	"github.com/specialistvlad/decisiongrid/internal/mcda"
	"github.com/specialistvlad/decisiongrid/internal/registry"
	"github.com/specialistvlad/decisiongrid/internal/schema"
)

// Request is everything a resolution may depend on.
type Request struct {
	Records  []schema.Kwargs
	Mode     mcda.Mode
	Method   string
	MatrixID int
	Matrix   mcda.Matrix
	Types    []int
	Weights  mcda.Vector
}

// Resolved holds typed arguments. Raw keeps the decoded, user-visible values
// (selector names instead of functions) for the response.
type Resolved struct {
	Init registry.Params
	Call registry.Params
	Raw  map[string]any
}

// Resolver resolves keyword records against a registry.
type Resolver struct {
	reg *registry.Registry
}

// New creates a resolver backed by reg.
func New(reg *registry.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Resolve finds the record for req.MatrixID and converts it. A missing record
// yields empty parameter sets, leaving the method on its defaults.
func (r *Resolver) Resolve(ctx context.Context, req Request) (Resolved, error) {
	out := Resolved{Init: registry.Params{}, Call: registry.Params{}, Raw: map[string]any{}}

	record := findRecord(req.Records, req.MatrixID)
	if record == nil {
		r.applyDefaults(req, out)
		return out, nil
	}

	allowed := keysByMode[req.Mode]
	keys := make([]string, 0, len(record))
	for k := range record {
		if k != KeyMatrixID {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		k, ok := allowed[key]
		if !ok {
			return Resolved{}, calcerr.New(ctx, calcerr.Parameter, i18n.ParameterUnknown, key, req.Method)
		}
		v, err := k.value(record[key])
		if err != nil {
			return Resolved{}, calcerr.Wrap(ctx, calcerr.Parameter, i18n.ParameterValue, err, key, req.Method)
		}
		out.Raw[key] = v

		typed, err := r.typed(ctx, req, record, key, k, v)
		if err != nil {
			return Resolved{}, err
		}
		if typed != nil {
			out.Init[key] = typed
		}
	}

	r.applyDefaults(req, out)
	split(req.Method, req.Mode, out)
	ctxlog.FromContext(ctx).Debug("Parameters resolved.",
		"method", req.Method, "matrix_id", req.MatrixID,
		"init", len(out.Init), "call", len(out.Call))
	return out, nil
}

// typed turns a decoded value into what the method receives. It returns nil
// for values that are consumed by another key.
func (r *Resolver) typed(ctx context.Context, req Request, record schema.Kwargs, key string, k kind, v any) (any, error) {
	name, _ := v.(string)
	fail := func(err error) error {
		return calcerr.Wrap(ctx, calcerr.Parameter, i18n.ParameterFunction, err, name, key, req.Method)
	}

	switch k {
	case kindNormalization:
		f, err := r.reg.Normalization(name, req.Mode)
		if err != nil {
			return nil, fail(err)
		}
		return f, nil
	case kindDistance:
		f, err := r.reg.Distance(name)
		if err != nil {
			return nil, fail(err)
		}
		return f, nil
	case kindDefuzzify:
		f, err := r.reg.Defuzzification(name)
		if err != nil {
			return nil, fail(err)
		}
		return f, nil
	case kindPreference:
		f, err := r.reg.PreferenceFunction(name)
		if err != nil {
			return nil, fail(err)
		}
		return f, nil
	case kindExpert:
		return r.expert(ctx, req, record, name)
	}

	if key == KeyESP && record[KeyExpert] != nil {
		return nil, nil
	}
	return v, nil
}

func (r *Resolver) expert(ctx context.Context, req Request, record schema.Kwargs, name string) (any, error) {
	factory, err := r.reg.Expert(name)
	if err != nil {
		return nil, calcerr.Wrap(ctx, calcerr.Parameter, i18n.ParameterFunction, err, name, KeyExpert, req.Method)
	}

	expReq := registry.ExpertRequest{
		Weights: req.Weights,
		Types:   req.Types,
		Bounds:  req.Matrix.Bounds(),
	}
	if raw, ok := record[KeyESP]; ok {
		v, err := kindVector.value(raw)
		if err != nil {
			return nil, calcerr.Wrap(ctx, calcerr.Parameter, i18n.ParameterValue, err, KeyESP, req.Method)
		}
		expReq.ESP = v.([]float64)
	} else if name == ESPExpert {
		return nil, calcerr.New(ctx, calcerr.Parameter, i18n.ParameterESP, req.Method)
	}

	fn, err := factory(expReq)
	if err != nil {
		return nil, calcerr.Wrap(ctx, calcerr.Parameter, i18n.ParameterValue, err, KeyExpert, req.Method)
	}
	return fn, nil
}

// applyDefaults fills arguments a method cannot run without. SPOTIS needs
// criteria bounds; when none are given they are taken from the matrix.
func (r *Resolver) applyDefaults(req Request, out Resolved) {
	if req.Method == "SPOTIS" && req.Mode == mcda.Crisp && !out.Init.Has(KeyBounds) && req.Matrix.Cols() > 0 {
		out.Init[KeyBounds] = req.Matrix.Bounds()
		split(req.Method, req.Mode, out)
	}
}

func split(method string, mode mcda.Mode, out Resolved) {
	for _, key := range callTime[method][mode] {
		if v, ok := out.Init[key]; ok {
			out.Call[key] = v
			delete(out.Init, key)
		}
	}
}

func findRecord(records []schema.Kwargs, matrixID int) schema.Kwargs {
	for _, rec := range records {
		if id, ok := rec.MatrixID(); ok && id == matrixID {
			return rec
		}
	}
	return nil
}
