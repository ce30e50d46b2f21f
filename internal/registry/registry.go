package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/decisiongrid/internal/mcda"
)

// Input is the sentinel method name for user-supplied values.
const Input = "INPUT"

var (
	ErrNotFound        = errors.New("strategy not found")
	ErrUnsupportedMode = errors.New("strategy does not support data mode")
)

// Module is the interface that all strategy modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

type modeKey struct {
	name string
	mode mcda.Mode
}

// Registry holds all registered strategies for a single application
// instance.
type Registry struct {
	weightings     map[modeKey]Weighting
	assessments    map[modeKey]AssessmentFactory
	normalizations map[modeKey]NormalizationFunc
	correlations   map[string]CorrelationFunc
	distances      map[string]DistanceFunc
	defuzzifiers   map[string]DefuzzifyFunc
	preferences    map[string]PreferenceFunc
	experts        map[string]ExpertFactory
	plots          map[string]Plot
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		weightings:     make(map[modeKey]Weighting),
		assessments:    make(map[modeKey]AssessmentFactory),
		normalizations: make(map[modeKey]NormalizationFunc),
		correlations:   make(map[string]CorrelationFunc),
		distances:      make(map[string]DistanceFunc),
		defuzzifiers:   make(map[string]DefuzzifyFunc),
		preferences:    make(map[string]PreferenceFunc),
		experts:        make(map[string]ExpertFactory),
		plots:          make(map[string]Plot),
	}
}

// NewWith creates a Registry populated by the given modules.
func NewWith(modules ...Module) *Registry {
	r := New()
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

func register[K comparable, V any](m map[K]V, k K, v V, what string, name string) {
	if _, exists := m[k]; exists {
		panic(fmt.Sprintf("%s with name '%s' already registered", what, name))
	}
	slog.Debug("Registering strategy.", "kind", what, "name", name)
	m[k] = v
}

// RegisterWeighting registers a weighting strategy for one data mode.
func (r *Registry) RegisterWeighting(name string, mode mcda.Mode, w Weighting) {
	register(r.weightings, modeKey{name, mode}, w, "weighting "+mode.String(), name)
}

// RegisterAssessment registers an assessment method for one data mode.
func (r *Registry) RegisterAssessment(name string, mode mcda.Mode, f AssessmentFactory) {
	register(r.assessments, modeKey{name, mode}, f, "assessment "+mode.String(), name)
}

// RegisterNormalization registers a normalization for one data mode.
func (r *Registry) RegisterNormalization(name string, mode mcda.Mode, f NormalizationFunc) {
	register(r.normalizations, modeKey{name, mode}, f, "normalization "+mode.String(), name)
}

func (r *Registry) RegisterCorrelation(name string, f CorrelationFunc) {
	register(r.correlations, name, f, "correlation", name)
}

func (r *Registry) RegisterDistance(name string, f DistanceFunc) {
	register(r.distances, name, f, "distance", name)
}

func (r *Registry) RegisterDefuzzification(name string, f DefuzzifyFunc) {
	register(r.defuzzifiers, name, f, "defuzzification", name)
}

func (r *Registry) RegisterPreferenceFunction(name string, f PreferenceFunc) {
	register(r.preferences, name, f, "preference function", name)
}

func (r *Registry) RegisterExpert(name string, f ExpertFactory) {
	register(r.experts, name, f, "expert function", name)
}

func (r *Registry) RegisterPlot(name string, p Plot) {
	register(r.plots, name, p, "plot", name)
}

// lookupMode distinguishes an unknown name from a name registered only for
// the other data mode.
func lookupMode[V any](m map[modeKey]V, name string, mode mcda.Mode) (V, error) {
	if v, ok := m[modeKey{name, mode}]; ok {
		return v, nil
	}
	var zero V
	for k := range m {
		if k.name == name {
			return zero, fmt.Errorf("%w: %s (%s)", ErrUnsupportedMode, name, mode)
		}
	}
	return zero, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func lookup[V any](m map[string]V, name string) (V, error) {
	if v, ok := m[name]; ok {
		return v, nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (r *Registry) Weighting(name string, mode mcda.Mode) (Weighting, error) {
	return lookupMode(r.weightings, name, mode)
}

func (r *Registry) Assessment(name string, mode mcda.Mode) (AssessmentFactory, error) {
	return lookupMode(r.assessments, name, mode)
}

func (r *Registry) Normalization(name string, mode mcda.Mode) (NormalizationFunc, error) {
	return lookupMode(r.normalizations, name, mode)
}

func (r *Registry) Correlation(name string) (CorrelationFunc, error) {
	return lookup(r.correlations, name)
}

func (r *Registry) Distance(name string) (DistanceFunc, error) {
	return lookup(r.distances, name)
}

func (r *Registry) Defuzzification(name string) (DefuzzifyFunc, error) {
	return lookup(r.defuzzifiers, name)
}

func (r *Registry) PreferenceFunction(name string) (PreferenceFunc, error) {
	return lookup(r.preferences, name)
}

func (r *Registry) Expert(name string) (ExpertFactory, error) {
	return lookup(r.experts, name)
}

func (r *Registry) Plot(name string) (Plot, error) {
	return lookup(r.plots, name)
}

// Names lists the registered names per strategy kind, sorted, for logging
// and the CLI.
func (r *Registry) Names() map[string][]string {
	out := map[string][]string{
		"weighting":   modeNames(r.weightings),
		"assessment":  modeNames(r.assessments),
		"correlation": names(r.correlations),
		"plot":        names(r.plots),
	}
	return out
}

func modeNames[V any](m map[modeKey]V) []string {
	seen := make(map[string]struct{}, len(m))
	for k := range m {
		seen[k.name] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func names[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for n := range m {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
