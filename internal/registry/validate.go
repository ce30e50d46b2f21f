package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/decisiongrid/internal/ctxlog"
)

var knownSeries = map[Series]struct{}{
	SeriesWeights:     {},
	SeriesPreference:  {},
	SeriesRanking:     {},
	SeriesCorrelation: {},
}

// ValidateRegistry checks that every registered strategy is usable: no nil
// functions, plots accepting only known series, and the sentinel name left
// free.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for k, w := range r.weightings {
		if w.Fn == nil {
			errs = append(errs, fmt.Sprintf("weighting '%s' (%s): nil function", k.name, k.mode))
		}
		if k.name == Input {
			errs = append(errs, fmt.Sprintf("weighting '%s': name is reserved", k.name))
		}
	}
	for k, f := range r.assessments {
		if f == nil {
			errs = append(errs, fmt.Sprintf("assessment '%s' (%s): nil factory", k.name, k.mode))
		}
		if k.name == Input {
			errs = append(errs, fmt.Sprintf("assessment '%s': name is reserved", k.name))
		}
	}
	for name, p := range r.plots {
		if p.Render == nil {
			errs = append(errs, fmt.Sprintf("plot '%s': nil renderer", name))
		}
		if len(p.Accepts) == 0 {
			errs = append(errs, fmt.Sprintf("plot '%s': accepts no series", name))
		}
		for _, s := range p.Accepts {
			if _, ok := knownSeries[s]; !ok {
				errs = append(errs, fmt.Sprintf("plot '%s': unknown series '%s'", name, s))
			}
		}
	}
	for name, f := range r.correlations {
		if f == nil {
			errs = append(errs, fmt.Sprintf("correlation '%s': nil function", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Registry validated.",
		"weightings", len(r.weightings),
		"assessments", len(r.assessments),
		"correlations", len(r.correlations),
		"plots", len(r.plots),
	)
	return nil
}
