package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/specialistvlad/decisiongrid/internal/calcerr"
	"github.com/specialistvlad/decisiongrid/internal/ctxlog"
	"github.com/specialistvlad/decisiongrid/internal/graph"
	"github.com/specialistvlad/decisiongrid/internal/i18n"
	"github.com/specialistvlad/decisiongrid/internal/response"
	"github.com/specialistvlad/decisiongrid/internal/schema"
)

// Run evaluates every request found at cfg.RequestPath and writes one JSON
// document per request, in file order. A failed request produces an error
// document and does not stop the others; Run then reports how many failed.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "validate_only", cfg.ValidateOnly)

	files, err := loadRequests(ctx, cfg.RequestPath)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(a.outW)
	failed := 0
	for _, f := range files {
		doc, ok := a.handle(ctx, f, cfg.ValidateOnly)
		if !ok {
			failed++
		}
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to write response for %s: %w", f.path, err)
		}
	}

	if path := a.settings.Metrics.Textfile; path != "" {
		if err := prometheus.WriteToTextfile(path, a.gatherer); err != nil {
			return fmt.Errorf("failed to write metrics to %s: %w", path, err)
		}
		a.logger.Debug("Metrics written.", "path", path)
	}

	a.logger.Info("Requests processed.", "total", len(files), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d requests failed", failed, len(files))
	}
	return nil
}

// handle evaluates one request and returns the document to write and
// whether it succeeded.
func (a *App) handle(ctx context.Context, f requestFile, validateOnly bool) (any, bool) {
	ctx = ctxlog.With(ctx, "request_id", uuid.NewString(), "file", f.path)
	logger := ctxlog.FromContext(ctx)
	if f.err != nil {
		logger.Error("Request could not be decoded.", "error", f.err)
		return response.FailureOf(f.err), false
	}

	ctx = i18n.WithLocale(ctx, i18n.Match(a.locale(f.request)))
	records, err := a.Calculate(ctx, f.request, validateOnly)
	if err != nil {
		logger.Warn("Request failed.", "error", err)
		return response.FailureOf(err), false
	}
	return response.Envelope{Response: records}, true
}

// Calculate evaluates one decoded request. With validateOnly the graph is
// built and its topology checked, and no records are returned.
func (a *App) Calculate(ctx context.Context, req *schema.Request, validateOnly bool) ([]response.Record, error) {
	if err := schema.ValidateRequest(req); err != nil {
		return nil, calcerr.Wrap(ctx, calcerr.Structure, i18n.StructureEmptyRequest, err)
	}
	g, err := graph.New(ctx, req.Data, a.registry,
		graph.WithPrecision(a.settings.Engine.Precision),
		graph.WithMetrics(a.metrics),
	)
	if err != nil {
		return nil, err
	}
	if validateOnly {
		if err := g.Validate(ctx); err != nil {
			return nil, err
		}
		return []response.Record{}, nil
	}
	return g.Calculate(ctx)
}

func (a *App) locale(req *schema.Request) string {
	if req.Locale != "" {
		return req.Locale
	}
	return a.settings.Engine.DefaultLocale
}
