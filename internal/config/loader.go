package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// fileRoot mirrors the top-level blocks of a settings file. Pointer fields
// tell an omitted attribute apart from a zero value. Unknown blocks and
// attributes are decode errors.
type fileRoot struct {
	Engine  *engineBlock  `hcl:"engine,block"`
	Log     *logBlock     `hcl:"log,block"`
	Metrics *metricsBlock `hcl:"metrics,block"`
}

type engineBlock struct {
	Precision     *int    `hcl:"precision,optional"`
	DefaultLocale *string `hcl:"default_locale,optional"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

type metricsBlock struct {
	Textfile *string `hcl:"textfile,optional"`
}

// HCLLoader reads HCL settings files.
type HCLLoader struct{}

// NewLoader creates an HCL settings loader.
func NewLoader() *HCLLoader {
	return &HCLLoader{}
}

// Load parses path and applies it over the defaults.
func (l *HCLLoader) Load(path string) (*Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}
	return decode(file.Body, path)
}

// Parse decodes settings from src; filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Settings, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", filename, diags)
	}
	return decode(file.Body, filename)
}

func decode(body hcl.Body, filename string) (*Settings, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", filename, diags)
	}

	s := Default()
	if e := root.Engine; e != nil {
		set(&s.Engine.Precision, e.Precision)
		set(&s.Engine.DefaultLocale, e.DefaultLocale)
	}
	if lg := root.Log; lg != nil {
		set(&s.Log.Level, lg.Level)
		set(&s.Log.Format, lg.Format)
	}
	if m := root.Metrics; m != nil {
		set(&s.Metrics.Textfile, m.Textfile)
	}
	return s, nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
