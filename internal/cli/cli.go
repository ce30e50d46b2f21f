package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/specialistvlad/decisiongrid/internal/app"
	"github.com/specialistvlad/decisiongrid/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

type flags struct {
	settingsPath    string
	logFormat       string
	logLevel        string
	locale          string
	precision       int
	metricsTextfile string
}

// NewRootCommand builds the command tree. Responses are written to outW,
// logs to errW.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "decisiongrid",
		Short: "Evaluate multi-criteria decision graphs",
		Long: `decisiongrid evaluates decision graphs built from matrix, weights,
method, ranking, correlation and visualization blocks and prints the
per-block results as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(errW)

	pf := root.PersistentFlags()
	pf.StringVarP(&f.settingsPath, "config", "c", "", "Path to an HCL settings file.")
	pf.StringVar(&f.logFormat, "log-format", "", "Log output format. Options: 'text' or 'json'.")
	pf.StringVar(&f.logLevel, "log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.StringVar(&f.locale, "locale", "", "Locale for requests that do not name one. Options: 'en', 'pl'.")
	pf.IntVar(&f.precision, "precision", 0, "Decimal digits results are rounded to.")
	pf.StringVar(&f.metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file after the run.")

	root.AddCommand(
		&cobra.Command{
			Use:   "calculate PATH",
			Short: "Evaluate a request file or every request in a directory",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, f, args[0], false, outW, errW)
			},
		},
		&cobra.Command{
			Use:   "validate PATH",
			Short: "Check requests for malformed blocks and illegal connections",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, f, args[0], true, outW, errW)
			},
		},
	)
	return root
}

// Execute runs the command line. Usage errors are returned as an ExitError
// with code 2 and failed runs with code 1.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return &ExitError{Code: 2, Message: err.Error()}
}

func run(cmd *cobra.Command, f *flags, path string, validateOnly bool, outW, errW io.Writer) error {
	cfg, err := app.NewConfig(app.Config{
		RequestPath:     path,
		SettingsPath:    f.settingsPath,
		ValidateOnly:    validateOnly,
		LogFormat:       strings.ToLower(f.logFormat),
		LogLevel:        strings.ToLower(f.logLevel),
		Locale:          f.locale,
		MetricsTextfile: f.metricsTextfile,
	})
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if cmd.Flags().Changed("precision") {
		cfg.Precision = &f.precision
	}

	settings, err := cfg.Settings(config.NewLoader())
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	a := app.NewApp(outW, errW, settings)
	if err := a.Run(cmd.Context(), cfg); err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("run failed: %v", err)}
	}
	return nil
}
