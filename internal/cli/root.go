// Package cli implements the footballgen command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/football-asset-generator/internal/config"
	"github.com/preston-bernstein/football-asset-generator/internal/logging"
	"github.com/preston-bernstein/football-asset-generator/internal/metrics"
	"github.com/preston-bernstein/football-asset-generator/internal/telemetry"
)

const serviceName = "footballgen"

// app carries what every subcommand shares once configuration is loaded.
type app struct {
	version  string
	envFiles []string

	backendFlag     string
	projectRootFlag string
	logLevelFlag    string

	cfg      config.Config
	logger   *slog.Logger
	metrics  *metrics.Recorder
	shutdown []func(context.Context) error
}

// NewRootCommand builds the command tree. envFiles are passed to
// config.Load; none means the default .env.
func NewRootCommand(version string, envFiles ...string) *cobra.Command {
	a := &app{version: version, envFiles: envFiles}

	root := &cobra.Command{
		Use:           "footballgen",
		Short:         "Generate and import football team and player records",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&a.backendFlag, "backend", "", "Storage backend: fs|sqlite|memory (overrides STORAGE_BACKEND)")
	root.PersistentFlags().StringVar(&a.projectRootFlag, "project-root", "", "Project root holding Assets/ (overrides PROJECT_ROOT)")
	root.PersistentFlags().StringVar(&a.logLevelFlag, "log-level", "", "Log level: debug|info|warn|error (overrides LOG_LEVEL)")

	root.AddCommand(
		a.generateCmd(),
		a.importCmd(),
		a.spawnCmd(),
		a.listCmd(),
		a.serveCmd(),
	)
	return root
}

// run loads configuration and telemetry, calls fn, then flushes telemetry.
// withMetrics is false for commands that own their metrics pipeline.
func (a *app) run(cmd *cobra.Command, withMetrics bool, fn func(ctx context.Context) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.setup(ctx, cmd, withMetrics); err != nil {
		return err
	}
	defer func() {
		if cerr := a.teardown(context.WithoutCancel(ctx)); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	return fn(ctx)
}

func (a *app) setup(ctx context.Context, cmd *cobra.Command, withMetrics bool) error {
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return err
	}
	if a.backendFlag != "" {
		cfg.Storage.Backend = a.backendFlag
	}
	if a.projectRootFlag != "" {
		cfg.Storage.ProjectRoot = a.projectRootFlag
	}
	if a.logLevelFlag != "" {
		cfg.Log.Level = a.logLevelFlag
	}
	a.cfg = cfg

	a.logger = logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: a.version,
		Output:  cmd.ErrOrStderr(),
	})

	stopTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:       cfg.Tracing.Endpoint,
		Insecure:       cfg.Tracing.Insecure,
		ServiceName:    cfg.Metrics.ServiceName,
		ServiceVersion: a.version,
	})
	if err != nil {
		logging.Warn(a.logger, "tracing setup failed, continuing without spans", "err", err)
	} else {
		a.shutdown = append(a.shutdown, stopTracing)
	}

	a.metrics = metrics.NewRecorder()
	if !withMetrics {
		return nil
	}
	// One-shot commands have no scrape window, so metrics only leave the
	// process when an OTLP endpoint is configured.
	rec, _, stopMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled && cfg.Metrics.OtlpEndpoint != "",
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Warn(a.logger, "metrics setup failed, continuing without telemetry", "err", err)
		return nil
	}
	a.metrics = rec
	a.shutdown = append(a.shutdown, stopMetrics)
	return nil
}

func (a *app) teardown(ctx context.Context) error {
	var errs []error
	for i := len(a.shutdown) - 1; i >= 0; i-- {
		if err := a.shutdown[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.shutdown = nil
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("flush telemetry: %w", err)
	}
	return nil
}
