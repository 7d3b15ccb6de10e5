// Package main provides the CLI entrypoint for primecount.
// It loads configuration, initializes logging and metrics, and runs either a
// single count or the bench subcommand.
package main

import (
	"context"
	"os"
	"os/signal"
	"primecount/internal/config"
	"primecount/internal/counter"
	"primecount/pkg/logger"
	"primecount/pkg/metrics"
	"primecount/pkg/primes"
	"primecount/pkg/report"
	"primecount/pkg/serrors"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// boundAnnotation marks commands that take the upper bound as their only
// positional argument.
const boundAnnotation = "primecount/upper-bound"

// app carries the state shared by all commands once setup has run.
type app struct {
	cfg     *config.Config
	metrics *metrics.Metrics
	format  report.Format
	upper   int64
}

// setup parses the upper bound, loads configuration, applies flag overrides
// and initializes logging and metrics. It runs before every command. Argument
// errors are reported before any configuration error.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[boundAnnotation] != "" {
		upper, err := counter.ParseUpperBound(args)
		if err != nil {
			return err
		}
		a.upper = upper
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Read(configPath)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not load config")
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Format, _ = flags.GetString("output")
	}
	if flags.Changed("workers") {
		cfg.Counter.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("runs") {
		cfg.Bench.Runs, _ = flags.GetInt("runs")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		return serrors.Wrap(serrors.ErrMalformedArgument, err, "could not set up logger")
	}

	m, err := metrics.New()
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not set up metrics")
	}

	a.cfg = cfg
	a.metrics = m
	a.format = report.Format(cfg.Output.Format)

	return nil
}

// runContext returns the command context with a run-scoped logger attached.
func (a *app) runContext(cmd *cobra.Command) context.Context {
	return logger.WithFields(cmd.Context(),
		zap.String("run_id", uuid.NewString()),
		zap.String("command", cmd.Name()),
	)
}

func (a *app) counter() counter.Counter {
	opts := counter.NewOptions(a.cfg)
	opts.Recorder = a.metrics

	return counter.New(primes.TrialDivision{}, opts)
}

// finish exports metrics when a textfile path is configured and stops the
// meter provider.
func (a *app) finish(ctx context.Context) error {
	defer func() {
		if err := a.metrics.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not shut down metrics", zap.Error(err))
		}
	}()

	if path := a.cfg.Metrics.TextfilePath; path != "" {
		if err := a.metrics.WriteTextfile(path); err != nil {
			return serrors.Wrap(serrors.ErrInternal, err, "could not export metrics")
		}
		logger.Debug(ctx, "metrics written", zap.String("path", path))
	}

	return nil
}

func (a *app) count(cmd *cobra.Command, _ []string) error {
	ctx := a.runContext(cmd)
	res, err := a.counter().Count(ctx, a.upper)
	if err != nil {
		return err
	}

	if err := report.WriteCount(cmd.OutOrStdout(), a.format, res); err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not write result")
	}

	return a.finish(ctx)
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "primecount [flags] <upper-bound>",
		Short: "Counts primes in [100, upper-bound) by trial division",
		Long: `Counts the primes from 100 (inclusive) up to the given upper bound (exclusive)
and prints "nprimes = <count>". Pass negative bounds after "--".`,
		Args:              cobra.ArbitraryArgs,
		Annotations:       map[string]string{boundAnnotation: "true"},
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.count,
	}

	// pflag reports unknown flags (including negative numbers such as -5) as
	// plain errors; classify them so they map to the malformed exit status.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return serrors.Wrap(serrors.ErrMalformedArgument, err, "invalid flags")
	})

	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "Config file path (YAML); only the environment is read when empty")
	pf.StringP("output", "o", "text", "Output format: text or json (overrides OUTPUT_FORMAT)")
	pf.IntP("workers", "w", 1, "Number of chunks counted concurrently (overrides COUNTER_WORKERS)")

	rootCmd.AddCommand(benchCommand(a))

	return rootCmd
}

// execute runs cmd with args and returns the process exit status.
func execute(ctx context.Context, cmd *cobra.Command, args []string) int {
	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		logger.Error(ctx, "primecount failed", zap.Error(err))
	}
	logger.Sync(ctx)

	return serrors.ExitCode(err)
}

func main() {
	// errors raised before the configured logger exists still reach stderr
	_ = logger.Setup(logger.ProductionEnvironment, "")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := execute(ctx, newRootCommand(), os.Args[1:])
	stop()

	os.Exit(code) //nolint: gocritic
}
