package main

import (
	"primecount/internal/counter"
	"primecount/pkg/logger"
	"primecount/pkg/profile"
	"primecount/pkg/report"
	"primecount/pkg/serrors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// benchCommand constructs the 'bench' subcommand that repeats a count and
// reports the minimum, mean and maximum elapsed time.
func benchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "bench [flags] <upper-bound>",
		Short:       "Repeats the count and reports elapsed times",
		Args:        cobra.ArbitraryArgs,
		Annotations: map[string]string{boundAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.runContext(cmd)

			if path, _ := cmd.Flags().GetString("cpuprofile"); path != "" {
				stop, err := profile.StartCPU(path)
				if err != nil {
					return serrors.Wrap(serrors.ErrInternal, err, "could not start profiling")
				}
				defer func() {
					if err := stop(); err != nil {
						logger.Warn(ctx, "could not stop profiling", zap.Error(err))
					}
				}()
			}

			summary, err := counter.Bench(ctx, a.counter(), a.upper, a.cfg.Bench.Runs)
			if err != nil {
				return err
			}

			if err := report.WriteBench(cmd.OutOrStdout(), a.format, summary); err != nil {
				return serrors.Wrap(serrors.ErrInternal, err, "could not write bench summary")
			}

			return a.finish(ctx)
		},
	}

	cmd.Flags().IntP("runs", "n", 5, "Number of repeated counts (overrides BENCH_RUNS)")
	cmd.Flags().String("cpuprofile", "", "Write a CPU profile of all runs to this file")

	return cmd
}
