package counter

import (
	"context"
	"fmt"
	"primecount/pkg/domain"
	"primecount/pkg/logger"
	"primecount/pkg/serrors"
	"time"

	"go.uber.org/zap"
)

// Bench counts the same range runs times and summarizes the elapsed times.
// Every run must report the same number of primes.
func Bench(ctx context.Context, c Counter, upper int64, runs int) (domain.BenchSummary, error) {
	if runs < 1 {
		return domain.BenchSummary{}, serrors.With(serrors.ErrMalformedArgument, "runs must be at least 1, got %d", runs)
	}

	summary := domain.BenchSummary{Runs: runs}
	var total time.Duration
	for i := range runs {
		res, err := c.Count(ctx, upper)
		if err != nil {
			return domain.BenchSummary{}, fmt.Errorf("could not complete run %d: %w", i+1, err)
		}
		if i > 0 && res.Primes != summary.Result.Primes {
			return domain.BenchSummary{}, serrors.With(serrors.ErrInternal,
				"run %d counted %d primes, previous runs counted %d", i+1, res.Primes, summary.Result.Primes)
		}

		if i == 0 || res.Elapsed < summary.Min {
			summary.Min = res.Elapsed
		}
		summary.Max = max(summary.Max, res.Elapsed)
		total += res.Elapsed
		summary.Result = res

		logger.Info(ctx, "bench run finished",
			zap.Int("run", i+1),
			zap.Int64("nprimes", res.Primes),
			zap.Duration("elapsed", res.Elapsed),
		)
	}
	summary.Mean = total / time.Duration(runs)

	return summary, nil
}
