// Package counter scans an integer range and counts the candidates a Checker
// classifies as prime.
package counter

import (
	"context"
	"primecount/internal/config"
	"primecount/pkg/domain"
	"primecount/pkg/logger"
	"primecount/pkg/serrors"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultLowerBound is the inclusive start of the scanned range.
const DefaultLowerBound int64 = 100

// cancelCheckInterval is how many candidates are scanned between context checks.
const cancelCheckInterval = 1 << 16

// Options configure the range and how it is scanned.
type Options struct {
	// LowerBound is the inclusive start of the scanned range. Negative values
	// are raised to 0; there are no primes below 2.
	LowerBound int64
	// Workers is the number of contiguous chunks the range is split into,
	// at most config.MaxWorkers. With 1 the range is scanned by a single
	// synchronous loop.
	Workers int
	// Recorder, when set, receives every finished count.
	Recorder Recorder
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		LowerBound: cfg.Counter.LowerBound,
		Workers:    cfg.Counter.Workers,
	}
}

type counter struct {
	options Options
	checker Checker
}

// New creates a Counter that classifies candidates with checker. Out of range
// options are clamped.
func New(checker Checker, options Options) Counter {
	options.LowerBound = max(options.LowerBound, 0)
	options.Workers = min(max(options.Workers, 1), config.MaxWorkers)

	return &counter{
		options: options,
		checker: checker,
	}
}

// Count scans [LowerBound, upper). An upper bound at or below LowerBound is an
// empty range with zero primes. If ctx is canceled mid-scan, no partial result
// is returned.
func (c *counter) Count(ctx context.Context, upper int64) (domain.CountResult, error) {
	res := domain.CountResult{Lower: c.options.LowerBound, Upper: upper}
	if upper > res.Lower {
		res.Candidates = upper - res.Lower
	}

	start := time.Now()
	var (
		primes int64
		err    error
	)
	if c.options.Workers == 1 || res.Candidates < int64(c.options.Workers) {
		primes, err = c.scan(ctx, res.Lower, upper)
	} else {
		primes, err = c.scanChunks(ctx, res.Lower, upper)
	}
	if err != nil {
		return domain.CountResult{}, err
	}
	res.Primes = primes
	res.Elapsed = time.Since(start)

	logger.Debug(ctx, "counted primes",
		zap.Int64("lower", res.Lower),
		zap.Int64("upper", res.Upper),
		zap.Int64("nprimes", res.Primes),
		zap.Duration("elapsed", res.Elapsed),
	)

	if c.options.Recorder != nil {
		c.options.Recorder.RecordCount(ctx, res)
	}

	return res, nil
}

func (c *counter) scan(ctx context.Context, from, to int64) (int64, error) {
	var p int64
	for n := from; n < to; n++ {
		if (n-from)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, serrors.Wrap(serrors.ErrCanceled, err, "count interrupted at %d", n)
			}
		}
		if c.checker.IsPrime(n) {
			p++
		}
	}

	return p, nil
}

// scanChunks splits [from, to) into Workers contiguous chunks, the last one
// taking the remainder, and sums their counts. At most GOMAXPROCS chunks are
// scanned at once.
func (c *counter) scanChunks(ctx context.Context, from, to int64) (int64, error) {
	workers := int64(c.options.Workers)
	size := (to - from) / workers
	results := make([]int64, workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range workers {
		start := from + i*size
		end := start + size
		if i == workers-1 {
			end = to
		}

		g.Go(func() error {
			p, err := c.scan(gctx, start, end)
			if err != nil {
				return err
			}
			results[i] = p

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, p := range results {
		total += p
	}

	return total, nil
}
