package domain

import "time"

// CountResult is the outcome of one scan over [Lower, Upper).
type CountResult struct {
	// Lower is the inclusive start of the scanned range.
	Lower int64
	// Upper is the exclusive end of the scanned range as supplied by the caller.
	Upper int64
	// Candidates is the number of integers checked. Zero when Upper <= Lower.
	Candidates int64
	// Primes is the number of candidates classified as prime.
	Primes int64
	// Elapsed is the wall time spent scanning.
	Elapsed time.Duration
}

// BenchSummary aggregates repeated counts over the same range.
type BenchSummary struct {
	// Result is the result of the last run; all runs agree on Primes.
	Result CountResult
	Runs   int
	Min    time.Duration
	Mean   time.Duration
	Max    time.Duration
}
