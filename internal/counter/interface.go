package counter

import (
	"context"
	"primecount/pkg/domain"
)

//go:generate mockgen -package mockcounter -source=interface.go -destination=mock/mockcounter.go *

// Checker classifies a single candidate.
type Checker interface {
	IsPrime(n int64) bool
}

// Recorder observes finished counts.
type Recorder interface {
	RecordCount(ctx context.Context, res domain.CountResult)
}

// Counter counts primes from its configured lower bound up to an exclusive
// upper bound.
type Counter interface {
	Count(ctx context.Context, upper int64) (domain.CountResult, error)
}
