package counter

import (
	"errors"
	"primecount/pkg/serrors"
	"strconv"
)

// ParseUpperBound extracts the upper bound from the positional arguments.
// Exactly one base-10 integer that fits int64 is accepted; zero and negative
// values are valid and describe an empty range.
func ParseUpperBound(args []string) (int64, error) {
	switch len(args) {
	case 0:
		return 0, serrors.With(serrors.ErrMissingArgument, "missing upper bound argument")
	case 1:
	default:
		return 0, serrors.With(serrors.ErrMalformedArgument, "expected a single upper bound, got %d arguments", len(args))
	}

	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, serrors.Wrap(serrors.ErrOutOfRange, err, "upper bound does not fit a 64-bit integer")
		}

		return 0, serrors.Wrap(serrors.ErrMalformedArgument, err, "upper bound is not an integer")
	}

	return n, nil
}
