// Package report writes count and bench results as text or JSON.
package report

import (
	"fmt"
	"io"
	"primecount/pkg/domain"
	"primecount/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Format selects the output encoding.
type Format string

const (
	// FormatText writes "nprimes = <count>" lines.
	FormatText Format = "text"
	// FormatJSON writes one compact JSON object per result.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", serrors.With(serrors.ErrMalformedArgument, "unknown output format %q", s)
	}
}

// WriteCount writes a single count result.
func WriteCount(w io.Writer, f Format, res domain.CountResult) error {
	var b []byte
	if f == FormatJSON {
		var e jx.Encoder
		e.Obj(func(e *jx.Encoder) {
			encodeCount(e, res)
		})
		b = append(e.Bytes(), '\n')
	} else {
		b = fmt.Appendf(nil, "nprimes = %d\n", res.Primes)
	}

	if _, err := w.Write(b); err != nil {
		return errors.Wrap(err, "write count")
	}

	return nil
}

// WriteBench writes a bench summary. The text form starts with the same line
// WriteCount produces.
func WriteBench(w io.Writer, f Format, s domain.BenchSummary) error {
	var b []byte
	if f == FormatJSON {
		var e jx.Encoder
		e.Obj(func(e *jx.Encoder) {
			encodeCount(e, s.Result)
			e.FieldStart("runs")
			e.Int(s.Runs)
			e.FieldStart("min_ns")
			e.Int64(s.Min.Nanoseconds())
			e.FieldStart("mean_ns")
			e.Int64(s.Mean.Nanoseconds())
			e.FieldStart("max_ns")
			e.Int64(s.Max.Nanoseconds())
		})
		b = append(e.Bytes(), '\n')
	} else {
		b = fmt.Appendf(nil, "nprimes = %d\nruns = %d min = %s mean = %s max = %s\n",
			s.Result.Primes, s.Runs, s.Min, s.Mean, s.Max)
	}

	if _, err := w.Write(b); err != nil {
		return errors.Wrap(err, "write bench summary")
	}

	return nil
}

func encodeCount(e *jx.Encoder, res domain.CountResult) {
	e.FieldStart("lower")
	e.Int64(res.Lower)
	e.FieldStart("upper")
	e.Int64(res.Upper)
	e.FieldStart("candidates")
	e.Int64(res.Candidates)
	e.FieldStart("nprimes")
	e.Int64(res.Primes)
}
