package metrics_test

import (
	"context"
	"os"
	"path/filepath"
	"primecount/pkg/domain"
	"primecount/pkg/metrics"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecordCount(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Shutdown(context.Background()) })

	ctx := context.Background()
	m.RecordCount(ctx, domain.CountResult{Lower: 100, Upper: 110, Candidates: 10, Primes: 4, Elapsed: 2 * time.Millisecond})
	m.RecordCount(ctx, domain.CountResult{Lower: 100, Upper: 200, Candidates: 100, Primes: 21, Elapsed: 3 * time.Millisecond})

	families, err := m.Gatherer().Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	var histogramCount uint64
	for _, f := range families {
		name := f.GetName()
		switch {
		case name == "primecount_candidates_total":
			values["candidates"] = f.GetMetric()[0].GetCounter().GetValue()
		case name == "primecount_primes_total":
			values["primes"] = f.GetMetric()[0].GetCounter().GetValue()
		case strings.HasPrefix(name, "primecount_count_duration"):
			histogramCount = f.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}

	require.InDelta(t, 110, values["candidates"], 0)
	require.InDelta(t, 25, values["primes"], 0)
	require.Equal(t, uint64(2), histogramCount)
}

func TestWriteTextfile(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Shutdown(context.Background()) })

	m.RecordCount(context.Background(), domain.CountResult{Candidates: 10, Primes: 4, Elapsed: time.Millisecond})

	path := filepath.Join(t.TempDir(), "primecount.prom")
	require.NoError(t, m.WriteTextfile(path))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(body), "\nprimecount_primes_total{")
	require.Contains(t, string(body), "\nprimecount_candidates_total{")
	require.NotContains(t, string(body), `{"primecount`, "names must not need UTF-8 quoting")
}

func TestWriteTextfileBadPath(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Shutdown(context.Background()) })

	require.Error(t, m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "out.prom")))
}
