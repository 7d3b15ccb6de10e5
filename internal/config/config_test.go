package config_test

import (
	"os"
	"path/filepath"
	"primecount/internal/config"
	"primecount/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, int64(100), cfg.Counter.LowerBound)
	require.Equal(t, 1, cfg.Counter.Workers)
	require.Equal(t, "text", cfg.Output.Format)
	require.Equal(t, 5, cfg.Bench.Runs)
	require.Empty(t, cfg.Metrics.TextfilePath)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("COUNTER_WORKERS", "4")
	t.Setenv("OUTPUT_FORMAT", "json")
	t.Setenv("METRICS_TEXTFILE_PATH", "/tmp/primecount.prom")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Counter.Workers)
	require.Equal(t, "json", cfg.Output.Format)
	require.Equal(t, "/tmp/primecount.prom", cfg.Metrics.TextfilePath)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
counter:
  lowerBound: 2
  workers: 3
bench:
  runs: 10
`), 0o600))

	t.Setenv("BENCH_RUNS", "7")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, int64(2), cfg.Counter.LowerBound)
	require.Equal(t, 3, cfg.Counter.Workers)
	require.Equal(t, 7, cfg.Bench.Runs, "environment should override the file")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		path      string
		malformed bool
	}{
		{name: "missing file", path: filepath.Join(t.TempDir(), "nope.yml")},
		{name: "malformed number", env: map[string]string{"COUNTER_LOWER_BOUND": "ten"}},
		{name: "negative lower bound", env: map[string]string{"COUNTER_LOWER_BOUND": "-1"}, malformed: true},
		{name: "zero workers", env: map[string]string{"COUNTER_WORKERS": "0"}, malformed: true},
		{name: "too many workers", env: map[string]string{"COUNTER_WORKERS": "20000000"}, malformed: true},
		{name: "zero runs", env: map[string]string{"BENCH_RUNS": "0"}, malformed: true},
		{name: "unknown format", env: map[string]string{"OUTPUT_FORMAT": "xml"}, malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load(tt.path)
			require.Error(t, err)
			if tt.malformed {
				require.ErrorIs(t, err, serrors.ErrMalformedArgument)
			} else {
				require.NotErrorIs(t, err, serrors.ErrMalformedArgument)
			}
		})
	}
}

func TestReadSkipsValidation(t *testing.T) {
	t.Setenv("COUNTER_WORKERS", "0")

	cfg, err := config.Read("")
	require.NoError(t, err)
	require.Equal(t, 0, cfg.Counter.Workers)

	cfg.Counter.Workers = config.MaxWorkers
	require.NoError(t, cfg.Validate())

	cfg.Counter.Workers = config.MaxWorkers + 1
	require.ErrorIs(t, cfg.Validate(), serrors.ErrMalformedArgument)
}
