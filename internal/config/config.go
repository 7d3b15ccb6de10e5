package config

import (
	"fmt"
	"primecount/pkg/serrors"

	"github.com/ilyakaznacheev/cleanenv"
)

// MaxWorkers caps Counter.Workers.
const MaxWorkers = 256

// Config represents the application configuration structure.
// Every field can be set from a YAML file and overridden from the environment.
type Config struct {
	// Environment selects the logger preset (development or production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" env-default:"info" yaml:"logLevel"`

	// Counter contains settings for the prime scan
	Counter struct {
		// LowerBound is the inclusive start of the scanned range
		LowerBound int64 `env:"COUNTER_LOWER_BOUND" env-default:"100" yaml:"lowerBound"`
		// Workers is the number of chunks the range is split into (1..MaxWorkers); 1 scans synchronously
		Workers int `env:"COUNTER_WORKERS" env-default:"1" yaml:"workers"`
	} `yaml:"counter"`

	// Output contains settings for the result writer
	Output struct {
		// Format is either text or json
		Format string `env:"OUTPUT_FORMAT" env-default:"text" yaml:"format"`
	} `yaml:"output"`

	// Bench contains settings for the bench command
	Bench struct {
		// Runs is the number of repeated counts
		Runs int `env:"BENCH_RUNS" env-default:"5" yaml:"runs"`
	} `yaml:"bench"`

	// Metrics contains settings for metric export
	Metrics struct {
		// TextfilePath is where metrics are written in Prometheus text format after a run; empty disables it
		TextfilePath string `env:"METRICS_TEXTFILE_PATH" yaml:"textfilePath"`
	} `yaml:"metrics"`
}

// Load returns a filled and validated Config. An empty configPath reads the
// environment only; otherwise the YAML file is read first and the environment
// overrides it.
func Load(configPath string) (*Config, error) {
	cfg, err := Read(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read is Load without validation, for callers that apply overrides first.
func Read(configPath string) (*Config, error) {
	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// Validate checks values that cleanenv cannot express in tags. Invalid values
// are reported as serrors.ErrMalformedArgument whether they came from the file,
// the environment or a flag override.
func (c *Config) Validate() error {
	if c.Counter.LowerBound < 0 {
		return serrors.With(serrors.ErrMalformedArgument,
			"counter lower bound must not be negative, got %d", c.Counter.LowerBound)
	}
	if c.Counter.Workers < 1 || c.Counter.Workers > MaxWorkers {
		return serrors.With(serrors.ErrMalformedArgument,
			"counter workers must be between 1 and %d, got %d", MaxWorkers, c.Counter.Workers)
	}
	if c.Bench.Runs < 1 {
		return serrors.With(serrors.ErrMalformedArgument, "bench runs must be at least 1, got %d", c.Bench.Runs)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return serrors.With(serrors.ErrMalformedArgument, "unknown output format %q", c.Output.Format)
	}

	return nil
}
