package crosscheck

import (
	"context"
	"fmt"

	"github.com/amp-labs/span-compare/envutil"
	"github.com/amp-labs/span-compare/errors"
)

const (
	defaultIterations = 10000
	defaultMaxLen     = 64
	defaultWorkers    = 8
	defaultSeed       = 1
)

// Config controls how much work a Checker does.
type Config struct {
	// Iterations is the number of random pairs Fuzz checks.
	Iterations int
	// MaxLen bounds the length of every generated sequence.
	MaxLen int
	// Workers is the size of the pool Fuzz runs batches on.
	Workers int
	// Seed makes a run reproducible.
	Seed uint64
	// CasesFile is an optional YAML file of golden cases.
	CasesFile string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Iterations: defaultIterations,
		MaxLen:     defaultMaxLen,
		Workers:    defaultWorkers,
		Seed:       defaultSeed,
	}
}

// ConfigFromEnv reads SPANCHECK_ITERATIONS, SPANCHECK_MAX_LEN, SPANCHECK_WORKERS,
// SPANCHECK_SEED and SPANCHECK_CASES.
func ConfigFromEnv(ctx context.Context) (Config, error) {
	positive := envutil.Validate(func(v int) error {
		if v <= 0 {
			return fmt.Errorf("%w: must be positive, got %d", errors.ErrInvalidConfig, v)
		}

		return nil
	})

	iterations, err := envutil.Int(ctx, "SPANCHECK_ITERATIONS", envutil.Default(defaultIterations), positive).Value()
	if err != nil {
		return Config{}, err
	}

	maxLen, err := envutil.Int(ctx, "SPANCHECK_MAX_LEN", envutil.Default(defaultMaxLen), positive).Value()
	if err != nil {
		return Config{}, err
	}

	workers, err := envutil.Int(ctx, "SPANCHECK_WORKERS", envutil.Default(defaultWorkers), positive).Value()
	if err != nil {
		return Config{}, err
	}

	seed, err := envutil.Uint(ctx, "SPANCHECK_SEED", envutil.Default[uint64](defaultSeed)).Value()
	if err != nil {
		return Config{}, err
	}

	return Config{
		Iterations: iterations,
		MaxLen:     maxLen,
		Workers:    workers,
		Seed:       seed,
		CasesFile:  envutil.String(ctx, "SPANCHECK_CASES").ValueOrElse(""),
	}, nil
}

// Validate rejects non-positive sizes.
func (c Config) Validate() error {
	switch {
	case c.Iterations <= 0:
		return fmt.Errorf("%w: iterations must be positive, got %d", errors.ErrInvalidConfig, c.Iterations)
	case c.MaxLen <= 0:
		return fmt.Errorf("%w: max length must be positive, got %d", errors.ErrInvalidConfig, c.MaxLen)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", errors.ErrInvalidConfig, c.Workers)
	default:
		return nil
	}
}
