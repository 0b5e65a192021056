// Package envutil reads typed configuration values from environment variables.
//
// Every reader takes a context: values stored with WithEnvOverride win over
// the process environment, which lets tests configure code without touching
// global state.
package envutil

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
)

// get returns a Reader for the given environment variable key.
func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return NewReader(key, true, nil, val)
	}

	val, ok := os.LookupEnv(key)

	return NewReader(key, ok, nil, val)
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool parses the variable with strconv.ParseBool.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), func(s string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(s))
	}), opts)
}

// Int parses the variable as a base-10 signed integer that must fit in I.
func Int[I constraints.Signed](ctx context.Context, key string, opts ...Option[I]) Reader[I] {
	return apply(Map(get(ctx, key), func(s string) (I, error) {
		var zero I

		val, err := strconv.ParseInt(strings.TrimSpace(s), 10, bitSize(zero))

		return I(val), err
	}), opts)
}

// Uint parses the variable as a base-10 unsigned integer that must fit in U.
func Uint[U constraints.Unsigned](ctx context.Context, key string, opts ...Option[U]) Reader[U] {
	return apply(Map(get(ctx, key), func(s string) (U, error) {
		var zero U

		val, err := strconv.ParseUint(strings.TrimSpace(s), 10, bitSize(zero))

		return U(val), err
	}), opts)
}

// Duration parses the variable with time.ParseDuration.
func Duration(ctx context.Context, key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	return apply(Map(get(ctx, key), time.ParseDuration), opts)
}

// SlogLevel parses the variable as a slog level name ("debug", "INFO", "warn+2").
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(ctx, key), func(s string) (slog.Level, error) {
		var level slog.Level

		err := level.UnmarshalText([]byte(strings.TrimSpace(s)))

		return level, err
	}), opts)
}

func bitSize[N constraints.Integer](n N) int {
	switch any(n).(type) {
	case int8, uint8:
		return 8 //nolint:mnd
	case int16, uint16:
		return 16 //nolint:mnd
	case int32, uint32:
		return 32 //nolint:mnd
	case int64, uint64:
		return 64 //nolint:mnd
	default:
		return strconv.IntSize
	}
}
