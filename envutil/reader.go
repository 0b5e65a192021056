//nolint:ireturn
package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader is a type that represents a value read from an environment variable.
// It is used to provide a more ergonomic way to handle environment variables.
// It is a wrapper around the value, and it provides a way to handle errors and
// missing values, as well as transformations.
type Reader[A any] struct {
	key     string
	present bool
	err     error

	value A
}

// NewReader returns a Reader for the given raw data.
func NewReader[T any](key string, present bool, err error, value T) Reader[T] {
	return Reader[T]{
		key:     key,
		present: present,
		value:   value,
		err:     err,
	}
}

// Key returns the key of the environment variable.
func (e Reader[A]) Key() string {
	return e.key
}

// Present reports whether the variable was set.
func (e Reader[A]) Present() bool {
	return e.present
}

// Value returns the value of the environment variable, or an error if the value
// is missing or if there was an error parsing it.
func (e Reader[A]) Value() (A, error) {
	if e.err != nil {
		return e.value, fmt.Errorf("%w %s: %w", ErrBadEnvVar, e.key, e.err)
	}

	if !e.present {
		return e.value, fmt.Errorf("%w %s", ErrEnvVarMissing, e.key)
	}

	return e.value, nil
}

// ValueOrElse returns the value, or the given fallback if the value is
// missing or could not be parsed.
func (e Reader[A]) ValueOrElse(fallback A) A {
	if e.present && e.err == nil {
		return e.value
	}

	return fallback
}

// ValueOrFatal returns the value of the environment variable, or exits the
// program if the value is missing or if there was an error parsing it.
func (e Reader[A]) ValueOrFatal() A {
	value, err := e.Value()
	if err != nil {
		slog.Error("error reading environment variable", "key", e.key, "error", err)
		os.Exit(1)
	}

	return value
}

// WithDefault fills in dfl when the variable is not set. A value that is set
// but fails to parse keeps its error.
func (e Reader[A]) WithDefault(dfl A) Reader[A] {
	if e.present || e.err != nil {
		return e
	}

	return Reader[A]{key: e.key, present: true, value: dfl}
}

// Map transforms the value of a present, error-free Reader.
func Map[A, B any](rdr Reader[A], f func(A) (B, error)) Reader[B] {
	out := Reader[B]{key: rdr.key, present: rdr.present, err: rdr.err}

	if !rdr.present || rdr.err != nil {
		return out
	}

	out.value, out.err = f(rdr.value)

	return out
}
