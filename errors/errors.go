// Package errors holds the sentinel errors shared across the module and a
// small utility for accumulating many errors into one.
package errors

import "errors"

var (
	// ErrMismatch is returned when a comparison disagrees with its expected
	// result or with an equivalent comparison path.
	ErrMismatch = errors.New("comparison mismatch")

	// ErrInvalidCase is returned when a golden case cannot be interpreted.
	ErrInvalidCase = errors.New("invalid case")

	// ErrInvalidConfig is returned when configuration values are out of range.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Merge appends every error held by other.
func (c *Collection) Merge(other *Collection) {
	if other != nil {
		c.errors = append(c.errors, other.errors...)
	}
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
