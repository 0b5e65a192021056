// Package ordering defines the three-state result of a ranking comparison.
package ordering

import (
	"errors"
	"fmt"
)

// ErrInvalidOrdering is returned when text cannot be parsed as an Ordering.
var ErrInvalidOrdering = errors.New("invalid ordering")

// Ordering is the result of a three-way comparison. The underlying values
// follow the convention of cmp.Compare, so the three states are themselves
// ordered: Less < Equivalent < Greater.
type Ordering int8

const (
	// Less means the left operand sorts first.
	Less Ordering = -1
	// Equivalent means neither operand sorts before the other. For orderings
	// synthesized from a less-than operator this is a weak equivalence: the
	// operands are not necessarily identical.
	Equivalent Ordering = 0
	// Greater means the right operand sorts first.
	Greater Ordering = 1
)

// FromInt converts the sign of an integer comparison result (such as the
// one returned by cmp.Compare or bytes.Compare) into an Ordering.
func FromInt(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equivalent
	}
}

// Int returns -1, 0 or +1.
func (o Ordering) Int() int {
	return int(o)
}

// Reverse returns the ordering seen from the other operand's side.
// Less and Greater swap; Equivalent stays put.
func (o Ordering) Reverse() Ordering {
	return -o
}

func (o Ordering) IsLess() bool {
	return o < Equivalent
}

func (o Ordering) IsLessOrEqual() bool {
	return o <= Equivalent
}

func (o Ordering) IsGreater() bool {
	return o > Equivalent
}

func (o Ordering) IsGreaterOrEqual() bool {
	return o >= Equivalent
}

func (o Ordering) IsEquivalent() bool {
	return o == Equivalent
}

// String returns "less", "equivalent" or "greater".
func (o Ordering) String() string {
	switch {
	case o < Equivalent:
		return "less"
	case o > Equivalent:
		return "greater"
	default:
		return "equivalent"
	}
}

// Parse converts the output of String back into an Ordering. The
// shorthands "lt", "eq" and "gt" and the symbols "<", "=" and ">" are
// accepted too.
func Parse(s string) (Ordering, error) {
	switch s {
	case "less", "lt", "<":
		return Less, nil
	case "equivalent", "equal", "eq", "=", "==":
		return Equivalent, nil
	case "greater", "gt", ">":
		return Greater, nil
	default:
		return Equivalent, fmt.Errorf("%w: %q", ErrInvalidOrdering, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Ordering) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Ordering) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*o = parsed

	return nil
}
