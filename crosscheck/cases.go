package crosscheck

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/amp-labs/span-compare/capability"
	"github.com/amp-labs/span-compare/compare"
	"github.com/amp-labs/span-compare/errors"
	"github.com/amp-labs/span-compare/lexicographic"
	"github.com/amp-labs/span-compare/logger"
	"github.com/amp-labs/span-compare/ordering"
	"github.com/amp-labs/span-compare/sortable"
	"github.com/amp-labs/span-compare/span"
	"github.com/amp-labs/span-compare/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"
)

// Case is a golden comparison: a compared to b must give Order, and b
// compared to a must give its reverse. Equal defaults to Order being
// equivalent; it only needs setting where the two differ, as with NaN.
type Case struct {
	Name  string             `yaml:"name"`
	Type  string             `yaml:"type"`
	A     []string           `yaml:"a"`
	B     []string           `yaml:"b"`
	Order *ordering.Ordering `yaml:"order"`
	Equal *bool              `yaml:"equal,omitempty"`
}

type caseFile struct {
	Cases []Case `yaml:"cases"`
}

// LoadCases reads golden cases from a YAML file.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cases: %w", err)
	}

	return ParseCases(data)
}

// ParseCases decodes a YAML document with a top level "cases" list.
func ParseCases(data []byte) ([]Case, error) {
	var file caseFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidCase, err)
	}

	for i, c := range file.Cases {
		switch {
		case c.Name == "":
			return nil, fmt.Errorf("%w: case %d has no name", errors.ErrInvalidCase, i)
		case c.Order == nil:
			return nil, fmt.Errorf("%w: case %q has no order", errors.ErrInvalidCase, c.Name)
		case !slices.Contains(caseTypes, c.Type):
			return nil, fmt.Errorf("%w: case %q has unknown type %q", errors.ErrInvalidCase, c.Name, c.Type)
		}
	}

	return file.Cases, nil
}

var caseTypes = []string{ //nolint:gochecknoglobals
	"uint8", "uint16", "uint32", "uint64",
	"int8", "int16", "int32", "int64",
	"float64", "natural", "collated",
}

// RunCases verifies every case in both directions and returns all failures
// joined. Bad values wrap ErrInvalidCase, wrong results wrap ErrMismatch.
func (c *Checker) RunCases(ctx context.Context, cases []Case) error {
	return telemetry.Trace(ctx, "crosscheck.cases", func(ctx context.Context) error {
		return c.runCases(ctx, cases)
	}, attribute.Int("cases", len(cases)))
}

func (c *Checker) runCases(ctx context.Context, cases []Case) error {
	var failures errors.Collection

	for _, tc := range cases {
		if err := ctx.Err(); err != nil {
			failures.Add(err)

			break
		}

		err := c.runCase(tc)
		if err != nil {
			logger.Get(ctx).Warn("golden case failed", "case", tc.Name, "error", err)
		}

		failures.Add(err)
		c.cases.Inc()
	}

	return failures.GetError()
}

func (c *Checker) runCase(tc Case) error {
	switch tc.Type {
	case "uint8":
		return runCase(c, tc, ordered(parseUint[uint8](8))) //nolint:mnd
	case "uint16":
		return runCase(c, tc, ordered(parseUint[uint16](16))) //nolint:mnd
	case "uint32":
		return runCase(c, tc, ordered(parseUint[uint32](32))) //nolint:mnd
	case "uint64":
		return runCase(c, tc, ordered(parseUint[uint64](64))) //nolint:mnd
	case "int8":
		return runCase(c, tc, ordered(parseInt[int8](8))) //nolint:mnd
	case "int16":
		return runCase(c, tc, ordered(parseInt[int16](16))) //nolint:mnd
	case "int32":
		return runCase(c, tc, ordered(parseInt[int32](32))) //nolint:mnd
	case "int64":
		return runCase(c, tc, ordered(parseInt[int64](64))) //nolint:mnd
	case "float64":
		return runCase(c, tc, ordered(func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64) //nolint:mnd
		}))
	case "natural":
		return runCase(c, tc, synthesized(func(s string) (sortable.Natural, error) {
			return sortable.Natural(s), nil
		}))
	case "collated":
		return runCase(c, tc, synthesized(func(s string) (sortable.Collated, error) {
			return sortable.Collated(s), nil
		}))
	default:
		return fmt.Errorf("%w: case %q has unknown type %q", errors.ErrInvalidCase, tc.Name, tc.Type)
	}
}

// suite is the set of entry points a case exercises for one element type.
type suite[T any] struct {
	parse     func(string) (T, error)
	compare   func(a, b []T) ordering.Ordering
	seq       func(a, b []T) ordering.Ordering
	reference func(a, b []T) ordering.Ordering
	equal     func(a, b []T) bool
}

func ordered[T cmp.Ordered](parse func(string) (T, error)) suite[T] {
	return suite[T]{
		parse: parse,
		compare: func(a, b []T) ordering.Ordering {
			return span.Compare(span.New(a), span.Slice[T](b))
		},
		seq: func(a, b []T) ordering.Ordering {
			return span.Compare(span.New(a), span.Seq[T](slices.Values(b)))
		},
		reference: lexicographic.CompareGeneral[T],
		equal: func(a, b []T) bool {
			return span.Equal(span.New(a), span.Slice[T](b))
		},
	}
}

func synthesized[T sortable.Sortable[T]](parse func(string) (T, error)) suite[T] {
	return suite[T]{
		parse: parse,
		compare: func(a, b []T) ordering.Ordering {
			return span.CompareLess(span.New(a), span.Slice[T](b))
		},
		seq: func(a, b []T) ordering.Ordering {
			return span.CompareLess(span.New(a), span.Seq[T](slices.Values(b)))
		},
		reference: func(a, b []T) ordering.Ordering {
			return lexicographic.CompareFunc(a, b, compare.SynthesizeFunc(func(x, y T) bool {
				return x.LessThan(y)
			}))
		},
		equal: func(a, b []T) bool {
			return span.EqualComparable(span.New(a), span.Slice[T](b))
		},
	}
}

func parseUint[U constraints.Unsigned](bits int) func(string) (U, error) {
	return func(s string) (U, error) {
		v, err := strconv.ParseUint(s, 0, bits)

		return U(v), err
	}
}

func parseInt[I constraints.Signed](bits int) func(string) (I, error) {
	return func(s string) (I, error) {
		v, err := strconv.ParseInt(s, 0, bits)

		return I(v), err
	}
}

func parseValues[T any](name string, vals []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(vals))

	for _, s := range vals {
		v, err := parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: case %q: %w", errors.ErrInvalidCase, name, err)
		}

		out = append(out, v)
	}

	return out, nil
}

func runCase[T any](c *Checker, tc Case, s suite[T]) error {
	if desc := capability.Describe[T](); !desc.Equality || !desc.Orderable() {
		return fmt.Errorf("%w: case %q: %s cannot be ranked", errors.ErrInvalidCase, tc.Name, desc.Type)
	}

	a, err := parseValues(tc.Name, tc.A, s.parse)
	if err != nil {
		return err
	}

	b, err := parseValues(tc.Name, tc.B, s.parse)
	if err != nil {
		return err
	}

	want := *tc.Order

	wantEqual := want.IsEquivalent()
	if tc.Equal != nil {
		wantEqual = *tc.Equal
	}

	var failures errors.Collection

	check := func(what string, got, expected any) {
		if got != expected {
			c.mismatches.Inc()
			c.metrics.mismatch(kindCase)
			failures.Add(fmt.Errorf("%w: case %q %s: got %v, want %v", errors.ErrMismatch, tc.Name, what, got, expected))
		}
	}

	check("compare", s.compare(a, b), want)
	check("compare reversed", s.compare(b, a), want.Reverse())
	check("compare seq", s.seq(a, b), want)
	check("reference", s.reference(a, b), want)
	check("equal", s.equal(a, b), wantEqual)
	check("equal reversed", s.equal(b, a), wantEqual)

	c.metrics.compared(pathCase, 6) //nolint:mnd

	return failures.GetError()
}
