// Package crosscheck verifies the comparison core against itself: the
// raw-memory fast path against the element-wise path, contiguous against
// non-contiguous ranges, and every result against its mirror image. It
// also runs golden cases read from YAML.
package crosscheck

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/span-compare/errors"
	"github.com/amp-labs/span-compare/lexicographic"
	"github.com/amp-labs/span-compare/logger"
	"github.com/amp-labs/span-compare/ordering"
	"github.com/amp-labs/span-compare/span"
	"github.com/amp-labs/span-compare/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/atomic"
	"golang.org/x/exp/constraints"
)

const batchSize = 256

// Report summarizes the work a Checker has done so far.
type Report struct {
	Pairs      uint64
	Cases      uint64
	Mismatches uint64
}

// Checker runs fuzzing batches and golden cases. It is safe for concurrent use.
type Checker struct {
	cfg     Config
	metrics *metrics

	pairs      atomic.Uint64
	cases      atomic.Uint64
	mismatches atomic.Uint64
}

// NewChecker returns a Checker whose metrics are registered with reg.
func NewChecker(cfg Config, reg prometheus.Registerer) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Checker{
		cfg:     cfg,
		metrics: newMetrics(reg),
	}, nil
}

// Report returns a snapshot of the counters.
func (c *Checker) Report() Report {
	return Report{
		Pairs:      c.pairs.Load(),
		Cases:      c.cases.Load(),
		Mismatches: c.mismatches.Load(),
	}
}

// Fuzz checks cfg.Iterations random pairs spread over the four unsigned
// widths. Every disagreement is returned, joined, wrapping ErrMismatch.
// Cancelling ctx stops scheduling further batches.
func (c *Checker) Fuzz(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return telemetry.Trace(ctx, "crosscheck.fuzz", c.fuzz,
		attribute.Int("iterations", c.cfg.Iterations),
		attribute.Int("workers", c.cfg.Workers))
}

func (c *Checker) fuzz(ctx context.Context) error {
	pool := pond.NewPool(c.cfg.Workers, pond.WithContext(ctx))
	group := pool.NewGroup()

	var (
		mut      sync.Mutex
		failures errors.Collection
	)

	for batch, start := 0, 0; start < c.cfg.Iterations; batch, start = batch+1, start+batchSize {
		if ctx.Err() != nil {
			break
		}

		count := min(batchSize, c.cfg.Iterations-start)

		group.Submit(func() {
			_ = telemetry.Trace(ctx, "crosscheck.batch", func(ctx context.Context) error {
				found := c.fuzzBatch(ctx, batch, count)

				mut.Lock()
				defer mut.Unlock()

				failures.Merge(found)

				return found.GetError()
			}, attribute.Int("batch", batch), attribute.Int("pairs", count))
		})
	}

	waitErr := group.Wait()

	// Wait returns early on cancellation; running batches still hold failures.
	pool.StopAndWait()

	if waitErr == nil {
		waitErr = ctx.Err()
	}

	failures.Add(waitErr)

	return failures.GetError()
}

func (c *Checker) fuzzBatch(ctx context.Context, batch, count int) *errors.Collection {
	rng := rand.New(rand.NewPCG(c.cfg.Seed, uint64(batch))) //nolint:gosec
	found := &errors.Collection{}

	for i := range count {
		switch i % 4 { //nolint:mnd
		case 0:
			found.Merge(checkPair(ctx, c, "uint8", generatePair[uint8](rng, c.cfg.MaxLen)))
		case 1:
			found.Merge(checkPair(ctx, c, "uint16", generatePair[uint16](rng, c.cfg.MaxLen)))
		case 2: //nolint:mnd
			found.Merge(checkPair(ctx, c, "uint32", generatePair[uint32](rng, c.cfg.MaxLen)))
		default:
			found.Merge(checkPair(ctx, c, "uint64", generatePair[uint64](rng, c.cfg.MaxLen)))
		}
	}

	c.pairs.Add(uint64(count))

	logger.Get(ctx).Debug("fuzz batch done", "batch", batch, "pairs", count, "mismatches", found.Len())

	return found
}

type pair[T any] struct {
	shape string
	a, b  []T
}

// Values where byte order and numeric order disagree on little-endian
// hosts, plus the extremes.
var interesting = []uint64{0, 1, 0xff, 0x100, 0xff00, 0x1_0000_0000, 1 << 63, ^uint64(0)} //nolint:gochecknoglobals

func randomValue[T constraints.Unsigned](rng *rand.Rand) T {
	if rng.IntN(2) == 0 {
		return T(interesting[rng.IntN(len(interesting))])
	}

	return T(rng.Uint64())
}

func randomSlice[T constraints.Unsigned](rng *rand.Rand, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = randomValue[T](rng)
	}

	return out
}

// generatePair builds a pair in one of several shapes chosen to reach the
// interesting branches: shared prefixes, a differing last element, one
// side a prefix of the other, and aliasing.
func generatePair[T constraints.Unsigned](rng *rand.Rand, maxLen int) pair[T] {
	a := randomSlice[T](rng, rng.IntN(maxLen+1))

	switch rng.IntN(6) { //nolint:mnd
	case 0:
		return pair[T]{shape: "independent", a: a, b: randomSlice[T](rng, rng.IntN(maxLen+1))}
	case 1:
		b := slices.Clone(a)
		if len(b) > 0 {
			at := rng.IntN(len(b))
			b[at] = randomValue[T](rng)
			b = append(b[:at+1], randomSlice[T](rng, rng.IntN(maxLen-at))...)
		}

		return pair[T]{shape: "shared_prefix", a: a, b: b}
	case 2: //nolint:mnd
		b := slices.Clone(a)
		if len(b) > 0 {
			b[len(b)-1]++
		}

		return pair[T]{shape: "last_differs", a: a, b: b}
	case 3: //nolint:mnd
		return pair[T]{shape: "prefix", a: a, b: slices.Clone(a[:rng.IntN(len(a)+1)])}
	case 4: //nolint:mnd
		return pair[T]{shape: "aliased", a: a, b: a[:rng.IntN(len(a)+1)]}
	default:
		return pair[T]{shape: "copy", a: a, b: slices.Clone(a)}
	}
}

// checkPair compares one pair every way the core can and reports each
// disagreement with the element-wise reference.
func checkPair[T constraints.Unsigned](ctx context.Context, c *Checker, label string, p pair[T]) *errors.Collection {
	found := &errors.Collection{}

	fail := func(kind, format string, args ...any) {
		err := fmt.Errorf("%w: %s %s %v vs %v: %s", errors.ErrMismatch, label, p.shape, p.a, p.b,
			fmt.Sprintf(format, args...))

		c.mismatches.Inc()
		c.metrics.mismatch(kind)
		logger.Get(ctx).Warn("comparison mismatch", "kind", kind, "error", err)
		found.Add(err)
	}

	want := lexicographic.CompareGeneral(p.a, p.b)
	memory := lexicographic.CompareMemory(p.a, p.b)
	mirrored := lexicographic.CompareMemory(p.b, p.a)
	seq := span.Compare(span.New(p.a), span.Seq[T](slices.Values(p.b)))

	c.metrics.compared(pathGeneral, 1)
	c.metrics.compared(pathMemory, 2) //nolint:mnd
	c.metrics.compared(pathSeq, 1)

	if memory != want {
		fail(kindMemoryGeneral, "memory %s, general %s", memory, want)
	}

	if mirrored != want.Reverse() {
		fail(kindAntisymmetry, "forward %s, mirrored %s", want, mirrored)
	}

	if seq != want {
		fail(kindSeq, "seq %s, general %s", seq, want)
	}

	if self := lexicographic.CompareMemory(p.a, p.a); self != ordering.Equivalent || !lexicographic.Equal(p.a, p.a) {
		fail(kindReflexivity, "self comparison gave %s", self)
	}

	if equal := lexicographic.Equal(p.a, p.b); equal != want.IsEquivalent() {
		fail(kindEquality, "equal %t, ordering %s", equal, want)
	}

	return found
}
