package crosscheck

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Comparison paths.
const (
	pathMemory  = "memory"
	pathGeneral = "general"
	pathSeq     = "seq"
	pathCase    = "case"
)

// Mismatch kinds.
const (
	kindMemoryGeneral = "memory_general"
	kindAntisymmetry  = "antisymmetry"
	kindReflexivity   = "reflexivity"
	kindSeq           = "seq"
	kindEquality      = "equality"
	kindCase          = "case"
)

type metrics struct {
	comparisons *prometheus.CounterVec
	mismatches  *prometheus.CounterVec
}

// newMetrics registers the checker's counters with reg. A nil reg leaves
// them unregistered.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		comparisons: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "spancheck_comparisons_total",
			Help: "The number of sequence comparisons performed, by comparison path",
		}, []string{"path"}),
		mismatches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "spancheck_mismatches_total",
			Help: "The number of comparisons that disagreed with a reference result, by kind",
		}, []string{"kind"}),
	}
}

func (m *metrics) compared(path string, n int) {
	m.comparisons.WithLabelValues(path).Add(float64(n))
}

func (m *metrics) mismatch(kind string) {
	m.mismatches.WithLabelValues(kind).Inc()
}
