package kernel

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of a construction. A nil *Metrics
// records nothing.
type Metrics struct {
	computes  *prometheus.CounterVec
	undefs    *prometheus.CounterVec
	passSize  prometheus.Histogram
	rejects   *prometheus.CounterVec
	nodeGauge prometheus.Gauge
}

// NewMetrics creates the collectors under namespace and registers them with
// reg when it is non-nil.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		computes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "computes_total",
				Help:      "Algorithm recomputations by algorithm kind",
			},
			[]string{"algorithm"},
		),
		undefs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "undefined_total",
				Help:      "Outputs left undefined by algorithm kind",
			},
			[]string{"algorithm"},
		),
		passSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "pass_size",
				Help:      "Algorithms recomputed per propagation pass",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		rejects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rejected_edits_total",
				Help:      "Structural edits rejected by reason",
			},
			[]string{"reason"},
		),
		nodeGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "nodes",
				Help:      "Live nodes in the construction",
			},
		),
	}
	if reg != nil {
		for _, col := range []prometheus.Collector{m.computes, m.undefs, m.passSize, m.rejects, m.nodeGauge} {
			if err := reg.Register(col); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

func (m *Metrics) computed(algo string) {
	if m != nil {
		m.computes.WithLabelValues(algo).Inc()
	}
}

func (m *Metrics) undefined(algo string) {
	if m != nil {
		m.undefs.WithLabelValues(algo).Inc()
	}
}

func (m *Metrics) observePass(st PassStats) {
	if m != nil {
		m.passSize.Observe(float64(st.Computed))
	}
}

func (m *Metrics) setNodes(n int) {
	if m != nil {
		m.nodeGauge.Set(float64(n))
	}
}

func (m *Metrics) rejected(err error) {
	if m != nil {
		m.rejects.WithLabelValues(reason(err)).Inc()
	}
}

// reason maps an error to a bounded label value.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrCyclicDependency):
		return "cyclic_dependency"
	case errors.Is(err, ErrIncompatibleRedefinition):
		return "incompatible_redefinition"
	case errors.Is(err, ErrNodeIsDependent):
		return "node_is_dependent"
	case errors.Is(err, ErrKindMismatch):
		return "kind_mismatch"
	case errors.Is(err, ErrNotAPath):
		return "not_a_path"
	case errors.Is(err, ErrLabelTaken), errors.Is(err, ErrInvalidLabel):
		return "label"
	case errors.Is(err, ErrArity):
		return "arity"
	case errors.Is(err, ErrNodeNotFound):
		return "not_found"
	default:
		return "other"
	}
}
