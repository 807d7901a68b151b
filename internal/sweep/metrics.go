package sweep

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Decode outcomes.
const (
	OutcomeFixed    = "fixed"
	OutcomeDetected = "detected"
	OutcomeFailed   = "failed"
)

// Metrics collects decode outcomes and phase timings on a private registry.
type Metrics struct {
	registry *prometheus.Registry
	decodes  *prometheus.CounterVec
	phases   *prometheus.GaugeVec
}

// NewMetrics returns empty Metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		decodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "golay",
			Subsystem: "sweep",
			Name:      "decodes_total",
			Help:      "Decoded codewords by number of injected bit errors and outcome.",
		}, []string{"weight", "outcome"}),
		phases: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "golay",
			Subsystem: "sweep",
			Name:      "phase_seconds",
			Help:      "Wall time spent per sweep phase.",
		}, []string{"phase"}),
	}
	m.registry.MustRegister(m.decodes, m.phases)
	return m
}

func (m *Metrics) observeWeight(w WeightReport) {
	weight := strconv.Itoa(w.Weight)
	m.decodes.WithLabelValues(weight, OutcomeFixed).Add(float64(w.Fixed))
	m.decodes.WithLabelValues(weight, OutcomeDetected).Add(float64(w.Detected))
	m.decodes.WithLabelValues(weight, OutcomeFailed).Add(float64(w.Failed))
	m.observePhase("decode_"+weight, w.Elapsed)
}

func (m *Metrics) observePhase(phase string, elapsed time.Duration) {
	m.phases.WithLabelValues(phase).Set(elapsed.Seconds())
}

// WriteToTextfile writes the metrics in the format expected by the
// node_exporter textfile collector.
func (m *Metrics) WriteToTextfile(name string) error {
	return errors.Wrap(prometheus.WriteToTextfile(name, m.registry), "sweep: writing metrics")
}
