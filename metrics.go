package thicket

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exports render statistics to Prometheus. A nil *Metrics records
// nothing.
type Metrics struct {
	passes       prometheus.Counter
	passDuration prometheus.Histogram
	elements     prometheus.Gauge
	failures     prometheus.Counter
	evicted      prometheus.Counter
	events       *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		passes: f.NewCounter(prometheus.CounterOpts{
			Namespace: "thicket",
			Name:      "passes_total",
			Help:      "Render passes completed.",
		}),
		passDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "thicket",
			Name:      "pass_duration_seconds",
			Help:      "Wall time of a render pass.",
			Buckets:   []float64{.0001, .0005, .001, .002, .004, .008, .016, .033, .066},
		}),
		elements: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "thicket",
			Name:      "elements_rendered",
			Help:      "Elements visited by the most recent pass.",
		}),
		failures: f.NewCounter(prometheus.CounterOpts{
			Namespace: "thicket",
			Name:      "renderer_failures_total",
			Help:      "Renderer calls that failed or panicked.",
		}),
		evicted: f.NewCounter(prometheus.CounterOpts{
			Namespace: "thicket",
			Name:      "states_evicted_total",
			Help:      "Element states evicted as unused.",
		}),
		events: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "thicket",
			Name:      "events_dispatched_total",
			Help:      "Element events fired, by type.",
		}, []string{"event"}),
	}
}

func (m *Metrics) observePass(s passStats) {
	if m == nil {
		return
	}
	m.passes.Inc()
	m.passDuration.Observe(s.duration.Seconds())
	m.elements.Set(float64(s.elements))
	m.evicted.Add(float64(s.evicted))
}

func (m *Metrics) observeFailure() {
	if m == nil {
		return
	}
	m.failures.Inc()
}

func (m *Metrics) observeEvent(t EventType) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(t.String()).Inc()
}
