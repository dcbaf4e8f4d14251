package thicket

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsRecordPasses(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	m, r, _ := newTestManager(Config{Metrics: metrics, FramesToKeep: 1})
	r.fail["bad"] = errBoom
	var log eventLog

	root := &node{KeyField: KeyField{Key: "root"}, children: []Element{
		button("ok", &log),
		&leaf{KeyField: KeyField{Key: "bad"}},
	}}
	render(m, root, at(HostPressDown, 5, 5))
	render(m, root, at(HostPressUp, 5, 5))
	render(m, nil, nil)
	render(m, nil, nil)

	if got := testutil.ToFloat64(metrics.passes); got != 4 {
		t.Errorf("passes = %v, want 4", got)
	}
	if got := testutil.ToFloat64(metrics.failures); got != 2 {
		t.Errorf("failures = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.events.WithLabelValues("click")); got != 1 {
		t.Errorf("click events = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.events.WithLabelValues("focus")); got != 1 {
		t.Errorf("focus events = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.evicted); got != 3 {
		t.Errorf("evicted = %v, want 3", got)
	}
	if got := testutil.ToFloat64(metrics.elements); got != 0 {
		t.Errorf("elements of the last pass = %v, want 0", got)
	}
}

func TestMetricsRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	// Vector metrics only appear once a label value is observed.
	if n, err := testutil.GatherAndCount(reg); err != nil || n != 5 {
		t.Errorf("GatherAndCount = %d, %v; want 5", n, err)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var metrics *Metrics
	metrics.observePass(passStats{pass: 1})
	metrics.observeFailure()
	metrics.observeEvent(EventClick)

	m, _, _ := newTestManager(Config{})
	render(m, &plain{KeyField{Key: "a"}}, nil)
}
