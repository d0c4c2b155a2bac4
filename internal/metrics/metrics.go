// Package metrics counts workflow outcomes on a prometheus registry.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hiring_portal"

const (
	OutcomeLive      = "live"
	OutcomeSynthetic = "synthetic"
	OutcomeSuccess   = "success"
	OutcomeFailed    = "failed"
)

// Recorder is safe to use as a nil pointer; all methods become no-ops.
type Recorder struct {
	rejections *prometheus.CounterVec
	settled    *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// New registers the workflow collectors on reg.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_rejected_total",
			Help:      "Submissions rejected before dispatch, by flow and reason.",
		}, []string{"flow", "reason"}),
		settled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_settled_total",
			Help:      "Dispatched submissions by flow and outcome.",
		}, []string{"flow", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "submission_duration_seconds",
			Help:      "Round-trip time of dispatched submissions.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"flow"}),
	}

	for _, c := range []prometheus.Collector{r.rejections, r.settled, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}

	return r, nil
}

func (r *Recorder) Rejected(flow, reason string) {
	if r == nil {
		return
	}
	r.rejections.WithLabelValues(flow, reason).Inc()
}

func (r *Recorder) Settled(flow, outcome string, took time.Duration) {
	if r == nil {
		return
	}
	r.settled.WithLabelValues(flow, outcome).Inc()
	r.duration.WithLabelValues(flow).Observe(took.Seconds())
}

// WriteTextfile dumps the gathered metrics in the node_exporter textfile
// collector format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("writing metrics textfile %q: %w", path, err)
	}
	return nil
}
