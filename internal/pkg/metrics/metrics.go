// Package metrics exposes the service's prometheus collectors.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "warehouse"

// Recorder holds the operation and container collectors.
type Recorder struct {
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
	containers *prometheus.GaugeVec
	noStatus   prometheus.Gauge
	total      prometheus.Gauge
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Lifecycle operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Lifecycle operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		containers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "containers",
			Help:      "Containers by status as of the last summary refresh.",
		}, []string{"status"}),
		noStatus: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "containers_without_status",
			Help:      "Containers with no stored status as of the last summary refresh.",
		}),
		total: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "containers_total",
			Help:      "All containers as of the last summary refresh.",
		}),
	}

	for _, c := range []prometheus.Collector{r.operations, r.durations, r.containers, r.noStatus, r.total} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Observe records one operation. outcome is "success" or an error kind.
func (r *Recorder) Observe(_ context.Context, operation string, outcome string, duration time.Duration) {
	if operation == "" {
		return
	}
	r.operations.WithLabelValues(operation, outcome).Inc()
	r.durations.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetContainers replaces the container gauges. Statuses absent from
// byStatus are dropped instead of keeping a stale value; containers without a
// status go to their own gauge.
func (r *Recorder) SetContainers(total, withoutStatus int, byStatus map[string]int) {
	r.containers.Reset()
	for status, count := range byStatus {
		r.containers.WithLabelValues(status).Set(float64(count))
	}
	r.noStatus.Set(float64(withoutStatus))
	r.total.Set(float64(total))
}
