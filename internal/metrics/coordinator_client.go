// Package metrics exposes prometheus instrumentation for the mining client.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	coordinatorRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "miner",
		Subsystem: "coordinator_client",
		Name:      "requests_total",
		Help:      "Count of requests to the coordinator.",
	}, []string{"operation", "status"})
	coordinatorRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "miner",
		Subsystem: "coordinator_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of coordinator requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// CoordinatorClient tracks metrics for HTTP calls to the coordinator.
type CoordinatorClient struct{}

// NewCoordinatorClient constructs a metrics collector for coordinator calls.
func NewCoordinatorClient() *CoordinatorClient {
	return &CoordinatorClient{}
}

// Observe records a single coordinator request outcome and duration.
func (m CoordinatorClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	coordinatorRequestsTotal.WithLabelValues(operation, status).Inc()
	coordinatorRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
