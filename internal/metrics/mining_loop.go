package metrics

import (
	"errors"
	"time"

	"github.com/HNP-Christopher-Rohde/hnp-example-blockchain-with-miner/internal/coordinator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	miningFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "miner",
		Subsystem: "mining_loop",
		Name:      "fetch_total",
		Help:      "Count of tip and difficulty fetches per cycle.",
	}, []string{"operation", "status"})

	miningFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "miner",
		Subsystem: "mining_loop",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of tip and difficulty fetches.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})

	miningMineTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "miner",
		Subsystem: "mining_loop",
		Name:      "mine_total",
		Help:      "Count of proof-of-work searches.",
	}, []string{"status"})

	miningMineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "miner",
		Subsystem: "mining_loop",
		Name:      "mine_duration_seconds",
		Help:      "Duration of proof-of-work searches.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 12),
	}, []string{"status"})

	miningMineAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "miner",
		Subsystem: "mining_loop",
		Name:      "mine_attempts",
		Help:      "Nonce attempts per mined block.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 16),
	})

	miningSubmitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "miner",
		Subsystem: "mining_loop",
		Name:      "submit_total",
		Help:      "Count of block submissions by outcome.",
	}, []string{"outcome"})

	miningSubmitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "miner",
		Subsystem: "mining_loop",
		Name:      "submit_duration_seconds",
		Help:      "Duration of block submissions.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})
)

// MiningLoop tracks metrics for the driver's mining cycles.
type MiningLoop struct{}

// NewMiningLoop constructs a metrics collector for the mining loop.
func NewMiningLoop() *MiningLoop {
	return &MiningLoop{}
}

// ObserveFetchDifficulty records a difficulty fetch at cycle start.
func (m MiningLoop) ObserveFetchDifficulty(err error, started time.Time) {
	m.observeFetch("difficulty", err, started)
}

// ObserveFetchTip records a chain-tip fetch.
func (m MiningLoop) ObserveFetchTip(err error, started time.Time) {
	m.observeFetch("tip", err, started)
}

func (m MiningLoop) observeFetch(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	miningFetchTotal.WithLabelValues(operation, status).Inc()
	miningFetchDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// ObserveMine records one proof-of-work search with its attempt count.
func (m MiningLoop) ObserveMine(err error, attempts uint64, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	miningMineTotal.WithLabelValues(status).Inc()
	miningMineDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil {
		miningMineAttempts.Observe(float64(attempts))
	}
}

// ObserveSubmit records a block submission as accepted, rejected or error.
func (m MiningLoop) ObserveSubmit(err error, started time.Time) {
	outcome := "accepted"
	var rejected *coordinator.SubmissionError
	switch {
	case errors.As(err, &rejected):
		outcome = "rejected"
	case err != nil:
		outcome = "error"
	}
	miningSubmitTotal.WithLabelValues(outcome).Inc()
	miningSubmitDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}
