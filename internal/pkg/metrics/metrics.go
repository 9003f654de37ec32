// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

var (
	LedgerMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spotlight_ledger_mutations_total",
			Help: "Ledger debit and credit attempts by outcome.",
		},
		[]string{"op", "result"},
	)

	Allocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spotlight_allocations_total",
			Help: "Allocation state changes by action and outcome.",
		},
		[]string{"action", "result"},
	)

	Withdrawals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spotlight_withdrawals_total",
			Help: "Withdrawal requests and resolutions by action and outcome.",
		},
		[]string{"action", "result"},
	)

	Deposits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spotlight_deposits_total",
			Help: "Deposit submissions and resolutions by action and outcome.",
		},
		[]string{"action", "result"},
	)

	TxRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spotlight_tx_retries_total",
			Help: "Transactions retried after a serialization failure or deadlock.",
		},
	)

	SweptRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spotlight_swept_records_total",
			Help: "Records closed or purged by the background sweeper.",
		},
		[]string{"kind"},
	)

	ScheduleEvents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "spotlight_schedule_materialized_events",
			Help: "Rotation events materialized by the schedule state.",
		},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spotlight_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Outcome collapses an error into a result label.
func Outcome(err error, rejected func(error) bool) string {
	switch {
	case err == nil:
		return ResultOK
	case rejected != nil && rejected(err):
		return ResultRejected
	default:
		return ResultError
	}
}
