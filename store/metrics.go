// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opSave   = "save"
	opLoad   = "load"
	opList   = "list"
	opDelete = "delete"

	statusOK       = "success"
	statusNotFound = "not_found"
	statusError    = "error"
)

var (
	// Operations counts store calls.
	// Labels: op (save/load/list/delete), status (success/not_found/error)
	Operations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bitgraph_store_operations_total",
			Help: "Total number of store operations",
		},
		[]string{"op", "status"},
	)

	// Latency tracks store call durations in seconds.
	Latency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bitgraph_store_latency_seconds",
			Help:    "Store operation latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8), // 100µs .. ~1.6s
		},
		[]string{"op"},
	)
)

// observe records one call; errp points at the caller's named error.
func observe(op string, start time.Time, errp *error) {
	status := statusOK
	switch err := *errp; {
	case errors.Is(err, ErrNotFound):
		status = statusNotFound
	case err != nil:
		status = statusError
	}
	Operations.WithLabelValues(op, status).Inc()
	Latency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
