// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3multipart

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for multipart session tracking.
type Metrics struct {
	SessionsStarted prometheus.Counter
	SessionsEnded   *prometheus.CounterVec
	ActiveSessions  prometheus.Gauge
}

var (
	metricsOnce     sync.Once
	metricsInstance *Metrics
)

// NewMetrics creates a new Metrics instance with registered Prometheus metrics.
// Metrics are only registered once (singleton pattern to avoid double registration).
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsInstance = &Metrics{
			SessionsStarted: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "s3wire",
				Subsystem: "multipart",
				Name:      "sessions_started_total",
				Help:      "Total number of multipart upload sessions initiated",
			}),
			SessionsEnded: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "s3wire",
				Subsystem: "multipart",
				Name:      "sessions_ended_total",
				Help:      "Total number of multipart upload sessions reaching a terminal state",
			}, []string{"outcome"}),
			ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "s3wire",
				Subsystem: "multipart",
				Name:      "active_sessions",
				Help:      "Number of multipart upload sessions not yet completed or aborted",
			}),
		}
	})
	return metricsInstance
}

func observeSessionStart() {
	m := NewMetrics()
	m.SessionsStarted.Inc()
	m.ActiveSessions.Inc()
}

func observeSessionEnd(outcome string) {
	m := NewMetrics()
	m.SessionsEnded.WithLabelValues(outcome).Inc()
	m.ActiveSessions.Dec()
}
