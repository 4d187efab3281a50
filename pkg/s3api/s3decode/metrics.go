// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3decode

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/LeeDigitalWorks/s3wire/pkg/s3api"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3err"
)

// Metrics holds Prometheus metrics for response decoding.
type Metrics struct {
	DecodesTotal  *prometheus.CounterVec
	DecodeErrors  *prometheus.CounterVec
	ServiceErrors *prometheus.CounterVec
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
			DecodesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "s3wire",
				Subsystem: "decode",
				Name:      "decodes_total",
				Help:      "Total number of response decode attempts by operation",
			}, []string{"operation"}),
			DecodeErrors: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "s3wire",
				Subsystem: "decode",
				Name:      "errors_total",
				Help:      "Total number of malformed or unexpected XML responses by operation",
			}, []string{"operation"}),
			ServiceErrors: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "s3wire",
				Subsystem: "decode",
				Name:      "service_errors_total",
				Help:      "Total number of decoded service error documents by S3 error code",
			}, []string{"code"}),
		}
	})
	return metricsInstance
}

func observeDecode(op s3api.Operation, err error) {
	m := NewMetrics()
	m.DecodesTotal.WithLabelValues(op.String()).Inc()
	if err == nil {
		return
	}
	var serr *s3err.Error
	if errors.As(err, &serr) {
		m.ServiceErrors.WithLabelValues(serr.Code).Inc()
		return
	}
	var derr *DecodeError
	if errors.As(err, &derr) {
		m.DecodeErrors.WithLabelValues(op.String()).Inc()
	}
}
