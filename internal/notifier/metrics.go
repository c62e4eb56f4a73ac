package notifier

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Metrics struct {
	dispatchLatency metric.Float64Histogram
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.dispatchLatency, err = meter.Float64Histogram(
		"notification_dispatch_latency_seconds",
		metric.WithDescription("Owner notification dispatch latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create notification_dispatch_latency histogram: %w", err)
	}

	return m, nil
}

func (m *Metrics) RecordDispatch(ctx context.Context, durationSeconds float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	m.dispatchLatency.Record(ctx, durationSeconds, metric.WithAttributes(
		attribute.String("status", status),
	))
}
