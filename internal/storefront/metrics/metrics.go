package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Metrics struct {
	ordersConfirmedTotal metric.Int64Counter
	confirmationDuration metric.Float64Histogram
	cartOperationsTotal  metric.Int64Counter
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.ordersConfirmedTotal, err = meter.Int64Counter(
		"orders_confirmed_total",
		metric.WithDescription("Total number of confirmed orders"),
		metric.WithUnit("{order}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create orders_confirmed_total counter: %w", err)
	}

	m.confirmationDuration, err = meter.Float64Histogram(
		"order_confirmation_duration_seconds",
		metric.WithDescription("Duration of order confirmation operations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create order_confirmation_duration histogram: %w", err)
	}

	m.cartOperationsTotal, err = meter.Int64Counter(
		"cart_operations_total",
		metric.WithDescription("Total number of cart mutations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create cart_operations_total counter: %w", err)
	}

	return m, nil
}

func (m *Metrics) RecordOrderConfirmed(ctx context.Context, orderType string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	m.ordersConfirmedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("order_type", orderType),
		attribute.String("status", status),
	))
}

func (m *Metrics) RecordConfirmationDuration(ctx context.Context, durationSeconds float64) {
	m.confirmationDuration.Record(ctx, durationSeconds)
}

func (m *Metrics) RecordCartOperation(ctx context.Context, operation string) {
	m.cartOperationsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}
