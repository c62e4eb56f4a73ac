package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/seasideseafood/storefront/internal/storefront/domain"
	"github.com/seasideseafood/storefront/internal/storefront/metrics"
	"github.com/seasideseafood/storefront/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

type ObservableCommandHandler struct {
	handler CommandHandler
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewObservableCommandHandler(handler CommandHandler, logger *slog.Logger, metrics *metrics.Metrics) *ObservableCommandHandler {
	return &ObservableCommandHandler{
		handler: handler,
		logger:  logger,
		metrics: metrics,
	}
}

func (o *ObservableCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*domain.OrderRecord, error) {
	ctx, span := telemetry.StartSpan(ctx, "ConfirmOrderCommand.Handle")
	defer span.End()

	start := time.Now()
	orderType := "unknown"
	var success bool
	defer func() {
		duration := time.Since(start).Seconds()
		o.metrics.RecordConfirmationDuration(ctx, duration)
		o.metrics.RecordOrderConfirmed(ctx, orderType, success)
	}()

	o.logger.InfoContext(ctx, "confirming order",
		"customer_name", cmd.Customer.Name,
		"line_count", len(cmd.Lines),
		"payment_method", cmd.Payment,
	)

	order, err := o.handler.Handle(ctx, cmd)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		o.logger.ErrorContext(ctx, "failed to confirm order",
			"error", err,
			"customer_name", cmd.Customer.Name,
		)
		return nil, err
	}

	orderType = string(order.Type)
	telemetry.AddSpanAttributes(span,
		attribute.String("order.id", order.ID),
		attribute.String("order.type", string(order.Type)),
		attribute.Int("order.line_count", len(order.Lines)),
		attribute.Int64("order.total_cents", order.TotalCents),
	)

	o.logger.InfoContext(ctx, "order confirmed",
		"order_id", order.ID,
		"order_type", order.Type,
		"total_cents", order.TotalCents,
	)

	success = true
	telemetry.SetSpanSuccess(span)

	return order, nil
}
