package notifier

import (
	"context"
	"log/slog"

	"github.com/seasideseafood/storefront/internal/storefront/domain"
)

// NoopDispatcher logs orders without sending them anywhere. Useful for local
// dev before the email sink is configured.
type NoopDispatcher struct{}

// NewNoopDispatcher returns a new no-op dispatcher.
func NewNoopDispatcher() *NoopDispatcher {
	return &NoopDispatcher{}
}

func (n *NoopDispatcher) Dispatch(_ context.Context, order domain.OrderRecord) (string, error) {
	slog.Debug("notification::order_placed",
		"order_id", order.ID,
		"order_type", order.Type,
		"total_cents", order.TotalCents,
	)
	return "noop", nil
}
