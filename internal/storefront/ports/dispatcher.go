package ports

import (
	"context"

	"github.com/seasideseafood/storefront/internal/storefront/domain"
)

// Dispatcher hands a completed order record to the owner notification channel.
// It returns the channel's opaque delivery identifier on success. A dispatch
// failure never reverses checkout completion; callers report it and move on.
type Dispatcher interface {
	Dispatch(ctx context.Context, order domain.OrderRecord) (string, error)
}
