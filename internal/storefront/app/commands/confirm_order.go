package commands

import (
	"context"

	"github.com/seasideseafood/storefront/internal/storefront/domain"
)

// ConfirmOrderCommand carries everything a validated checkout has gathered.
type ConfirmOrderCommand struct {
	Customer domain.CustomerDetails
	Lines    []domain.LineItem
	Payment  domain.PaymentMethod
}

func (c ConfirmOrderCommand) Validate() error {
	if len(c.Lines) == 0 {
		return domain.ErrEmptyOrder
	}
	if err := c.Customer.Validate(); err != nil {
		return err
	}
	if !c.Payment.Valid() {
		return domain.ErrValidation
	}
	return nil
}

type CommandHandler interface {
	Handle(ctx context.Context, cmd ConfirmOrderCommand) (*domain.OrderRecord, error)
}

// ConfirmOrderCommandHandler assembles the immutable order record for a
// confirmed checkout. Dispatching the record is the caller's concern; assembly
// stays free of I/O.
type ConfirmOrderCommandHandler struct{}

func NewConfirmOrderCommandHandler() *ConfirmOrderCommandHandler {
	return &ConfirmOrderCommandHandler{}
}

func (h *ConfirmOrderCommandHandler) Handle(_ context.Context, cmd ConfirmOrderCommand) (*domain.OrderRecord, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	order, err := domain.AssembleOrder(cmd.Customer, cmd.Lines, cmd.Payment)
	if err != nil {
		return nil, err
	}

	return &order, nil
}
