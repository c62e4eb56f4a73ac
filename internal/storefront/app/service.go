package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/seasideseafood/storefront/internal/storefront/app/commands"
	"github.com/seasideseafood/storefront/internal/storefront/domain"
	"github.com/seasideseafood/storefront/internal/storefront/metrics"
	"github.com/seasideseafood/storefront/internal/storefront/ports"
)

var (
	// ErrNoActiveCheckout is returned when a checkout step is invoked with no
	// flow in progress.
	ErrNoActiveCheckout = errors.New("no active checkout")

	// ErrEmptyCart is returned when a cart checkout is started on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)

// DeliveryState tracks the outcome of the owner notification for the most
// recent order. It is an indicator only; it never affects checkout state.
type DeliveryState string

const (
	DeliveryPending DeliveryState = "pending"
	DeliverySent    DeliveryState = "sent"
	DeliveryFailed  DeliveryState = "failed"
)

// DeliveryStatus reports how the last order's notification fared.
type DeliveryStatus struct {
	OrderID   string        `json:"order_id"`
	State     DeliveryState `json:"state"`
	MessageID string        `json:"message_id,omitempty"`
	Error     string        `json:"error,omitempty"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Service owns the single shopping session: one cart and at most one active
// checkout flow, both driven synchronously by the storefront's user. The only
// suspending operation is notification dispatch, which runs detached after the
// checkout has already completed.
type Service struct {
	catalog        ports.CatalogRepository
	dispatcher     ports.Dispatcher
	confirmHandler commands.CommandHandler
	logger         *slog.Logger
	metrics        *metrics.Metrics

	mu       sync.Mutex
	cart     domain.Cart
	checkout *domain.Checkout
	delivery *DeliveryStatus
}

// NewService wires required dependencies.
func NewService(
	catalog ports.CatalogRepository,
	dispatcher ports.Dispatcher,
	logger *slog.Logger,
	metrics *metrics.Metrics,
) *Service {
	coreHandler := commands.NewConfirmOrderCommandHandler()
	observableHandler := commands.NewObservableCommandHandler(coreHandler, logger, metrics)

	return &Service{
		catalog:        catalog,
		dispatcher:     dispatcher,
		confirmHandler: observableHandler,
		logger:         logger,
		metrics:        metrics,
		cart:           domain.NewCart(),
	}
}

// Catalog lists catalog items, optionally narrowed to one category.
func (s *Service) Catalog(ctx context.Context, category string) ([]domain.CatalogItem, error) {
	if category == "" {
		return s.catalog.List(ctx)
	}
	return s.catalog.ListByCategory(ctx, domain.Category(category))
}

// CartView is a snapshot of the cart and its derived totals.
type CartView struct {
	Lines           []domain.LineItem `json:"lines"`
	TotalItems      int               `json:"total_items"`
	TotalPriceCents int64             `json:"total_price_cents"`
}

// Cart returns the current cart contents.
func (s *Service) Cart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CartView{
		Lines:           s.cart.Lines(),
		TotalItems:      s.cart.TotalItems(),
		TotalPriceCents: s.cart.TotalPriceCents(),
	}
}

// AddToCart prices the item and appends a new line.
func (s *Service) AddToCart(ctx context.Context, itemID string, kg float64, option domain.PreparationOption) (domain.LineItem, error) {
	quantity, err := domain.NewQuantity(kg)
	if err != nil {
		return domain.LineItem{}, err
	}

	item, err := s.catalog.GetByID(ctx, itemID)
	if err != nil {
		return domain.LineItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	line, cart, err := s.cart.Add(*item, quantity, option)
	if err != nil {
		return domain.LineItem{}, err
	}
	s.cart = cart

	s.metrics.RecordCartOperation(ctx, "add")
	s.logger.InfoContext(ctx, "line added to cart",
		"line_id", line.ID,
		"item_id", itemID,
		"quantity_kg", quantity.Kilograms(),
		"total_cents", line.TotalCents,
	)

	return line, nil
}

// UpdateCartLine reprices an existing line with a new quantity and option.
func (s *Service) UpdateCartLine(ctx context.Context, lineID string, kg float64, option domain.PreparationOption) error {
	quantity, err := domain.NewQuantity(kg)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cart.Update(lineID, quantity, option)
	if err != nil {
		return err
	}
	s.cart = cart

	s.metrics.RecordCartOperation(ctx, "update")
	return nil
}

// RemoveCartLine drops a line. Absent identities are a no-op.
func (s *Service) RemoveCartLine(ctx context.Context, lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = s.cart.Remove(lineID)
	s.metrics.RecordCartOperation(ctx, "remove")
}

// ClearCart empties the cart.
func (s *Service) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = s.cart.Clear()
	s.metrics.RecordCartOperation(ctx, "clear")
}

// CheckoutView is a snapshot of the active checkout flow.
type CheckoutView struct {
	State      domain.CheckoutState     `json:"state"`
	Kind       domain.FlowKind          `json:"kind"`
	ItemID     string                   `json:"item_id,omitempty"`
	ItemName   string                   `json:"item_name,omitempty"`
	QuantityKG float64                  `json:"quantity_kg,omitempty"`
	Option     domain.PreparationOption `json:"option,omitempty"`
	Payment    domain.PaymentMethod     `json:"payment,omitempty"`
	OrderID    string                   `json:"order_id,omitempty"`
}

func (s *Service) checkoutViewLocked() *CheckoutView {
	c := s.checkout
	view := &CheckoutView{
		State:   c.State(),
		Kind:    c.Kind(),
		Option:  c.Option(),
		Payment: c.Payment(),
		OrderID: c.OrderID(),
	}
	if c.Kind() == domain.FlowSingleItem {
		view.ItemID = c.Item().ID
		view.ItemName = c.Item().Name
		view.QuantityKG = c.Quantity().Kilograms()
	}
	return view
}

// StartSingleItemCheckout begins a flow for one catalog item, discarding any
// unfinished flow.
func (s *Service) StartSingleItemCheckout(ctx context.Context, itemID string) (*CheckoutView, error) {
	item, err := s.catalog.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkout = domain.NewSingleItemCheckout(*item)
	s.logger.InfoContext(ctx, "single-item checkout started", "item_id", itemID)
	return s.checkoutViewLocked(), nil
}

// StartCartCheckout begins a flow for the populated cart, discarding any
// unfinished flow.
func (s *Service) StartCartCheckout(ctx context.Context) (*CheckoutView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.TotalItems() == 0 {
		return nil, ErrEmptyCart
	}

	s.checkout = domain.NewCartCheckout()
	s.logger.InfoContext(ctx, "cart checkout started", "line_count", s.cart.TotalItems())
	return s.checkoutViewLocked(), nil
}

// Checkout returns the active flow's state.
func (s *Service) Checkout() (*CheckoutView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.checkout == nil {
		return nil, ErrNoActiveCheckout
	}
	return s.checkoutViewLocked(), nil
}

// AbortCheckout discards the active flow and returns to browsing. A completed
// flow cannot be aborted; it is replaced when the next flow starts.
func (s *Service) AbortCheckout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.checkout == nil {
		return ErrNoActiveCheckout
	}
	if s.checkout.State() == domain.StateComplete {
		return domain.ErrInvalidTransition
	}

	s.checkout = nil
	s.logger.InfoContext(ctx, "checkout aborted")
	return nil
}

// AdjustQuantity steps the selected weight up or down by 0.5 KG.
func (s *Service) AdjustQuantity(up bool) (*CheckoutView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.checkout == nil {
		return nil, ErrNoActiveCheckout
	}

	var err error
	if up {
		err = s.checkout.IncrementQuantity()
	} else {
		err = s.checkout.DecrementQuantity()
	}
	if err != nil {
		return nil, err
	}
	return s.checkoutViewLocked(), nil
}

// ConfirmQuantity moves the single-item flow from selection to details.
func (s *Service) ConfirmQuantity() (*CheckoutView, error) {
	return s.step(func(c *domain.Checkout) error { return c.ConfirmQuantity() })
}

// SubmitDetails records the customer details if they pass validation.
func (s *Service) SubmitDetails(details domain.CustomerDetails) (*CheckoutView, error) {
	return s.step(func(c *domain.Checkout) error { return c.SubmitDetails(details) })
}

// ChoosePreparation records the preparation choice for the single-item flow.
func (s *Service) ChoosePreparation(option domain.PreparationOption) (*CheckoutView, error) {
	return s.step(func(c *domain.Checkout) error { return c.ChoosePreparation(option) })
}

// ChoosePayment records the payment method.
func (s *Service) ChoosePayment(method domain.PaymentMethod) (*CheckoutView, error) {
	return s.step(func(c *domain.Checkout) error { return c.ChoosePayment(method) })
}

func (s *Service) step(transition func(*domain.Checkout) error) (*CheckoutView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.checkout == nil {
		return nil, ErrNoActiveCheckout
	}
	if err := transition(s.checkout); err != nil {
		return nil, err
	}
	return s.checkoutViewLocked(), nil
}

// ConfirmCheckout assembles the order, completes the flow and clears the cart,
// then hands the record to the dispatcher as a detached background task. The
// checkout is complete once this returns, whatever dispatch later reports.
func (s *Service) ConfirmCheckout(ctx context.Context) (*domain.OrderRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.checkout == nil {
		return nil, ErrNoActiveCheckout
	}
	if s.checkout.State() != domain.StateConfirming {
		return nil, domain.ErrInvalidTransition
	}

	var lines []domain.LineItem
	if s.checkout.Kind() == domain.FlowSingleItem {
		line, err := s.checkout.SingleLine()
		if err != nil {
			return nil, err
		}
		lines = []domain.LineItem{line}
	} else {
		lines = s.cart.Lines()
	}

	cmd := commands.ConfirmOrderCommand{
		Customer: s.checkout.Details(),
		Lines:    lines,
		Payment:  s.checkout.Payment(),
	}

	order, err := s.confirmHandler.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	if err := s.checkout.Complete(order.ID); err != nil {
		return nil, err
	}
	if s.checkout.Kind() == domain.FlowCart {
		s.cart = s.cart.Clear()
	}

	s.delivery = &DeliveryStatus{
		OrderID:   order.ID,
		State:     DeliveryPending,
		UpdatedAt: time.Now().UTC(),
	}

	go s.dispatchOrder(context.WithoutCancel(ctx), *order)

	return order, nil
}

// Delivery reports the notification outcome for the most recent order, or nil
// if no order has been confirmed yet.
func (s *Service) Delivery() *DeliveryStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.delivery == nil {
		return nil
	}
	status := *s.delivery
	return &status
}

func (s *Service) dispatchOrder(ctx context.Context, order domain.OrderRecord) {
	messageID, err := s.dispatcher.Dispatch(ctx, order)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.delivery == nil || s.delivery.OrderID != order.ID {
		return
	}
	s.delivery.UpdatedAt = time.Now().UTC()

	if err != nil {
		s.delivery.State = DeliveryFailed
		s.delivery.Error = err.Error()
		s.logger.WarnContext(ctx, "owner notification failed, order stands",
			"order_id", order.ID,
			"customer_phone", order.Customer.Phone,
			"error", err,
		)
		return
	}

	s.delivery.State = DeliverySent
	s.delivery.MessageID = messageID
	s.logger.InfoContext(ctx, "owner notification sent",
		"order_id", order.ID,
		"message_id", messageID,
	)
}
