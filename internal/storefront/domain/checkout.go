package domain

// CheckoutState names a step in the checkout sequence.
type CheckoutState string

const (
	StateSelecting           CheckoutState = "selecting"
	StateEnteringDetails     CheckoutState = "entering-details"
	StateChoosingPreparation CheckoutState = "choosing-preparation"
	StateChoosingPayment     CheckoutState = "choosing-payment"
	StateConfirming          CheckoutState = "confirming"
	StateComplete            CheckoutState = "complete"
)

// FlowKind distinguishes the two checkout variants. The single-item flow picks
// quantity and preparation inside the flow; the cart flow starts with a
// populated cart whose lines already carry both, so it skips those steps.
type FlowKind string

const (
	FlowSingleItem FlowKind = "single-item"
	FlowCart       FlowKind = "cart"
)

// Checkout walks one order through its steps. Transitions are forward-only and
// gated by validation: a rejected transition leaves the state unchanged and
// returns the validation error. There is no way back from Complete.
type Checkout struct {
	state CheckoutState
	kind  FlowKind

	item     CatalogItem
	quantity Quantity

	option       PreparationOption
	optionChosen bool

	details CustomerDetails

	payment       PaymentMethod
	paymentChosen bool

	orderID string
}

// NewSingleItemCheckout starts a flow for one catalog item, beginning at
// quantity selection with the default weight.
func NewSingleItemCheckout(item CatalogItem) *Checkout {
	return &Checkout{
		state:    StateSelecting,
		kind:     FlowSingleItem,
		item:     item,
		quantity: DefaultQuantity,
	}
}

// NewCartCheckout starts a flow for an already-populated cart. Preparation was
// fixed per line at add-to-cart time, so the flow begins at customer details.
func NewCartCheckout() *Checkout {
	return &Checkout{
		state: StateEnteringDetails,
		kind:  FlowCart,
	}
}

func (c *Checkout) State() CheckoutState { return c.state }

func (c *Checkout) Kind() FlowKind { return c.kind }

func (c *Checkout) Item() CatalogItem { return c.item }

func (c *Checkout) Quantity() Quantity { return c.quantity }

func (c *Checkout) Details() CustomerDetails { return c.details }

func (c *Checkout) Payment() PaymentMethod { return c.payment }

func (c *Checkout) Option() PreparationOption { return c.option }

func (c *Checkout) OrderID() string { return c.orderID }

// IncrementQuantity raises the selected weight by 0.5 KG, clamping at 300 KG.
// At the bound it is a no-op, not an error.
func (c *Checkout) IncrementQuantity() error {
	if c.state != StateSelecting {
		return ErrInvalidTransition
	}
	c.quantity = c.quantity.Increment()
	return nil
}

// DecrementQuantity lowers the selected weight by 0.5 KG, clamping at 0.5 KG.
func (c *Checkout) DecrementQuantity() error {
	if c.state != StateSelecting {
		return ErrInvalidTransition
	}
	c.quantity = c.quantity.Decrement()
	return nil
}

// ConfirmQuantity moves from quantity selection to customer details. The
// quantity always holds a valid clamped value, so the transition has no gate.
func (c *Checkout) ConfirmQuantity() error {
	if c.state != StateSelecting {
		return ErrInvalidTransition
	}
	c.state = StateEnteringDetails
	return nil
}

// SubmitDetails validates and records the customer details, then advances: the
// single-item flow to preparation choice, the cart flow straight to payment.
func (c *Checkout) SubmitDetails(details CustomerDetails) error {
	if c.state != StateEnteringDetails {
		return ErrInvalidTransition
	}
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	if c.kind == FlowSingleItem {
		c.state = StateChoosingPreparation
	} else {
		c.state = StateChoosingPayment
	}
	return nil
}

// ChoosePreparation records the preparation choice for the single-item flow.
// The pricing rules decide whether the option is legal for the item.
func (c *Checkout) ChoosePreparation(option PreparationOption) error {
	if c.state != StateChoosingPreparation {
		return ErrInvalidTransition
	}
	if _, err := PriceLine(c.item, c.quantity, option); err != nil {
		return err
	}

	c.option = option
	c.optionChosen = true
	c.state = StateChoosingPayment
	return nil
}

// ChoosePayment records the payment method and moves to confirmation.
func (c *Checkout) ChoosePayment(method PaymentMethod) error {
	if c.state != StateChoosingPayment {
		return ErrInvalidTransition
	}
	if !method.Valid() {
		return validationError("unknown payment method %q", method)
	}

	c.payment = method
	c.paymentChosen = true
	c.state = StateConfirming
	return nil
}

// SingleLine prices the selected item as the flow's only line item. Only valid
// for a single-item flow that has passed the preparation step.
func (c *Checkout) SingleLine() (LineItem, error) {
	if c.kind != FlowSingleItem || !c.optionChosen {
		return LineItem{}, ErrInvalidTransition
	}

	price, err := PriceLine(c.item, c.quantity, c.option)
	if err != nil {
		return LineItem{}, err
	}

	return LineItem{
		ID:         c.item.ID,
		Item:       c.item,
		Quantity:   c.quantity,
		Option:     c.option,
		BaseCents:  price.BaseCents,
		PrepCents:  price.PrepCents,
		TotalCents: price.TotalCents,
	}, nil
}

// Complete enters the terminal state, recording the assembled order's id.
// Callable only from Confirming; nothing advances a completed checkout.
func (c *Checkout) Complete(orderID string) error {
	if c.state != StateConfirming {
		return ErrInvalidTransition
	}
	c.orderID = orderID
	c.state = StateComplete
	return nil
}
