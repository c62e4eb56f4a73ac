package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// OrderType classifies an order by its line count.
type OrderType string

const (
	OrderTypeSingle OrderType = "single"
	OrderTypeBulk   OrderType = "bulk"
)

// OrderLine is the immutable summary of one line item inside an order record.
type OrderLine struct {
	Name            string            `json:"name"`
	Category        Category          `json:"category"`
	CategoryDisplay string            `json:"category_display"`
	Quantity        Quantity          `json:"quantity"`
	UnitPriceCents  int64             `json:"unit_price_cents"`
	Option          PreparationOption `json:"option"`
	PrepLabel       string            `json:"prep_label"`
	PrepFeeCents    int64             `json:"prep_fee_cents"`
	TotalCents      int64             `json:"total_cents"`
}

// OrderRecord is the finalized summary of a completed checkout, handed to the
// notification dispatcher. It is built once at confirmation and never modified
// or retained afterwards.
type OrderRecord struct {
	ID         string          `json:"id"`
	Customer   CustomerDetails `json:"customer"`
	Lines      []OrderLine     `json:"lines"`
	Payment    PaymentMethod   `json:"payment"`
	TotalCents int64           `json:"total_cents"`
	Type       OrderType       `json:"type"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AssembleOrder builds an order record from validated checkout state. An empty
// line list is rejected here even though the checkout gating makes it
// unreachable; a zero-item order must never reach the owner.
func AssembleOrder(customer CustomerDetails, lines []LineItem, payment PaymentMethod) (OrderRecord, error) {
	if len(lines) == 0 {
		return OrderRecord{}, ErrEmptyOrder
	}
	if err := customer.Validate(); err != nil {
		return OrderRecord{}, err
	}
	if !payment.Valid() {
		return OrderRecord{}, validationError("unknown payment method %q", payment)
	}

	id, err := newOrderID()
	if err != nil {
		return OrderRecord{}, err
	}

	summaries := make([]OrderLine, 0, len(lines))
	var total int64
	for _, line := range lines {
		label := "As Is"
		if line.Option == PrepPrepared {
			label = line.Item.PrepLabel()
		}
		summaries = append(summaries, OrderLine{
			Name:            line.Item.Name,
			Category:        line.Item.Category,
			CategoryDisplay: line.Item.CategoryDisplay,
			Quantity:        line.Quantity,
			UnitPriceCents:  line.Item.UnitPriceCents,
			Option:          line.Option,
			PrepLabel:       label,
			PrepFeeCents:    line.PrepCents,
			TotalCents:      line.TotalCents,
		})
		total += line.TotalCents
	}

	orderType := OrderTypeSingle
	if len(summaries) > 1 {
		orderType = OrderTypeBulk
	}

	return OrderRecord{
		ID:         id,
		Customer:   customer,
		Lines:      summaries,
		Payment:    payment,
		TotalCents: total,
		Type:       orderType,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// newOrderID generates a submission identifier that is collision-resistant in
// practice: millisecond timestamp plus a random suffix.
func newOrderID() (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate order id: %w", err)
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(buf)), nil
}
