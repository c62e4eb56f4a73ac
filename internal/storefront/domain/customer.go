package domain

import (
	"errors"
	"fmt"
	"strings"
)

// CustomerDetails is captured once per checkout flow and not retained after it.
type CustomerDetails struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Email    string `json:"email,omitempty"`
}

// Validate ensures the details required to process an order are present.
func (d CustomerDetails) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(d.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if strings.TrimSpace(d.Location) == "" {
		return fmt.Errorf("%w: delivery location is required", ErrValidation)
	}
	return nil
}

// PaymentMethod selects the payment instructions shown to the customer. No
// transaction happens in-process; M-Pesa payments are made to the till number
// and verified on delivery.
type PaymentMethod string

const (
	PaymentMpesa PaymentMethod = "mpesa"
	PaymentCash  PaymentMethod = "cash"
)

// mpesaTill is the business till number displayed in payment instructions.
const mpesaTill = "6030812"

func (p PaymentMethod) Valid() bool {
	return p == PaymentMpesa || p == PaymentCash
}

// Display returns the label shown on confirmations and in the owner email.
func (p PaymentMethod) Display() string {
	switch p {
	case PaymentMpesa:
		return "M-Pesa Till: " + mpesaTill
	case PaymentCash:
		return "Cash on Delivery"
	}
	return string(p)
}

// Instructions returns the customer-facing payment guidance.
func (p PaymentMethod) Instructions() string {
	switch p {
	case PaymentMpesa:
		return "Pay to M-Pesa Till Number " + mpesaTill + ". Payment will be verified on delivery."
	case PaymentCash:
		return "Pay when your order arrives."
	}
	return ""
}

var errUnknownPayment = errors.New("unknown payment method")

// ParsePaymentMethod validates a wire value.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	p := PaymentMethod(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %w %q", ErrValidation, errUnknownPayment, s)
	}
	return p, nil
}
