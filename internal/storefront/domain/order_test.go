package domain

import (
	"errors"
	"strings"
	"testing"
)

func pricedLine(t *testing.T, item CatalogItem, quantity Quantity, option PreparationOption) LineItem {
	t.Helper()

	price, err := PriceLine(item, quantity, option)
	if err != nil {
		t.Fatalf("PriceLine() failed: %v", err)
	}
	return LineItem{
		ID:         item.ID,
		Item:       item,
		Quantity:   quantity,
		Option:     option,
		BaseCents:  price.BaseCents,
		PrepCents:  price.PrepCents,
		TotalCents: price.TotalCents,
	}
}

func TestAssembleOrder(t *testing.T) {
	t.Run("assembles a single-line order", func(t *testing.T) {
		line := pricedLine(t, testItem(), 4, PrepPrepared)

		order, err := AssembleOrder(validDetails(), []LineItem{line}, PaymentMpesa)
		if err != nil {
			t.Fatalf("AssembleOrder() failed: %v", err)
		}

		if order.Type != OrderTypeSingle {
			t.Errorf("Type = %v, want single", order.Type)
		}
		if order.TotalCents != 150000 {
			t.Errorf("TotalCents = %d, want 150000", order.TotalCents)
		}
		if len(order.Lines) != 1 {
			t.Fatalf("len(Lines) = %d, want 1", len(order.Lines))
		}
		if order.Lines[0].PrepLabel != "Fillet & Gutted" {
			t.Errorf("PrepLabel = %q, want Fillet & Gutted", order.Lines[0].PrepLabel)
		}
		if order.CreatedAt.IsZero() {
			t.Error("CreatedAt is zero")
		}
	})

	t.Run("classifies multi-line orders as bulk", func(t *testing.T) {
		lines := []LineItem{
			pricedLine(t, prawnItem(), 2, PrepAsIs),
			pricedLine(t, noPrepItem(), 6, PrepAsIs),
		}

		order, err := AssembleOrder(validDetails(), lines, PaymentCash)
		if err != nil {
			t.Fatalf("AssembleOrder() failed: %v", err)
		}

		if order.Type != OrderTypeBulk {
			t.Errorf("Type = %v, want bulk", order.Type)
		}
		if order.TotalCents != 415000 {
			t.Errorf("TotalCents = %d, want 415000", order.TotalCents)
		}
	})

	t.Run("as-is lines carry the As Is label", func(t *testing.T) {
		line := pricedLine(t, prawnItem(), 2, PrepAsIs)

		order, err := AssembleOrder(validDetails(), []LineItem{line}, PaymentCash)
		if err != nil {
			t.Fatalf("AssembleOrder() failed: %v", err)
		}

		if order.Lines[0].PrepLabel != "As Is" {
			t.Errorf("PrepLabel = %q, want As Is", order.Lines[0].PrepLabel)
		}
		if order.Lines[0].PrepFeeCents != 0 {
			t.Errorf("PrepFeeCents = %d, want 0", order.Lines[0].PrepFeeCents)
		}
	})

	t.Run("rejects an empty line list", func(t *testing.T) {
		if _, err := AssembleOrder(validDetails(), nil, PaymentCash); !errors.Is(err, ErrEmptyOrder) {
			t.Errorf("expected ErrEmptyOrder, got %v", err)
		}
	})

	t.Run("rejects invalid customer details", func(t *testing.T) {
		line := pricedLine(t, testItem(), 2, PrepAsIs)
		details := validDetails()
		details.Phone = ""

		if _, err := AssembleOrder(details, []LineItem{line}, PaymentCash); !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("rejects unknown payment methods", func(t *testing.T) {
		line := pricedLine(t, testItem(), 2, PrepAsIs)

		if _, err := AssembleOrder(validDetails(), []LineItem{line}, PaymentMethod("barter")); !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("ids carry the submission prefix and are unique", func(t *testing.T) {
		line := pricedLine(t, testItem(), 2, PrepAsIs)

		first, err := AssembleOrder(validDetails(), []LineItem{line}, PaymentCash)
		if err != nil {
			t.Fatalf("AssembleOrder() failed: %v", err)
		}
		second, err := AssembleOrder(validDetails(), []LineItem{line}, PaymentCash)
		if err != nil {
			t.Fatalf("AssembleOrder() failed: %v", err)
		}

		if !strings.HasPrefix(first.ID, "ORD-") {
			t.Errorf("ID = %q, want ORD- prefix", first.ID)
		}
		if first.ID == second.ID {
			t.Errorf("expected unique IDs, both were %q", first.ID)
		}
	})
}

func TestCustomerDetailsValidate(t *testing.T) {
	tests := []struct {
		name    string
		details CustomerDetails
		wantErr bool
	}{
		{"valid", validDetails(), false},
		{"valid without email", CustomerDetails{Name: "A", Phone: "1", Location: "L"}, false},
		{"missing name", CustomerDetails{Phone: "1", Location: "L"}, true},
		{"whitespace name", CustomerDetails{Name: "   ", Phone: "1", Location: "L"}, true},
		{"missing phone", CustomerDetails{Name: "A", Location: "L"}, true},
		{"missing location", CustomerDetails{Name: "A", Phone: "1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.details.Validate()
			if tt.wantErr && !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() failed: %v", err)
			}
		})
	}
}

func TestPaymentMethod(t *testing.T) {
	t.Run("parse accepts known wire values", func(t *testing.T) {
		for _, s := range []string{"mpesa", "cash"} {
			if _, err := ParsePaymentMethod(s); err != nil {
				t.Errorf("ParsePaymentMethod(%q) failed: %v", s, err)
			}
		}
	})

	t.Run("parse rejects unknown values", func(t *testing.T) {
		if _, err := ParsePaymentMethod("card"); !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("mpesa instructions name the till number", func(t *testing.T) {
		if got := PaymentMpesa.Display(); got != "M-Pesa Till: 6030812" {
			t.Errorf("Display() = %q", got)
		}
		if !strings.Contains(PaymentMpesa.Instructions(), "6030812") {
			t.Errorf("Instructions() = %q, want till number", PaymentMpesa.Instructions())
		}
	})

	t.Run("cash instructions describe payment on delivery", func(t *testing.T) {
		if got := PaymentCash.Display(); got != "Cash on Delivery" {
			t.Errorf("Display() = %q", got)
		}
	})
}
