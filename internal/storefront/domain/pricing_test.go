package domain

import (
	"errors"
	"testing"
)

func testItem() CatalogItem {
	return CatalogItem{
		ID:              "tuna-fillet",
		Name:            "Tuna",
		UnitPriceCents:  65000,
		UnitLabel:       "1 KG",
		Category:        CategoryFish,
		CategoryDisplay: "Fresh Fish (Fillet)",
		PrepFeeCents:    20000,
		PrepAllowed:     true,
	}
}

func noPrepItem() CatalogItem {
	return CatalogItem{
		ID:              "oyster",
		Name:            "Oyster",
		UnitPriceCents:  55000,
		UnitLabel:       "1 KG",
		Category:        CategoryOther,
		CategoryDisplay: "Other Seafood",
		PrepFeeCents:    20000,
		PrepAllowed:     false,
	}
}

func TestNewQuantity(t *testing.T) {
	t.Run("accepts half-kilogram multiples", func(t *testing.T) {
		tests := []struct {
			kg   float64
			want Quantity
		}{
			{0.5, 1},
			{1.0, 2},
			{2.5, 5},
			{300.0, 600},
		}

		for _, tt := range tests {
			got, err := NewQuantity(tt.kg)
			if err != nil {
				t.Errorf("NewQuantity(%v) failed: %v", tt.kg, err)
				continue
			}
			if got != tt.want {
				t.Errorf("NewQuantity(%v) = %v, want %v", tt.kg, got, tt.want)
			}
		}
	})

	t.Run("rejects values off the half-kilogram grid", func(t *testing.T) {
		for _, kg := range []float64{0.3, 1.25, 0.75} {
			if _, err := NewQuantity(kg); !errors.Is(err, ErrValidation) {
				t.Errorf("NewQuantity(%v): expected ErrValidation, got %v", kg, err)
			}
		}
	})

	t.Run("rejects values outside bounds", func(t *testing.T) {
		for _, kg := range []float64{0, 0.5 - 0.5, 300.5, -1.5} {
			if _, err := NewQuantity(kg); !errors.Is(err, ErrValidation) {
				t.Errorf("NewQuantity(%v): expected ErrValidation, got %v", kg, err)
			}
		}
	})
}

func TestQuantityClamping(t *testing.T) {
	t.Run("increment clamps at the upper bound", func(t *testing.T) {
		q := MaxQuantity
		if got := q.Increment(); got != MaxQuantity {
			t.Errorf("Increment() at max = %v, want %v", got, MaxQuantity)
		}
	})

	t.Run("decrement clamps at the lower bound", func(t *testing.T) {
		q := MinQuantity
		if got := q.Decrement(); got != MinQuantity {
			t.Errorf("Decrement() at min = %v, want %v", got, MinQuantity)
		}
	})

	t.Run("six hundred increments from the minimum land exactly on the maximum", func(t *testing.T) {
		q := MinQuantity
		for i := 0; i < 600; i++ {
			q = q.Increment()
		}
		if q != MaxQuantity {
			t.Errorf("after 600 increments got %v, want %v", q, MaxQuantity)
		}
		if q.Kilograms() != 300.0 {
			t.Errorf("Kilograms() = %v, want 300", q.Kilograms())
		}
	})
}

func TestPriceLine(t *testing.T) {
	t.Run("computes base price from weight", func(t *testing.T) {
		price, err := PriceLine(testItem(), 2, PrepAsIs)
		if err != nil {
			t.Fatalf("PriceLine() failed: %v", err)
		}

		if price.BaseCents != 65000 {
			t.Errorf("BaseCents = %d, want 65000", price.BaseCents)
		}
		if price.PrepCents != 0 {
			t.Errorf("PrepCents = %d, want 0", price.PrepCents)
		}
		if price.TotalCents != 65000 {
			t.Errorf("TotalCents = %d, want 65000", price.TotalCents)
		}
	})

	t.Run("adds a flat preparation fee independent of weight", func(t *testing.T) {
		price, err := PriceLine(testItem(), 4, PrepPrepared)
		if err != nil {
			t.Fatalf("PriceLine() failed: %v", err)
		}

		if price.BaseCents != 130000 {
			t.Errorf("BaseCents = %d, want 130000", price.BaseCents)
		}
		if price.PrepCents != 20000 {
			t.Errorf("PrepCents = %d, want 20000", price.PrepCents)
		}
		if price.TotalCents != 150000 {
			t.Errorf("TotalCents = %d, want 150000", price.TotalCents)
		}
	})

	t.Run("half-kilogram weights price exactly", func(t *testing.T) {
		price, err := PriceLine(testItem(), 1, PrepAsIs)
		if err != nil {
			t.Fatalf("PriceLine() failed: %v", err)
		}
		if price.TotalCents != 32500 {
			t.Errorf("TotalCents = %d, want 32500", price.TotalCents)
		}
	})

	t.Run("rejects preparation when the item does not allow it", func(t *testing.T) {
		if _, err := PriceLine(noPrepItem(), 2, PrepPrepared); !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("allows as-is for any item", func(t *testing.T) {
		price, err := PriceLine(noPrepItem(), 6, PrepAsIs)
		if err != nil {
			t.Fatalf("PriceLine() failed: %v", err)
		}
		if price.TotalCents != 165000 {
			t.Errorf("TotalCents = %d, want 165000", price.TotalCents)
		}
	})

	t.Run("rejects out-of-range quantities", func(t *testing.T) {
		for _, q := range []Quantity{0, 601, -1} {
			if _, err := PriceLine(testItem(), q, PrepAsIs); !errors.Is(err, ErrValidation) {
				t.Errorf("quantity %v: expected ErrValidation, got %v", q, err)
			}
		}
	})

	t.Run("rejects unknown preparation options", func(t *testing.T) {
		if _, err := PriceLine(testItem(), 2, PreparationOption("grilled")); !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}

func TestPrepLabel(t *testing.T) {
	tests := []struct {
		name string
		item CatalogItem
		want string
	}{
		{"fillet fish", CatalogItem{Category: CategoryFish, PrepAllowed: true}, "Fillet & Gutted"},
		{"whole fish", CatalogItem{Category: CategoryWholeFish, PrepAllowed: true}, "Cleaned & Descaled"},
		{"prawns", CatalogItem{Category: CategoryPrawns, PrepAllowed: true}, "Deveined & Peeled"},
		{"other with preparation", CatalogItem{Category: CategoryOther, PrepAllowed: true}, "Cleaned"},
		{"other without preparation", CatalogItem{Category: CategoryOther, PrepAllowed: false}, "As Is"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.PrepLabel(); got != tt.want {
				t.Errorf("PrepLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
