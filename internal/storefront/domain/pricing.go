package domain

// Quantity is a weight expressed in half-kilogram steps. Keeping the step count
// as an integer means repeated increments never accumulate floating-point drift.
type Quantity int

const (
	// MinQuantity is 0.5 KG, the smallest orderable weight.
	MinQuantity Quantity = 1
	// MaxQuantity is 300 KG.
	MaxQuantity Quantity = 600
	// DefaultQuantity is 1 KG, the starting weight for a new selection.
	DefaultQuantity Quantity = 2
)

// NewQuantity converts kilograms into a Quantity, rejecting values that are not
// a 0.5 KG multiple or fall outside [0.5, 300].
func NewQuantity(kg float64) (Quantity, error) {
	halves := kg * 2
	if halves != float64(int(halves)) {
		return 0, validationError("quantity %v KG is not a 0.5 KG multiple", kg)
	}
	q := Quantity(int(halves))
	if q < MinQuantity || q > MaxQuantity {
		return 0, validationError("quantity %v KG is outside [0.5, 300]", kg)
	}
	return q, nil
}

// Increment adds 0.5 KG, clamping at the upper bound.
func (q Quantity) Increment() Quantity {
	if q >= MaxQuantity {
		return MaxQuantity
	}
	return q + 1
}

// Decrement subtracts 0.5 KG, clamping at the lower bound.
func (q Quantity) Decrement() Quantity {
	if q <= MinQuantity {
		return MinQuantity
	}
	return q - 1
}

// Kilograms returns the weight as a float for display and wire formats.
// Half-kilogram values are exactly representable.
func (q Quantity) Kilograms() float64 {
	return float64(q) / 2
}

// PreparationOption selects whether an item is delivered prepared (cleaned,
// filleted, deveined per category) for a fixed fee, or as caught.
type PreparationOption string

const (
	PrepAsIs     PreparationOption = "asis"
	PrepPrepared PreparationOption = "cleaned"
)

func (p PreparationOption) Valid() bool {
	return p == PrepAsIs || p == PrepPrepared
}

// LinePrice carries the derived prices of one line item.
type LinePrice struct {
	BaseCents  int64
	PrepCents  int64
	TotalCents int64
}

// PriceLine computes the price of quantity KG of an item with the chosen
// preparation. Choosing PrepPrepared for an item whose category forbids it is a
// validation error even though the storefront never offers the choice; pricing
// is the last gate against callers that bypass the selection rules.
func PriceLine(item CatalogItem, quantity Quantity, option PreparationOption) (LinePrice, error) {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return LinePrice{}, validationError("quantity %v KG is outside [0.5, 300]", quantity.Kilograms())
	}
	if !option.Valid() {
		return LinePrice{}, validationError("unknown preparation option %q", option)
	}
	if option == PrepPrepared && !item.PrepAllowed {
		return LinePrice{}, validationError("preparation is not available for %s", item.Name)
	}

	base := item.UnitPriceCents * int64(quantity) / 2
	var prep int64
	if option == PrepPrepared {
		prep = item.PrepFeeCents
	}

	return LinePrice{
		BaseCents:  base,
		PrepCents:  prep,
		TotalCents: base + prep,
	}, nil
}
