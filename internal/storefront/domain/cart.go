package domain

import "fmt"

// LineItem is one priced entry in a cart. The derived price fields are always
// recomputed from the item, quantity and option together, never patched
// individually.
type LineItem struct {
	ID         string            `json:"id"`
	Item       CatalogItem       `json:"item"`
	Quantity   Quantity          `json:"quantity"`
	Option     PreparationOption `json:"option"`
	BaseCents  int64             `json:"base_cents"`
	PrepCents  int64             `json:"prep_cents"`
	TotalCents int64             `json:"total_cents"`
}

// Cart is an ordered sequence of line items. Operations return the updated
// cart rather than mutating in place, so a held Cart value is never changed
// behind the caller's back. Two additions of the same catalog item are
// distinct entries; there is no implicit merging.
type Cart struct {
	lines []LineItem
	seq   int
}

// NewCart returns an empty cart.
func NewCart() Cart {
	return Cart{}
}

// Add prices the item and appends a new line with a fresh identity.
func (c Cart) Add(item CatalogItem, quantity Quantity, option PreparationOption) (LineItem, Cart, error) {
	price, err := PriceLine(item, quantity, option)
	if err != nil {
		return LineItem{}, c, err
	}

	seq := c.seq + 1
	line := LineItem{
		ID:         fmt.Sprintf("%s-%s-%d", item.ID, option, seq),
		Item:       item,
		Quantity:   quantity,
		Option:     option,
		BaseCents:  price.BaseCents,
		PrepCents:  price.PrepCents,
		TotalCents: price.TotalCents,
	}

	lines := make([]LineItem, len(c.lines), len(c.lines)+1)
	copy(lines, c.lines)
	lines = append(lines, line)

	return line, Cart{lines: lines, seq: seq}, nil
}

// Remove drops the line with the given identity. Removing an absent identity
// is a no-op, not an error.
func (c Cart) Remove(lineID string) Cart {
	lines := make([]LineItem, 0, len(c.lines))
	for _, line := range c.lines {
		if line.ID != lineID {
			lines = append(lines, line)
		}
	}
	return Cart{lines: lines, seq: c.seq}
}

// Update reprices an existing line in place, keeping its identity and position.
func (c Cart) Update(lineID string, quantity Quantity, option PreparationOption) (Cart, error) {
	for i, line := range c.lines {
		if line.ID != lineID {
			continue
		}

		price, err := PriceLine(line.Item, quantity, option)
		if err != nil {
			return c, err
		}

		lines := make([]LineItem, len(c.lines))
		copy(lines, c.lines)
		lines[i].Quantity = quantity
		lines[i].Option = option
		lines[i].BaseCents = price.BaseCents
		lines[i].PrepCents = price.PrepCents
		lines[i].TotalCents = price.TotalCents

		return Cart{lines: lines, seq: c.seq}, nil
	}
	return c, ErrLineNotFound
}

// Clear empties the cart.
func (c Cart) Clear() Cart {
	return Cart{seq: c.seq}
}

// Lines returns the line items in insertion order.
func (c Cart) Lines() []LineItem {
	lines := make([]LineItem, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// TotalItems is the number of line entries, not the summed weight.
func (c Cart) TotalItems() int {
	return len(c.lines)
}

// TotalPriceCents is the sum of every line's total.
func (c Cart) TotalPriceCents() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.TotalCents
	}
	return total
}
