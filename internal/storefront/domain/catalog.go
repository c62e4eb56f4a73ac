package domain

// Category groups catalog items for display and preparation rules.
type Category string

const (
	CategoryFish      Category = "fish"
	CategoryWholeFish Category = "whole-fish"
	CategoryPrawns    Category = "prawns"
	CategoryOther     Category = "other"
)

// CatalogItem is immutable reference data describing one product sold by weight.
// Items are loaded once at process start and never modified by the storefront.
type CatalogItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	UnitPriceCents  int64    `json:"unit_price_cents"`
	UnitLabel       string   `json:"unit_label"`
	Category        Category `json:"category"`
	CategoryDisplay string   `json:"category_display"`
	PrepFeeCents    int64    `json:"prep_fee_cents"`
	PrepAllowed     bool     `json:"prep_allowed"`
}

// PrepLabel returns the human-readable description of the preparation service
// offered for this item's category.
func (i CatalogItem) PrepLabel() string {
	switch i.Category {
	case CategoryFish:
		return "Fillet & Gutted"
	case CategoryWholeFish:
		return "Cleaned & Descaled"
	case CategoryPrawns:
		return "Deveined & Peeled"
	case CategoryOther:
		if i.PrepAllowed {
			return "Cleaned"
		}
	}
	return "As Is"
}
