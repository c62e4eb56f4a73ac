package memory

import "github.com/seasideseafood/storefront/internal/storefront/domain"

const (
	fishDisplay      = "Fresh Fish (Fillet)"
	wholeFishDisplay = "Whole Fish (Small)"
	prawnsDisplay    = "Premium Prawns"
	otherDisplay     = "Other Seafood"
)

// seedCatalog is the storefront's product list. Prices are KSh per KG in
// cents; preparation fees are flat per line. Only kalamari and octopus in the
// "other" category offer preparation.
func seedCatalog() []domain.CatalogItem {
	fish := func(id, name string) domain.CatalogItem {
		return domain.CatalogItem{
			ID: id, Name: name,
			UnitPriceCents: 65000, UnitLabel: "1 KG",
			Category: domain.CategoryFish, CategoryDisplay: fishDisplay,
			PrepFeeCents: 20000, PrepAllowed: true,
		}
	}
	whole := func(id, name string) domain.CatalogItem {
		return domain.CatalogItem{
			ID: id, Name: name,
			UnitPriceCents: 60000, UnitLabel: "1 KG",
			Category: domain.CategoryWholeFish, CategoryDisplay: wholeFishDisplay,
			PrepFeeCents: 15000, PrepAllowed: true,
		}
	}
	prawn := func(id, name string, priceCents int64) domain.CatalogItem {
		return domain.CatalogItem{
			ID: id, Name: name,
			UnitPriceCents: priceCents, UnitLabel: "1 KG",
			Category: domain.CategoryPrawns, CategoryDisplay: prawnsDisplay,
			PrepFeeCents: 20000, PrepAllowed: true,
		}
	}
	other := func(id, name string, priceCents int64, prepAllowed bool) domain.CatalogItem {
		return domain.CatalogItem{
			ID: id, Name: name,
			UnitPriceCents: priceCents, UnitLabel: "1 KG",
			Category: domain.CategoryOther, CategoryDisplay: otherDisplay,
			PrepFeeCents: 20000, PrepAllowed: prepAllowed,
		}
	}

	return []domain.CatalogItem{
		fish("tuna-fillet", "Tuna"),
		fish("red-snapper-fillet", "Red Snapper"),
		fish("white-snapper-fillet", "White Snapper"),
		fish("parrot-fish-fillet", "Parrot Fish"),
		fish("black-runner-fillet", "Black Runner"),
		fish("rockod-fish-fillet", "Rockod Fish (Tewa)"),
		fish("seabus-fillet", "Seabus"),
		fish("kingfish-fillet", "KingFish"),
		fish("kolekole-fillet", "Kolekole"),
		fish("pandu-fillet", "Pandu"),
		fish("baracuda-fillet", "Baracuda"),

		whole("taffi-whole", "Taffi"),
		whole("changu-whole", "Changu"),
		whole("kolekole-whole", "Kolekole"),
		whole("red-snapper-whole", "Red Snapper"),
		whole("white-snapper-whole", "White Snapper"),

		prawn("king-prawns", "King Prawns", 250000),
		prawn("queen-prawns", "Queen Prawns", 140000),
		prawn("tiger-prawns", "Tiger Prawns", 200000),
		prawn("jumbo-prawns", "Jumbo Prawns", 320000),
		prawn("mixed-prawns", "Mixed Prawns", 160000),

		other("kalamari", "Kalamari (Squid)", 80000, true),
		other("octopus", "Octopus", 60000, true),
		other("lobster", "Lobster", 240000, false),
		other("oyster", "Oyster", 55000, false),
		other("crabs", "Crabs", 75000, false),
	}
}
