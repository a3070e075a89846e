package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/pantrio/v1/internal/domain/pantry"
)

// categories mirrors the grouping the mobile clients offer when adding
// an item.
var categories = []string{
	"Dairy", "Produce", "Meat", "Grains", "Snacks",
	"Beverages", "Frozen", "Household", pantry.CategoryOther,
}

var units = []pantry.Unit{
	pantry.UnitGram, pantry.UnitKilogram, pantry.UnitMilliliter,
	pantry.UnitLiter, pantry.UnitPiece, pantry.UnitPack,
	pantry.UnitBottle, pantry.UnitCan,
}

// StockItemFactory provides methods to create test stock items
type StockItemFactory struct {
	faker *gofakeit.Faker
}

// NewStockItemFactory creates a new factory with seeded faker so runs
// are reproducible.
func NewStockItemFactory(seed int64) *StockItemFactory {
	return &StockItemFactory{
		faker: gofakeit.New(seed),
	}
}

// PantryItem generates a random pantry item
func (f *StockItemFactory) PantryItem() pantry.StockItem {
	item := pantry.StockItem{
		ID:       uuid.New(),
		Kind:     pantry.KindPantry,
		Name:     f.faker.Fruit(),
		Quantity: float64(f.faker.Number(1, 10)),
		Unit:     units[f.faker.Number(0, len(units)-1)],
		Category: categories[f.faker.Number(0, len(categories)-1)],
		AddedAt:  time.Now().Add(-time.Duration(f.faker.Number(0, 72)) * time.Hour),
	}

	if f.faker.Bool() {
		expiry := time.Now().AddDate(0, 0, f.faker.Number(1, 30))
		item.ExpiryDate = &expiry
	}
	if f.faker.Bool() {
		threshold := float64(f.faker.Number(1, 3))
		item.LowStockThreshold = &threshold
	}

	return item
}

// ShoppingItem generates a random shopping-list entry
func (f *StockItemFactory) ShoppingItem() pantry.StockItem {
	priorities := []pantry.Priority{
		pantry.PriorityHigh, pantry.PriorityMedium, pantry.PriorityLow, "",
	}

	item := pantry.StockItem{
		ID:       uuid.New(),
		Kind:     pantry.KindShopping,
		Name:     f.faker.Vegetable(),
		Quantity: float64(f.faker.Number(1, 6)),
		Unit:     units[f.faker.Number(0, len(units)-1)],
		Category: categories[f.faker.Number(0, len(categories)-1)],
		Priority: priorities[f.faker.Number(0, len(priorities)-1)],
		Checked:  f.faker.Bool(),
		AddedAt:  time.Now().Add(-time.Duration(f.faker.Number(0, 72)) * time.Hour),
	}

	if f.faker.Bool() {
		price := f.faker.Price(0.5, 25)
		item.EstimatedPrice = &price
	}

	return item
}

// PantryItems generates n random pantry items
func (f *StockItemFactory) PantryItems(n int) []pantry.StockItem {
	items := make([]pantry.StockItem, n)
	for i := range items {
		items[i] = f.PantryItem()
	}
	return items
}

// StockItemBuilder provides a fluent interface for building test items
type StockItemBuilder struct {
	item pantry.StockItem
}

// NewStockItemBuilder creates a builder with sensible pantry defaults
func NewStockItemBuilder() *StockItemBuilder {
	return &StockItemBuilder{
		item: pantry.StockItem{
			ID:       uuid.New(),
			Kind:     pantry.KindPantry,
			Name:     "Test Item",
			Quantity: 1,
			Unit:     pantry.UnitPiece,
			Category: pantry.CategoryOther,
			AddedAt:  time.Now(),
		},
	}
}

// WithKind sets the collection the item belongs to
func (b *StockItemBuilder) WithKind(kind pantry.ItemKind) *StockItemBuilder {
	b.item.Kind = kind
	return b
}

// WithName sets the item name
func (b *StockItemBuilder) WithName(name string) *StockItemBuilder {
	b.item.Name = name
	return b
}

// WithQuantity sets quantity and unit together
func (b *StockItemBuilder) WithQuantity(quantity float64, unit pantry.Unit) *StockItemBuilder {
	b.item.Quantity = quantity
	b.item.Unit = unit
	return b
}

// WithCategory sets the category
func (b *StockItemBuilder) WithCategory(category string) *StockItemBuilder {
	b.item.Category = category
	return b
}

// WithExpiry sets the expiry date
func (b *StockItemBuilder) WithExpiry(expiry time.Time) *StockItemBuilder {
	b.item.ExpiryDate = &expiry
	return b
}

// WithThreshold sets the low stock threshold
func (b *StockItemBuilder) WithThreshold(threshold float64) *StockItemBuilder {
	b.item.LowStockThreshold = &threshold
	return b
}

// WithPrice sets the estimated price
func (b *StockItemBuilder) WithPrice(price float64) *StockItemBuilder {
	b.item.EstimatedPrice = &price
	return b
}

// WithPriority sets the priority
func (b *StockItemBuilder) WithPriority(priority pantry.Priority) *StockItemBuilder {
	b.item.Priority = priority
	return b
}

// WithChecked sets the checked flag
func (b *StockItemBuilder) WithChecked(checked bool) *StockItemBuilder {
	b.item.Checked = checked
	return b
}

// WithAddedAt sets the creation timestamp
func (b *StockItemBuilder) WithAddedAt(addedAt time.Time) *StockItemBuilder {
	b.item.AddedAt = addedAt
	return b
}

// Build returns the assembled item
func (b *StockItemBuilder) Build() pantry.StockItem {
	return b.item
}
