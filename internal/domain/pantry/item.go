// Package pantry contains the core domain logic for stock tracking.
// A single StockItem shape backs both the pantry and the shopping list;
// every derived view (filtering, sorting, alerts, aggregates) is computed
// here so the callers stay thin.
package pantry

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// StockItem represents one tracked ingredient or shopping entry.
type StockItem struct {
	ID   uuid.UUID
	Kind ItemKind

	// Basic attributes
	Name     string
	Quantity float64
	Unit     Unit
	Category string

	// Alerting metadata; low-stock status is always derived from these,
	// never stored.
	ExpiryDate        *time.Time
	LowStockThreshold *float64

	// Shopping-list attributes
	EstimatedPrice *float64
	Priority       Priority
	Checked        bool

	AddedAt time.Time
}

// Draft holds the caller-supplied fields for a new item. Quantity is a
// pointer so that "absent" and "zero" stay distinguishable at creation.
type Draft struct {
	Kind              ItemKind
	Name              string
	Quantity          *float64
	Unit              Unit
	Category          string
	ExpiryDate        *time.Time
	LowStockThreshold *float64
	EstimatedPrice    *float64
	Priority          Priority
}

// Validate checks the draft against the creation rules. A negative
// quantity is rejected here, not clamped; clamping is reserved for
// delta adjustments.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if d.Quantity == nil {
		return ErrQuantityRequired
	}
	if *d.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if d.LowStockThreshold != nil && *d.LowStockThreshold < 0 {
		return ErrNegativeThreshold
	}
	if d.EstimatedPrice != nil && *d.EstimatedPrice < 0 {
		return ErrNegativePrice
	}
	if err := d.Priority.Validate(); err != nil {
		return err
	}
	return nil
}

// Patch describes a partial update. Nil fields are left untouched;
// present fields go through the same validation as Draft.
type Patch struct {
	Name              *string
	Quantity          *float64
	Unit              *Unit
	Category          *string
	ExpiryDate        *time.Time
	LowStockThreshold *float64
	EstimatedPrice    *float64
	Priority          *Priority
}

// Validate checks every field present in the patch.
func (p Patch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return ErrEmptyName
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if p.LowStockThreshold != nil && *p.LowStockThreshold < 0 {
		return ErrNegativeThreshold
	}
	if p.EstimatedPrice != nil && *p.EstimatedPrice < 0 {
		return ErrNegativePrice
	}
	if p.Priority != nil {
		if err := p.Priority.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// apply copies the present patch fields onto the item.
func (p Patch) apply(item *StockItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		item.Unit = *p.Unit
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.ExpiryDate != nil {
		expiry := *p.ExpiryDate
		item.ExpiryDate = &expiry
	}
	if p.LowStockThreshold != nil {
		threshold := *p.LowStockThreshold
		item.LowStockThreshold = &threshold
	}
	if p.EstimatedPrice != nil {
		price := *p.EstimatedPrice
		item.EstimatedPrice = &price
	}
	if p.Priority != nil {
		item.Priority = *p.Priority
	}
}
