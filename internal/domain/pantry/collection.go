package pantry

import (
	"time"

	"github.com/google/uuid"
)

// Collection mutations. Each operation returns a fresh slice and leaves
// the input untouched, so a failed validation can never leave a caller
// holding a partially updated collection.

// Add validates the draft and appends a new item with a fresh id. The
// unit defaults to piece and the category to Other when the draft leaves
// them empty.
func Add(items []StockItem, draft Draft, now time.Time) ([]StockItem, *StockItem, error) {
	if err := draft.Validate(); err != nil {
		return nil, nil, err
	}

	item := StockItem{
		ID:       uuid.New(),
		Kind:     draft.Kind,
		Name:     draft.Name,
		Quantity: *draft.Quantity,
		Unit:     draft.Unit,
		Category: draft.Category,
		Priority: draft.Priority,
		AddedAt:  now,
	}
	if item.Unit == "" {
		item.Unit = UnitPiece
	}
	if item.Category == "" {
		item.Category = CategoryOther
	}
	if draft.ExpiryDate != nil {
		expiry := *draft.ExpiryDate
		item.ExpiryDate = &expiry
	}
	if draft.LowStockThreshold != nil {
		threshold := *draft.LowStockThreshold
		item.LowStockThreshold = &threshold
	}
	if draft.EstimatedPrice != nil {
		price := *draft.EstimatedPrice
		item.EstimatedPrice = &price
	}

	next := make([]StockItem, len(items), len(items)+1)
	copy(next, items)
	next = append(next, item)

	return next, &item, nil
}

// AdjustQuantity applies a delta to the item's quantity, clamping at
// zero. Clamping applies only here; negative quantities at creation or
// update time are rejected outright.
func AdjustQuantity(items []StockItem, id uuid.UUID, delta float64) ([]StockItem, error) {
	return mutate(items, id, func(item *StockItem) error {
		item.Quantity += delta
		if item.Quantity < 0 {
			item.Quantity = 0
		}
		return nil
	})
}

// Update applies a partial field update. Validation happens before
// anything is copied, so the collection is unchanged on failure.
func Update(items []StockItem, id uuid.UUID, patch Patch) ([]StockItem, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return mutate(items, id, func(item *StockItem) error {
		patch.apply(item)
		return nil
	})
}

// ToggleChecked flips the done-flag of a shopping entry.
func ToggleChecked(items []StockItem, id uuid.UUID) ([]StockItem, error) {
	return mutate(items, id, func(item *StockItem) error {
		item.Checked = !item.Checked
		return nil
	})
}

// Remove deletes the item. Removing an id that is not present is
// ErrItemNotFound rather than a silent no-op, so callers can detect
// stale references.
func Remove(items []StockItem, id uuid.UUID) ([]StockItem, error) {
	index := indexOf(items, id)
	if index < 0 {
		return nil, ErrItemNotFound
	}

	next := make([]StockItem, 0, len(items)-1)
	next = append(next, items[:index]...)
	next = append(next, items[index+1:]...)
	return next, nil
}

// mutate copies the collection and applies fn to the targeted item.
func mutate(items []StockItem, id uuid.UUID, fn func(*StockItem) error) ([]StockItem, error) {
	index := indexOf(items, id)
	if index < 0 {
		return nil, ErrItemNotFound
	}

	next := make([]StockItem, len(items))
	copy(next, items)
	if err := fn(&next[index]); err != nil {
		return nil, err
	}
	return next, nil
}

func indexOf(items []StockItem, id uuid.UUID) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
