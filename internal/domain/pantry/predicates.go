package pantry

import (
	"math"
	"time"
)

// DefaultExpiryWindowDays is the look-ahead window for the expiring-soon
// classification.
const DefaultExpiryWindowDays = 7

// fallbackLowQuantity is the implicit low-stock boundary for items with
// no threshold and a discrete-count unit.
const fallbackLowQuantity = 2

// IsLowStock reports whether the item needs restocking.
//
// With a threshold the boundary is inclusive: quantity <= threshold.
// Without one, quantity < 2 counts as low, but only for discrete-count
// units. Continuous units (g, ml, ...) never use the fallback; a 1.5 kg
// bag of flour is not "low" just because 1.5 < 2.
func IsLowStock(item StockItem) bool {
	if item.LowStockThreshold != nil {
		return item.Quantity <= *item.LowStockThreshold
	}
	if !item.Unit.IsDiscrete() {
		return false
	}
	return item.Quantity < fallbackLowQuantity
}

// DaysUntilExpiry returns the whole days remaining before the item
// expires, rounding partial days up. The second return is false when the
// item has no expiry date.
func DaysUntilExpiry(item StockItem, ref time.Time) (int, bool) {
	if item.ExpiryDate == nil {
		return 0, false
	}
	hours := item.ExpiryDate.Sub(ref).Hours()
	return int(math.Ceil(hours / 24)), true
}

// IsExpiringSoon reports whether the item's expiry date falls within
// windowDays of ref. Items without an expiry date never match, and
// neither do items already past their date: the window is [0, windowDays].
func IsExpiringSoon(item StockItem, ref time.Time, windowDays int) bool {
	days, ok := DaysUntilExpiry(item, ref)
	if !ok {
		return false
	}
	return days >= 0 && days <= windowDays
}
