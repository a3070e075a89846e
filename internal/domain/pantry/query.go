package pantry

import (
	"strconv"
	"strings"
	"time"
)

// Scope selects how wide the text search reaches. Pantry views match the
// item name only; shopping views also match quantity, unit and category
// display text.
type Scope string

const (
	ScopePantry   Scope = "pantry"
	ScopeShopping Scope = "shopping"
)

// Query is the descriptor for a single derived view. Zero values mean
// "no filter" / default sort, so an empty Query returns the whole
// collection ordered by name.
type Query struct {
	SearchText       string
	Category         string // "" or CategoryAll disables the filter
	LowStockOnly     bool
	ExpiringSoonOnly bool
	SortKey          SortKey
	Scope            Scope
	ReferenceDate    time.Time // zero means time.Now()
	ExpiryWindowDays int       // zero means DefaultExpiryWindowDays
}

func (q Query) reference() time.Time {
	if q.ReferenceDate.IsZero() {
		return time.Now()
	}
	return q.ReferenceDate
}

func (q Query) window() int {
	if q.ExpiryWindowDays == 0 {
		return DefaultExpiryWindowDays
	}
	return q.ExpiryWindowDays
}

// Apply produces the filtered, sorted view for the query. The pipeline
// order is fixed so results are reproducible: search, category,
// low-stock, expiring-soon, then a stable sort. The input slice is never
// mutated; no matches yields an empty slice, not an error.
func Apply(items []StockItem, q Query) []StockItem {
	view := make([]StockItem, 0, len(items))

	needle := strings.ToLower(strings.TrimSpace(q.SearchText))
	ref := q.reference()
	window := q.window()

	for _, item := range items {
		if needle != "" && !matchesSearch(item, needle, q.Scope) {
			continue
		}
		if q.Category != "" && q.Category != CategoryAll && item.Category != q.Category {
			continue
		}
		if q.LowStockOnly && !IsLowStock(item) {
			continue
		}
		if q.ExpiringSoonOnly && !IsExpiringSoon(item, ref, window) {
			continue
		}
		view = append(view, item)
	}

	sortItems(view, q.SortKey)
	return view
}

// matchesSearch implements the case-insensitive substring match. The
// needle is already lower-cased and non-empty.
func matchesSearch(item StockItem, needle string, scope Scope) bool {
	if strings.Contains(strings.ToLower(item.Name), needle) {
		return true
	}
	if scope != ScopeShopping {
		return false
	}
	if strings.Contains(strings.ToLower(item.Category), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(string(item.Unit)), needle) {
		return true
	}
	quantity := strconv.FormatFloat(item.Quantity, 'f', -1, 64)
	return strings.Contains(quantity, needle)
}
