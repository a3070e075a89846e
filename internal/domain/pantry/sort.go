package pantry

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the comparator for a derived view.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByCategory SortKey = "category"
	SortByAdded    SortKey = "added"
	SortByExpiry   SortKey = "expiry"
	SortByPriority SortKey = "priority"
	SortByChecked  SortKey = "checked"
)

// sortItems orders the view in place. Every comparator is stable so
// equal keys keep their original relative order and list rendering stays
// predictable across refreshes. An unknown or empty key sorts by name.
func sortItems(items []StockItem, key SortKey) {
	switch key {
	case SortByCategory:
		col := collate.New(language.English)
		sort.SliceStable(items, func(i, j int) bool {
			return col.CompareString(items[i].Category, items[j].Category) < 0
		})
	case SortByAdded:
		// Most recently added first.
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].AddedAt.After(items[j].AddedAt)
		})
	case SortByExpiry:
		sort.SliceStable(items, func(i, j int) bool {
			return expiryBefore(items[i], items[j])
		})
	case SortByPriority:
		// Highest severity first; unset priority ranks last.
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Priority.Rank() > items[j].Priority.Rank()
		})
	case SortByChecked:
		// Unchecked entries surface first.
		sort.SliceStable(items, func(i, j int) bool {
			return !items[i].Checked && items[j].Checked
		})
	default:
		col := collate.New(language.English)
		sort.SliceStable(items, func(i, j int) bool {
			return col.CompareString(items[i].Name, items[j].Name) < 0
		})
	}
}

// expiryBefore orders by expiry date ascending with the rule that items
// without an expiry date always sort after items that have one.
func expiryBefore(a, b StockItem) bool {
	switch {
	case a.ExpiryDate == nil:
		return false
	case b.ExpiryDate == nil:
		return true
	default:
		return a.ExpiryDate.Before(*b.ExpiryDate)
	}
}
