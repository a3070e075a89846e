package pantry

import (
	"math"
	"time"
)

// Stats holds the summary aggregates for dashboard widgets. They are
// computed over the full collection, not a filtered view.
type Stats struct {
	TotalCount           int     `json:"total_count"`
	CheckedCount         int     `json:"checked_count"`
	CompletionPercentage int     `json:"completion_percentage"`
	LowStockCount        int     `json:"low_stock_count"`
	ExpiringSoonCount    int     `json:"expiring_soon_count"`
	EstimatedTotalCost   float64 `json:"estimated_total_cost"`
}

// Summarize computes the aggregates at ref. A missing estimated price
// counts as zero, and the completion percentage of an empty collection
// is 0, never a division error.
func Summarize(items []StockItem, ref time.Time) Stats {
	stats := Stats{TotalCount: len(items)}

	for _, item := range items {
		if item.Checked {
			stats.CheckedCount++
		}
		if IsLowStock(item) {
			stats.LowStockCount++
		}
		if IsExpiringSoon(item, ref, DefaultExpiryWindowDays) {
			stats.ExpiringSoonCount++
		}
		if item.EstimatedPrice != nil {
			stats.EstimatedTotalCost += *item.EstimatedPrice
		}
	}

	if stats.TotalCount > 0 {
		ratio := float64(stats.CheckedCount) / float64(stats.TotalCount)
		stats.CompletionPercentage = int(math.Round(ratio * 100))
	}

	return stats
}
