package pantry

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func price(v float64) *float64 { return &v }

func TestSummarizeEmptyCollection(t *testing.T) {
	stats := Summarize(nil, time.Now())

	assert.Equal(t, 0, stats.TotalCount)
	assert.Equal(t, 0, stats.CompletionPercentage)
	assert.Equal(t, 0.0, stats.EstimatedTotalCost)
}

func TestSummarizeCounts(t *testing.T) {
	ref := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	soon := ref.AddDate(0, 0, 3)

	items := []StockItem{
		{ID: uuid.New(), Name: "Milk", Quantity: 1, Unit: UnitLiter, LowStockThreshold: threshold(2), Checked: true, EstimatedPrice: price(1.5)},
		{ID: uuid.New(), Name: "Yogurt", Quantity: 4, Unit: UnitPiece, ExpiryDate: &soon, EstimatedPrice: price(3.25)},
		{ID: uuid.New(), Name: "Rice", Quantity: 5, Unit: UnitKilogram},
	}

	stats := Summarize(items, ref)

	assert.Equal(t, 3, stats.TotalCount)
	assert.Equal(t, 1, stats.CheckedCount)
	assert.Equal(t, 33, stats.CompletionPercentage)
	assert.Equal(t, 1, stats.LowStockCount)
	assert.Equal(t, 1, stats.ExpiringSoonCount)
	assert.InDelta(t, 4.75, stats.EstimatedTotalCost, 1e-9)
}

func TestSummarizeCompletionRounding(t *testing.T) {
	items := []StockItem{
		{ID: uuid.New(), Name: "A", Checked: true},
		{ID: uuid.New(), Name: "B", Checked: true},
		{ID: uuid.New(), Name: "C"},
	}

	stats := Summarize(items, time.Now())

	// 2/3 rounds to 67, not truncated to 66.
	assert.Equal(t, 67, stats.CompletionPercentage)
}
