package pantry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func threshold(v float64) *float64 { return &v }

func onDate(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestIsLowStock(t *testing.T) {
	tests := []struct {
		name string
		item StockItem
		want bool
	}{
		{
			name: "QuantityAtThreshold_IsLow",
			item: StockItem{Quantity: 3, LowStockThreshold: threshold(3)},
			want: true,
		},
		{
			name: "QuantityAboveThreshold_IsNotLow",
			item: StockItem{Quantity: 4, LowStockThreshold: threshold(3)},
			want: false,
		},
		{
			name: "NoThreshold_DiscreteUnitBelowTwo_IsLow",
			item: StockItem{Quantity: 1, Unit: UnitPiece},
			want: true,
		},
		{
			name: "NoThreshold_DiscreteUnitAtTwo_IsNotLow",
			item: StockItem{Quantity: 2, Unit: UnitPack},
			want: false,
		},
		{
			name: "NoThreshold_ContinuousUnit_NeverFallsBack",
			item: StockItem{Quantity: 0.5, Unit: UnitGram},
			want: false,
		},
		{
			name: "ThresholdWinsOverFallback",
			item: StockItem{Quantity: 10, Unit: UnitPiece, LowStockThreshold: threshold(12)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLowStock(tt.item))
		})
	}
}

func TestIsExpiringSoon(t *testing.T) {
	ref := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry *time.Time
		want   bool
	}{
		{"SevenDaysOut_InsideWindow", onDate(2024, 1, 8), true},
		{"EightDaysOut_OutsideWindow", onDate(2024, 1, 9), false},
		{"AlreadyExpired_NotFlagged", onDate(2023, 12, 31), false},
		{"ExpiresToday_InsideWindow", onDate(2024, 1, 1), true},
		{"NoExpiryDate_NeverFlagged", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := StockItem{Name: "Yogurt", ExpiryDate: tt.expiry}
			assert.Equal(t, tt.want, IsExpiringSoon(item, ref, DefaultExpiryWindowDays))
		})
	}
}

func TestDaysUntilExpiry(t *testing.T) {
	ref := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("NoExpiry_ReportsAbsent", func(t *testing.T) {
		_, ok := DaysUntilExpiry(StockItem{}, ref)
		assert.False(t, ok)
	})

	t.Run("PartialDay_RoundsUp", func(t *testing.T) {
		expiry := ref.Add(36 * time.Hour)
		days, ok := DaysUntilExpiry(StockItem{ExpiryDate: &expiry}, ref)
		assert.True(t, ok)
		assert.Equal(t, 2, days)
	})

	t.Run("PastDate_IsNegative", func(t *testing.T) {
		days, ok := DaysUntilExpiry(StockItem{ExpiryDate: onDate(2023, 12, 31)}, ref)
		assert.True(t, ok)
		assert.Equal(t, -1, days)
	})
}
