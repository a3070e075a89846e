// Package gorm provides GORM model definitions and repository
// implementations for the application
package gorm

import (
	"time"

	"github.com/google/uuid"
)

// StockItemModel represents the GORM model for stock items. Pantry
// items and shopping-list entries share one table, discriminated by
// Kind. The derived flags (low stock, expiring soon) are computed per
// request and never stored.
type StockItemModel struct {
	ID                uuid.UUID `gorm:"type:char(36);primaryKey"`
	Kind              string    `gorm:"type:varchar(16);not null;index"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Quantity          float64   `gorm:"not null"`
	Unit              string    `gorm:"type:varchar(32);not null"`
	Category          string    `gorm:"type:varchar(100);not null;index"`
	ExpiryDate        *time.Time
	LowStockThreshold *float64
	EstimatedPrice    *float64
	Priority          string `gorm:"type:varchar(16)"`
	Checked           bool   `gorm:"default:false"`
	AddedAt           time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name for StockItemModel
func (StockItemModel) TableName() string {
	return "stock_items"
}
