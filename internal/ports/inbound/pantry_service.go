// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pantrio/v1/internal/domain/pantry"
)

// PantryService defines the use cases for pantry and shopping-list
// inventory. This is the primary port that HTTP handlers use.
type PantryService interface {
	// Commands - operations that modify state
	AddItem(ctx context.Context, cmd AddItemCommand) (*StockItemDTO, error)
	UpdateItem(ctx context.Context, cmd UpdateItemCommand) (*StockItemDTO, error)
	AdjustQuantity(ctx context.Context, itemID uuid.UUID, delta float64) (*StockItemDTO, error)
	ToggleChecked(ctx context.Context, itemID uuid.UUID) (*StockItemDTO, error)
	RemoveItem(ctx context.Context, itemID uuid.UUID) error

	// Queries - operations that read state
	QueryItems(ctx context.Context, kind pantry.ItemKind, query ItemQuery) (*ItemList, error)
	GetItemByID(ctx context.Context, itemID uuid.UUID) (*StockItemDTO, error)
	GetStats(ctx context.Context, kind pantry.ItemKind) (*pantry.Stats, error)
}

// Command objects for operations

// AddItemCommand contains data for creating a new stock item.
type AddItemCommand struct {
	Kind              pantry.ItemKind
	Name              string
	Quantity          *float64
	Unit              pantry.Unit
	Category          string
	ExpiryDate        *time.Time
	LowStockThreshold *float64
	EstimatedPrice    *float64
	Priority          pantry.Priority
}

// UpdateItemCommand contains a partial field update for an item.
type UpdateItemCommand struct {
	ItemID            uuid.UUID
	Name              *string
	Quantity          *float64
	Unit              *pantry.Unit
	Category          *string
	ExpiryDate        *time.Time
	LowStockThreshold *float64
	EstimatedPrice    *float64
	Priority          *pantry.Priority
}

// Query objects

// ItemQuery carries the view parameters for a single list request.
type ItemQuery struct {
	SearchText       string
	Category         string
	LowStockOnly     bool
	ExpiringSoonOnly bool
	SortKey          pantry.SortKey
	ReferenceDate    time.Time
}

// Response DTOs

// StockItemDTO is the data transfer object for stock items. LowStock,
// ExpiringSoon and DaysUntilExpiry are derived per request; they are
// never persisted.
type StockItemDTO struct {
	ID                uuid.UUID       `json:"id"`
	Kind              pantry.ItemKind `json:"kind"`
	Name              string          `json:"name"`
	Quantity          float64         `json:"quantity"`
	Unit              pantry.Unit     `json:"unit"`
	Category          string          `json:"category"`
	ExpiryDate        *string         `json:"expiry_date,omitempty"`
	LowStockThreshold *float64        `json:"low_stock_threshold,omitempty"`
	EstimatedPrice    *float64        `json:"estimated_price,omitempty"`
	Priority          pantry.Priority `json:"priority,omitempty"`
	Checked           bool            `json:"checked"`
	AddedAt           string          `json:"added_at"`
	LowStock          bool            `json:"low_stock"`
	ExpiringSoon      bool            `json:"expiring_soon"`
	DaysUntilExpiry   *int            `json:"days_until_expiry,omitempty"`
}

// ItemList is a derived view plus the aggregates over the full
// collection it was computed from.
type ItemList struct {
	Items []StockItemDTO `json:"items"`
	Stats pantry.Stats   `json:"stats"`
}
