// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pantrio/v1/internal/domain/pantry"
)

// StockItemRepository defines the persistence contract for stock items.
// The store is a flat table keyed by item id; the application reads a
// full snapshot per kind and runs every derived view in memory.
type StockItemRepository interface {
	ListByKind(ctx context.Context, kind pantry.ItemKind) ([]pantry.StockItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*pantry.StockItem, error)
	Insert(ctx context.Context, item pantry.StockItem) error
	Update(ctx context.Context, item pantry.StockItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
