package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pantrio/v1/internal/domain/pantry"
	"github.com/pantrio/v1/internal/ports/outbound"
	"gorm.io/gorm"
)

// StockItemRepository implements the stock item repository interface using GORM
type StockItemRepository struct {
	db *gorm.DB
}

// NewStockItemRepository creates a new stock item repository
func NewStockItemRepository(db *gorm.DB) outbound.StockItemRepository {
	return &StockItemRepository{db: db}
}

// ListByKind returns all items of one kind. Rows come back in insertion
// order; the application layer owns sorting.
func (r *StockItemRepository) ListByKind(ctx context.Context, kind pantry.ItemKind) ([]pantry.StockItem, error) {
	var models []StockItemModel

	result := r.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order("added_at ASC").
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]pantry.StockItem, len(models))
	for i := range models {
		items[i] = ModelToItem(&models[i])
	}
	return items, nil
}

// FindByID finds a stock item by ID
func (r *StockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*pantry.StockItem, error) {
	var model StockItemModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, pantry.ErrItemNotFound
		}
		return nil, result.Error
	}

	item := ModelToItem(&model)
	return &item, nil
}

// Insert creates a new stock item row
func (r *StockItemRepository) Insert(ctx context.Context, item pantry.StockItem) error {
	model := ItemToModel(item)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Update replaces an existing stock item row
func (r *StockItemRepository) Update(ctx context.Context, item pantry.StockItem) error {
	model := ItemToModel(item)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return pantry.ErrItemNotFound
	}

	return nil
}

// Delete removes a stock item by ID
func (r *StockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&StockItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return pantry.ErrItemNotFound
	}

	return nil
}
