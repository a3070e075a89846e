package gorm

import (
	"github.com/pantrio/v1/internal/domain/pantry"
)

// ItemToModel converts a domain stock item to its GORM model
func ItemToModel(item pantry.StockItem) *StockItemModel {
	return &StockItemModel{
		ID:                item.ID,
		Kind:              string(item.Kind),
		Name:              item.Name,
		Quantity:          item.Quantity,
		Unit:              string(item.Unit),
		Category:          item.Category,
		ExpiryDate:        item.ExpiryDate,
		LowStockThreshold: item.LowStockThreshold,
		EstimatedPrice:    item.EstimatedPrice,
		Priority:          string(item.Priority),
		Checked:           item.Checked,
		AddedAt:           item.AddedAt,
	}
}

// ModelToItem converts a GORM model to a domain stock item
func ModelToItem(model *StockItemModel) pantry.StockItem {
	return pantry.StockItem{
		ID:                model.ID,
		Kind:              pantry.ItemKind(model.Kind),
		Name:              model.Name,
		Quantity:          model.Quantity,
		Unit:              pantry.Unit(model.Unit),
		Category:          model.Category,
		ExpiryDate:        model.ExpiryDate,
		LowStockThreshold: model.LowStockThreshold,
		EstimatedPrice:    model.EstimatedPrice,
		Priority:          pantry.Priority(model.Priority),
		Checked:           model.Checked,
		AddedAt:           model.AddedAt,
	}
}
