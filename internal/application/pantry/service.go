// Package pantry provides the application layer for inventory management
// This implements the use cases defined in the inbound ports
package pantry

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pantrio/v1/internal/domain/pantry"
	"github.com/pantrio/v1/internal/ports/inbound"
	"github.com/pantrio/v1/internal/ports/outbound"
	"github.com/pantrio/v1/pkg/errors"
	"go.uber.org/zap"
)

// statsCacheTTL bounds how stale a cached dashboard summary may get.
const statsCacheTTL = 5 * time.Minute

// PantryService implements the inventory use cases. It loads snapshots
// from the repository and delegates every derived view and mutation rule
// to the domain engine; nothing here re-implements filtering or alerts.
type PantryService struct {
	itemRepo   outbound.StockItemRepository
	cache      outbound.CacheRepository
	logger     *zap.Logger
	windowDays int
}

// NewPantryService creates a new pantry service. windowDays tunes the
// expiring-soon horizon; zero selects the default.
func NewPantryService(
	itemRepo outbound.StockItemRepository,
	cache outbound.CacheRepository,
	logger *zap.Logger,
	windowDays int,
) inbound.PantryService {
	if windowDays <= 0 {
		windowDays = pantry.DefaultExpiryWindowDays
	}
	return &PantryService{
		itemRepo:   itemRepo,
		cache:      cache,
		logger:     logger.Named("pantry-service"),
		windowDays: windowDays,
	}
}

// AddItem creates a new stock item
func (s *PantryService) AddItem(ctx context.Context, cmd inbound.AddItemCommand) (*inbound.StockItemDTO, error) {
	s.logger.Info("Adding stock item",
		zap.String("name", cmd.Name),
		zap.String("kind", string(cmd.Kind)),
	)

	draft := pantry.Draft{
		Kind:              cmd.Kind,
		Name:              cmd.Name,
		Quantity:          cmd.Quantity,
		Unit:              cmd.Unit,
		Category:          cmd.Category,
		ExpiryDate:        cmd.ExpiryDate,
		LowStockThreshold: cmd.LowStockThreshold,
		EstimatedPrice:    cmd.EstimatedPrice,
		Priority:          cmd.Priority,
	}

	_, item, err := pantry.Add(nil, draft, time.Now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.itemRepo.Insert(ctx, *item); err != nil {
		return nil, errors.NewDatabaseError("insert stock item", err)
	}

	s.invalidateStats(ctx, item.Kind)

	dto := s.itemToDTO(*item, time.Now())

	s.logger.Info("Stock item added",
		zap.String("item_id", item.ID.String()),
		zap.String("name", item.Name),
	)

	return &dto, nil
}

// UpdateItem applies a partial field update to an item
func (s *PantryService) UpdateItem(ctx context.Context, cmd inbound.UpdateItemCommand) (*inbound.StockItemDTO, error) {
	s.logger.Info("Updating stock item", zap.String("item_id", cmd.ItemID.String()))

	item, err := s.findItem(ctx, cmd.ItemID)
	if err != nil {
		return nil, err
	}

	patch := pantry.Patch{
		Name:              cmd.Name,
		Quantity:          cmd.Quantity,
		Unit:              cmd.Unit,
		Category:          cmd.Category,
		ExpiryDate:        cmd.ExpiryDate,
		LowStockThreshold: cmd.LowStockThreshold,
		EstimatedPrice:    cmd.EstimatedPrice,
		Priority:          cmd.Priority,
	}

	next, err := pantry.Update([]pantry.StockItem{*item}, cmd.ItemID, patch)
	if err != nil {
		return nil, s.translateDomainError(err, cmd.ItemID)
	}

	if err := s.itemRepo.Update(ctx, next[0]); err != nil {
		return nil, errors.NewDatabaseError("update stock item", err)
	}

	s.invalidateStats(ctx, next[0].Kind)

	dto := s.itemToDTO(next[0], time.Now())
	return &dto, nil
}

// AdjustQuantity applies a delta to the item's quantity, clamped at zero
func (s *PantryService) AdjustQuantity(ctx context.Context, itemID uuid.UUID, delta float64) (*inbound.StockItemDTO, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	next, err := pantry.AdjustQuantity([]pantry.StockItem{*item}, itemID, delta)
	if err != nil {
		return nil, s.translateDomainError(err, itemID)
	}

	if err := s.itemRepo.Update(ctx, next[0]); err != nil {
		return nil, errors.NewDatabaseError("update stock item quantity", err)
	}

	s.invalidateStats(ctx, next[0].Kind)

	s.logger.Info("Quantity adjusted",
		zap.String("item_id", itemID.String()),
		zap.Float64("delta", delta),
		zap.Float64("quantity", next[0].Quantity),
	)

	dto := s.itemToDTO(next[0], time.Now())
	return &dto, nil
}

// ToggleChecked flips the done-flag of a shopping entry
func (s *PantryService) ToggleChecked(ctx context.Context, itemID uuid.UUID) (*inbound.StockItemDTO, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	next, err := pantry.ToggleChecked([]pantry.StockItem{*item}, itemID)
	if err != nil {
		return nil, s.translateDomainError(err, itemID)
	}

	if err := s.itemRepo.Update(ctx, next[0]); err != nil {
		return nil, errors.NewDatabaseError("toggle stock item", err)
	}

	s.invalidateStats(ctx, next[0].Kind)

	dto := s.itemToDTO(next[0], time.Now())
	return &dto, nil
}

// RemoveItem deletes an item. A stale id is reported as not found, never
// swallowed, so callers can detect dangling references.
func (s *PantryService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return err
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		if stderrors.Is(err, pantry.ErrItemNotFound) {
			return errors.NewItemNotFoundError(itemID.String())
		}
		return errors.NewDatabaseError("delete stock item", err)
	}

	s.invalidateStats(ctx, item.Kind)

	s.logger.Info("Stock item removed", zap.String("item_id", itemID.String()))
	return nil
}

// QueryItems produces the filtered, sorted view plus aggregates over the
// full collection
func (s *PantryService) QueryItems(ctx context.Context, kind pantry.ItemKind, query inbound.ItemQuery) (*inbound.ItemList, error) {
	items, err := s.itemRepo.ListByKind(ctx, kind)
	if err != nil {
		return nil, errors.NewDatabaseError("list stock items", err)
	}

	ref := query.ReferenceDate
	if ref.IsZero() {
		ref = time.Now()
	}

	view := pantry.Apply(items, pantry.Query{
		SearchText:       query.SearchText,
		Category:         query.Category,
		LowStockOnly:     query.LowStockOnly,
		ExpiringSoonOnly: query.ExpiringSoonOnly,
		SortKey:          query.SortKey,
		Scope:            scopeFor(kind),
		ReferenceDate:    ref,
		ExpiryWindowDays: s.windowDays,
	})

	dtos := make([]inbound.StockItemDTO, len(view))
	for i, item := range view {
		dtos[i] = s.itemToDTO(item, ref)
	}

	return &inbound.ItemList{
		Items: dtos,
		Stats: pantry.Summarize(items, ref),
	}, nil
}

// GetItemByID retrieves a single item
func (s *PantryService) GetItemByID(ctx context.Context, itemID uuid.UUID) (*inbound.StockItemDTO, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	dto := s.itemToDTO(*item, time.Now())
	return &dto, nil
}

// GetStats computes the dashboard aggregates for a collection, with a
// short-lived cache in front of the repository snapshot
func (s *PantryService) GetStats(ctx context.Context, kind pantry.ItemKind) (*pantry.Stats, error) {
	key := statsCacheKey(kind)

	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		var stats pantry.Stats
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
	}

	items, err := s.itemRepo.ListByKind(ctx, kind)
	if err != nil {
		return nil, errors.NewDatabaseError("list stock items", err)
	}

	stats := pantry.Summarize(items, time.Now())

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, key, payload, statsCacheTTL); err != nil {
			s.logger.Warn("Failed to cache stats",
				zap.String("kind", string(kind)),
				zap.Error(err),
			)
		}
	}

	return &stats, nil
}

// Helper methods

func (s *PantryService) findItem(ctx context.Context, itemID uuid.UUID) (*pantry.StockItem, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if stderrors.Is(err, pantry.ErrItemNotFound) {
			return nil, errors.NewItemNotFoundError(itemID.String())
		}
		return nil, errors.NewDatabaseError("find stock item", err)
	}
	return item, nil
}

// translateDomainError maps domain sentinels to the API error taxonomy.
func (s *PantryService) translateDomainError(err error, itemID uuid.UUID) error {
	if stderrors.Is(err, pantry.ErrItemNotFound) {
		return errors.NewItemNotFoundError(itemID.String())
	}
	return errors.NewValidationError(err.Error())
}

// itemToDTO converts a domain item to its transfer shape, computing the
// derived classifications at ref.
func (s *PantryService) itemToDTO(item pantry.StockItem, ref time.Time) inbound.StockItemDTO {
	dto := inbound.StockItemDTO{
		ID:                item.ID,
		Kind:              item.Kind,
		Name:              item.Name,
		Quantity:          item.Quantity,
		Unit:              item.Unit,
		Category:          item.Category,
		LowStockThreshold: item.LowStockThreshold,
		EstimatedPrice:    item.EstimatedPrice,
		Priority:          item.Priority,
		Checked:           item.Checked,
		AddedAt:           item.AddedAt.Format(time.RFC3339),
		LowStock:          pantry.IsLowStock(item),
		ExpiringSoon:      pantry.IsExpiringSoon(item, ref, s.windowDays),
	}

	if item.ExpiryDate != nil {
		expiry := item.ExpiryDate.Format("2006-01-02")
		dto.ExpiryDate = &expiry
	}
	if days, ok := pantry.DaysUntilExpiry(item, ref); ok {
		dto.DaysUntilExpiry = &days
	}

	return dto
}

// invalidateStats drops the cached summary after a mutation. Failures
// only shorten cache efficiency, so they are logged and dropped.
func (s *PantryService) invalidateStats(ctx context.Context, kind pantry.ItemKind) {
	if err := s.cache.Delete(ctx, statsCacheKey(kind)); err != nil {
		s.logger.Debug("Failed to invalidate stats cache",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}
}

func statsCacheKey(kind pantry.ItemKind) string {
	return fmt.Sprintf("stats:%s", kind)
}

func scopeFor(kind pantry.ItemKind) pantry.Scope {
	if kind == pantry.KindShopping {
		return pantry.ScopeShopping
	}
	return pantry.ScopePantry
}
