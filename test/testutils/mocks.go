// Package testutils provides mock implementations and test data factories
package testutils

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pantrio/v1/internal/domain/pantry"
	"github.com/pantrio/v1/internal/ports/inbound"
	"github.com/stretchr/testify/mock"
)

// MockStockItemRepository provides a mock implementation of StockItemRepository
type MockStockItemRepository struct {
	mock.Mock
	items map[uuid.UUID]pantry.StockItem
	mu    sync.RWMutex
}

// NewMockStockItemRepository creates a new mock stock item repository
func NewMockStockItemRepository() *MockStockItemRepository {
	return &MockStockItemRepository{
		items: make(map[uuid.UUID]pantry.StockItem),
	}
}

// Seed places items directly into the mock's backing map, bypassing
// expectations. Useful for arranging state before exercising queries.
func (m *MockStockItemRepository) Seed(items ...pantry.StockItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range items {
		m.items[item.ID] = item
	}
}

// ListByKind lists items of one kind
func (m *MockStockItemRepository) ListByKind(ctx context.Context, kind pantry.ItemKind) ([]pantry.StockItem, error) {
	args := m.Called(ctx, kind)

	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	if args.Get(0) != nil {
		return args.Get(0).([]pantry.StockItem), args.Error(1)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []pantry.StockItem
	for _, item := range m.items {
		if item.Kind == kind {
			result = append(result, item)
		}
	}
	return result, nil
}

// FindByID finds an item by ID
func (m *MockStockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*pantry.StockItem, error) {
	args := m.Called(ctx, id)

	if args.Error(1) != nil {
		return nil, args.Error(1)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if item, exists := m.items[id]; exists {
		return &item, nil
	}

	return args.Get(0).(*pantry.StockItem), args.Error(1)
}

// Insert stores a new item
func (m *MockStockItemRepository) Insert(ctx context.Context, item pantry.StockItem) error {
	args := m.Called(ctx, item)

	if args.Error(0) == nil {
		m.mu.Lock()
		m.items[item.ID] = item
		m.mu.Unlock()
	}

	return args.Error(0)
}

// Update replaces a stored item
func (m *MockStockItemRepository) Update(ctx context.Context, item pantry.StockItem) error {
	args := m.Called(ctx, item)

	if args.Error(0) == nil {
		m.mu.Lock()
		m.items[item.ID] = item
		m.mu.Unlock()
	}

	return args.Error(0)
}

// Delete removes an item
func (m *MockStockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	if args.Error(0) == nil {
		m.mu.Lock()
		delete(m.items, id)
		m.mu.Unlock()
	}

	return args.Error(0)
}

// SetupStandardMockBehavior sets up common mock behaviors
func (m *MockStockItemRepository) SetupStandardMockBehavior() {
	m.On("Insert", mock.Anything, mock.AnythingOfType("pantry.StockItem")).
		Return(nil)

	m.On("Update", mock.Anything, mock.AnythingOfType("pantry.StockItem")).
		Return(nil)

	m.On("Delete", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	m.On("FindByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return((*pantry.StockItem)(nil), pantry.ErrItemNotFound)

	m.On("ListByKind", mock.Anything, mock.AnythingOfType("pantry.ItemKind")).
		Return(nil, nil)
}

// MockCacheRepository provides a mock implementation of CacheRepository
type MockCacheRepository struct {
	mock.Mock
	entries map[string][]byte
	mu      sync.RWMutex
}

// NewMockCacheRepository creates a new mock cache repository
func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{
		entries: make(map[string][]byte),
	}
}

// Get retrieves a cached value
func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)

	if args.Error(1) != nil {
		return nil, args.Error(1)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if value, exists := m.entries[key]; exists {
		return value, nil
	}
	if args.Get(0) != nil {
		return args.Get(0).([]byte), args.Error(1)
	}
	return nil, nil
}

// Set stores a value
func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)

	if args.Error(0) == nil {
		m.mu.Lock()
		m.entries[key] = value
		m.mu.Unlock()
	}

	return args.Error(0)
}

// Delete removes a value
func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)

	if args.Error(0) == nil {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
	}

	return args.Error(0)
}

// Exists reports whether a key is present
func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)

	if args.Error(1) != nil {
		return false, args.Error(1)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.entries[key]
	return exists, nil
}

// SetupStandardMockBehavior sets up common mock behaviors
func (m *MockCacheRepository) SetupStandardMockBehavior() {
	m.On("Get", mock.Anything, mock.AnythingOfType("string")).
		Return(nil, nil)

	m.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8"), mock.AnythingOfType("time.Duration")).
		Return(nil)

	m.On("Delete", mock.Anything, mock.AnythingOfType("string")).
		Return(nil)

	m.On("Exists", mock.Anything, mock.AnythingOfType("string")).
		Return(false, nil)
}

// MockPantryService provides a mock implementation of the inbound
// pantry service, for handler-level tests
type MockPantryService struct {
	mock.Mock
}

// NewMockPantryService creates a new mock pantry service
func NewMockPantryService() *MockPantryService {
	return &MockPantryService{}
}

// AddItem creates a new stock item
func (m *MockPantryService) AddItem(ctx context.Context, cmd inbound.AddItemCommand) (*inbound.StockItemDTO, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.StockItemDTO), args.Error(1)
}

// UpdateItem applies a partial update
func (m *MockPantryService) UpdateItem(ctx context.Context, cmd inbound.UpdateItemCommand) (*inbound.StockItemDTO, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.StockItemDTO), args.Error(1)
}

// AdjustQuantity applies a quantity delta
func (m *MockPantryService) AdjustQuantity(ctx context.Context, itemID uuid.UUID, delta float64) (*inbound.StockItemDTO, error) {
	args := m.Called(ctx, itemID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.StockItemDTO), args.Error(1)
}

// ToggleChecked flips the done-flag
func (m *MockPantryService) ToggleChecked(ctx context.Context, itemID uuid.UUID) (*inbound.StockItemDTO, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.StockItemDTO), args.Error(1)
}

// RemoveItem deletes an item
func (m *MockPantryService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

// QueryItems produces a derived view
func (m *MockPantryService) QueryItems(ctx context.Context, kind pantry.ItemKind, query inbound.ItemQuery) (*inbound.ItemList, error) {
	args := m.Called(ctx, kind, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.ItemList), args.Error(1)
}

// GetItemByID retrieves one item
func (m *MockPantryService) GetItemByID(ctx context.Context, itemID uuid.UUID) (*inbound.StockItemDTO, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.StockItemDTO), args.Error(1)
}

// GetStats computes collection aggregates
func (m *MockPantryService) GetStats(ctx context.Context, kind pantry.ItemKind) (*pantry.Stats, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pantry.Stats), args.Error(1)
}
