package pantry_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	pantryapp "github.com/pantrio/v1/internal/application/pantry"
	"github.com/pantrio/v1/internal/domain/pantry"
	"github.com/pantrio/v1/internal/ports/inbound"
	"github.com/pantrio/v1/pkg/errors"
	"github.com/pantrio/v1/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type ServiceTestSuite struct {
	suite.Suite
	repo    *testutils.MockStockItemRepository
	cache   *testutils.MockCacheRepository
	service inbound.PantryService
	ctx     context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.repo = testutils.NewMockStockItemRepository()
	s.cache = testutils.NewMockCacheRepository()
	s.service = pantryapp.NewPantryService(s.repo, s.cache, zap.NewNop(), 0)
	s.ctx = context.Background()
}

func (s *ServiceTestSuite) TestAddItem() {
	s.Run("ValidCommand_ShouldPersistAndReturnDTO", func() {
		s.SetupTest()
		s.repo.On("Insert", mock.Anything, mock.AnythingOfType("pantry.StockItem")).Return(nil)
		s.cache.On("Delete", mock.Anything, "stats:pantry").Return(nil)

		qty := 2.0
		dto, err := s.service.AddItem(s.ctx, inbound.AddItemCommand{
			Kind:     pantry.KindPantry,
			Name:     "Milk",
			Quantity: &qty,
			Unit:     pantry.UnitLiter,
			Category: "Dairy",
		})

		require.NoError(s.T(), err)
		assert.NotEqual(s.T(), uuid.Nil, dto.ID)
		assert.Equal(s.T(), "Milk", dto.Name)
		assert.Equal(s.T(), 2.0, dto.Quantity)
		assert.Equal(s.T(), pantry.KindPantry, dto.Kind)
		s.repo.AssertExpectations(s.T())
	})

	s.Run("EmptyName_ShouldFailValidationWithoutPersisting", func() {
		s.SetupTest()

		qty := 1.0
		dto, err := s.service.AddItem(s.ctx, inbound.AddItemCommand{
			Kind:     pantry.KindPantry,
			Name:     "   ",
			Quantity: &qty,
		})

		require.Error(s.T(), err)
		assert.Nil(s.T(), dto)
		assert.Equal(s.T(), errors.CodeValidationFailed, errors.GetCode(err))
		s.repo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
	})

	s.Run("MissingQuantity_ShouldFailValidation", func() {
		s.SetupTest()

		dto, err := s.service.AddItem(s.ctx, inbound.AddItemCommand{
			Kind: pantry.KindPantry,
			Name: "Milk",
		})

		require.Error(s.T(), err)
		assert.Nil(s.T(), dto)
		assert.Equal(s.T(), errors.CodeValidationFailed, errors.GetCode(err))
	})
}

func (s *ServiceTestSuite) TestAdjustQuantity() {
	s.Run("ExistingItem_ShouldApplyDeltaAndPersist", func() {
		s.SetupTest()
		item := testutils.NewStockItemBuilder().WithQuantity(3, pantry.UnitPiece).Build()
		s.repo.Seed(item)
		s.repo.On("FindByID", mock.Anything, item.ID).Return((*pantry.StockItem)(nil), nil)
		s.repo.On("Update", mock.Anything, mock.AnythingOfType("pantry.StockItem")).Return(nil)
		s.cache.On("Delete", mock.Anything, "stats:pantry").Return(nil)

		dto, err := s.service.AdjustQuantity(s.ctx, item.ID, -2)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), 1.0, dto.Quantity)
		s.repo.AssertExpectations(s.T())
	})

	s.Run("DeltaBelowZero_ShouldClampToZero", func() {
		s.SetupTest()
		item := testutils.NewStockItemBuilder().WithQuantity(1, pantry.UnitPiece).Build()
		s.repo.Seed(item)
		s.repo.On("FindByID", mock.Anything, item.ID).Return((*pantry.StockItem)(nil), nil)
		s.repo.On("Update", mock.Anything, mock.AnythingOfType("pantry.StockItem")).Return(nil)
		s.cache.On("Delete", mock.Anything, "stats:pantry").Return(nil)

		dto, err := s.service.AdjustQuantity(s.ctx, item.ID, -5)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), 0.0, dto.Quantity)
	})

	s.Run("UnknownItem_ShouldReturnNotFound", func() {
		s.SetupTest()
		id := uuid.New()
		s.repo.On("FindByID", mock.Anything, id).Return((*pantry.StockItem)(nil), pantry.ErrItemNotFound)

		dto, err := s.service.AdjustQuantity(s.ctx, id, 1)

		require.Error(s.T(), err)
		assert.Nil(s.T(), dto)
		assert.Equal(s.T(), errors.CodeItemNotFound, errors.GetCode(err))
	})
}

func (s *ServiceTestSuite) TestUpdateItem() {
	s.Run("ValidPatch_ShouldPersistChanges", func() {
		s.SetupTest()
		item := testutils.NewStockItemBuilder().WithName("Bread").Build()
		s.repo.Seed(item)
		s.repo.On("FindByID", mock.Anything, item.ID).Return((*pantry.StockItem)(nil), nil)
		s.repo.On("Update", mock.Anything, mock.AnythingOfType("pantry.StockItem")).Return(nil)
		s.cache.On("Delete", mock.Anything, "stats:pantry").Return(nil)

		name := "Sourdough"
		dto, err := s.service.UpdateItem(s.ctx, inbound.UpdateItemCommand{
			ItemID: item.ID,
			Name:   &name,
		})

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "Sourdough", dto.Name)
	})

	s.Run("BlankName_ShouldFailValidation", func() {
		s.SetupTest()
		item := testutils.NewStockItemBuilder().Build()
		s.repo.Seed(item)
		s.repo.On("FindByID", mock.Anything, item.ID).Return((*pantry.StockItem)(nil), nil)

		name := "  "
		dto, err := s.service.UpdateItem(s.ctx, inbound.UpdateItemCommand{
			ItemID: item.ID,
			Name:   &name,
		})

		require.Error(s.T(), err)
		assert.Nil(s.T(), dto)
		assert.Equal(s.T(), errors.CodeValidationFailed, errors.GetCode(err))
		s.repo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	})
}

func (s *ServiceTestSuite) TestRemoveItem() {
	s.Run("ExistingItem_ShouldDelete", func() {
		s.SetupTest()
		item := testutils.NewStockItemBuilder().Build()
		s.repo.Seed(item)
		s.repo.On("FindByID", mock.Anything, item.ID).Return((*pantry.StockItem)(nil), nil)
		s.repo.On("Delete", mock.Anything, item.ID).Return(nil)
		s.cache.On("Delete", mock.Anything, "stats:pantry").Return(nil)

		err := s.service.RemoveItem(s.ctx, item.ID)

		require.NoError(s.T(), err)
		s.repo.AssertExpectations(s.T())
	})

	s.Run("UnknownItem_ShouldReturnNotFound", func() {
		s.SetupTest()
		id := uuid.New()
		s.repo.On("FindByID", mock.Anything, id).Return((*pantry.StockItem)(nil), pantry.ErrItemNotFound)

		err := s.service.RemoveItem(s.ctx, id)

		require.Error(s.T(), err)
		assert.Equal(s.T(), errors.CodeItemNotFound, errors.GetCode(err))
		s.repo.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
	})
}

func (s *ServiceTestSuite) TestToggleChecked() {
	s.Run("ShoppingEntry_ShouldFlipFlag", func() {
		s.SetupTest()
		item := testutils.NewStockItemBuilder().
			WithKind(pantry.KindShopping).
			WithChecked(false).
			Build()
		s.repo.Seed(item)
		s.repo.On("FindByID", mock.Anything, item.ID).Return((*pantry.StockItem)(nil), nil)
		s.repo.On("Update", mock.Anything, mock.AnythingOfType("pantry.StockItem")).Return(nil)
		s.cache.On("Delete", mock.Anything, "stats:shopping").Return(nil)

		dto, err := s.service.ToggleChecked(s.ctx, item.ID)

		require.NoError(s.T(), err)
		assert.True(s.T(), dto.Checked)
	})
}

func (s *ServiceTestSuite) TestQueryItems() {
	s.Run("LowStockFilter_ShouldKeepStatsOverFullCollection", func() {
		s.SetupTest()
		items := []pantry.StockItem{
			testutils.NewStockItemBuilder().WithName("Milk").WithQuantity(1, pantry.UnitLiter).WithThreshold(2).Build(),
			testutils.NewStockItemBuilder().WithName("Rice").WithQuantity(5, pantry.UnitKilogram).Build(),
		}
		s.repo.On("ListByKind", mock.Anything, pantry.KindPantry).Return(items, nil)

		list, err := s.service.QueryItems(s.ctx, pantry.KindPantry, inbound.ItemQuery{
			LowStockOnly: true,
		})

		require.NoError(s.T(), err)
		require.Len(s.T(), list.Items, 1)
		assert.Equal(s.T(), "Milk", list.Items[0].Name)
		assert.True(s.T(), list.Items[0].LowStock)
		assert.Equal(s.T(), 2, list.Stats.TotalCount)
		assert.Equal(s.T(), 1, list.Stats.LowStockCount)
	})

	s.Run("ShoppingKind_ShouldSearchCategoryToo", func() {
		s.SetupTest()
		items := []pantry.StockItem{
			testutils.NewStockItemBuilder().WithKind(pantry.KindShopping).WithName("Cheddar").WithCategory("Dairy").Build(),
			testutils.NewStockItemBuilder().WithKind(pantry.KindShopping).WithName("Apples").WithCategory("Produce").Build(),
		}
		s.repo.On("ListByKind", mock.Anything, pantry.KindShopping).Return(items, nil)

		list, err := s.service.QueryItems(s.ctx, pantry.KindShopping, inbound.ItemQuery{
			SearchText: "dairy",
		})

		require.NoError(s.T(), err)
		require.Len(s.T(), list.Items, 1)
		assert.Equal(s.T(), "Cheddar", list.Items[0].Name)
	})
}

func (s *ServiceTestSuite) TestGetStats() {
	s.Run("CacheHit_ShouldSkipRepository", func() {
		s.SetupTest()
		cached := pantry.Stats{TotalCount: 7, LowStockCount: 2}
		payload, err := json.Marshal(cached)
		require.NoError(s.T(), err)
		s.cache.On("Get", mock.Anything, "stats:pantry").Return(payload, nil)

		stats, err := s.service.GetStats(s.ctx, pantry.KindPantry)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), 7, stats.TotalCount)
		assert.Equal(s.T(), 2, stats.LowStockCount)
		s.repo.AssertNotCalled(s.T(), "ListByKind", mock.Anything, mock.Anything)
	})

	s.Run("CacheMiss_ShouldComputeAndStore", func() {
		s.SetupTest()
		items := []pantry.StockItem{
			testutils.NewStockItemBuilder().WithQuantity(1, pantry.UnitPiece).Build(),
		}
		s.cache.On("Get", mock.Anything, "stats:pantry").Return(nil, nil)
		s.cache.On("Set", mock.Anything, "stats:pantry", mock.AnythingOfType("[]uint8"), 5*time.Minute).Return(nil)
		s.repo.On("ListByKind", mock.Anything, pantry.KindPantry).Return(items, nil)

		stats, err := s.service.GetStats(s.ctx, pantry.KindPantry)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), 1, stats.TotalCount)
		s.cache.AssertExpectations(s.T())
	})
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
