package pantry

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func quantity(v float64) *float64 { return &v }

// CollectionTestSuite exercises the collection mutation operations.
type CollectionTestSuite struct {
	suite.Suite
	now time.Time
}

func (s *CollectionTestSuite) SetupTest() {
	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (s *CollectionTestSuite) TestAdd() {
	s.Run("ValidDraft_ShouldAppendWithDefaults", func() {
		draft := Draft{Kind: KindPantry, Name: "Olive Oil", Quantity: quantity(1)}

		next, item, err := Add(nil, draft, s.now)

		require.NoError(s.T(), err)
		require.NotNil(s.T(), item)
		require.Len(s.T(), next, 1)
		assert.NotEqual(s.T(), uuid.Nil, item.ID)
		assert.Equal(s.T(), UnitPiece, item.Unit)
		assert.Equal(s.T(), CategoryOther, item.Category)
		assert.Equal(s.T(), s.now, item.AddedAt)
	})

	s.Run("EmptyName_ShouldFailAndLeaveCollectionUntouched", func() {
		existing := []StockItem{{ID: uuid.New(), Name: "Salt", Quantity: 1}}

		next, item, err := Add(existing, Draft{Name: "", Quantity: quantity(1)}, s.now)

		assert.ErrorIs(s.T(), err, ErrEmptyName)
		assert.Nil(s.T(), next)
		assert.Nil(s.T(), item)
		require.Len(s.T(), existing, 1)
		assert.Equal(s.T(), "Salt", existing[0].Name)
	})

	s.Run("MissingQuantity_ShouldFail", func() {
		_, _, err := Add(nil, Draft{Name: "Sugar"}, s.now)
		assert.ErrorIs(s.T(), err, ErrQuantityRequired)
	})

	s.Run("NegativeQuantity_ShouldFailNotClamp", func() {
		_, _, err := Add(nil, Draft{Name: "Sugar", Quantity: quantity(-1)}, s.now)
		assert.ErrorIs(s.T(), err, ErrNegativeQuantity)
	})

	s.Run("InvalidPriority_ShouldFail", func() {
		draft := Draft{Name: "Sugar", Quantity: quantity(1), Priority: Priority("urgent")}
		_, _, err := Add(nil, draft, s.now)
		assert.ErrorIs(s.T(), err, ErrInvalidPriority)
	})

	s.Run("InputSliceNotMutated", func() {
		existing := []StockItem{{ID: uuid.New(), Name: "Salt", Quantity: 1}}

		next, _, err := Add(existing, Draft{Name: "Pepper", Quantity: quantity(1)}, s.now)

		require.NoError(s.T(), err)
		assert.Len(s.T(), existing, 1)
		assert.Len(s.T(), next, 2)
	})
}

func (s *CollectionTestSuite) TestAdjustQuantity() {
	s.Run("QuantityNeverGoesBelowZero", func() {
		id := uuid.New()
		items := []StockItem{{ID: id, Name: "Flour", Quantity: 5}}

		for _, delta := range []float64{-3, -10, +1, -5} {
			next, err := AdjustQuantity(items, id, delta)
			require.NoError(s.T(), err)
			assert.GreaterOrEqual(s.T(), next[0].Quantity, 0.0)
			items = next
		}

		assert.Equal(s.T(), 0.0, items[0].Quantity)
	})

	s.Run("MissingID_ShouldReturnNotFound", func() {
		items := []StockItem{{ID: uuid.New(), Name: "Flour", Quantity: 5}}
		_, err := AdjustQuantity(items, uuid.New(), 1)
		assert.ErrorIs(s.T(), err, ErrItemNotFound)
	})

	s.Run("OriginalQuantityUnchanged", func() {
		id := uuid.New()
		items := []StockItem{{ID: id, Name: "Flour", Quantity: 5}}

		next, err := AdjustQuantity(items, id, -2)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), 5.0, items[0].Quantity)
		assert.Equal(s.T(), 3.0, next[0].Quantity)
	})
}

func (s *CollectionTestSuite) TestUpdate() {
	s.Run("ValidPatch_ShouldApplyFields", func() {
		id := uuid.New()
		items := []StockItem{{ID: id, Name: "Flour", Quantity: 5, Category: "Baking"}}
		name := "Bread Flour"
		qty := 2.5

		next, err := Update(items, id, Patch{Name: &name, Quantity: &qty})

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "Bread Flour", next[0].Name)
		assert.Equal(s.T(), 2.5, next[0].Quantity)
		assert.Equal(s.T(), "Baking", next[0].Category)
	})

	s.Run("EmptyName_ShouldFail", func() {
		id := uuid.New()
		items := []StockItem{{ID: id, Name: "Flour", Quantity: 5}}
		empty := "  "

		_, err := Update(items, id, Patch{Name: &empty})

		assert.ErrorIs(s.T(), err, ErrEmptyName)
		assert.Equal(s.T(), "Flour", items[0].Name)
	})

	s.Run("NegativeQuantity_ShouldFail", func() {
		id := uuid.New()
		items := []StockItem{{ID: id, Name: "Flour", Quantity: 5}}
		negative := -1.0

		_, err := Update(items, id, Patch{Quantity: &negative})

		assert.ErrorIs(s.T(), err, ErrNegativeQuantity)
	})

	s.Run("MissingID_ShouldReturnNotFound", func() {
		name := "Anything"
		_, err := Update(nil, uuid.New(), Patch{Name: &name})
		assert.ErrorIs(s.T(), err, ErrItemNotFound)
	})
}

func (s *CollectionTestSuite) TestRemove() {
	s.Run("RemoveTwice_SecondIsNotFound", func() {
		id := uuid.New()
		items := []StockItem{
			{ID: id, Name: "Flour", Quantity: 5},
			{ID: uuid.New(), Name: "Sugar", Quantity: 2},
		}

		next, err := Remove(items, id)
		require.NoError(s.T(), err)
		require.Len(s.T(), next, 1)

		_, err = Remove(next, id)
		assert.ErrorIs(s.T(), err, ErrItemNotFound)
	})

	s.Run("RemovePreservesOrder", func() {
		a, b, c := uuid.New(), uuid.New(), uuid.New()
		items := []StockItem{{ID: a, Name: "A"}, {ID: b, Name: "B"}, {ID: c, Name: "C"}}

		next, err := Remove(items, b)

		require.NoError(s.T(), err)
		require.Len(s.T(), next, 2)
		assert.Equal(s.T(), a, next[0].ID)
		assert.Equal(s.T(), c, next[1].ID)
	})
}

func (s *CollectionTestSuite) TestToggleChecked() {
	id := uuid.New()
	items := []StockItem{{ID: id, Name: "Milk", Kind: KindShopping}}

	next, err := ToggleChecked(items, id)
	require.NoError(s.T(), err)
	assert.True(s.T(), next[0].Checked)

	next, err = ToggleChecked(next, id)
	require.NoError(s.T(), err)
	assert.False(s.T(), next[0].Checked)

	_, err = ToggleChecked(next, uuid.New())
	assert.ErrorIs(s.T(), err, ErrItemNotFound)
}

func TestCollectionTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionTestSuite))
}
