package catalog_test

import (
	"testing"

	"orderpanel/internal/core/domain/model/catalog"
	"orderpanel/internal/core/domain/model/kernel"
	"orderpanel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item, err := catalog.NewItem(kernel.CategoryItem, " Aurora Rod ", kernel.MustNewPrice(150000), "Rare Item 0.5% chance")
		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, int64(0), item.ID())
		assert.Equal(t, kernel.CategoryItem, item.Category())
		assert.Equal(t, "Aurora Rod", item.Name())
		assert.Equal(t, int64(150000), item.Price().Amount())
		assert.Equal(t, "Rare Item 0.5% chance", item.Description())
	})

	t.Run("custom category is reserved", func(t *testing.T) {
		_, err := catalog.NewItem(kernel.CategoryCustom, "Anything", kernel.MustNewPrice(1), "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("name and category errors are joined", func(t *testing.T) {
		_, err := catalog.NewItem(kernel.Category("X"), "", kernel.MustNewPrice(1), "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreItem(t *testing.T) {
	item, err := catalog.RestoreItem(7, kernel.CategoryTopUp, "5,000 Gems", kernel.MustNewPrice(45000), "Bonus 500 Gems")
	require.NoError(t, err)
	assert.Equal(t, int64(7), item.ID())

	_, err = catalog.RestoreItem(0, kernel.CategoryTopUp, "5,000 Gems", kernel.MustNewPrice(45000), "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestItem_Validate(t *testing.T) {
	var nilItem *catalog.Item
	require.ErrorIs(t, nilItem.Validate(), catalog.ErrItemIsNotConstructed)
	require.ErrorIs(t, (&catalog.Item{}).Validate(), catalog.ErrItemIsNotConstructed)
}

func TestDefaultItems(t *testing.T) {
	items := catalog.DefaultItems()
	require.Len(t, items, 4)

	assert.Equal(t, "5,000 Gems", items[1].Name())
	assert.Equal(t, int64(45000), items[1].Price().Amount())
	assert.Equal(t, kernel.CategoryTopUp, items[1].Category())
	for _, item := range items {
		require.NoError(t, item.Validate())
		assert.Zero(t, item.ID())
	}
}
