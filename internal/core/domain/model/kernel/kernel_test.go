package kernel_test

import (
	"testing"

	"orderpanel/internal/core/domain/model/kernel"
	"orderpanel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want kernel.Category
	}{
		{"TOPUP", kernel.CategoryTopUp},
		{"joki", kernel.CategoryJoki},
		{" Item ", kernel.CategoryItem},
		{"CUSTOM", kernel.CategoryCustom},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := kernel.ParseCategory(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown category is invalid", func(t *testing.T) {
		_, err := kernel.ParseCategory("SKIN")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCategory_IsCatalogCategory(t *testing.T) {
	assert.True(t, kernel.CategoryTopUp.IsCatalogCategory())
	assert.True(t, kernel.CategoryJoki.IsCatalogCategory())
	assert.True(t, kernel.CategoryItem.IsCatalogCategory())
	assert.False(t, kernel.CategoryCustom.IsCatalogCategory())
}

func TestNewPrice(t *testing.T) {
	t.Run("zero is allowed", func(t *testing.T) {
		p, err := kernel.NewPrice(0)
		require.NoError(t, err)
		assert.True(t, p.IsZero())
	})

	t.Run("positive amount", func(t *testing.T) {
		p, err := kernel.NewPrice(45000)
		require.NoError(t, err)
		assert.Equal(t, int64(45000), p.Amount())
		assert.True(t, p.Equals(kernel.MustNewPrice(45000)))
	})

	t.Run("negative amount is out of range", func(t *testing.T) {
		_, err := kernel.NewPrice(-1)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("MustNewPrice panics on negative", func(t *testing.T) {
		assert.Panics(t, func() { kernel.MustNewPrice(-10) })
	})
}
