package catalogrepo

import (
	"context"
	"errors"
	"fmt"

	"orderpanel/internal/core/domain/model/catalog"
	"orderpanel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) Add(ctx context.Context, item *catalog.Item) (*catalog.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(item)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return toDomain(dto)
}

func (r *GormCatalogRepository) Get(ctx context.Context, id int64) (*catalog.Item, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id)
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return toDomain(dto)
}

// Delete removes the product row only; orders keep their copied line items.
func (r *GormCatalogRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete product %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id)
	}
	return nil
}

func (r *GormCatalogRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&ProductDTO{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
