// Package catalogrepo persists catalog items in the products table.
package catalogrepo

import (
	"time"

	"orderpanel/internal/core/domain/model/catalog"
	"orderpanel/internal/core/domain/model/kernel"
)

type ProductDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Category    string    `gorm:"size:16;not null;index"`
	Name        string    `gorm:"size:255;not null"`
	Price       int64     `gorm:"not null;default:0"`
	Description string    `gorm:"size:1024;not null;default:''"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(item *catalog.Item) ProductDTO {
	return ProductDTO{
		ID:          item.ID(),
		Category:    item.Category().String(),
		Name:        item.Name(),
		Price:       item.Price().Amount(),
		Description: item.Description(),
	}
}

func toDomain(dto ProductDTO) (*catalog.Item, error) {
	category, err := kernel.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreItem(dto.ID, category, dto.Name, price, dto.Description)
}
