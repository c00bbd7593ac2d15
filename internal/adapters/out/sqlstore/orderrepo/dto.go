// Package orderrepo persists order aggregates with GORM and maps them between
// the domain model and the orders table.
package orderrepo

import (
	"time"

	"orderpanel/internal/core/domain/model/kernel"
	"orderpanel/internal/core/domain/model/order"
)

// OrderDTO is the orders table row. Category, payment method and status are
// stored as their string names. There is deliberately no foreign key to the
// products table: the line item is a copy.
type OrderDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	CustomerName  string    `gorm:"size:255;not null"`
	RobloxUser    string    `gorm:"size:255;not null;index"`
	Category      string    `gorm:"size:16;not null"`
	ItemName      string    `gorm:"size:255;not null"`
	Price         int64     `gorm:"not null;default:0"`
	PaymentMethod string    `gorm:"size:16;not null"`
	ProofImage    string    `gorm:"size:512;not null;default:''"`
	Status        string    `gorm:"size:16;not null;default:Pending;index"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID(),
		CustomerName:  o.CustomerName(),
		RobloxUser:    o.RobloxUser(),
		Category:      o.Category().String(),
		ItemName:      o.ItemName(),
		Price:         o.Price().Amount(),
		PaymentMethod: o.PaymentMethod().String(),
		ProofImage:    o.ProofImage(),
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
	}
}

// toDomain rebuilds the aggregate through order.RestoreOrder so stored rows
// get the same validation as new input.
func toDomain(dto OrderDTO) (*order.Order, error) {
	category, err := kernel.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}
	line, err := order.NewLineItem(category, dto.ItemName, price)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerName,
		dto.RobloxUser,
		line,
		order.PaymentMethod(dto.PaymentMethod),
		dto.ProofImage,
		status,
		dto.CreatedAt,
	)
}
