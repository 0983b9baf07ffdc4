package entity

import (
	"gorm.io/gorm"
)

type OrderProduct struct {
	gorm.Model
	OrderID   uint `gorm:"index;not null" json:"orderId"`
	ProductID uint `gorm:"index;not null" json:"productId"`
	Qty       int  `gorm:"not null;default:1" json:"qty"`

	Product Product `json:"product"`
}
