package entity

import (
	"gorm.io/gorm"
)

// MenuItem es una línea de la composición de un menú (no de un pedido).
type MenuItem struct {
	gorm.Model
	MenuID    uint `gorm:"index;not null" json:"menuId"`
	ProductID uint `gorm:"index;not null" json:"productId"`
	Qty       int  `gorm:"not null;default:1" json:"qty"`

	Product Product `json:"product"`
}
