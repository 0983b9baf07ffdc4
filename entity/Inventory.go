package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Inventory guarda el stock disponible de un producto (relación uno a uno).
type Inventory struct {
	gorm.Model
	ProductID uint            `gorm:"uniqueIndex;not null" json:"productId"`
	Available decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"available"`

	Product Product `json:"product"`
}
