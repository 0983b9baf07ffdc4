package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	Name  string          `gorm:"size:100;not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"price"`

	// composición fija del menú
	Items []MenuItem `json:"items"`

	OrderLines []OrderMenu `json:"-"`
}
