package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Categorías disponibles para los productos del asador
const (
	CategoryMain    = "principal"
	CategorySides   = "raciones"
	CategoryDrink   = "bebida"
	CategoryDessert = "postre"
)

type Product struct {
	gorm.Model
	Name     string          `gorm:"size:100;not null" json:"name"`
	Category string          `gorm:"size:10;not null" json:"category"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"price"`

	// preload solo cuando haga falta
	MenuItems  []MenuItem     `json:"-"`
	OrderLines []OrderProduct `json:"-"`
	Inventory  *Inventory     `json:"-"`
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryMain, CategorySides, CategoryDrink, CategoryDessert:
		return true
	}
	return false
}
