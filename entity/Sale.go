package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale es la venta diaria de la carnicería.
type Sale struct {
	gorm.Model
	Date  time.Time       `gorm:"index;not null" json:"date"`
	Total decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
}
