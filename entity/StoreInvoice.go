package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StoreInvoice es una compra de tienda sin número de factura de proveedor.
type StoreInvoice struct {
	gorm.Model
	Supplier string          `gorm:"size:100;not null" json:"supplier"`
	Date     time.Time       `gorm:"index;not null" json:"date"`
	Total    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Paid     bool            `gorm:"default:false" json:"paid"`
}
