package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceLine es una línea de factura. Neto, IVA y total los calcula el
// servicio a partir de cantidad y precio por kilo.
type InvoiceLine struct {
	gorm.Model
	InvoiceID   uint            `gorm:"index;not null" json:"invoiceId"`
	Description string          `gorm:"size:255;not null" json:"description"`
	Qty         decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"qty"`
	PricePerKg  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"pricePerKg"`
	Net         decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"net"`
	Vat         decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"vat"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"total"`
}
