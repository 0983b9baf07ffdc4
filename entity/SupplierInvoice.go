package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SupplierInvoice es una compra a proveedor con IVA (factura de compra).
type SupplierInvoice struct {
	gorm.Model
	Supplier      string          `gorm:"size:100;not null" json:"supplier"`
	InvoiceNumber string          `gorm:"size:50;not null" json:"invoiceNumber"`
	Date          time.Time       `gorm:"index;not null" json:"date"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Paid          bool            `gorm:"default:false" json:"paid"`
}
