package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Datos fijos del emisor que van impresos en cada factura.
const (
	CompanyName    = "PETTISSO"
	CompanyPhone   = "123456789"
	CompanyEmail   = "ejemplo@hotmail.com"
	IssuerName     = "Alfredo Martínez Simón"
	IssuerAddress  = "Avda. Ejemplo, Alcalá de Henares, España"
	IssuerTaxID    = "98765432B"
)

// Invoice es una factura de venta de la carnicería. Los totales se
// recalculan siempre a partir de las líneas, nunca se aceptan del cliente.
type Invoice struct {
	gorm.Model
	Number       string    `gorm:"size:20;not null" json:"number"`
	IssueDate    time.Time `gorm:"index;not null" json:"issueDate"`
	DeliveryDate time.Time `json:"deliveryDate"`

	ClientID uint   `gorm:"index;not null" json:"clientId"`
	Client   Client `json:"client"`

	NetTotal decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"netTotal"`
	VatTotal decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"vatTotal"`
	Total    decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"total"`

	Lines []InvoiceLine `json:"lines"`
}
