package entity

import (
	"gorm.io/gorm"
)

// Client es un cliente de facturación de la carnicería.
type Client struct {
	gorm.Model
	Name    string `gorm:"size:255;not null" json:"name"`
	Code    string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Address string `json:"address"`
	TaxID   string `gorm:"size:50;uniqueIndex;not null" json:"taxId"`

	Invoices []Invoice `json:"-"`
}
