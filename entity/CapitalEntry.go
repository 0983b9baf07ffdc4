package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Orígenes de capital de la carnicería. "TA" (tarjetas) se lista y
// totaliza aparte del resto.
const (
	CapitalCash       = "EF"
	CapitalBBVA       = "BB"
	CapitalSantander1 = "S1"
	CapitalSantander2 = "S2"
	CapitalHida       = "HI"
	CapitalEsmeralda  = "ES"
	CapitalFactory    = "FA"
	CapitalMisc       = "VA"
	CapitalCards      = "TA"
)

type CapitalEntry struct {
	gorm.Model
	Date   time.Time       `gorm:"index;not null" json:"date"`
	Source string          `gorm:"size:2;not null" json:"source"`
	Total  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
}

func ValidCapitalSource(s string) bool {
	switch s {
	case CapitalCash, CapitalBBVA, CapitalSantander1, CapitalSantander2,
		CapitalHida, CapitalEsmeralda, CapitalFactory, CapitalMisc, CapitalCards:
		return true
	}
	return false
}
