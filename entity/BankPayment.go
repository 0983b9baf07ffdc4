package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BankPayment struct {
	gorm.Model
	Date    time.Time       `gorm:"index;not null" json:"date"`
	Concept string          `gorm:"size:255;not null" json:"concept"`
	Total   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
}
