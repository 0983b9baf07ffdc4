package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailySummary es la foto fija de un día de ventas del asador.
// El índice único sobre Date garantiza como mucho un resumen por fecha,
// también frente a dos cierres concurrentes del mismo día.
type DailySummary struct {
	gorm.Model
	Date         time.Time       `gorm:"uniqueIndex;not null" json:"date"`
	TotalSales   decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"totalSales"`
	OrderCount   int             `gorm:"default:0" json:"orderCount"`
	ChickenUnits decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"chickenUnits"`
	CachopoUnits int             `gorm:"default:0" json:"cachopoUnits"`
}
