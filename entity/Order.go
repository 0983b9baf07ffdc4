package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	CustomerName string    `gorm:"size:100;not null" json:"customerName"`
	ScheduledAt  time.Time `gorm:"index;not null" json:"scheduledAt"`
	Delivered    bool      `gorm:"default:false" json:"delivered"`
	Notes        string    `json:"notes"`

	ProductLines []OrderProduct `json:"productLines"`
	MenuLines    []OrderMenu    `json:"menuLines"`
}
