package entity

import (
	"gorm.io/gorm"
)

type OrderMenu struct {
	gorm.Model
	OrderID uint `gorm:"index;not null" json:"orderId"`
	MenuID  uint `gorm:"index;not null" json:"menuId"`
	Qty     int  `gorm:"not null;default:1" json:"qty"`

	Menu Menu `json:"menu"`
}
