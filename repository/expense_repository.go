package repository

import (
	"time"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	DB *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{DB: db}
}

func (r *ExpenseRepository) ListByRange(from, to time.Time) ([]entity.Expense, error) {
	var out []entity.Expense
	err := r.DB.Where("date BETWEEN ? AND ?", from, to).Order("date DESC").Find(&out).Error
	return out, err
}

func (r *ExpenseRepository) Create(e *entity.Expense) error {
	return r.DB.Create(e).Error
}

func (r *ExpenseRepository) Update(e *entity.Expense) error {
	return r.DB.Model(&entity.Expense{Model: gorm.Model{ID: e.ID}}).
		Updates(map[string]any{
			"description": e.Description,
			"amount":      e.Amount,
			"date":        e.Date,
		}).Error
}

func (r *ExpenseRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&entity.Expense{}, id)
	return res.RowsAffected == 1, res.Error
}
