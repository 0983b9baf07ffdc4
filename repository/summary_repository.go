package repository

import (
	"errors"
	"time"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SummaryRepository struct {
	DB *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) *SummaryRepository {
	return &SummaryRepository{DB: db}
}

// GetByDateLocked lee el resumen de la fecha bloqueando la fila para que dos
// cierres simultáneos del mismo día no se pisen. Devuelve nil si no existe.
func (r *SummaryRepository) GetByDateLocked(tx *gorm.DB, date time.Time) (*entity.DailySummary, error) {
	var s entity.DailySummary
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("date = ?", date).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SummaryRepository) Create(tx *gorm.DB, s *entity.DailySummary) error {
	return tx.Create(s).Error
}

func (r *SummaryRepository) UpdateTotals(tx *gorm.DB, s *entity.DailySummary) error {
	return tx.Model(&entity.DailySummary{Model: gorm.Model{ID: s.ID}}).
		Updates(map[string]any{
			"total_sales":   s.TotalSales,
			"order_count":   s.OrderCount,
			"chicken_units": s.ChickenUnits,
			"cachopo_units": s.CachopoUnits,
		}).Error
}

func (r *SummaryRepository) ListByRange(from, to time.Time) ([]entity.DailySummary, error) {
	var out []entity.DailySummary
	err := r.DB.Where("date BETWEEN ? AND ?", from, to).Order("date").Find(&out).Error
	return out, err
}
