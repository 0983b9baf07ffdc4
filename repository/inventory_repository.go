package repository

import (
	"errors"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"gorm.io/gorm"
)

type InventoryRepository struct {
	DB *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

func (r *InventoryRepository) List() ([]entity.Inventory, error) {
	var items []entity.Inventory
	err := r.DB.Preload("Product").Find(&items).Error
	return items, err
}

// GetByProductID devuelve nil (sin error) cuando el producto no tiene
// registro de inventario; el agregador lo interpreta como stock no trazado.
func (r *InventoryRepository) GetByProductID(tx *gorm.DB, productID uint) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := tx.Where("product_id = ?", productID).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InventoryRepository) Create(inv *entity.Inventory) error {
	return r.DB.Create(inv).Error
}

func (r *InventoryRepository) Update(inv *entity.Inventory) error {
	return r.DB.Model(&entity.Inventory{Model: gorm.Model{ID: inv.ID}}).
		Updates(map[string]any{
			"product_id": inv.ProductID,
			"available":  inv.Available,
		}).Error
}

func (r *InventoryRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&entity.Inventory{}, id)
	return res.RowsAffected == 1, res.Error
}
