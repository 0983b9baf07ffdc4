package repository

import (
	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) List() ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Preload("Items.Product").Order("name").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) Get(id uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.Preload("Items.Product").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(tx *gorm.DB, m *entity.Menu) error {
	return tx.Create(m).Error
}

func (r *MenuRepository) Update(tx *gorm.DB, m *entity.Menu) error {
	return tx.Model(&entity.Menu{Model: gorm.Model{ID: m.ID}}).
		Updates(map[string]any{
			"name":  m.Name,
			"price": m.Price,
		}).Error
}

// ReplaceItems limpia la composición y la vuelve a crear.
func (r *MenuRepository) ReplaceItems(tx *gorm.DB, menuID uint, items []entity.MenuItem) error {
	if err := tx.Where("menu_id = ?", menuID).Delete(&entity.MenuItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].MenuID = menuID
		if err := tx.Create(&items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *MenuRepository) Delete(id uint) (bool, error) {
	found := false
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&entity.Menu{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true
		return tx.Where("menu_id = ?", id).Delete(&entity.MenuItem{}).Error
	})
	return found, err
}
