package repository

import (
	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// List ordena por categoría y dentro de cada categoría por nombre,
// que es como se pinta el catálogo.
func (r *ProductRepository) List() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Order("category").Order("name").Find(&products).Error
	return products, err
}

func (r *ProductRepository) Get(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Update(p *entity.Product) error {
	return r.DB.Model(&entity.Product{Model: gorm.Model{ID: p.ID}}).
		Updates(map[string]any{
			"name":     p.Name,
			"category": p.Category,
			"price":    p.Price,
		}).Error
}

func (r *ProductRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&entity.Product{}, id)
	return res.RowsAffected == 1, res.Error
}
