package repository

import (
	"time"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Pedidos ----------------

// ListByRange devuelve los pedidos del rango con todas sus líneas y la
// composición de los menús ya cargadas, ordenados por hora de entrega.
func (r *OrderRepository) ListByRange(tx *gorm.DB, from, to time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := tx.
		Preload("ProductLines.Product").
		Preload("MenuLines.Menu.Items.Product").
		Where("scheduled_at BETWEEN ? AND ?", from, to).
		Order("scheduled_at").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("ProductLines.Product").
		Preload("MenuLines.Menu").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Update(tx *gorm.DB, o *entity.Order) error {
	return tx.Model(&entity.Order{Model: gorm.Model{ID: o.ID}}).
		Select("customer_name", "scheduled_at", "notes").
		Updates(map[string]any{
			"customer_name": o.CustomerName,
			"scheduled_at":  o.ScheduledAt,
			"notes":         o.Notes,
		}).Error
}

// ReplaceLines borra las líneas actuales y escribe las nuevas, igual que
// hace la pantalla de edición: primero limpiar, luego volver a crear.
func (r *OrderRepository) ReplaceLines(tx *gorm.DB, orderID uint, products []entity.OrderProduct, menus []entity.OrderMenu) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderProduct{}).Error; err != nil {
		return err
	}
	if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderMenu{}).Error; err != nil {
		return err
	}
	for i := range products {
		products[i].OrderID = orderID
		if err := tx.Create(&products[i]).Error; err != nil {
			return err
		}
	}
	for i := range menus {
		menus[i].OrderID = orderID
		if err := tx.Create(&menus[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// SetDelivered marca o desmarca la entrega. Devuelve false si el pedido no existe.
func (r *OrderRepository) SetDelivered(orderID uint, delivered bool) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("delivered", delivered)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Delete borra el pedido y sus líneas. Devuelve false si el pedido no existe.
func (r *OrderRepository) Delete(orderID uint) (bool, error) {
	found := false
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&entity.Order{}, orderID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true
		if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderProduct{}).Error; err != nil {
			return err
		}
		return tx.Where("order_id = ?", orderID).Delete(&entity.OrderMenu{}).Error
	})
	return found, err
}
