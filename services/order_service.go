package services

import (
	"errors"
	"time"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"github.com/CarlosTarrino98/Gestor-de-negocio/repository"
	"gorm.io/gorm"
)

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

// ----- DTOs del controlador -----

type ProductLineIn struct {
	ProductID uint `json:"productId" binding:"required"`
	Qty       int  `json:"qty" binding:"required,min=1"`
}
type MenuLineIn struct {
	MenuID uint `json:"menuId" binding:"required"`
	Qty    int  `json:"qty" binding:"required,min=1"`
}
type SaveOrderReq struct {
	CustomerName string          `json:"customerName" binding:"required"`
	ScheduledAt  time.Time       `json:"scheduledAt" binding:"required"`
	Notes        string          `json:"notes"`
	ProductLines []ProductLineIn `json:"productLines"`
	MenuLines    []MenuLineIn    `json:"menuLines"`
}

func (s *OrderService) buildLines(tx *gorm.DB, req *SaveOrderReq) ([]entity.OrderProduct, []entity.OrderMenu, error) {
	products := make([]entity.OrderProduct, 0, len(req.ProductLines))
	for _, l := range req.ProductLines {
		var cnt int64
		if err := tx.Model(&entity.Product{}).Where("id = ?", l.ProductID).Count(&cnt).Error; err != nil {
			return nil, nil, err
		}
		if cnt == 0 {
			return nil, nil, errors.New("producto no encontrado")
		}
		products = append(products, entity.OrderProduct{ProductID: l.ProductID, Qty: l.Qty})
	}
	menus := make([]entity.OrderMenu, 0, len(req.MenuLines))
	for _, l := range req.MenuLines {
		var cnt int64
		if err := tx.Model(&entity.Menu{}).Where("id = ?", l.MenuID).Count(&cnt).Error; err != nil {
			return nil, nil, err
		}
		if cnt == 0 {
			return nil, nil, errors.New("menú no encontrado")
		}
		menus = append(menus, entity.OrderMenu{MenuID: l.MenuID, Qty: l.Qty})
	}
	return products, menus, nil
}

func (s *OrderService) Create(req *SaveOrderReq) (*entity.Order, error) {
	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		products, menus, err := s.buildLines(tx, req)
		if err != nil {
			return err
		}
		order := entity.Order{
			CustomerName: req.CustomerName,
			ScheduledAt:  req.ScheduledAt,
			Notes:        req.Notes,
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		if err := s.Repo.ReplaceLines(tx, order.ID, products, menus); err != nil {
			return err
		}
		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update reemplaza los datos del pedido y sus dos conjuntos de líneas.
func (s *OrderService) Update(orderID uint, req *SaveOrderReq) (*entity.Order, error) {
	if _, err := s.Repo.Get(orderID); err != nil {
		return nil, err
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		products, menus, err := s.buildLines(tx, req)
		if err != nil {
			return err
		}
		order := entity.Order{
			Model:        gorm.Model{ID: orderID},
			CustomerName: req.CustomerName,
			ScheduledAt:  req.ScheduledAt,
			Notes:        req.Notes,
		}
		if err := s.Repo.Update(tx, &order); err != nil {
			return err
		}
		return s.Repo.ReplaceLines(tx, orderID, products, menus)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.Get(orderID)
}

func (s *OrderService) SetDelivered(orderID uint, delivered bool) (bool, error) {
	return s.Repo.SetDelivered(orderID, delivered)
}

func (s *OrderService) Delete(orderID uint) (bool, error) {
	return s.Repo.Delete(orderID)
}
