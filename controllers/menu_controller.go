package controllers

import (
	"errors"
	"strconv"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"github.com/CarlosTarrino98/Gestor-de-negocio/pkg/resp"
	"github.com/CarlosTarrino98/Gestor-de-negocio/repository"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuController struct {
	DB   *gorm.DB
	repo *repository.MenuRepository
}

func NewMenuController(db *gorm.DB, repo *repository.MenuRepository) *MenuController {
	return &MenuController{DB: db, repo: repo}
}

type MenuItemIn struct {
	ProductID uint `json:"productId" binding:"required"`
	Qty       int  `json:"qty" binding:"required,min=1"`
}
type MenuIn struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"`
	Items []MenuItemIn    `json:"items"`
}

func (mc *MenuController) buildItems(items []MenuItemIn) ([]entity.MenuItem, error) {
	out := make([]entity.MenuItem, 0, len(items))
	for _, it := range items {
		var cnt int64
		if err := mc.DB.Model(&entity.Product{}).Where("id = ?", it.ProductID).Count(&cnt).Error; err != nil {
			return nil, err
		}
		if cnt == 0 {
			return nil, errors.New("producto no encontrado")
		}
		out = append(out, entity.MenuItem{ProductID: it.ProductID, Qty: it.Qty})
	}
	return out, nil
}

// GET /menus
func (mc *MenuController) List(c *gin.Context) {
	menus, err := mc.repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": menus})
}

// POST /menus
func (mc *MenuController) Create(c *gin.Context) {
	var req MenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	items, err := mc.buildItems(req.Items)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu := entity.Menu{Name: req.Name, Price: req.Price}
	err = mc.DB.Transaction(func(tx *gorm.DB) error {
		if err := mc.repo.Create(tx, &menu); err != nil {
			return err
		}
		return mc.repo.ReplaceItems(tx, menu.ID, items)
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out, err := mc.repo.Get(menu.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, out)
}

// PUT /menus/:id
func (mc *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req MenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := mc.repo.Get(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menú no encontrado")
			return
		}
		resp.ServerError(c, err)
		return
	}

	items, err := mc.buildItems(req.Items)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu := entity.Menu{Model: gorm.Model{ID: uint(id)}, Name: req.Name, Price: req.Price}
	err = mc.DB.Transaction(func(tx *gorm.DB) error {
		if err := mc.repo.Update(tx, &menu); err != nil {
			return err
		}
		return mc.repo.ReplaceItems(tx, menu.ID, items)
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out, err := mc.repo.Get(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /menus/:id
func (mc *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	ok, err := mc.repo.Delete(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "menú no encontrado")
		return
	}
	resp.OK(c, gin.H{"message": "menú eliminado correctamente"})
}
