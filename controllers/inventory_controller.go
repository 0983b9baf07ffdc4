package controllers

import (
	"strconv"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"github.com/CarlosTarrino98/Gestor-de-negocio/pkg/resp"
	"github.com/CarlosTarrino98/Gestor-de-negocio/repository"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InventoryController struct {
	repo *repository.InventoryRepository
}

func NewInventoryController(repo *repository.InventoryRepository) *InventoryController {
	return &InventoryController{repo: repo}
}

type InventoryIn struct {
	ProductID uint            `json:"productId" binding:"required"`
	Available decimal.Decimal `json:"available"`
}

// GET /inventory
func (ic *InventoryController) List(c *gin.Context) {
	items, err := ic.repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /inventory
func (ic *InventoryController) Create(c *gin.Context) {
	var req InventoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	inv := entity.Inventory{ProductID: req.ProductID, Available: req.Available}
	if err := ic.repo.Create(&inv); err != nil {
		// el índice único sobre product_id rechaza el segundo registro
		resp.BadRequest(c, "ese producto ya tiene inventario")
		return
	}
	resp.Created(c, inv)
}

// PUT /inventory/:id
func (ic *InventoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req InventoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	inv := entity.Inventory{ProductID: req.ProductID, Available: req.Available}
	inv.ID = uint(id)
	if err := ic.repo.Update(&inv); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, inv)
}

// DELETE /inventory/:id
func (ic *InventoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	ok, err := ic.repo.Delete(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "inventario no encontrado")
		return
	}
	resp.OK(c, gin.H{"message": "inventario eliminado correctamente"})
}
